package routes

import (
	"CloseByRentals/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, pc *handlers.PropertyController, ac *handlers.AmenityController) {
	e.GET("/health", handlers.HealthCheck)

	e.GET("/properties", pc.ListProperties)
	e.POST("/properties/search", pc.SearchProperties)
	e.POST("/properties", pc.CreateProperty)

	e.GET("/amenities", ac.ListAmenities)
	e.POST("/amenities", ac.CreateAmenity)
	e.GET("/amenities/:term", ac.AmenitiesNear)

	e.GET("/location-data", handlers.LocationData)
}
