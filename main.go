package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"CloseByRentals/cache"
	"CloseByRentals/config"
	"CloseByRentals/handlers"
	appmiddleware "CloseByRentals/middleware"
	"CloseByRentals/resolve"
	"CloseByRentals/routes"
	"CloseByRentals/search"
	"CloseByRentals/store"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	config.InitLogger()

	var cacheStore cache.Store
	if cfg.RedisAddr != "" {
		cacheStore = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		slog.Info("using redis cache", "addr", cfg.RedisAddr)
	} else {
		cacheStore = cache.NewMemory()
		slog.Info("using in-process cache")
	}

	var propertyStore store.PropertyStore
	var amenityStore store.AmenityStore
	if cfg.MongoURI != "" {
		if err := config.ConnectDB(cfg.MongoURI, cfg.MongoDB); err != nil {
			slog.Error("mongo connection failed", "error", err)
			os.Exit(1)
		}
		propertyStore = store.NewMongoPropertyStore(config.GetCollection("properties"))
		amenityStore = store.NewMongoAmenityStore(config.GetCollection("amenities"))
		slog.Info("using mongo stores", "db", cfg.MongoDB)
	} else {
		propertyStore = store.NewMemoryPropertyStore(store.SeedProperties())
		amenityStore = store.NewMemoryAmenityStore(store.SeedAmenities())
		slog.Info("using seeded in-memory stores")
	}

	resolver := resolve.New(cacheStore, cfg.CacheTTL, slog.Default())
	propertiesAPI := resolve.NewClient(cfg.UpstreamPropertiesURL)
	amenitiesAPI := resolve.NewClient(cfg.UpstreamAmenitiesURL)
	generator := search.NewGenerator(time.Now().UnixNano())

	pc := handlers.NewPropertyController(propertyStore, resolver, propertiesAPI, generator)
	ac := handlers.NewAmenityController(amenityStore, resolver, amenitiesAPI)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.RequestID())

	routes.RegisterRoutes(e, pc, ac)

	slog.Info("server starting", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
