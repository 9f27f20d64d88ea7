package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID tags every request with an id and puts a request-scoped logger
// into the echo context under "logger".
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set("X-Request-ID", id)
			c.Set("logger", slog.Default().With("request_id", id))
			return next(c)
		}
	}
}
