package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
)

// ValidateAPIKey guards internal service-to-service routes with a shared
// X-API-Key header check
func ValidateAPIKey(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get("X-API-Key")
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.Warn("Rejected internal request with invalid API key",
					logger.String("path", c.Request().URL.Path),
					logger.String("remote", c.RealIP()))
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid API key")
			}
			return next(c)
		}
	}
}
