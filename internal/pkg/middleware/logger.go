package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
)

// RequestLogger logs every HTTP request with method, path, status and latency
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("HTTP request",
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.Int("status", c.Response().Status),
				logger.Duration("latency", time.Since(start)),
				logger.String("remote", c.RealIP()))
			return err
		}
	}
}
