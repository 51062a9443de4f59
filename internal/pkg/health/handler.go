package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker probes one dependency
type Checker func(ctx context.Context) error

// Handler serves liveness/readiness status for the service's dependencies
type Handler struct {
	appName  string
	version  string
	checkers map[string]Checker
}

// NewHandler creates a health handler
func NewHandler(appName, version string) *Handler {
	return &Handler{
		appName:  appName,
		version:  version,
		checkers: make(map[string]Checker),
	}
}

// Register adds a named dependency check
func (h *Handler) Register(name string, checker Checker) {
	h.checkers[name] = checker
}

// RegisterRoutes mounts the health endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
}

// Health runs all dependency checks and reports aggregate status
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checkers))
	for name, check := range h.checkers {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	return c.JSON(status, map[string]interface{}{
		"service":      h.appName,
		"version":      h.version,
		"status":       http.StatusText(status),
		"dependencies": deps,
		"checked_at":   time.Now().UTC(),
	})
}
