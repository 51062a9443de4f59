package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	pkgws "github.com/hushryd/tracking-service/internal/pkg/websocket"
	"github.com/hushryd/tracking-service/services/tracking"
)

// TrackingHandler serves the internal service-to-service query API
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
	safetyUC   tracking.SafetyUC
	manager    *pkgws.Manager
}

// NewTrackingHandler creates the internal HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, safetyUC tracking.SafetyUC, manager *pkgws.Manager) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
		safetyUC:   safetyUC,
		manager:    manager,
	}
}

// GetTripLocation returns the current best-known location for a trip
func (h *TrackingHandler) GetTripLocation(c echo.Context) error {
	tripID := c.Param("id")
	record, err := h.trackingUC.CurrentLocation(c.Request().Context(), tripID)
	if err != nil {
		if err == tracking.ErrNoLocationData {
			return echo.NewHTTPError(http.StatusNotFound, "no location data for trip")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "location lookup failed")
	}
	return c.JSON(http.StatusOK, record)
}

// GetTripSubscribers reports how many connections on this instance are
// subscribed to a trip
func (h *TrackingHandler) GetTripSubscribers(c echo.Context) error {
	tripID := c.Param("id")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"trip_id":     tripID,
		"subscribers": h.manager.RoomSize(constants.TripRoom(tripID)),
	})
}

// GetTripTracked reports whether the trip currently has live location data
func (h *TrackingHandler) GetTripTracked(c echo.Context) error {
	tripID := c.Param("id")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"trip_id": tripID,
		"tracked": h.trackingUC.IsTracked(c.Request().Context(), tripID),
	})
}

// BatchLocations returns locations for a comma-separated driver id list
func (h *TrackingHandler) BatchLocations(c echo.Context) error {
	raw := c.QueryParam("driver_ids")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "driver_ids is required")
	}

	driverIDs := strings.Split(raw, ",")
	records, err := h.trackingUC.BatchLocations(c.Request().Context(), driverIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "batch lookup failed")
	}
	return c.JSON(http.StatusOK, records)
}

// EndTracking tears down a trip's tracking pipeline: cache eviction, final
// history flush, tracking:ended fan-out and safety monitor shutdown. Called
// by the trip subsystem at completion.
func (h *TrackingHandler) EndTracking(c echo.Context) error {
	tripID := c.Param("id")
	ctx := c.Request().Context()

	if err := h.trackingUC.EndTripTracking(ctx, tripID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to end tracking")
	}
	h.safetyUC.StopMonitoring(ctx, tripID)

	return c.JSON(http.StatusOK, map[string]string{"trip_id": tripID, "status": "ended"})
}
