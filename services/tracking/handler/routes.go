package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hushryd/tracking-service/internal/pkg/middleware"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	pkgws "github.com/hushryd/tracking-service/internal/pkg/websocket"
	"github.com/hushryd/tracking-service/services/tracking"
	httpHandler "github.com/hushryd/tracking-service/services/tracking/handler/http"
	natsHandler "github.com/hushryd/tracking-service/services/tracking/handler/nats"
	nsqHandler "github.com/hushryd/tracking-service/services/tracking/handler/nsq"
	wsHandler "github.com/hushryd/tracking-service/services/tracking/handler/websocket"
)

// Handler combines the service's transport surfaces: WebSocket gateway,
// internal HTTP API, fabric relay and notification dispatch worker
type Handler struct {
	ws     *wsHandler.WebSocketHandler
	http   *httpHandler.TrackingHandler
	fabric *natsHandler.Handler
	worker *nsqHandler.Worker
	cfg    *models.Config
}

// NewHandler creates the combined handler. The fabric relay is constructed
// by the caller because the broadcast gateway uses it as its local-delivery
// fallback before the use cases exist.
func NewHandler(
	manager *pkgws.Manager,
	trackingUC tracking.TrackingUC,
	safetyUC tracking.SafetyUC,
	sosUC tracking.SOSUC,
	sessions tracking.SessionRepo,
	fabric *natsHandler.Handler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ws:     wsHandler.NewWebSocketHandler(manager, trackingUC, safetyUC, sosUC, sessions),
		http:   httpHandler.NewTrackingHandler(trackingUC, safetyUC, manager),
		fabric: fabric,
		worker: nsqHandler.NewWorker(sosUC, cfg.Notification),
		cfg:    cfg,
	}
}

// RegisterRoutes mounts the WebSocket endpoint and the internal API
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestLogger())

	e.GET("/ws", h.ws.HandleWebSocket)

	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.Notification.APIKey))
	internal.GET("/trips/:id/location", h.http.GetTripLocation)
	internal.GET("/trips/:id/subscribers", h.http.GetTripSubscribers)
	internal.GET("/trips/:id/tracked", h.http.GetTripTracked)
	internal.GET("/drivers/locations", h.http.BatchLocations)
	internal.DELETE("/trips/:id/tracking", h.http.EndTracking)
}

// InitNATSConsumers starts the fabric relay subscriptions
func (h *Handler) InitNATSConsumers() error {
	return h.fabric.Start()
}

// StartNSQWorkers starts the notification dispatch worker
func (h *Handler) StartNSQWorkers() error {
	return h.worker.Start(h.cfg.NSQ.NSQDAddress)
}

// Stop tears down the consumers
func (h *Handler) Stop() {
	h.fabric.Stop()
	h.worker.Stop()
}
