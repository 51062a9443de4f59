package websocket

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	pkgws "github.com/hushryd/tracking-service/internal/pkg/websocket"
	"github.com/hushryd/tracking-service/services/tracking"
)

// WebSocketHandler drives the per-connection message loop and dispatches
// inbound events to the use cases
type WebSocketHandler struct {
	manager    *pkgws.Manager
	trackingUC tracking.TrackingUC
	safetyUC   tracking.SafetyUC
	sosUC      tracking.SOSUC
	sessions   tracking.SessionRepo
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(
	manager *pkgws.Manager,
	trackingUC tracking.TrackingUC,
	safetyUC tracking.SafetyUC,
	sosUC tracking.SOSUC,
	sessions tracking.SessionRepo,
) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		trackingUC: trackingUC,
		safetyUC:   safetyUC,
		sosUC:      sosUC,
		sessions:   sessions,
	}
}

// Manager exposes the connection manager for route setup and the fabric relay
func (h *WebSocketHandler) Manager() *pkgws.Manager {
	return h.manager
}

// HandleWebSocket authenticates the connection and runs its message loop
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.handleDisconnect(client)

	logger.Info("WebSocket client connected",
		logger.String("conn_id", client.ConnID),
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("conn_id", client.ConnID),
					logger.Err(err))
			}
			return nil
		}
		h.handleMessage(client, msg)
	}
}

// handleMessage routes one inbound event. Unknown events get an error
// frame; handler errors are translated to error frames by each handler.
func (h *WebSocketHandler) handleMessage(client *models.WebSocketClient, msg models.WSMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch msg.Event {
	case constants.EventSubscribe:
		err = h.handleSubscribe(ctx, client, msg.Data)
	case constants.EventUnsubscribe:
		err = h.handleUnsubscribe(ctx, client, msg.Data)
	case constants.EventLocationUpdate:
		err = h.handleLocationUpdate(ctx, client, msg.Data)
	case constants.EventReconnect:
		err = h.handleReconnect(ctx, client, msg.Data)
	case constants.EventSessionRecover:
		err = h.handleSessionRecover(ctx, client, msg.Data)
	case constants.EventSafetyResponse:
		err = h.handleSafetyResponse(ctx, client, msg.Data)
	case constants.EventSOSTrigger:
		err = h.handleSOSTrigger(ctx, client, msg.Data)
	case constants.EventSOSAcknowledge:
		err = h.handleSOSAcknowledge(ctx, client, msg.Data)
	case constants.EventSOSResolve:
		err = h.handleSOSResolve(ctx, client, msg.Data)
	default:
		err = h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "unknown event type")
	}

	if err != nil {
		logger.Warn("WebSocket event handling failed",
			logger.String("conn_id", client.ConnID),
			logger.String("event", msg.Event),
			logger.Err(err))
	}
}

// handleDisconnect unregisters the connection and persists a bounded-window
// disconnect record so the client can recover its trip subscriptions
func (h *WebSocketHandler) handleDisconnect(client *models.WebSocketClient) {
	trips := h.subscribedTrips(client.ConnID)
	h.manager.RemoveClient(client.ConnID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := &models.DisconnectRecord{
		ConnID:          client.ConnID,
		UserID:          client.UserID,
		SubscribedTrips: trips,
		Reason:          "connection closed",
		Timestamp:       time.Now().Unix(),
	}
	if err := h.sessions.SaveDisconnect(ctx, record); err != nil {
		logger.Warn("Failed to persist disconnect record",
			logger.String("conn_id", client.ConnID),
			logger.Err(err))
	}

	logger.Info("WebSocket client disconnected",
		logger.String("conn_id", client.ConnID),
		logger.String("user_id", client.UserID))
}

// subscribedTrips extracts trip ids from the connection's trip rooms
func (h *WebSocketHandler) subscribedTrips(connID string) []string {
	var trips []string
	for _, room := range h.manager.RoomsOf(connID) {
		if !strings.HasPrefix(room, "trip:") || strings.HasSuffix(room, ":driver") {
			continue
		}
		trips = append(trips, strings.TrimPrefix(room, "trip:"))
	}
	return trips
}
