package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

// handleSubscribe joins the trip room and immediately pushes the current
// location so a late joiner does not wait for the next live tick
func (h *WebSocketHandler) handleSubscribe(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var req models.SubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "trip_id is required")
	}

	h.manager.JoinRoom(client.ConnID, constants.TripRoom(req.TripID))
	if client.Role == constants.RoleDriver {
		h.manager.JoinRoom(client.ConnID, constants.TripDriverRoom(req.TripID))
	}

	if record, err := h.trackingUC.CurrentLocation(ctx, req.TripID); err == nil {
		if sendErr := h.manager.SendMessage(client.Conn, constants.EventTripLocation, record); sendErr != nil {
			logger.Warn("Failed to push current location on subscribe",
				logger.String("conn_id", client.ConnID),
				logger.Err(sendErr))
		}
	} else if !errors.Is(err, tracking.ErrNoLocationData) {
		logger.Warn("Current location lookup failed on subscribe",
			logger.String("trip_id", req.TripID),
			logger.Err(err))
	}

	return h.manager.SendMessage(client.Conn, constants.EventSubscribed, map[string]string{
		"trip_id": req.TripID,
	})
}

func (h *WebSocketHandler) handleUnsubscribe(_ context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var req models.SubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "trip_id is required")
	}

	h.manager.LeaveRoom(client.ConnID, constants.TripRoom(req.TripID))
	h.manager.LeaveRoom(client.ConnID, constants.TripDriverRoom(req.TripID))

	return h.manager.SendMessage(client.Conn, constants.EventUnsubscribed, map[string]string{
		"trip_id": req.TripID,
	})
}

// handleReconnect rejoins a trip room after a drop and reports whether
// updates were missed since the client's last known timestamp
func (h *WebSocketHandler) handleReconnect(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var req models.ReconnectRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "trip_id is required")
	}

	h.manager.JoinRoom(client.ConnID, constants.TripRoom(req.TripID))
	if client.Role == constants.RoleDriver {
		h.manager.JoinRoom(client.ConnID, constants.TripDriverRoom(req.TripID))
	}

	resp := map[string]interface{}{
		"trip_id":        req.TripID,
		"missed_updates": false,
	}
	record, err := h.trackingUC.CurrentLocation(ctx, req.TripID)
	if err == nil {
		resp["current_location"] = record
		if req.LastKnownTimestamp > 0 {
			last := time.Unix(req.LastKnownTimestamp, 0)
			resp["missed_updates"] = record.Location.Timestamp.After(last)
		}
	} else if !errors.Is(err, tracking.ErrNoLocationData) {
		logger.Warn("Current location lookup failed on reconnect",
			logger.String("trip_id", req.TripID),
			logger.Err(err))
	}

	return h.manager.SendMessage(client.Conn, constants.EventReconnected, resp)
}

// handleSessionRecover restores the trip subscriptions persisted for the
// client's previous connection, if the recovery window has not lapsed
func (h *WebSocketHandler) handleSessionRecover(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var req models.SessionRecoverRequest
	if err := json.Unmarshal(data, &req); err != nil || req.PreviousConnectionID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "previous_connection_id is required")
	}

	record, err := h.sessions.FindDisconnect(ctx, client.UserID, req.PreviousConnectionID)
	if err != nil {
		if errors.Is(err, tracking.ErrSessionNotFound) {
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorNotFound, "no recoverable session")
		}
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "session lookup failed")
	}

	for _, tripID := range record.SubscribedTrips {
		h.manager.JoinRoom(client.ConnID, constants.TripRoom(tripID))
		if client.Role == constants.RoleDriver {
			h.manager.JoinRoom(client.ConnID, constants.TripDriverRoom(tripID))
		}
	}

	if err := h.sessions.DeleteDisconnect(ctx, client.UserID, req.PreviousConnectionID); err != nil {
		logger.Warn("Failed to delete consumed disconnect record",
			logger.String("conn_id", req.PreviousConnectionID),
			logger.Err(err))
	}

	return h.manager.SendMessage(client.Conn, constants.EventSessionRecovered, map[string]interface{}{
		"recovered_trips": record.SubscribedTrips,
	})
}
