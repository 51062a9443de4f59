package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type safetyResponseRequest struct {
	EventID  string `json:"event_id"`
	Response string `json:"response"`
}

type sosTriggerRequest struct {
	TripID   string          `json:"trip_id"`
	Location models.Location `json:"location"`
}

type sosActionRequest struct {
	AlertID      string   `json:"alert_id"`
	Resolution   string   `json:"resolution,omitempty"`
	ActionsTaken []string `json:"actions_taken,omitempty"`
}

// handleSafetyResponse records the passenger's answer to a safety check.
// The first answer settles the check; duplicates get already_recorded.
func (h *WebSocketHandler) handleSafetyResponse(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var req safetyResponseRequest
	if err := json.Unmarshal(data, &req); err != nil || req.EventID == "" || req.Response == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "event_id and response are required")
	}

	event, err := h.safetyUC.RecordResponse(ctx, req.EventID, client.UserID, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrResponseAlreadyRecorded):
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorAlreadyRecorded, "response already recorded")
		case errors.Is(err, tracking.ErrEventNotFound):
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorNotFound, "safety event not found")
		default:
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "failed to record response")
		}
	}

	return h.manager.SendMessage(client.Conn, constants.EventSafetyCheck, event)
}

// handleSOSTrigger creates an SOS alert from any trip participant and fans
// it out
func (h *WebSocketHandler) handleSOSTrigger(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	var req sosTriggerRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "trip_id is required")
	}

	alert, err := h.sosUC.Trigger(ctx, req.TripID, client.UserID, client.Role, req.Location)
	if err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "failed to trigger SOS")
	}

	if err := h.sosUC.Notify(ctx, alert.ID); err != nil {
		logger.Warn("SOS notification fan-out failed",
			logger.String("alert_id", alert.ID),
			logger.Err(err))
	}

	return h.manager.SendMessage(client.Conn, constants.EventSOSAlert, alert)
}

func (h *WebSocketHandler) handleSOSAcknowledge(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	if client.Role != constants.RoleOperator && client.Role != constants.RoleSupport {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorUnauthorized, "operator role required")
	}

	var req sosActionRequest
	if err := json.Unmarshal(data, &req); err != nil || req.AlertID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "alert_id is required")
	}

	alert, err := h.sosUC.Acknowledge(ctx, req.AlertID, client.UserID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrAlertNotFound):
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorNotFound, "alert not found")
		case errors.Is(err, tracking.ErrAlertAlreadyResolved):
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorAlreadyResolved, "alert already resolved")
		default:
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "failed to acknowledge alert")
		}
	}

	return h.manager.SendMessage(client.Conn, constants.EventSOSUpdate, alert)
}

func (h *WebSocketHandler) handleSOSResolve(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	if client.Role != constants.RoleOperator && client.Role != constants.RoleSupport {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorUnauthorized, "operator role required")
	}

	var req sosActionRequest
	if err := json.Unmarshal(data, &req); err != nil || req.AlertID == "" {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "alert_id is required")
	}

	timeline, err := h.sosUC.Resolve(ctx, req.AlertID, client.UserID, req.Resolution, req.ActionsTaken)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrEmptyResolution):
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "resolution is required")
		case errors.Is(err, tracking.ErrAlertNotFound):
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorNotFound, "alert not found")
		case errors.Is(err, tracking.ErrAlertAlreadyResolved):
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorAlreadyResolved, "alert already resolved")
		default:
			return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "failed to resolve alert")
		}
	}

	return h.manager.SendMessage(client.Conn, constants.EventSOSUpdate, map[string]interface{}{
		"alert_id": req.AlertID,
		"timeline": timeline,
	})
}
