package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	natspkg "github.com/hushryd/tracking-service/internal/pkg/nats"
	pkgws "github.com/hushryd/tracking-service/internal/pkg/websocket"
)

// Handler consumes fabric subjects and relays them to the WebSocket rooms
// on this instance. It doubles as the local-delivery sink for publishes
// that could not reach the bus, so both paths share one dispatch table.
type Handler struct {
	client  *natspkg.Client
	manager *pkgws.Manager
	subs    []*nats.Subscription
}

// NewHandler creates the fabric consumer
func NewHandler(client *natspkg.Client, manager *pkgws.Manager) *Handler {
	return &Handler{client: client, manager: manager}
}

// Start subscribes to every fabric subject this instance relays
func (h *Handler) Start() error {
	subjects := []string{
		constants.SubjectLocationUpdate,
		constants.SubjectTripStatus,
		constants.SubjectTripETA,
		constants.SubjectTripProximity,
		constants.SubjectSafetyCheck,
		constants.SubjectSOSAlert,
		constants.SubjectSOSUpdate,
		constants.SubjectSupportEscalation,
		constants.SubjectTrackingEnded,
	}

	for _, subject := range subjects {
		sub, err := h.client.Subscribe(subject, func(msg *nats.Msg) {
			h.dispatch(msg.Subject, msg.Data)
		})
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Fabric consumer started", logger.Int("subjects", len(subjects)))
	return nil
}

// Stop drains the consumer's subscriptions
func (h *Handler) Stop() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe fabric subject", logger.Err(err))
		}
	}
	h.subs = nil
}

// DeliverLocal satisfies the publisher's local fallback: events that never
// reached the bus still fan out to this instance's subscribers
func (h *Handler) DeliverLocal(subject string, data []byte) {
	h.dispatch(subject, data)
}

// dispatch routes one fabric event to its rooms. Payloads that do not
// parse are dropped with a warning; the fabric is at-most-once and a bad
// event is not worth poisoning the relay.
func (h *Handler) dispatch(subject string, data []byte) {
	switch subject {
	case constants.SubjectLocationUpdate:
		var update models.LocationUpdate
		if !h.unmarshal(subject, data, &update) {
			return
		}
		h.manager.BroadcastToRoom(constants.TripRoom(update.TripID), constants.EventTripLocation, update)

	case constants.SubjectTripStatus:
		var event models.TripStatusEvent
		if !h.unmarshal(subject, data, &event) {
			return
		}
		h.manager.BroadcastToRoom(constants.TripRoom(event.TripID), constants.EventTripStatus, event)

	case constants.SubjectTripETA:
		var event models.TripETAEvent
		if !h.unmarshal(subject, data, &event) {
			return
		}
		h.manager.BroadcastToRoom(constants.TripRoom(event.TripID), constants.EventTripETA, event)

	case constants.SubjectTripProximity:
		var event models.ProximityEvent
		if !h.unmarshal(subject, data, &event) {
			return
		}
		h.manager.BroadcastToRoom(constants.TripRoom(event.TripID), constants.EventTripProximity, event)

	case constants.SubjectSafetyCheck:
		var check models.SafetyCheck
		if !h.unmarshal(subject, data, &check) {
			return
		}
		h.manager.BroadcastToRoom(constants.TripRoom(check.TripID), constants.EventSafetyCheck, check)

	case constants.SubjectSOSAlert:
		var alert models.SOSAlert
		if !h.unmarshal(subject, data, &alert) {
			return
		}
		h.manager.BroadcastToRoom(constants.RoomOperations, constants.EventSOSAlert, alert)
		h.manager.BroadcastToRoom(constants.RoomSupport, constants.EventSOSAlert, alert)

	case constants.SubjectSOSUpdate:
		var alert models.SOSAlert
		if !h.unmarshal(subject, data, &alert) {
			return
		}
		h.manager.BroadcastToRoom(constants.RoomOperations, constants.EventSOSUpdate, alert)
		h.manager.BroadcastToRoom(constants.RoomSupport, constants.EventSOSUpdate, alert)
		if alert.TriggeredBy != "" {
			h.manager.BroadcastToRoom(constants.ContactRoom(alert.TriggeredBy), constants.EventSOSUpdate, alert)
		}

	case constants.SubjectSupportEscalation:
		var ticket models.SupportTicket
		if !h.unmarshal(subject, data, &ticket) {
			return
		}
		h.manager.BroadcastToRoom(constants.RoomSupport, constants.EventEscalation, ticket)

	case constants.SubjectTrackingEnded:
		var payload struct {
			TripID string `json:"trip_id"`
		}
		if !h.unmarshal(subject, data, &payload) {
			return
		}
		h.manager.BroadcastToRoom(constants.TripRoom(payload.TripID), constants.EventTrackingEnded, payload)

	default:
		logger.Warn("Unknown fabric subject", logger.String("subject", subject))
	}
}

func (h *Handler) unmarshal(subject string, data []byte, v interface{}) bool {
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("Dropping unparseable fabric event",
			logger.String("subject", subject),
			logger.Err(err))
		return false
	}
	return true
}
