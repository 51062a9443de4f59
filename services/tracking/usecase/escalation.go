package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

// Escalator schedules one-shot escalation timers keyed by stationary event
// id. Handles are cancelable, and a callback that fires after cancellation
// or resolution must find the terminal state and no-op.
type Escalator struct {
	events  tracking.StationaryRepo
	trips   tracking.TripRepo
	tickets tracking.TicketRepo
	gw      tracking.BroadcastGW
	notify  tracking.NotifyGW
	delay   time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer // stationary event id -> pending timer
	byAlert map[string]string      // sos alert id -> stationary event id
}

// NewEscalator creates the escalation scheduler
func NewEscalator(
	events tracking.StationaryRepo,
	trips tracking.TripRepo,
	tickets tracking.TicketRepo,
	gw tracking.BroadcastGW,
	notify tracking.NotifyGW,
	cfg models.SafetyConfig,
) *Escalator {
	delay := time.Duration(cfg.EscalationDelayMinutes) * time.Minute
	if delay <= 0 {
		delay = 5 * time.Minute
	}
	return &Escalator{
		events:  events,
		trips:   trips,
		tickets: tickets,
		gw:      gw,
		notify:  notify,
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		byAlert: make(map[string]string),
	}
}

// Schedule arms the one-shot timer for an event's safety check
func (e *Escalator) Schedule(eventID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.timers[eventID]; exists {
		return
	}
	e.timers[eventID] = time.AfterFunc(e.delay, func() {
		e.mu.Lock()
		delete(e.timers, eventID)
		e.mu.Unlock()
		e.fire(eventID)
	})
}

// Cancel disarms a pending timer. Synchronous: after it returns the timer
// either never fires or its callback finds the event already resolved.
func (e *Escalator) Cancel(eventID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if timer, exists := e.timers[eventID]; exists {
		timer.Stop()
		delete(e.timers, eventID)
	}
}

// LinkAlert remembers which event an SOS alert came from so resolving the
// alert can cancel the event's timer
func (e *Escalator) LinkAlert(alertID, eventID string) {
	e.mu.Lock()
	e.byAlert[alertID] = eventID
	e.mu.Unlock()
}

// CancelByAlert cancels the timer linked to an SOS alert, if any
func (e *Escalator) CancelByAlert(alertID string) {
	e.mu.Lock()
	eventID, ok := e.byAlert[alertID]
	delete(e.byAlert, alertID)
	e.mu.Unlock()

	if ok {
		e.Cancel(eventID)
	}
}

// Pending reports whether a timer is armed for the event
func (e *Escalator) Pending(eventID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, exists := e.timers[eventID]
	return exists
}

// fire runs when the escalation delay elapses with no passenger response.
// It re-reads the event and no-ops on any already-settled state to close
// the fire/cancel race.
func (e *Escalator) fire(eventID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	event, err := e.events.GetByID(ctx, eventID)
	if err != nil {
		logger.Warn("Escalation fired for unknown stationary event",
			logger.String("event_id", eventID),
			logger.Err(err))
		return
	}
	if event.PassengerResponse != "" || event.Resolved() || event.Status != models.StationaryMonitoring {
		logger.Debug("Escalation fired after event settled, ignoring",
			logger.String("event_id", eventID),
			logger.String("status", string(event.Status)))
		return
	}

	trip, err := e.trips.GetTrip(ctx, event.TripID)
	if err != nil {
		logger.Error("Escalation cannot resolve trip for callback",
			logger.String("event_id", eventID),
			logger.Err(err))
		e.openTicket(ctx, event, 0)
		return
	}

	result, callErr := e.notify.PlaceCall(ctx, trip.PassengerPhone,
		"This is a safety check from your ride provider. Your vehicle has been stationary for a while. Please respond in the app.")
	attempts, err := e.events.RecordCallAttempt(ctx, eventID)
	if err != nil {
		logger.Warn("Failed to record call attempt",
			logger.String("event_id", eventID),
			logger.Err(err))
	}

	if callErr != nil {
		logger.Warn("Safety callback failed",
			logger.String("event_id", eventID),
			logger.Err(callErr))
	}
	if callErr == nil && result.Answered {
		logger.Info("Safety callback answered",
			logger.String("event_id", eventID),
			logger.Int("attempts", attempts))
		return
	}

	e.openTicket(ctx, event, attempts)
}

// openTicket records an unanswered escalation as a support ticket and
// notifies the support dashboard in real time. The escalated transition is
// claimed conditionally first: a passenger response recorded during the
// callback window keeps its state and no ticket is opened.
func (e *Escalator) openTicket(ctx context.Context, event *models.StationaryEvent, attempts int) {
	claimed, err := e.events.MarkEscalated(ctx, event.ID, attempts)
	if err != nil {
		logger.Error("Failed to mark stationary event escalated",
			logger.String("event_id", event.ID),
			logger.Err(err))
		return
	}
	if !claimed {
		logger.Debug("Event settled during callback window, skipping ticket",
			logger.String("event_id", event.ID))
		return
	}

	stationaryFor := time.Since(event.StartedAt)
	ticket := &models.SupportTicket{
		ID:                uuid.New().String(),
		TripID:            event.TripID,
		StationaryEventID: event.ID,
		Subject:           "Unanswered stationary-vehicle safety check",
		Description: fmt.Sprintf(
			"Vehicle on trip %s stationary for %.0f minutes. Safety check unanswered after %d call attempt(s).",
			event.TripID, stationaryFor.Minutes(), attempts),
		Latitude:          event.Latitude,
		Longitude:         event.Longitude,
		StationaryMinutes: stationaryFor.Minutes(),
		Priority:          "high",
		CreatedAt:         time.Now(),
	}

	if err := e.tickets.Create(ctx, ticket); err != nil {
		logger.Error("Failed to create escalation support ticket",
			logger.String("event_id", event.ID),
			logger.Err(err))
		// Still broadcast so operators see the escalation
	}

	e.gw.PublishSupportEscalation(ctx, ticket)
	logger.Info("Stationary safety check escalated to support",
		logger.String("event_id", event.ID),
		logger.String("ticket_id", ticket.ID))
}
