package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/internal/utils"
	"github.com/hushryd/tracking-service/services/tracking"
)

// monitorState tracks one trip's movement window. The baseline is the
// anchor point: any reading within the stationary radius of it counts as
// still, and a reading beyond it resets the window.
type monitorState struct {
	baseline    models.Location
	baselineAt  time.Time
	alertRaised bool
	eventID     string
}

// SafetyUC implements the tracking.SafetyUC interface: a per-trip
// stationary-vehicle detector feeding the escalation scheduler
type SafetyUC struct {
	events    tracking.StationaryRepo
	trips     tracking.TripRepo
	sos       tracking.SOSUC
	gw        tracking.BroadcastGW
	notify    tracking.NotifyGW
	escalator *Escalator
	cfg       models.SafetyConfig

	mu       sync.Mutex
	monitors map[string]*monitorState // trip id -> movement window
}

// NewSafetyUC creates the stationary safety use case
func NewSafetyUC(
	events tracking.StationaryRepo,
	trips tracking.TripRepo,
	sos tracking.SOSUC,
	gw tracking.BroadcastGW,
	notify tracking.NotifyGW,
	escalator *Escalator,
	cfg models.SafetyConfig,
) *SafetyUC {
	return &SafetyUC{
		events:    events,
		trips:     trips,
		sos:       sos,
		gw:        gw,
		notify:    notify,
		escalator: escalator,
		cfg:       cfg,
		monitors:  make(map[string]*monitorState),
	}
}

// Rehydrate rebuilds monitor state and escalation timers for safety checks
// that were still unanswered when the previous process exited. Each timer
// restarts with the full escalation delay; the event row, not the timer,
// is the durable record.
func (s *SafetyUC) Rehydrate(ctx context.Context) error {
	events, err := s.events.ListAwaitingResponse(ctx)
	if err != nil {
		return fmt.Errorf("failed to list alerted stationary events: %w", err)
	}

	for _, event := range events {
		s.mu.Lock()
		s.monitors[event.TripID] = &monitorState{
			baseline: models.Location{
				Latitude:  event.Latitude,
				Longitude: event.Longitude,
			},
			baselineAt:  event.StartedAt,
			alertRaised: true,
			eventID:     event.ID,
		}
		s.mu.Unlock()

		s.escalator.Schedule(event.ID)
	}

	if len(events) > 0 {
		logger.Info("Rearmed escalation timers for open safety checks",
			logger.Int("events", len(events)))
	}
	return nil
}

// ObserveLocation feeds one update into the trip's movement window. Infra
// errors are logged and absorbed so observation never fails ingestion.
func (s *SafetyUC) ObserveLocation(ctx context.Context, update *models.LocationUpdate) {
	at := update.Location.Timestamp
	if at.IsZero() {
		at = time.Now()
	}

	s.mu.Lock()
	state, ok := s.monitors[update.TripID]
	if !ok {
		s.monitors[update.TripID] = &monitorState{
			baseline:   update.Location,
			baselineAt: at,
		}
		s.mu.Unlock()
		return
	}

	dist := utils.LocationDistanceMeters(state.baseline, update.Location)
	if dist > s.cfg.StationaryRadiusM {
		// Movement resets the window and closes any open check
		eventID := state.eventID
		raised := state.alertRaised
		state.baseline = update.Location
		state.baselineAt = at
		state.alertRaised = false
		state.eventID = ""
		s.mu.Unlock()

		if raised && eventID != "" {
			s.resolveEvent(ctx, eventID, "vehicle moved")
		}
		return
	}

	still := at.Sub(state.baselineAt)
	threshold := time.Duration(s.cfg.StationaryAfterMinutes) * time.Minute
	if state.alertRaised || still < threshold {
		s.mu.Unlock()
		return
	}
	state.alertRaised = true
	s.mu.Unlock()

	eventID := s.raiseSafetyCheck(ctx, update, still)

	s.mu.Lock()
	if state, ok := s.monitors[update.TripID]; ok {
		state.eventID = eventID
	}
	s.mu.Unlock()
}

// raiseSafetyCheck persists a stationary event, alerts the passenger over
// both channels and arms the escalation timer. Returns the event id, or
// empty on persistence failure (the window flag stays set so a transient
// failure does not re-alert on every subsequent ping).
func (s *SafetyUC) raiseSafetyCheck(ctx context.Context, update *models.LocationUpdate, still time.Duration) string {
	now := time.Now()
	event := &models.StationaryEvent{
		ID:          uuid.New().String(),
		TripID:      update.TripID,
		Latitude:    update.Location.Latitude,
		Longitude:   update.Location.Longitude,
		Status:      models.StationaryMonitoring,
		StartedAt:   now.Add(-still),
		AlertSentAt: &now,
	}
	if trip, err := s.trips.GetTrip(ctx, update.TripID); err == nil {
		event.PassengerID = trip.PassengerID
	} else {
		logger.Warn("Stationary event raised without trip read model",
			logger.String("trip_id", update.TripID),
			logger.Err(err))
	}

	if err := s.events.Create(ctx, event); err != nil {
		logger.Error("Failed to persist stationary event",
			logger.String("trip_id", update.TripID),
			logger.Err(err))
		return ""
	}

	check := &models.SafetyCheck{
		EventID: event.ID,
		TripID:  event.TripID,
		Message: fmt.Sprintf("Your vehicle has been stationary for %.0f minutes. Are you okay?", still.Minutes()),
		Options: models.SafetyCheckOptions,
		Location: models.Location{
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
			Timestamp: now,
		},
	}
	s.gw.PublishSafetyCheck(ctx, check)

	if event.PassengerID != "" {
		push := &models.PushJob{
			UserID: event.PassengerID,
			Title:  "Safety check",
			Body:   check.Message,
			Data: map[string]string{
				"event_id": event.ID,
				"trip_id":  event.TripID,
				"type":     "safety_check",
			},
		}
		// No alert ref: outcome recording is for SOS alerts only
		if err := s.notify.SubmitPush(ctx, "", push); err != nil {
			logger.Warn("Failed to submit safety check push job",
				logger.String("event_id", event.ID),
				logger.Err(err))
		}
	}

	s.escalator.Schedule(event.ID)
	logger.Info("Stationary safety check raised",
		logger.String("trip_id", event.TripID),
		logger.String("event_id", event.ID),
		logger.Duration("stationary_for", still))
	return event.ID
}

// RecordResponse records the passenger's answer to a safety check. The
// first response wins; anything after a settled state returns
// ErrResponseAlreadyRecorded.
func (s *SafetyUC) RecordResponse(ctx context.Context, eventID, passengerID, response string) (*models.StationaryEvent, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Resolved() || event.PassengerResponse != "" {
		return nil, tracking.ErrResponseAlreadyRecorded
	}

	s.escalator.Cancel(eventID)

	now := time.Now()
	event.PassengerResponse = response
	event.ResponseAt = &now

	switch response {
	case models.SafetyResponseSafe:
		event.Status = models.StationarySafeConfirmed
		event.Resolution = "passenger confirmed safety"
		event.ResolvedAt = &now
	case models.SafetyResponseHelp:
		event.Status = models.StationaryHelpRequested
		alert, sosErr := s.sos.Trigger(ctx, event.TripID, passengerID, "passenger", models.Location{
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
			Timestamp: now,
		})
		if sosErr != nil {
			logger.Error("Failed to trigger SOS from safety response",
				logger.String("event_id", eventID),
				logger.Err(sosErr))
		} else {
			event.SOSAlertID = alert.ID
			s.escalator.LinkAlert(alert.ID, eventID)
		}
	default:
		return nil, fmt.Errorf("unknown safety response %q", response)
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	// Fan out the alert after the event records the link, so a resolve
	// racing the notify still finds SOSAlertID set
	if event.SOSAlertID != "" {
		if err := s.sos.Notify(ctx, event.SOSAlertID); err != nil {
			logger.Warn("SOS notification fan-out failed",
				logger.String("alert_id", event.SOSAlertID),
				logger.Err(err))
		}
	}

	logger.Info("Safety check response recorded",
		logger.String("event_id", eventID),
		logger.String("response", response))
	return event, nil
}

// StopMonitoring drops the trip's movement window and settles any check
// still open when the trip ends
func (s *SafetyUC) StopMonitoring(ctx context.Context, tripID string) {
	s.mu.Lock()
	state, ok := s.monitors[tripID]
	delete(s.monitors, tripID)
	s.mu.Unlock()

	if !ok || state.eventID == "" {
		return
	}
	s.resolveEvent(ctx, state.eventID, "trip ended")
}

// resolveEvent closes a still-open monitoring event. Settled events are
// left untouched so a late movement ping cannot overwrite a passenger
// response or an escalation.
func (s *SafetyUC) resolveEvent(ctx context.Context, eventID, resolution string) {
	s.escalator.Cancel(eventID)

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		logger.Warn("Cannot resolve stationary event",
			logger.String("event_id", eventID),
			logger.Err(err))
		return
	}
	if event.Status != models.StationaryMonitoring {
		return
	}

	now := time.Now()
	event.Status = models.StationaryResolved
	event.Resolution = resolution
	event.ResolvedAt = &now
	if err := s.events.Update(ctx, event); err != nil {
		logger.Warn("Failed to resolve stationary event",
			logger.String("event_id", eventID),
			logger.Err(err))
		return
	}
	logger.Info("Stationary event resolved",
		logger.String("event_id", eventID),
		logger.String("resolution", resolution))
}
