package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/internal/utils"
	"github.com/hushryd/tracking-service/services/tracking"
)

// dashboardNotifyBudget is how long the operator dashboard fan-out may take
// before it is logged as degraded
const dashboardNotifyBudget = 5 * time.Second

// SOSUsecase implements the tracking.SOSUC interface
type SOSUsecase struct {
	alerts    tracking.SOSRepo
	cache     tracking.LocationCache
	history   tracking.HistoryRepo
	trips     tracking.TripRepo
	gw        tracking.BroadcastGW
	notify    tracking.NotifyGW
	escalator *Escalator
	cfg       models.SafetyConfig
	tracking  models.TrackingConfig

	mu       sync.Mutex
	trackers map[string]chan struct{} // alert id -> tracker stop channel
}

// NewSOSUsecase creates the SOS alert lifecycle use case
func NewSOSUsecase(
	alerts tracking.SOSRepo,
	cache tracking.LocationCache,
	history tracking.HistoryRepo,
	trips tracking.TripRepo,
	gw tracking.BroadcastGW,
	notify tracking.NotifyGW,
	escalator *Escalator,
	safetyCfg models.SafetyConfig,
	trackingCfg models.TrackingConfig,
) *SOSUsecase {
	return &SOSUsecase{
		alerts:    alerts,
		cache:     cache,
		history:   history,
		trips:     trips,
		gw:        gw,
		notify:    notify,
		escalator: escalator,
		cfg:       safetyCfg,
		tracking:  trackingCfg,
		trackers:  make(map[string]chan struct{}),
	}
}

// Trigger creates an active critical alert with a journey snapshot and
// starts continuous tracking. It does not fan out notifications; callers
// follow up with Notify so trigger latency stays on the persistence path
// only.
func (s *SOSUsecase) Trigger(ctx context.Context, tripID, userID, userType string, location models.Location) (*models.SOSAlert, error) {
	if tripID == "" || userID == "" {
		return nil, tracking.ErrInvalidLocation
	}
	if !utils.ValidCoordinates(location.Latitude, location.Longitude) {
		return nil, tracking.ErrInvalidLocation
	}
	if location.Timestamp.IsZero() {
		location.Timestamp = time.Now()
	}

	alert := &models.SOSAlert{
		ID:          uuid.New().String(),
		TripID:      tripID,
		TriggeredBy: userID,
		UserType:    userType,
		Status:      models.SOSStatusActive,
		Priority:    models.SOSPriorityCritical,
		Location:    location,
		Journey:     s.buildJourneySnapshot(ctx, tripID),
		ContinuousTracking: models.ContinuousTracking{
			IsActive: true,
			TrackingHistory: []models.TrackingHistoryEntry{{
				TripID:    tripID,
				Latitude:  location.Latitude,
				Longitude: location.Longitude,
				Timestamp: location.Timestamp,
			}},
		},
		CreatedAt: time.Now(),
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create SOS alert: %w", err)
	}

	s.startTracker(alert.ID, tripID)
	logger.Info("SOS alert triggered",
		logger.String("alert_id", alert.ID),
		logger.String("trip_id", tripID),
		logger.String("triggered_by", userID))
	return alert, nil
}

// Rehydrate restarts continuous-tracking loops for alerts that were still
// active when the previous process exited
func (s *SOSUsecase) Rehydrate(ctx context.Context) error {
	alerts, err := s.alerts.ListActiveTracking(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active SOS alerts: %w", err)
	}

	for _, alert := range alerts {
		s.startTracker(alert.ID, alert.TripID)
	}

	if len(alerts) > 0 {
		logger.Info("Resumed continuous tracking for active SOS alerts",
			logger.Int("alerts", len(alerts)))
	}
	return nil
}

// Notify fans the alert out: real-time to operator dashboards and queued
// SMS jobs to emergency contacts. Per-recipient failures are recorded on
// the alert and never abort the remaining recipients.
func (s *SOSUsecase) Notify(ctx context.Context, alertID string) error {
	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return err
	}

	start := time.Now()
	s.gw.PublishSOSAlert(ctx, alert)
	elapsed := time.Since(start)
	if elapsed > dashboardNotifyBudget {
		logger.Warn("SOS dashboard notification exceeded budget",
			logger.String("alert_id", alertID),
			logger.Duration("elapsed", elapsed))
	}
	s.recordOutcome(ctx, alertID, models.NotificationOutcome{
		Channel:   "dashboard",
		Recipient: "operations",
		Success:   true,
		SentAt:    time.Now(),
	})

	contacts, err := s.trips.GetEmergencyContacts(ctx, alert.TriggeredBy)
	if err != nil {
		logger.Warn("Cannot load emergency contacts for SOS alert",
			logger.String("alert_id", alertID),
			logger.Err(err))
		return nil
	}

	message := s.contactMessage(alert)
	for _, contact := range contacts {
		job := &models.SMSJob{Phone: contact.Phone, Message: message}
		if err := s.notify.SubmitSMS(ctx, alertID, job); err != nil {
			logger.Warn("Failed to submit SOS contact SMS job",
				logger.String("alert_id", alertID),
				logger.String("contact", contact.Name),
				logger.Err(err))
			s.recordOutcome(ctx, alertID, models.NotificationOutcome{
				Channel:   "sms",
				Recipient: contact.Phone,
				Success:   false,
				Error:     err.Error(),
				SentAt:    time.Now(),
			})
		}
	}
	return nil
}

// Acknowledge marks the alert as seen by an operator. Acknowledging a
// resolved alert returns ErrAlertAlreadyResolved.
func (s *SOSUsecase) Acknowledge(ctx context.Context, alertID, operatorID string) (*models.SOSAlert, error) {
	alert, err := s.alerts.Acknowledge(ctx, alertID, operatorID)
	if err != nil {
		return nil, err
	}

	s.gw.PublishSOSUpdate(ctx, alert)
	logger.Info("SOS alert acknowledged",
		logger.String("alert_id", alertID),
		logger.String("operator_id", operatorID))
	return alert, nil
}

// Resolve closes the alert, stops continuous tracking, cancels any safety
// escalation linked to it, and returns the ordered alert timeline
func (s *SOSUsecase) Resolve(ctx context.Context, alertID, operatorID, resolution string, actionsTaken []string) ([]models.SOSTimelineEntry, error) {
	if strings.TrimSpace(resolution) == "" {
		return nil, tracking.ErrEmptyResolution
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.Status == models.SOSStatusResolved {
		return nil, tracking.ErrAlertAlreadyResolved
	}

	now := time.Now()
	alert.Status = models.SOSStatusResolved
	alert.ResolvedBy = operatorID
	alert.ResolvedAt = &now
	alert.Resolution = resolution
	alert.ActionsTaken = actionsTaken
	alert.ContinuousTracking.IsActive = false

	if err := s.alerts.Resolve(ctx, alert); err != nil {
		return nil, err
	}

	s.stopTracker(alertID)
	s.escalator.CancelByAlert(alertID)
	s.gw.PublishSOSUpdate(ctx, alert)

	logger.Info("SOS alert resolved",
		logger.String("alert_id", alertID),
		logger.String("operator_id", operatorID),
		logger.String("resolution", resolution))
	return buildTimeline(alert), nil
}

// RecordNotificationOutcome is called by the dispatch worker with the
// per-recipient result of a queued notification
func (s *SOSUsecase) RecordNotificationOutcome(ctx context.Context, alertID string, outcome models.NotificationOutcome) error {
	if outcome.SentAt.IsZero() {
		outcome.SentAt = time.Now()
	}
	return s.alerts.AppendNotificationOutcome(ctx, alertID, outcome)
}

func (s *SOSUsecase) recordOutcome(ctx context.Context, alertID string, outcome models.NotificationOutcome) {
	if err := s.alerts.AppendNotificationOutcome(ctx, alertID, outcome); err != nil {
		logger.Warn("Failed to record notification outcome",
			logger.String("alert_id", alertID),
			logger.String("channel", outcome.Channel),
			logger.Err(err))
	}
}

func (s *SOSUsecase) contactMessage(alert *models.SOSAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EMERGENCY: an SOS was triggered on an active trip. Last location: %.5f, %.5f.",
		alert.Location.Latitude, alert.Location.Longitude)
	if alert.Journey != nil && alert.Journey.Driver.Name != "" {
		fmt.Fprintf(&b, " Driver: %s, vehicle %s %s (%s).",
			alert.Journey.Driver.Name,
			alert.Journey.Vehicle.Color,
			alert.Journey.Vehicle.Model,
			alert.Journey.Vehicle.Plate)
	}
	return b.String()
}

// startTracker launches the continuous re-broadcast loop for an open alert
func (s *SOSUsecase) startTracker(alertID, tripID string) {
	interval := time.Duration(s.cfg.SOSTrackIntervalSec) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	stop := make(chan struct{})
	s.mu.Lock()
	if _, exists := s.trackers[alertID]; exists {
		s.mu.Unlock()
		return
	}
	s.trackers[alertID] = stop
	s.mu.Unlock()

	go s.trackLoop(alertID, tripID, interval, stop)
}

func (s *SOSUsecase) stopTracker(alertID string) {
	s.mu.Lock()
	stop, ok := s.trackers[alertID]
	if ok {
		delete(s.trackers, alertID)
	}
	s.mu.Unlock()
	if ok {
		close(stop)
	}
}

// trackLoop appends the freshest known location to the alert on every tick
// and re-broadcasts it. The append is conditional on the alert still being
// open; a tick that loses the race against Resolve finds zero rows updated
// and shuts the loop down without touching the resolved record.
func (s *SOSUsecase) trackLoop(alertID, tripID string, interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			alive := s.trackTick(ctx, alertID, tripID)
			cancel()
			if !alive {
				s.stopTracker(alertID)
				return
			}
		}
	}
}

func (s *SOSUsecase) trackTick(ctx context.Context, alertID, tripID string) bool {
	entry, ok := s.freshestLocation(ctx, tripID)
	if !ok {
		// No location data this tick; keep the loop alive
		return true
	}

	appended, err := s.alerts.AppendTrackingPoint(ctx, alertID, entry)
	if err != nil {
		logger.Warn("SOS tracking append failed",
			logger.String("alert_id", alertID),
			logger.Err(err))
		return true
	}
	if !appended {
		logger.Debug("SOS alert no longer tracking, stopping loop",
			logger.String("alert_id", alertID))
		return false
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		logger.Warn("SOS tracking re-broadcast skipped",
			logger.String("alert_id", alertID),
			logger.Err(err))
		return true
	}
	s.gw.PublishSOSUpdate(ctx, alert)
	return true
}

// freshestLocation prefers the live cache and falls back to the last
// persisted history entry
func (s *SOSUsecase) freshestLocation(ctx context.Context, tripID string) (models.TrackingHistoryEntry, bool) {
	if record, err := s.cache.GetByTrip(ctx, tripID); err == nil && record != nil {
		return models.TrackingHistoryEntry{
			TripID:    tripID,
			Latitude:  record.Location.Latitude,
			Longitude: record.Location.Longitude,
			Speed:     record.Speed,
			Timestamp: record.Location.Timestamp,
		}, true
	}
	if entry, err := s.history.LastByTrip(ctx, tripID); err == nil && entry != nil {
		return *entry, true
	}
	return models.TrackingHistoryEntry{}, false
}

// buildTimeline flattens the alert lifecycle into an ordered list of steps
func buildTimeline(alert *models.SOSAlert) []models.SOSTimelineEntry {
	timeline := []models.SOSTimelineEntry{{
		Status:    models.SOSStatusActive,
		Actor:     alert.TriggeredBy,
		Timestamp: alert.CreatedAt,
	}}
	if alert.AcknowledgedAt != nil {
		timeline = append(timeline, models.SOSTimelineEntry{
			Status:    models.SOSStatusAcknowledged,
			Actor:     alert.AcknowledgedBy,
			Timestamp: *alert.AcknowledgedAt,
		})
	}
	if alert.ResolvedAt != nil {
		timeline = append(timeline, models.SOSTimelineEntry{
			Status:    models.SOSStatusResolved,
			Actor:     alert.ResolvedBy,
			Timestamp: *alert.ResolvedAt,
		})
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Timestamp.Before(timeline[j].Timestamp)
	})
	return timeline
}
