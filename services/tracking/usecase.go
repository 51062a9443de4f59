package tracking

import (
	"context"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

// TrackingUC is the location ingestion and query surface
type TrackingUC interface {
	// IngestLocation validates and fans out a location update. Invalid
	// payloads return ErrInvalidLocation and leave no trace.
	IngestLocation(ctx context.Context, update *models.LocationUpdate) error
	// CurrentLocation returns the best-available location for a trip:
	// cache first, last persisted entry as fallback, ErrNoLocationData
	// when neither exists.
	CurrentLocation(ctx context.Context, tripID string) (*models.DriverLocationRecord, error)
	BatchLocations(ctx context.Context, driverIDs []string) (map[string]*models.DriverLocationRecord, error)
	// IsTracked reports whether the trip has live, non-stale location data
	// on this instance or in the cache.
	IsTracked(ctx context.Context, tripID string) bool
	// EndTripTracking evicts the cache, flushes buffered history and
	// announces tracking:ended.
	EndTripTracking(ctx context.Context, tripID string) error
}

// SafetyUC runs the per-trip stationary detector and its escalation
type SafetyUC interface {
	// ObserveLocation feeds one update into the trip's movement state
	// machine. Infra errors are absorbed; observation never fails ingest.
	ObserveLocation(ctx context.Context, update *models.LocationUpdate)
	// RecordResponse records the passenger's answer to a safety check.
	// Responses after resolution return ErrResponseAlreadyRecorded.
	RecordResponse(ctx context.Context, eventID, passengerID, response string) (*models.StationaryEvent, error)
	// StopMonitoring clears the trip's monitor state and cancels any
	// pending escalation for its active event.
	StopMonitoring(ctx context.Context, tripID string)
}

// SOSUC manages the SOS alert lifecycle
type SOSUC interface {
	Trigger(ctx context.Context, tripID, userID, userType string, location models.Location) (*models.SOSAlert, error)
	Notify(ctx context.Context, alertID string) error
	Acknowledge(ctx context.Context, alertID, operatorID string) (*models.SOSAlert, error)
	Resolve(ctx context.Context, alertID, operatorID, resolution string, actionsTaken []string) ([]models.SOSTimelineEntry, error)
	// RecordNotificationOutcome is called by the dispatch worker with the
	// per-recipient result of an out-of-band notification.
	RecordNotificationOutcome(ctx context.Context, alertID string, outcome models.NotificationOutcome) error
}
