package tracking

import (
	"context"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

// LocationCache is the TTL-backed current-location store. It is best-effort:
// implementations degrade to "no data" on backend failure instead of
// returning infrastructure errors.
type LocationCache interface {
	Store(ctx context.Context, record *models.DriverLocationRecord) error
	Get(ctx context.Context, driverID string) (*models.DriverLocationRecord, error)
	GetByTrip(ctx context.Context, tripID string) (*models.DriverLocationRecord, error)
	BatchGet(ctx context.Context, driverIDs []string) (map[string]*models.DriverLocationRecord, error)
	Clear(ctx context.Context, driverID, tripID string) error
}

// HistoryRepo persists append-only tracking history, bounded per trip
type HistoryRepo interface {
	BulkInsert(ctx context.Context, entries []models.TrackingHistoryEntry, perTripLimit int) error
	LastByTrip(ctx context.Context, tripID string) (*models.TrackingHistoryEntry, error)
	RouteSoFar(ctx context.Context, tripID string, limit int) ([]models.TrackingHistoryEntry, error)
}

// StationaryRepo persists stationary safety events
type StationaryRepo interface {
	Create(ctx context.Context, event *models.StationaryEvent) error
	GetByID(ctx context.Context, id string) (*models.StationaryEvent, error)
	Update(ctx context.Context, event *models.StationaryEvent) error
	RecordCallAttempt(ctx context.Context, id string) (int, error)
	// MarkEscalated transitions a still-monitoring event to escalated and
	// reports whether the transition won; a response recorded in the
	// meantime makes it report false.
	MarkEscalated(ctx context.Context, id string, callAttempts int) (bool, error)
	// ListAwaitingResponse returns monitoring events whose safety check has
	// been sent but not answered, for rebuilding timers after a restart.
	ListAwaitingResponse(ctx context.Context) ([]*models.StationaryEvent, error)
}

// SOSRepo persists SOS alerts. AppendTrackingPoint is conditional on the
// alert not being resolved and reports whether the append happened.
type SOSRepo interface {
	Create(ctx context.Context, alert *models.SOSAlert) error
	GetByID(ctx context.Context, id string) (*models.SOSAlert, error)
	Acknowledge(ctx context.Context, id, operatorID string) (*models.SOSAlert, error)
	Resolve(ctx context.Context, alert *models.SOSAlert) error
	AppendTrackingPoint(ctx context.Context, id string, entry models.TrackingHistoryEntry) (bool, error)
	AppendNotificationOutcome(ctx context.Context, id string, outcome models.NotificationOutcome) error
	// ListActiveTracking returns unresolved alerts with continuous tracking
	// still active, for resuming their trackers after a restart.
	ListActiveTracking(ctx context.Context) ([]*models.SOSAlert, error)
}

// SessionRepo stores bounded-window disconnect records for session recovery
type SessionRepo interface {
	SaveDisconnect(ctx context.Context, record *models.DisconnectRecord) error
	FindDisconnect(ctx context.Context, userID, connID string) (*models.DisconnectRecord, error)
	DeleteDisconnect(ctx context.Context, userID, connID string) error
}

// TripRepo is the read model over trips owned by the booking subsystem
type TripRepo interface {
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetEmergencyContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error)
}

// TicketRepo creates support tickets for unanswered escalations
type TicketRepo interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
}
