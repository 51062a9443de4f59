package tracking

import (
	"context"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

// BroadcastGW is the cross-process fan-out fabric. Publish failures degrade
// to local-only delivery and are logged, never returned to the caller.
type BroadcastGW interface {
	PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate)
	PublishProximity(ctx context.Context, event *models.ProximityEvent)
	PublishSafetyCheck(ctx context.Context, check *models.SafetyCheck)
	PublishSOSAlert(ctx context.Context, alert *models.SOSAlert)
	PublishSOSUpdate(ctx context.Context, alert *models.SOSAlert)
	PublishSupportEscalation(ctx context.Context, ticket *models.SupportTicket)
	PublishTrackingEnded(ctx context.Context, tripID string)
}

// NotifyGW submits out-of-band notification work. Push and SMS are
// fire-and-forget job submissions; PlaceCall is synchronous because the
// escalation path needs the answered/unanswered outcome.
type NotifyGW interface {
	SubmitPush(ctx context.Context, alertRef string, job *models.PushJob) error
	SubmitSMS(ctx context.Context, alertRef string, job *models.SMSJob) error
	PlaceCall(ctx context.Context, phone, message string) (*models.CallResult, error)
}
