package gateway

import (
	"context"
	"fmt"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	httppkg "github.com/hushryd/tracking-service/internal/pkg/http"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	nsqpkg "github.com/hushryd/tracking-service/internal/pkg/nsq"
	"github.com/hushryd/tracking-service/services/tracking"
)

// notificationJob wraps a queued job with the alert it belongs to so the
// dispatch worker can record the per-recipient outcome.
type notificationJob struct {
	AlertRef string          `json:"alert_ref,omitempty"`
	Push     *models.PushJob `json:"push,omitempty"`
	SMS      *models.SMSJob  `json:"sms,omitempty"`
}

type notifyGW struct {
	producer *nsqpkg.Producer
	client   *httppkg.APIKeyClient
}

// NewNotifyGW creates the notification gateway. Push and SMS ride the job
// queue; voice calls hit the notification collaborator directly because the
// escalation flow needs the synchronous answered/unanswered result.
func NewNotifyGW(producer *nsqpkg.Producer, cfg models.NotificationConfig) tracking.NotifyGW {
	return &notifyGW{
		producer: producer,
		client:   httppkg.NewAPIKeyClient(cfg.ServiceURL, cfg.APIKey),
	}
}

func (g *notifyGW) SubmitPush(ctx context.Context, alertRef string, job *models.PushJob) error {
	return g.producer.Publish(constants.TopicPushNotification, notificationJob{
		AlertRef: alertRef,
		Push:     job,
	})
}

func (g *notifyGW) SubmitSMS(ctx context.Context, alertRef string, job *models.SMSJob) error {
	return g.producer.Publish(constants.TopicSMSNotification, notificationJob{
		AlertRef: alertRef,
		SMS:      job,
	})
}

// PlaceCall asks the notification collaborator to place a voice callback
// and returns whether it was answered
func (g *notifyGW) PlaceCall(ctx context.Context, phone, message string) (*models.CallResult, error) {
	var result models.CallResult
	err := g.client.PostJSON(ctx, "/internal/calls", map[string]string{
		"phone":   phone,
		"message": message,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("voice call request failed: %w", err)
	}
	return &result, nil
}
