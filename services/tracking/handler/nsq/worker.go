package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gonsq "github.com/nsqio/go-nsq"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	httppkg "github.com/hushryd/tracking-service/internal/pkg/http"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	nsqpkg "github.com/hushryd/tracking-service/internal/pkg/nsq"
	"github.com/hushryd/tracking-service/internal/pkg/retry"
	"github.com/hushryd/tracking-service/services/tracking"
)

// dispatchJob mirrors the producer-side envelope
type dispatchJob struct {
	AlertRef string          `json:"alert_ref,omitempty"`
	Push     *models.PushJob `json:"push,omitempty"`
	SMS      *models.SMSJob  `json:"sms,omitempty"`
}

// Worker consumes queued push and SMS jobs, delivers them through the
// notification collaborator, and records the per-recipient outcome on the
// alert that queued them. Transient delivery failures are retried with
// backoff inside one handling pass; jobs are never requeued, so an
// exhausted delivery is recorded as a failed outcome, not retried blind.
type Worker struct {
	sosUC     tracking.SOSUC
	client    *httppkg.APIKeyClient
	retrier   *retry.Retrier
	consumers []*nsqpkg.Consumer
}

// NewWorker creates the notification dispatch worker
func NewWorker(sosUC tracking.SOSUC, cfg models.NotificationConfig) *Worker {
	return &Worker{
		sosUC:   sosUC,
		client:  httppkg.NewAPIKeyClient(cfg.ServiceURL, cfg.APIKey),
		retrier: retry.New(retry.DefaultConfig()),
	}
}

// Start connects a consumer per topic to the nsqd address
func (w *Worker) Start(nsqdAddress string) error {
	topics := []string{
		constants.TopicPushNotification,
		constants.TopicSMSNotification,
	}

	for _, topic := range topics {
		consumer, err := nsqpkg.NewConsumer(topic, constants.ChannelNotificationWorker, gonsq.HandlerFunc(w.handleMessage))
		if err != nil {
			return fmt.Errorf("failed to create consumer for %s: %w", topic, err)
		}
		if err := consumer.ConnectToNSQD(nsqdAddress); err != nil {
			return fmt.Errorf("failed to connect consumer for %s: %w", topic, err)
		}
		w.consumers = append(w.consumers, consumer)
	}

	logger.Info("Notification dispatch worker started",
		logger.Int("topics", len(topics)))
	return nil
}

// Stop drains the worker's consumers
func (w *Worker) Stop() {
	for _, consumer := range w.consumers {
		consumer.Stop()
	}
	w.consumers = nil
}

func (w *Worker) handleMessage(msg *gonsq.Message) error {
	var job dispatchJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		logger.Warn("Dropping unparseable notification job", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch {
	case job.Push != nil:
		w.record(ctx, job.AlertRef, models.NotificationOutcome{
			Channel:   "push",
			Recipient: job.Push.UserID,
			SentAt:    time.Now(),
		}, w.deliver(ctx, "/internal/push", job.Push))
	case job.SMS != nil:
		w.record(ctx, job.AlertRef, models.NotificationOutcome{
			Channel:   "sms",
			Recipient: job.SMS.Phone,
			SentAt:    time.Now(),
		}, w.deliver(ctx, "/internal/sms", job.SMS))
	default:
		logger.Warn("Notification job carries no payload",
			logger.String("alert_ref", job.AlertRef))
	}
	return nil
}

// deliver posts one job to the notification collaborator, retrying
// transient failures before giving up
func (w *Worker) deliver(ctx context.Context, path string, payload interface{}) error {
	return w.retrier.Do(ctx, func(ctx context.Context) error {
		return w.client.PostJSON(ctx, path, payload, nil)
	})
}

// record writes the delivery outcome back onto the alert, when the job
// references one
func (w *Worker) record(ctx context.Context, alertRef string, outcome models.NotificationOutcome, deliverErr error) {
	outcome.Success = deliverErr == nil
	if deliverErr != nil {
		outcome.Error = deliverErr.Error()
		logger.Warn("Notification delivery failed",
			logger.String("channel", outcome.Channel),
			logger.String("alert_ref", alertRef),
			logger.Err(deliverErr))
	}

	if alertRef == "" {
		return
	}
	if err := w.sosUC.RecordNotificationOutcome(ctx, alertRef, outcome); err != nil {
		logger.Warn("Failed to record notification outcome",
			logger.String("alert_ref", alertRef),
			logger.Err(err))
	}
}
