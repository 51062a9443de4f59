package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	natspkg "github.com/hushryd/tracking-service/internal/pkg/nats"
	"github.com/hushryd/tracking-service/services/tracking"
)

// publishBudget is the monitored publish-latency SLO. Exceeding it is a
// logged warning, not a failure.
const publishBudget = time.Second

// LocalDelivery receives events that could not reach the bus so subscribers
// on this instance still see them. The fabric consumer implements it.
type LocalDelivery interface {
	DeliverLocal(subject string, data []byte)
}

type broadcastGW struct {
	natsClient *natspkg.Client
	local      LocalDelivery
}

// NewBroadcastGW creates the fabric publisher. When the bus is unavailable,
// events degrade to local-only delivery and the failure is logged, never
// returned to callers.
func NewBroadcastGW(natsClient *natspkg.Client, local LocalDelivery) tracking.BroadcastGW {
	return &broadcastGW{natsClient: natsClient, local: local}
}

func (g *broadcastGW) publish(subject string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal fabric payload",
			logger.String("subject", subject),
			logger.Err(err))
		return
	}

	start := time.Now()
	if !g.natsClient.IsConnected() {
		logger.Warn("Fabric unavailable, falling back to local delivery",
			logger.String("subject", subject))
		g.local.DeliverLocal(subject, data)
		return
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		logger.Warn("Fabric publish failed, falling back to local delivery",
			logger.String("subject", subject),
			logger.Err(err))
		g.local.DeliverLocal(subject, data)
		return
	}

	if elapsed := time.Since(start); elapsed > publishBudget {
		logger.Warn("Fabric publish exceeded latency budget",
			logger.String("subject", subject),
			logger.Duration("elapsed", elapsed))
	}
}

func (g *broadcastGW) PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) {
	g.publish(constants.SubjectLocationUpdate, update)
}

func (g *broadcastGW) PublishProximity(ctx context.Context, event *models.ProximityEvent) {
	g.publish(constants.SubjectTripProximity, event)
}

func (g *broadcastGW) PublishSafetyCheck(ctx context.Context, check *models.SafetyCheck) {
	g.publish(constants.SubjectSafetyCheck, check)
}

func (g *broadcastGW) PublishSOSAlert(ctx context.Context, alert *models.SOSAlert) {
	g.publish(constants.SubjectSOSAlert, alert)
}

func (g *broadcastGW) PublishSOSUpdate(ctx context.Context, alert *models.SOSAlert) {
	g.publish(constants.SubjectSOSUpdate, alert)
}

func (g *broadcastGW) PublishSupportEscalation(ctx context.Context, ticket *models.SupportTicket) {
	g.publish(constants.SubjectSupportEscalation, ticket)
}

func (g *broadcastGW) PublishTrackingEnded(ctx context.Context, tripID string) {
	g.publish(constants.SubjectTrackingEnded, map[string]string{"trip_id": tripID})
}
