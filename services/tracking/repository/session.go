package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/database"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type sessionRepo struct {
	redisClient *database.RedisClient
	window      time.Duration
}

// NewSessionRepo creates the disconnect-record store. Records expire after
// the recovery window, which is what makes recovery bounded.
func NewSessionRepo(redisClient *database.RedisClient, cfg models.TrackingConfig) tracking.SessionRepo {
	return &sessionRepo{
		redisClient: redisClient,
		window:      time.Duration(cfg.SessionWindowSeconds) * time.Second,
	}
}

func (r *sessionRepo) SaveDisconnect(ctx context.Context, record *models.DisconnectRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal disconnect record: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDisconnectRecord, record.UserID, record.ConnID)
	if err := r.redisClient.Set(ctx, key, data, r.window); err != nil {
		return fmt.Errorf("failed to save disconnect record: %w", err)
	}
	return nil
}

func (r *sessionRepo) FindDisconnect(ctx context.Context, userID, connID string) (*models.DisconnectRecord, error) {
	key := fmt.Sprintf(constants.KeyDisconnectRecord, userID, connID)

	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, tracking.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read disconnect record: %w", err)
	}

	var record models.DisconnectRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal disconnect record: %w", err)
	}
	return &record, nil
}

func (r *sessionRepo) DeleteDisconnect(ctx context.Context, userID, connID string) error {
	key := fmt.Sprintf(constants.KeyDisconnectRecord, userID, connID)
	return r.redisClient.Delete(ctx, key)
}
