package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

func TestSessionRepoSaveAndFind(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewSessionRepo(client, models.TrackingConfig{SessionWindowSeconds: 600})
	ctx := context.Background()

	record := &models.DisconnectRecord{
		ConnID:          "conn-1",
		UserID:          "user-1",
		SubscribedTrips: []string{"trip-1", "trip-2"},
		Reason:          "connection closed",
		Timestamp:       time.Now().Unix(),
	}
	require.NoError(t, repo.SaveDisconnect(ctx, record))

	got, err := repo.FindDisconnect(ctx, "user-1", "conn-1")
	require.NoError(t, err)
	assert.Equal(t, record.SubscribedTrips, got.SubscribedTrips)
	assert.Equal(t, "user-1", got.UserID)
}

func TestSessionRepoWindowExpiry(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewSessionRepo(client, models.TrackingConfig{SessionWindowSeconds: 600})
	ctx := context.Background()

	require.NoError(t, repo.SaveDisconnect(ctx, &models.DisconnectRecord{
		ConnID: "conn-1",
		UserID: "user-1",
	}))

	mr.FastForward(601 * time.Second)

	_, err := repo.FindDisconnect(ctx, "user-1", "conn-1")
	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
}

func TestSessionRepoDelete(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewSessionRepo(client, models.TrackingConfig{SessionWindowSeconds: 600})
	ctx := context.Background()

	require.NoError(t, repo.SaveDisconnect(ctx, &models.DisconnectRecord{
		ConnID: "conn-1",
		UserID: "user-1",
	}))
	require.NoError(t, repo.DeleteDisconnect(ctx, "user-1", "conn-1"))

	_, err := repo.FindDisconnect(ctx, "user-1", "conn-1")
	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
}

func TestSessionRepoFindUnknown(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewSessionRepo(client, models.TrackingConfig{SessionWindowSeconds: 600})

	_, err := repo.FindDisconnect(context.Background(), "user-1", "never-existed")
	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
}
