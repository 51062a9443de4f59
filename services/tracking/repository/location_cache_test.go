package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/database"
	"github.com/hushryd/tracking-service/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and a client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &database.RedisClient{Client: client}
}

func testCacheConfig() models.TrackingConfig {
	return models.TrackingConfig{
		CacheTTLSeconds:   300,
		StaleAfterSeconds: 60,
	}
}

func sampleRecord(driverID, tripID string) *models.DriverLocationRecord {
	return &models.DriverLocationRecord{
		DriverID: driverID,
		TripID:   tripID,
		Location: models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
			Timestamp: time.Now(),
		},
		Speed:   12.5,
		Heading: 270,
	}
}

func TestLocationCacheStoreAndGet(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewLocationCache(client, testCacheConfig())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleRecord("driver-1", "trip-1")))

	record, err := cache.Get(ctx, "driver-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "driver-1", record.DriverID)
	assert.Equal(t, "trip-1", record.TripID)
	assert.InDelta(t, -6.175392, record.Location.Latitude, 0.000001)
	assert.InDelta(t, 12.5, record.Speed, 0.001)
	assert.False(t, record.IsStale)

	// Both the record and the trip index carry the TTL
	key := fmt.Sprintf(constants.KeyDriverLocation, "driver-1")
	assert.Equal(t, 300*time.Second, mr.TTL(key))
	tripKey := fmt.Sprintf(constants.KeyTripDriver, "trip-1")
	assert.Equal(t, 300*time.Second, mr.TTL(tripKey))
}

func TestLocationCacheGetByTrip(t *testing.T) {
	_, client := setupMiniredis(t)
	cache := NewLocationCache(client, testCacheConfig())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleRecord("driver-1", "trip-1")))

	record, err := cache.GetByTrip(ctx, "trip-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "driver-1", record.DriverID)

	// Unknown trip is a miss, not an error
	record, err = cache.GetByTrip(ctx, "trip-unknown")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestLocationCacheExpiry(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewLocationCache(client, testCacheConfig())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleRecord("driver-1", "trip-1")))

	mr.FastForward(301 * time.Second)

	record, err := cache.Get(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestLocationCacheStaleFlag(t *testing.T) {
	_, client := setupMiniredis(t)
	cache := NewLocationCache(client, testCacheConfig())
	ctx := context.Background()

	record := sampleRecord("driver-1", "trip-1")
	require.NoError(t, cache.Store(ctx, record))

	// Overwrite stored_at to look two minutes old
	key := fmt.Sprintf(constants.KeyDriverLocation, "driver-1")
	old := time.Now().Add(-2 * time.Minute).Unix()
	client.Client.HSet(ctx, key, constants.FieldStoredAt, old)

	got, err := cache.Get(ctx, "driver-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsStale)
	assert.InDelta(t, 120, got.Age, 5)
}

func TestLocationCacheBatchGet(t *testing.T) {
	_, client := setupMiniredis(t)
	cache := NewLocationCache(client, testCacheConfig())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleRecord("driver-1", "trip-1")))
	require.NoError(t, cache.Store(ctx, sampleRecord("driver-2", "trip-2")))

	records, err := cache.BatchGet(ctx, []string{"driver-1", "driver-2", "driver-3"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Contains(t, records, "driver-1")
	assert.Contains(t, records, "driver-2")
	assert.NotContains(t, records, "driver-3")
}

func TestLocationCacheClear(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewLocationCache(client, testCacheConfig())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, sampleRecord("driver-1", "trip-1")))
	require.NoError(t, cache.Clear(ctx, "driver-1", "trip-1"))

	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyDriverLocation, "driver-1")))
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyTripDriver, "trip-1")))

	record, err := cache.Get(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestLocationCacheSoftFailsWhenBackendDown(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewLocationCache(client, testCacheConfig())
	ctx := context.Background()

	mr.Close()

	// Writes and reads degrade to "no data", never an error
	assert.NoError(t, cache.Store(ctx, sampleRecord("driver-1", "trip-1")))

	record, err := cache.Get(ctx, "driver-1")
	assert.NoError(t, err)
	assert.Nil(t, record)

	record, err = cache.GetByTrip(ctx, "trip-1")
	assert.NoError(t, err)
	assert.Nil(t, record)

	records, err := cache.BatchGet(ctx, []string{"driver-1"})
	assert.NoError(t, err)
	assert.Empty(t, records)
}
