package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/database"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type locationCache struct {
	redisClient *database.RedisClient
	ttl         time.Duration
	staleAfter  time.Duration
}

// NewLocationCache creates the TTL-backed current-location store. The cache
// is best-effort: backend failures are logged and surfaced as "no data".
func NewLocationCache(redisClient *database.RedisClient, cfg models.TrackingConfig) tracking.LocationCache {
	return &locationCache{
		redisClient: redisClient,
		ttl:         time.Duration(cfg.CacheTTLSeconds) * time.Second,
		staleAfter:  time.Duration(cfg.StaleAfterSeconds) * time.Second,
	}
}

// Store overwrites the driver's current location and resets the TTL. A
// trip -> driver index key with the same TTL enables trip-keyed lookups.
func (r *locationCache) Store(ctx context.Context, record *models.DriverLocationRecord) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, record.DriverID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(record.Location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(record.Location.Longitude, 'f', -1, 64),
		constants.FieldSpeed:     strconv.FormatFloat(record.Speed, 'f', -1, 64),
		constants.FieldHeading:   strconv.FormatFloat(record.Heading, 'f', -1, 64),
		constants.FieldTripID:    record.TripID,
		constants.FieldTimestamp: strconv.FormatInt(record.Location.Timestamp.Unix(), 10),
		constants.FieldStoredAt:  strconv.FormatInt(time.Now().Unix(), 10),
	}

	pipe := r.redisClient.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, r.ttl)
	if record.TripID != "" {
		tripKey := fmt.Sprintf(constants.KeyTripDriver, record.TripID)
		pipe.Set(ctx, tripKey, record.DriverID, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Warn("Location cache store failed, continuing without cache",
			logger.String("driver_id", record.DriverID),
			logger.Err(err))
		return nil
	}
	return nil
}

// Get returns the cached record for a driver, or nil if absent or expired
func (r *locationCache) Get(ctx context.Context, driverID string) (*models.DriverLocationRecord, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		logger.Warn("Location cache read failed, treating as no data",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return nil, nil
	}
	if len(values) == 0 {
		return nil, nil
	}

	return r.parseRecord(driverID, values), nil
}

// GetByTrip resolves the trip's driver through the index key and returns
// that driver's cached record
func (r *locationCache) GetByTrip(ctx context.Context, tripID string) (*models.DriverLocationRecord, error) {
	tripKey := fmt.Sprintf(constants.KeyTripDriver, tripID)

	driverID, err := r.redisClient.Get(ctx, tripKey)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Warn("Location cache trip lookup failed, treating as no data",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return nil, nil
	}

	return r.Get(ctx, driverID)
}

// BatchGet pipelines reads for many drivers to avoid N round-trips
func (r *locationCache) BatchGet(ctx context.Context, driverIDs []string) (map[string]*models.DriverLocationRecord, error) {
	out := make(map[string]*models.DriverLocationRecord, len(driverIDs))
	if len(driverIDs) == 0 {
		return out, nil
	}

	pipe := r.redisClient.Pipeline()
	cmds := make(map[string]*redis.StringStringMapCmd, len(driverIDs))
	for _, id := range driverIDs {
		cmds[id] = pipe.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverLocation, id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		logger.Warn("Location cache batch read failed, treating as no data",
			logger.Int("drivers", len(driverIDs)),
			logger.Err(err))
		return out, nil
	}

	for id, cmd := range cmds {
		values, err := cmd.Result()
		if err != nil || len(values) == 0 {
			continue
		}
		out[id] = r.parseRecord(id, values)
	}
	return out, nil
}

// Clear evicts the driver's record and, when given, the trip index key
func (r *locationCache) Clear(ctx context.Context, driverID, tripID string) error {
	keys := []string{fmt.Sprintf(constants.KeyDriverLocation, driverID)}
	if tripID != "" {
		keys = append(keys, fmt.Sprintf(constants.KeyTripDriver, tripID))
	}

	if err := r.redisClient.Delete(ctx, keys...); err != nil {
		logger.Warn("Location cache eviction failed",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
	return nil
}

func (r *locationCache) parseRecord(driverID string, values map[string]string) *models.DriverLocationRecord {
	lat, _ := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	lng, _ := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	speed, _ := strconv.ParseFloat(values[constants.FieldSpeed], 64)
	heading, _ := strconv.ParseFloat(values[constants.FieldHeading], 64)
	ts, _ := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	storedAt, _ := strconv.ParseInt(values[constants.FieldStoredAt], 10, 64)

	age := time.Since(time.Unix(storedAt, 0))
	return &models.DriverLocationRecord{
		DriverID: driverID,
		TripID:   values[constants.FieldTripID],
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Unix(ts, 0),
		},
		Speed:    speed,
		Heading:  heading,
		StoredAt: time.Unix(storedAt, 0),
		Age:      age.Seconds(),
		IsStale:  age > r.staleAfter,
	}
}
