package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/internal/utils"
	"github.com/hushryd/tracking-service/services/tracking"
)

// proximityPrecision is the geohash precision used as a cheap prefilter
// before the exact haversine check (cells of roughly 150m, so neighbors
// comfortably cover the proximity radius).
const proximityPrecision = 7

// TrackingUC implements the tracking.TrackingUC interface
type TrackingUC struct {
	cache      tracking.LocationCache
	history    tracking.HistoryRepo
	trips      tracking.TripRepo
	gw         tracking.BroadcastGW
	buffer     *Buffer
	instanceID string
	cfg        models.TrackingConfig

	mu        sync.RWMutex
	latest    map[string]*models.LocationUpdate // trip id -> last update seen by this instance
	announced map[string]map[string]bool        // trip id -> waypoint -> proximity announced
	waypoints map[string]*models.Trip           // trip id -> cached trip read model
}

// NewTrackingUC creates the location ingestion and query use case
func NewTrackingUC(
	cache tracking.LocationCache,
	history tracking.HistoryRepo,
	trips tracking.TripRepo,
	gw tracking.BroadcastGW,
	buffer *Buffer,
	instanceID string,
	cfg models.TrackingConfig,
) *TrackingUC {
	return &TrackingUC{
		cache:      cache,
		history:    history,
		trips:      trips,
		gw:         gw,
		buffer:     buffer,
		instanceID: instanceID,
		cfg:        cfg,
		latest:     make(map[string]*models.LocationUpdate),
		announced:  make(map[string]map[string]bool),
		waypoints:  make(map[string]*models.Trip),
	}
}

// IngestLocation validates one GPS tick and drives the whole write path:
// in-process latest map, write-through cache, batch buffer, fabric publish
// and the proximity check.
func (s *TrackingUC) IngestLocation(ctx context.Context, update *models.LocationUpdate) error {
	if err := validateUpdate(update); err != nil {
		return err
	}

	if update.Location.Timestamp.IsZero() {
		update.Location.Timestamp = time.Now()
	}
	update.Origin = s.instanceID
	update.CreatedAt = time.Now()

	s.mu.Lock()
	s.latest[update.TripID] = update
	s.mu.Unlock()

	// Cache is best-effort and absorbs its own failures
	_ = s.cache.Store(ctx, &models.DriverLocationRecord{
		DriverID: update.DriverID,
		TripID:   update.TripID,
		Location: update.Location,
		Speed:    update.Speed,
		Heading:  update.Heading,
	})

	s.buffer.Append(models.TrackingHistoryEntry{
		TripID:    update.TripID,
		Latitude:  update.Location.Latitude,
		Longitude: update.Location.Longitude,
		Speed:     update.Speed,
		Timestamp: update.Location.Timestamp,
	})

	s.gw.PublishLocationUpdate(ctx, update)
	s.checkProximity(ctx, update)
	return nil
}

// CurrentLocation returns the best-available location for a trip: cache
// first, then this instance's latest map, then the last persisted entry
func (s *TrackingUC) CurrentLocation(ctx context.Context, tripID string) (*models.DriverLocationRecord, error) {
	if record, _ := s.cache.GetByTrip(ctx, tripID); record != nil {
		return record, nil
	}

	s.mu.RLock()
	update := s.latest[tripID]
	s.mu.RUnlock()
	if update != nil {
		age := time.Since(update.CreatedAt)
		return &models.DriverLocationRecord{
			DriverID: update.DriverID,
			TripID:   update.TripID,
			Location: update.Location,
			Speed:    update.Speed,
			Heading:  update.Heading,
			StoredAt: update.CreatedAt,
			Age:      age.Seconds(),
			IsStale:  age > time.Duration(s.cfg.StaleAfterSeconds)*time.Second,
		}, nil
	}

	entry, err := s.history.LastByTrip(ctx, tripID)
	if err != nil {
		logger.Warn("Failed to read last persisted location",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return nil, tracking.ErrNoLocationData
	}
	if entry == nil {
		return nil, tracking.ErrNoLocationData
	}

	return &models.DriverLocationRecord{
		TripID: tripID,
		Location: models.Location{
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
			Timestamp: entry.Timestamp,
		},
		Speed:    entry.Speed,
		StoredAt: entry.Timestamp,
		Age:      time.Since(entry.Timestamp).Seconds(),
		IsStale:  true,
	}, nil
}

// IsTracked reports whether the trip has live location data: a fresh cache
// record, or a non-stale update seen by this instance
func (s *TrackingUC) IsTracked(ctx context.Context, tripID string) bool {
	if record, _ := s.cache.GetByTrip(ctx, tripID); record != nil && !record.IsStale {
		return true
	}

	s.mu.RLock()
	update := s.latest[tripID]
	s.mu.RUnlock()
	if update == nil {
		return false
	}
	return time.Since(update.CreatedAt) <= time.Duration(s.cfg.StaleAfterSeconds)*time.Second
}

// BatchLocations avoids N round-trips for dashboard views
func (s *TrackingUC) BatchLocations(ctx context.Context, driverIDs []string) (map[string]*models.DriverLocationRecord, error) {
	return s.cache.BatchGet(ctx, driverIDs)
}

// EndTripTracking evicts cached state for the trip, flushes buffered
// history and announces the end of tracking
func (s *TrackingUC) EndTripTracking(ctx context.Context, tripID string) error {
	s.mu.Lock()
	update := s.latest[tripID]
	delete(s.latest, tripID)
	delete(s.announced, tripID)
	delete(s.waypoints, tripID)
	s.mu.Unlock()

	driverID := ""
	if update != nil {
		driverID = update.DriverID
	} else if record, _ := s.cache.GetByTrip(ctx, tripID); record != nil {
		driverID = record.DriverID
	}
	if driverID != "" {
		_ = s.cache.Clear(ctx, driverID, tripID)
	}

	if err := s.buffer.Flush(ctx); err != nil {
		logger.Warn("Final history flush failed on trip end, entries re-enqueued",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	s.gw.PublishTrackingEnded(ctx, tripID)
	return nil
}

// checkProximity announces once per waypoint when the driver comes within
// the proximity radius of the trip's pickup or dropoff
func (s *TrackingUC) checkProximity(ctx context.Context, update *models.LocationUpdate) {
	trip := s.tripMeta(ctx, update.TripID)
	if trip == nil {
		return
	}

	waypoints := map[string]models.Location{
		"pickup":  {Latitude: trip.PickupLat, Longitude: trip.PickupLng},
		"dropoff": {Latitude: trip.DropoffLat, Longitude: trip.DropoffLng},
	}

	for name, waypoint := range waypoints {
		s.mu.RLock()
		done := s.announced[update.TripID][name]
		s.mu.RUnlock()
		if done {
			continue
		}

		if !utils.NearCell(update.Location, waypoint, proximityPrecision) {
			continue
		}
		dist := utils.LocationDistanceMeters(update.Location, waypoint)
		if dist > s.cfg.ProximityRadiusM {
			continue
		}

		s.mu.Lock()
		if s.announced[update.TripID] == nil {
			s.announced[update.TripID] = make(map[string]bool)
		}
		s.announced[update.TripID][name] = true
		s.mu.Unlock()

		s.gw.PublishProximity(ctx, &models.ProximityEvent{
			TripID:    update.TripID,
			Waypoint:  name,
			DistanceM: dist,
		})
	}
}

func (s *TrackingUC) tripMeta(ctx context.Context, tripID string) *models.Trip {
	s.mu.RLock()
	trip := s.waypoints[tripID]
	s.mu.RUnlock()
	if trip != nil {
		return trip
	}

	trip, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		// Proximity is an enrichment, never a reason to fail ingest
		logger.Debug("Trip read model lookup failed, skipping proximity check",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return nil
	}

	s.mu.Lock()
	s.waypoints[tripID] = trip
	s.mu.Unlock()
	return trip
}

func validateUpdate(update *models.LocationUpdate) error {
	if update == nil || strings.TrimSpace(update.TripID) == "" {
		return tracking.ErrInvalidLocation
	}
	if !utils.ValidCoordinates(update.Location.Latitude, update.Location.Longitude) {
		return tracking.ErrInvalidLocation
	}
	return nil
}
