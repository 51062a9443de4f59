package usecase

import (
	"context"
	"time"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/internal/utils"
)

// buildJourneySnapshot captures the trip's route, dwell stops and
// driver/vehicle identity at trigger time. Every lookup is best-effort: a
// missing read model yields a thinner snapshot, never a failed trigger.
func (s *SOSUsecase) buildJourneySnapshot(ctx context.Context, tripID string) *models.JourneySnapshot {
	snapshot := &models.JourneySnapshot{CapturedAt: time.Now()}

	entries, err := s.history.RouteSoFar(ctx, tripID, s.tracking.HistoryLimitPerTrip)
	if err != nil {
		logger.Warn("Journey snapshot missing route history",
			logger.String("trip_id", tripID),
			logger.Err(err))
	} else {
		snapshot.RouteSoFar = make([]models.Location, 0, len(entries))
		for _, e := range entries {
			snapshot.RouteSoFar = append(snapshot.RouteSoFar, models.Location{
				Latitude:  e.Latitude,
				Longitude: e.Longitude,
				Timestamp: e.Timestamp,
			})
		}
		snapshot.Stops = identifyStops(entries, s.cfg.StationaryRadiusM,
			time.Duration(s.cfg.StopMinDurationSec)*time.Second)
	}

	trip, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		logger.Warn("Journey snapshot missing trip read model",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return snapshot
	}

	snapshot.Driver = models.DriverInfo{
		ID:    trip.DriverID,
		Name:  trip.DriverName,
		Phone: trip.DriverPhone,
	}
	snapshot.Vehicle = models.VehicleInfo{
		Plate: trip.Plate,
		Model: trip.Model,
		Color: trip.Color,
	}
	if trip.DropoffLat != 0 || trip.DropoffLng != 0 {
		snapshot.PlannedTo = &models.Location{
			Latitude:  trip.DropoffLat,
			Longitude: trip.DropoffLng,
		}
	}
	return snapshot
}

// identifyStops scans a chronological route for segments where the vehicle
// dwelled within radiusM of a segment anchor for at least minDuration
func identifyStops(entries []models.TrackingHistoryEntry, radiusM float64, minDuration time.Duration) []models.JourneyStop {
	if len(entries) < 2 {
		return nil
	}

	var stops []models.JourneyStop
	anchor := entries[0]
	segmentStart := 0

	flush := func(endIdx int) {
		startedAt := entries[segmentStart].Timestamp
		endedAt := entries[endIdx].Timestamp
		if dwell := endedAt.Sub(startedAt); dwell >= minDuration {
			stops = append(stops, models.JourneyStop{
				Location: models.Location{
					Latitude:  anchor.Latitude,
					Longitude: anchor.Longitude,
					Timestamp: startedAt,
				},
				StartedAt: startedAt,
				EndedAt:   endedAt,
				Duration:  dwell.Seconds(),
			})
		}
	}

	for i := 1; i < len(entries); i++ {
		dist := utils.DistanceMeters(
			utils.GeoPoint{Latitude: anchor.Latitude, Longitude: anchor.Longitude},
			utils.GeoPoint{Latitude: entries[i].Latitude, Longitude: entries[i].Longitude})
		if dist > radiusM {
			flush(i - 1)
			anchor = entries[i]
			segmentStart = i
		}
	}
	flush(len(entries) - 1)
	return stops
}
