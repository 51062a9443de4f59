package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

func routePoint(lat, lng float64, at time.Time) models.TrackingHistoryEntry {
	return models.TrackingHistoryEntry{
		TripID:    "trip-1",
		Latitude:  lat,
		Longitude: lng,
		Timestamp: at,
	}
}

func TestIdentifyStopsFindsDwellSegment(t *testing.T) {
	start := time.Now().Add(-30 * time.Minute)

	// Drive, dwell 4 minutes in one spot, drive on. 0.001 degrees of
	// latitude is roughly 110 meters.
	entries := []models.TrackingHistoryEntry{
		routePoint(-6.2000, 106.80, start),
		routePoint(-6.2010, 106.80, start.Add(1*time.Minute)),
		routePoint(-6.2020, 106.80, start.Add(2*time.Minute)),
		routePoint(-6.2020, 106.80, start.Add(4*time.Minute)),
		routePoint(-6.2021, 106.80, start.Add(6*time.Minute)),
		routePoint(-6.2040, 106.80, start.Add(7*time.Minute)),
		routePoint(-6.2060, 106.80, start.Add(8*time.Minute)),
	}

	stops := identifyStops(entries, 50, 2*time.Minute)
	require.Len(t, stops, 1)
	assert.Equal(t, -6.2020, stops[0].Location.Latitude)
	assert.InDelta(t, 240, stops[0].Duration, 1) // 4 minutes
}

func TestIdentifyStopsIgnoresShortDwells(t *testing.T) {
	start := time.Now().Add(-10 * time.Minute)

	entries := []models.TrackingHistoryEntry{
		routePoint(-6.2000, 106.80, start),
		routePoint(-6.2000, 106.80, start.Add(1*time.Minute)), // under the 2 min floor
		routePoint(-6.2020, 106.80, start.Add(2*time.Minute)),
		routePoint(-6.2040, 106.80, start.Add(3*time.Minute)),
	}

	assert.Empty(t, identifyStops(entries, 50, 2*time.Minute))
}

func TestIdentifyStopsTrailingDwell(t *testing.T) {
	start := time.Now().Add(-10 * time.Minute)

	// The route ends inside a dwell; the final segment still counts
	entries := []models.TrackingHistoryEntry{
		routePoint(-6.2000, 106.80, start),
		routePoint(-6.2020, 106.80, start.Add(1*time.Minute)),
		routePoint(-6.2020, 106.80, start.Add(2*time.Minute)),
		routePoint(-6.2020, 106.80, start.Add(5*time.Minute)),
	}

	stops := identifyStops(entries, 50, 2*time.Minute)
	require.Len(t, stops, 1)
	assert.InDelta(t, 240, stops[0].Duration, 1)
}

func TestIdentifyStopsTooFewPoints(t *testing.T) {
	assert.Empty(t, identifyStops(nil, 50, 2*time.Minute))
	assert.Empty(t, identifyStops([]models.TrackingHistoryEntry{
		routePoint(-6.2, 106.8, time.Now()),
	}, 50, 2*time.Minute))
}
