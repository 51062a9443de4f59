package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

func TestDistanceMeters(t *testing.T) {
	// Monas to Bundaran HI, roughly 2.3km
	monas := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}
	bundaranHI := GeoPoint{Latitude: -6.195043, Longitude: 106.823039}

	dist := DistanceMeters(monas, bundaranHI)
	assert.InDelta(t, 2230, dist, 150)

	// Same point
	assert.Zero(t, DistanceMeters(monas, monas))
}

func TestDistanceMetersSmallDisplacement(t *testing.T) {
	// ~0.0005 degrees latitude is about 55 meters
	a := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}
	b := GeoPoint{Latitude: -6.175892, Longitude: 106.827153}

	dist := DistanceMeters(a, b)
	assert.InDelta(t, 55.6, dist, 2)
}

func TestNearCell(t *testing.T) {
	base := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	// Same point shares the cell at any precision
	assert.True(t, NearCell(base, base, 7))

	// ~100m away falls in the same or a neighboring precision-7 cell
	close := models.Location{Latitude: -6.176292, Longitude: 106.827153}
	assert.True(t, NearCell(base, close, 7))

	// ~5km away cannot be neighboring at precision 7
	far := models.Location{Latitude: -6.220392, Longitude: 106.827153}
	assert.False(t, NearCell(base, far, 7))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(-6.175392, 106.827153))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))

	assert.False(t, ValidCoordinates(95, 106.827153))
	assert.False(t, ValidCoordinates(-6.175392, 181))
	assert.False(t, ValidCoordinates(-91, 0))
}

func TestEncodeLocation(t *testing.T) {
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeLocation(loc, 7)
	assert.Len(t, hash, 7)

	// Longer precision shares the shorter prefix
	longer := EncodeLocation(loc, 9)
	assert.Equal(t, hash, longer[:7])
}
