package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// NearCell reports whether two locations share a geohash cell or sit in
// adjacent cells at the given precision. Used as a cheap prefilter before
// the exact haversine check.
func NearCell(a, b models.Location, precision uint) bool {
	ha := EncodeLocation(a, precision)
	hb := EncodeLocation(b, precision)
	if ha == hb {
		return true
	}
	for _, n := range geohash.Neighbors(ha) {
		if n == hb {
			return true
		}
	}
	return false
}

// DistanceMeters calculates the distance between two points in meters using
// the Haversine formula
func DistanceMeters(point1, point2 GeoPoint) float64 {
	// Earth's radius in meters
	const earthRadius = 6371000.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// LocationDistanceMeters is DistanceMeters over Location models
func LocationDistanceMeters(a, b models.Location) float64 {
	return DistanceMeters(
		GeoPoint{Latitude: a.Latitude, Longitude: a.Longitude},
		GeoPoint{Latitude: b.Latitude, Longitude: b.Longitude},
	)
}

// ValidCoordinates reports whether a latitude/longitude pair is in range
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
