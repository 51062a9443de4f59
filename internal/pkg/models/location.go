package models

import "time"

// Location represents a geographical coordinate pair
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// LocationUpdate represents a location update event published on the fabric
type LocationUpdate struct {
	TripID    string    `json:"trip_id"`
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Origin    string    `json:"origin"` // publishing instance id
	CreatedAt time.Time `json:"created_at"`
}

// DriverLocationRecord is the cached current location for a driver
type DriverLocationRecord struct {
	DriverID string    `json:"driver_id"`
	TripID   string    `json:"trip_id"`
	Location Location  `json:"location"`
	Speed    float64   `json:"speed"`
	Heading  float64   `json:"heading"`
	StoredAt time.Time `json:"stored_at"`
	Age      float64   `json:"age_seconds"`
	IsStale  bool      `json:"is_stale"`
}

// TrackingHistoryEntry is a persisted, append-only location sample for a trip
type TrackingHistoryEntry struct {
	TripID    string    `json:"trip_id" db:"trip_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Speed     float64   `json:"speed" db:"speed"`
	Timestamp time.Time `json:"timestamp" db:"recorded_at"`
}
