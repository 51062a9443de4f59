package models

import "time"

// Trip is the read-model snapshot of a trip owned by the booking subsystem.
// Only the fields this service reads are mapped.
type Trip struct {
	ID             string     `json:"id" db:"id"`
	PassengerID    string     `json:"passenger_id" db:"passenger_id"`
	PassengerPhone string     `json:"passenger_phone" db:"passenger_phone"`
	DriverID       string     `json:"driver_id" db:"driver_id"`
	Status         string     `json:"status" db:"status"`
	PickupLat      float64    `json:"pickup_lat" db:"pickup_lat"`
	PickupLng      float64    `json:"pickup_lng" db:"pickup_lng"`
	DropoffLat     float64    `json:"dropoff_lat" db:"dropoff_lat"`
	DropoffLng     float64    `json:"dropoff_lng" db:"dropoff_lng"`
	DriverName     string     `json:"driver_name" db:"driver_name"`
	DriverPhone    string     `json:"driver_phone" db:"driver_phone"`
	Plate          string     `json:"vehicle_plate" db:"vehicle_plate"`
	Model          string     `json:"vehicle_model" db:"vehicle_model"`
	Color          string     `json:"vehicle_color" db:"vehicle_color"`
	StartedAt      *time.Time `json:"started_at" db:"started_at"`
}

// EmergencyContact is a passenger's registered out-of-band contact
type EmergencyContact struct {
	Name  string `json:"name" db:"name"`
	Phone string `json:"phone" db:"phone"`
}

// SupportTicket carries the context of an unanswered safety escalation
type SupportTicket struct {
	ID                string    `json:"id" db:"id"`
	TripID            string    `json:"trip_id" db:"trip_id"`
	StationaryEventID string    `json:"stationary_event_id" db:"stationary_event_id"`
	Subject           string    `json:"subject" db:"subject"`
	Description       string    `json:"description" db:"description"`
	Latitude          float64   `json:"latitude" db:"latitude"`
	Longitude         float64   `json:"longitude" db:"longitude"`
	StationaryMinutes float64   `json:"stationary_minutes" db:"stationary_minutes"`
	Priority          string    `json:"priority" db:"priority"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// TripStatusEvent is published by the trip subsystem and relayed to rooms
type TripStatusEvent struct {
	TripID string `json:"trip_id"`
	Status string `json:"status"`
}

// TripETAEvent is published by the ETA subsystem and relayed to rooms
type TripETAEvent struct {
	TripID     string  `json:"trip_id"`
	ETASeconds float64 `json:"eta_seconds"`
	DistanceKm float64 `json:"distance_km"`
}

// ProximityEvent announces that the driver is near a trip waypoint
type ProximityEvent struct {
	TripID    string  `json:"trip_id"`
	Waypoint  string  `json:"waypoint"` // pickup or dropoff
	DistanceM float64 `json:"distance_m"`
}
