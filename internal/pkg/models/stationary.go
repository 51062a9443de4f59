package models

import "time"

// StationaryEventStatus enumerates the lifecycle of a stationary safety event
type StationaryEventStatus string

const (
	StationaryMonitoring    StationaryEventStatus = "monitoring"
	StationarySafeConfirmed StationaryEventStatus = "safe_confirmed"
	StationaryHelpRequested StationaryEventStatus = "help_requested"
	StationaryEscalated     StationaryEventStatus = "escalated"
	StationaryResolved      StationaryEventStatus = "resolved"
)

// SafetyCheckOptions are the response choices offered to the passenger
var SafetyCheckOptions = []string{"Confirm Safety", "Request Help"}

// Passenger responses to a safety check
const (
	SafetyResponseSafe = "safe"
	SafetyResponseHelp = "help"
)

// StationaryEvent is a persisted record of a stationary-vehicle safety check
type StationaryEvent struct {
	ID                string                `json:"id" db:"id"`
	TripID            string                `json:"trip_id" db:"trip_id"`
	PassengerID       string                `json:"passenger_id" db:"passenger_id"`
	Latitude          float64               `json:"latitude" db:"latitude"`
	Longitude         float64               `json:"longitude" db:"longitude"`
	Status            StationaryEventStatus `json:"status" db:"status"`
	StartedAt         time.Time             `json:"started_at" db:"started_at"`
	AlertSentAt       *time.Time            `json:"alert_sent_at,omitempty" db:"alert_sent_at"`
	PassengerResponse string                `json:"passenger_response,omitempty" db:"passenger_response"`
	ResponseAt        *time.Time            `json:"response_at,omitempty" db:"response_at"`
	CallAttempts      int                   `json:"call_attempts" db:"call_attempts"`
	SOSAlertID        string                `json:"sos_alert_id,omitempty" db:"sos_alert_id"`
	Resolution        string                `json:"resolution,omitempty" db:"resolution"`
	ResolvedAt        *time.Time            `json:"resolved_at,omitempty" db:"resolved_at"`
}

// Resolved reports whether the event can no longer accept passenger responses
func (e *StationaryEvent) Resolved() bool {
	switch e.Status {
	case StationarySafeConfirmed, StationaryHelpRequested, StationaryResolved:
		return true
	}
	return false
}

// SafetyCheck is the alert payload pushed to the passenger
type SafetyCheck struct {
	EventID  string   `json:"event_id"`
	TripID   string   `json:"trip_id"`
	Message  string   `json:"message"`
	Options  []string `json:"options"`
	Location Location `json:"location"`
}
