package models

import "time"

// SOSStatus enumerates the SOS alert lifecycle. Transitions are monotonic:
// active -> acknowledged -> resolved, with acknowledged skippable and
// resolved terminal.
type SOSStatus string

const (
	SOSStatusActive       SOSStatus = "active"
	SOSStatusAcknowledged SOSStatus = "acknowledged"
	SOSStatusResolved     SOSStatus = "resolved"
)

// SOSPriority enumerates alert priorities
type SOSPriority string

const (
	SOSPriorityHigh     SOSPriority = "high"
	SOSPriorityCritical SOSPriority = "critical"
)

// SOSAlert is a persisted emergency alert tied to a trip
type SOSAlert struct {
	ID                 string                `json:"id"`
	TripID             string                `json:"trip_id"`
	TriggeredBy        string                `json:"triggered_by"`
	UserType           string                `json:"user_type"`
	Status             SOSStatus             `json:"status"`
	Priority           SOSPriority           `json:"priority"`
	Location           Location              `json:"location"`
	Journey            *JourneySnapshot      `json:"journey,omitempty"`
	NotificationsSent  []NotificationOutcome `json:"notifications_sent,omitempty"`
	ContinuousTracking ContinuousTracking    `json:"continuous_tracking"`
	AcknowledgedBy     string                `json:"acknowledged_by,omitempty"`
	AcknowledgedAt     *time.Time            `json:"acknowledged_at,omitempty"`
	ResolvedBy         string                `json:"resolved_by,omitempty"`
	ResolvedAt         *time.Time            `json:"resolved_at,omitempty"`
	Resolution         string                `json:"resolution,omitempty"`
	ActionsTaken       []string              `json:"actions_taken,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}

// ContinuousTracking holds the live re-broadcast state of an open alert
type ContinuousTracking struct {
	IsActive        bool                   `json:"is_active"`
	TrackingHistory []TrackingHistoryEntry `json:"tracking_history"`
}

// JourneySnapshot is the point-in-time journey package captured at trigger time
type JourneySnapshot struct {
	RouteSoFar []Location    `json:"route_so_far"`
	Stops      []JourneyStop `json:"identified_stops"`
	Driver     DriverInfo    `json:"driver"`
	Vehicle    VehicleInfo   `json:"vehicle"`
	PlannedTo  *Location     `json:"planned_destination,omitempty"`
	CapturedAt time.Time     `json:"captured_at"`
}

// JourneyStop is a sub-segment of the route where the vehicle dwelled in place
type JourneyStop struct {
	Location  Location  `json:"location"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Duration  float64   `json:"duration_seconds"`
}

// DriverInfo is the driver identity snapshot for dashboards and contacts
type DriverInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// VehicleInfo is the vehicle identity snapshot
type VehicleInfo struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
	Color string `json:"color"`
}

// NotificationOutcome records the per-recipient result of an alert fan-out
type NotificationOutcome struct {
	Channel   string    `json:"channel"` // dashboard, sms, push, voice
	Recipient string    `json:"recipient"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// SOSTimelineEntry is one step of the ordered alert timeline
type SOSTimelineEntry struct {
	Status    SOSStatus `json:"status"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
