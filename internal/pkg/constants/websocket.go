package constants

// Inbound WebSocket event types
const (
	EventSubscribe      = "subscribe"
	EventUnsubscribe    = "unsubscribe"
	EventLocationUpdate = "location:update"
	EventReconnect      = "tracking:reconnect"
	EventSessionRecover = "session:recover"
	EventSafetyResponse = "safety:response"
	EventSOSTrigger     = "sos:trigger"
	EventSOSAcknowledge = "sos:acknowledge"
	EventSOSResolve     = "sos:resolve"
)

// Outbound WebSocket event types
const (
	EventTripLocation     = "trip:location"
	EventTripETA          = "trip:eta"
	EventTripStatus       = "trip:status"
	EventTripProximity    = "trip:proximity"
	EventSafetyCheck      = "safety:check"
	EventSOSAlert         = "sos:alert"
	EventSOSUpdate        = "sos:update"
	EventEscalation       = "support:escalation"
	EventReconnected      = "tracking:reconnected"
	EventSessionRecovered = "session:recovered"
	EventTrackingEnded    = "tracking:ended"
	EventSubscribed       = "subscribed"
	EventUnsubscribed     = "unsubscribed"
	EventError            = "error"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorNotFound         = "not_found"
	ErrorAlreadyResolved  = "already_resolved"
	ErrorAlreadyRecorded  = "already_recorded"
)
