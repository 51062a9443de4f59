package tracking

import "errors"

// Domain-state errors returned to callers for explicit handling. Transient
// infrastructure failures are absorbed lower in the stack and never surface
// through these.
var (
	ErrInvalidLocation         = errors.New("invalid location payload")
	ErrTripNotFound            = errors.New("trip not found")
	ErrEventNotFound           = errors.New("stationary event not found")
	ErrResponseAlreadyRecorded = errors.New("passenger response already recorded")
	ErrAlertNotFound           = errors.New("sos alert not found")
	ErrAlertAlreadyResolved    = errors.New("sos alert already resolved")
	ErrEmptyResolution         = errors.New("resolution text is required")
	ErrSessionNotFound         = errors.New("session not recoverable")
	ErrNoLocationData          = errors.New("no location data")
)
