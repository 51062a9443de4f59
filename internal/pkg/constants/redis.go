package constants

// Redis key formats
const (
	// Location cache
	KeyDriverLocation = "tracking:driver:location:%s" // Format: tracking:driver:location:{driver_id}
	KeyTripDriver     = "tracking:trip:driver:%s"     // Format: tracking:trip:driver:{trip_id}

	// Session recovery
	KeyDisconnectRecord = "tracking:session:disconnect:%s:%s" // Format: ...:{user_id}:{conn_id}
)

// Redis hash fields for the driver location record
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldSpeed     = "speed"
	FieldHeading   = "heading"
	FieldTripID    = "trip_id"
	FieldTimestamp = "ts"
	FieldStoredAt  = "stored_at"
)
