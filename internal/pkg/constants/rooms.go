package constants

import "fmt"

// Connection roles carried in the bearer credential
const (
	RoleDriver    = "driver"
	RolePassenger = "passenger"
	RoleOperator  = "operator"
	RoleSupport   = "support"
	RoleContact   = "contact"
)

// Static rooms
const (
	RoomOperations = "operations"
	RoomSupport    = "support"
)

// RoleRooms maps a connection role to the static rooms it joins at connect
// time. Trip-scoped rooms are joined on subscribe, not here.
var RoleRooms = map[string][]string{
	RoleOperator:  {RoomOperations},
	RoleSupport:   {RoomSupport, RoomOperations},
	RoleDriver:    {},
	RolePassenger: {},
	RoleContact:   {},
}

// TripRoom returns the broadcast room for a trip's subscribers
func TripRoom(tripID string) string {
	return fmt.Sprintf("trip:%s", tripID)
}

// TripDriverRoom returns the room holding only the trip's driver connection
func TripDriverRoom(tripID string) string {
	return fmt.Sprintf("trip:%s:driver", tripID)
}

// ContactRoom returns the room for an emergency contact's live view
func ContactRoom(userID string) string {
	return fmt.Sprintf("contact:%s", userID)
}
