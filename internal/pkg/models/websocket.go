package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents one authenticated connection
type WebSocketClient struct {
	ConnID string
	UserID string
	Role   string
	Conn   *websocket.Conn
}

// WebSocketClaims are the JWT claims carried by the bearer credential
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SubscribeRequest is the inbound subscribe/unsubscribe payload
type SubscribeRequest struct {
	TripID string `json:"trip_id"`
}

// ReconnectRequest is the inbound tracking:reconnect payload
type ReconnectRequest struct {
	TripID             string `json:"trip_id"`
	LastKnownTimestamp int64  `json:"last_known_timestamp"`
}

// SessionRecoverRequest is the inbound session:recover payload
type SessionRecoverRequest struct {
	PreviousConnectionID string `json:"previous_connection_id"`
}

// DisconnectRecord is persisted on disconnect for bounded-window recovery
type DisconnectRecord struct {
	ConnID          string   `json:"conn_id"`
	UserID          string   `json:"user_id"`
	SubscribedTrips []string `json:"subscribed_trips"`
	Reason          string   `json:"reason"`
	Timestamp       int64    `json:"timestamp"`
}
