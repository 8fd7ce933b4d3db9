package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"socialgraph/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypeUserCreated    = "user.created"
	EventTypeUserDeleted    = "user.deleted"
	EventTypeProfileCreated = "profile.created"
	EventTypeProfileDeleted = "profile.deleted"
	EventTypePostCreated    = "post.created"
	EventTypePostDeleted    = "post.deleted"
	EventTypePong           = "pong"
	EventTypeError          = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// --- Server → Client payloads ---

type UserPayload struct {
	domain.User
}

type ProfilePayload struct {
	domain.Profile
}

type PostPayload struct {
	domain.Post
}

type DeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
