package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactMessageReceived EventType = "contact_message_received"
	EventProjectLiked           EventType = "project_liked"
	EventSubjectLoggedIn        EventType = "subject_logged_in"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New builds an event with a fresh ID and timestamp.
func New(eventType EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// ContactMessageReceivedPayload payload.
type ContactMessageReceivedPayload struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// ProjectLikedPayload payload.
type ProjectLikedPayload struct {
	ProjectID string `json:"project_id"`
	Likes     int64  `json:"likes"`
}

// SubjectLoggedInPayload payload. Recorded for the audit trail only; it never
// carries credentials.
type SubjectLoggedInPayload struct {
	SubjectID string `json:"subject_id"`
	Role      string `json:"role"`
}
