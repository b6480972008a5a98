package events

import "time"

// Audit event types published to the bus.
const (
	TypeUserLogin        = "USER_LOGIN"
	TypeSessionCreated   = "SESSION_CREATED"
	TypeSessionDeleted   = "SESSION_DELETED"
	TypeSessionFinalized = "SESSION_FINALIZED"
	TypeQuestionBlocked  = "QUESTION_BLOCKED"
	TypeContextActivated = "CONTEXT_ACTIVATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used across the service.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func NewEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
