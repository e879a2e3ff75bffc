package events

import "time"

// Event types published by the triage pipeline.
const (
	TypeTurnCompleted     = "TRIAGE_TURN_COMPLETED"
	TypeEmergencyDetected = "TRIAGE_EMERGENCY_DETECTED"
)

// Topic is the watermill topic every triage event goes through.
const Topic = "triage.events"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event.
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation the pipeline publishes.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
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

// NewEmergency builds the event raised when a turn trips a red flag.
func NewEmergency(sessionID, text, lang, summary string) BaseEvent {
	return BaseEvent{
		Type: TypeEmergencyDetected,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"text":       text,
			"language":   lang,
			"symptoms":   summary,
		},
		OccurredAt: time.Now(),
	}
}

// NewTurnCompleted builds the event raised after every answered turn.
func NewTurnCompleted(sessionID, urgency, category, source string) BaseEvent {
	return BaseEvent{
		Type: TypeTurnCompleted,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"urgency":    urgency,
			"category":   category,
			"source":     source,
		},
		OccurredAt: time.Now(),
	}
}
