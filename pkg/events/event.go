package events

import "time"

// Event is anything published on the turn event buses.
type Event interface {
	// EventType doubles as the NATS subject suffix, e.g. "research.turn.completed".
	EventType() string

	Payload() map[string]interface{}

	Timestamp() time.Time
}

// BaseEvent is an event rebuilt from a bus message when the concrete type
// is not needed, as in the NATS subscriber.
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
