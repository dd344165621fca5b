package events

import "reflect"

// Event is the interface that all domain events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// EventHandler is a fire-and-forget subscriber. Handlers carry no data
// the engine depends on; presentation and audio hang off them.
type EventHandler func(event Event)

// GetRunID extracts the RunID field from an event, if present.
func GetRunID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("RunID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
