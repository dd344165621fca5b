package events

import (
	"encoding/json"
	"log"

	"github.com/lazharichir/tribulation/events"
	"github.com/lazharichir/tribulation/server/connection"
	"github.com/sanity-io/litter"
)

// EventEnvelope wraps an event with its name for client consumption.
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher handles routing run events to the client that owns the run.
type Dispatcher struct {
	connMgr *connection.Manager
	debug   bool
}

// NewDispatcher creates a new event dispatcher.
func NewDispatcher(connMgr *connection.Manager, debug bool) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
		debug:   debug,
	}
}

// HandleEvent forwards a run event to its owning client. Every run event
// carries a RunID, so routing never needs per-type handling.
func (d *Dispatcher) HandleEvent(event events.Event) {
	if d.debug {
		litter.D(event)
	}

	eventPayload, err := json.Marshal(event)
	if err != nil {
		log.Println("Failed to marshal event payload:", err)
		return
	}

	envelope := EventEnvelope{
		Name:    event.EventName(),
		Payload: eventPayload,
	}

	envelopeData, err := json.Marshal(envelope)
	if err != nil {
		log.Println("Failed to marshal event envelope:", err)
		return
	}

	runID := events.GetRunID(event)
	if runID == "" {
		log.Println("Event has no run id, dropping:", event.EventName())
		return
	}

	d.connMgr.SendToRun(runID, envelopeData)
}
