package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lazharichir/tribulation/commands"
	"github.com/lazharichir/tribulation/encounters"
	"github.com/lazharichir/tribulation/events"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/run"
	"github.com/lazharichir/tribulation/save"
	"github.com/lazharichir/tribulation/scoring"
	"github.com/lazharichir/tribulation/server/connection"
)

// CommandRouter routes incoming commands to the appropriate handler.
// Each client owns at most one run at a time.
type CommandRouter struct {
	connMgr *connection.Manager
	saves   *save.Store

	runs  map[string]*run.Run // Map connection IDs to their run
	mutex sync.Mutex

	onRunEvent events.EventHandler
}

// NewCommandRouter creates a new command router. The saves store may be
// nil, in which case runs live only in memory.
func NewCommandRouter(connMgr *connection.Manager, saves *save.Store) *CommandRouter {
	return &CommandRouter{
		connMgr: connMgr,
		saves:   saves,
		runs:    make(map[string]*run.Run),
	}
}

// SetEventHandler wires the dispatcher into every run the router creates.
func (r *CommandRouter) SetEventHandler(handler events.EventHandler) {
	r.onRunEvent = handler
}

// StateResponse is the full state push sent after every command.
type StateResponse struct {
	Run       run.Snapshot          `json:"run"`
	Realm     int                   `json:"realm"`
	RealmName string                `json:"realmName"`
	Preview   scoring.Breakdown     `json:"preview"`
	Story     *encounters.Beat      `json:"story,omitempty"`
	Encounter *encounters.Encounter `json:"encounter,omitempty"`
}

// HandleCommand processes an incoming command message.
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return err
	}

	switch baseCmd.Name {
	case commands.NewRun{}.Name():
		var cmd commands.NewRun
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleNewRun(client, cmd)

	case commands.LoadRun{}.Name():
		return r.handleLoadRun(client)

	case commands.GetState{}.Name():
		return r.withRun(client, func(active *run.Run) error { return nil })

	case commands.ToggleCard{}.Name():
		var cmd commands.ToggleCard
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.withRun(client, func(active *run.Run) error {
			return active.ToggleSelect(cmd.CardID)
		})

	case commands.PlayHand{}.Name():
		return r.withRun(client, func(active *run.Run) error {
			return active.PlayHand()
		})

	case commands.DiscardHand{}.Name():
		return r.withRun(client, func(active *run.Run) error {
			return active.Discard()
		})

	case commands.BuyArtifact{}.Name():
		var cmd commands.BuyArtifact
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.withRun(client, func(active *run.Run) error {
			return active.BuyArtifact(cmd.OfferID)
		})

	case commands.BuyConsumable{}.Name():
		var cmd commands.BuyConsumable
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.withRun(client, func(active *run.Run) error {
			return active.BuyConsumable(cmd.OfferID)
		})

	case commands.UseConsumable{}.Name():
		var cmd commands.UseConsumable
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.withRun(client, func(active *run.Run) error {
			return active.UseConsumable(items.ConsumableKind(cmd.Kind))
		})

	case commands.RerollShop{}.Name():
		return r.withRun(client, func(active *run.Run) error {
			return active.RerollShop()
		})

	case commands.NextRound{}.Name():
		return r.withRun(client, func(active *run.Run) error {
			return active.NextRound()
		})

	case commands.AdvanceStory{}.Name():
		return r.withRun(client, func(active *run.Run) error {
			return active.AdvanceStory()
		})

	case commands.ChooseEvent{}.Name():
		var cmd commands.ChooseEvent
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.withRun(client, func(active *run.Run) error {
			return active.ResolveEventChoice(cmd.ChoiceID)
		})

	case commands.Restart{}.Name():
		return r.withRun(client, func(active *run.Run) error {
			return active.Restart()
		})

	default:
		fmt.Println("unknown command type", baseCmd.Name)
		return errors.New("unknown command type")
	}
}

func (r *CommandRouter) handleNewRun(client *connection.Client, cmd commands.NewRun) error {
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	active := run.New(seed)
	r.adopt(client, active)
	return r.afterCommand(client, active)
}

func (r *CommandRouter) handleLoadRun(client *connection.Client) error {
	if r.saves == nil {
		return errors.New("saving is disabled")
	}

	snapshot, ok, err := r.saves.Load()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("no saved run")
	}

	active := run.Restore(snapshot)
	r.adopt(client, active)
	return r.afterCommand(client, active)
}

// adopt registers a run as the client's active run and wires events.
func (r *CommandRouter) adopt(client *connection.Client, active *run.Run) {
	r.mutex.Lock()
	r.runs[client.ID] = active
	r.mutex.Unlock()

	if r.onRunEvent != nil {
		active.AddEventHandler(r.onRunEvent)
	}
	r.connMgr.AttachRun(client.ID, active.ID)
}

// withRun runs an action against the client's active run, then pushes
// state and persists.
func (r *CommandRouter) withRun(client *connection.Client, action func(*run.Run) error) error {
	r.mutex.Lock()
	active, ok := r.runs[client.ID]
	r.mutex.Unlock()
	if !ok {
		return errors.New("no active run; send new-run first")
	}

	if err := action(active); err != nil {
		return err
	}
	return r.afterCommand(client, active)
}

// afterCommand pushes the full state to the client and persists the run.
func (r *CommandRouter) afterCommand(client *connection.Client, active *run.Run) error {
	// A restart inside an action replaces the run's identity.
	r.connMgr.AttachRun(client.ID, active.ID)

	if err := r.pushState(client, active); err != nil {
		return err
	}

	if r.saves != nil {
		if err := r.saves.Save(active.Snapshot()); err != nil {
			log.Printf("Failed to persist run %s: %v", active.ID, err)
		}
	}
	return nil
}

func (r *CommandRouter) pushState(client *connection.Client, active *run.Run) error {
	state := StateResponse{
		Run:       active.Snapshot(),
		Realm:     active.Realm(),
		RealmName: encounters.RealmName(active.Realm()),
		Preview:   active.Preview(),
	}
	if beat, ok := active.PendingStory(); ok {
		state.Story = &beat
	}
	if encounter, ok := active.PendingEncounter(); ok {
		state.Encounter = &encounter
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	envelope, err := json.Marshal(struct {
		Name    string          `json:"name"`
		Payload json.RawMessage `json:"payload"`
	}{Name: "run-state", Payload: payload})
	if err != nil {
		return err
	}

	r.connMgr.SendToClient(client.ID, envelope)
	return nil
}

// DropClient forgets a disconnected client's run. The save slot keeps
// the run recoverable.
func (r *CommandRouter) DropClient(clientID string) {
	r.mutex.Lock()
	delete(r.runs, clientID)
	r.mutex.Unlock()
}
