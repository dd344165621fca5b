package events

import (
	"github.com/lazharichir/tribulation/hands"
	"github.com/lazharichir/tribulation/items"
)

// RunStarted fires when a fresh run begins.
type RunStarted struct {
	RunID string
	Seed  int64
}

func (e RunStarted) EventName() string { return "run-started" }

// PhaseChanged fires on every phase transition of the run state machine.
type PhaseChanged struct {
	RunID string
	From  string
	To    string
}

func (e PhaseChanged) EventName() string { return "phase-changed" }

// HandPlayed fires when a selection is committed as a play.
type HandPlayed struct {
	RunID    string
	Category hands.Category
	Total    int
	Score    int
}

func (e HandPlayed) EventName() string { return "hand-played" }

// HandDiscarded fires when a selection is committed as a discard.
type HandDiscarded struct {
	RunID string
	Count int
}

func (e HandDiscarded) EventName() string { return "hand-discarded" }

// RoundWon fires when the round score reaches the goal.
type RoundWon struct {
	RunID  string
	Year   int
	Score  int
	Goal   int
	Reward int
}

func (e RoundWon) EventName() string { return "round-won" }

// RoundLost fires when plays run out below the goal.
type RoundLost struct {
	RunID string
	Year  int
	Score int
	Goal  int
}

func (e RoundLost) EventName() string { return "round-lost" }

// LifeConsumed fires when a defeat is absorbed by a remaining life.
type LifeConsumed struct {
	RunID     string
	LivesLeft int
}

func (e LifeConsumed) EventName() string { return "life-consumed" }

// ShopEntered fires on entering the shop with a fresh offer set.
type ShopEntered struct {
	RunID string
	Year  int
}

func (e ShopEntered) EventName() string { return "shop-entered" }

// ShopRerolled fires when the offer set is regenerated for a fee.
type ShopRerolled struct {
	RunID    string
	Cost     int
	NextCost int
}

func (e ShopRerolled) EventName() string { return "shop-rerolled" }

// ArtifactEquipped fires when a purchased artifact lands in its slot.
// Merged marks a same-kind same-level upgrade rather than a replacement.
type ArtifactEquipped struct {
	RunID  string
	Kind   items.ArtifactKind
	Slot   items.Slot
	Level  int
	Merged bool
}

func (e ArtifactEquipped) EventName() string { return "artifact-equipped" }

// ConsumableBought fires when a consumable joins the held list.
type ConsumableBought struct {
	RunID string
	Kind  items.ConsumableKind
}

func (e ConsumableBought) EventName() string { return "consumable-bought" }

// ConsumableUsed fires when a held consumable resolves.
type ConsumableUsed struct {
	RunID string
	Kind  items.ConsumableKind
}

func (e ConsumableUsed) EventName() string { return "consumable-used" }

// HandLevelRaised fires when an elixir permanently raises a category level.
type HandLevelRaised struct {
	RunID    string
	Category hands.Category
	Level    int
}

func (e HandLevelRaised) EventName() string { return "hand-level-raised" }

// CardsDestroyed fires when a scroll removes cards from the hand.
type CardsDestroyed struct {
	RunID   string
	CardIDs []string
}

func (e CardsDestroyed) EventName() string { return "cards-destroyed" }

// StoryAdvanced fires when a story beat plays out.
type StoryAdvanced struct {
	RunID string
	Year  int
}

func (e StoryAdvanced) EventName() string { return "story-advanced" }

// EncounterResolved fires when a random event choice is applied.
type EncounterResolved struct {
	RunID     string
	Encounter string
	Choice    string
}

func (e EncounterResolved) EventName() string { return "encounter-resolved" }

// RunEnded fires when the run reaches one of the fixed endings.
type RunEnded struct {
	RunID  string
	Ending string
	IsTrue bool
}

func (e RunEnded) EventName() string { return "run-ended" }
