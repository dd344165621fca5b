// Package commands defines the client-to-server command set. The wire
// envelope carries a name field the router dispatches on before decoding
// the full payload.
package commands

type Command interface {
	Name() string
}

// NewRun starts a fresh run. A zero seed asks the server to pick one.
type NewRun struct {
	Seed int64 `json:"seed,omitempty"`
}

func (c NewRun) Name() string { return "new-run" }

// LoadRun resumes the saved run slot, if any.
type LoadRun struct{}

func (c LoadRun) Name() string { return "load-run" }

// GetState requests a full state push.
type GetState struct{}

func (c GetState) Name() string { return "get-state" }

// ToggleCard selects or deselects a hand card.
type ToggleCard struct {
	CardID string `json:"cardId"`
}

func (c ToggleCard) Name() string { return "toggle-card" }

// PlayHand commits the current selection as a play.
type PlayHand struct{}

func (c PlayHand) Name() string { return "play-hand" }

// DiscardHand commits the current selection as a discard.
type DiscardHand struct{}

func (c DiscardHand) Name() string { return "discard-hand" }

// BuyArtifact purchases an artifact offer.
type BuyArtifact struct {
	OfferID string `json:"offerId"`
}

func (c BuyArtifact) Name() string { return "buy-artifact" }

// BuyConsumable purchases a consumable offer.
type BuyConsumable struct {
	OfferID string `json:"offerId"`
}

func (c BuyConsumable) Name() string { return "buy-consumable" }

// UseConsumable spends a held consumable.
type UseConsumable struct {
	Kind string `json:"kind"`
}

func (c UseConsumable) Name() string { return "use-consumable" }

// RerollShop pays for a fresh offer set.
type RerollShop struct{}

func (c RerollShop) Name() string { return "reroll-shop" }

// NextRound leaves the shop for the next year.
type NextRound struct{}

func (c NextRound) Name() string { return "next-round" }

// AdvanceStory finishes the pending story beat.
type AdvanceStory struct{}

func (c AdvanceStory) Name() string { return "advance-story" }

// ChooseEvent resolves the pending encounter with a choice.
type ChooseEvent struct {
	ChoiceID string `json:"choiceId"`
}

func (c ChooseEvent) Name() string { return "choose-event" }

// Restart starts over from the ending screen.
type Restart struct{}

func (c Restart) Name() string { return "restart" }
