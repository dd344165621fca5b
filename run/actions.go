package run

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lazharichir/tribulation/encounters"
	"github.com/lazharichir/tribulation/events"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/shop"
)

// Every action validates its preconditions and leaves the run untouched
// when they fail; the returned error is informational for the caller,
// never a broken state.

// ToggleSelect selects or deselects a hand card. Selection order is the
// toggle order and caps at five cards.
func (r *Run) ToggleSelect(cardID string) error {
	if r.Phase != PhaseGameplay {
		return errors.New("can only select cards during gameplay")
	}
	if _, ok := r.Hand.ByID(cardID); !ok {
		return fmt.Errorf("card %s is not in the hand", cardID)
	}

	for i, id := range r.selected {
		if id == cardID {
			r.selected = append(r.selected[:i], r.selected[i+1:]...)
			return nil
		}
	}

	if len(r.selected) >= MaxSelection {
		return errors.New("selection is already at five cards")
	}

	r.selected = append(r.selected, cardID)
	return nil
}

// PlayHand commits the current selection as a play: scores it, spends a
// play, refills the hand, then resolves victory or defeat.
func (r *Run) PlayHand() error {
	if r.Phase != PhaseGameplay {
		return errors.New("can only play during gameplay")
	}
	selection := r.Selected()
	if len(selection) == 0 {
		return errors.New("nothing selected")
	}
	if r.PlaysLeft <= 0 {
		return errors.New("no plays left")
	}

	breakdown := r.Preview()

	r.PlaysLeft--
	r.HandsPlayed++
	r.Score += breakdown.Total

	for _, card := range selection {
		r.Hand = r.Hand.RemoveByID(card.ID)
	}
	r.selected = nil
	r.refillHand()

	r.emitEvent(events.HandPlayed{
		RunID:    r.ID,
		Category: breakdown.Category,
		Total:    breakdown.Total,
		Score:    r.Score,
	})

	if r.Score >= r.Goal {
		r.winRound()
	} else if r.PlaysLeft == 0 {
		r.loseRound()
	}

	return nil
}

// Discard commits the current selection as a discard: the cards are
// thrown away and replaced from the deck.
func (r *Run) Discard() error {
	if r.Phase != PhaseGameplay {
		return errors.New("can only discard during gameplay")
	}
	selection := r.Selected()
	if len(selection) == 0 {
		return errors.New("nothing selected")
	}
	if r.DiscardsLeft <= 0 {
		return errors.New("no discards left")
	}

	r.DiscardsLeft--
	for _, card := range selection {
		r.Hand = r.Hand.RemoveByID(card.ID)
	}
	r.selected = nil
	r.refillHand()

	r.emitEvent(events.HandDiscarded{RunID: r.ID, Count: len(selection)})
	return nil
}

// winRound grants the victory reward and opens the shop.
func (r *Run) winRound() {
	r.emitEvent(events.RoundWon{
		RunID:  r.ID,
		Year:   r.Year,
		Score:  r.Score,
		Goal:   r.Goal,
		Reward: VictoryReward,
	})
	r.SpiritStones += VictoryReward
	r.enterShop()
}

// loseRound burns a life if one remains; otherwise the whole run is
// discarded and reinitialized from scratch.
func (r *Run) loseRound() {
	r.emitEvent(events.RoundLost{RunID: r.ID, Year: r.Year, Score: r.Score, Goal: r.Goal})

	if r.Lives > 1 {
		r.Lives--
		r.emitEvent(events.LifeConsumed{RunID: r.ID, LivesLeft: r.Lives})
		r.Score = 0
		r.dealFreshHand()
		r.resetBudgets()
		return
	}

	r.restart()
}

// restart throws away all progress and begins again with a seed drawn
// from the current random stream.
func (r *Run) restart() {
	r.seed = r.rng.Int63()
	r.rng = rand.New(rand.NewSource(r.seed))
	r.initialize()
	r.emitEvent(events.RunStarted{RunID: r.ID, Seed: r.seed})
}

// enterShop regenerates the offer set and resets the reroll cost.
func (r *Run) enterShop() {
	r.Offers = shop.Generate(r.rng)
	r.RerollCost = shop.RerollBaseCost
	r.setPhase(PhaseShop)
	r.emitEvent(events.ShopEntered{RunID: r.ID, Year: r.Year})
}

// BuyArtifact purchases an artifact offer and equips it into its slot.
// A same-kind same-level occupant merges to level+1; anything else is
// replaced outright.
func (r *Run) BuyArtifact(offerID string) error {
	if r.Phase != PhaseShop {
		return errors.New("the shop is closed")
	}
	offer, ok := r.Offers.FindArtifact(offerID)
	if !ok {
		return fmt.Errorf("no artifact offer %s", offerID)
	}
	if r.SpiritStones < offer.Artifact.Price {
		return errors.New("not enough spirit stones")
	}

	artifact := offer.Artifact
	merged := false
	if equipped, occupied := r.Loadout[artifact.Slot]; occupied &&
		equipped.Kind == artifact.Kind && equipped.Level == artifact.Level {
		artifact.Level = equipped.Level + 1
		merged = true
	}
	r.Loadout[artifact.Slot] = artifact

	r.SpiritStones -= offer.Artifact.Price
	r.Offers.RemoveArtifact(offerID)

	r.emitEvent(events.ArtifactEquipped{
		RunID:  r.ID,
		Kind:   artifact.Kind,
		Slot:   artifact.Slot,
		Level:  artifact.Level,
		Merged: merged,
	})
	return nil
}

// BuyConsumable purchases a consumable offer into the held list.
func (r *Run) BuyConsumable(offerID string) error {
	if r.Phase != PhaseShop {
		return errors.New("the shop is closed")
	}
	offer, ok := r.Offers.FindConsumable(offerID)
	if !ok {
		return fmt.Errorf("no consumable offer %s", offerID)
	}
	if len(r.Consumables) >= MaxConsumables {
		return errors.New("consumable slots are full")
	}
	if r.SpiritStones < offer.Consumable.Price {
		return errors.New("not enough spirit stones")
	}

	r.SpiritStones -= offer.Consumable.Price
	r.Consumables = append(r.Consumables, offer.Consumable)
	r.Offers.RemoveConsumable(offerID)

	r.emitEvent(events.ConsumableBought{RunID: r.ID, Kind: offer.Consumable.Kind})
	return nil
}

// RerollShop pays the current reroll cost for a fresh offer set. The
// cost escalates within a visit and resets on the next shop entry.
func (r *Run) RerollShop() error {
	if r.Phase != PhaseShop {
		return errors.New("the shop is closed")
	}
	if r.SpiritStones < r.RerollCost {
		return errors.New("not enough spirit stones to reroll")
	}

	paid := r.RerollCost
	r.SpiritStones -= paid
	r.Offers = shop.Generate(r.rng)
	r.RerollCost += shop.RerollCostStep

	r.emitEvent(events.ShopRerolled{RunID: r.ID, Cost: paid, NextCost: r.RerollCost})
	return nil
}

// NextRound leaves the shop and advances the year counter: new goal,
// fresh deck and hand, restored budgets, and a detour through a story
// beat or random encounter when one is due.
func (r *Run) NextRound() error {
	if r.Phase != PhaseShop {
		return errors.New("can only advance from the shop")
	}

	r.Year++
	if r.Year > FinalYear {
		r.finishRun()
		return nil
	}

	r.Goal = GoalFor(r.Year)
	r.Score = 0
	r.BossName = encounters.RealmName(r.Realm())
	r.dealFreshHand()
	r.resetBudgets()

	if beat, ok := encounters.StoryFor(r.Year); ok {
		r.pendingStory = &beat
		r.returnPhase = PhaseGameplay
		r.setPhase(PhaseStory)
		return nil
	}

	if r.rng.Intn(100) < eventChancePercent {
		encounter := encounters.Pick(r.rng)
		r.pendingEncounter = &encounter
		r.returnPhase = PhaseGameplay
		r.setPhase(PhaseEvent)
		return nil
	}

	r.setPhase(PhaseGameplay)
	return nil
}

// AdvanceStory finishes the current story beat and returns to whichever
// phase was pending before the detour.
func (r *Run) AdvanceStory() error {
	if r.Phase != PhaseStory || r.pendingStory == nil {
		return errors.New("no story to advance")
	}

	r.emitEvent(events.StoryAdvanced{RunID: r.ID, Year: r.pendingStory.Year})
	r.pendingStory = nil
	r.setPhase(r.returnPhase)
	return nil
}

// ResolveEventChoice applies an encounter choice to the run's counters
// and returns to the pending phase.
func (r *Run) ResolveEventChoice(choiceID string) error {
	if r.Phase != PhaseEvent || r.pendingEncounter == nil {
		return errors.New("no encounter to resolve")
	}

	encounter := *r.pendingEncounter
	outcome := encounters.Resolve(encounter, choiceID, r.rng)

	r.Karma += outcome.Karma
	r.Obsession += outcome.Obsession
	r.Reputation += outcome.Reputation
	r.SpiritStones += outcome.SpiritStones
	if r.SpiritStones < 0 {
		r.SpiritStones = 0
	}

	if outcome.GrantArtifact != "" {
		if artifact, ok := items.ArtifactByKind(outcome.GrantArtifact); ok {
			r.Loadout[artifact.Slot] = artifact
		}
	}

	r.emitEvent(events.EncounterResolved{RunID: r.ID, Encounter: encounter.ID, Choice: choiceID})
	r.pendingEncounter = nil

	if outcome.ForceEnding {
		r.finishRun()
		return nil
	}

	r.setPhase(r.returnPhase)
	return nil
}

// finishRun evaluates the ending decision tree and enters the terminal
// phase.
func (r *Run) finishRun() {
	ending := encounters.DecideEnding(r.Karma, r.Obsession, r.Reputation)
	r.Ending = &ending
	r.setPhase(PhaseEnding)
	r.emitEvent(events.RunEnded{RunID: r.ID, Ending: ending.ID, IsTrue: ending.IsTrue})
}

// Restart begins a brand-new run from the ending screen.
func (r *Run) Restart() error {
	if r.Phase != PhaseEnding {
		return errors.New("can only restart from the ending screen")
	}
	r.restart()
	return nil
}
