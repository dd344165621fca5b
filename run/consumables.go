package run

import (
	"errors"
	"fmt"

	"github.com/lazharichir/tribulation/encounters"
	"github.com/lazharichir/tribulation/events"
	"github.com/lazharichir/tribulation/items"
)

// UseConsumable spends a held consumable. The item is consumed no matter
// how much of its effect applies: a rewrite scroll with too few selected
// cards rewrites what it can, and an effect with nothing to touch simply
// fizzles.
func (r *Run) UseConsumable(kind items.ConsumableKind) error {
	if r.Phase != PhaseGameplay {
		return errors.New("can only use consumables during gameplay")
	}

	index := -1
	for i, held := range r.Consumables {
		if held.Kind == kind {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("consumable %s is not held", kind)
	}

	consumable := r.Consumables[index]
	r.Consumables = append(r.Consumables[:index], r.Consumables[index+1:]...)
	r.emitEvent(events.ConsumableUsed{RunID: r.ID, Kind: kind})

	if category, ok := consumable.UpgradesCategory(); ok {
		r.HandLevels[category]++
		r.ElixirsUsed++
		r.emitEvent(events.HandLevelRaised{RunID: r.ID, Category: category, Level: r.HandLevels[category]})
		return nil
	}

	if rewrite, ok := consumable.Rewrite(); ok {
		r.applyRewrite(rewrite)
		return nil
	}

	r.applyScroll(consumable.Kind)
	return nil
}

// applyRewrite rewrites the first N selected cards in toggle order.
func (r *Run) applyRewrite(rewrite items.ScrollRewrite) {
	targets := r.selected
	if len(targets) > rewrite.Targets {
		targets = targets[:rewrite.Targets]
	}

	for _, id := range targets {
		index := r.Hand.IndexOf(id)
		if index == -1 {
			continue
		}
		if rewrite.Enhancement != "" {
			r.Hand[index].Enhancement = rewrite.Enhancement
		}
		if rewrite.Suit != "" {
			r.Hand[index].Suit = rewrite.Suit
		}
	}
}

// applyScroll resolves the scrolls whose effects reach beyond the cards
// themselves into run state.
func (r *Run) applyScroll(kind items.ConsumableKind) {
	switch kind {
	case items.ScrollGreatDream:
		r.BossName = encounters.RealmName(1 + r.rng.Intn(8))

	case items.ScrollSpiritToad:
		gain := r.SpiritStones
		if gain > 20 {
			gain = 20
		}
		r.SpiritStones += gain

	case items.ScrollSlayingCorpses:
		r.destroySelected(2)

	case items.ScrollNirvanaFinger:
		r.cloneSelected()

	case items.ScrollCelestialOmen:
		r.spawnConsumables(items.TypeElixir, 2)

	case items.ScrollExternalAvatar:
		r.spawnConsumables(items.TypeScroll, 2)

	case items.ScrollWarBanner:
		r.BonusPlays++
		r.PlaysLeft++

	case items.ScrollJadeGourd:
		r.BonusDiscards++
		r.DiscardsLeft++
	}
}

// destroySelected removes up to limit selected cards from the run
// entirely. The hand is not refilled until the next draw.
func (r *Run) destroySelected(limit int) {
	targets := r.selected
	if len(targets) > limit {
		targets = targets[:limit]
	}
	if len(targets) == 0 {
		return
	}

	destroyed := make([]string, 0, len(targets))
	for _, id := range targets {
		if _, ok := r.Hand.ByID(id); !ok {
			continue
		}
		r.Hand = r.Hand.RemoveByID(id)
		destroyed = append(destroyed, id)
	}
	r.selected = nil

	if len(destroyed) > 0 {
		r.emitEvent(events.CardsDestroyed{RunID: r.ID, CardIDs: destroyed})
	}
}

// cloneSelected copies the first selected card over the second one. The
// clone carries a fresh identity so both copies score independently.
func (r *Run) cloneSelected() {
	if len(r.selected) < 2 {
		return
	}
	source, ok := r.Hand.ByID(r.selected[0])
	if !ok {
		return
	}
	index := r.Hand.IndexOf(r.selected[1])
	if index == -1 {
		return
	}

	clone := source.Clone()
	r.Hand[index] = clone
	r.selected[1] = clone.ID
}

// spawnConsumables draws random catalog items of one type into the held
// list, silently dropping whatever does not fit.
func (r *Run) spawnConsumables(typ items.ConsumableType, count int) {
	var pool []items.Consumable
	for _, candidate := range items.ConsumableCatalog() {
		if candidate.Type == typ {
			pool = append(pool, candidate)
		}
	}

	for i := 0; i < count; i++ {
		if len(r.Consumables) >= MaxConsumables || len(pool) == 0 {
			return
		}
		r.Consumables = append(r.Consumables, pool[r.rng.Intn(len(pool))])
	}
}
