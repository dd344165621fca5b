package scoring

import (
	"math"

	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/hands"
	"github.com/lazharichir/tribulation/items"
)

// Breakdown is the live preview of a selection: the three accumulators
// and the floored total they combine into.
type Breakdown struct {
	Category hands.Category `json:"category"`
	Level    int            `json:"level"`
	Chips    int            `json:"chips"`
	Mult     int            `json:"mult"`
	XMult    float64        `json:"xMult"`
	Total    int            `json:"total"`
}

// Score runs the full pipeline for a selection. It is deterministic:
// the same selection, levels, loadout and context always produce the
// same breakdown. The multiplicative order is canonical — per-card
// x-multipliers in selection order, then artifact x-multipliers in slot
// order, then the realm multiplier — and the floor happens exactly once.
//
// ctx carries the run counters artifact effects may read; Selection,
// Category and OccupiedSlots are filled in here.
func Score(selection cards.Stack, levels map[hands.Category]int, loadout items.Loadout, ctx items.ScoreContext) Breakdown {
	if len(selection) == 0 {
		return Breakdown{Category: hands.HighCard, Level: 1, XMult: 1}
	}

	category := hands.Classify(selection)
	level := levels[category]
	if level < 1 {
		level = 1
	}

	chips, mult := HandStats(category, level)
	xMult := 1.0

	scoreCard := func(card cards.Card) {
		chips += CardChips(card)
		mult += CardMult(card)
		xMult *= CardXMult(card)
	}

	// Pass 1: every selected card, in selection order.
	for _, card := range selection {
		scoreCard(card)
	}

	// Retrigger passes: the same physical cards scored again, per the
	// equipped retrigger artifacts, before artifact contributions.
	for _, artifact := range loadout.InOrder() {
		switch artifact.Retrigger() {
		case items.RetriggerFirstCard:
			scoreCard(selection[0])
		case items.RetriggerFaceCards:
			for _, card := range selection {
				if card.IsFace() {
					scoreCard(card)
				}
			}
		}
	}

	ctx.Selection = selection
	ctx.Category = category
	ctx.OccupiedSlots = loadout.Occupied()

	// Artifact contributions, in slot-declaration order.
	for _, artifact := range loadout.InOrder() {
		contribution := artifact.Score(ctx)
		chips += contribution.Chips
		mult += contribution.Mult
		if contribution.XMult > 0 {
			xMult *= contribution.XMult
		}
	}

	xMult *= RealmMultiplier(ctx.Realm)

	total := int(math.Floor(float64(chips) * float64(mult) * xMult))

	return Breakdown{
		Category: category,
		Level:    level,
		Chips:    chips,
		Mult:     mult,
		XMult:    xMult,
		Total:    total,
	}
}
