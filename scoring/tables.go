package scoring

import (
	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/hands"
)

// handStats holds the level-1 base and the per-level increment for one
// hand category.
type handStats struct {
	baseChips int
	baseMult  int
	chipSlope int
	multSlope int
}

var handStatsTable = map[hands.Category]handStats{
	hands.HighCard:      {5, 1, 10, 1},
	hands.Pair:          {10, 2, 15, 1},
	hands.TwoPair:       {20, 2, 20, 1},
	hands.ThreeOfAKind:  {30, 3, 20, 2},
	hands.Straight:      {30, 4, 30, 2},
	hands.Flush:         {35, 4, 15, 2},
	hands.FullHouse:     {40, 4, 25, 2},
	hands.FourOfAKind:   {60, 7, 30, 3},
	hands.FiveOfAKind:   {120, 12, 35, 3},
	hands.StraightFlush: {100, 8, 40, 3},
	hands.RoyalFlush:    {100, 8, 40, 3},
}

// HandStats returns the (chips, mult) base pair for a category at the
// given level. Levels below 1 are treated as 1.
func HandStats(category hands.Category, level int) (int, int) {
	if level < 1 {
		level = 1
	}
	stats := handStatsTable[category]
	return stats.baseChips + (level-1)*stats.chipSlope,
		stats.baseMult + (level-1)*stats.multSlope
}

const (
	stoneChips = 50
	bonusChips = 30
	foilChips  = 50
	multBoost  = 4
	holoMult   = 10
)

// CardChips returns a card's chip contribution. Stone overrides the rank
// value entirely.
func CardChips(card cards.Card) int {
	if card.Enhancement == cards.EnhancementStone {
		return stoneChips
	}

	chips := 0
	switch card.Rank {
	case cards.Ace:
		chips = 11
	case cards.King, cards.Queen, cards.Jack, cards.Ten:
		chips = 10
	default:
		chips = card.RankValue()
	}

	if card.Enhancement == cards.EnhancementBonus {
		chips += bonusChips
	}
	if card.Edition == cards.EditionFoil {
		chips += foilChips
	}

	return chips
}

// CardMult returns a card's flat mult contribution.
func CardMult(card cards.Card) int {
	mult := 0
	if card.Enhancement == cards.EnhancementMult {
		mult += multBoost
	}
	if card.Edition == cards.EditionHolographic {
		mult += holoMult
	}
	return mult
}

// CardXMult returns a card's multiplicative contribution.
func CardXMult(card cards.Card) float64 {
	x := 1.0
	if card.Edition == cards.EditionPolychrome {
		x *= 1.5
	}
	if card.Enhancement == cards.EnhancementGlass {
		x *= 2
	}
	if card.Enhancement == cards.EnhancementSteel {
		x *= 1.5
	}
	return x
}

// RealmMultiplier is the global score multiplier for a realm counter.
// It never decreases as the run progresses.
func RealmMultiplier(realm int) float64 {
	if realm < 1 {
		realm = 1
	}
	return 1 + 0.25*float64(realm-1)
}
