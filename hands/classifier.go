package hands

import (
	"sort"

	"github.com/lazharichir/tribulation/cards"
)

// Category represents the poker-hand category of a played selection
type Category string

const (
	HighCard      Category = "High Card"
	Pair          Category = "Pair"
	TwoPair       Category = "Two Pair"
	ThreeOfAKind  Category = "Three of a Kind"
	Straight      Category = "Straight"
	Flush         Category = "Flush"
	FullHouse     Category = "Full House"
	FourOfAKind   Category = "Four of a Kind"
	FiveOfAKind   Category = "Five of a Kind"
	StraightFlush Category = "Straight Flush"
	RoyalFlush    Category = "Royal Flush"
)

// Categories lists every category from weakest to strongest.
func Categories() []Category {
	return []Category{
		HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush,
		FullHouse, FourOfAKind, FiveOfAKind, StraightFlush, RoyalFlush,
	}
}

// Classify maps a selection of 1-5 cards to exactly one category.
// It is a pure function of the card multiset: selection order is irrelevant.
//
// House rules:
//   - a wild-enhanced card counts as any suit, so flushes only require the
//     non-wild cards to share a suit
//   - five cards of one rank classify as Five of a Kind regardless of suits
//   - A-2-3-4-5 is not a straight; aces are always high
func Classify(selection cards.Stack) Category {
	if len(selection) == 0 {
		return HighCard
	}

	rankCounts := make(map[cards.Rank]int)
	ranks := make([]int, 0, len(selection))
	for _, card := range selection {
		rankCounts[card.Rank]++
		ranks = append(ranks, card.RankValue())
	}
	sort.Ints(ranks)

	flush := isFlush(selection)
	straight := isStraight(ranks)
	counts := sortedCounts(rankCounts)

	switch {
	case straight && flush:
		if ranks[0] == 10 {
			return RoyalFlush
		}
		return StraightFlush
	case counts[0] == 5:
		return FiveOfAKind
	case counts[0] == 4:
		return FourOfAKind
	case counts[0] == 3 && len(counts) > 1 && counts[1] == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case counts[0] == 3:
		return ThreeOfAKind
	case counts[0] == 2 && len(counts) > 1 && counts[1] == 2:
		return TwoPair
	case counts[0] == 2:
		return Pair
	default:
		return HighCard
	}
}

// isFlush checks that a full 5-card selection holds at most one distinct
// real suit, skipping wild cards entirely.
func isFlush(selection cards.Stack) bool {
	if len(selection) != 5 {
		return false
	}

	distinct := make(map[cards.Suit]bool)
	for _, card := range selection {
		if card.IsWildSuit() {
			continue
		}
		distinct[card.Suit] = true
	}

	return len(distinct) <= 1
}

// isStraight checks that 5 sorted rank values are fully consecutive.
func isStraight(sortedRanks []int) bool {
	if len(sortedRanks) != 5 {
		return false
	}

	for i := 1; i < len(sortedRanks); i++ {
		if sortedRanks[i] != sortedRanks[i-1]+1 {
			return false
		}
	}

	return true
}

// sortedCounts returns rank multiplicities in descending order.
func sortedCounts(rankCounts map[cards.Rank]int) []int {
	counts := make([]int, 0, len(rankCounts))
	for _, n := range rankCounts {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}
