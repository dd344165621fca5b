package hands

import (
	"testing"

	"github.com/lazharichir/tribulation/cards"
	"github.com/stretchr/testify/assert"
)

func stack(defs ...[2]string) cards.Stack {
	var out cards.Stack
	for _, def := range defs {
		out = append(out, cards.NewCard(cards.Rank(def[0]), cards.Suit(def[1])))
	}
	return out
}

func TestClassify_RoyalFlush(t *testing.T) {
	selection := stack(
		[2]string{"10", "♥"},
		[2]string{"J", "♥"},
		[2]string{"Q", "♥"},
		[2]string{"K", "♥"},
		[2]string{"A", "♥"},
	)

	assert.Equal(t, RoyalFlush, Classify(selection))
}

func TestClassify_RoyalFlushAnySingleSuit(t *testing.T) {
	for _, suit := range cards.Suits() {
		s := string(suit)
		selection := stack(
			[2]string{"10", s},
			[2]string{"J", s},
			[2]string{"Q", s},
			[2]string{"K", s},
			[2]string{"A", s},
		)
		assert.Equal(t, RoyalFlush, Classify(selection), "suit %s", suit)
	}
}

func TestClassify_StraightFlush(t *testing.T) {
	selection := stack(
		[2]string{"5", "♠"},
		[2]string{"6", "♠"},
		[2]string{"7", "♠"},
		[2]string{"8", "♠"},
		[2]string{"9", "♠"},
	)

	assert.Equal(t, StraightFlush, Classify(selection))
}

func TestClassify_FiveOfAKindBeatsSuits(t *testing.T) {
	// Five of one rank is only reachable through cloned cards, so suits repeat.
	selection := stack(
		[2]string{"9", "♠"},
		[2]string{"9", "♥"},
		[2]string{"9", "♦"},
		[2]string{"9", "♣"},
		[2]string{"9", "♠"},
	)

	assert.Equal(t, FiveOfAKind, Classify(selection))
}

func TestClassify_FourOfAKind(t *testing.T) {
	selection := stack(
		[2]string{"7", "♠"},
		[2]string{"7", "♥"},
		[2]string{"7", "♦"},
		[2]string{"7", "♣"},
		[2]string{"K", "♠"},
	)

	assert.Equal(t, FourOfAKind, Classify(selection))
}

func TestClassify_FullHouse(t *testing.T) {
	selection := stack(
		[2]string{"7", "♠"},
		[2]string{"7", "♥"},
		[2]string{"7", "♦"},
		[2]string{"K", "♣"},
		[2]string{"K", "♠"},
	)

	assert.Equal(t, FullHouse, Classify(selection))
}

func TestClassify_Flush(t *testing.T) {
	selection := stack(
		[2]string{"2", "♦"},
		[2]string{"5", "♦"},
		[2]string{"9", "♦"},
		[2]string{"J", "♦"},
		[2]string{"K", "♦"},
	)

	assert.Equal(t, Flush, Classify(selection))
}

func TestClassify_WildCardCompletesFlush(t *testing.T) {
	selection := stack(
		[2]string{"2", "♦"},
		[2]string{"5", "♦"},
		[2]string{"9", "♦"},
		[2]string{"J", "♦"},
		[2]string{"K", "♠"},
	)
	selection[4].Enhancement = cards.EnhancementWild

	assert.Equal(t, Flush, Classify(selection))
}

func TestClassify_FourCardsNeverFlush(t *testing.T) {
	selection := stack(
		[2]string{"2", "♦"},
		[2]string{"5", "♦"},
		[2]string{"9", "♦"},
		[2]string{"J", "♦"},
	)

	assert.Equal(t, HighCard, Classify(selection))
}

func TestClassify_Straight(t *testing.T) {
	selection := stack(
		[2]string{"4", "♠"},
		[2]string{"5", "♥"},
		[2]string{"6", "♦"},
		[2]string{"7", "♣"},
		[2]string{"8", "♠"},
	)

	assert.Equal(t, Straight, Classify(selection))
}

func TestClassify_NoLowAceStraight(t *testing.T) {
	// A-2-3-4-5 is deliberately not a straight: aces are always high.
	selection := stack(
		[2]string{"A", "♠"},
		[2]string{"2", "♥"},
		[2]string{"3", "♦"},
		[2]string{"4", "♣"},
		[2]string{"5", "♠"},
	)

	assert.Equal(t, HighCard, Classify(selection))
}

func TestClassify_ThreeOfAKind(t *testing.T) {
	selection := stack(
		[2]string{"7", "♠"},
		[2]string{"7", "♥"},
		[2]string{"7", "♦"},
		[2]string{"K", "♣"},
		[2]string{"2", "♠"},
	)

	assert.Equal(t, ThreeOfAKind, Classify(selection))
}

func TestClassify_TwoPair(t *testing.T) {
	selection := stack(
		[2]string{"7", "♠"},
		[2]string{"7", "♥"},
		[2]string{"K", "♦"},
		[2]string{"K", "♣"},
		[2]string{"2", "♠"},
	)

	assert.Equal(t, TwoPair, Classify(selection))
}

func TestClassify_PairFromTwoCards(t *testing.T) {
	selection := stack(
		[2]string{"7", "♠"},
		[2]string{"7", "♥"},
	)

	assert.Equal(t, Pair, Classify(selection))
}

func TestClassify_SingleCardIsHighCard(t *testing.T) {
	selection := stack([2]string{"A", "♠"})

	assert.Equal(t, HighCard, Classify(selection))
}

func TestClassify_EmptySelection(t *testing.T) {
	assert.Equal(t, HighCard, Classify(nil))
}

func TestClassify_StoneCardStillCountsForStraight(t *testing.T) {
	// Stone only changes scoring, not classification.
	selection := stack(
		[2]string{"4", "♠"},
		[2]string{"5", "♥"},
		[2]string{"6", "♦"},
		[2]string{"7", "♣"},
		[2]string{"8", "♠"},
	)
	selection[2].Enhancement = cards.EnhancementStone

	assert.Equal(t, Straight, Classify(selection))
}
