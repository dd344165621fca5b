package cards

import (
	"fmt"

	"github.com/google/uuid"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists the four suits in deck-generation order.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	King  Rank = "K"
	Queen Rank = "Q"
	Jack  Rank = "J"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Ranks lists the thirteen ranks in ascending order.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Enhancement is a permanent modification applied to a single card.
// A card carries exactly one enhancement at a time.
type Enhancement string

const (
	EnhancementNone  Enhancement = ""
	EnhancementSteel Enhancement = "steel"
	EnhancementGold  Enhancement = "gold"
	EnhancementGlass Enhancement = "glass"
	EnhancementStone Enhancement = "stone"
	EnhancementWild  Enhancement = "wild"
	EnhancementMult  Enhancement = "mult"
	EnhancementBonus Enhancement = "bonus"
)

// Edition is a print finish applied to a single card.
type Edition string

const (
	EditionNone        Edition = ""
	EditionFoil        Edition = "foil"
	EditionHolographic Edition = "holographic"
	EditionPolychrome  Edition = "polychrome"
)

// Seal is a wax seal on a card. Seals are currently inert in scoring.
type Seal string

const (
	SealNone   Seal = ""
	SealRed    Seal = "red"
	SealBlue   Seal = "blue"
	SealGold   Seal = "gold"
	SealPurple Seal = "purple"
)

// Card represents a playing card owned by a run. Cards are mutated in
// place by consumable effects (enhancement/edition/suit rewrites).
type Card struct {
	ID          string      `json:"id"`
	Rank        Rank        `json:"rank"`
	Suit        Suit        `json:"suit"`
	Enhancement Enhancement `json:"enhancement,omitempty"`
	Edition     Edition     `json:"edition,omitempty"`
	Seal        Seal        `json:"seal,omitempty"`
}

// NewCard creates a plain card of the given rank and suit with a fresh id.
func NewCard(rank Rank, suit Suit) Card {
	return Card{ID: uuid.NewString(), Rank: rank, Suit: suit}
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// RankValue converts the card rank to its numerical order (2=2 ... A=14).
func (c Card) RankValue() int {
	return RankValue(c.Rank)
}

// IsFace reports whether the card is a face card (J, Q or K).
func (c Card) IsFace() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

// IsWildSuit reports whether the card counts as any suit for flush purposes.
func (c Card) IsWildSuit() bool {
	return c.Enhancement == EnhancementWild
}

// Clone returns a copy of the card carrying a fresh id.
func (c Card) Clone() Card {
	dup := c
	dup.ID = uuid.NewString()
	return dup
}

// RankValue converts a rank to its numerical order (2=2 ... A=14).
func RankValue(rank Rank) int {
	switch rank {
	case Ace:
		return 14
	case King:
		return 13
	case Queen:
		return 12
	case Jack:
		return 11
	case Ten:
		return 10
	case Nine:
		return 9
	case Eight:
		return 8
	case Seven:
		return 7
	case Six:
		return 6
	case Five:
		return 5
	case Four:
		return 4
	case Three:
		return 3
	case Two:
		return 2
	default:
		return 0
	}
}
