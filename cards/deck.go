package cards

import (
	"math/rand"
	"sort"
)

// Stack represents an ordered sequence of cards.
type Stack []Card

// NewDeck creates a standard deck of 52 cards, one of each rank and suit,
// each with a fresh id.
func NewDeck() Stack {
	var deck Stack
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			deck = append(deck, NewCard(rank, suit))
		}
	}
	return deck
}

// Shuffle shuffles a stack of cards using the provided random source.
func Shuffle(deck Stack, r *rand.Rand) Stack {
	shuffled := make(Stack, len(deck))
	copy(shuffled, deck)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// Deal deals count cards from the front of the deck and returns them with
// the remaining deck. Dealing from an exhausted deck returns what is left.
func Deal(deck Stack, count int) (Stack, Stack) {
	if count > len(deck) {
		count = len(deck)
	}

	dealt := make(Stack, count)
	copy(dealt, deck[:count])

	return dealt, deck[count:]
}

// SortByRankDesc sorts cards by rank in descending order, in place.
func SortByRankDesc(hand Stack) {
	sort.SliceStable(hand, func(i, j int) bool {
		return hand[i].RankValue() > hand[j].RankValue()
	})
}

// IndexOf returns the position of the card with the given id, or -1.
func (s Stack) IndexOf(id string) int {
	for i, card := range s {
		if card.ID == id {
			return i
		}
	}
	return -1
}

// ByID returns the card with the given id, if present.
func (s Stack) ByID(id string) (Card, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s[i], true
	}
	return Card{}, false
}

// RemoveByID removes the card with the given id, preserving order.
func (s Stack) RemoveByID(id string) Stack {
	i := s.IndexOf(id)
	if i < 0 {
		return s
	}
	out := make(Stack, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}
