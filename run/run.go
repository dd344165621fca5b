package run

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/encounters"
	"github.com/lazharichir/tribulation/events"
	"github.com/lazharichir/tribulation/hands"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/scoring"
	"github.com/lazharichir/tribulation/shop"
)

// Phase represents where the run state machine currently is.
type Phase string

const (
	PhaseGameplay Phase = "gameplay"
	PhaseShop     Phase = "shop"
	PhaseStory    Phase = "story"
	PhaseEvent    Phase = "event"
	PhaseEnding   Phase = "ending"
)

const (
	HandSize       = 8
	MaxSelection   = 5
	MaxConsumables = 2

	BasePlays    = 4
	BaseDiscards = 3

	StartingStones = 4
	StartingLives  = 3
	VictoryReward  = 5

	RoundsPerRealm = 3
	FinalYear      = 24

	// eventChancePercent is rolled when a new round starts outside a
	// story checkpoint.
	eventChancePercent = 25
)

// Run is the single source of truth for one playthrough. It has exactly
// one writer at a time: every action resolves fully before the next.
type Run struct {
	ID    string
	Phase Phase

	Year         int
	Goal         int
	Score        int
	SpiritStones int
	PlaysLeft    int
	DiscardsLeft int
	Lives        int
	BossName     string

	// Permanent budget bonuses accumulated from consumables.
	BonusPlays    int
	BonusDiscards int

	Karma      int
	Obsession  int
	Reputation int

	Deck cards.Stack
	Hand cards.Stack

	// selected holds card ids in toggle order; several scroll effects
	// target the first N selected cards, so order matters.
	selected []string

	HandLevels  map[hands.Category]int
	Loadout     items.Loadout
	Consumables []items.Consumable

	Offers     shop.Offers
	RerollCost int

	ElixirsUsed int
	HandsPlayed int

	Ending *encounters.Ending

	pendingEncounter *encounters.Encounter
	pendingStory     *encounters.Beat
	returnPhase      Phase

	seed          int64
	rng           *rand.Rand
	eventHandlers []events.EventHandler
}

// New creates a fresh run from a seed. All non-determinism (shuffles,
// shop sampling, encounter picks, coin flips) flows from this one source.
func New(seed int64) *Run {
	r := &Run{
		ID:   uuid.NewString(),
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
	r.initialize()
	r.emitEvent(events.RunStarted{RunID: r.ID, Seed: seed})
	return r
}

// initialize resets every piece of run state for year 1.
func (r *Run) initialize() {
	r.Phase = PhaseGameplay
	r.Year = 1
	r.Score = 0
	r.SpiritStones = StartingStones
	r.Lives = StartingLives
	r.Karma = 0
	r.Obsession = 0
	r.Reputation = 0
	r.BonusPlays = 0
	r.BonusDiscards = 0
	r.ElixirsUsed = 0
	r.HandsPlayed = 0
	r.Loadout = items.Loadout{}
	r.Consumables = nil
	r.Offers = shop.Offers{}
	r.RerollCost = shop.RerollBaseCost
	r.Ending = nil
	r.pendingEncounter = nil
	r.pendingStory = nil

	r.HandLevels = make(map[hands.Category]int)
	for _, category := range hands.Categories() {
		r.HandLevels[category] = 1
	}

	r.Goal = GoalFor(r.Year)
	r.BossName = encounters.RealmName(r.Realm())
	r.dealFreshHand()
	r.resetBudgets()

	// Year 1 opens on its story beat.
	if beat, ok := encounters.StoryFor(r.Year); ok {
		r.pendingStory = &beat
		r.returnPhase = PhaseGameplay
		r.Phase = PhaseStory
	}
}

// AddEventHandler registers a fire-and-forget subscriber for run events.
func (r *Run) AddEventHandler(handler events.EventHandler) {
	r.eventHandlers = append(r.eventHandlers, handler)
}

func (r *Run) emitEvent(event events.Event) {
	for _, handler := range r.eventHandlers {
		handler(event)
	}
}

func (r *Run) setPhase(to Phase) {
	if r.Phase == to {
		return
	}
	from := r.Phase
	r.Phase = to
	r.emitEvent(events.PhaseChanged{RunID: r.ID, From: string(from), To: string(to)})
}

// Realm is the outer loop counter (1..8), three rounds each.
func (r *Run) Realm() int {
	return RealmOf(r.Year)
}

// RealmOf converts an absolute year counter into a realm counter.
func RealmOf(year int) int {
	if year < 1 {
		year = 1
	}
	return (year-1)/RoundsPerRealm + 1
}

// RoundInRealm is the inner loop counter (1..3): small, big, boss.
func RoundInRealm(year int) int {
	if year < 1 {
		year = 1
	}
	return (year-1)%RoundsPerRealm + 1
}

// GoalFor computes the round goal for a year: a small/big/boss base
// scaled exponentially by realm.
func GoalFor(year int) int {
	bases := []int{300, 450, 600}
	base := bases[RoundInRealm(year)-1]
	return int(math.Floor(float64(base) * math.Pow(1.5, float64(RealmOf(year)-1))))
}

// resetBudgets recomputes plays/discards for a new round: base values
// plus permanent bonuses, plus a coin-flip bonus when every slot is
// equipped.
func (r *Run) resetBudgets() {
	r.PlaysLeft = BasePlays + r.BonusPlays
	r.DiscardsLeft = BaseDiscards + r.BonusDiscards

	if r.Loadout.Full() {
		if r.rng.Intn(2) == 0 {
			r.PlaysLeft++
		} else {
			r.DiscardsLeft++
		}
	}
}

// dealFreshHand shuffles a brand-new 52-card deck and deals the opening
// hand. Cards from the previous round are discarded wholesale.
func (r *Run) dealFreshHand() {
	deck := cards.Shuffle(cards.NewDeck(), r.rng)
	r.Hand, r.Deck = cards.Deal(deck, HandSize)
	cards.SortByRankDesc(r.Hand)
	r.selected = nil
}

// refillHand draws from the front of the deck until the hand is back at
// capacity, then re-sorts. An exhausted deck leaves the hand short.
func (r *Run) refillHand() {
	missing := HandSize - len(r.Hand)
	if missing <= 0 {
		return
	}
	var drawn cards.Stack
	drawn, r.Deck = cards.Deal(r.Deck, missing)
	r.Hand = append(r.Hand, drawn...)
	cards.SortByRankDesc(r.Hand)
}

// Selected returns the selected cards in toggle order.
func (r *Run) Selected() cards.Stack {
	out := make(cards.Stack, 0, len(r.selected))
	for _, id := range r.selected {
		if card, ok := r.Hand.ByID(id); ok {
			out = append(out, card)
		}
	}
	return out
}

// SelectedIDs returns the selected card ids in toggle order.
func (r *Run) SelectedIDs() []string {
	out := make([]string, len(r.selected))
	copy(out, r.selected)
	return out
}

// scoreContext assembles the run counters artifact effects may read.
func (r *Run) scoreContext() items.ScoreContext {
	return items.ScoreContext{
		PlaysLeft:    r.PlaysLeft,
		DeckSize:     len(r.Deck),
		SpiritStones: r.SpiritStones,
		ElixirsUsed:  r.ElixirsUsed,
		HandsPlayed:  r.HandsPlayed,
		Year:         r.Year,
		Realm:        r.Realm(),
	}
}

// Preview recomputes the live scoring breakdown for the current
// selection. It is pure: nothing is committed.
func (r *Run) Preview() scoring.Breakdown {
	return scoring.Score(r.Selected(), r.HandLevels, r.Loadout, r.scoreContext())
}

// PendingEncounter returns the active random encounter, if any.
func (r *Run) PendingEncounter() (encounters.Encounter, bool) {
	if r.pendingEncounter == nil {
		return encounters.Encounter{}, false
	}
	return *r.pendingEncounter, true
}

// PendingStory returns the active story beat, if any.
func (r *Run) PendingStory() (encounters.Beat, bool) {
	if r.pendingStory == nil {
		return encounters.Beat{}, false
	}
	return *r.pendingStory, true
}
