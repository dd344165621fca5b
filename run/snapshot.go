package run

import (
	"math/rand"

	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/encounters"
	"github.com/lazharichir/tribulation/hands"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/shop"
)

// Snapshot is the serializable projection of a run. Pending detours are
// stored by key and rebuilt from the catalogs on restore.
type Snapshot struct {
	ID    string `json:"id"`
	Phase Phase  `json:"phase"`

	Year         int    `json:"year"`
	Goal         int    `json:"goal"`
	Score        int    `json:"score"`
	SpiritStones int    `json:"spiritStones"`
	PlaysLeft    int    `json:"playsLeft"`
	DiscardsLeft int    `json:"discardsLeft"`
	Lives        int    `json:"lives"`
	BossName     string `json:"bossName"`

	BonusPlays    int `json:"bonusPlays"`
	BonusDiscards int `json:"bonusDiscards"`

	Karma      int `json:"karma"`
	Obsession  int `json:"obsession"`
	Reputation int `json:"reputation"`

	Deck     cards.Stack `json:"deck"`
	Hand     cards.Stack `json:"hand"`
	Selected []string    `json:"selected"`

	HandLevels  map[hands.Category]int `json:"handLevels"`
	Loadout     items.Loadout          `json:"loadout"`
	Consumables []items.Consumable     `json:"consumables"`

	Offers     shop.Offers `json:"offers"`
	RerollCost int         `json:"rerollCost"`

	ElixirsUsed int `json:"elixirsUsed"`
	HandsPlayed int `json:"handsPlayed"`

	Ending *encounters.Ending `json:"ending,omitempty"`

	PendingEncounterID string `json:"pendingEncounterId,omitempty"`
	PendingStoryYear   int    `json:"pendingStoryYear,omitempty"`
	ReturnPhase        Phase  `json:"returnPhase,omitempty"`

	Seed int64 `json:"seed"`
}

// Snapshot captures the run's full state for persistence.
func (r *Run) Snapshot() Snapshot {
	snapshot := Snapshot{
		ID:            r.ID,
		Phase:         r.Phase,
		Year:          r.Year,
		Goal:          r.Goal,
		Score:         r.Score,
		SpiritStones:  r.SpiritStones,
		PlaysLeft:     r.PlaysLeft,
		DiscardsLeft:  r.DiscardsLeft,
		Lives:         r.Lives,
		BossName:      r.BossName,
		BonusPlays:    r.BonusPlays,
		BonusDiscards: r.BonusDiscards,
		Karma:         r.Karma,
		Obsession:     r.Obsession,
		Reputation:    r.Reputation,
		Deck:          r.Deck,
		Hand:          r.Hand,
		Selected:      r.SelectedIDs(),
		HandLevels:    r.HandLevels,
		Loadout:       r.Loadout,
		Consumables:   r.Consumables,
		Offers:        r.Offers,
		RerollCost:    r.RerollCost,
		ElixirsUsed:   r.ElixirsUsed,
		HandsPlayed:   r.HandsPlayed,
		Ending:        r.Ending,
		ReturnPhase:   r.returnPhase,
		Seed:          r.seed,
	}

	if r.pendingEncounter != nil {
		snapshot.PendingEncounterID = r.pendingEncounter.ID
	}
	if r.pendingStory != nil {
		snapshot.PendingStoryYear = r.pendingStory.Year
	}

	return snapshot
}

// Restore rebuilds a run from a snapshot. The random stream restarts from
// the stored seed, so a restored run stays deterministic but does not
// replay the exact draws an uninterrupted run would have seen.
func Restore(snapshot Snapshot) *Run {
	r := &Run{
		ID:            snapshot.ID,
		Phase:         snapshot.Phase,
		Year:          snapshot.Year,
		Goal:          snapshot.Goal,
		Score:         snapshot.Score,
		SpiritStones:  snapshot.SpiritStones,
		PlaysLeft:     snapshot.PlaysLeft,
		DiscardsLeft:  snapshot.DiscardsLeft,
		Lives:         snapshot.Lives,
		BossName:      snapshot.BossName,
		BonusPlays:    snapshot.BonusPlays,
		BonusDiscards: snapshot.BonusDiscards,
		Karma:         snapshot.Karma,
		Obsession:     snapshot.Obsession,
		Reputation:    snapshot.Reputation,
		Deck:          snapshot.Deck,
		Hand:          snapshot.Hand,
		selected:      snapshot.Selected,
		HandLevels:    snapshot.HandLevels,
		Loadout:       snapshot.Loadout,
		Consumables:   snapshot.Consumables,
		Offers:        snapshot.Offers,
		RerollCost:    snapshot.RerollCost,
		ElixirsUsed:   snapshot.ElixirsUsed,
		HandsPlayed:   snapshot.HandsPlayed,
		Ending:        snapshot.Ending,
		returnPhase:   snapshot.ReturnPhase,
		seed:          snapshot.Seed,
		rng:           rand.New(rand.NewSource(snapshot.Seed)),
	}

	if r.HandLevels == nil {
		r.HandLevels = make(map[hands.Category]int)
		for _, category := range hands.Categories() {
			r.HandLevels[category] = 1
		}
	}
	if r.Loadout == nil {
		r.Loadout = items.Loadout{}
	}

	if snapshot.PendingEncounterID != "" {
		if encounter, ok := encounters.ByID(snapshot.PendingEncounterID); ok {
			r.pendingEncounter = &encounter
		}
	}
	if snapshot.PendingStoryYear != 0 {
		if beat, ok := encounters.StoryFor(snapshot.PendingStoryYear); ok {
			r.pendingStory = &beat
		}
	}

	return r
}
