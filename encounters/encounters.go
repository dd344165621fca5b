package encounters

import (
	"math/rand"

	"github.com/lazharichir/tribulation/items"
)

// ChoiceTag is the abstract flavor of an encounter choice. Each tag maps
// to fixed karma/obsession/reputation/currency deltas.
type ChoiceTag string

const (
	TagBeneficial ChoiceTag = "beneficial"
	TagHarmful    ChoiceTag = "harmful"
	TagGreedy     ChoiceTag = "greedy"
	TagRisky      ChoiceTag = "risky"
	TagCautious   ChoiceTag = "cautious"
	TagNoop       ChoiceTag = "noop"
)

// Outcome is what resolving a choice does to the run's counters.
// GrantArtifact and ForceEnding are event-specific extras.
type Outcome struct {
	Karma         int
	Obsession     int
	Reputation    int
	SpiritStones  int
	GrantArtifact items.ArtifactKind
	ForceEnding   bool
}

// Choice is one labeled option of an encounter.
type Choice struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Tag         ChoiceTag `json:"tag"`

	// override tweaks the tag's generic outcome after it is applied.
	override func(outcome *Outcome)
}

// Encounter is a fixed title/description plus a small set of choices.
type Encounter struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// tagOutcome returns the fixed deltas for a tag. Risky resolves through
// a uniform coin flip between a lucky and an unlucky branch.
func tagOutcome(tag ChoiceTag, r *rand.Rand) Outcome {
	switch tag {
	case TagBeneficial:
		return Outcome{Karma: 2, Reputation: 1}
	case TagHarmful:
		return Outcome{Karma: -2, Obsession: 1}
	case TagGreedy:
		return Outcome{Karma: -1, Obsession: 1, SpiritStones: 4}
	case TagRisky:
		if r.Intn(2) == 0 {
			return Outcome{Reputation: 1, SpiritStones: 8}
		}
		return Outcome{Obsession: 2, SpiritStones: -3}
	case TagCautious:
		return Outcome{Reputation: 1}
	default:
		return Outcome{}
	}
}

// Resolve applies the choice's tag deltas and its override, if any.
// Unknown choice ids resolve to a zero outcome.
func Resolve(encounter Encounter, choiceID string, r *rand.Rand) Outcome {
	for _, choice := range encounter.Choices {
		if choice.ID != choiceID {
			continue
		}

		outcome := tagOutcome(choice.Tag, r)
		if choice.override != nil {
			choice.override(&outcome)
		}
		return outcome
	}
	return Outcome{}
}

// Catalog returns the encounter pool.
func Catalog() []Encounter {
	return []Encounter{
		{
			ID:          "wandering-beggar",
			Title:       "Wandering Beggar (行脚乞丐)",
			Description: "An old beggar blocks the mountain path, bowl outstretched. His eyes seem too clear for a vagrant.",
			Choices: []Choice{
				{ID: "give-alms", Label: "Give alms", Description: "Share your spirit stones.", Tag: TagBeneficial,
					override: func(o *Outcome) { o.SpiritStones -= 2 }},
				{ID: "walk-past", Label: "Walk past", Description: "Your path is your own.", Tag: TagNoop},
				{ID: "rob-him", Label: "Rob him", Description: "A beggar with clear eyes hides wealth.", Tag: TagHarmful,
					override: func(o *Outcome) { o.SpiritStones += 3 }},
			},
		},
		{
			ID:          "mysterious-cave",
			Title:       "Mysterious Cave (无名洞府)",
			Description: "A sealed cave mouth hums with residual qi. The seal is old, and older things may wait behind it.",
			Choices: []Choice{
				{ID: "break-seal", Label: "Break the seal", Description: "Fortune favors the bold.", Tag: TagRisky},
				{ID: "mark-map", Label: "Mark it on your map", Description: "Return when stronger.", Tag: TagCautious},
			},
		},
		{
			ID:          "black-market",
			Title:       "Black Market Auction (黑市拍卖)",
			Description: "Hooded cultivators trade stolen dao artifacts by candlelight. Nobody asks where the goods came from.",
			Choices: []Choice{
				{ID: "join-bidding", Label: "Join the bidding", Description: "Treasures at a discount.", Tag: TagGreedy},
				{ID: "report-sect", Label: "Report it to the sect", Description: "Law above profit.", Tag: TagBeneficial,
					override: func(o *Outcome) { o.Reputation++ }},
			},
		},
		{
			ID:          "fallen-rival",
			Title:       "Fallen Rival (宿敌重伤)",
			Description: "Your old rival lies broken beneath a lightning-scarred pine, his core cracked, his sword arm ruined.",
			Choices: []Choice{
				{ID: "spare-him", Label: "Spare him", Description: "Mercy plants seeds.", Tag: TagBeneficial},
				{ID: "finish-him", Label: "Finish him", Description: "Take his blade as trophy.", Tag: TagHarmful,
					override: func(o *Outcome) { o.GrantArtifact = items.ArtifactDarkSlasher }},
				{ID: "loot-him", Label: "Loot him and leave", Description: "The stones help either way.", Tag: TagGreedy},
			},
		},
		{
			ID:          "heart-demon",
			Title:       "Heart Demon Whisper (心魔低语)",
			Description: "In meditation, a voice wearing your own face offers power without patience, ascent without cost.",
			Choices: []Choice{
				{ID: "embrace", Label: "Embrace the whisper", Description: "Power is power.", Tag: TagHarmful,
					override: func(o *Outcome) { o.Obsession += 2 }},
				{ID: "resist", Label: "Resist", Description: "The slow path is the path.", Tag: TagCautious,
					override: func(o *Outcome) { o.Karma++ }},
			},
		},
	}
}

// Pick draws a random encounter from the pool.
func Pick(r *rand.Rand) Encounter {
	pool := Catalog()
	return pool[r.Intn(len(pool))]
}

// ByID looks up an encounter in the pool.
func ByID(id string) (Encounter, bool) {
	for _, encounter := range Catalog() {
		if encounter.ID == id {
			return encounter, true
		}
	}
	return Encounter{}, false
}
