package encounters

import (
	"math/rand"
	"testing"

	"github.com/lazharichir/tribulation/items"
	"github.com/stretchr/testify/assert"
)

func TestResolve_BeneficialTagDeltas(t *testing.T) {
	encounter, ok := ByID("fallen-rival")
	assert.True(t, ok)

	outcome := Resolve(encounter, "spare-him", rand.New(rand.NewSource(1)))

	assert.Equal(t, 2, outcome.Karma)
	assert.Equal(t, 1, outcome.Reputation)
	assert.Equal(t, 0, outcome.SpiritStones)
}

func TestResolve_OverrideStacksOnTag(t *testing.T) {
	encounter, _ := ByID("wandering-beggar")

	outcome := Resolve(encounter, "give-alms", rand.New(rand.NewSource(1)))

	// Beneficial deltas plus the alms cost.
	assert.Equal(t, 2, outcome.Karma)
	assert.Equal(t, -2, outcome.SpiritStones)
}

func TestResolve_HarmfulOverrideGrantsArtifact(t *testing.T) {
	encounter, _ := ByID("fallen-rival")

	outcome := Resolve(encounter, "finish-him", rand.New(rand.NewSource(1)))

	assert.Equal(t, -2, outcome.Karma)
	assert.Equal(t, items.ArtifactDarkSlasher, outcome.GrantArtifact)
}

func TestResolve_RiskyCoinFlipHasTwoBranches(t *testing.T) {
	encounter, _ := ByID("mysterious-cave")

	lucky, unlucky := false, false
	for seed := int64(0); seed < 50 && !(lucky && unlucky); seed++ {
		outcome := Resolve(encounter, "break-seal", rand.New(rand.NewSource(seed)))
		switch outcome.SpiritStones {
		case 8:
			lucky = true
		case -3:
			unlucky = true
		default:
			t.Fatalf("unexpected risky outcome: %+v", outcome)
		}
	}

	assert.True(t, lucky, "lucky branch never hit")
	assert.True(t, unlucky, "unlucky branch never hit")
}

func TestResolve_UnknownChoiceIsZero(t *testing.T) {
	encounter, _ := ByID("mysterious-cave")

	assert.Equal(t, Outcome{}, Resolve(encounter, "no-such-choice", rand.New(rand.NewSource(1))))
}

func TestPickReturnsCatalogEncounter(t *testing.T) {
	encounter := Pick(rand.New(rand.NewSource(9)))

	_, ok := ByID(encounter.ID)
	assert.True(t, ok)
	assert.NotEmpty(t, encounter.Choices)
}

func TestStoryCheckpoints(t *testing.T) {
	beat, ok := StoryFor(1)
	assert.True(t, ok)
	assert.Equal(t, 1, beat.Year)

	_, ok = StoryFor(2)
	assert.False(t, ok)

	beat, ok = StoryFor(24)
	assert.True(t, ok)
	assert.NotEmpty(t, beat.Lines)
}

func TestRealmNameClamps(t *testing.T) {
	assert.Equal(t, RealmName(1), RealmName(0))
	assert.Equal(t, RealmName(8), RealmName(99))
	assert.NotEqual(t, RealmName(1), RealmName(8))
}

func TestDecideEnding(t *testing.T) {
	tests := []struct {
		name                        string
		karma, obsession, reputation int
		want                        string
	}{
		{"obsession damns first", 20, 10, 9, "heart-demon"},
		{"negative karma falls", -1, 0, 9, "fallen-path"},
		{"clean ledger ascends", 10, 0, 5, "true-immortal"},
		{"ordinary run retires", 5, 3, 2, "mortal-dust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ending := DecideEnding(tt.karma, tt.obsession, tt.reputation)
			assert.Equal(t, tt.want, ending.ID)
		})
	}
}

func TestOnlyTrueImmortalIsTrue(t *testing.T) {
	assert.True(t, DecideEnding(10, 0, 5).IsTrue)
	assert.False(t, DecideEnding(0, 0, 0).IsTrue)
	assert.False(t, DecideEnding(-5, 0, 0).IsTrue)
	assert.False(t, DecideEnding(20, 10, 20).IsTrue)
}
