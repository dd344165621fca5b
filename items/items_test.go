package items

import (
	"testing"

	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/hands"
	"github.com/stretchr/testify/assert"
)

func TestEveryCatalogArtifactHasABehavior(t *testing.T) {
	for _, artifact := range ArtifactCatalog() {
		behavior, ok := artifactBehaviors[artifact.Kind]
		assert.True(t, ok, "artifact %s has no behavior", artifact.Kind)
		if ok {
			assert.NotNil(t, behavior.score, "artifact %s has no score func", artifact.Kind)
		}
	}
}

func TestEveryElixirUpgradesAValidCategory(t *testing.T) {
	valid := make(map[hands.Category]bool)
	for _, category := range hands.Categories() {
		valid[category] = true
	}

	for _, consumable := range ConsumableCatalog() {
		if consumable.Type != TypeElixir {
			continue
		}
		category, ok := consumable.UpgradesCategory()
		assert.True(t, ok, "elixir %s upgrades nothing", consumable.Kind)
		assert.True(t, valid[category], "elixir %s upgrades unknown category %s", consumable.Kind, category)
	}
}

func TestSuitArtifactCountsMatchingCards(t *testing.T) {
	artifact, _ := ArtifactByKind(ArtifactDiamondFinger)
	ctx := ScoreContext{
		Selection: cards.Stack{
			cards.NewCard(cards.Two, cards.Diamonds),
			cards.NewCard(cards.Five, cards.Diamonds),
			cards.NewCard(cards.Nine, cards.Spades),
		},
	}

	contribution := artifact.Score(ctx)

	assert.Equal(t, 8, contribution.Mult)
	assert.Equal(t, 1.0, contribution.XMult)
}

func TestSuitArtifactCountsWildCards(t *testing.T) {
	artifact, _ := ArtifactByKind(ArtifactLotusPalm)
	wild := cards.NewCard(cards.Nine, cards.Spades)
	wild.Enhancement = cards.EnhancementWild
	ctx := ScoreContext{Selection: cards.Stack{wild}}

	assert.Equal(t, 4, artifact.Score(ctx).Mult)
}

func TestArtifactLevelScalesContribution(t *testing.T) {
	artifact, _ := ArtifactByKind(ArtifactBreath)
	assert.Equal(t, 4, artifact.Score(ScoreContext{}).Mult)

	artifact.Level = 3
	assert.Equal(t, 12, artifact.Score(ScoreContext{}).Mult)
}

func TestTidalPearlOnlyTriggersOnFlushes(t *testing.T) {
	artifact, _ := ArtifactByKind(ArtifactTidalPearl)

	assert.Equal(t, 1.5, artifact.Score(ScoreContext{Category: hands.Flush}).XMult)
	assert.Equal(t, 1.5, artifact.Score(ScoreContext{Category: hands.RoyalFlush}).XMult)
	assert.Equal(t, 1.0, artifact.Score(ScoreContext{Category: hands.Straight}).XMult)
}

func TestLastStandTriggersOnFinalPlay(t *testing.T) {
	artifact, _ := ArtifactByKind(ArtifactLastStand)

	assert.Equal(t, 2.0, artifact.Score(ScoreContext{PlaysLeft: 1}).XMult)
	assert.Equal(t, 1.0, artifact.Score(ScoreContext{PlaysLeft: 3}).XMult)
}

func TestCelestialPendantScalesWithElixirsUsed(t *testing.T) {
	artifact, _ := ArtifactByKind(ArtifactCelestialPendant)

	assert.InDelta(t, 1.3, artifact.Score(ScoreContext{ElixirsUsed: 3}).XMult, 1e-9)
	assert.Equal(t, 1.0, artifact.Score(ScoreContext{}).XMult)
}

func TestRetriggerRules(t *testing.T) {
	echo, _ := ArtifactByKind(ArtifactEchoBell)
	mirror, _ := ArtifactByKind(ArtifactMirrorMask)
	breath, _ := ArtifactByKind(ArtifactBreath)

	assert.Equal(t, RetriggerFirstCard, echo.Retrigger())
	assert.Equal(t, RetriggerFaceCards, mirror.Retrigger())
	assert.Equal(t, RetriggerNone, breath.Retrigger())
}

func TestRewriteScrolls(t *testing.T) {
	scroll, _ := ConsumableByKind(ScrollMultAvatar)
	rewrite, ok := scroll.Rewrite()

	assert.True(t, ok)
	assert.Equal(t, 2, rewrite.Targets)
	assert.Equal(t, cards.EnhancementMult, rewrite.Enhancement)

	suitScroll, _ := ConsumableByKind(ScrollFourHearts)
	rewrite, ok = suitScroll.Rewrite()

	assert.True(t, ok)
	assert.Equal(t, 3, rewrite.Targets)
	assert.Equal(t, cards.Hearts, rewrite.Suit)

	elixir, _ := ConsumableByKind(ElixirMars)
	_, ok = elixir.Rewrite()
	assert.False(t, ok)
}
