package run

import (
	"testing"

	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/encounters"
	"github.com/lazharichir/tribulation/events"
	"github.com/lazharichir/tribulation/hands"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGameplayRun builds a run and advances past the opening story beat.
func newGameplayRun(t *testing.T, seed int64) *Run {
	t.Helper()
	r := New(seed)
	require.NoError(t, r.AdvanceStory())
	require.Equal(t, PhaseGameplay, r.Phase)
	return r
}

func TestNewRunOpensOnStoryBeat(t *testing.T) {
	r := New(1)

	assert.Equal(t, PhaseStory, r.Phase)
	beat, ok := r.PendingStory()
	assert.True(t, ok)
	assert.Equal(t, 1, beat.Year)

	require.NoError(t, r.AdvanceStory())
	assert.Equal(t, PhaseGameplay, r.Phase)
}

func TestNewRunStartingState(t *testing.T) {
	r := newGameplayRun(t, 1)

	assert.Equal(t, 1, r.Year)
	assert.Equal(t, 300, r.Goal)
	assert.Equal(t, StartingStones, r.SpiritStones)
	assert.Equal(t, StartingLives, r.Lives)
	assert.Equal(t, BasePlays, r.PlaysLeft)
	assert.Equal(t, BaseDiscards, r.DiscardsLeft)
	assert.Len(t, r.Hand, HandSize)
	assert.Len(t, r.Deck, 52-HandSize)
	for _, category := range hands.Categories() {
		assert.Equal(t, 1, r.HandLevels[category])
	}
}

func TestToggleSelectCapsAtFive(t *testing.T) {
	r := newGameplayRun(t, 1)

	for i := 0; i < MaxSelection; i++ {
		require.NoError(t, r.ToggleSelect(r.Hand[i].ID))
	}
	assert.Error(t, r.ToggleSelect(r.Hand[5].ID))

	// Toggling off frees a slot.
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))
	assert.NoError(t, r.ToggleSelect(r.Hand[5].ID))
	assert.Len(t, r.Selected(), MaxSelection)
}

func TestToggleSelectRejectsUnknownCard(t *testing.T) {
	r := newGameplayRun(t, 1)

	assert.Error(t, r.ToggleSelect("not-a-card"))
}

func TestPlayHandCommitsPreviewTotal(t *testing.T) {
	r := newGameplayRun(t, 1)
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))

	expected := r.Preview().Total
	require.NoError(t, r.PlayHand())

	assert.Equal(t, expected, r.Score)
	assert.Equal(t, BasePlays-1, r.PlaysLeft)
	assert.Equal(t, 1, r.HandsPlayed)
	assert.Len(t, r.Hand, HandSize)
	assert.Empty(t, r.Selected())
}

func TestPlayHandRequiresSelection(t *testing.T) {
	r := newGameplayRun(t, 1)

	assert.Error(t, r.PlayHand())
}

func TestVictoryGrantsRewardAndOpensShop(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Goal = 1
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))

	require.NoError(t, r.PlayHand())

	assert.Equal(t, PhaseShop, r.Phase)
	assert.Equal(t, StartingStones+VictoryReward, r.SpiritStones)
	assert.Equal(t, shop.RerollBaseCost, r.RerollCost)
	assert.Len(t, r.Offers.Artifacts, shop.ArtifactOfferCount)
	assert.Len(t, r.Offers.Consumables, shop.ConsumableOfferCount)
}

func TestDefeatWithLivesLeftRetriesTheRound(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Goal = 1_000_000
	r.PlaysLeft = 1
	r.SpiritStones = 17
	artifact, _ := items.ArtifactByKind(items.ArtifactBreath)
	r.Loadout[artifact.Slot] = artifact
	elixir, _ := items.ConsumableByKind(items.ElixirMars)
	r.Consumables = []items.Consumable{elixir}
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))

	require.NoError(t, r.PlayHand())

	assert.Equal(t, StartingLives-1, r.Lives)
	assert.Equal(t, PhaseGameplay, r.Phase)
	assert.Equal(t, 1, r.Year)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, BasePlays, r.PlaysLeft)
	assert.Equal(t, BaseDiscards, r.DiscardsLeft)
	assert.Len(t, r.Hand, HandSize)

	// A retry keeps equipment, consumables and currency.
	assert.Equal(t, 17, r.SpiritStones)
	assert.Equal(t, artifact, r.Loadout[artifact.Slot])
	assert.Len(t, r.Consumables, 1)
}

func TestDefeatOnLastLifeRestartsTheRun(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Goal = 1_000_000
	r.PlaysLeft = 1
	r.Lives = 1
	r.Year = 5
	r.SpiritStones = 99
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))

	require.NoError(t, r.PlayHand())

	assert.Equal(t, 1, r.Year)
	assert.Equal(t, StartingLives, r.Lives)
	assert.Equal(t, StartingStones, r.SpiritStones)
	assert.Equal(t, PhaseStory, r.Phase)
}

func TestDiscardReplacesCards(t *testing.T) {
	r := newGameplayRun(t, 1)
	thrown := r.Hand[0].ID
	require.NoError(t, r.ToggleSelect(thrown))

	require.NoError(t, r.Discard())

	assert.Equal(t, BaseDiscards-1, r.DiscardsLeft)
	assert.Len(t, r.Hand, HandSize)
	_, stillThere := r.Hand.ByID(thrown)
	assert.False(t, stillThere)
}

func TestDiscardBudgetExhausts(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.DiscardsLeft = 0
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))

	assert.Error(t, r.Discard())
}

func stubArtifactOffer(kind items.ArtifactKind) shop.ArtifactOffer {
	artifact, _ := items.ArtifactByKind(kind)
	return shop.ArtifactOffer{OfferID: "offer-1", Artifact: artifact}
}

func TestBuyArtifactEquipsIntoSlot(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.SpiritStones = 50
	offer := stubArtifactOffer(items.ArtifactBreath)
	r.Offers = shop.Offers{Artifacts: []shop.ArtifactOffer{offer}}

	require.NoError(t, r.BuyArtifact("offer-1"))

	equipped, ok := r.Loadout[offer.Artifact.Slot]
	assert.True(t, ok)
	assert.Equal(t, items.ArtifactBreath, equipped.Kind)
	assert.Equal(t, 1, equipped.Level)
	assert.Equal(t, 50-offer.Artifact.Price, r.SpiritStones)
	assert.Empty(t, r.Offers.Artifacts)
}

func TestBuyArtifactMergesSameKindSameLevel(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.SpiritStones = 50
	offer := stubArtifactOffer(items.ArtifactBreath)
	r.Loadout[offer.Artifact.Slot] = offer.Artifact
	r.Offers = shop.Offers{Artifacts: []shop.ArtifactOffer{offer}}

	require.NoError(t, r.BuyArtifact("offer-1"))

	assert.Equal(t, 2, r.Loadout[offer.Artifact.Slot].Level)
}

func TestBuyArtifactReplacesDifferentOccupant(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.SpiritStones = 50
	offer := stubArtifactOffer(items.ArtifactBreath)

	occupant := offer.Artifact
	occupant.Kind = items.ArtifactDiamondFinger
	occupant.Level = 3
	r.Loadout[offer.Artifact.Slot] = occupant
	r.Offers = shop.Offers{Artifacts: []shop.ArtifactOffer{offer}}

	require.NoError(t, r.BuyArtifact("offer-1"))

	equipped := r.Loadout[offer.Artifact.Slot]
	assert.Equal(t, items.ArtifactBreath, equipped.Kind)
	assert.Equal(t, 1, equipped.Level)
}

func TestBuyArtifactRequiresStones(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.SpiritStones = 0
	r.Offers = shop.Offers{Artifacts: []shop.ArtifactOffer{stubArtifactOffer(items.ArtifactBreath)}}

	assert.Error(t, r.BuyArtifact("offer-1"))
	assert.Empty(t, r.Loadout)
	assert.Len(t, r.Offers.Artifacts, 1)
}

func TestBuyConsumableRespectsCapacity(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.SpiritStones = 50
	elixir, _ := items.ConsumableByKind(items.ElixirMercury)
	r.Consumables = []items.Consumable{elixir, elixir}
	r.Offers = shop.Offers{Consumables: []shop.ConsumableOffer{{OfferID: "offer-1", Consumable: elixir}}}

	assert.Error(t, r.BuyConsumable("offer-1"))
	assert.Len(t, r.Consumables, MaxConsumables)
}

func TestRerollCostEscalatesWithinVisitAndResets(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.SpiritStones = 100

	require.NoError(t, r.RerollShop())
	require.NoError(t, r.RerollShop())

	assert.Equal(t, shop.RerollBaseCost+2*shop.RerollCostStep, r.RerollCost)
	assert.Equal(t, 100-shop.RerollBaseCost-(shop.RerollBaseCost+shop.RerollCostStep), r.SpiritStones)

	r.enterShop()
	assert.Equal(t, shop.RerollBaseCost, r.RerollCost)
}

func TestNextRoundAdvancesYearAndGoal(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.Score = 500

	require.NoError(t, r.NextRound())

	assert.Equal(t, 2, r.Year)
	assert.Equal(t, 450, r.Goal)
	assert.Equal(t, 0, r.Score)
	assert.Len(t, r.Hand, HandSize)

	switch r.Phase {
	case PhaseGameplay:
	case PhaseEvent:
		_, ok := r.PendingEncounter()
		assert.True(t, ok)
	default:
		t.Fatalf("unexpected phase after advancing: %s", r.Phase)
	}
}

func TestNextRoundAfterFinalYearEndsTheRun(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.Phase = PhaseShop
	r.Year = FinalYear

	require.NoError(t, r.NextRound())

	assert.Equal(t, PhaseEnding, r.Phase)
	require.NotNil(t, r.Ending)
	assert.Equal(t, "mortal-dust", r.Ending.ID)
}

func TestGoalScalesByRealm(t *testing.T) {
	assert.Equal(t, 300, GoalFor(1))
	assert.Equal(t, 450, GoalFor(2))
	assert.Equal(t, 600, GoalFor(3))
	assert.Equal(t, 450, GoalFor(4))
	year22Scale := float64(300) * 17.0859375
	assert.Equal(t, GoalFor(22), int(year22Scale))

	for year := 1; year < FinalYear; year++ {
		assert.LessOrEqual(t, RealmOf(year), RealmOf(year+1))
	}
	assert.Equal(t, 8, RealmOf(FinalYear))
}

func TestResolveEventChoiceAppliesDeltas(t *testing.T) {
	r := newGameplayRun(t, 1)
	encounter, ok := encounters.ByID("wandering-beggar")
	require.True(t, ok)
	r.pendingEncounter = &encounter
	r.returnPhase = PhaseGameplay
	r.Phase = PhaseEvent

	require.NoError(t, r.ResolveEventChoice("give-alms"))

	assert.Equal(t, 2, r.Karma)
	assert.Equal(t, StartingStones-2, r.SpiritStones)
	assert.Equal(t, PhaseGameplay, r.Phase)
	_, pending := r.PendingEncounter()
	assert.False(t, pending)
}

func TestResolveEventChoiceClampsStonesAtZero(t *testing.T) {
	r := newGameplayRun(t, 1)
	r.SpiritStones = 1
	encounter, _ := encounters.ByID("wandering-beggar")
	r.pendingEncounter = &encounter
	r.returnPhase = PhaseGameplay
	r.Phase = PhaseEvent

	require.NoError(t, r.ResolveEventChoice("give-alms"))

	assert.Equal(t, 0, r.SpiritStones)
}

func TestUseElixirRaisesHandLevel(t *testing.T) {
	r := newGameplayRun(t, 1)
	elixir, _ := items.ConsumableByKind(items.ElixirMercury)
	r.Consumables = []items.Consumable{elixir}

	require.NoError(t, r.UseConsumable(items.ElixirMercury))

	assert.Equal(t, 2, r.HandLevels[hands.Pair])
	assert.Equal(t, 1, r.ElixirsUsed)
	assert.Empty(t, r.Consumables)
}

func TestUseConsumableNotHeld(t *testing.T) {
	r := newGameplayRun(t, 1)

	assert.Error(t, r.UseConsumable(items.ElixirMercury))
}

func TestRewriteScrollDegradesToSelectionSize(t *testing.T) {
	r := newGameplayRun(t, 1)
	scroll, _ := items.ConsumableByKind(items.ScrollMultAvatar)
	r.Consumables = []items.Consumable{scroll}
	target := r.Hand[0].ID
	require.NoError(t, r.ToggleSelect(target))

	require.NoError(t, r.UseConsumable(items.ScrollMultAvatar))

	card, _ := r.Hand.ByID(target)
	assert.Equal(t, cards.EnhancementMult, card.Enhancement)
	assert.Empty(t, r.Consumables)
}

func TestSuitScrollRewritesThreeCards(t *testing.T) {
	r := newGameplayRun(t, 1)
	scroll, _ := items.ConsumableByKind(items.ScrollFourHearts)
	r.Consumables = []items.Consumable{scroll}
	targets := []string{r.Hand[0].ID, r.Hand[1].ID, r.Hand[2].ID}
	for _, id := range targets {
		require.NoError(t, r.ToggleSelect(id))
	}

	require.NoError(t, r.UseConsumable(items.ScrollFourHearts))

	for _, id := range targets {
		card, _ := r.Hand.ByID(id)
		assert.Equal(t, cards.Hearts, card.Suit)
	}
}

func TestDestroyScrollRemovesUpToTwoWithoutRefill(t *testing.T) {
	r := newGameplayRun(t, 1)
	scroll, _ := items.ConsumableByKind(items.ScrollSlayingCorpses)
	r.Consumables = []items.Consumable{scroll}
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))

	require.NoError(t, r.UseConsumable(items.ScrollSlayingCorpses))

	assert.Len(t, r.Hand, HandSize-1)
	assert.Empty(t, r.Selected())
}

func TestNirvanaFingerClonesFirstOverSecond(t *testing.T) {
	r := newGameplayRun(t, 1)
	scroll, _ := items.ConsumableByKind(items.ScrollNirvanaFinger)
	r.Consumables = []items.Consumable{scroll}
	source := r.Hand[0]
	victim := r.Hand[1]
	require.NoError(t, r.ToggleSelect(source.ID))
	require.NoError(t, r.ToggleSelect(victim.ID))

	require.NoError(t, r.UseConsumable(items.ScrollNirvanaFinger))

	clone := r.Hand[1]
	assert.Equal(t, source.Rank, clone.Rank)
	assert.Equal(t, source.Suit, clone.Suit)
	assert.NotEqual(t, source.ID, clone.ID)
	assert.Len(t, r.Hand, HandSize)
}

func TestSpiritToadDoublesStonesWithCap(t *testing.T) {
	r := newGameplayRun(t, 1)
	toad, _ := items.ConsumableByKind(items.ScrollSpiritToad)

	r.SpiritStones = 6
	r.Consumables = []items.Consumable{toad}
	require.NoError(t, r.UseConsumable(items.ScrollSpiritToad))
	assert.Equal(t, 12, r.SpiritStones)

	r.SpiritStones = 30
	r.Consumables = []items.Consumable{toad}
	require.NoError(t, r.UseConsumable(items.ScrollSpiritToad))
	assert.Equal(t, 50, r.SpiritStones)
}

func TestWarBannerGrantsPermanentPlay(t *testing.T) {
	r := newGameplayRun(t, 1)
	banner, _ := items.ConsumableByKind(items.ScrollWarBanner)
	r.Consumables = []items.Consumable{banner}

	require.NoError(t, r.UseConsumable(items.ScrollWarBanner))
	assert.Equal(t, BasePlays+1, r.PlaysLeft)

	r.resetBudgets()
	assert.Equal(t, BasePlays+1, r.PlaysLeft)
}

func TestCelestialOmenRespectsCapacity(t *testing.T) {
	r := newGameplayRun(t, 1)
	omen, _ := items.ConsumableByKind(items.ScrollCelestialOmen)
	r.Consumables = []items.Consumable{omen}

	require.NoError(t, r.UseConsumable(items.ScrollCelestialOmen))

	assert.Len(t, r.Consumables, MaxConsumables)
	for _, held := range r.Consumables {
		assert.Equal(t, items.TypeElixir, held.Type)
	}
}

func TestRestartOnlyFromEnding(t *testing.T) {
	r := newGameplayRun(t, 1)
	assert.Error(t, r.Restart())

	r.Phase = PhaseShop
	r.Year = FinalYear
	require.NoError(t, r.NextRound())
	require.Equal(t, PhaseEnding, r.Phase)

	require.NoError(t, r.Restart())
	assert.Equal(t, 1, r.Year)
	assert.Equal(t, PhaseStory, r.Phase)
	assert.Nil(t, r.Ending)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	r := newGameplayRun(t, 7)
	r.Score = 123
	r.SpiritStones = 9
	r.HandLevels[hands.Flush] = 3
	artifact, _ := items.ArtifactByKind(items.ArtifactBreath)
	r.Loadout[artifact.Slot] = artifact
	require.NoError(t, r.ToggleSelect(r.Hand[2].ID))

	restored := Restore(r.Snapshot())

	assert.Equal(t, r.ID, restored.ID)
	assert.Equal(t, r.Phase, restored.Phase)
	assert.Equal(t, r.Score, restored.Score)
	assert.Equal(t, r.SpiritStones, restored.SpiritStones)
	assert.Equal(t, r.HandLevels, restored.HandLevels)
	assert.Equal(t, r.Loadout, restored.Loadout)
	assert.Equal(t, r.Hand, restored.Hand)
	assert.Equal(t, r.Deck, restored.Deck)
	assert.Equal(t, r.SelectedIDs(), restored.SelectedIDs())
	assert.Equal(t, r.Preview().Total, restored.Preview().Total)
}

func TestEventsFireOnPlay(t *testing.T) {
	r := newGameplayRun(t, 1)
	var seen []string
	r.AddEventHandler(func(event events.Event) {
		seen = append(seen, event.EventName())
	})
	require.NoError(t, r.ToggleSelect(r.Hand[0].ID))

	require.NoError(t, r.PlayHand())

	assert.Contains(t, seen, "hand-played")
}
