package items

import (
	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/hands"
)

// Slot is one of the five equipment slots a run can fill.
type Slot string

const (
	SlotHead      Slot = "Head"
	SlotHand      Slot = "Hand"
	SlotLeg       Slot = "Leg"
	SlotBody      Slot = "Body"
	SlotAccessory Slot = "Accessory"
)

// Slots lists the equipment slots in declaration order. Artifact scoring
// contributions resolve in this order.
func Slots() []Slot {
	return []Slot{SlotHead, SlotHand, SlotLeg, SlotBody, SlotAccessory}
}

// Rarity is an artifact rarity tier.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityLegendary Rarity = "Legendary"
)

// ArtifactKind identifies an artifact's base identity. Merge-matching at
// the shop compares kinds, never offer instances.
type ArtifactKind string

const (
	ArtifactBreath           ArtifactKind = "art-of-breath"
	ArtifactDiamondFinger    ArtifactKind = "diamond-finger"
	ArtifactLotusPalm        ArtifactKind = "lotus-palm"
	ArtifactDarkSlasher      ArtifactKind = "dark-slasher"
	ArtifactEmeraldStaff     ArtifactKind = "emerald-staff"
	ArtifactBlueSkyRobe      ArtifactKind = "blue-sky-robe"
	ArtifactSevenStarRing    ArtifactKind = "seven-star-ring"
	ArtifactUnicornBoots     ArtifactKind = "unicorn-boots"
	ArtifactDragonBoots      ArtifactKind = "dragon-boots"
	ArtifactCelestialPendant ArtifactKind = "celestial-pendant"
	ArtifactHeavenlyHelmet   ArtifactKind = "heavenly-helmet"
	ArtifactNineTurnPill     ArtifactKind = "nine-turn-pill"
	ArtifactEchoBell         ArtifactKind = "echo-bell"
	ArtifactMirrorMask       ArtifactKind = "mirror-mask"
	ArtifactTidalPearl       ArtifactKind = "tidal-pearl"
	ArtifactLastStand        ArtifactKind = "last-stand"
	ArtifactGoldenAbacus     ArtifactKind = "golden-abacus"
)

// Artifact is a persistent, slotted, levelable piece of equipment.
type Artifact struct {
	Kind        ArtifactKind `json:"kind"`
	Name        string       `json:"name"`
	Rarity      Rarity       `json:"rarity"`
	Slot        Slot         `json:"slot"`
	Level       int          `json:"level"`
	Price       int          `json:"price"`
	Effect      string       `json:"effect"`
	Description string       `json:"description"`
}

// ScoreContext carries everything an artifact effect is allowed to read.
// Selection and Category are the already-selected cards and the
// already-classified hand; effects never reclassify.
type ScoreContext struct {
	Selection     cards.Stack
	Category      hands.Category
	PlaysLeft     int
	DeckSize      int
	SpiritStones  int
	OccupiedSlots int
	ElixirsUsed   int
	HandsPlayed   int
	Year          int
	Realm         int
}

// Contribution is what one artifact adds to the scoring accumulators.
type Contribution struct {
	Chips int
	Mult  int
	XMult float64
}

// RetriggerRule marks which selected cards an artifact scores a second time.
type RetriggerRule string

const (
	RetriggerNone      RetriggerRule = ""
	RetriggerFirstCard RetriggerRule = "first-card"
	RetriggerFaceCards RetriggerRule = "face-cards"
)

type artifactBehavior struct {
	score     func(level int, ctx ScoreContext) Contribution
	retrigger RetriggerRule
}

// artifactBehaviors keys every artifact effect by its kind, so adding a
// kind without a behavior is caught by the catalog test rather than a
// silent no-op at play time.
var artifactBehaviors = map[ArtifactKind]artifactBehavior{
	ArtifactBreath: {
		score: func(level int, _ ScoreContext) Contribution {
			return Contribution{Mult: 4 * level, XMult: 1}
		},
	},
	ArtifactDiamondFinger: {score: suitMult(cards.Diamonds)},
	ArtifactLotusPalm:     {score: suitMult(cards.Hearts)},
	ArtifactDarkSlasher:   {score: suitMult(cards.Spades)},
	ArtifactEmeraldStaff:  {score: suitMult(cards.Clubs)},
	ArtifactBlueSkyRobe: {
		score: func(level int, ctx ScoreContext) Contribution {
			return Contribution{Chips: 2 * level * ctx.DeckSize, XMult: 1}
		},
	},
	ArtifactSevenStarRing: {
		score: func(level int, ctx ScoreContext) Contribution {
			return Contribution{Mult: 3 * level * ctx.OccupiedSlots, XMult: 1}
		},
	},
	ArtifactUnicornBoots: {
		score: func(level int, ctx ScoreContext) Contribution {
			odd := 0
			for _, card := range ctx.Selection {
				switch card.Rank {
				case cards.Ace, cards.Nine, cards.Seven, cards.Five, cards.Three:
					odd++
				}
			}
			return Contribution{Chips: 30 * level * odd, XMult: 1}
		},
	},
	ArtifactDragonBoots: {
		score: func(level int, ctx ScoreContext) Contribution {
			even := 0
			for _, card := range ctx.Selection {
				switch card.Rank {
				case cards.Two, cards.Four, cards.Six, cards.Eight, cards.Ten:
					even++
				}
			}
			return Contribution{Mult: 4 * level * even, XMult: 1}
		},
	},
	ArtifactCelestialPendant: {
		score: func(level int, ctx ScoreContext) Contribution {
			return Contribution{XMult: 1 + 0.1*float64(level)*float64(ctx.ElixirsUsed)}
		},
	},
	ArtifactHeavenlyHelmet: {
		score: func(level int, _ ScoreContext) Contribution {
			return Contribution{Chips: 250 * level, XMult: 1}
		},
	},
	ArtifactNineTurnPill: {
		score: func(level int, ctx ScoreContext) Contribution {
			return Contribution{Mult: level * ctx.HandsPlayed, XMult: 1}
		},
	},
	ArtifactEchoBell: {
		score:     noScore,
		retrigger: RetriggerFirstCard,
	},
	ArtifactMirrorMask: {
		score:     noScore,
		retrigger: RetriggerFaceCards,
	},
	ArtifactTidalPearl: {
		score: func(level int, ctx ScoreContext) Contribution {
			switch ctx.Category {
			case hands.Flush, hands.StraightFlush, hands.RoyalFlush:
				return Contribution{XMult: 1 + 0.5*float64(level)}
			}
			return Contribution{XMult: 1}
		},
	},
	ArtifactLastStand: {
		score: func(level int, ctx ScoreContext) Contribution {
			if ctx.PlaysLeft == 1 {
				return Contribution{XMult: 1 + float64(level)}
			}
			return Contribution{XMult: 1}
		},
	},
	ArtifactGoldenAbacus: {
		score: func(level int, ctx ScoreContext) Contribution {
			return Contribution{Mult: level * (ctx.SpiritStones / 5), XMult: 1}
		},
	},
}

func noScore(int, ScoreContext) Contribution {
	return Contribution{XMult: 1}
}

// suitMult builds the per-suit "+4 mult per matching card" family.
func suitMult(suit cards.Suit) func(level int, ctx ScoreContext) Contribution {
	return func(level int, ctx ScoreContext) Contribution {
		matching := 0
		for _, card := range ctx.Selection {
			if card.Suit == suit || card.IsWildSuit() {
				matching++
			}
		}
		return Contribution{Mult: 4 * level * matching, XMult: 1}
	}
}

// Score computes the artifact's contribution for the given context.
// Unknown kinds contribute nothing.
func (a Artifact) Score(ctx ScoreContext) Contribution {
	behavior, ok := artifactBehaviors[a.Kind]
	if !ok {
		return Contribution{XMult: 1}
	}
	return behavior.score(a.Level, ctx)
}

// Retrigger reports which selected cards the artifact scores a second time.
func (a Artifact) Retrigger() RetriggerRule {
	return artifactBehaviors[a.Kind].retrigger
}

// ArtifactCatalog returns the full artifact pool at level 1.
func ArtifactCatalog() []Artifact {
	return []Artifact{
		{Kind: ArtifactBreath, Name: "Art of Breath (吐纳术)", Rarity: RarityCommon, Slot: SlotHead, Level: 1, Price: 4, Effect: "+4 Tao", Description: "基础修仙法门。"},
		{Kind: ArtifactDiamondFinger, Name: "Diamond Finger (金刚指)", Rarity: RarityCommon, Slot: SlotHand, Level: 1, Price: 5, Effect: "Diamonds give +4 Tao", Description: "方块牌提供额外道行。"},
		{Kind: ArtifactLotusPalm, Name: "Lotus Palm (红莲掌)", Rarity: RarityCommon, Slot: SlotHand, Level: 1, Price: 5, Effect: "Hearts give +4 Tao", Description: "红桃牌提供额外道行。"},
		{Kind: ArtifactDarkSlasher, Name: "Dark Slasher (玄铁重剑)", Rarity: RarityCommon, Slot: SlotHand, Level: 1, Price: 5, Effect: "Spades give +4 Tao", Description: "黑桃牌提供额外道行。"},
		{Kind: ArtifactEmeraldStaff, Name: "Emerald Staff (翠竹仗)", Rarity: RarityCommon, Slot: SlotHand, Level: 1, Price: 5, Effect: "Clubs give +4 Tao", Description: "梅花牌提供额外道行。"},
		{Kind: ArtifactBlueSkyRobe, Name: "Blue Sky Robe (青天法袍)", Rarity: RarityUncommon, Slot: SlotBody, Level: 1, Price: 6, Effect: "+2 Tao per card in deck", Description: "根据牌组余量提供道行。"},
		{Kind: ArtifactSevenStarRing, Name: "Seven-Star Ring (七星戒)", Rarity: RarityCommon, Slot: SlotAccessory, Level: 1, Price: 4, Effect: "+3 Tao per Artifact", Description: "每装备一件法宝获得道行。"},
		{Kind: ArtifactUnicornBoots, Name: "Unicorn Boots (麒麟靴)", Rarity: RarityCommon, Slot: SlotLeg, Level: 1, Price: 5, Effect: "Odd cards give +30 Tao", Description: "奇数点数牌提供加成。"},
		{Kind: ArtifactDragonBoots, Name: "Dragon Boots (真龙靴)", Rarity: RarityCommon, Slot: SlotLeg, Level: 1, Price: 5, Effect: "Even cards give +4 Tao", Description: "偶数点数牌提供加成。"},
		{Kind: ArtifactCelestialPendant, Name: "Celestial Pendant (星曜佩)", Rarity: RarityUncommon, Slot: SlotAccessory, Level: 1, Price: 6, Effect: "Gain x0.1 Tao per Elixir", Description: "已消费丹药提供全局道行。"},
		{Kind: ArtifactHeavenlyHelmet, Name: "Heavenly Helmet (乾坤盔)", Rarity: RarityRare, Slot: SlotHead, Level: 1, Price: 8, Effect: "+250 Tao", Description: "巨大的道行加成。"},
		{Kind: ArtifactNineTurnPill, Name: "Nine-Turn Pill (九转丹)", Rarity: RarityUncommon, Slot: SlotAccessory, Level: 1, Price: 6, Effect: "+Tao based on hand use", Description: "根据出牌频率叠加道行。"},
		{Kind: ArtifactEchoBell, Name: "Echo Bell (回音铃)", Rarity: RarityRare, Slot: SlotAccessory, Level: 1, Price: 7, Effect: "Retrigger first card", Description: "首张选中牌再次结算。"},
		{Kind: ArtifactMirrorMask, Name: "Mirror Mask (镜面具)", Rarity: RarityRare, Slot: SlotHead, Level: 1, Price: 8, Effect: "Retrigger face cards", Description: "人头牌再次结算。"},
		{Kind: ArtifactTidalPearl, Name: "Tidal Pearl (潮汐珠)", Rarity: RarityUncommon, Slot: SlotBody, Level: 1, Price: 6, Effect: "x1.5 Tao on Flushes", Description: "同花牌型提供全局道行。"},
		{Kind: ArtifactLastStand, Name: "Last Stand (背水一战)", Rarity: RarityRare, Slot: SlotBody, Level: 1, Price: 7, Effect: "x2 Tao on final play", Description: "最后一次出牌时道行翻倍。"},
		{Kind: ArtifactGoldenAbacus, Name: "Golden Abacus (金算盘)", Rarity: RarityUncommon, Slot: SlotLeg, Level: 1, Price: 6, Effect: "+1 Tao per 5 Stones", Description: "身家越厚，道行越深。"},
	}
}

// ArtifactByKind looks up a catalog artifact by its base identity.
func ArtifactByKind(kind ArtifactKind) (Artifact, bool) {
	for _, artifact := range ArtifactCatalog() {
		if artifact.Kind == kind {
			return artifact, true
		}
	}
	return Artifact{}, false
}
