package items

import (
	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/hands"
)

// ConsumableType splits the held-item pool into permanent hand-level
// upgrades (elixirs) and one-shot card/state mutators (scrolls).
type ConsumableType string

const (
	TypeElixir ConsumableType = "Elixir"
	TypeScroll ConsumableType = "Scroll"
)

// ConsumableKind identifies a consumable's base identity.
type ConsumableKind string

const (
	ElixirPluto   ConsumableKind = "elixir-pluto"
	ElixirMercury ConsumableKind = "elixir-mercury"
	ElixirUranus  ConsumableKind = "elixir-uranus"
	ElixirVenus   ConsumableKind = "elixir-venus"
	ElixirEarth   ConsumableKind = "elixir-earth"
	ElixirSaturn  ConsumableKind = "elixir-saturn"
	ElixirJupiter ConsumableKind = "elixir-jupiter"
	ElixirMars    ConsumableKind = "elixir-mars"
	ElixirNeptune ConsumableKind = "elixir-neptune"

	ScrollGreatDream       ConsumableKind = "scroll-great-dream"
	ScrollSunMoonSwap      ConsumableKind = "scroll-sun-moon-swap"
	ScrollMultAvatar       ConsumableKind = "scroll-mult-avatar"
	ScrollTendonChange     ConsumableKind = "scroll-tendon-change"
	ScrollDiamondBody      ConsumableKind = "scroll-diamond-body"
	ScrollDemonDissolution ConsumableKind = "scroll-demon-dissolution"
	ScrollImmovableKing    ConsumableKind = "scroll-immovable-king"
	ScrollSpiritToad       ConsumableKind = "scroll-spirit-toad"
	ScrollSlayingCorpses   ConsumableKind = "scroll-slaying-corpses"
	ScrollNirvanaFinger    ConsumableKind = "scroll-nirvana-finger"
	ScrollCelestialOmen    ConsumableKind = "scroll-celestial-omen"
	ScrollExternalAvatar   ConsumableKind = "scroll-external-avatar"
	ScrollPointToGold      ConsumableKind = "scroll-point-to-gold"
	ScrollWarBanner        ConsumableKind = "scroll-war-banner"
	ScrollJadeGourd        ConsumableKind = "scroll-jade-gourd"
	ScrollFourSpades       ConsumableKind = "scroll-four-spades"
	ScrollFourHearts       ConsumableKind = "scroll-four-hearts"
	ScrollFourDiamonds     ConsumableKind = "scroll-four-diamonds"
	ScrollFourClubs        ConsumableKind = "scroll-four-clubs"
)

// Consumable is a held, single-use item.
type Consumable struct {
	Kind        ConsumableKind `json:"kind"`
	Name        string         `json:"name"`
	Type        ConsumableType `json:"type"`
	Price       int            `json:"price"`
	Effect      string         `json:"effect"`
	Description string         `json:"description"`
}

// elixirUpgrades maps each elixir to the hand category it levels up.
var elixirUpgrades = map[ConsumableKind]hands.Category{
	ElixirPluto:   hands.HighCard,
	ElixirMercury: hands.Pair,
	ElixirUranus:  hands.TwoPair,
	ElixirVenus:   hands.ThreeOfAKind,
	ElixirEarth:   hands.FullHouse,
	ElixirSaturn:  hands.Straight,
	ElixirJupiter: hands.Flush,
	ElixirMars:    hands.FourOfAKind,
	ElixirNeptune: hands.StraightFlush,
}

// UpgradesCategory returns the hand category an elixir levels up.
func (c Consumable) UpgradesCategory() (hands.Category, bool) {
	category, ok := elixirUpgrades[c.Kind]
	return category, ok
}

// ScrollRewrite describes a scroll that rewrites selected cards.
type ScrollRewrite struct {
	Targets     int               // how many selected cards it touches, in toggle order
	Enhancement cards.Enhancement // applied when non-empty
	Suit        cards.Suit        // applied when non-empty
}

// scrollRewrites keys the enhancement/suit rewrite scrolls by kind. The
// remaining scrolls (destroy, clone, currency, spawn, boss reroll) mutate
// run state beyond the cards and resolve in the run package.
var scrollRewrites = map[ConsumableKind]ScrollRewrite{
	ScrollSunMoonSwap:      {Targets: 1, Enhancement: cards.EnhancementWild},
	ScrollMultAvatar:       {Targets: 2, Enhancement: cards.EnhancementMult},
	ScrollTendonChange:     {Targets: 2, Enhancement: cards.EnhancementBonus},
	ScrollDiamondBody:      {Targets: 1, Enhancement: cards.EnhancementSteel},
	ScrollDemonDissolution: {Targets: 1, Enhancement: cards.EnhancementGlass},
	ScrollImmovableKing:    {Targets: 1, Enhancement: cards.EnhancementStone},
	ScrollPointToGold:      {Targets: 1, Enhancement: cards.EnhancementGold},
	ScrollFourSpades:       {Targets: 3, Suit: cards.Spades},
	ScrollFourHearts:       {Targets: 3, Suit: cards.Hearts},
	ScrollFourDiamonds:     {Targets: 3, Suit: cards.Diamonds},
	ScrollFourClubs:        {Targets: 3, Suit: cards.Clubs},
}

// Rewrite returns the card rewrite a scroll performs, if it is one of the
// rewrite scrolls.
func (c Consumable) Rewrite() (ScrollRewrite, bool) {
	rewrite, ok := scrollRewrites[c.Kind]
	return rewrite, ok
}

// ConsumableCatalog returns the full consumable pool.
func ConsumableCatalog() []Consumable {
	return []Consumable{
		{Kind: ElixirPluto, Name: "Pluto Elixir (冥王丹)", Type: TypeElixir, Price: 3, Effect: "Level up High Card", Description: "提升高牌等级。"},
		{Kind: ElixirMercury, Name: "Mercury Elixir (水星丹)", Type: TypeElixir, Price: 3, Effect: "Level up Pair", Description: "提升对子等级。"},
		{Kind: ElixirUranus, Name: "Uranus Elixir (天王丹)", Type: TypeElixir, Price: 3, Effect: "Level up Two Pair", Description: "提升两对等级。"},
		{Kind: ElixirVenus, Name: "Venus Elixir (金星丹)", Type: TypeElixir, Price: 3, Effect: "Level up Three of a Kind", Description: "提升三条等级。"},
		{Kind: ElixirEarth, Name: "Earth Elixir (后土丹)", Type: TypeElixir, Price: 3, Effect: "Level up Full House", Description: "提升葫芦等级。"},
		{Kind: ElixirSaturn, Name: "Saturn Elixir (土星丹)", Type: TypeElixir, Price: 3, Effect: "Level up Straight", Description: "提升顺子等级。"},
		{Kind: ElixirJupiter, Name: "Jupiter Elixir (木星丹)", Type: TypeElixir, Price: 3, Effect: "Level up Flush", Description: "提升同花等级。"},
		{Kind: ElixirMars, Name: "Mars Elixir (火星丹)", Type: TypeElixir, Price: 3, Effect: "Level up Four of a Kind", Description: "提升四条等级。"},
		{Kind: ElixirNeptune, Name: "Neptune Elixir (海王丹)", Type: TypeElixir, Price: 3, Effect: "Level up Straight Flush", Description: "提升同花顺等级。"},

		{Kind: ScrollGreatDream, Name: "Great Dream (大梦谁先觉)", Type: TypeScroll, Price: 3, Effect: "Reroll Boss", Description: "重新随机当前劫难。"},
		{Kind: ScrollSunMoonSwap, Name: "Sun-Moon Swap (偷天换日法)", Type: TypeScroll, Price: 3, Effect: "Enhance 1 card to Wild", Description: "将 1 张手牌变为万能牌。"},
		{Kind: ScrollMultAvatar, Name: "Mult Avatar (多重影分身)", Type: TypeScroll, Price: 3, Effect: "Enhance 2 cards to Mult", Description: "将 2 张手牌变为倍率增强牌。"},
		{Kind: ScrollTendonChange, Name: "Tendon Change (易筋洗髓经)", Type: TypeScroll, Price: 3, Effect: "Enhance 2 cards to Bonus", Description: "将 2 张手牌变为奖励筹码牌。"},
		{Kind: ScrollDiamondBody, Name: "Diamond Body (金刚不坏身)", Type: TypeScroll, Price: 3, Effect: "Enhance 1 card to Steel", Description: "将 1 张手牌变为钢制牌。"},
		{Kind: ScrollDemonDissolution, Name: "Demon Dissolution (天魔解体)", Type: TypeScroll, Price: 3, Effect: "Enhance 1 card to Glass", Description: "将 1 张手牌变为玻璃牌。"},
		{Kind: ScrollImmovableKing, Name: "Immovable King (不动明王)", Type: TypeScroll, Price: 3, Effect: "Enhance 1 card to Stone", Description: "将 1 张手牌变为石头牌。"},
		{Kind: ScrollSpiritToad, Name: "Spirit Toad (聚宝金蟾)", Type: TypeScroll, Price: 3, Effect: "Double Spirit Stones (Max +20)", Description: "灵石翻倍（最高额外+20）。"},
		{Kind: ScrollSlayingCorpses, Name: "Slaying Three Corpses (斩三尸)", Type: TypeScroll, Price: 3, Effect: "Destroy 2 cards", Description: "摧毁选中的最多 2 张牌。"},
		{Kind: ScrollNirvanaFinger, Name: "Nirvana Finger (寂灭指)", Type: TypeScroll, Price: 3, Effect: "Clone Left to Right", Description: "将左侧卡牌复制到右侧。"},
		{Kind: ScrollCelestialOmen, Name: "Celestial Omen (天机推演)", Type: TypeScroll, Price: 3, Effect: "Create 2 Elixirs", Description: "随机获得 2 颗丹药。"},
		{Kind: ScrollExternalAvatar, Name: "External Avatar (身外化身)", Type: TypeScroll, Price: 2, Effect: "Create 2 Scrolls", Description: "随机获得 2 卷锦囊。"},
		{Kind: ScrollWarBanner, Name: "War Banner (破阵旗)", Type: TypeScroll, Price: 4, Effect: "+1 Play every round", Description: "永久增加每回合出牌次数。"},
		{Kind: ScrollJadeGourd, Name: "Jade Gourd (玉葫芦)", Type: TypeScroll, Price: 4, Effect: "+1 Discard every round", Description: "永久增加每回合弃牌次数。"},
		{Kind: ScrollPointToGold, Name: "Point to Gold (点石成金)", Type: TypeScroll, Price: 3, Effect: "Enhance 1 card to Gold", Description: "将 1 张手牌变为黄金牌。"},
		{Kind: ScrollFourSpades, Name: "Four Symbols: Spades (四象阵：玄武)", Type: TypeScroll, Price: 3, Effect: "Change 3 cards to Spades", Description: "将 3 张手牌变为黑桃。"},
		{Kind: ScrollFourHearts, Name: "Four Symbols: Hearts (四象阵：朱雀)", Type: TypeScroll, Price: 3, Effect: "Change 3 cards to Hearts", Description: "将 3 张手牌变为红桃。"},
		{Kind: ScrollFourDiamonds, Name: "Four Symbols: Diamonds (四象阵：白虎)", Type: TypeScroll, Price: 3, Effect: "Change 3 cards to Diamonds", Description: "将 3 张手牌变为方块。"},
		{Kind: ScrollFourClubs, Name: "Four Symbols: Clubs (四象阵：青龙)", Type: TypeScroll, Price: 3, Effect: "Change 3 cards to Clubs", Description: "将 3 张手牌变为梅花。"},
	}
}

// ConsumableByKind looks up a catalog consumable by its base identity.
func ConsumableByKind(kind ConsumableKind) (Consumable, bool) {
	for _, consumable := range ConsumableCatalog() {
		if consumable.Kind == kind {
			return consumable, true
		}
	}
	return Consumable{}, false
}
