package encounters

// Ending is a terminal narrative screen. IsTrue marks the one genuine
// ascension ending.
type Ending struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	IsTrue bool   `json:"isTrue"`
}

var (
	endingHeartDemon = Ending{
		ID:    "heart-demon",
		Title: "Heart Demon (心魔)",
		Text:  "The whisper won. You ascend a throne of cards in an empty pavilion, playing hands against nobody, forever.",
	}
	endingFallenPath = Ending{
		ID:    "fallen-path",
		Title: "The Fallen Path (堕道)",
		Text:  "The heavens tallied every debt. Lightning found you on the mountain, and the wind scattered your deck.",
	}
	endingTrueImmortal = Ending{
		ID:     "true-immortal",
		Title:  "True Immortal (真仙)",
		Text:   "Karma clean, name bright, the Grand Arbitrator bows and steps aside. You play your last hand against the dawn, and win.",
		IsTrue: true,
	}
	endingMortalDust = Ending{
		ID:    "mortal-dust",
		Title: "Mortal Dust (尘缘)",
		Text:  "You climbed high enough to see the peak, and chose the village below instead. The cards rest in a drawer, warm.",
	}
)

// DecideEnding evaluates the fixed decision tree over the run's
// accumulated counters. Obsession damns before karma saves.
func DecideEnding(karma, obsession, reputation int) Ending {
	switch {
	case obsession >= 10:
		return endingHeartDemon
	case karma < 0:
		return endingFallenPath
	case karma >= 10 && reputation >= 5:
		return endingTrueImmortal
	default:
		return endingMortalDust
	}
}
