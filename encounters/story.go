package encounters

// Beat is one scripted narrative beat, played linearly when the run
// reaches its checkpoint year.
type Beat struct {
	Year  int      `json:"year"`
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// storyBeats are keyed by fixed year checkpoints.
var storyBeats = []Beat{
	{
		Year:  1,
		Title: "Leaving the Village (离乡)",
		Lines: []string{
			"The elders said your spirit roots were too thin for cultivation.",
			"You packed a deck of worn cards anyway, and walked toward the mountains.",
		},
	},
	{
		Year:  7,
		Title: "The First Plateau (初成)",
		Lines: []string{
			"Two realms behind you. The cards feel warm in your sleeve now.",
			"Somewhere above, thunder gathers for those who climb too fast.",
		},
	},
	{
		Year:  13,
		Title: "Halfway Up the Mountain (半山)",
		Lines: []string{
			"Other cultivators whisper your name in the market stalls.",
			"You no longer remember your village's gate. Only the next tribulation.",
		},
	},
	{
		Year:  19,
		Title: "Thin Air (高处)",
		Lines: []string{
			"Few walk this high. The heavens watch each hand you play.",
			"Karma, obsession, reputation — the ledger will be read soon.",
		},
	},
	{
		Year:  24,
		Title: "The Final Tribulation (终劫)",
		Lines: []string{
			"The Grand Arbitrator descends. One last hand decides everything.",
		},
	},
}

// StoryFor returns the story beat for a year, if that year is a checkpoint.
func StoryFor(year int) (Beat, bool) {
	for _, beat := range storyBeats {
		if beat.Year == year {
			return beat, true
		}
	}
	return Beat{}, false
}

// RealmName returns the cultivation realm name for a realm counter.
func RealmName(realm int) string {
	names := []string{
		"Chi Gathering (聚气期)",
		"Foundation (筑基期)",
		"Golden Core (金丹期)",
		"Nascent Soul (元婴期)",
		"Spirit Severing (化神期)",
		"Dao Seeking (入道期)",
		"Immortal Ascent (升仙期)",
		"Grand Arbitrator (终极大劫)",
	}
	if realm < 1 {
		realm = 1
	}
	if realm > len(names) {
		realm = len(names)
	}
	return names[realm-1]
}
