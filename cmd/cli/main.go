package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/run"
	"github.com/lazharichir/tribulation/save"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func main() {
	if err := godotenv.Load(); err == nil {
		pterm.Debug.Println("Loaded .env file.")
	}

	saveDir := os.Getenv("SAVE_DIR")
	if saveDir == "" {
		saveDir = "saves"
	}

	store, err := save.NewStore(saveDir)
	if err != nil {
		pterm.Error.Printfln("Cannot open save directory: %v", err)
		os.Exit(1)
	}

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Tribu", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("lation", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	active := openRun(store)

	for {
		pterm.Println()
		switch active.Phase {
		case run.PhaseStory:
			playStory(active)
		case run.PhaseGameplay:
			playRound(active)
		case run.PhaseShop:
			browseShop(active)
		case run.PhaseEvent:
			playEncounter(active)
		case run.PhaseEnding:
			if !playEnding(active, store) {
				return
			}
		}

		if err := store.Save(active.Snapshot()); err != nil {
			pterm.Warning.Printfln("Could not save: %v", err)
		}
	}
}

// openRun resumes the save slot when one exists, otherwise starts fresh.
func openRun(store *save.Store) *run.Run {
	snapshot, ok, err := store.Load()
	if err != nil {
		pterm.Warning.Printfln("Could not read save: %v", err)
	}
	if ok {
		resume, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Resume your saved run?").
			WithDefaultValue(true).
			Show()
		if resume {
			pterm.Success.Println("Run resumed.")
			return run.Restore(snapshot)
		}
	}

	pterm.Info.Println("Starting a new run.")
	return run.New(time.Now().UnixNano())
}

func playStory(active *run.Run) {
	beat, ok := active.PendingStory()
	if !ok {
		return
	}
	printStory(beat)
	pterm.DefaultInteractiveTextInput.WithDefaultText("Press enter to continue").Show()
	active.AdvanceStory()
}

func playRound(active *run.Run) {
	pterm.Println(statusPanel(active))
	printLoadout(active.Loadout)
	printHandLevels(active.HandLevels)
	printHand(active)
	pterm.Println(previewLine(active.Preview()))

	options := []string{"Select cards", "Play hand", "Discard"}
	if len(active.Consumables) > 0 {
		options = append(options, "Use consumable")
	}
	options = append(options, "Quit")

	choice, _ := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Your move")

	var err error
	switch choice {
	case "Select cards":
		selectCards(active)
	case "Play hand":
		err = active.PlayHand()
	case "Discard":
		err = active.Discard()
	case "Use consumable":
		err = useConsumable(active)
	case "Quit":
		pterm.Info.Println("The mountain will wait.")
		os.Exit(0)
	}

	if err != nil {
		pterm.Error.Println(err.Error())
	}
}

// selectCards rebuilds the selection from an interactive multiselect.
func selectCards(active *run.Run) {
	labels := make([]string, 0, len(active.Hand))
	byLabel := make(map[string]string, len(active.Hand))
	for i, card := range active.Hand {
		label := fmt.Sprintf("%d: %s%s", i+1, card.Rank, card.Suit)
		labels = append(labels, label)
		byLabel[label] = card.ID
	}

	picked, _ := pterm.DefaultInteractiveMultiselect.
		WithOptions(labels).
		WithFilter(false).
		Show("Pick up to 5 cards")

	for _, id := range active.SelectedIDs() {
		active.ToggleSelect(id)
	}
	for _, label := range picked {
		if err := active.ToggleSelect(byLabel[label]); err != nil {
			pterm.Warning.Println(err.Error())
		}
	}
}

func useConsumable(active *run.Run) error {
	labels := make([]string, 0, len(active.Consumables))
	byLabel := make(map[string]items.ConsumableKind, len(active.Consumables))
	for _, held := range active.Consumables {
		label := fmt.Sprintf("%s (%s)", held.Name, held.Effect)
		labels = append(labels, label)
		byLabel[label] = held.Kind
	}
	labels = append(labels, "Back")

	choice, _ := pterm.DefaultInteractiveSelect.WithOptions(labels).Show("Use which?")
	if choice == "Back" {
		return nil
	}
	return active.UseConsumable(byLabel[choice])
}

func browseShop(active *run.Run) {
	pterm.Println(statusPanel(active))

	labels := []string{}
	actions := map[string]func() error{}

	for _, offer := range active.Offers.Artifacts {
		offer := offer
		label := fmt.Sprintf("Buy %s (%s, %d stones) - %s",
			offer.Artifact.Name, offer.Artifact.Slot, offer.Artifact.Price, offer.Artifact.Effect)
		labels = append(labels, label)
		actions[label] = func() error { return active.BuyArtifact(offer.OfferID) }
	}
	for _, offer := range active.Offers.Consumables {
		offer := offer
		label := fmt.Sprintf("Buy %s (%d stones) - %s",
			offer.Consumable.Name, offer.Consumable.Price, offer.Consumable.Effect)
		labels = append(labels, label)
		actions[label] = func() error { return active.BuyConsumable(offer.OfferID) }
	}

	reroll := fmt.Sprintf("Reroll offers (%d stones)", active.RerollCost)
	labels = append(labels, reroll, "Continue the journey")
	actions[reroll] = active.RerollShop
	actions["Continue the journey"] = active.NextRound

	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithMaxHeight(10).
		Show("The market awaits")

	if err := actions[choice](); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func playEncounter(active *run.Run) {
	encounter, ok := active.PendingEncounter()
	if !ok {
		return
	}

	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.Println(pbox.WithTitle(pterm.LightMagenta("|" + encounter.Title + "|")).WithTitleTopCenter().Sprint(encounter.Description))

	labels := make([]string, 0, len(encounter.Choices))
	byLabel := make(map[string]string, len(encounter.Choices))
	for _, choice := range encounter.Choices {
		labels = append(labels, choice.Label)
		byLabel[choice.Label] = choice.ID
	}

	choice, _ := pterm.DefaultInteractiveSelect.WithOptions(labels).Show("What do you do?")
	if err := active.ResolveEventChoice(byLabel[choice]); err != nil {
		pterm.Error.Println(err.Error())
	}
}

// playEnding shows the terminal screen; returns false to exit the loop.
func playEnding(active *run.Run, store *save.Store) bool {
	if active.Ending != nil {
		printEnding(*active.Ending)
	}

	again, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Begin a new cycle?").
		WithDefaultValue(true).
		Show()
	if !again {
		store.Clear()
		pterm.Info.Println("Farewell, cultivator.")
		return false
	}

	if err := active.Restart(); err != nil {
		pterm.Error.Println(err.Error())
	}
	return true
}
