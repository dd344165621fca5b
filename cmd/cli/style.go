package main

import (
	"fmt"
	"sort"

	"github.com/lazharichir/tribulation/cards"
	"github.com/lazharichir/tribulation/encounters"
	"github.com/lazharichir/tribulation/hands"
	"github.com/lazharichir/tribulation/items"
	"github.com/lazharichir/tribulation/run"
	"github.com/lazharichir/tribulation/scoring"
	"github.com/pterm/pterm"
)

// cardLabel renders a card with its suit color and any modifiers.
func cardLabel(card cards.Card) string {
	face := fmt.Sprintf("%s%s", card.Rank, card.Suit)
	switch card.Suit {
	case cards.Hearts, cards.Diamonds:
		face = pterm.LightRed(face)
	default:
		face = pterm.LightWhite(face)
	}

	if card.Enhancement != cards.EnhancementNone {
		face += pterm.Gray(fmt.Sprintf(" [%s]", card.Enhancement))
	}
	if card.Edition != cards.EditionNone {
		face += pterm.LightMagenta(fmt.Sprintf(" {%s}", card.Edition))
	}
	return face
}

// statusPanel renders the run's top-line counters.
func statusPanel(r *run.Run) string {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	lines := pterm.Sprintfln("Year %d / %d  ·  Realm: %s", r.Year, run.FinalYear, pterm.LightYellow(r.BossName))
	lines += pterm.Sprintfln("Score %s / %d", pterm.LightGreen(fmt.Sprint(r.Score)), r.Goal)
	lines += pterm.Sprintfln("Plays %d  Discards %d  Lives %d  Stones %s",
		r.PlaysLeft, r.DiscardsLeft, r.Lives, pterm.LightCyan(fmt.Sprint(r.SpiritStones)))
	return pbox.WithTitle(pterm.LightYellow("|TRIBULATION|")).WithTitleTopCenter().Sprint(lines)
}

// previewLine renders the live scoring preview for the selection.
func previewLine(b scoring.Breakdown) string {
	if b.Total == 0 {
		return pterm.Gray("No selection.")
	}
	return pterm.Sprintf("%s (lvl %d)  %d chips x %d mult x %.2f  =  %s",
		pterm.LightYellow(string(b.Category)), b.Level, b.Chips, b.Mult, b.XMult,
		pterm.LightGreen(fmt.Sprint(b.Total)))
}

// printHand renders the hand as a table with selection markers.
func printHand(r *run.Run) {
	selected := make(map[string]bool)
	for _, id := range r.SelectedIDs() {
		selected[id] = true
	}

	rows := pterm.TableData{{"", "Card"}}
	for i, card := range r.Hand {
		marker := " "
		if selected[card.ID] {
			marker = pterm.LightGreen("*")
		}
		rows = append(rows, []string{fmt.Sprintf("%s %d", marker, i+1), cardLabel(card)})
	}

	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// printLoadout renders the equipped artifacts in slot order.
func printLoadout(loadout items.Loadout) {
	if len(loadout) == 0 {
		pterm.Println(pterm.Gray("No artifacts equipped."))
		return
	}

	rows := pterm.TableData{{"Slot", "Artifact", "Lvl", "Effect"}}
	for _, artifact := range loadout.InOrder() {
		rows = append(rows, []string{
			string(artifact.Slot), artifact.Name, fmt.Sprint(artifact.Level), artifact.Effect,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// printHandLevels renders the categories whose level has been raised.
func printHandLevels(levels map[hands.Category]int) {
	var raised []string
	for _, category := range hands.Categories() {
		if levels[category] > 1 {
			raised = append(raised, pterm.Sprintf("%s lvl %d", category, levels[category]))
		}
	}
	sort.Strings(raised)
	if len(raised) > 0 {
		pterm.Info.Printfln("Cultivated hands: %v", raised)
	}
}

// printStory renders a story beat panel.
func printStory(beat encounters.Beat) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := ""
	for _, line := range beat.Lines {
		body += pterm.Sprintfln("%s", line)
	}
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|" + beat.Title + "|")).WithTitleTopCenter().Sprint(body))
}

// printEnding renders the terminal screen.
func printEnding(ending encounters.Ending) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightRed("|" + ending.Title + "|")
	if ending.IsTrue {
		title = pterm.LightGreen("|" + ending.Title + "|")
	}
	pterm.Println(pbox.WithTitle(title).WithTitleTopCenter().Sprint(ending.Text))
}
