package ui

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/lab-escape/config"
)

// splitLines breaks s on newlines, keeping blank lines as a single space
// so they still take up a row.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = " "
		}
	}
	return lines
}

// storyButton is the label of the story modal's button: Next on every page
// but the last, Start on the last.
func storyButton(page, pages int) string {
	if page >= pages-1 {
		return "Start"
	}
	return "Next"
}

func storyCounter(page, pages int) string {
	return fmt.Sprintf("%d / %d", page+1, pages)
}

// endingText returns the title and body of the ending modal. The pickup
// tally is appended when the level has pickups.
func endingText(outcome cfg.OutcomeID, collected, total int) (string, string) {
	title, body := cfg.Ending.FailureTitle, cfg.Ending.FailureText
	if outcome == cfg.OutcomeSuccess {
		title, body = cfg.Ending.SuccessTitle, cfg.Ending.SuccessText
	}
	if total > 0 {
		body += fmt.Sprintf("\n\nHP logos collected: %d/%d", collected, total)
	}
	return title, body
}
