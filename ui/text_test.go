package ui

import (
	"strings"
	"testing"

	cfg "github.com/automoto/lab-escape/config"
)

func TestStoryButton(t *testing.T) {
	tests := []struct {
		page, pages int
		want        string
	}{
		{0, 3, "Next"},
		{1, 3, "Next"},
		{2, 3, "Start"},
		{0, 1, "Start"},
	}
	for _, tt := range tests {
		if got := storyButton(tt.page, tt.pages); got != tt.want {
			t.Errorf("storyButton(%d, %d) = %q, want %q", tt.page, tt.pages, got, tt.want)
		}
	}
	if got := storyCounter(1, 3); got != "2 / 3" {
		t.Errorf("storyCounter = %q", got)
	}
}

func TestEndingText(t *testing.T) {
	cfg.SetDefaults()

	title, body := endingText(cfg.OutcomeSuccess, 0, 0)
	if title != cfg.Ending.SuccessTitle || body != cfg.Ending.SuccessText {
		t.Errorf("success = %q / %q", title, body)
	}

	title, body = endingText(cfg.OutcomeFailure, 3, 4)
	if title != cfg.Ending.FailureTitle {
		t.Errorf("failure title = %q", title)
	}
	if !strings.HasSuffix(body, "HP logos collected: 3/4") {
		t.Errorf("failure body = %q", body)
	}
}

func TestSplitLinesKeepsBlankRows(t *testing.T) {
	got := splitLines("a\n\nb")
	if len(got) != 3 || got[0] != "a" || got[1] != " " || got[2] != "b" {
		t.Errorf("splitLines = %q", got)
	}
}
