package components

import (
	"errors"
	"testing"

	cfg "github.com/automoto/lab-escape/config"
)

func TestGameTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    cfg.GameStateID
		to      cfg.GameStateID
		allowed bool
	}{
		{"start from story", cfg.GameStateStory, cfg.GameStatePlaying, true},
		{"story cannot skip to ended", cfg.GameStateStory, cfg.GameStateEnded, false},
		{"playing cannot go back to story", cfg.GameStatePlaying, cfg.GameStateStory, false},
		{"playing to playing", cfg.GameStatePlaying, cfg.GameStatePlaying, false},
		{"restart to story", cfg.GameStateEnded, cfg.GameStateStory, true},
		{"restart to playing", cfg.GameStateEnded, cfg.GameStatePlaying, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &GameData{State: tt.from}
			err := g.Transition(tt.to)
			if tt.allowed {
				if err != nil {
					t.Fatalf("Transition: %v", err)
				}
				if g.State != tt.to {
					t.Errorf("State = %s, want %s", g.State, tt.to)
				}
				return
			}
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("err = %v, want ErrIllegalTransition", err)
			}
			if g.State != tt.from {
				t.Errorf("State changed to %s on rejected transition", g.State)
			}
		})
	}
}

func TestGameEnd(t *testing.T) {
	g := &GameData{State: cfg.GameStatePlaying}
	if err := g.End(cfg.OutcomeNone); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("End(none) err = %v, want ErrIllegalTransition", err)
	}
	if err := g.End(cfg.OutcomeFailure); err != nil {
		t.Fatalf("End(failure): %v", err)
	}
	if g.State != cfg.GameStateEnded || g.Outcome != cfg.OutcomeFailure {
		t.Errorf("got %s/%s, want ended/failure", g.State, g.Outcome)
	}
	if err := g.End(cfg.OutcomeSuccess); err == nil {
		t.Error("second End succeeded, want error")
	}
	if g.Outcome != cfg.OutcomeFailure {
		t.Errorf("outcome overwritten to %s", g.Outcome)
	}
	if err := g.Transition(cfg.GameStateEnded); err == nil {
		t.Error("Transition(ended) bypassed End")
	}
}

func TestRestartState(t *testing.T) {
	story := &GameData{Variant: cfg.VariantStory}
	pickup := &GameData{Variant: cfg.VariantPickup}
	if story.RestartState() != cfg.GameStateStory {
		t.Errorf("story variant restarts into %s", story.RestartState())
	}
	if pickup.RestartState() != cfg.GameStatePlaying {
		t.Errorf("pickup variant restarts into %s", pickup.RestartState())
	}
}

func TestHealthRatio(t *testing.T) {
	if r := (&HealthData{Current: 40, Max: 100}).Ratio(); r != 0.4 {
		t.Errorf("Ratio = %v, want 0.4", r)
	}
	if r := (&HealthData{}).Ratio(); r != 0 {
		t.Errorf("Ratio with zero max = %v, want 0", r)
	}
}
