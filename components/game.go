package components

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/lab-escape/config"
	"github.com/yohamta/donburi"
)

// ErrIllegalTransition is returned when a state change is not allowed from
// the current state.
var ErrIllegalTransition = errors.New("illegal game state transition")

// GameData is the run-level state machine: story -> playing -> ended, and
// back to story or playing on restart.
type GameData struct {
	State            cfg.GameStateID
	Outcome          cfg.OutcomeID
	Variant          cfg.VariantID
	StoryPage        int
	CollectedPickups int
	TotalPickups     int
}

var allowedTransitions = map[cfg.GameStateID][]cfg.GameStateID{
	cfg.GameStateStory:   {cfg.GameStatePlaying},
	cfg.GameStatePlaying: {cfg.GameStateEnded},
	cfg.GameStateEnded:   {cfg.GameStateStory, cfg.GameStatePlaying},
}

// CanTransition reports whether the machine may move to the given state.
func (g *GameData) CanTransition(to cfg.GameStateID) bool {
	for _, s := range allowedTransitions[g.State] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves the machine to a new state. Entering Ended needs an
// outcome; use End for that.
func (g *GameData) Transition(to cfg.GameStateID) error {
	if !g.CanTransition(to) || to == cfg.GameStateEnded {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, g.State, to)
	}
	g.State = to
	g.Outcome = cfg.OutcomeNone
	return nil
}

// End finishes a run with the given outcome.
func (g *GameData) End(outcome cfg.OutcomeID) error {
	if !g.CanTransition(cfg.GameStateEnded) || outcome == cfg.OutcomeNone {
		return fmt.Errorf("%w: %s -> %s (%s)", ErrIllegalTransition, g.State, cfg.GameStateEnded, outcome)
	}
	g.State = cfg.GameStateEnded
	g.Outcome = outcome
	return nil
}

// RestartState is where a restart lands: the story pages for the story
// variant, straight into play otherwise.
func (g *GameData) RestartState() cfg.GameStateID {
	if g.Variant == cfg.VariantStory {
		return cfg.GameStateStory
	}
	return cfg.GameStatePlaying
}

var Game = donburi.NewComponentType[GameData]()
