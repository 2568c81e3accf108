package config

import (
	"fmt"
	"strings"
)

// GameStateID is the top-level state of a run.
type GameStateID int

const (
	GameStateStory GameStateID = iota
	GameStatePlaying
	GameStateEnded
)

func (s GameStateID) String() string {
	switch s {
	case GameStateStory:
		return "story"
	case GameStatePlaying:
		return "playing"
	case GameStateEnded:
		return "ended"
	}
	return fmt.Sprintf("GameStateID(%d)", int(s))
}

// OutcomeID records how a run ended.
type OutcomeID int

const (
	OutcomeNone OutcomeID = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o OutcomeID) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	}
	return "none"
}

// AnimationMode selects which player animation is active.
type AnimationMode int

const (
	AnimIdle AnimationMode = iota
	AnimRunning
)

func (m AnimationMode) String() string {
	if m == AnimRunning {
		return "running"
	}
	return "idle"
}

// VariantID selects the game rules. The story variant has intro pages and
// an exit to reach; the pickup variant has collectibles and no exit.
type VariantID int

const (
	VariantStory VariantID = iota
	VariantPickup
)

func (v VariantID) String() string {
	if v == VariantPickup {
		return "pickup"
	}
	return "story"
}

// ParseVariant converts a flag value into a VariantID.
func ParseVariant(s string) (VariantID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "story":
		return VariantStory, nil
	case "pickup", "pickups":
		return VariantPickup, nil
	}
	return VariantStory, fmt.Errorf("unknown variant %q (want story or pickup)", s)
}

// UnmarshalText lets variants be used as YAML map keys.
func (v *VariantID) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)
