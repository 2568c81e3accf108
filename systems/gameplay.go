package systems

import (
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/yohamta/donburi/ecs"
)

// GetGame returns the run state machine, or nil before the level is built.
func GetGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// IsPlaying reports whether the run is in the playing state.
func IsPlaying(e *ecs.ECS) bool {
	game := GetGame(e)
	return game != nil && game.State == cfg.GameStatePlaying
}

// WithPlayingCheck wraps a system to skip execution outside the playing
// state.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}
