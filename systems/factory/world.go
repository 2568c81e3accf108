package factory

import (
	"time"

	"github.com/automoto/lab-escape/archetypes"
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWorld(ecs *ecs.ECS, width, viewW, viewH float64) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, components.WorldData{
		Width:      width,
		Height:     viewH,
		Gravity:    cfg.Physics.Gravity,
		ViewWidth:  viewW,
		ViewHeight: viewH,
	})
	return world
}

// CreateGame creates the run state machine in its initial state: the story
// pages for the story variant, straight into play otherwise.
func CreateGame(ecs *ecs.ECS, variant cfg.VariantID, now time.Time) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	data := components.GameData{Variant: variant}
	data.State = data.RestartState()
	components.Game.SetValue(game, data)
	components.Clock.SetValue(game, components.ClockData{Now: now})
	return game
}
