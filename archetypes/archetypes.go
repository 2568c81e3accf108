package archetypes

import (
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
		components.Tween,
	)
	Endpoint = newArchetype(
		tags.Endpoint,
		components.Endpoint,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Health,
		components.Inventory,
		components.Animation,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	World = newArchetype(
		components.World,
	)
	Level = newArchetype(
		components.Level,
	)
	Game = newArchetype(
		components.Game,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
