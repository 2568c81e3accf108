package factory

import (
	"math"
	"time"

	"github.com/automoto/lab-escape/archetypes"
	"github.com/automoto/lab-escape/assets"
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveLayout returns the layout in world pixels for a viewport: the
// scaled Tiled map when one was loaded, the variant's code layout otherwise.
func ResolveLayout(source *assets.Level, variant cfg.VariantID, viewW, viewH float64) assets.Level {
	if source != nil {
		return ScaleLevel(*source, viewH)
	}
	return LayoutFor(variant, viewW, viewH)
}

// BuildLevel populates a fresh world: game state, collision space, camera,
// level geometry and the player. It returns the player entry.
func BuildLevel(e *ecs.ECS, source *assets.Level, variant cfg.VariantID, viewW, viewH float64, now time.Time) *donburi.Entry {
	CreateGame(e, variant, now)
	CreateCamera(e)

	layout := ResolveLayout(source, variant, viewW, viewH)
	CreateWorld(e, layout.Width, viewW, viewH)
	CreateSpace(e, spaceSize(layout.Width), spaceSize(viewH), cfg.World.CellSize, cfg.World.CellSize)

	level := archetypes.Level.Spawn(e)
	components.Level.SetValue(level, components.LevelData{Source: source, Current: layout})

	spawnGeometry(e, layout, nil)

	x, y := spawnPoint(layout)
	player := CreatePlayer(e, x, y, PlayerSize(viewH), variant, now)
	spaceOf(e).Add(components.Object.Get(player).Object)
	return player
}

// Relayout rebuilds the level geometry for a new viewport and re-anchors the
// player at the spawn point. With keepCollected, pickups keep their
// collected flags by id; otherwise every pickup starts uncollected.
func Relayout(e *ecs.ECS, viewW, viewH float64, keepCollected bool) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	game := gameOf(e)

	collected := map[int]bool{}
	var stale []*donburi.Entry
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Platform, tags.Pickup, tags.Endpoint} {
		tag.Each(e.World, func(entry *donburi.Entry) {
			if entry.HasComponent(components.Pickup) {
				p := components.Pickup.Get(entry)
				collected[p.ID] = p.Collected
			}
			stale = append(stale, entry)
		})
	}
	for _, entry := range stale {
		e.World.Remove(entry.Entity())
	}
	if !keepCollected {
		collected = nil
	}

	layout := ResolveLayout(levelData.Source, game.Variant, viewW, viewH)
	levelData.Current = layout

	if worldEntry, ok := components.World.First(e.World); ok {
		w := components.World.Get(worldEntry)
		w.Width = layout.Width
		w.Height = viewH
		w.ViewWidth = viewW
		w.ViewHeight = viewH
	}
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Set(spaceEntry, resolv.NewSpace(spaceSize(layout.Width), spaceSize(viewH), cfg.World.CellSize, cfg.World.CellSize))
	}

	game.CollectedPickups = spawnGeometry(e, layout, collected)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		size := PlayerSize(viewH)
		obj.X, obj.Y = spawnPoint(layout)
		obj.W, obj.H = size, size
		obj.SetShape(resolv.NewRectangle(0, 0, size, size))
		components.Physics.Get(playerEntry).OnGround = nil
		spaceOf(e).Add(obj.Object)
	}
}

// spawnGeometry creates platforms, pickups and the endpoint of a layout and
// returns how many pickups start collected.
func spawnGeometry(e *ecs.ECS, layout assets.Level, collected map[int]bool) int {
	space := spaceOf(e)
	game := gameOf(e)

	for i, p := range layout.Platforms {
		entry := CreatePlatform(e, p, i)
		space.Add(components.Object.Get(entry).Object)
	}

	n := 0
	for _, p := range layout.Pickups {
		entry := CreatePickup(e, p)
		if collected[p.ID] {
			components.Pickup.Get(entry).Collected = true
			n++
		}
		space.Add(components.Object.Get(entry).Object)
	}
	game.TotalPickups = len(layout.Pickups)

	if layout.Endpoint != nil {
		entry := CreateEndpoint(e, *layout.Endpoint)
		space.Add(components.Object.Get(entry).Object)
	}
	return n
}

func spawnPoint(layout assets.Level) (float64, float64) {
	if layout.PlayerSpawn != nil {
		return layout.PlayerSpawn.X, layout.PlayerSpawn.Y
	}
	return cfg.Player.SpawnOffsetX, 0
}

func spaceSize(v float64) int {
	return int(math.Ceil(v))
}

func spaceOf(e *ecs.ECS) *resolv.Space {
	entry, _ := components.Space.First(e.World)
	return components.Space.Get(entry)
}

func gameOf(e *ecs.ECS) *components.GameData {
	entry, _ := components.Game.First(e.World)
	return components.Game.Get(entry)
}
