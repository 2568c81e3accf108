package systems

import (
	"sort"

	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/gamemath"
	"github.com/automoto/lab-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type platformRef struct {
	index int
	obj   *components.ObjectData
}

// Reusable slice for the per-tick platform scan
var platformScan []platformRef

// UpdateCollisions lands the player on solid platforms and collects
// pickups. Landing is a discrete check against the position after
// integration: a player moving fast enough to pass through a platform in
// one tick is not caught.
func UpdateCollisions(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	physics.OnGround = nil

	// Every solid platform in level order; the last one matched wins.
	platformScan = platformScan[:0]
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if platform.Decorative {
			return
		}
		platformScan = append(platformScan, platformRef{platform.Index, components.Object.Get(entry)})
	})
	sort.Slice(platformScan, func(i, j int) bool { return platformScan[i].index < platformScan[j].index })

	for _, p := range platformScan {
		if !gamemath.Overlaps(obj.Rect(), p.obj.Rect()) {
			continue
		}
		if physics.SpeedY > 0 && obj.Y < p.obj.Y {
			obj.Y = p.obj.Y - obj.H
			physics.SpeedY = 0
			physics.OnGround = p.obj.Object
		}
	}
	obj.Update()

	collectPickups(e, obj)
}

// collectPickups marks every uncollected pickup the player overlaps.
func collectPickups(e *ecs.ECS, obj *components.ObjectData) {
	game := GetGame(e)
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		if pickup.Collected {
			return
		}
		if !gamemath.Overlaps(obj.Rect(), components.Object.Get(entry).Rect()) {
			return
		}
		pickup.Collected = true
		if game != nil {
			game.CollectedPickups++
		}
		QueueSFX(e, cfg.SoundPickup)
	})
}
