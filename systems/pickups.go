package systems

import (
	"github.com/automoto/lab-escape/components"
	"github.com/automoto/lab-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups advances the bobbing tween of every pickup still in play.
func UpdatePickups(e *ecs.ECS) {
	dt := GetClock(e).Delta()
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		if pickup.Collected {
			return
		}
		tw := components.Tween.Get(entry)
		v, _, _ := tw.Update(dt)
		pickup.Bob = float64(v)
	})
}
