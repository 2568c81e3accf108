package systems

import (
	"time"

	"github.com/automoto/lab-escape/components"
	"github.com/yohamta/donburi/ecs"
)

// Now is the wall clock sampled at the start of every tick.
var Now = time.Now

// UpdateClock samples the wall clock once for the tick. Must run first.
func UpdateClock(e *ecs.ECS) {
	SetClock(e, Now())
}

// SetClock advances the tick clock to now.
func SetClock(e *ecs.ECS, now time.Time) {
	clock := GetClock(e)
	clock.Prev = clock.Now
	clock.Now = now
}

// GetClock returns the tick clock, creating it if the world has none.
func GetClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
