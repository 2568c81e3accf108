package systems

import (
	"github.com/automoto/lab-escape/components"
	"github.com/automoto/lab-escape/gamemath"
	"github.com/automoto/lab-escape/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centers the viewport on the player's top-left corner,
// floored to whole pixels and clamped to the world.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	world := getWorld(e)

	camera.X = gamemath.CameraAxis(obj.X, world.ViewWidth, world.Width)
	camera.Y = gamemath.CameraAxis(obj.Y, world.ViewHeight, world.Height)
}
