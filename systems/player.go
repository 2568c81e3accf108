package systems

import (
	"math"

	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/gamemath"
	"github.com/automoto/lab-escape/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the per-tick movement step: held keys set the
// horizontal velocity, the animation mode follows the new velocity, then
// gravity and an explicit Euler step move the player. Velocities are in
// pixels per tick.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	now := GetClock(e).Now

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	world := getWorld(e)

	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		physics.SpeedX = -cfg.Physics.MoveSpeed
		player.Facing = cfg.FacingLeft
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		physics.SpeedX = cfg.Physics.MoveSpeed
		player.Facing = cfg.FacingRight
	default:
		physics.SpeedX *= cfg.Physics.Damping
	}

	if GetAction(input, cfg.ActionJump).Pressed && physics.OnGround != nil {
		physics.SpeedY = -cfg.Physics.JumpSpeed
		physics.OnGround = nil
		QueueSFX(e, cfg.SoundJump)
	}

	mode := cfg.AnimIdle
	if math.Abs(physics.SpeedX) > cfg.Physics.RunThreshold && physics.OnGround != nil {
		mode = cfg.AnimRunning
	}
	anim.SetAnimation(mode, now)

	physics.SpeedY += world.Gravity
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	obj.X = gamemath.Clamp(obj.X, 0, world.Width-obj.W)
	obj.Update()

	if obj.Y > world.Height {
		ApplyDamage(e, playerEntry, cfg.Player.FallDamage, true)
	}

	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update(now)
	}
}

func getWorld(e *ecs.ECS) *components.WorldData {
	entry, ok := components.World.First(e.World)
	if !ok {
		return &components.WorldData{Width: cfg.World.Width, Gravity: cfg.Physics.Gravity}
	}
	return components.World.Get(entry)
}
