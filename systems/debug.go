package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/lab-escape/components"
	"github.com/automoto/lab-escape/gamemath"
	"github.com/automoto/lab-escape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := getView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		// Draw all collision objects in the space
		for _, obj := range space.Objects() {
			r, visible := v.toScreen(gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
			if !visible {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvDecorative) {
				c = color.RGBA{80, 80, 160, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvPickup) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvEndpoint) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(v.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	game := GetGame(ecs)
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\npos %.1f,%.1f  vel %.2f,%.2f  ground %v\nanim %s frame %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		obj.X, obj.Y, physics.SpeedX, physics.SpeedY, physics.OnGround != nil,
		anim.Mode, anim.Frame())
	if game != nil {
		msg += fmt.Sprintf("\nstate %s", game.State)
	}
	ebitenutil.DebugPrintAt(v.dst, msg, 4, 4)
}
