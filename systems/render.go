package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/automoto/lab-escape/assets"
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/fonts"
	"github.com/automoto/lab-escape/gamemath"
	"github.com/automoto/lab-escape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp  = &ebiten.DrawImageOptions{}
	library *assets.Library
)

// SetImageLibrary sets the image source for the renderers. Without one every
// entity is drawn with its placeholder.
func SetImageLibrary(lib *assets.Library) {
	library = lib
}

func libraryImage(name string) *ebiten.Image {
	if library == nil {
		return nil
	}
	return library.Image(name)
}

// view is the world viewport on screen and the camera looking into it.
type view struct {
	dst    *ebiten.Image
	camX   float64
	camY   float64
	w, h   float64
	worldW float64
	worldH float64
}

func getView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	world := getWorld(e)
	dst := screen.SubImage(image.Rect(0, 0, int(world.ViewWidth), int(world.ViewHeight))).(*ebiten.Image)
	return view{
		dst:    dst,
		camX:   float64(camera.X),
		camY:   float64(camera.Y),
		w:      world.ViewWidth,
		h:      world.ViewHeight,
		worldW: world.Width,
		worldH: world.Height,
	}, true
}

// toScreen maps a world rectangle into the viewport, floored to whole
// pixels, and reports whether any of it is visible.
func (v view) toScreen(r gamemath.Rect) (gamemath.Rect, bool) {
	s := gamemath.Rect{X: math.Floor(r.X - v.camX), Y: math.Floor(r.Y - v.camY), W: r.W, H: r.H}
	visible := s.X+s.W >= 0 && s.X <= v.w && s.Y+s.H >= 0 && s.Y <= v.h
	return s, visible
}

// drawImageRect draws img stretched over r, mirrored horizontally when
// flip is set.
func drawImageRect(dst, img *ebiten.Image, r gamemath.Rect, flip bool) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	if flip {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(r.W, 0)
	}
	drawOp.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(img, drawOp)
}

// DrawBackground fills the viewport with the sky and the parallax
// background, or a starfield while the background is unavailable.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := getView(e, screen)
	if !ok {
		return
	}
	v.dst.Fill(cfg.Render.Sky)

	if bg := libraryImage("background"); bg != nil {
		b := bg.Bounds()
		scale := v.h / float64(b.Dy())
		tileW := math.Floor(float64(b.Dx()) * scale)
		span := gamemath.ParallaxTiles(v.camX, cfg.Render.Parallax, tileW, v.w)
		for i := span.First; i <= span.Last; i++ {
			x := math.Floor(span.Offset + float64(i)*tileW)
			drawImageRect(v.dst, bg, gamemath.Rect{X: x, Y: 0, W: tileW, H: v.h}, false)
		}
		return
	}

	for i := 0; i < cfg.Render.StarCount; i++ {
		x, y := gamemath.Star(i, v.camX, v.camY, v.worldW, v.worldH)
		if x < -10 || x > v.w+10 || y < -10 || y > v.h+10 {
			continue
		}
		vector.FillRect(v.dst, float32(x), float32(y), 2, 2, cfg.Render.Star, false)
	}
}

// DrawPlatforms draws every platform, decorative ones included, in level
// order.
func DrawPlatforms(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := getView(e, screen)
	if !ok {
		return
	}
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		r, visible := v.toScreen(components.Object.Get(entry).Rect())
		if !visible {
			return
		}
		if img := libraryImage(platform.Kind); img != nil {
			drawImageRect(v.dst, img, r, false)
			return
		}

		fill := cfg.Render.PlatformFill
		if platform.Decorative {
			fill = cfg.Render.DecorFill
		}
		vector.FillRect(v.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
		vector.StrokeRect(v.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, cfg.Render.PlatformStroke, false)
		drawLabel(v.dst, platform.Kind, int(r.X)+10, int(r.Y)+30, cfg.Render.Label)
	})
}

// DrawPickups draws the pickups that have not been collected.
func DrawPickups(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := getView(e, screen)
	if !ok {
		return
	}
	img := libraryImage("hp-logo")
	for _, entry := range uncollectedPickups(e) {
		rect := components.Object.Get(entry).Rect()
		rect.Y += components.Pickup.Get(entry).Bob
		r, visible := v.toScreen(rect)
		if !visible {
			continue
		}
		if img != nil {
			drawImageRect(v.dst, img, r, false)
			continue
		}
		drawCross(v.dst, r)
	}
}

// Reusable slice for the pickups drawn this frame
var pickupDraw []*donburi.Entry

// uncollectedPickups returns the pickups still in the level. The slice is
// reused on the next call.
func uncollectedPickups(e *ecs.ECS) []*donburi.Entry {
	pickupDraw = pickupDraw[:0]
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		if !components.Pickup.Get(entry).Collected {
			pickupDraw = append(pickupDraw, entry)
		}
	})
	return pickupDraw
}

// drawCross is the pickup placeholder: a white cross on a red square.
func drawCross(dst *ebiten.Image, r gamemath.Rect) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Render.PickupFill, false)
	long := r.W * 0.6
	thick := r.W * 0.15
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	vector.FillRect(dst, float32(cx-long/2), float32(cy-thick/2), float32(long), float32(thick), cfg.Render.PickupCross, false)
	vector.FillRect(dst, float32(cx-thick/2), float32(cy-long/2), float32(thick), float32(long), cfg.Render.PickupCross, false)
}

// DrawEndpoint draws the exit the player has to reach.
func DrawEndpoint(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := getView(e, screen)
	if !ok {
		return
	}
	entry, ok := tags.Endpoint.First(e.World)
	if !ok {
		return
	}
	r, visible := v.toScreen(components.Object.Get(entry).Rect())
	if !visible {
		return
	}
	vector.FillRect(v.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Render.Endpoint, false)
	drawLabel(v.dst, components.Endpoint.Get(entry).Label, int(r.X)+10, int(r.Y)+30, cfg.Render.Label)
}

// DrawPlayer draws the active animation frame, mirrored when facing left,
// and the shield ring with its remaining hits.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := getView(e, screen)
	if !ok {
		return
	}
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)
	r, _ := v.toScreen(components.Object.Get(entry).Rect())

	if img := libraryImage(cfg.FrameName(anim.Mode, anim.Frame())); img != nil {
		drawImageRect(v.dst, img, r, player.Facing == cfg.FacingLeft)
	} else {
		vector.FillRect(v.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Render.PlayerFallback, false)
	}

	if !player.ShieldActive {
		return
	}
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	vector.StrokeCircle(v.dst, cx, cy, cfg.Render.ShieldRadius, 4, cfg.Render.Shield, true)
	left := cfg.Inventory.ShieldHits - player.ShieldHits
	drawSmall(v.dst, fmt.Sprintf("%d", left), int(r.X+r.W)+8, int(r.Y)+15, cfg.Render.Shield)
}

func drawLabel(dst *ebiten.Image, s string, x, y int, c color.Color) {
	if !fonts.Loaded(fonts.Regular) {
		return
	}
	text.Draw(dst, s, fonts.Regular.Get(), x, y, c)
}

func drawSmall(dst *ebiten.Image, s string, x, y int, c color.Color) {
	if !fonts.Loaded(fonts.Small) {
		return
	}
	text.Draw(dst, s, fonts.Small.Get(), x, y, c)
}
