package systems

import (
	"fmt"
	"image"

	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/fonts"
	"github.com/automoto/lab-escape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD eases the drawn health toward the player's health and fades in
// the ending overlay.
func UpdateHUD(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	dt := GetClock(e).Delta()

	if playerEntry, ok := tags.Player.First(e.World); ok {
		health := components.Health.Get(playerEntry)
		if health.Current != hud.Target || (hud.HealthBar == nil && hud.Shown != float32(health.Current)) {
			hud.HealthBar = gween.New(hud.Shown, float32(health.Current), cfg.HUD.TweenSeconds, ease.OutQuad)
			hud.Target = health.Current
		}
	}
	if hud.HealthBar != nil {
		v, done := hud.HealthBar.Update(dt)
		hud.Shown = v
		if done {
			hud.Shown = float32(hud.Target)
			hud.HealthBar = nil
		}
	}

	game := GetGame(e)
	if game == nil || game.State != cfg.GameStateEnded {
		hud.EndingFade = nil
		hud.EndingAlpha = 0
		return
	}
	if hud.EndingFade == nil {
		hud.EndingFade = gween.New(0, 1, float32(cfg.Ending.FadeIn.Seconds()), ease.Linear)
	}
	hud.EndingAlpha, _ = hud.EndingFade.Update(dt)
}

// GetOrCreateHUD returns the singleton HUD component, creating it if needed.
// A new HUD starts showing full health.
func GetOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HUD))
		components.HUD.SetValue(entry, components.HUDData{
			Shown:  float32(cfg.Player.Health),
			Target: cfg.Player.Health,
		})
	}
	return components.HUD.Get(entry)
}

// DrawHUD renders the status strip below the viewport: health bar and
// text, inventory and, when the level has pickups, the pickup counter.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	world := getWorld(e)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	top := int(world.ViewHeight)
	if top >= sh {
		return
	}
	strip := screen.SubImage(image.Rect(0, top, sw, sh)).(*ebiten.Image)
	strip.Fill(cfg.HUD.Background)

	health := components.Health.Get(playerEntry)
	inv := components.Inventory.Get(playerEntry)
	hud := GetOrCreateHUD(e)

	m := cfg.HUD.Margin
	y := float32(top) + m

	vector.FillRect(screen, m, y, cfg.HUD.BarWidth, cfg.HUD.BarHeight, cfg.HUD.BarEmpty, false)
	ratio := float32(0)
	if health.Max > 0 {
		ratio = hud.Shown / float32(health.Max)
	}
	ratio = min(max(ratio, 0), 1)
	fill := cfg.HUD.BarFill
	if ratio < 0.3 {
		fill = cfg.HUD.BarLow
	}
	vector.FillRect(screen, m, y, cfg.HUD.BarWidth*ratio, cfg.HUD.BarHeight, fill, false)

	if !fonts.Loaded(fonts.Regular) {
		return
	}
	face := fonts.Regular.Get()
	textX := int(m + cfg.HUD.BarWidth + m)
	text.Draw(screen, fmt.Sprintf("HP: %d/%d", health.Current, health.Max), face, textX, int(y+cfg.HUD.BarHeight)-3, cfg.HUD.Text)

	line2 := int(y+cfg.HUD.BarHeight+m) + 14
	status := fmt.Sprintf("Potions: %d [H]   Shields: %d [S]", inv.HealthPotions, inv.Shields)
	if game := GetGame(e); game != nil && game.TotalPickups > 0 {
		status += fmt.Sprintf("   HP logos: %d/%d", game.CollectedPickups, game.TotalPickups)
	}
	text.Draw(screen, status, face, int(m), line2, cfg.HUD.Text)
}
