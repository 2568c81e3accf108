package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData animates the health bar toward the player's real health.
type HUDData struct {
	Shown       float32 // health value currently drawn
	Target      int
	HealthBar   *gween.Tween
	EndingFade  *gween.Tween
	EndingAlpha float32
}

var HUD = donburi.NewComponentType[HUDData]()
