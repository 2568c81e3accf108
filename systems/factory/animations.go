package factory

import (
	"time"

	"github.com/automoto/lab-escape/assets/animations"
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
)

// GenerateAnimations builds the player's animation set for a variant. Frame
// counts come from the configured frame lists so they never depend on which
// images happen to be loaded.
func GenerateAnimations(variant cfg.VariantID, now time.Time) components.AnimationData {
	animData := components.AnimationData{
		Animations: make(map[cfg.AnimationMode]*animations.Animation, len(cfg.PlayerAnimations)),
	}
	for mode := range cfg.PlayerAnimations {
		animData.Animations[mode] = animations.NewAnimation(
			cfg.FrameCount(mode),
			cfg.FrameInterval(mode, variant),
			now,
		)
	}
	animData.Mode = cfg.AnimIdle
	animData.CurrentAnimation = animData.Animations[cfg.AnimIdle]
	return animData
}
