package components

import (
	"time"

	"github.com/automoto/lab-escape/assets/animations"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Mode             cfg.AnimationMode
	CurrentAnimation *animations.Animation
	Animations       map[cfg.AnimationMode]*animations.Animation
}

// SetAnimation switches to mode. Switching restarts the new animation at
// frame 0 with its timer at now; asking for the active mode does nothing.
func (a *AnimationData) SetAnimation(mode cfg.AnimationMode, now time.Time) {
	if a.Mode == mode && a.CurrentAnimation != nil {
		return
	}
	anim, ok := a.Animations[mode]
	if !ok {
		a.CurrentAnimation = nil
		a.Mode = mode
		return
	}
	a.Mode = mode
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart(now)
}

// Frame returns the active frame index, 0 when no animation is set.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
