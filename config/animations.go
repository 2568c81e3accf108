package config

import "time"

// AnimationDef lists the image assets that make up one player animation,
// in playback order.
type AnimationDef struct {
	Frames []string
}

// PlayerAnimations maps each animation mode to its frames.
var PlayerAnimations = map[AnimationMode]AnimationDef{
	AnimIdle: {
		Frames: []string{"character-idle-1", "character-idle-2"},
	},
	AnimRunning: {
		Frames: []string{"character-run-1", "character-run-2", "character-run-3", "character-run-4"},
	},
}

// FrameCount returns the number of frames of an animation mode.
func FrameCount(mode AnimationMode) int {
	return len(PlayerAnimations[mode].Frames)
}

// FrameInterval returns how long a frame of mode stays on screen.
func FrameInterval(mode AnimationMode, v VariantID) time.Duration {
	if mode == AnimRunning {
		return RunningInterval(v)
	}
	return Animation.IdleInterval
}

// FrameName returns the image asset for a frame, or "" when the index is
// out of range.
func FrameName(mode AnimationMode, frame int) string {
	frames := PlayerAnimations[mode].Frames
	if frame < 0 || frame >= len(frames) {
		return ""
	}
	return frames[frame]
}
