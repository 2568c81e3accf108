package animations

import "time"

// Animation steps through a fixed number of frames on wall-clock time.
// A frame is shown until more than Interval has passed since the last
// change, so playback speed does not depend on the tick rate.
type Animation struct {
	Frames   int
	Interval time.Duration
	frame    int
	last     time.Time
	Looped   bool
}

func (a *Animation) Update(now time.Time) {
	if now.Sub(a.last) <= a.Interval {
		return
	}
	if a.Frames <= 0 || a.frame < 0 || a.frame >= a.Frames {
		a.frame = 0
	} else {
		a.frame = (a.frame + 1) % a.Frames
		if a.frame == 0 {
			a.Looped = true
		}
	}
	a.last = now
}

// Frame returns the current frame index, always in [0, Frames) for a
// non-empty animation.
func (a *Animation) Frame() int {
	if a.frame < 0 || a.frame >= a.Frames {
		return 0
	}
	return a.frame
}

// Restart rewinds to the first frame and starts timing from now.
func (a *Animation) Restart(now time.Time) {
	a.frame = 0
	a.last = now
	a.Looped = false
}

// SetFrame forces the frame index. Out-of-range values are kept and fixed up
// on the next Update.
func (a *Animation) SetFrame(i int) {
	a.frame = i
}

func NewAnimation(frames int, interval time.Duration, now time.Time) *Animation {
	return &Animation{
		Frames:   frames,
		Interval: interval,
		last:     now,
	}
}
