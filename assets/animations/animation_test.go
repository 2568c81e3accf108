package animations

import (
	"testing"
	"time"
)

func TestAnimationAdvancesOnlyAfterInterval(t *testing.T) {
	start := time.Unix(1000, 0)
	a := NewAnimation(4, 100*time.Millisecond, start)

	a.Update(start.Add(100 * time.Millisecond))
	if a.Frame() != 0 {
		t.Fatalf("frame advanced at exactly the interval, got %d", a.Frame())
	}

	a.Update(start.Add(101 * time.Millisecond))
	if a.Frame() != 1 {
		t.Fatalf("frame = %d after interval elapsed, want 1", a.Frame())
	}

	// timing restarts from the last change, not from start
	a.Update(start.Add(150 * time.Millisecond))
	if a.Frame() != 1 {
		t.Fatalf("frame = %d only 49ms after last change, want 1", a.Frame())
	}
}

func TestAnimationWrapsAndStaysInRange(t *testing.T) {
	now := time.Unix(0, 0)
	a := NewAnimation(2, 300*time.Millisecond, now)

	seen := map[int]bool{}
	for i := 0; i < 10; i++ {
		now = now.Add(301 * time.Millisecond)
		a.Update(now)
		f := a.Frame()
		if f < 0 || f >= 2 {
			t.Fatalf("frame %d out of range", f)
		}
		seen[f] = true
	}
	if !seen[0] || !seen[1] || !a.Looped {
		t.Errorf("animation did not cycle: seen=%v looped=%v", seen, a.Looped)
	}
}

func TestAnimationResetsOutOfRangeFrame(t *testing.T) {
	now := time.Unix(0, 0)
	a := NewAnimation(4, 70*time.Millisecond, now)
	a.SetFrame(3)

	// switching to a shorter animation leaves a stale index behind
	a.Frames = 2
	if a.Frame() != 0 {
		t.Errorf("Frame() = %d for stale index, want 0", a.Frame())
	}
	a.Update(now.Add(71 * time.Millisecond))
	if a.Frame() != 0 {
		t.Errorf("Update kept stale index, Frame() = %d", a.Frame())
	}
}

func TestAnimationRestart(t *testing.T) {
	now := time.Unix(0, 0)
	a := NewAnimation(4, 70*time.Millisecond, now)
	a.Update(now.Add(80 * time.Millisecond))
	a.Update(now.Add(160 * time.Millisecond))
	if a.Frame() != 2 {
		t.Fatalf("setup: frame = %d, want 2", a.Frame())
	}

	later := now.Add(200 * time.Millisecond)
	a.Restart(later)
	if a.Frame() != 0 {
		t.Errorf("Frame() after Restart = %d, want 0", a.Frame())
	}
	a.Update(later.Add(50 * time.Millisecond))
	if a.Frame() != 0 {
		t.Errorf("Restart did not reset the frame timer, Frame() = %d", a.Frame())
	}
}
