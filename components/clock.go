package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the wall-clock time sampled once at the start of a tick so
// every system in that tick sees the same instant.
type ClockData struct {
	Now  time.Time
	Prev time.Time
}

// Delta returns the seconds elapsed since the previous tick.
func (c *ClockData) Delta() float32 {
	if c.Prev.IsZero() {
		return 0
	}
	return float32(c.Now.Sub(c.Prev).Seconds())
}

var Clock = donburi.NewComponentType[ClockData]()
