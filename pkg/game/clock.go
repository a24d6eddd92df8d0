package game

import "time"

// Clock reports the time elapsed between frames.
type Clock interface {
	// Delta returns the elapsed seconds since the previous call.
	Delta() float64
}

// WallClock is a Clock backed by the real time. The first call returns 0.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

func (c *WallClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	deltaTime := now.Sub(c.last).Seconds()
	c.last = now
	return deltaTime
}
