package flycam

import "time"

// Clock measures frame time for Camera.Update.
type Clock struct {
	// MaxDelta clamps a single Tick, for hosts that want to bound the step
	// after a stall. Zero disables clamping.
	MaxDelta time.Duration

	now  func() time.Time
	last time.Time
	dt   time.Duration
}

// NewClock starts a clock on the wall time; the first Tick measures from now.
func NewClock() *Clock {
	return newClockAt(time.Now)
}

func newClockAt(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick (or since the
// clock was created). The result is never negative.
func (c *Clock) Tick() float32 {
	t := c.now()
	dt := t.Sub(c.last)
	c.last = t
	if dt < 0 {
		dt = 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	c.dt = dt
	return float32(dt.Seconds())
}

// Dt is the duration returned by the last Tick.
func (c *Clock) Dt() time.Duration { return c.dt }
