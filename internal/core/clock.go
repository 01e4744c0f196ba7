package core

import "time"

// MaxElapsed caps a single tick's elapsed time so a stalled frame does not
// expire every cooldown at once.
const MaxElapsed = 250 * time.Millisecond

// Clock measures the time between consecutive ticks.
type Clock struct {
	last time.Time
}

// Tick records a tick at t and returns the time elapsed since the previous one.
// The first tick reports zero.
func (c *Clock) Tick(t time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	elapsed := t.Sub(c.last)
	c.last = t
	if elapsed < 0 {
		return 0
	}
	if elapsed > MaxElapsed {
		return MaxElapsed
	}
	return elapsed
}

// Reset forgets the previous tick.
func (c *Clock) Reset() {
	c.last = time.Time{}
}

// TickInterval returns the nominal duration of one tick at the given rate.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
