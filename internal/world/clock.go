package world

import "time"

// Clock turns frame timestamps into a capped simulation step.
// The step is variable; the cap only bounds spikes such as a suspended tab.
type Clock struct {
	MaxStep time.Duration

	last    time.Time
	started bool
}

func NewClock(maxStep time.Duration) *Clock {
	return &Clock{MaxStep: maxStep}
}

// Step returns the seconds since the previous call, capped at MaxStep.
// The first call only records the timestamp and returns 0.
func (c *Clock) Step(now time.Time) float32 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return ClampDelta(elapsed, c.MaxStep)
}

func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

// ClampDelta converts a raw frame gap into seconds within [0, max].
func ClampDelta(elapsed, max time.Duration) float32 {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > max {
		elapsed = max
	}
	return float32(elapsed.Seconds())
}
