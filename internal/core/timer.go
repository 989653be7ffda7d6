package core

import "time"

// DefaultMaxDelta bounds a single frame step so a stalled window does not
// teleport the animation forward.
const DefaultMaxDelta = 0.1

// Clock measures elapsed and per-frame time for the render loop.
type Clock struct {
	start    time.Time
	last     time.Time
	maxDelta float64
	now      func() time.Time
}

// NewClock constructs a Clock that clamps deltas to maxDelta seconds. A
// non-positive maxDelta selects DefaultMaxDelta.
func NewClock(maxDelta float64) *Clock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Clock{maxDelta: maxDelta, now: time.Now}
}

// Tick returns the seconds elapsed since the first tick and the seconds
// since the previous tick. The first call reports (0, 0).
func (c *Clock) Tick() (elapsed, delta float64) {
	now := c.now()
	if c.start.IsZero() {
		c.start = now
		c.last = now
		return 0, 0
	}
	delta = now.Sub(c.last).Seconds()
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > c.maxDelta {
		delta = c.maxDelta
	}
	return now.Sub(c.start).Seconds(), delta
}

// Reset forgets the start time so the next Tick starts a new session.
func (c *Clock) Reset() {
	c.start = time.Time{}
	c.last = time.Time{}
}
