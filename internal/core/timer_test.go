package core

import (
	"math"
	"testing"
	"time"
)

func fakeClock(maxDelta float64, steps ...time.Duration) *Clock {
	c := NewClock(maxDelta)
	base := time.Unix(1000, 0)
	i := 0
	c.now = func() time.Time {
		t := base
		for j := 0; j < i && j < len(steps); j++ {
			t = t.Add(steps[j])
		}
		i++
		return t
	}
	return c
}

func TestClockTick(t *testing.T) {
	c := fakeClock(0, 16*time.Millisecond, 500*time.Millisecond, 10*time.Millisecond)

	elapsed, delta := c.Tick()
	if elapsed != 0 || delta != 0 {
		t.Fatalf("first tick = (%f, %f), expected zeros", elapsed, delta)
	}

	elapsed, delta = c.Tick()
	if math.Abs(delta-0.016) > 1e-9 || math.Abs(elapsed-0.016) > 1e-9 {
		t.Fatalf("second tick = (%f, %f), expected (0.016, 0.016)", elapsed, delta)
	}

	elapsed, delta = c.Tick()
	if delta != DefaultMaxDelta {
		t.Fatalf("stalled frame delta = %f, expected clamp to %f", delta, DefaultMaxDelta)
	}
	if math.Abs(elapsed-0.516) > 1e-9 {
		t.Fatalf("elapsed must not be clamped, got %f", elapsed)
	}

	c.Reset()
	if elapsed, delta = c.Tick(); elapsed != 0 || delta != 0 {
		t.Fatalf("tick after reset = (%f, %f), expected zeros", elapsed, delta)
	}
}
