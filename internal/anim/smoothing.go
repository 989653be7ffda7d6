package anim

import "math"

const (
	// DefaultEpsilon is the snap threshold for generic smoothing.
	DefaultEpsilon = 1e-3
	// SpeedEpsilon is the snap threshold for the speed state.
	SpeedEpsilon = 1e-5
)

// LerpFactor returns the per-frame blend toward a target for a frame of
// delta seconds. It equals 0.9 at 60 frames per second.
func LerpFactor(delta float64) float64 {
	return math.Exp(60 * math.Log(0.9) * delta)
}

// Lerp returns the change that moves current toward target by factor. When
// the change falls under limit it returns the full remaining distance.
func Lerp(current, target, factor, limit float64) float64 {
	change := (target - current) * factor
	if math.Abs(change) < limit {
		change = target - current
	}
	return change
}

// Smoothed is a scalar eased toward Target.
type Smoothed struct {
	Value   float64
	Target  float64
	Epsilon float64
}

// Step moves Value toward Target and returns the applied change.
func (s *Smoothed) Step(factor float64) float64 {
	eps := s.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	change := Lerp(s.Value, s.Target, factor, eps)
	s.Value += change
	return change
}
