package anim

import (
	"math"
	"testing"
)

func TestLerpFactor(t *testing.T) {
	if got := LerpFactor(1.0 / 60); math.Abs(got-0.9) > 1e-12 {
		t.Fatalf("LerpFactor(1/60) = %f, expected 0.9", got)
	}
	if got := LerpFactor(0); got != 1 {
		t.Fatalf("LerpFactor(0) = %f, expected 1", got)
	}
	if LerpFactor(1.0/30) >= LerpFactor(1.0/60) {
		t.Fatal("longer frames should blend less per call")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name                           string
		current, target, factor, limit float64
		want                           float64
	}{
		{"partial step", 0, 10, 0.5, 1e-3, 5},
		{"snap under limit", 1, 1.0005, 0.5, 1e-3, 0.0005},
		{"at target", 3, 3, 0.9, 1e-3, 0},
		{"negative direction", 10, 0, 0.1, 1e-3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.current, tt.target, tt.factor, tt.limit)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Lerp = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSmoothedSnapIsExact(t *testing.T) {
	cases := []Smoothed{
		{Value: 1, Target: 1 + 5e-6, Epsilon: SpeedEpsilon},
		{Value: 2, Target: 2 - 9e-6, Epsilon: SpeedEpsilon},
		{Value: 90, Target: 90.0009},
	}
	for i, s := range cases {
		s.Step(LerpFactor(1.0 / 60))
		if s.Value != s.Target {
			t.Fatalf("case %d: value %v != target %v after snap", i, s.Value, s.Target)
		}
		if change := s.Step(0.9); change != 0 {
			t.Fatalf("case %d: converged value drifted by %v", i, change)
		}
	}
}
