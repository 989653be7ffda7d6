package render

import (
	"math"
	"testing"

	"infinite-lights/internal/lights"
	"infinite-lights/internal/scene"
)

func carGroup(time float64) scene.GroupFrame {
	return scene.GroupFrame{
		Name: lights.GroupLeftCars,
		Buffer: &lights.InstanceBuffer{
			Count:   1,
			Offsets: lights.Attribute{Name: lights.AttrOffset, Stride: 3, Data: []float32{-1, 0.5, -100}},
			Metrics: lights.Attribute{Name: lights.AttrMetrics, Stride: 3, Data: []float32{0.1, 40, 60}},
			Colors:  lights.Attribute{Name: lights.AttrColor, Stride: 3, Data: []float32{1, 0, 0}},
		},
		Uniforms: scene.Uniforms{Time: time, Fade: [2]float64{1, 0.4}, PositionX: -6, TravelLength: 400},
	}
}

func TestCarLightSpine(t *testing.T) {
	spine := CarLightSpine(nil, carGroup(0), 0, 4)
	if len(spine) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(spine))
	}
	// slide = len - mod(0*60 - 100, 400) = 40 - 300
	head, tail := spine[0], spine[4]
	if head.Pos.X != -7 || head.Pos.Y != 0.5 || head.Pos.Z != -260 {
		t.Fatalf("head = %+v", head.Pos)
	}
	if tail.Pos.Z != -300 {
		t.Fatalf("tail z = %v, expected -300", tail.Pos.Z)
	}
	if head.Alpha != 1 || tail.Alpha != 0 || head.Radius != float64(float32(0.1)) {
		t.Fatalf("head alpha %v tail alpha %v radius %v", head.Alpha, tail.Alpha, head.Radius)
	}
}

func TestCarLightSpineLoops(t *testing.T) {
	// After uTravelLength/speed seconds the light is back where it started.
	a := CarLightSpine(nil, carGroup(1), 0, 1)
	b := CarLightSpine(nil, carGroup(1+400.0/60), 0, 1)
	if math.Abs(a[0].Pos.Z-b[0].Pos.Z) > 1e-6 {
		t.Fatalf("light did not wrap: %v vs %v", a[0].Pos.Z, b[0].Pos.Z)
	}
	c := CarLightSpine(nil, carGroup(1.5), 0, 1)
	if c[0].Pos.Z >= a[0].Pos.Z {
		t.Fatalf("positive speed should move away: %v -> %v", a[0].Pos.Z, c[0].Pos.Z)
	}
}

func TestLightStick(t *testing.T) {
	g := scene.GroupFrame{
		Name: lights.GroupSticks,
		Buffer: &lights.InstanceBuffer{
			Count:   1,
			Offsets: lights.Attribute{Name: lights.AttrOffset, Stride: 1, Data: []float32{10}},
			Metrics: lights.Attribute{Name: lights.AttrMetric, Stride: 2, Data: []float32{0.5, 1.5}},
			Colors:  lights.Attribute{Name: lights.AttrColor, Stride: 3, Data: []float32{1, 1, 1}},
		},
		Uniforms: scene.Uniforms{Time: 1, TravelLength: 400},
	}
	s := LightStick(g, 0)
	// z = -400 + mod(120 + 10, 400)
	if s.X != -0.25 || s.Height != 1.5 || s.Z0 != -270.25 || s.Z1 != -269.75 {
		t.Fatalf("stick = %+v", s)
	}
}
