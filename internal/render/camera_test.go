package render

import (
	"math"
	"testing"

	"infinite-lights/internal/core"
)

func TestCameraProjectCenter(t *testing.T) {
	cam := NewCamera(90, core.Size{W: 800, H: 600})
	x, y, depth, ok := cam.Project(Vec3{0, 7, -88})
	if !ok {
		t.Fatal("point in front of the camera should project")
	}
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 || depth != 100 {
		t.Fatalf("axis point projected to (%v, %v) depth %v", x, y, depth)
	}

	// With a 90 degree FOV a point one unit up at depth one hits the top edge.
	_, y, _, _ = cam.Project(Vec3{0, 8, 11})
	if math.Abs(y) > 1e-9 {
		t.Fatalf("top edge y = %v, expected 0", y)
	}
}

func TestCameraRejectsBehind(t *testing.T) {
	cam := NewCamera(90, core.Size{W: 800, H: 600})
	if _, _, _, ok := cam.Project(Vec3{0, 0, 20}); ok {
		t.Fatal("point behind the camera must not project")
	}
	if _, _, _, ok := cam.Project(Vec3{0, 0, 12 - cam.Far - 1}); ok {
		t.Fatal("point past the far plane must not project")
	}
}

func TestCameraSetFOVRenormalizes(t *testing.T) {
	cam := NewCamera(90, core.Size{W: 800, H: 600})
	narrow := cam.PixelsPerUnit(10)
	cam.SetFOV(140)
	if cam.FOV() != 140 {
		t.Fatalf("FOV = %v", cam.FOV())
	}
	if wide := cam.PixelsPerUnit(10); wide >= narrow {
		t.Fatalf("wider FOV should shrink objects: %v >= %v", wide, narrow)
	}
	cam.SetViewport(core.Size{W: 400, H: 300})
	want := 150 / math.Tan(70*math.Pi/180) / 10
	if got := cam.PixelsPerUnit(10); math.Abs(got-want) > 1e-9 {
		t.Fatalf("PixelsPerUnit after resize = %v", got)
	}
}

func TestCameraProjectsFrontZ(t *testing.T) {
	cam := NewCamera(90, core.Size{W: 800, H: 600})
	if _, _, depth, ok := cam.Project(Vec3{0, 0, cam.FrontZ()}); !ok || depth < cam.Near {
		t.Fatalf("point at FrontZ rejected: depth=%v", depth)
	}
}
