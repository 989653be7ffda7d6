package render

import (
	"testing"

	"infinite-lights/internal/lights"
)

func TestRoadLayout(t *testing.T) {
	opts := lights.DefaultOptions()
	quads := RoadLayout(opts)

	// ground + island + 2 shoulders per roadway + dashes between lanes
	want := 2 + 2*2 + 2*(opts.LanesPerRoad-1)*brokenLineRepeats
	if len(quads) != want {
		t.Fatalf("expected %d quads, got %d", want, len(quads))
	}
	ground := quads[0]
	if ground.X0 != -16 || ground.X1 != 16 || ground.Z0 != -425 || ground.Z1 != 25 {
		t.Fatalf("ground = %+v", ground)
	}
	for _, q := range quads[2:] {
		if q.X0 >= q.X1 || q.Z0 >= q.Z1 {
			t.Fatalf("degenerate quad %+v", q)
		}
		if q.X0 > -1 && q.X1 < 1 {
			t.Fatalf("marking inside the island: %+v", q)
		}
	}
}

func TestRoadLayoutNoDashes(t *testing.T) {
	opts := lights.DefaultOptions()
	opts.BrokenLinesLengthPercentage = 0
	if got := len(RoadLayout(opts)); got != 6 {
		t.Fatalf("expected only ground, island and shoulders, got %d quads", got)
	}
}

func TestGroundQuadClipZ(t *testing.T) {
	q := GroundQuad{Z0: -10, Z1: 25}
	clipped, ok := q.ClipZ(11.9)
	if !ok || clipped.Z1 != 11.9 || clipped.Z0 != -10 {
		t.Fatalf("clipped = %+v, %v", clipped, ok)
	}
	if _, ok := (GroundQuad{Z0: 15, Z1: 25}).ClipZ(11.9); ok {
		t.Fatal("quad entirely behind the near plane should be dropped")
	}
}
