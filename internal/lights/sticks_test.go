package lights

import (
	"math"
	"testing"

	"infinite-lights/pkg/core"
)

func TestGenerateLightSticksShape(t *testing.T) {
	opts := DefaultOptions()
	buf := GenerateLightSticks(opts, core.NewRNG(3))
	if err := buf.Check(); err != nil {
		t.Fatal(err)
	}
	n := opts.TotalSideLightSticks
	if len(buf.Offsets.Data) != n || len(buf.Metrics.Data) != 2*n || len(buf.Colors.Data) != 3*n {
		t.Fatalf("lengths offsets=%d metrics=%d colors=%d for %d sticks",
			len(buf.Offsets.Data), len(buf.Metrics.Data), len(buf.Colors.Data), n)
	}
	const eps = 1e-6
	for i := 0; i < n; i++ {
		m := buf.Metrics.At(i)
		w, h := float64(m[0]), float64(m[1])
		if w < 0.12-eps || w > 0.5+eps || h < 1.3-eps || h > 1.7+eps {
			t.Fatalf("stick %d metrics %v outside configured ranges", i, m)
		}
	}
}

func TestGenerateLightSticksOffsets(t *testing.T) {
	opts := DefaultOptions()
	step := StickStep(opts)
	buf := GenerateLightSticks(opts, constSource(0.5))

	// The first stick lands behind the origin.
	if got := float64(buf.Offsets.Data[0]); math.Abs(got+1.5*step) > 1e-3 {
		t.Fatalf("stick 0 offset %f, expected %f", got, -1.5*step)
	}
	for i := 1; i < opts.TotalSideLightSticks; i++ {
		want := float64(i-1)*2*step + 0.5*step
		if got := float64(buf.Offsets.Data[i]); math.Abs(got-want) > 1e-3 {
			t.Fatalf("stick %d offset %f, expected %f", i, got, want)
		}
	}
}

func TestGenerateLightSticksSingleStickIsDegenerate(t *testing.T) {
	opts := DefaultOptions()
	opts.TotalSideLightSticks = 1
	buf := GenerateLightSticks(opts, constSource(0.5))
	v := float64(buf.Offsets.Data[0])
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		t.Fatalf("single stick offset %f, expected a non-finite value", v)
	}
	if opts.Validate() == nil {
		t.Fatal("Validate should reject a single stick")
	}
}
