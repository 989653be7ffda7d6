package render

import (
	"math"
	"testing"
)

func TestGLSLMod(t *testing.T) {
	tests := []struct{ x, y, want float64 }{
		{5, 3, 2},
		{-1, 400, 399},
		{-450, 400, 350},
		{800, 400, 0},
	}
	for _, tt := range tests {
		if got := glslMod(tt.x, tt.y); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("glslMod(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	if got := smoothstep(0, 1, 0.5); got != 0.5 {
		t.Fatalf("smoothstep(0,1,0.5) = %v", got)
	}
	// The light fade runs from (1 -> 0.4): opaque at the head, clear at the tail.
	if got := smoothstep(1, 0.4, 0); got != 1 {
		t.Fatalf("head alpha = %v, expected 1", got)
	}
	if got := smoothstep(1, 0.4, 1); got != 0 {
		t.Fatalf("tail alpha = %v, expected 0", got)
	}
	if got := smoothstep(2, 2, 1); got != 0 {
		t.Fatalf("degenerate edges below = %v", got)
	}
	if got := smoothstep(2, 2, 3); got != 1 {
		t.Fatalf("degenerate edges above = %v", got)
	}
}
