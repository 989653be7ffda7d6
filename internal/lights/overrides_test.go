package lights

import (
	"strings"
	"testing"
)

func TestApplyOverrides(t *testing.T) {
	opts := DefaultOptions()
	err := opts.ApplyOverrides([]string{
		"speedUp=3",
		"movingAwaySpeed=[10, 20]",
		"carLightsRadius=0.2",
		"colors.roadColor=0x101010",
		"colors.leftCars=[0xff0000, '#00ff00']",
	})
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if opts.SpeedUp != 3 {
		t.Fatalf("speedUp = %v", opts.SpeedUp)
	}
	if opts.MovingAwaySpeed != Range(10, 20) {
		t.Fatalf("movingAwaySpeed = %v", opts.MovingAwaySpeed)
	}
	if opts.CarLightsRadius != Fixed(0.2) {
		t.Fatalf("carLightsRadius = %v", opts.CarLightsRadius)
	}
	if opts.Colors.RoadColor != 0x101010 || len(opts.Colors.LeftCars) != 2 || opts.Colors.LeftCars[1] != 0x00ff00 {
		t.Fatalf("colors = %+v", opts.Colors)
	}
	if opts.Colors.IslandColor != DefaultOptions().Colors.IslandColor {
		t.Fatal("untouched colors must keep their defaults")
	}
}

func TestApplyOverridesErrors(t *testing.T) {
	tests := []struct {
		kv          string
		errContains string
	}{
		{"speedUp", "expected key=value"},
		{"=3", "expected key=value"},
		{"speedUp=", "empty value"},
		{"lanesPerRoad=0", "invalid options"},
		{"movingAwaySpeed=[1, 2, 3]", "failed to apply overrides"},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		err := opts.ApplyOverrides([]string{tt.kv})
		if err == nil || !strings.Contains(err.Error(), tt.errContains) {
			t.Errorf("%q: expected error containing %q, got %v", tt.kv, tt.errContains, err)
		}
	}
}

func TestApplyOverridesFailureLeavesOptions(t *testing.T) {
	opts := DefaultOptions()
	// speedUp decodes before lanesPerRoad fails validation.
	err := opts.ApplyOverrides([]string{"speedUp=9", "lanesPerRoad=0"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if opts.SpeedUp != DefaultOptions().SpeedUp || opts.LanesPerRoad != DefaultOptions().LanesPerRoad {
		t.Fatalf("failed overrides leaked into options: speedUp=%v lanesPerRoad=%d", opts.SpeedUp, opts.LanesPerRoad)
	}

	err = opts.ApplyOverrides([]string{"speedUp=9", "movingAwaySpeed=[1, 2, 3]"})
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if opts.SpeedUp != DefaultOptions().SpeedUp {
		t.Fatalf("failed decode leaked speedUp=%v", opts.SpeedUp)
	}
}
