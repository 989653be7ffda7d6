package lights

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOptionsValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
}

func TestLoadOptions(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
		validate    func(*testing.T, *Options)
	}{
		{
			name: "overrides keep defaults",
			yamlContent: `
lightPairsPerRoadWay: 20
carWidthPercentage: 0.4
carShiftX: [-0.1, 0.1]
colors:
  sticks: "#ff00ff"
  leftCars: [0xff102a]
`,
			validate: func(t *testing.T, o *Options) {
				if o.LightPairsPerRoadWay != 20 {
					t.Errorf("expected 20 pairs, got %d", o.LightPairsPerRoadWay)
				}
				if o.CarWidthPercentage.IsRange() {
					t.Errorf("carWidthPercentage should decode as scalar")
				}
				if lo, hi := o.CarShiftX.Bounds(); lo != -0.1 || hi != 0.1 {
					t.Errorf("carShiftX = %v", o.CarShiftX)
				}
				if len(o.Colors.Sticks) != 1 || o.Colors.Sticks[0] != 0xff00ff {
					t.Errorf("sticks = %v", o.Colors.Sticks)
				}
				if o.Length != 400 || o.TotalSideLightSticks != 50 {
					t.Errorf("missing keys should keep defaults, got length=%v sticks=%d", o.Length, o.TotalSideLightSticks)
				}
				if len(o.Colors.RightCars) != 3 {
					t.Errorf("rightCars default lost: %v", o.Colors.RightCars)
				}
			},
		},
		{
			name:        "inverted range",
			yamlContent: "lightStickWidth: [0.5, 0.1]\n",
			errContains: "lightStickWidth range invalid",
		},
		{
			name:        "empty palette",
			yamlContent: "colors:\n  rightCars: []\n",
			errContains: "colors.rightCars",
		},
		{
			name:        "zero lanes",
			yamlContent: "lanesPerRoad: 0\n",
			errContains: "lanesPerRoad",
		},
		{
			name:        "malformed yaml",
			yamlContent: "length: [1, 2, 3]\n",
			errContains: "failed to parse options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "options.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("write temp file: %v", err)
			}
			opts, err := LoadOptions(path)
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, opts)
		})
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read options") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestExampleOptionsFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join("..", "..", "data", "options.yaml"))
	if err != nil {
		t.Fatalf("bundled options: %v", err)
	}
	if opts.LightPairsPerRoadWay != DefaultOptions().LightPairsPerRoadWay {
		t.Fatalf("bundled options diverge from defaults: %d pairs", opts.LightPairsPerRoadWay)
	}
}

func TestOptionsParameters(t *testing.T) {
	snap := DefaultOptions().Parameters()
	p, ok := snap.Lookup("car_lights_radius")
	if !ok || p.Value != "[0.05, 0.14]" {
		t.Fatalf("car_lights_radius = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("lanes_per_road"); !ok || p.Value != "3" {
		t.Fatalf("lanes_per_road = %+v, %v", p, ok)
	}
}
