package lights

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Colors holds the scene palette. Only the car and stick entries may hold
// more than one color.
type Colors struct {
	RoadColor     Color   `yaml:"roadColor"`
	IslandColor   Color   `yaml:"islandColor"`
	Background    Color   `yaml:"background"`
	ShoulderLines Color   `yaml:"shoulderLines"`
	BrokenLines   Color   `yaml:"brokenLines"`
	LeftCars      Palette `yaml:"leftCars"`
	RightCars     Palette `yaml:"rightCars"`
	Sticks        Palette `yaml:"sticks"`
}

// Options is the static parameter table for one scene. It is treated as
// immutable once a scene is mounted.
type Options struct {
	Length       float64 `yaml:"length"`
	RoadSections int     `yaml:"roadSections"`
	RoadWidth    float64 `yaml:"roadWidth"`
	IslandWidth  float64 `yaml:"islandWidth"`
	LanesPerRoad int     `yaml:"lanesPerRoad"`

	FOV        float64 `yaml:"fov"`
	FOVSpeedUp float64 `yaml:"fovSpeedUp"`
	SpeedUp    float64 `yaml:"speedUp"`

	CarLightsFade float64 `yaml:"carLightsFade"`

	TotalSideLightSticks int `yaml:"totalSideLightSticks"`
	LightPairsPerRoadWay int `yaml:"lightPairsPerRoadWay"`

	// Percentages of the lane width.
	ShoulderLinesWidthPercentage float64 `yaml:"shoulderLinesWidthPercentage"`
	BrokenLinesWidthPercentage   float64 `yaml:"brokenLinesWidthPercentage"`
	BrokenLinesLengthPercentage  float64 `yaml:"brokenLinesLengthPercentage"`

	LightStickWidth   Value `yaml:"lightStickWidth"`
	LightStickHeight  Value `yaml:"lightStickHeight"`
	MovingAwaySpeed   Value `yaml:"movingAwaySpeed"`
	MovingCloserSpeed Value `yaml:"movingCloserSpeed"`

	CarLightsLength Value `yaml:"carLightsLength"`
	CarLightsRadius Value `yaml:"carLightsRadius"`
	// Fraction of a lane. CarWidthPercentage max plus CarShiftX max should
	// stay below 1 or lights drift into the neighbouring lane.
	CarWidthPercentage Value `yaml:"carWidthPercentage"`
	CarShiftX          Value `yaml:"carShiftX"`
	CarFloorSeparation Value `yaml:"carFloorSeparation"`

	Colors Colors `yaml:"colors"`
}

// DefaultOptions returns the standard highway configuration.
func DefaultOptions() Options {
	return Options{
		Length:       400,
		RoadSections: 3,
		RoadWidth:    10,
		IslandWidth:  2,
		LanesPerRoad: 3,

		FOV:        90,
		FOVSpeedUp: 140,
		SpeedUp:    2,

		CarLightsFade: 0.4,

		TotalSideLightSticks: 50,
		LightPairsPerRoadWay: 50,

		ShoulderLinesWidthPercentage: 0.05,
		BrokenLinesWidthPercentage:   0.1,
		BrokenLinesLengthPercentage:  0.5,

		LightStickWidth:   Range(0.12, 0.5),
		LightStickHeight:  Range(1.3, 1.7),
		MovingAwaySpeed:   Range(60, 80),
		MovingCloserSpeed: Range(-160, -120),

		CarLightsLength:    Range(400*0.05, 400*0.15),
		CarLightsRadius:    Range(0.05, 0.14),
		CarWidthPercentage: Range(0.3, 0.5),
		CarShiftX:          Range(-0.2, 0.2),
		CarFloorSeparation: Range(0.05, 1),

		Colors: Colors{
			RoadColor:     0x080808,
			IslandColor:   0x0a0a0a,
			Background:    0x000000,
			ShoulderLines: 0x131318,
			BrokenLines:   0x131318,
			LeftCars:      Palette{0xff102a, 0xeb383e, 0xff102a},
			RightCars:     Palette{0xdadafa, 0xbebae3, 0x8f97e4},
			Sticks:        Palette{0xdadafa},
		},
	}
}

// LaneWidth returns the width of a single lane.
func (o Options) LaneWidth() float64 { return o.RoadWidth / float64(o.LanesPerRoad) }

// LoadOptions reads a YAML file on top of DefaultOptions and validates it.
// Keys missing from the file keep their default values.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// ParseOptions decodes YAML bytes on top of DefaultOptions and validates the
// result.
func ParseOptions(data []byte) (*Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &opts, nil
}

// Validate checks the preconditions the generators rely on. Generators do
// not call it: options that fail here produce non-finite geometry.
func (o Options) Validate() error {
	var errs []error
	if o.Length <= 0 {
		errs = append(errs, fmt.Errorf("length must be positive, got %v", o.Length))
	}
	if o.RoadWidth <= 0 {
		errs = append(errs, fmt.Errorf("roadWidth must be positive, got %v", o.RoadWidth))
	}
	if o.LanesPerRoad <= 0 {
		errs = append(errs, fmt.Errorf("lanesPerRoad must be positive, got %d", o.LanesPerRoad))
	}
	if o.LightPairsPerRoadWay <= 0 {
		errs = append(errs, fmt.Errorf("lightPairsPerRoadWay must be positive, got %d", o.LightPairsPerRoadWay))
	}
	if o.TotalSideLightSticks < 2 {
		errs = append(errs, fmt.Errorf("totalSideLightSticks must be at least 2, got %d", o.TotalSideLightSticks))
	}

	ranges := []struct {
		name string
		v    Value
	}{
		{"lightStickWidth", o.LightStickWidth},
		{"lightStickHeight", o.LightStickHeight},
		{"movingAwaySpeed", o.MovingAwaySpeed},
		{"movingCloserSpeed", o.MovingCloserSpeed},
		{"carLightsLength", o.CarLightsLength},
		{"carLightsRadius", o.CarLightsRadius},
		{"carWidthPercentage", o.CarWidthPercentage},
		{"carShiftX", o.CarShiftX},
		{"carFloorSeparation", o.CarFloorSeparation},
	}
	for _, r := range ranges {
		if !r.v.Valid() {
			lo, hi := r.v.Bounds()
			errs = append(errs, fmt.Errorf("%s range invalid: min(%v) > max(%v)", r.name, lo, hi))
		}
	}

	palettes := []struct {
		name string
		p    Palette
	}{
		{"colors.leftCars", o.Colors.LeftCars},
		{"colors.rightCars", o.Colors.RightCars},
		{"colors.sticks", o.Colors.Sticks},
	}
	for _, p := range palettes {
		if len(p.p) == 0 {
			errs = append(errs, fmt.Errorf("%s must hold at least one color", p.name))
		}
	}
	return errors.Join(errs...)
}
