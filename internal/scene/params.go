package scene

import (
	"strconv"

	"infinite-lights/internal/core"
)

const (
	ParamSpeedUp    = "speed_up"
	ParamFOVSpeedUp = "fov_speed_up"
	ParamFOV        = "fov"
)

// Parameters reports the options plus the live animation state.
func (s *Scene) Parameters() core.ParameterSnapshot {
	snap := s.opts.Parameters()
	cfg := s.ctrl.Config()
	st := s.ctrl.State()
	snap.Groups = append(snap.Groups,
		core.ParameterGroup{
			Name: "Controls",
			Params: []core.Parameter{
				floatParam(ParamSpeedUp, "Speed up", cfg.SpeedUp),
				floatParam(ParamFOVSpeedUp, "Speed-up FOV", cfg.FOVSpeedUp),
				floatParam(ParamFOV, "FOV", cfg.FOV),
			},
		},
		core.ParameterGroup{
			Name: "State",
			Params: []core.Parameter{
				floatParam("speed", "Speed", st.SpeedUp),
				floatParam("distance", "Distance", st.TimeOffset),
				floatParam("camera_fov", "Camera FOV", st.FOV),
			},
		},
	)
	return snap
}

// ParameterControls lists the HUD-adjustable values.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamSpeedUp, Label: "Speed up", Step: 0.5, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: ParamFOVSpeedUp, Label: "Speed-up FOV", Step: 5, Min: 30, Max: 170, HasMin: true, HasMax: true},
		{Key: ParamFOV, Label: "FOV", Step: 5, Min: 30, Max: 170, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter applies a HUD adjustment. Values are clamped to the
// control bounds.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case ParamSpeedUp:
			s.ctrl.SetSpeedUp(value)
		case ParamFOVSpeedUp:
			s.ctrl.SetFOVSpeedUp(value)
		case ParamFOV:
			s.ctrl.SetFOV(value)
		}
		return true
	}
	return false
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 2, 64),
	}
}
