package scene

import "fmt"

// TracePoint is one sampled frame of the animation.
type TracePoint struct {
	Frame int     `yaml:"frame"`
	Held  bool    `yaml:"held"`
	Time  float64 `yaml:"time"`
	Speed float64 `yaml:"speed"`
	FOV   float64 `yaml:"fov"`
}

// Trace steps a mounted scene through frames fixed steps of 1/fps seconds.
// held reports whether the pointer is down on a frame; edges are turned
// into Accelerate and Decelerate calls.
func Trace(s *Scene, frames int, fps float64, held func(frame int) bool) ([]TracePoint, error) {
	if frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", frames)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %v", fps)
	}
	delta := 1 / fps
	down := false
	out := make([]TracePoint, 0, frames)
	for i := 0; i < frames; i++ {
		h := held != nil && held(i)
		switch {
		case h && !down:
			s.Accelerate()
		case !h && down:
			s.Decelerate()
		}
		down = h

		f, err := s.Frame(float64(i)*delta, delta)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		t := 0.0
		if len(f.Groups) > 0 {
			t = f.Groups[0].Uniforms.Time
		}
		out = append(out, TracePoint{Frame: i, Held: h, Time: t, Speed: f.Speed, FOV: f.FOV})
	}
	return out, nil
}
