package scene

import (
	"fmt"

	"infinite-lights/internal/anim"
	"infinite-lights/internal/lights"
	"infinite-lights/pkg/core"
)

// Uniforms are the per-group scalars written every frame.
type Uniforms struct {
	Time         float64
	Fade         [2]float64
	PositionX    float64
	TravelLength float64
}

// Map returns the uniforms keyed by program name, as float32 values the
// engine accepts.
func (u Uniforms) Map() map[string]any {
	return map[string]any{
		"uTime":         float32(u.Time),
		"uFade":         []float32{float32(u.Fade[0]), float32(u.Fade[1])},
		"uPositionX":    float32(u.PositionX),
		"uTravelLength": float32(u.TravelLength),
	}
}

// GroupFrame pairs a group's immutable buffer with this frame's uniforms.
type GroupFrame struct {
	Name     string
	Buffer   *lights.InstanceBuffer
	Uniforms Uniforms
}

// Frame is everything the render bridge needs for one display frame.
type Frame struct {
	FOV        float64
	FOVChanged bool
	Speed      float64
	Groups     []GroupFrame
}

type group struct {
	name      string
	buf       *lights.InstanceBuffer
	positionX float64
	fade      [2]float64
}

// Scene composes the light groups with the animation controller. Buffers
// are built by Mount; until then Frame and Buffer fail with
// lights.ErrBufferNotInitialized.
type Scene struct {
	opts   lights.Options
	ctrl   *anim.Controller
	groups []group
	sticks bool
}

// Option configures a Scene.
type Option func(*Scene)

// WithSticks toggles the side light sticks.
func WithSticks(enabled bool) Option {
	return func(s *Scene) { s.sticks = enabled }
}

// New returns an unmounted scene for opts.
func New(opts lights.Options, options ...Option) *Scene {
	s := &Scene{
		opts: opts,
		ctrl: anim.NewController(anim.Config{
			SpeedUp:    opts.SpeedUp,
			FOV:        opts.FOV,
			FOVSpeedUp: opts.FOVSpeedUp,
		}),
		sticks: true,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Options returns the scene's options.
func (s *Scene) Options() lights.Options { return s.opts }

// Controller exposes the animation controller, which doubles as the input
// trigger.
func (s *Scene) Controller() *anim.Controller { return s.ctrl }

// Accelerate forwards to the controller.
func (s *Scene) Accelerate() { s.ctrl.Accelerate() }

// Decelerate forwards to the controller.
func (s *Scene) Decelerate() { s.ctrl.Decelerate() }

// Mounted reports whether buffers exist.
func (s *Scene) Mounted() bool { return len(s.groups) > 0 }

// Mount generates every instance buffer from src and resets the animation
// state. Calling it again rebuilds the buffers from scratch.
func (s *Scene) Mount(src core.Source) {
	left, right := lights.LeftCars(s.opts), lights.RightCars(s.opts)
	s.groups = []group{
		{name: left.Name, buf: lights.GenerateCarLights(s.opts, left, src), positionX: left.PositionX, fade: left.Fade},
		{name: right.Name, buf: lights.GenerateCarLights(s.opts, right, src), positionX: right.PositionX, fade: right.Fade},
	}
	if s.sticks {
		s.groups = append(s.groups, group{name: lights.GroupSticks, buf: lights.GenerateLightSticks(s.opts, src)})
	}
	s.ctrl.Reset()
}

// Buffer returns the named group's instance buffer.
func (s *Scene) Buffer(name string) (*lights.InstanceBuffer, error) {
	if !s.Mounted() {
		return nil, fmt.Errorf("%s: %w", name, lights.ErrBufferNotInitialized)
	}
	for _, g := range s.groups {
		if g.name == name {
			return g.buf, nil
		}
	}
	return nil, fmt.Errorf("unknown light group %q", name)
}

// Frame advances the animation by delta seconds and returns the uniforms
// for every group.
func (s *Scene) Frame(elapsed, delta float64) (Frame, error) {
	if !s.Mounted() {
		return Frame{}, lights.ErrBufferNotInitialized
	}
	af := s.ctrl.Advance(elapsed, delta)
	out := Frame{
		FOV:        af.FOV,
		FOVChanged: af.FOVChanged,
		Speed:      af.Speed,
		Groups:     make([]GroupFrame, 0, len(s.groups)),
	}
	for _, g := range s.groups {
		if err := g.buf.Check(); err != nil {
			return Frame{}, fmt.Errorf("%s: %w", g.name, err)
		}
		out.Groups = append(out.Groups, GroupFrame{
			Name:   g.name,
			Buffer: g.buf,
			Uniforms: Uniforms{
				Time:         af.Time,
				Fade:         g.fade,
				PositionX:    g.positionX,
				TravelLength: s.opts.Length,
			},
		})
	}
	return out, nil
}
