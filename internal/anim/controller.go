package anim

// Trigger is the input surface. Hosts call Accelerate on press and
// Decelerate on release or when the pointer leaves the window.
type Trigger interface {
	Accelerate()
	Decelerate()
}

// Config holds the targets the triggers switch between.
type Config struct {
	SpeedUp    float64
	FOV        float64
	FOVSpeedUp float64
}

// State is the mutable animation state of one mounted scene.
type State struct {
	SpeedUp       float64
	SpeedUpTarget float64
	TimeOffset    float64
	FOV           float64
	FOVTarget     float64
}

// Frame is the per-frame output for the render bridge.
type Frame struct {
	// Time feeds the light programs' uTime uniform.
	Time  float64
	Speed float64
	FOV   float64
	// FOVChanged reports whether the camera projection needs rebuilding.
	FOVChanged bool
}

// Controller smooths pointer-driven speed-up intent into continuous speed,
// virtual distance and camera field of view. It is not safe for concurrent
// use; drive it from the render loop.
type Controller struct {
	cfg   Config
	speed Smoothed
	fov   Smoothed
	state State
	held  bool
}

// NewController returns a controller at rest with the baseline FOV.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.Reset()
	return c
}

// Reset restores the mount-time state.
func (c *Controller) Reset() {
	c.speed = Smoothed{Epsilon: SpeedEpsilon}
	c.fov = Smoothed{Value: c.cfg.FOV, Target: c.cfg.FOV, Epsilon: DefaultEpsilon}
	c.state = State{}
	c.held = false
	c.sync()
}

// Accelerate targets the configured speed-up and wide FOV.
func (c *Controller) Accelerate() {
	c.held = true
	c.retarget()
}

// Decelerate returns both targets to baseline.
func (c *Controller) Decelerate() {
	c.held = false
	c.retarget()
}

// Advance steps the state by delta seconds. elapsed is the host clock time
// the time offset is added to.
func (c *Controller) Advance(elapsed, delta float64) Frame {
	factor := LerpFactor(delta)

	// Distance integrates the speed held at the start of the frame.
	prev := c.speed.Value
	c.speed.Step(factor)
	c.state.TimeOffset += prev * delta

	fovChange := Lerp(c.fov.Value, c.fov.Target, factor, c.fov.Epsilon)
	changed := fovChange != 0
	if changed {
		c.fov.Value += fovChange * delta * 6
	}
	c.sync()

	return Frame{
		Time:       elapsed + c.state.TimeOffset,
		Speed:      c.speed.Value,
		FOV:        c.fov.Value,
		FOVChanged: changed,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Config returns the active trigger targets.
func (c *Controller) Config() Config { return c.cfg }

// SetSpeedUp changes the accelerate target. A held press picks it up
// immediately.
func (c *Controller) SetSpeedUp(v float64) {
	c.cfg.SpeedUp = v
	c.retarget()
}

// SetFOVSpeedUp changes the wide FOV used while accelerating.
func (c *Controller) SetFOVSpeedUp(v float64) {
	c.cfg.FOVSpeedUp = v
	c.retarget()
}

// SetFOV changes the baseline FOV.
func (c *Controller) SetFOV(v float64) {
	c.cfg.FOV = v
	c.retarget()
}

// Held reports whether Accelerate is in effect.
func (c *Controller) Held() bool { return c.held }

func (c *Controller) retarget() {
	if c.held {
		c.speed.Target = c.cfg.SpeedUp
		c.fov.Target = c.cfg.FOVSpeedUp
	} else {
		c.speed.Target = 0
		c.fov.Target = c.cfg.FOV
	}
	c.sync()
}

func (c *Controller) sync() {
	c.state.SpeedUp = c.speed.Value
	c.state.SpeedUpTarget = c.speed.Target
	c.state.FOV = c.fov.Value
	c.state.FOVTarget = c.fov.Target
}
