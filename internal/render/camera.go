package render

import (
	"math"

	"infinite-lights/internal/core"
)

// Camera is a perspective camera fixed at Position looking down -Z.
type Camera struct {
	Position Vec3
	Near     float64
	Far      float64

	fov    float64
	width  float64
	height float64
	focal  float64
}

// NewCamera returns the highway camera: raised 7 units and pulled back 12.
func NewCamera(fov float64, size core.Size) *Camera {
	c := &Camera{Position: Vec3{0, 7, 12}, Near: 0.1, Far: 1000}
	c.width, c.height = float64(size.W), float64(size.H)
	c.SetFOV(fov)
	return c
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float64 { return c.fov }

// SetFOV sets the vertical field of view in degrees and rebuilds the
// projection.
func (c *Camera) SetFOV(deg float64) {
	c.fov = deg
	c.updateProjection()
}

// SetViewport resizes the target the camera projects onto.
func (c *Camera) SetViewport(size core.Size) {
	c.width, c.height = float64(size.W), float64(size.H)
	c.updateProjection()
}

func (c *Camera) updateProjection() {
	c.focal = 1 / math.Tan(c.fov*math.Pi/360)
}

// Depth returns the view-space distance of p in front of the camera.
func (c *Camera) Depth(p Vec3) float64 { return c.Position.Z - p.Z }

// Project maps p to pixel coordinates. ok is false when p lies outside the
// near/far range.
func (c *Camera) Project(p Vec3) (x, y, depth float64, ok bool) {
	depth = c.Depth(p)
	if depth < c.Near || depth > c.Far || c.height <= 0 {
		return 0, 0, depth, false
	}
	aspect := c.width / c.height
	ndcX := c.focal / aspect * (p.X - c.Position.X) / depth
	ndcY := c.focal * (p.Y - c.Position.Y) / depth
	x = (ndcX + 1) / 2 * c.width
	y = (1 - ndcY) / 2 * c.height
	return x, y, depth, true
}

// PixelsPerUnit returns how many pixels one world unit spans at depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return c.focal * c.height / 2 / depth
}

// FrontZ is the largest world Z still in front of the near plane. It sits a
// hair inside the plane so points clipped to it still project after
// rounding.
func (c *Camera) FrontZ() float64 { return c.Position.Z - c.Near*(1+1e-6) }
