package render

import "math"

// Vec3 is a world-space point. +Y is up and the camera looks down -Z.
type Vec3 struct {
	X, Y, Z float64
}

// glslMod matches GLSL mod: the result has the sign of y.
func glslMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// smoothstep matches GLSL smoothstep, including edge0 > edge1 which yields a
// falling ramp.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}
