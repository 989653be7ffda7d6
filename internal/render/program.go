package render

import "infinite-lights/internal/scene"

// SpinePoint is a sample along a car light tube after the vertex program's
// transform.
type SpinePoint struct {
	Pos    Vec3
	Radius float64
	Alpha  float64
}

// stickSpeed is the fixed travel rate of the side sticks.
const stickSpeed = 60 * 2

// CarLightSpine evaluates the car light program for instance i and appends
// segments+1 samples from the head (u=0) to the tail (u=1).
//
// The tube runs from z=0 to z=-1 in model space. It is scaled by the
// instance metrics, shifted by the group's X and the instance offset, and
// slid forward by mod(uTime*speed + aOffset.z, uTravelLength) so it loops.
func CarLightSpine(dst []SpinePoint, g scene.GroupFrame, i, segments int) []SpinePoint {
	off := g.Buffer.Offsets.At(i)
	m := g.Buffer.Metrics.At(i)
	radius, length, speed := float64(m[0]), float64(m[1]), float64(m[2])
	u := g.Uniforms

	slide := length - glslMod(u.Time*speed+float64(off[2]), u.TravelLength)
	x := u.PositionX + float64(off[0])
	y := float64(off[1])
	for s := 0; s <= segments; s++ {
		t := float64(s) / float64(segments)
		dst = append(dst, SpinePoint{
			Pos:    Vec3{X: x, Y: y, Z: -t*length + slide},
			Radius: radius,
			Alpha:  smoothstep(u.Fade[0], u.Fade[1], t),
		})
	}
	return dst
}

// StickQuad is a vertical side stick in the plane X = const.
type StickQuad struct {
	X      float64
	Z0, Z1 float64
	Height float64
}

// LightStick evaluates the stick program for instance i. The unit plane is
// turned a quarter around Y so it faces across the road, lifted to stand on
// the ground, and scrolled by mod(uTime*120 + aOffset, uTravelLength).
func LightStick(g scene.GroupFrame, i int) StickQuad {
	off := float64(g.Buffer.Offsets.At(i)[0])
	m := g.Buffer.Metrics.At(i)
	width, height := float64(m[0]), float64(m[1])
	u := g.Uniforms

	z := -u.TravelLength + glslMod(u.Time*stickSpeed+off, u.TravelLength)
	return StickQuad{
		X:      u.PositionX - width/2,
		Z0:     z - width/2,
		Z1:     z + width/2,
		Height: height,
	}
}
