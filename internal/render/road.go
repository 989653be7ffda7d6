package render

import (
	"math"

	"infinite-lights/internal/lights"
)

// GroundQuad is an axis-aligned rectangle lying at height Y.
type GroundQuad struct {
	X0, X1 float64
	Z0, Z1 float64
	Y      float64
	Color  lights.Color
}

// brokenLineRepeats is how many dash periods fit along the road.
const brokenLineRepeats = 100

// RoadLayout builds the static road geometry: the ground plane, the island
// between the two roadways, shoulder lines on each roadway edge and broken
// lines between lanes. Quads span from the horizon to 50 units past the
// near end, like the road plane they decorate.
func RoadLayout(o lights.Options) []GroundQuad {
	far := -o.Length - 25
	near := 25.0
	laneWidth := o.LaneWidth()
	half := o.RoadWidth/2 + o.IslandWidth/2

	quads := []GroundQuad{
		{X0: -half - o.RoadWidth/2 - 5, X1: half + o.RoadWidth/2 + 5, Z0: far, Z1: near, Color: o.Colors.RoadColor},
		{X0: -o.IslandWidth / 2, X1: o.IslandWidth / 2, Z0: far, Z1: near, Y: 0.001, Color: o.Colors.IslandColor},
	}

	shoulder := laneWidth * o.ShoulderLinesWidthPercentage
	broken := laneWidth * o.BrokenLinesWidthPercentage
	period := (o.Length + 50) / brokenLineRepeats
	dash := period * o.BrokenLinesLengthPercentage

	for _, center := range []float64{-half, half} {
		left := center - o.RoadWidth/2
		right := center + o.RoadWidth/2
		quads = append(quads,
			GroundQuad{X0: left, X1: left + shoulder, Z0: far, Z1: near, Y: 0.002, Color: o.Colors.ShoulderLines},
			GroundQuad{X0: right - shoulder, X1: right, Z0: far, Z1: near, Y: 0.002, Color: o.Colors.ShoulderLines},
		)
		if dash <= 0 || broken <= 0 {
			continue
		}
		for lane := 1; lane < o.LanesPerRoad; lane++ {
			x := left + float64(lane)*laneWidth
			for k := 0; k < brokenLineRepeats; k++ {
				z1 := near - float64(k)*period
				quads = append(quads, GroundQuad{
					X0: x - broken/2, X1: x + broken/2,
					Z0: z1 - dash, Z1: z1,
					Y:     0.002,
					Color: o.Colors.BrokenLines,
				})
			}
		}
	}
	return quads
}

// ClipZ trims the quad to end at maxZ. ok is false when nothing remains.
func (q GroundQuad) ClipZ(maxZ float64) (GroundQuad, bool) {
	if q.Z0 >= maxZ {
		return q, false
	}
	q.Z1 = math.Min(q.Z1, maxZ)
	return q, true
}
