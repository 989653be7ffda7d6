package lights

import "infinite-lights/pkg/core"

// Group names used by the scene.
const (
	GroupLeftCars  = "leftCars"
	GroupRightCars = "rightCars"
	GroupSticks    = "sticks"
)

// CarGroup describes one roadway's worth of car lights.
type CarGroup struct {
	Name      string
	Palette   Palette
	Speed     Value
	PositionX float64
	Fade      [2]float64
}

// LeftCars returns the roadway moving away from the camera.
func LeftCars(o Options) CarGroup {
	return CarGroup{
		Name:      GroupLeftCars,
		Palette:   o.Colors.LeftCars,
		Speed:     o.MovingAwaySpeed,
		PositionX: -o.RoadWidth/2 - o.IslandWidth/2,
		Fade:      [2]float64{1, o.CarLightsFade},
	}
}

// RightCars returns the roadway moving toward the camera.
func RightCars(o Options) CarGroup {
	return CarGroup{
		Name:      GroupRightCars,
		Palette:   o.Colors.RightCars,
		Speed:     o.MovingCloserSpeed,
		PositionX: o.RoadWidth/2 + o.IslandWidth/2,
		Fade:      [2]float64{1, o.CarLightsFade},
	}
}

// carLane maps a pair index to its lane. Only the first three lanes are
// used regardless of LanesPerRoad.
func carLane(i int) int { return i % 3 }

// GenerateCarLights builds the instance buffer for one car group. Lights
// are emitted in pairs straddling a lane center, so the buffer holds
// 2*LightPairsPerRoadWay instances with stride 3 for every attribute.
//
// Draws happen in three passes (offsets, metrics, colors) so a seeded source
// yields the same layout as the reference scene.
func GenerateCarLights(o Options, g CarGroup, src core.Source) *InstanceBuffer {
	pairs := o.LightPairsPerRoadWay
	if pairs < 0 {
		pairs = 0
	}
	buf := newInstanceBuffer(pairs*2, 3, 3, AttrMetrics)
	laneWidth := o.LaneWidth()

	for i := 0; i < pairs; i++ {
		laneX := float64(carLane(i))*laneWidth - o.RoadWidth/2 + laneWidth/2
		carWidth := o.CarWidthPercentage.Draw(src) * laneWidth
		laneX += o.CarShiftX.Draw(src) * laneWidth

		y := float32(o.CarFloorSeparation.Draw(src) * 1.3)
		z := float32(-Fixed(o.Length).Draw(src))

		buf.Offsets.Data = append(buf.Offsets.Data,
			float32(laneX-carWidth/2), y, z,
			float32(laneX+carWidth/2), y, z,
		)
	}

	for i := 0; i < pairs; i++ {
		radius := float32(o.CarLightsRadius.Draw(src))
		length := float32(o.CarLightsLength.Draw(src))
		speed := float32(g.Speed.Draw(src))
		buf.Metrics.Data = append(buf.Metrics.Data, radius, length, speed, radius, length, speed)
	}

	for i := 0; i < pairs; i++ {
		r, gr, b := g.Palette.Pick(src).RGB()
		buf.Colors.Data = append(buf.Colors.Data,
			float32(r), float32(gr), float32(b),
			float32(r), float32(gr), float32(b),
		)
	}
	return buf
}

