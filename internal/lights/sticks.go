package lights

import "infinite-lights/pkg/core"

// StickStep returns the nominal spacing between side sticks. It divides by
// TotalSideLightSticks-1 without guarding, so one stick yields +Inf.
func StickStep(o Options) float64 {
	return o.Length / float64(o.TotalSideLightSticks-1)
}

// GenerateLightSticks builds the side-stick instance buffer: one offset
// (stride 1), width/height (stride 2) and one color (stride 3) per stick.
//
// Offsets start at (i-1)*2*step, so the first stick sits slightly behind
// the origin. Colors are drawn once per stick.
func GenerateLightSticks(o Options, src core.Source) *InstanceBuffer {
	total := o.TotalSideLightSticks
	if total < 0 {
		total = 0
	}
	buf := newInstanceBuffer(total, 1, 2, AttrMetric)
	step := StickStep(o)

	for i := 0; i < total; i++ {
		buf.Offsets.Data = append(buf.Offsets.Data, float32(float64(i-1)*step*2+step*src.Float64()))
	}
	for i := 0; i < total; i++ {
		width := float32(o.LightStickWidth.Draw(src))
		height := float32(o.LightStickHeight.Draw(src))
		buf.Metrics.Data = append(buf.Metrics.Data, width, height)
	}
	for i := 0; i < total; i++ {
		r, g, b := o.Colors.Sticks.Pick(src).RGB()
		buf.Colors.Data = append(buf.Colors.Data, float32(r), float32(g), float32(b))
	}
	return buf
}
