package render

import (
	"math"

	"infinite-lights/internal/lights"
)

// MaxBatchVertices is the most vertices a batch can address with 16-bit
// indices.
const MaxBatchVertices = math.MaxUint16

// minHalfWidth keeps distant streaks at least one pixel wide.
const minHalfWidth = 0.5

// Vertex is a colored screen-space vertex.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Batch accumulates triangles for one draw call.
type Batch struct {
	Vertices []Vertex
	Indices  []uint16
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// Room reports whether n more vertices fit.
func (b *Batch) Room(n int) bool { return len(b.Vertices)+n <= MaxBatchVertices }

func rgba(c lights.Color, alpha float64) (r, g, b, a float32) {
	fr, fg, fb := c.RGB()
	return float32(fr), float32(fg), float32(fb), float32(alpha)
}

// AddGroundQuad projects and appends a ground rectangle. Quads behind the
// camera are clipped to the near plane first.
func (b *Batch) AddGroundQuad(cam *Camera, q GroundQuad) bool {
	q, ok := q.ClipZ(cam.FrontZ())
	if !ok {
		return false
	}
	corners := [4]Vec3{
		{q.X0, q.Y, q.Z0}, {q.X1, q.Y, q.Z0},
		{q.X1, q.Y, q.Z1}, {q.X0, q.Y, q.Z1},
	}
	r, g, bl, a := rgba(q.Color, 1)
	return b.addProjectedQuad(cam, corners, r, g, bl, a)
}

// AddStick projects and appends an opaque side stick colored with an
// instance's aColor components.
func (b *Batch) AddStick(cam *Camera, s StickQuad, rgb []float32) bool {
	front := cam.FrontZ()
	if s.Z0 >= front {
		return false
	}
	z1 := math.Min(s.Z1, front)
	corners := [4]Vec3{
		{s.X, 0, s.Z0}, {s.X, 0, z1},
		{s.X, s.Height, z1}, {s.X, s.Height, s.Z0},
	}
	return b.addProjectedQuad(cam, corners, rgb[0], rgb[1], rgb[2], 1)
}

func (b *Batch) addProjectedQuad(cam *Camera, corners [4]Vec3, r, g, bl, a float32) bool {
	if !b.Room(4) {
		return false
	}
	base := uint16(len(b.Vertices))
	for _, p := range corners {
		x, y, _, ok := cam.Project(p)
		if !ok {
			b.Vertices = b.Vertices[:base]
			return false
		}
		b.Vertices = append(b.Vertices, Vertex{X: float32(x), Y: float32(y), R: r, G: g, B: bl, A: a})
	}
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	return true
}

type screenPoint struct {
	x, y, half, alpha float64
}

// AddRibbon appends a screen-facing strip along spine and returns how many
// strips it emitted. Samples outside the camera range break the strip.
// Alpha follows each sample's fade.
func (b *Batch) AddRibbon(cam *Camera, spine []SpinePoint, rgb []float32) int {
	pts := make([]screenPoint, 0, len(spine))
	drawn := 0

	flush := func() {
		if len(pts) >= 2 && b.Room(2*len(pts)) {
			b.appendStrip(pts, rgb)
			drawn++
		}
		pts = pts[:0]
	}
	for _, sp := range spine {
		x, y, depth, ok := cam.Project(sp.Pos)
		if !ok {
			flush()
			continue
		}
		half := math.Max(sp.Radius*cam.PixelsPerUnit(depth), minHalfWidth)
		pts = append(pts, screenPoint{x, y, half, sp.Alpha})
	}
	flush()
	return drawn
}

func (b *Batch) appendStrip(pts []screenPoint, rgb []float32) {
	base := uint16(len(b.Vertices))
	for i, p := range pts {
		prev, next := pts[max(i-1, 0)], pts[min(i+1, len(pts)-1)]
		dx, dy := next.x-prev.x, next.y-prev.y
		l := math.Hypot(dx, dy)
		nx, ny := 1.0, 0.0
		if l > 1e-9 {
			nx, ny = -dy/l, dx/l
		}
		r, g, bl, a := rgb[0], rgb[1], rgb[2], float32(p.alpha)
		b.Vertices = append(b.Vertices,
			Vertex{X: float32(p.x + nx*p.half), Y: float32(p.y + ny*p.half), R: r, G: g, B: bl, A: a},
			Vertex{X: float32(p.x - nx*p.half), Y: float32(p.y - ny*p.half), R: r, G: g, B: bl, A: a},
		)
	}
	for i := 0; i < len(pts)-1; i++ {
		k := base + uint16(2*i)
		b.Indices = append(b.Indices, k, k+1, k+2, k+1, k+3, k+2)
	}
}
