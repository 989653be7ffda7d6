//go:build ebiten

package render

import (
	"fmt"
	"image"
	"image/color"

	"infinite-lights/internal/core"
	"infinite-lights/internal/lights"
	"infinite-lights/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// tubeSegments matches the tube's tubular segment count closely enough for
// the fade to read as a gradient.
const tubeSegments = 16

// Renderer draws scene frames with ebiten.
type Renderer struct {
	cam   *Camera
	road  []GroundQuad
	bg    color.RGBA
	bloom *Bloom

	target *ebiten.Image
	white  *ebiten.Image

	batch    Batch
	spine    []SpinePoint
	vertices []ebiten.Vertex
}

// NewRenderer prepares the static road geometry and, when bloom is set, the
// post-processing shader.
func NewRenderer(opts lights.Options, size core.Size, bloom bool) (*Renderer, error) {
	r := &Renderer{
		cam:  NewCamera(opts.FOV, size),
		road: RoadLayout(opts),
		bg:   opts.Colors.Background.RGBA(),
	}
	if bloom {
		b, err := NewBloom()
		if err != nil {
			return nil, fmt.Errorf("bloom shader: %w", err)
		}
		r.bloom = b
	}
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	return r, nil
}

// Camera exposes the projection state.
func (r *Renderer) Camera() *Camera { return r.cam }

// Resize updates the viewport.
func (r *Renderer) Resize(size core.Size) {
	r.cam.SetViewport(size)
	if r.target != nil && (r.target.Bounds().Dx() != size.W || r.target.Bounds().Dy() != size.H) {
		r.target.Dispose()
		r.target = nil
	}
}

// Draw renders f onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, f scene.Frame) {
	// A remount resets the FOV without reporting a change.
	if f.FOVChanged || (f.FOV > 0 && f.FOV != r.cam.FOV()) {
		r.cam.SetFOV(f.FOV)
	}

	dst := screen
	if r.bloom != nil {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		if r.target == nil {
			r.target = ebiten.NewImage(w, h)
		}
		dst = r.target
	}
	dst.Fill(r.bg)

	r.batch.Reset()
	for _, q := range r.road {
		r.batch.AddGroundQuad(r.cam, q)
	}
	r.flush(dst, ebiten.BlendSourceOver)

	for _, g := range f.Groups {
		if g.Name != lights.GroupSticks {
			continue
		}
		for i := 0; i < g.Buffer.Count; i++ {
			r.batch.AddStick(r.cam, LightStick(g, i), g.Buffer.Colors.At(i))
		}
	}
	r.flush(dst, ebiten.BlendSourceOver)

	for _, g := range f.Groups {
		if g.Name == lights.GroupSticks {
			continue
		}
		for i := 0; i < g.Buffer.Count; i++ {
			r.spine = CarLightSpine(r.spine[:0], g, i, tubeSegments)
			if !r.batch.Room(2 * len(r.spine)) {
				r.flush(dst, ebiten.BlendLighter)
			}
			r.batch.AddRibbon(r.cam, r.spine, g.Buffer.Colors.At(i))
		}
	}
	r.flush(dst, ebiten.BlendLighter)

	if r.bloom != nil {
		r.bloom.Apply(screen, r.target)
	}
}

func (r *Renderer) flush(dst *ebiten.Image, blend ebiten.Blend) {
	if len(r.batch.Indices) == 0 {
		r.batch.Reset()
		return
	}
	r.vertices = r.vertices[:0]
	for _, v := range r.batch.Vertices {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: 1.5, SrcY: 1.5,
			ColorR: v.R, ColorG: v.G, ColorB: v.B, ColorA: v.A,
		})
	}
	op := &ebiten.DrawTrianglesOptions{Blend: blend, AntiAlias: true}
	dst.DrawTriangles(r.vertices, r.batch.Indices, r.white, op)
	r.batch.Reset()
}
