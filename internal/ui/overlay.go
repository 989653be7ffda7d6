//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"infinite-lights/internal/lights"
	"infinite-lights/internal/render"
	"infinite-lights/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	showStats bool
	showHeads bool

	pixel *ebiten.Image
	spine []render.SpinePoint
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers: 1 for frame stats, 2 for light heads.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeads = !o.showHeads
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, frame scene.Frame, cam *render.Camera) {
	if o.showHeads && cam != nil {
		o.drawHeads(screen, frame, cam)
	}
	if o.showStats {
		o.drawStats(screen, frame)
	}
}

func (o *Overlay) drawStats(screen *ebiten.Image, frame scene.Frame) {
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("speed %.3f  fov %.2f", frame.Speed, frame.FOV),
	}
	for _, g := range frame.Groups {
		lines = append(lines, fmt.Sprintf("%s: %d instances", g.Name, g.Buffer.Count))
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 8, 16+i*14, color.White)
	}
}

// drawHeads marks the head sample of every car light.
func (o *Overlay) drawHeads(screen *ebiten.Image, frame scene.Frame, cam *render.Camera) {
	for _, g := range frame.Groups {
		if g.Name == lights.GroupSticks {
			continue
		}
		for i := 0; i < g.Buffer.Count; i++ {
			o.spine = render.CarLightSpine(o.spine[:0], g, i, 1)
			x, y, _, ok := cam.Project(o.spine[0].Pos)
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(3, 3)
			op.GeoM.Translate(x-1.5, y-1.5)
			op.ColorScale.Scale(0, 1, 0, 1)
			screen.DrawImage(o.pixel, op)
		}
	}
}
