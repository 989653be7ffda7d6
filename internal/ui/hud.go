//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"infinite-lights/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	groupColor  = color.RGBA{R: 250, G: 161, B: 227, A: 255}
	hintMessage = "Hold to speed up"
)

// HUD renders the parameter panel along the right edge of the screen.
type HUD struct {
	src      core.ParameterProvider
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls *Controls
	offsetX  int
	title    string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src core.ParameterProvider, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Controls"
	}
	h := &HUD{src: src, width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.controls = NewControls(src, width)
	return h
}

// Contains reports whether screen point (x, y) lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || h.width <= 0 || h.panel == nil {
		return false
	}
	return x >= h.offsetX && y >= 0 && y < h.panel.Bounds().Dy()
}

// Update refreshes the cached snapshot and handles panel clicks. It reports
// whether the click was consumed.
func (h *HUD) Update(screenWidth int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.offsetX = screenWidth - h.width
	h.snapshot = h.src.Parameters()
	h.controls.Refresh(h.snapshot)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return false
	}
	h.controls.Click(mx-h.offsetX, my)
	return true
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	h.drawSnapshot(h.controls.Bottom() + infoSpacing)
	text.Draw(h.panel, hintMessage, basicfont.Face7x13, panelPadding, height-panelPadding, mutedColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls.states {
		st := &h.controls.states[i]
		y := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !st.hasValue {
			valueColor = mutedColor
		}
		bounds := text.BoundString(face, st.value)
		text.Draw(h.panel, st.value, face, st.minusRect.Min.X-buttonGap-bounds.Dx(), y, valueColor)

		h.drawButton(st.minusRect, "-", h.controls.canAdjust(st, -1))
		h.drawButton(st.plusRect, "+", h.controls.canAdjust(st, 1))
	}
}

// drawSnapshot lists the read-only groups below the controls.
func (h *HUD) drawSnapshot(y int) {
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		if group.Name == "Controls" {
			continue
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += infoSpacing
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, mutedColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += infoSpacing
		}
		y += infoSpacing / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
