//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"infinite-lights/internal/core"
	"infinite-lights/internal/render"
	"infinite-lights/internal/scene"
	"infinite-lights/internal/ui"
	pcore "infinite-lights/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the parameter panel width in pixels.
const hudWidth = 220

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	scene    *scene.Scene
	renderer *render.Renderer
	hud      *ui.HUD
	overlay  *ui.Overlay

	clock   *core.Clock
	pointer PointerTracker
	blocked bool

	size  core.Size
	frame scene.Frame
	seed  int64
}

// New mounts sc with seed and prepares the renderer for the configured
// window.
func New(sc *scene.Scene, cfg *Config, seed int64) (*Game, error) {
	size := core.Size{W: cfg.Width, H: cfg.Height}
	r, err := render.NewRenderer(sc.Options(), size, cfg.Bloom)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g := &Game{
		scene:    sc,
		renderer: r,
		overlay:  ui.NewOverlay(),
		clock:    core.NewClock(core.DefaultMaxDelta),
		size:     size,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sc, "Infinite Lights", hudWidth)
	}
	g.Reset(seed)
	return g, nil
}

// Reset regenerates every light from seed and restarts the clock.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Mount(pcore.NewRNG(seed))
	g.clock.Reset()
	g.pointer.Release()
	g.blocked = false
}

// Update handles input and advances the animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
		log.Printf("remounted with seed %d", g.seed)
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud.Update(g.size.W) {
		g.blocked = true
	}

	pressed, inside := g.pointerState()
	if !pressed {
		g.blocked = false
	}
	g.pointer.Observe(pressed && !g.blocked, inside, g.scene)

	elapsed, delta := g.clock.Tick()
	frame, err := g.scene.Frame(elapsed, delta)
	if err != nil {
		return fmt.Errorf("failed to advance scene: %w", err)
	}
	g.frame = frame
	return nil
}

// pointerState reports whether a mouse button or touch is down and whether
// the pointer is over the window.
func (g *Game) pointerState() (pressed, inside bool) {
	touches := ebiten.AppendTouchIDs(nil)
	if len(touches) > 0 {
		return true, true
	}
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	x, y := ebiten.CursorPosition()
	inside = ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.size.W && y < g.size.H
	return pressed, inside
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.frame)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.frame, g.renderer.Camera())
	}
	g.hud.Draw(screen)
}

// Layout follows the window size so the road fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if size != g.size && size.W > 0 && size.H > 0 {
		g.size = size
		g.renderer.Resize(size)
	}
	return g.size.W, g.size.H
}
