package app

import "infinite-lights/internal/anim"

// PointerTracker turns polled pointer state into Accelerate/Decelerate
// edges. A press held while the pointer leaves the window counts as a
// release.
type PointerTracker struct {
	held bool
}

// Observe feeds one frame of pointer state. pressed reports any button or
// touch down and inside reports whether the pointer is within the window.
func (p *PointerTracker) Observe(pressed, inside bool, t anim.Trigger) {
	down := pressed && inside
	switch {
	case down && !p.held:
		p.held = true
		t.Accelerate()
	case !down && p.held:
		p.held = false
		t.Decelerate()
	}
}

// Held reports whether the tracker considers the pointer pressed.
func (p *PointerTracker) Held() bool { return p.held }

// Release forgets a held press without firing.
func (p *PointerTracker) Release() { p.held = false }
