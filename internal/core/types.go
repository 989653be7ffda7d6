package core

// Size describes pixel dimensions of a window or render target.
type Size struct {
	W int
	H int
}

// Aspect returns W/H, or 1 for a degenerate size.
func (s Size) Aspect() float64 {
	if s.W <= 0 || s.H <= 0 {
		return 1
	}
	return float64(s.W) / float64(s.H)
}
