package lights

// constSource returns the same value for every draw.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// seqSource cycles through a fixed list of values and counts draws.
type seqSource struct {
	vals  []float64
	draws int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.draws%len(s.vals)]
	s.draws++
	return v
}
