package lights

import (
	"fmt"
	"strconv"

	"infinite-lights/pkg/core"

	"gopkg.in/yaml.v3"
)

// Value is either Fixed(max) or Range(min, max). Scalars are upper bounds,
// not constants: drawing Fixed(5) yields a real in [0, 5).
type Value struct {
	min, max float64
	ranged   bool
}

// Fixed returns a scalar value drawn uniformly from [0, max).
func Fixed(max float64) Value { return Value{max: max} }

// Range returns an interval value drawn uniformly from [min, max).
func Range(min, max float64) Value { return Value{min: min, max: max, ranged: true} }

// IsRange reports whether v was configured as a [min, max] interval.
func (v Value) IsRange() bool { return v.ranged }

// Bounds returns the interval draws fall into. Fixed values report (0, max).
func (v Value) Bounds() (lo, hi float64) {
	if v.ranged {
		return v.min, v.max
	}
	return 0, v.max
}

// Draw samples v using src.
func (v Value) Draw(src core.Source) float64 {
	if v.ranged {
		return src.Float64()*(v.max-v.min) + v.min
	}
	return src.Float64() * v.max
}

// Valid reports whether a range has min <= max. Scalars are always valid.
func (v Value) Valid() bool { return !v.ranged || v.min <= v.max }

func (v Value) String() string {
	if v.ranged {
		return "[" + formatFloat(v.min) + ", " + formatFloat(v.max) + "]"
	}
	return formatFloat(v.max)
}

// UnmarshalYAML accepts a scalar or a two-element sequence.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: value must be a number: %w", node.Line, err)
		}
		*v = Fixed(f)
		return nil
	case yaml.SequenceNode:
		var pair []float64
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("line %d: range must hold numbers: %w", node.Line, err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: range must have exactly 2 elements, got %d", node.Line, len(pair))
		}
		*v = Range(pair[0], pair[1])
		return nil
	default:
		return fmt.Errorf("line %d: expected number or [min, max]", node.Line)
	}
}

// MarshalYAML writes scalars as numbers and ranges as flow sequences.
func (v Value) MarshalYAML() (any, error) {
	if !v.ranged {
		return v.max, nil
	}
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range []float64{v.min, v.max} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(f)})
	}
	return node, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
