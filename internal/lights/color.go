package lights

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"infinite-lights/pkg/core"

	"gopkg.in/yaml.v3"
)

// Color is a packed 0xRRGGBB value.
type Color uint32

// RGB returns the channels scaled to [0, 1].
func (c Color) RGB() (r, g, b float64) {
	return float64(c>>16&0xff) / 255, float64(c>>8&0xff) / 255, float64(c&0xff) / 255
}

// RGBA converts c to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

func (c Color) String() string { return fmt.Sprintf("0x%06x", uint32(c)) }

// ParseColor accepts "0xRRGGBB", "#RRGGBB" or a decimal integer.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if n > 0xffffff {
		return 0, fmt.Errorf("color %q exceeds 0xffffff", s)
	}
	return Color(n), nil
}

// UnmarshalYAML accepts an integer or a hex string.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as a hex string.
func (c Color) MarshalYAML() (any, error) { return c.String(), nil }

// Palette is one color or a set of colors to pick from.
type Palette []Color

// Pick returns a uniformly chosen color. A single-color palette returns its
// color without consuming randomness, whether it was configured as a scalar
// or as a one-entry list. This differs from pickers that skip the draw only
// for a bare scalar: there a one-entry list still consumes a draw, so the
// same seed yields a shifted sequence after it.
// Picking from an empty palette is a caller error and panics.
func (p Palette) Pick(src core.Source) Color {
	switch len(p) {
	case 0:
		panic("lights: Pick from empty palette")
	case 1:
		return p[0]
	}
	idx := int(src.Float64() * float64(len(p)))
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return p[idx]
}

// UnmarshalYAML accepts a single color or a sequence of colors.
func (p *Palette) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var c Color
		if err := node.Decode(&c); err != nil {
			return err
		}
		*p = Palette{c}
		return nil
	}
	var colors []Color
	if err := node.Decode(&colors); err != nil {
		return err
	}
	*p = colors
	return nil
}

// MarshalYAML writes a single-color palette as a scalar.
func (p Palette) MarshalYAML() (any, error) {
	if len(p) == 1 {
		return p[0].String(), nil
	}
	return []Color(p), nil
}
