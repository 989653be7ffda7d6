//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// bloomShaderSource adds a thresholded box blur of the bright pixels on top
// of the source image.
var bloomShaderSource = []byte(`//kage:unit pixels

package main

var Threshold float
var Intensity float
var Spread float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	base := imageSrc0At(srcPos)
	glow := vec4(0)
	for i := -4; i <= 4; i++ {
		for j := -4; j <= 4; j++ {
			s := imageSrc0At(srcPos + vec2(float(i), float(j))*Spread)
			l := dot(s.rgb, vec3(0.2126, 0.7152, 0.0722))
			glow += s * step(Threshold, l)
		}
	}
	return base + glow/81*Intensity
}
`)

// Bloom is the post-processing pass applied after the scene is drawn.
type Bloom struct {
	shader    *ebiten.Shader
	Threshold float32
	Intensity float32
	Spread    float32
}

// NewBloom compiles the bloom shader with the default settings.
func NewBloom() (*Bloom, error) {
	s, err := ebiten.NewShader(bloomShaderSource)
	if err != nil {
		return nil, err
	}
	return &Bloom{shader: s, Threshold: 0.2, Intensity: 1, Spread: 2}, nil
}

// Apply draws src onto dst with the glow added.
func (b *Bloom) Apply(dst, src *ebiten.Image) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Threshold": b.Threshold,
		"Intensity": b.Intensity,
		"Spread":    b.Spread,
	}
	dst.DrawRectShader(w, h, b.shader, op)
}
