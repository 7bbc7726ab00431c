//go:build ebiten

package render

import (
	"image/color"

	"fractal-gallery/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// gridShaderSource colours a packed 0/1 texture and hides rows that have not
// been revealed yet. Live cells carry 1 in the red channel.
var gridShaderSource = []byte(`//kage:unit pixels

package main

var OnColor vec4
var OffColor vec4
var Revealed float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	row := srcPos.y - imageSrc0Origin().y
	if row >= Revealed {
		return vec4(0)
	}
	return mix(OffColor, OnColor, imageSrc0At(srcPos).r)
}
`)

// GridShader draws a whole automaton history from a static lookup texture
// uploaded once, revealing rows through a uniform instead of re-uploading.
type GridShader struct {
	shader *ebiten.Shader
	tex    *ebiten.Image
	w, h   int
}

// NewGridShader compiles the lookup shader.
func NewGridShader() (*GridShader, error) {
	s, err := ebiten.NewShader(gridShaderSource)
	if err != nil {
		return nil, err
	}
	return &GridShader{shader: s}, nil
}

// Upload replaces the lookup texture with a w*h row-major 0/1 buffer.
func (gs *GridShader) Upload(cells []uint8, w, h int) {
	if len(cells) != w*h {
		return
	}
	if gs.tex == nil || gs.w != w || gs.h != h {
		if gs.tex != nil {
			gs.tex.Dispose()
		}
		gs.tex = ebiten.NewImage(w, h)
		gs.w, gs.h = w, h
	}
	buf := make([]byte, 4*len(cells))
	core.FillBinaryRGBA(buf, cells, color.White, color.Transparent)
	gs.tex.WritePixels(buf)
}

// Draw renders the first revealed rows of the uploaded texture.
func (gs *GridShader) Draw(dst *ebiten.Image, revealed int, on, off color.Color, scale int) {
	if gs.tex == nil {
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Images[0] = gs.tex
	op.Uniforms = map[string]any{
		"OnColor":  colorVec(on),
		"OffColor": colorVec(off),
		"Revealed": float32(revealed),
	}
	dst.DrawRectShader(gs.w, gs.h, gs.shader, op)
}

func colorVec(c color.Color) []float32 {
	r, g, b, a := c.RGBA()
	return []float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
}
