package fractal

import "image/color"

var palettes = map[ShapeKind][]color.RGBA{
	Cube: {
		{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff},
		{R: 0x29, G: 0x79, B: 0xff, A: 0xff},
		{R: 0x7c, G: 0x4d, B: 0xff, A: 0xff},
		{R: 0xe0, G: 0x40, B: 0xfb, A: 0xff},
		{R: 0xff, G: 0x40, B: 0x81, A: 0xff},
	},
	Tetrahedron: {
		{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff},
		{R: 0xff, G: 0xb3, B: 0x00, A: 0xff},
		{R: 0xff, G: 0x6f, B: 0x00, A: 0xff},
		{R: 0xf4, G: 0x51, B: 0x1e, A: 0xff},
		{R: 0xd8, G: 0x1b, B: 0x60, A: 0xff},
		{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	},
	TorusRing: {
		{R: 0x69, G: 0xf0, B: 0xae, A: 0xff},
		{R: 0x00, G: 0xe6, B: 0x76, A: 0xff},
		{R: 0x1d, G: 0xe9, B: 0xb6, A: 0xff},
		{R: 0x00, G: 0xb8, B: 0xd4, A: 0xff},
		{R: 0x29, G: 0x62, B: 0xff, A: 0xff},
	},
}

// PaletteFor returns a copy of the palette shared by every tree of kind.
func PaletteFor(kind ShapeKind) []color.RGBA {
	return append([]color.RGBA(nil), palettes[kind]...)
}

// ColorIndex maps a node's level (maxDepth - depthRemaining) onto a palette
// of paletteSize entries, clamping to the last entry.
func ColorIndex(maxDepth, depthRemaining, paletteSize int) int {
	idx := maxDepth - depthRemaining
	if idx < 0 || paletteSize <= 0 {
		return 0
	}
	if idx > paletteSize-1 {
		return paletteSize - 1
	}
	return idx
}
