package render

import (
	"image/color"

	"fractal-gallery/internal/core"
)

// LegendPixels returns a len(palette)*1 RGBA strip with one pixel per level
// colour, root first. Levels deeper than revealed are transparent.
func LegendPixels(palette []color.RGBA, revealed int) []byte {
	cells := make([]uint8, len(palette))
	for i := range cells {
		cells[i] = uint8(i)
	}
	buf := make([]byte, 4*len(cells))
	core.FillPaletteRGBA(buf, cells, palette)
	if hidden := max(revealed+1, 0); hidden < len(cells) {
		clear(buf[4*hidden:])
	}
	return buf
}
