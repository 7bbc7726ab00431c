package ui

import "image"

const (
	barHeight     = 28
	barPadding    = 6
	barButtonPad  = 8
	barButtonGap  = 4
	barGlyphWidth = 7
)

// BarHeight is the height of the gallery bar in pixels.
const BarHeight = barHeight

// BarButtons lays out one button per label left to right along a bar whose
// top edge is at y. Buttons that do not fit in width are dropped.
func BarButtons(labels []string, width, y int) []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(labels))
	x := barPadding
	for _, label := range labels {
		w := len([]rune(label))*barGlyphWidth + 2*barButtonPad
		if x+w > width-barPadding {
			break
		}
		rects = append(rects, image.Rect(x, y+barPadding/2, x+w, y+barHeight-barPadding/2))
		x += w + barButtonGap
	}
	return rects
}

// HitButton returns the index of the rectangle containing p, or -1.
func HitButton(rects []image.Rectangle, p image.Point) int {
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}
