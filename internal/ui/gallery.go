//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	barBG     = color.RGBA{R: 10, G: 10, B: 14, A: 255}
	activeBG  = color.RGBA{R: 70, G: 90, B: 140, A: 255}
	digitKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9}
)

// GalleryBar draws one button per scene along the bottom of the window and
// reports which scene the user picked.
type GalleryBar struct {
	labels []string
	active int
	rects  []image.Rectangle
	top    int
	pixel  *ebiten.Image
}

// NewGalleryBar lays out buttons for labels in a bar of the given width whose
// top edge is at top.
func NewGalleryBar(labels []string, width, top int) *GalleryBar {
	g := &GalleryBar{labels: append([]string(nil), labels...), top: top}
	for i := range labels {
		if i < len(digitKeys) {
			g.labels[i] = strconv.Itoa(i+1) + " " + labels[i]
		}
	}
	g.rects = BarButtons(g.labels, width, top)
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	return g
}

// SetActive highlights button i.
func (g *GalleryBar) SetActive(i int) { g.active = i }

// Update returns the index of a newly selected scene, or -1.
func (g *GalleryBar) Update() int {
	for i, k := range digitKeys {
		if i < len(g.labels) && inpututil.IsKeyJustPressed(k) {
			return i
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return HitButton(g.rects, image.Pt(x, y))
	}
	return -1
}

// Draw paints the bar across screen.
func (g *GalleryBar) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	fillRect(screen, g.pixel, image.Rect(0, g.top, w, g.top+BarHeight), barBG)
	face := basicfont.Face7x13
	for i, r := range g.rects {
		bg, fg := buttonBG, buttonFG
		if i == g.active {
			bg = activeBG
		}
		fillRect(screen, g.pixel, r, bg)
		b := text.BoundString(face, g.labels[i])
		y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
		text.Draw(screen, g.labels[i], face, r.Min.X+barButtonPad, y, fg)
	}
}
