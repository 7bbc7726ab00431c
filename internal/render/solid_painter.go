//go:build ebiten

package render

import (
	"image/color"

	"fractal-gallery/internal/fractal"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// legendCell is the on-screen size of one legend swatch.
const legendCell = 12

// SolidPainter draws the visible level of a tree as projected wireframes,
// with a strip of level colours in the top-left corner.
type SolidPainter struct {
	StrokeWidth float32

	legend *ebiten.Image
}

// NewSolidPainter returns a painter with hairline strokes.
func NewSolidPainter() *SolidPainter {
	return &SolidPainter{StrokeWidth: 1}
}

func (sp *SolidPainter) drawLegend(dst *ebiten.Image, palette []color.RGBA, level int) {
	if len(palette) == 0 {
		return
	}
	if sp.legend == nil || sp.legend.Bounds().Dx() != len(palette) {
		if sp.legend != nil {
			sp.legend.Dispose()
		}
		sp.legend = ebiten.NewImage(len(palette), 1)
	}
	sp.legend.WritePixels(LegendPixels(palette, level))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(legendCell, legendCell)
	op.GeoM.Translate(legendCell/2, legendCell/2)
	dst.DrawImage(sp.legend, op)
}

// Draw paints level of t spun by spin radians about the vertical axis.
func (sp *SolidPainter) Draw(dst *ebiten.Image, t *fractal.Tree, level int, spin float64, cam *Orbit) {
	b := dst.Bounds()
	proj := cam.Projector(mgl32.HomogRotate3DY(float32(spin)), b.Dx(), b.Dy())
	start, end := t.LevelRange(level)
	for i := start; i < end; i++ {
		clr := t.Color(i)
		for _, seg := range Wireframe(t.Kind, t.Nodes[i]) {
			sp.stroke(dst, proj, seg, clr)
		}
	}
	sp.drawLegend(dst, t.Palette(), level)
}

func (sp *SolidPainter) stroke(dst *ebiten.Image, proj Projector, seg Segment, clr color.RGBA) {
	x0, y0, ok0 := proj.Project(vec32(seg.A))
	x1, y1, ok1 := proj.Project(vec32(seg.B))
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(dst, x0, y0, x1, y1, sp.StrokeWidth, clr, true)
}
