package render

import (
	"math"
	"testing"

	"fractal-gallery/internal/fractal"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireframeCube(t *testing.T) {
	tree, err := fractal.Generate(fractal.Cube, mgl64.Vec3{1, 1, 1}, 2, 0)
	require.NoError(t, err)
	segs := Wireframe(fractal.Cube, tree.Root())
	require.Len(t, segs, 12)
	for _, s := range segs {
		assert.InDelta(t, 2, s.B.Sub(s.A).Len(), 1e-12)
		for _, p := range []mgl64.Vec3{s.A, s.B} {
			for _, c := range p {
				assert.True(t, c == 0 || c == 2, "corner %v", p)
			}
		}
	}
}

func TestWireframeTetrahedron(t *testing.T) {
	tree, err := fractal.Generate(fractal.Tetrahedron, mgl64.Vec3{}, 1, 0)
	require.NoError(t, err)
	segs := Wireframe(fractal.Tetrahedron, tree.Root())
	require.Len(t, segs, 6)
	edge := 2 * math.Sqrt2 / math.Sqrt(3)
	for _, s := range segs {
		assert.InDelta(t, edge, s.B.Sub(s.A).Len(), 1e-9)
	}
}

func TestWireframeTorusRings(t *testing.T) {
	tree, err := fractal.Generate(fractal.TorusRing, mgl64.Vec3{}, 2, 1)
	require.NoError(t, err)
	for i, n := range tree.Nodes {
		segs := Wireframe(fractal.TorusRing, n)
		require.Len(t, segs, 2*RingSegments, "node %d", i)
		inner, outer := n.Size*(1-fractal.TubeRatio), n.Size*(1+fractal.TubeRatio)
		for k, s := range segs {
			want := inner
			if k >= RingSegments {
				want = outer
			}
			assert.InDelta(t, want, s.A.Sub(n.Position).Len(), 1e-9)
		}
		// Each ring closes on itself.
		assert.Less(t, segs[RingSegments-1].B.Sub(segs[0].A).Len(), 1e-9)
	}
}

func TestVisibleLevel(t *testing.T) {
	tree, err := fractal.Generate(fractal.Tetrahedron, mgl64.Vec3{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, VisibleLevel(tree, -2))
	assert.Equal(t, 2, VisibleLevel(tree, 2))
	assert.Equal(t, 3, VisibleLevel(tree, 9))
	assert.Greater(t, Fit(tree), float32(0))
}

func TestLegendPixels(t *testing.T) {
	palette := fractal.PaletteFor(fractal.Cube)
	buf := LegendPixels(palette, 1)
	require.Len(t, buf, 4*len(palette))
	for i, c := range palette {
		px := buf[4*i : 4*i+4]
		if i <= 1 {
			assert.Equal(t, []byte{c.R, c.G, c.B, c.A}, px, "level %d", i)
			continue
		}
		assert.Equal(t, []byte{0, 0, 0, 0}, px, "hidden level %d", i)
	}
	assert.Len(t, LegendPixels(palette, 99), 4*len(palette))
	assert.Empty(t, LegendPixels(nil, 0))
}
