package render

import (
	"math"

	"fractal-gallery/internal/fractal"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// RingSegments is the number of straight segments approximating a circle.
const RingSegments = 24

// Segment is a world-space line.
type Segment struct {
	A, B mgl64.Vec3
}

var tetraEdges = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}, {3, 1}}

// Wireframe returns the edges drawn for node n of a tree of kind: 12 for a
// cube of edge n.Size, 6 for a tetrahedron of circumradius n.Size and two
// rings (inner and outer equator) for a torus of major radius n.Size.
func Wireframe(kind fractal.ShapeKind, n fractal.Node) []Segment {
	place := func(local mgl64.Vec3) mgl64.Vec3 {
		return n.Position.Add(n.Orientation.Rotate(local))
	}
	switch kind {
	case fractal.Cube:
		h := n.Size / 2
		var corners [8]mgl64.Vec3
		for i := range corners {
			local := mgl64.Vec3{-h, -h, -h}
			for axis := 0; axis < 3; axis++ {
				if i&(1<<axis) != 0 {
					local[axis] = h
				}
			}
			corners[i] = place(local)
		}
		out := make([]Segment, 0, 12)
		for i := range corners {
			for axis := 0; axis < 3; axis++ {
				j := i | 1<<axis
				if j != i {
					out = append(out, Segment{corners[i], corners[j]})
				}
			}
		}
		return out
	case fractal.Tetrahedron:
		var v [4]mgl64.Vec3
		for i, unit := range fractal.TetraVertices() {
			v[i] = place(unit.Mul(n.Size))
		}
		out := make([]Segment, 0, len(tetraEdges))
		for _, e := range tetraEdges {
			out = append(out, Segment{v[e[0]], v[e[1]]})
		}
		return out
	case fractal.TorusRing:
		tube := n.Size * fractal.TubeRatio
		out := make([]Segment, 0, 2*RingSegments)
		for _, r := range []float64{n.Size - tube, n.Size + tube} {
			prev := place(mgl64.Vec3{r, 0, 0})
			for k := 1; k <= RingSegments; k++ {
				a := 2 * math.Pi * float64(k) / RingSegments
				next := place(mgl64.Vec3{r * math.Cos(a), r * math.Sin(a), 0})
				out = append(out, Segment{prev, next})
				prev = next
			}
		}
		return out
	}
	return nil
}

// VisibleLevel is the tree level drawn while revealed levels are shown:
// the deepest revealed level, never past the leaves.
func VisibleLevel(t *fractal.Tree, revealed int) int {
	if revealed < 0 {
		return 0
	}
	if revealed > t.MaxDepth {
		return t.MaxDepth
	}
	return revealed
}

// Fit returns a camera distance that frames a tree rooted at the origin.
func Fit(t *fractal.Tree) float32 {
	r := t.Root().Size
	if t.Kind == fractal.TorusRing {
		r *= 1 + 2*fractal.TubeRatio
	}
	return float32(r * 3)
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
