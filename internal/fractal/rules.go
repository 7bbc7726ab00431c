package fractal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TubeRatio is the tube radius of a torus node relative to its major radius.
const TubeRatio = 0.5

// Rule is the per-shape subdivision step. Subdivide positions, sizes and
// orients the children of parent; depth, colour and arena links are filled in
// by Generate.
type Rule interface {
	Branching() int
	Subdivide(parent Node) []Node
}

var rules = map[ShapeKind]Rule{
	Cube:        mengerRule{},
	Tetrahedron: sierpinskiRule{},
	TorusRing:   torusRule{},
}

// RuleFor returns the subdivision rule of kind.
func RuleFor(kind ShapeKind) (Rule, bool) {
	r, ok := rules[kind]
	return r, ok
}

type mengerRule struct{}

func (mengerRule) Branching() int { return 20 }

// Subdivide keeps every cell of the 3x3x3 partition except the volume centre
// and the six face centres, i.e. cells with |x|+|y|+|z| > 1.
func (mengerRule) Subdivide(p Node) []Node {
	step := p.Size / 3
	out := make([]Node, 0, 20)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if abs(x)+abs(y)+abs(z) <= 1 {
					continue
				}
				off := mgl64.Vec3{float64(x), float64(y), float64(z)}.Mul(step)
				out = append(out, Node{
					Position:    p.Position.Add(p.Orientation.Rotate(off)),
					Size:        step,
					Orientation: p.Orientation,
				})
			}
		}
	}
	return out
}

// tetraVertices are the vertices of a regular tetrahedron with unit
// circumradius: the apex on +Y and three base vertices 120 degrees apart.
var tetraVertices = func() [4]mgl64.Vec3 {
	v := [4]mgl64.Vec3{{0, 1, 0}}
	r := 2 * math.Sqrt2 / 3
	for i := 0; i < 3; i++ {
		a := float64(i) * 2 * math.Pi / 3
		v[i+1] = mgl64.Vec3{r * math.Cos(a), -1.0 / 3, r * math.Sin(a)}
	}
	return v
}()

// TetraVertices returns the unit-circumradius tetrahedron used by the
// Sierpinski rule, apex first.
func TetraVertices() [4]mgl64.Vec3 { return tetraVertices }

type sierpinskiRule struct{}

func (sierpinskiRule) Branching() int { return 4 }

func (sierpinskiRule) Subdivide(p Node) []Node {
	half := p.Size / 2
	out := make([]Node, 0, 4)
	for _, v := range tetraVertices {
		out = append(out, Node{
			Position:    p.Position.Add(p.Orientation.Rotate(v.Mul(half))),
			Size:        half,
			Orientation: p.Orientation,
		})
	}
	return out
}

type torusRule struct{}

func (torusRule) Branching() int { return 4 }

// Subdivide places four tori on the parent's major circle at 90 degree steps,
// each with a major radius equal to the parent's tube radius. Every child is
// turned by the Euler angles (pi/2, pi/2, angle) in XYZ order relative to its
// parent. The angle term spins the child about its own axis, so all four
// children share one ring normal: the parent's local X axis.
func (torusRule) Subdivide(p Node) []Node {
	tube := p.Size * TubeRatio
	out := make([]Node, 0, 4)
	for k := 0; k < 4; k++ {
		a := float64(k) * math.Pi / 2
		local := mgl64.Vec3{p.Size * math.Cos(a), p.Size * math.Sin(a), 0}
		turn := mgl64.AnglesToQuat(math.Pi/2, math.Pi/2, a, mgl64.XYZ)
		out = append(out, Node{
			Position:    p.Position.Add(p.Orientation.Rotate(local)),
			Size:        tube,
			Orientation: p.Orientation.Mul(turn).Normalize(),
		})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
