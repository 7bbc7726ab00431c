package fractal

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Node is a single solid in the tree. Position and Orientation are resolved to
// world space.
type Node struct {
	Position    mgl64.Vec3
	Size        float64
	Orientation mgl64.Quat

	// DepthRemaining is 0 for leaves.
	DepthRemaining int
	ColorIndex     int

	// Parent is -1 for the root. Children occupy
	// Nodes[FirstChild : FirstChild+ChildCount].
	Parent     int
	FirstChild int
	ChildCount int
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return n.DepthRemaining == 0 }

// Tree is the arena produced by Generate. It must be treated as read-only;
// regenerating replaces the whole tree.
type Tree struct {
	Kind     ShapeKind
	MaxDepth int
	Nodes    []Node

	palette []color.RGBA
	// levels[d] is the first arena index of depth d; levels[MaxDepth+1] == len(Nodes).
	levels []int
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.Nodes) }

// Root returns the root node.
func (t *Tree) Root() Node { return t.Nodes[0] }

// Children returns the children of node i.
func (t *Tree) Children(i int) []Node {
	n := t.Nodes[i]
	return t.Nodes[n.FirstChild : n.FirstChild+n.ChildCount]
}

// LevelRange returns the arena range [start, end) holding the nodes at depth d
// (0 is the root). Depths outside the tree yield an empty range.
func (t *Tree) LevelRange(d int) (start, end int) {
	if d < 0 || d > t.MaxDepth {
		return 0, 0
	}
	return t.levels[d], t.levels[d+1]
}

// Level returns the nodes at depth d.
func (t *Tree) Level(d int) []Node {
	start, end := t.LevelRange(d)
	return t.Nodes[start:end]
}

// Depth returns the depth of node i below the root.
func (t *Tree) Depth(i int) int { return t.MaxDepth - t.Nodes[i].DepthRemaining }

// Height walks parent links from every leaf and returns the longest
// root-to-leaf path, counted in edges.
func (t *Tree) Height() int {
	height := 0
	for i, n := range t.Nodes {
		if n.ChildCount != 0 {
			continue
		}
		hops := 0
		for p := t.Nodes[i].Parent; p >= 0; p = t.Nodes[p].Parent {
			hops++
		}
		if hops > height {
			height = hops
		}
	}
	return height
}

// Palette returns a copy of the palette used for ColorIndex.
func (t *Tree) Palette() []color.RGBA { return append([]color.RGBA(nil), t.palette...) }

// Color returns the display colour of node i.
func (t *Tree) Color(i int) color.RGBA { return t.palette[t.Nodes[i].ColorIndex] }
