package fractal

import (
	"fmt"
	"math"

	"fractal-gallery/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxNodes bounds the size of a single tree. Requests that would exceed it
// are rejected before any node is built.
const MaxNodes = 1 << 21

// NodeCount returns the number of nodes a tree of kind with maxDepth levels
// holds. Results above MaxNodes are reported as MaxNodes+1.
func NodeCount(kind ShapeKind, maxDepth int) int {
	r, ok := RuleFor(kind)
	if !ok || maxDepth < 0 {
		return 0
	}
	b := r.Branching()
	total, level := 0, 1
	for d := 0; d <= maxDepth; d++ {
		total += level
		if total > MaxNodes {
			return MaxNodes + 1
		}
		level *= b
	}
	return total
}

// Generate builds the tree for kind rooted at rootPosition with the given
// root size and exactly maxDepth levels below the root.
func Generate(kind ShapeKind, rootPosition mgl64.Vec3, rootSize float64, maxDepth int) (*Tree, error) {
	rule, ok := RuleFor(kind)
	if !ok {
		return nil, fmt.Errorf("fractal: shape %v: %w", kind, core.ErrInvalidParameter)
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("fractal: depth %d: %w", maxDepth, core.ErrInvalidParameter)
	}
	if !(rootSize > 0) || math.IsInf(rootSize, 0) {
		return nil, fmt.Errorf("fractal: size %v: %w", rootSize, core.ErrInvalidParameter)
	}
	if !finite(rootPosition) {
		return nil, fmt.Errorf("fractal: position %v: %w", rootPosition, core.ErrInvalidParameter)
	}
	total := NodeCount(kind, maxDepth)
	if total > MaxNodes {
		return nil, fmt.Errorf("fractal: %v depth %d exceeds %d nodes: %w", kind, maxDepth, MaxNodes, core.ErrInvalidParameter)
	}

	palette := PaletteFor(kind)
	t := &Tree{
		Kind:     kind,
		MaxDepth: maxDepth,
		Nodes:    make([]Node, 1, total),
		palette:  palette,
		levels:   make([]int, 0, maxDepth+2),
	}
	t.Nodes[0] = Node{
		Position:       rootPosition,
		Size:           rootSize,
		Orientation:    mgl64.QuatIdent(),
		DepthRemaining: maxDepth,
		ColorIndex:     ColorIndex(maxDepth, maxDepth, len(palette)),
		Parent:         -1,
	}

	// Nodes are appended while the loop walks them, which yields
	// breadth-first order.
	for i := 0; i < len(t.Nodes); i++ {
		if d := maxDepth - t.Nodes[i].DepthRemaining; d == len(t.levels) {
			t.levels = append(t.levels, i)
		}
		parent := t.Nodes[i]
		if parent.DepthRemaining == 0 {
			continue
		}
		children := rule.Subdivide(parent)
		t.Nodes[i].FirstChild = len(t.Nodes)
		t.Nodes[i].ChildCount = len(children)
		for _, c := range children {
			if !(c.Size > 0 && c.Size < parent.Size) {
				return nil, fmt.Errorf("fractal: degenerate child size %v under %v: %w", c.Size, parent.Size, core.ErrInvalidParameter)
			}
			if !finite(c.Position) {
				return nil, fmt.Errorf("fractal: child of node %d overflows to %v: %w", i, c.Position, core.ErrInvalidParameter)
			}
			c.DepthRemaining = parent.DepthRemaining - 1
			c.ColorIndex = ColorIndex(maxDepth, c.DepthRemaining, len(palette))
			c.Parent = i
			c.FirstChild = 0
			c.ChildCount = 0
			t.Nodes = append(t.Nodes, c)
		}
	}
	t.levels = append(t.levels, len(t.Nodes))
	return t, nil
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
