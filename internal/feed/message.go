package feed

import (
	"fmt"

	"fractal-gallery/internal/fractal"
	"fractal-gallery/internal/sims/elementary"
)

// Message types sent to clients.
const (
	TypeSolid = "solid"
	TypeGrid  = "grid"
	TypeError = "error"
)

// Request asks for one scene description. Omitted fields take the scene's
// defaults; pointers distinguish "omitted" from an explicit zero, which is
// rejected.
type Request struct {
	ID       string      `json:"id,omitempty"`
	Scene    string      `json:"scene"`
	Depth    *int        `json:"depth,omitempty"`
	Size     *float64    `json:"size,omitempty"`
	Position *[3]float64 `json:"position,omitempty"`

	Width       *int  `json:"width,omitempty"`
	Generations *int  `json:"generations,omitempty"`
	Rule        *int  `json:"rule,omitempty"`
	Seed        []int `json:"seed,omitempty"`
}

// Message is the reply to a Request. Exactly one of Solid, Grid and Error is
// set, matching Type.
type Message struct {
	Type  string     `json:"type"`
	ID    string     `json:"id,omitempty"`
	Scene string     `json:"scene,omitempty"`
	Solid *SolidData `json:"solid,omitempty"`
	Grid  *GridData  `json:"grid,omitempty"`
	Error string     `json:"error,omitempty"`
}

// SolidData is the declarative form of a fractal tree.
type SolidData struct {
	Kind     fractal.ShapeKind `json:"kind"`
	MaxDepth int               `json:"maxDepth"`
	Palette  []string          `json:"palette"`
	Levels   [][2]int          `json:"levels"`
	Nodes    []NodeData        `json:"nodes"`
}

// NodeData mirrors fractal.Node. Orientation is a unit quaternion (w, x, y, z).
type NodeData struct {
	Position       [3]float64 `json:"position"`
	Size           float64    `json:"size"`
	Orientation    [4]float64 `json:"orientation"`
	DepthRemaining int        `json:"depthRemaining"`
	ColorIndex     int        `json:"colorIndex"`
	Parent         int        `json:"parent"`
	FirstChild     int        `json:"firstChild"`
	ChildCount     int        `json:"childCount"`
}

// GridData is the declarative form of an automaton history. Rows hold one
// '0'/'1' character per cell; Instances lists live cells row-major.
type GridData struct {
	Width       int               `json:"width"`
	Generations int               `json:"generations"`
	Rule        int               `json:"rule"`
	Rows        []string          `json:"rows"`
	Instances   []elementary.Cell `json:"instances"`
}

func solidData(t *fractal.Tree) *SolidData {
	d := &SolidData{
		Kind:     t.Kind,
		MaxDepth: t.MaxDepth,
		Nodes:    make([]NodeData, len(t.Nodes)),
	}
	for _, c := range t.Palette() {
		d.Palette = append(d.Palette, fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	for level := 0; level <= t.MaxDepth; level++ {
		start, end := t.LevelRange(level)
		d.Levels = append(d.Levels, [2]int{start, end})
	}
	for i, n := range t.Nodes {
		q := n.Orientation
		d.Nodes[i] = NodeData{
			Position:       [3]float64(n.Position),
			Size:           n.Size,
			Orientation:    [4]float64{q.W, q.V[0], q.V[1], q.V[2]},
			DepthRemaining: n.DepthRemaining,
			ColorIndex:     n.ColorIndex,
			Parent:         n.Parent,
			FirstChild:     n.FirstChild,
			ChildCount:     n.ChildCount,
		}
	}
	return d
}

func gridData(g *elementary.Grid) *GridData {
	d := &GridData{
		Width:       g.Width(),
		Generations: g.Generations(),
		Rule:        int(g.Rule().Code()),
		Rows:        make([]string, g.Generations()),
		Instances:   g.Instances(),
	}
	buf := make([]byte, g.Width())
	for r := range d.Rows {
		for c, v := range g.Row(r) {
			buf[c] = '0' + v
		}
		d.Rows[r] = string(buf)
	}
	return d
}
