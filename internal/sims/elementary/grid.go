package elementary

import (
	"fmt"
	"image/color"

	"fractal-gallery/internal/core"
)

// Cell addresses a single cell of a Grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is the full history of an automaton: row 0 is the seed and every
// following row is one generation. It is immutable once Evolve returns.
type Grid struct {
	rule  Rule
	cells *core.ByteGrid
}

// Width returns the row length.
func (g *Grid) Width() int { return g.cells.W }

// Generations returns the number of rows, seed included.
func (g *Grid) Generations() int { return g.cells.H }

// Rule returns the rule the grid was evolved with.
func (g *Grid) Rule() Rule { return g.rule }

// At returns the state of cells[row][col]; coordinates outside the grid read
// as dead.
func (g *Grid) At(row, col int) uint8 { return g.cells.At(col, row) }

// Row returns a copy of row r.
func (g *Grid) Row(r int) []uint8 {
	return append([]uint8(nil), g.cells.Row(r)...)
}

// Rows returns the grid as a freshly allocated two-dimensional slice.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.Generations())
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// Dense returns one 0/1 byte per cell in row-major order, ready to upload as a
// single-channel lookup texture.
func (g *Grid) Dense() []uint8 {
	return append([]uint8(nil), g.cells.Cells()...)
}

// PackRGBA returns a width*generations RGBA pixel buffer with live cells in on
// and dead cells in off.
func (g *Grid) PackRGBA(on, off color.Color) []byte {
	cells := g.cells.Cells()
	buf := make([]byte, 4*len(cells))
	core.FillBinaryRGBA(buf, cells, on, off)
	return buf
}

// Instances lists every live cell in row-major, ascending order.
func (g *Grid) Instances() []Cell {
	out := make([]Cell, 0, g.Live())
	for r := 0; r < g.Generations(); r++ {
		for c, v := range g.cells.Row(r) {
			if v != 0 {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

// Live counts the live cells.
func (g *Grid) Live() int {
	n := 0
	for _, v := range g.cells.Cells() {
		n += int(v)
	}
	return n
}

// CenterSeed returns a row of width cells with a single live cell at width/2.
func CenterSeed(width int) []uint8 {
	if width <= 0 {
		return nil
	}
	row := make([]uint8, width)
	row[width/2] = 1
	return row
}

// RandomSeed returns a deterministic pseudo-random row.
func RandomSeed(width int, seed int64) []uint8 {
	if width <= 0 {
		return nil
	}
	row := make([]uint8, width)
	core.NewRNG(seed).FillBinary(row)
	return row
}

// Evolve runs rule over seed for generations rows (seed row included).
// A nil seed starts from CenterSeed and a nil rule means Rule30. Neighbours
// outside [0, width) are permanently dead.
func Evolve(width, generations int, seed []uint8, rule *Rule) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("elementary: width %d: %w", width, core.ErrInvalidParameter)
	}
	if generations <= 0 {
		return nil, fmt.Errorf("elementary: generations %d: %w", generations, core.ErrInvalidParameter)
	}
	if seed == nil {
		seed = CenterSeed(width)
	}
	if len(seed) != width {
		return nil, fmt.Errorf("elementary: seed length %d, width %d: %w", len(seed), width, core.ErrInvalidParameter)
	}
	r := Rule30
	if rule != nil {
		r = *rule
	}

	cells := core.NewByteGrid(width, generations)
	first := cells.Row(0)
	for x, v := range seed {
		if v != 0 {
			first[x] = 1
		}
	}
	for y := 1; y < generations; y++ {
		prev, cur := cells.Row(y-1), cells.Row(y)
		for x := 0; x < width; x++ {
			var left, right uint8
			if x > 0 {
				left = prev[x-1]
			}
			if x < width-1 {
				right = prev[x+1]
			}
			cur[x] = r.Apply(left, prev[x], right)
		}
	}
	return &Grid{rule: r, cells: cells}, nil
}
