package solids

import (
	"fmt"
	"image/color"
	"math"

	"fractal-gallery/internal/core"
	"fractal-gallery/internal/fractal"

	"github.com/go-gl/mathgl/mgl64"
)

// Config controls a recursive solid scene.
type Config struct {
	Kind  fractal.ShapeKind
	Depth int
	Size  float64

	// RevealTicks is the number of steps between revealing two levels.
	RevealTicks int
	// SpinPerTick is the rotation, in radians, added every step.
	SpinPerTick float64
}

// DefaultConfig returns the standard configuration for kind.
func DefaultConfig(kind fractal.ShapeKind) Config {
	c := Config{Kind: kind, Depth: 3, Size: 3, RevealTicks: 30, SpinPerTick: 0.01}
	switch kind {
	case fractal.Cube:
		c.Depth = 2
	case fractal.Tetrahedron:
		c.Depth = 4
	case fractal.TorusRing:
		c.Size = 1.6
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	c.Depth = core.ConfigInt(cfg, "depth", c.Depth, func(v int) bool { return v >= 0 })
	c.Size = core.ConfigFloat(cfg, "size", c.Size, func(v float64) bool { return v > 0 && !math.IsInf(v, 0) })
	c.RevealTicks = core.ConfigInt(cfg, "reveal", c.RevealTicks, func(v int) bool { return v >= 0 })
	c.SpinPerTick = core.ConfigFloat(cfg, "spin", c.SpinPerTick, func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) })
	return c
}

var descriptions = map[fractal.ShapeKind]string{
	fractal.Cube:        "Menger sponge: each cube keeps the 20 corner and edge cubes of its 3x3x3 partition.",
	fractal.Tetrahedron: "Sierpinski tetrahedron: each tetrahedron is replaced by 4 half-size copies at its vertices.",
	fractal.TorusRing:   "Nested tori: 4 tori of the parent's tube radius thread around each parent ring.",
}

// Solid reveals a generated tree one depth level at a time while spinning it.
type Solid struct {
	name string
	cfg  Config

	tree     *fractal.Tree
	ticks    int
	revealed int
	spin     float64
}

// New generates the tree for cfg.
func New(name string, cfg Config) (*Solid, error) {
	if cfg.RevealTicks < 0 {
		return nil, fmt.Errorf("solids: reveal ticks %d: %w", cfg.RevealTicks, core.ErrInvalidParameter)
	}
	s := &Solid{name: name, cfg: cfg}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Solid) regenerate() error {
	tree, err := fractal.Generate(s.cfg.Kind, mgl64.Vec3{}, s.cfg.Size, s.cfg.Depth)
	if err != nil {
		return err
	}
	s.tree = tree
	s.ticks = 0
	s.revealed = 0
	s.spin = 0
	if s.cfg.RevealTicks == 0 {
		s.revealed = tree.MaxDepth
	}
	return nil
}

// Name returns the scene identifier.
func (s *Solid) Name() string { return s.name }

// Description summarizes the scene for the HUD.
func (s *Solid) Description() string { return descriptions[s.cfg.Kind] }

// Tree returns the generated tree.
func (s *Solid) Tree() *fractal.Tree { return s.tree }

// Palette returns the colours indexed by Node.ColorIndex.
func (s *Solid) Palette() []color.RGBA { return s.tree.Palette() }

// RevealedDepth is the deepest level currently shown.
func (s *Solid) RevealedDepth() int { return s.revealed }

// Spin is the current rotation about the vertical axis, in radians.
func (s *Solid) Spin() float64 { return s.spin }

// Reset restarts the reveal. Trees are deterministic, so the seed is unused
// and the existing tree is kept.
func (s *Solid) Reset(int64) {
	s.ticks = 0
	s.spin = 0
	s.revealed = 0
	if s.cfg.RevealTicks == 0 {
		s.revealed = s.tree.MaxDepth
	}
}

// Step advances the spin and, every RevealTicks steps, reveals one level.
func (s *Solid) Step() {
	s.spin = math.Mod(s.spin+s.cfg.SpinPerTick, 2*math.Pi)
	if s.revealed >= s.tree.MaxDepth {
		return
	}
	s.ticks++
	if s.ticks >= s.cfg.RevealTicks {
		s.ticks = 0
		s.revealed++
	}
}

// Parameters reports the current tunables.
func (s *Solid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Solid",
		Params: []core.Parameter{
			core.IntParameter("depth", "Depth", s.cfg.Depth, "levels below the root"),
			core.FloatParameter("size", "Size", s.cfg.Size, "root edge length or major radius"),
			core.FloatParameter("spin", "Spin", s.cfg.SpinPerTick, "radians added per step"),
			core.IntParameter("nodes", "Nodes", s.tree.Len(), "solids in the tree"),
			core.IntParameter("revealed", "Revealed", s.revealed, "deepest visible level"),
		},
	}}}
}

// MaxDepth returns the deepest tree the node budget allows for kind.
func MaxDepth(kind fractal.ShapeKind) int {
	d := 0
	for fractal.NodeCount(kind, d+1) <= fractal.MaxNodes {
		d++
	}
	return d
}

// ParameterControls exposes the depth, size and spin steppers.
func (s *Solid) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "depth", Label: "Depth", Type: core.ParamTypeInt,
			Step: 1, Min: 0, Max: float64(MaxDepth(s.cfg.Kind)), HasMin: true, HasMax: true,
		},
		{
			Key: "size", Label: "Size", Type: core.ParamTypeFloat,
			Step: 0.25, Min: 0.25, Max: 12, HasMin: true, HasMax: true,
		},
		{
			Key: "spin", Label: "Spin", Type: core.ParamTypeFloat,
			Step: 0.005, Min: 0, Max: 0.1, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter regenerates the tree at a new depth. The previous tree is
// left untouched when the new depth is rejected.
func (s *Solid) SetIntParameter(key string, value int) bool {
	if key != "depth" {
		return false
	}
	prev := s.cfg
	s.cfg.Depth = value
	if err := s.regenerate(); err != nil {
		s.cfg = prev
		return false
	}
	return true
}

// SetFloatParameter changes the root size, which regenerates the tree, or
// the spin rate, which only affects future steps.
func (s *Solid) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "size":
		prev := s.cfg
		s.cfg.Size = value
		if err := s.regenerate(); err != nil {
			s.cfg = prev
			return false
		}
		return true
	case "spin":
		s.cfg.SpinPerTick = value
		return true
	}
	return false
}

func register(name string, kind fractal.ShapeKind) {
	core.Register(name, func(cfg map[string]string) (core.Scene, error) {
		return New(name, FromMap(DefaultConfig(kind), cfg))
	})
}

func init() {
	register("menger", fractal.Cube)
	register("sierpinski", fractal.Tetrahedron)
	register("tori", fractal.TorusRing)
}
