package elementary

import (
	"fmt"
	"strconv"

	"fractal-gallery/internal/core"
)

// Seed modes accepted by Config.SeedMode.
const (
	SeedCenter = "center"
	SeedRandom = "random"
)

// MaxCells bounds width*generations of a scene so a gallery entry cannot
// request an unbounded allocation.
const MaxCells = 1 << 22

func fits(w, h int) bool { return w > 0 && h > 0 && w <= MaxCells/h }

// Config holds parameters for the elementary cellular automaton scene.
type Config struct {
	Width    int
	Height   int
	Rule     uint8
	SeedMode string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110, SeedMode: SeedCenter}
}

// FromMap populates a Config from a string map, starting from base.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	positive := func(v int) bool { return v > 0 }
	w := core.ConfigInt(cfg, "w", c.Width, positive)
	h := core.ConfigInt(cfg, "h", c.Height, positive)
	if fits(w, h) {
		c.Width, c.Height = w, h
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["seed_mode"]; ok && (v == SeedCenter || v == SeedRandom) {
		c.SeedMode = v
	}
	return c
}

// Elementary shows a one-dimensional automaton as a vertical history. The
// whole history is computed on Reset; Step only reveals one more generation.
type Elementary struct {
	name string
	cfg  Config
	seed int64

	grid     *Grid
	revealed int
	display  []uint8
}

// New creates an automaton scene. The name is used to tell the rule 30 entry
// apart from the general one in the gallery.
func New(name string, cfg Config) (*Elementary, error) {
	if !fits(cfg.Width, cfg.Height) {
		return nil, fmt.Errorf("elementary: size %dx%d (at most %d cells): %w", cfg.Width, cfg.Height, MaxCells, core.ErrInvalidParameter)
	}
	e := &Elementary{name: name, cfg: cfg, display: make([]uint8, cfg.Width*cfg.Height)}
	e.Reset(0)
	return e, nil
}

// Name returns the scene identifier.
func (e *Elementary) Name() string { return e.name }

// Description summarizes the scene for the HUD.
func (e *Elementary) Description() string {
	return fmt.Sprintf("Elementary automaton, rule %d, growing one generation per tick from a %s seed. Cells past the edges are dead.", e.cfg.Rule, e.cfg.SeedMode)
}

// Size returns the scene grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// Cells exposes the render buffer holding the revealed generations.
func (e *Elementary) Cells() []uint8 { return e.display }

// Grid returns the complete precomputed history.
func (e *Elementary) Grid() *Grid { return e.grid }

// Revealed reports how many generations are visible.
func (e *Elementary) Revealed() int { return e.revealed }

// Reset regenerates the full history and hides everything but the seed row.
// The seed only matters for the random seed mode.
func (e *Elementary) Reset(seed int64) {
	e.seed = seed
	var row []uint8
	if e.cfg.SeedMode == SeedRandom {
		row = RandomSeed(e.cfg.Width, seed)
	}
	rule := FromCode(e.cfg.Rule)
	grid, err := Evolve(e.cfg.Width, e.cfg.Height, row, &rule)
	if err != nil {
		// New validated the dimensions, so this is unreachable.
		panic(err)
	}
	e.grid = grid
	clear(e.display)
	copy(e.display, grid.cells.Row(0))
	e.revealed = 1
}

// Step reveals the next generation, if any remain.
func (e *Elementary) Step() {
	if e.revealed >= e.grid.Generations() {
		return
	}
	w := e.cfg.Width
	copy(e.display[e.revealed*w:], e.grid.cells.Row(e.revealed))
	e.revealed++
}

// Done reports whether every generation is visible.
func (e *Elementary) Done() bool { return e.revealed >= e.grid.Generations() }

// Parameters reports the current tunables.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Automaton",
		Params: []core.Parameter{
			core.IntParameter("rule", "Rule", int(e.cfg.Rule), "Wolfram code of the truth table"),
			core.IntParameter("w", "Width", e.cfg.Width, "cells per row"),
			core.IntParameter("h", "Generations", e.cfg.Height, "rows, seed included"),
			core.IntParameter("revealed", "Revealed", e.revealed, "generations shown so far"),
		},
	}}}
}

// ParameterControls exposes the rule stepper.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key: "rule", Label: "Rule", Type: core.ParamTypeInt,
		Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true,
	}}
}

// SetIntParameter swaps the rule and regenerates the history.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	if key != "rule" || value < 0 || value > 255 {
		return false
	}
	e.cfg.Rule = uint8(value)
	e.Reset(e.seed)
	return true
}

func init() {
	core.Register("rule30", func(cfg map[string]string) (core.Scene, error) {
		base := DefaultConfig()
		base.Rule = 30
		return New("rule30", FromMap(base, cfg))
	})
	core.Register("elementary", func(cfg map[string]string) (core.Scene, error) {
		return New("elementary", FromMap(DefaultConfig(), cfg))
	})
}
