package feed

import (
	"errors"
	"fmt"

	"fractal-gallery/internal/core"
	"fractal-gallery/internal/fractal"
	"fractal-gallery/internal/sims/elementary"
	"fractal-gallery/internal/sims/solids"

	"github.com/go-gl/mathgl/mgl64"
)

// Scenes lists the scene ids a client may request, in gallery order.
var Scenes = []string{"menger", "sierpinski", "tori", "rule30", "elementary"}

// ErrTooLarge is returned when a description would exceed the feed's limit.
var ErrTooLarge = errors.New("description too large")

// Limits bounds the size of a single description.
type Limits struct {
	MaxNodes int
	MaxCells int
}

// DefaultLimits keeps messages to a few megabytes.
var DefaultLimits = Limits{MaxNodes: 1 << 17, MaxCells: 1 << 20}

// Describe answers a single request. Invalid parameters produce an error
// message; no partial structure is ever returned.
func Describe(req Request, lim Limits) Message {
	msg, err := describe(req, lim)
	if err != nil {
		return Message{Type: TypeError, ID: req.ID, Scene: req.Scene, Error: err.Error()}
	}
	msg.ID = req.ID
	msg.Scene = req.Scene
	return msg
}

func describe(req Request, lim Limits) (Message, error) {
	switch req.Scene {
	case "rule30", "elementary":
		return describeGrid(req, lim)
	}
	kind, err := fractal.ParseShapeKind(req.Scene)
	if err != nil {
		return Message{}, fmt.Errorf("unknown scene %q", req.Scene)
	}
	cfg := solids.DefaultConfig(kind)
	if req.Depth != nil {
		cfg.Depth = *req.Depth
	}
	if req.Size != nil {
		cfg.Size = *req.Size
	}
	var pos mgl64.Vec3
	if req.Position != nil {
		pos = mgl64.Vec3(*req.Position)
	}
	// The pure generator rejects bad depth and size; the node budget is
	// checked up front so large requests cost nothing.
	if cfg.Depth >= 0 {
		if n := fractal.NodeCount(kind, cfg.Depth); n > lim.MaxNodes {
			return Message{}, fmt.Errorf("%v depth %d has %d nodes, limit %d: %w", kind, cfg.Depth, n, lim.MaxNodes, ErrTooLarge)
		}
	}
	tree, err := fractal.Generate(kind, pos, cfg.Size, cfg.Depth)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: TypeSolid, Solid: solidData(tree)}, nil
}

func describeGrid(req Request, lim Limits) (Message, error) {
	cfg := elementary.DefaultConfig()
	cfg.Width, cfg.Height = 64, 32
	if req.Scene == "rule30" {
		cfg.Rule = 30
	}
	if req.Width != nil {
		cfg.Width = *req.Width
	}
	if req.Generations != nil {
		cfg.Height = *req.Generations
	}
	if req.Rule != nil {
		if *req.Rule < 0 || *req.Rule > 255 {
			return Message{}, fmt.Errorf("rule %d: %w", *req.Rule, core.ErrInvalidParameter)
		}
		cfg.Rule = uint8(*req.Rule)
	}
	if cfg.Width > 0 && cfg.Height > 0 && cfg.Width > lim.MaxCells/cfg.Height {
		return Message{}, fmt.Errorf("%dx%d cells, limit %d: %w", cfg.Width, cfg.Height, lim.MaxCells, ErrTooLarge)
	}
	var seed []uint8
	if req.Seed != nil {
		seed = make([]uint8, len(req.Seed))
		for i, v := range req.Seed {
			if v != 0 {
				seed[i] = 1
			}
		}
	}
	rule := elementary.FromCode(cfg.Rule)
	grid, err := elementary.Evolve(cfg.Width, cfg.Height, seed, &rule)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: TypeGrid, Grid: gridData(grid)}, nil
}
