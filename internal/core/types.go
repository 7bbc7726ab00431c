package core

import "fmt"

// Size describes the dimensions of a scene grid.
type Size struct {
	W int
	H int
}

// Scene is the minimal contract every gallery entry implements. Reset rebuilds
// the generated structure from scratch and Step advances the cosmetic
// animation state (reveal, spin) by one tick.
type Scene interface {
	Name() string
	Description() string
	Reset(seed int64)
	Step()
}

// GridScene is a Scene whose output is a row-major grid of cell values.
type GridScene interface {
	Scene
	Size() Size
	Cells() []uint8
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) (Scene, error)

var (
	scenes = map[string]Factory{}
	order  []string
)

// Register adds a scene factory under the provided name. Registering the same
// name twice replaces the factory but keeps its original gallery position.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	if _, ok := scenes[name]; !ok {
		order = append(order, name)
	}
	scenes[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := scenes[name]
	return f, ok
}

// Names lists registered scenes in registration order.
func Names() []string {
	return append([]string(nil), order...)
}

// Build looks up name and constructs the scene.
func Build(name string, cfg map[string]string) (Scene, error) {
	f, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return f(cfg)
}
