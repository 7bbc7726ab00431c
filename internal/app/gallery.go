package app

import (
	"errors"
	"fmt"
	"os"

	"fractal-gallery/internal/core"

	"github.com/pelletier/go-toml/v2"
)

// SceneEntry is one button of the gallery.
type SceneEntry struct {
	Name   string            `toml:"name"`
	Title  string            `toml:"title,omitempty"`
	Params map[string]string `toml:"params,omitempty"`
}

// Label is the text shown for the entry.
func (e SceneEntry) Label() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// Gallery is the ordered list of scenes offered by the viewer and the feed.
type Gallery struct {
	Scenes []SceneEntry `toml:"scene"`
}

// DefaultGallery lists every registered scene with default parameters.
func DefaultGallery() Gallery {
	var g Gallery
	for _, name := range core.Names() {
		g.Scenes = append(g.Scenes, SceneEntry{Name: name})
	}
	return g
}

// ParseGallery decodes a TOML gallery description such as
//
//	[[scene]]
//	name = "menger"
//	title = "Sponge"
//	[scene.params]
//	depth = "3"
func ParseGallery(data []byte) (Gallery, error) {
	var g Gallery
	if err := toml.Unmarshal(data, &g); err != nil {
		return Gallery{}, fmt.Errorf("gallery: %w", err)
	}
	if len(g.Scenes) == 0 {
		return Gallery{}, errors.New("gallery: no scenes listed")
	}
	for i, e := range g.Scenes {
		if _, ok := core.Lookup(e.Name); !ok {
			return Gallery{}, fmt.Errorf("gallery: entry %d: unknown scene %q", i, e.Name)
		}
	}
	return g, nil
}

// LoadGallery reads a gallery file. An empty path yields DefaultGallery.
func LoadGallery(path string) (Gallery, error) {
	if path == "" {
		return DefaultGallery(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Gallery{}, err
	}
	return ParseGallery(data)
}

// Marshal encodes the gallery back to TOML.
func (g Gallery) Marshal() ([]byte, error) {
	return toml.Marshal(g)
}

// Index returns the position of the first entry named name, or -1.
func (g Gallery) Index(name string) int {
	for i, e := range g.Scenes {
		if e.Name == name || e.Title == name {
			return i
		}
	}
	return -1
}

// Labels returns the button labels in gallery order.
func (g Gallery) Labels() []string {
	out := make([]string, len(g.Scenes))
	for i, e := range g.Scenes {
		out[i] = e.Label()
	}
	return out
}

// Build constructs the scene of entry i.
func (g Gallery) Build(i int) (core.Scene, error) {
	if i < 0 || i >= len(g.Scenes) {
		return nil, fmt.Errorf("gallery: entry %d out of range", i)
	}
	e := g.Scenes[i]
	return core.Build(e.Name, e.Params)
}
