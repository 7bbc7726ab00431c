package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"fractal-gallery/internal/core"
	_ "fractal-gallery/internal/sims/elementary"
	"fractal-gallery/internal/sims/solids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGallery = `
[[scene]]
name = "menger"
title = "Sponge"
[scene.params]
depth = "1"

[[scene]]
name = "rule30"
[scene.params]
w = "33"
h = "16"
`

func TestParseGallery(t *testing.T) {
	g, err := ParseGallery([]byte(sampleGallery))
	require.NoError(t, err)
	require.Len(t, g.Scenes, 2)
	assert.Equal(t, []string{"Sponge", "rule30"}, g.Labels())
	assert.Equal(t, 0, g.Index("menger"))
	assert.Equal(t, 0, g.Index("Sponge"))
	assert.Equal(t, 1, g.Index("rule30"))
	assert.Equal(t, -1, g.Index("tori"))

	scene, err := g.Build(0)
	require.NoError(t, err)
	solid, ok := scene.(*solids.Solid)
	require.True(t, ok)
	assert.Equal(t, 1, solid.Tree().MaxDepth)

	grid, err := g.Build(1)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 33, H: 16}, grid.(core.GridScene).Size())

	_, err = g.Build(2)
	assert.Error(t, err)
}

func TestParseGalleryRejectsBadInput(t *testing.T) {
	_, err := ParseGallery([]byte(`[[scene]]
name = "hypercube"`))
	assert.ErrorContains(t, err, "hypercube")

	_, err = ParseGallery([]byte(`title = "nothing"`))
	assert.Error(t, err)

	_, err = ParseGallery([]byte(`[[scene]`))
	assert.Error(t, err)
}

func TestGalleryRoundTripThroughFile(t *testing.T) {
	g, err := ParseGallery([]byte(sampleGallery))
	require.NoError(t, err)
	data, err := g.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gallery.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	loaded, err := LoadGallery(path)
	require.NoError(t, err)
	assert.Equal(t, g, loaded)

	_, err = LoadGallery(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultGalleryListsRegisteredScenes(t *testing.T) {
	g, err := LoadGallery("")
	require.NoError(t, err)
	names := map[string]bool{}
	for _, e := range g.Scenes {
		names[e.Name] = true
	}
	for _, want := range []string{"menger", "sierpinski", "tori", "rule30", "elementary"} {
		assert.True(t, names[want], want)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scene", "tori", "-step-tps", "12", "-shader=false", "-gallery", "g.toml"}))
	assert.Equal(t, "tori", cfg.Scene)
	assert.Equal(t, 12, cfg.StepTPS)
	assert.False(t, cfg.Shader)
	assert.Equal(t, "g.toml", cfg.Gallery)
	assert.Equal(t, 640, cfg.ViewWidth)
}
