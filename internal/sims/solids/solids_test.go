package solids

import (
	"testing"

	"fractal-gallery/internal/core"
	"fractal-gallery/internal/fractal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealOneLevelPerInterval(t *testing.T) {
	cfg := DefaultConfig(fractal.Tetrahedron)
	cfg.Depth = 3
	cfg.RevealTicks = 2
	s, err := New("sierpinski", cfg)
	require.NoError(t, err)

	assert.Equal(t, 0, s.RevealedDepth())
	want := []int{0, 1, 1, 2, 2, 3, 3, 3}
	for i, w := range want {
		s.Step()
		assert.Equal(t, w, s.RevealedDepth(), "step %d", i+1)
	}
	assert.Equal(t, 3, s.RevealedDepth())

	s.Reset(5)
	assert.Equal(t, 0, s.RevealedDepth())
	assert.Zero(t, s.Spin())
}

func TestZeroRevealTicksShowsEverything(t *testing.T) {
	cfg := DefaultConfig(fractal.Cube)
	cfg.RevealTicks = 0
	s, err := New("menger", cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Depth, s.RevealedDepth())
}

func TestSpinAdvances(t *testing.T) {
	cfg := DefaultConfig(fractal.TorusRing)
	cfg.SpinPerTick = 0.25
	s, err := New("tori", cfg)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		s.Step()
	}
	assert.InDelta(t, 1.0, s.Spin(), 1e-12)
}

func TestDepthParameterRegenerates(t *testing.T) {
	s, err := New("sierpinski", DefaultConfig(fractal.Tetrahedron))
	require.NoError(t, err)
	before := s.Tree()

	require.True(t, s.SetIntParameter("depth", 2))
	assert.Equal(t, 2, s.Tree().MaxDepth)
	assert.Equal(t, 21, s.Tree().Len())
	assert.NotSame(t, before, s.Tree())

	assert.False(t, s.SetIntParameter("depth", -1))
	assert.False(t, s.SetIntParameter("depth", MaxDepth(fractal.Tetrahedron)+1))
	assert.Equal(t, 2, s.Tree().MaxDepth, "rejected depth must keep the old tree")
	assert.False(t, s.SetIntParameter("size", 3))

	p, ok := s.Parameters().Lookup("depth")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)
}

func TestFloatParameters(t *testing.T) {
	s, err := New("menger", DefaultConfig(fractal.Cube))
	require.NoError(t, err)
	var _ core.FloatParameterSetter = s

	require.True(t, s.SetFloatParameter("size", 1.5))
	assert.Equal(t, 1.5, s.Tree().Root().Size)
	p, ok := s.Parameters().Lookup("size")
	require.True(t, ok)
	assert.Equal(t, "1.5", p.Value)

	assert.False(t, s.SetFloatParameter("size", -2))
	assert.Equal(t, 1.5, s.Tree().Root().Size, "rejected size must keep the old tree")

	require.True(t, s.SetFloatParameter("spin", 0.5))
	s.Step()
	assert.InDelta(t, 0.5, s.Spin(), 1e-12)
	assert.False(t, s.SetFloatParameter("depth", 1))

	keys := map[string]core.ParamType{}
	for _, c := range s.ParameterControls() {
		keys[c.Key] = c.Type
	}
	assert.Equal(t, map[string]core.ParamType{"depth": core.ParamTypeInt, "size": core.ParamTypeFloat, "spin": core.ParamTypeFloat}, keys)
}

func TestMaxDepth(t *testing.T) {
	assert.Equal(t, 4, MaxDepth(fractal.Cube))
	assert.Equal(t, 10, MaxDepth(fractal.Tetrahedron))
	assert.Equal(t, 10, MaxDepth(fractal.TorusRing))
}

func TestFromMap(t *testing.T) {
	c := FromMap(DefaultConfig(fractal.Cube), map[string]string{"depth": "3", "size": "-1", "reveal": "5", "spin": "x"})
	assert.Equal(t, 3, c.Depth)
	assert.Equal(t, 3.0, c.Size)
	assert.Equal(t, 5, c.RevealTicks)
	assert.Equal(t, 0.01, c.SpinPerTick)
}

func TestRegisteredScenes(t *testing.T) {
	kinds := map[string]fractal.ShapeKind{"menger": fractal.Cube, "sierpinski": fractal.Tetrahedron, "tori": fractal.TorusRing}
	for name, kind := range kinds {
		scene, err := core.Build(name, map[string]string{"depth": "1"})
		require.NoError(t, err, name)
		solid, ok := scene.(*Solid)
		require.True(t, ok, name)
		assert.Equal(t, kind, solid.Tree().Kind)
		assert.Equal(t, 1, solid.Tree().MaxDepth)
		assert.NotEmpty(t, solid.Description())
	}
	_, err := core.Build("menger", map[string]string{"depth": "9"})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}
