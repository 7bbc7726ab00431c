package elementary

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"fractal-gallery/internal/core"
)

func TestRule30SingleStep(t *testing.T) {
	seed := []uint8{0, 0, 0, 1, 0, 0, 0}
	grid, err := Evolve(7, 2, seed, nil)
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	want := []uint8{0, 0, 1, 1, 1, 0, 0}
	if got := grid.Row(1); !slices.Equal(got, want) {
		t.Fatalf("row 1 = %v, want %v", got, want)
	}
	if got := grid.Row(0); !slices.Equal(got, seed) {
		t.Fatalf("row 0 = %v, want seed %v", got, seed)
	}
}

func TestRule30TruthTable(t *testing.T) {
	live := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for idx := 0; idx < 8; idx++ {
		l, c, r := uint8(idx>>2&1), uint8(idx>>1&1), uint8(idx&1)
		got := Rule30.Apply(l, c, r) == 1
		if got != live[idx] {
			t.Fatalf("pattern %03b live=%v, want %v", idx, got, live[idx])
		}
	}
	if Rule30.Code() != 30 {
		t.Fatalf("Rule30.Code() = %d", Rule30.Code())
	}
}

func TestDefaultSeedIsCenterCell(t *testing.T) {
	for _, width := range []int{1, 2, 7, 8, 255} {
		grid, err := Evolve(width, 1, nil, nil)
		if err != nil {
			t.Fatalf("width %d: %v", width, err)
		}
		row := grid.Row(0)
		for x, v := range row {
			want := uint8(0)
			if x == width/2 {
				want = 1
			}
			if v != want {
				t.Fatalf("width %d: cell %d = %d, want %d", width, x, v, want)
			}
		}
	}
}

func TestSingleColumnUsesDeadBoundary(t *testing.T) {
	for code := 0; code < 256; code++ {
		rule := FromCode(uint8(code))
		for _, s := range []uint8{0, 1} {
			grid, err := Evolve(1, 4, []uint8{s}, &rule)
			if err != nil {
				t.Fatalf("rule %d: %v", code, err)
			}
			prev := s
			for r := 1; r < grid.Generations(); r++ {
				want := rule.Apply(0, prev, 0)
				if got := grid.At(r, 0); got != want {
					t.Fatalf("rule %d seed %d row %d = %d, want %d", code, s, r, got, want)
				}
				prev = want
			}
		}
	}
}

func TestBoundaryIsNotToroidal(t *testing.T) {
	// A live cell on the right edge must not feed the left edge. Rule 30
	// lights pattern 001, so a wrapping engine would light column 0.
	seed := []uint8{0, 0, 0, 0, 1}
	grid, err := Evolve(5, 2, seed, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 0, 0, 1, 1}
	if got := grid.Row(1); !slices.Equal(got, want) {
		t.Fatalf("row 1 = %v, want %v", got, want)
	}
}

func TestEveryRuleMatchesWolframCode(t *testing.T) {
	seed := RandomSeed(33, 7)
	for code := 0; code < 256; code++ {
		rule := FromCode(uint8(code))
		if rule.Code() != uint8(code) {
			t.Fatalf("FromCode(%d).Code() = %d", code, rule.Code())
		}
		grid, err := Evolve(len(seed), 12, seed, &rule)
		if err != nil {
			t.Fatalf("rule %d: %v", code, err)
		}
		for r := 1; r < grid.Generations(); r++ {
			for c := 0; c < grid.Width(); c++ {
				idx := grid.At(r-1, c-1)<<2 | grid.At(r-1, c)<<1 | grid.At(r-1, c+1)
				want := uint8(code) >> idx & 1
				if got := grid.At(r, c); got != want {
					t.Fatalf("rule %d cell (%d,%d) = %d, want %d", code, r, c, got, want)
				}
			}
		}
	}
}

func TestEvolveRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name        string
		width, gens int
		seed        []uint8
	}{
		{"zero width", 0, 4, nil},
		{"negative width", -3, 4, nil},
		{"zero generations", 4, 0, nil},
		{"seed too short", 4, 4, []uint8{1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := Evolve(tc.width, tc.gens, tc.seed, nil)
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
			if grid != nil {
				t.Fatal("grid returned alongside error")
			}
		})
	}
}

func TestEvolveDeterministicAndIndependent(t *testing.T) {
	first, err := Evolve(64, 32, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := first.Dense()

	// Scribbling over copies handed out by the first grid must not affect
	// later runs.
	rows := first.Rows()
	rows[3][3] = 9
	dense := first.Dense()
	dense[0] = 9

	second, err := Evolve(64, 32, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(want, second.Dense()) {
		t.Fatal("identical inputs produced different grids")
	}
	if !slices.Equal(want, first.Dense()) {
		t.Fatal("grid contents changed through a returned copy")
	}
}

func TestSeedNormalized(t *testing.T) {
	grid, err := Evolve(3, 1, []uint8{0, 7, 255}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := grid.Row(0); !slices.Equal(got, []uint8{0, 1, 1}) {
		t.Fatalf("row 0 = %v", got)
	}
}

func TestInstancesRowMajor(t *testing.T) {
	grid, err := Evolve(7, 3, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []Cell{
		{0, 3},
		{1, 2}, {1, 3}, {1, 4},
		{2, 1}, {2, 2}, {2, 5},
	}
	got := grid.Instances()
	if !slices.Equal(got, want) {
		t.Fatalf("instances = %v, want %v", got, want)
	}
	if grid.Live() != len(want) {
		t.Fatalf("Live() = %d, want %d", grid.Live(), len(want))
	}
}

func TestPackRGBA(t *testing.T) {
	grid, err := Evolve(3, 2, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	on := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	off := color.RGBA{A: 255}
	buf := grid.PackRGBA(on, off)
	if len(buf) != 4*3*2 {
		t.Fatalf("len = %d", len(buf))
	}
	dense := grid.Dense()
	for i, v := range dense {
		want := off
		if v == 1 {
			want = on
		}
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestSceneRevealsOneGenerationPerStep(t *testing.T) {
	e, err := New("rule30", Config{Width: 9, Height: 5, Rule: 30, SeedMode: SeedCenter})
	if err != nil {
		t.Fatal(err)
	}
	full := e.Grid().Dense()
	w := e.Size().W

	for step := 1; step <= 6; step++ {
		revealed := e.Revealed()
		cells := e.Cells()
		if !slices.Equal(cells[:revealed*w], full[:revealed*w]) {
			t.Fatalf("step %d: revealed rows differ from history", step)
		}
		for _, v := range cells[revealed*w:] {
			if v != 0 {
				t.Fatalf("step %d: unrevealed row not blank", step)
			}
		}
		e.Step()
	}
	if !e.Done() || e.Revealed() != 5 {
		t.Fatalf("revealed %d after stepping past the end", e.Revealed())
	}
}

func TestSceneRuleParameterRegenerates(t *testing.T) {
	e, err := New("elementary", FromMap(DefaultConfig(), map[string]string{"w": "31", "h": "12"}))
	if err != nil {
		t.Fatal(err)
	}
	e.Step()
	e.Step()
	if !e.SetIntParameter("rule", 90) {
		t.Fatal("SetIntParameter(rule) rejected")
	}
	if e.Grid().Rule().Code() != 90 {
		t.Fatalf("rule = %d", e.Grid().Rule().Code())
	}
	if e.Revealed() != 1 {
		t.Fatalf("revealed = %d after regeneration", e.Revealed())
	}
	if e.SetIntParameter("rule", 300) || e.SetIntParameter("width", 3) {
		t.Fatal("invalid parameter accepted")
	}
	p, ok := e.Parameters().Lookup("rule")
	if !ok || p.Value != "90" {
		t.Fatalf("rule parameter = %+v", p)
	}
}

func TestRandomSeedModeUsesResetSeed(t *testing.T) {
	cfg := Config{Width: 40, Height: 3, Rule: 30, SeedMode: SeedRandom}
	a, _ := New("elementary", cfg)
	b, _ := New("elementary", cfg)
	a.Reset(11)
	b.Reset(11)
	if !slices.Equal(a.Grid().Dense(), b.Grid().Dense()) {
		t.Fatal("same seed produced different histories")
	}
	if !slices.Equal(a.Grid().Row(0), RandomSeed(40, 11)) {
		t.Fatal("seed row does not come from RandomSeed")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(DefaultConfig(), map[string]string{"w": "64", "h": "-2", "rule": "256", "seed_mode": "random"})
	if c.Width != 64 || c.Height != 256 || c.Rule != 110 || c.SeedMode != SeedRandom {
		t.Fatalf("config = %+v", c)
	}
	if _, err := New("x", Config{Width: 0, Height: 4}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v", err)
	}
}

func TestSceneSizeIsCapped(t *testing.T) {
	c := FromMap(DefaultConfig(), map[string]string{"w": "1000000", "h": "1000000"})
	if c.Width != 256 || c.Height != 256 {
		t.Fatalf("oversized request kept: %dx%d", c.Width, c.Height)
	}
	c = FromMap(DefaultConfig(), map[string]string{"w": "4096", "h": "1024"})
	if c.Width != 4096 || c.Height != 1024 {
		t.Fatalf("request at the cap rejected: %dx%d", c.Width, c.Height)
	}
	if _, err := New("x", Config{Width: MaxCells, Height: 2, Rule: 30}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v", err)
	}
	if _, err := core.Build("rule30", map[string]string{"w": "100000", "h": "100000"}); err != nil {
		t.Fatalf("capped gallery entry failed: %v", err)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"rule30", "elementary"} {
		s, err := core.Build(name, map[string]string{"w": "16", "h": "8"})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.Name() != name {
			t.Fatalf("Name() = %q", s.Name())
		}
	}
	s, _ := core.Build("rule30", nil)
	if s.(*Elementary).Grid().Rule() != Rule30 {
		t.Fatal("rule30 scene is not using rule 30")
	}
}
