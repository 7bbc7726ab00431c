package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scene      string
	Gallery    string
	Scale      int
	TPS        int
	StepTPS    int
	Seed       int64
	ViewWidth  int
	ViewHeight int
	PanelWidth int
	Shader     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:      "menger",
		Scale:      2,
		TPS:        60,
		StepTPS:    30,
		Seed:       42,
		ViewWidth:  640,
		ViewHeight: 512,
		PanelWidth: 240,
		Shader:     true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to show first")
	fs.StringVar(&c.Gallery, "gallery", c.Gallery, "TOML file listing gallery scenes (default: every registered scene)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for grid scenes")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.IntVar(&c.StepTPS, "step-tps", c.StepTPS, "scene animation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scene reset")
	fs.IntVar(&c.ViewWidth, "width", c.ViewWidth, "scene view width in pixels")
	fs.IntVar(&c.ViewHeight, "height", c.ViewHeight, "scene view height in pixels")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels")
	fs.BoolVar(&c.Shader, "shader", c.Shader, "draw automata through the lookup-texture shader")
}
