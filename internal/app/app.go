//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"
	"time"

	"fractal-gallery/internal/core"
	"fractal-gallery/internal/fractal"
	"fractal-gallery/internal/render"
	"fractal-gallery/internal/sims/elementary"
	"fractal-gallery/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxCatchUp bounds the scene steps taken in a single frame.
const maxCatchUp = 4

type solidScene interface {
	core.Scene
	Tree() *fractal.Tree
	RevealedDepth() int
	Spin() float64
}

type historyScene interface {
	core.GridScene
	Grid() *elementary.Grid
	Revealed() int
}

// Game adapts the gallery to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	gallery Gallery
	index   int
	scene   core.Scene

	hud    *ui.HUD
	bar    *ui.GalleryBar
	clock  *core.FixedStep
	cam    *render.Orbit
	solids *render.SolidPainter

	painter  *render.GridPainter
	shader   *render.GridShader
	uploaded *elementary.Grid

	onColor  color.Color
	offColor color.Color
	bgColor  color.Color

	paused   bool
	tickOnce bool
	seed     int64

	dragging     bool
	lastX, lastY int
}

// New constructs a Game showing entry start of gallery.
func New(cfg *Config, gallery Gallery, start int) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		gallery:  gallery,
		index:    -1,
		clock:    core.NewFixedStep(cfg.StepTPS),
		solids:   render.NewSolidPainter(),
		onColor:  color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff},
		offColor: color.RGBA{R: 0x0b, G: 0x0b, B: 0x12, A: 0xff},
		bgColor:  color.RGBA{R: 0x05, G: 0x05, B: 0x0a, A: 0xff},
		seed:     cfg.Seed,
	}
	if cfg.Shader {
		shader, err := render.NewGridShader()
		if err != nil {
			log.Printf("grid shader unavailable, using CPU upload: %v", err)
		} else {
			g.shader = shader
		}
	}
	g.hud = ui.NewHUD(nil, cfg.PanelWidth, cfg.ViewHeight)
	g.bar = ui.NewGalleryBar(gallery.Labels(), cfg.ViewWidth+cfg.PanelWidth, cfg.ViewHeight)
	if err := g.Select(start); err != nil {
		return nil, err
	}
	return g, nil
}

// Select builds and activates gallery entry i. On failure the current scene
// stays active.
func (g *Game) Select(i int) error {
	scene, err := g.gallery.Build(i)
	if err != nil {
		return err
	}
	scene.Reset(g.seed)
	g.index = i
	g.scene = scene
	g.uploaded = nil
	g.painter = nil
	g.cam = nil
	if s, ok := scene.(solidScene); ok {
		g.cam = render.NewOrbit(render.Fit(s.Tree()))
	}
	if gs, ok := scene.(core.GridScene); ok {
		size := gs.Size()
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.hud.SetScene(scene)
	g.bar.SetActive(i)
	g.clock.Reset()
	log.Printf("scene %s: %s", scene.Name(), scene.Description())
	return nil
}

// Reset reinitializes the active scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.uploaded = nil
	g.tickOnce = false
}

// Update handles per-frame logic and advances the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && g.shader != nil {
		g.cfg.Shader = !g.cfg.Shader
	}
	next := g.bar.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		next = (g.index + 1) % len(g.gallery.Scenes)
	}
	if next >= 0 && next != g.index {
		if err := g.Select(next); err != nil {
			log.Printf("scene %d: %v", next, err)
		}
	}

	g.hud.Update(g.cfg.ViewWidth)
	g.updateCamera()

	steps := g.clock.Due(maxCatchUp)
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.scene.Step()
	}
	return nil
}

func (g *Game) updateCamera() {
	if g.cam == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	inView := image.Pt(x, y).In(image.Rect(0, 0, g.cfg.ViewWidth, g.cfg.ViewHeight))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inView:
		g.dragging = true
	case !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.dragging = false
	}
	if g.dragging {
		g.cam.Drag(float32(x-g.lastX), float32(y-g.lastY))
	}
	g.lastX, g.lastY = x, y
	if _, wy := ebiten.Wheel(); wy != 0 && inView {
		g.cam.Zoom(float32(wy))
	}
}

// Draw renders the active scene, the HUD and the gallery bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)
	view := screen.SubImage(image.Rect(0, 0, g.cfg.ViewWidth, g.cfg.ViewHeight)).(*ebiten.Image)

	switch s := g.scene.(type) {
	case solidScene:
		tree := s.Tree()
		g.solids.Draw(view, tree, render.VisibleLevel(tree, s.RevealedDepth()), s.Spin(), g.cam)
	case historyScene:
		scale := g.gridScale(s.Size())
		if g.cfg.Shader && g.shader != nil {
			if grid := s.Grid(); grid != g.uploaded {
				g.shader.Upload(grid.Dense(), grid.Width(), grid.Generations())
				g.uploaded = grid
			}
			g.shader.Draw(view, s.Revealed(), g.onColor, g.offColor, scale)
			break
		}
		g.painter.Blit(view, s.Cells(), g.onColor, g.offColor, scale)
	case core.GridScene:
		g.painter.Blit(view, s.Cells(), g.onColor, g.offColor, g.gridScale(s.Size()))
	}

	g.hud.Draw(screen, g.cfg.ViewWidth)
	g.bar.Draw(screen)
}

// gridScale is the largest integer scale, at most cfg.Scale, that fits the
// grid into the view.
func (g *Game) gridScale(size core.Size) int {
	scale := g.cfg.Scale
	for scale > 1 && (size.W*scale > g.cfg.ViewWidth || size.H*scale > g.cfg.ViewHeight) {
		scale--
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ViewWidth + g.cfg.PanelWidth, g.cfg.ViewHeight + ui.BarHeight
}
