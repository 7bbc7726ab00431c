//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"fractal-gallery/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonFG    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the description and parameter panel next to the scene view.
type HUD struct {
	scene  core.Scene
	width  int
	height int
	panel  *ebiten.Image

	title    string
	desc     []string
	snapshot core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided scene and panel size.
func NewHUD(scene core.Scene, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width, height: height}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.SetScene(scene)
	return h
}

// SetScene points the HUD at a new active scene.
func (h *HUD) SetScene(scene core.Scene) {
	h.scene = scene
	h.title = "Controls"
	h.desc = nil
	h.controls = nil
	h.intSetter = nil
	h.floatSetter = nil
	if scene == nil {
		return
	}
	h.title = scene.Name()
	h.desc = Wrap(scene.Description(), (h.width-2*panelPadding)/glyphWidth)
	if provider, ok := scene.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeInt && ctrl.Type != core.ParamTypeFloat {
				continue
			}
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	if setter, ok := scene.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := scene.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.scene == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.scene.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.desc {
		y += descLineHeight
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}
	h.drawControls()
	h.drawInfo()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.current = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case image.Pt(px, my).In(state.minusRect):
			h.applyAdjustment(state, -1)
			return
		case image.Pt(px, my).In(state.plusRect):
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !h.adjustable(state) {
		return
	}
	target, ok := NextValue(state.control, state.current, direction)
	if !ok {
		return
	}
	var applied bool
	if state.control.Type == core.ParamTypeInt {
		applied = h.intSetter.SetIntParameter(state.control.Key, int(target))
	} else {
		applied = h.floatSetter.SetFloatParameter(state.control.Key, target)
	}
	if applied {
		state.current = target
		state.value = FormatValue(state.control.Type, target)
	}
}

func (h *HUD) adjustable(state *hudControlState) bool {
	if !state.hasValue {
		return false
	}
	if state.control.Type == core.ParamTypeInt {
		return h.intSetter != nil
	}
	return h.floatSetter != nil
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textColor)

		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minus := NextValue(state.control, state.current, -1)
		_, plus := NextValue(state.control, state.current, 1)
		h.drawButton(state.minusRect, "-", h.adjustable(state) && minus)
		h.drawButton(state.plusRect, "+", h.adjustable(state) && plus)
	}
}

// drawInfo lists the read-only parameters below the controls.
func (h *HUD) drawInfo() {
	face := basicfont.Face7x13
	y := h.infoTop()
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			y += descLineHeight
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
		}
	}
}

func (h *HUD) isControl(key string) bool {
	for _, c := range h.controls {
		if c.control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) infoTop() int {
	return h.controlsTop() + len(h.controls)*lineHeight + infoSpacing/2
}

func (h *HUD) controlsTop() int {
	return panelPadding + headerBaseline + len(h.desc)*descLineHeight + 14
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, buttonFG
	if !enabled {
		bg, fg = buttonOffBG, buttonOffFG
	}
	fillRect(h.panel, h.pixel, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := h.controlsTop() + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func fillRect(dst, pixel *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	descLineHeight = 16
	glyphWidth     = 7
)
