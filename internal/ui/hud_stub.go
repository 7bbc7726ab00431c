//go:build !ebiten

package ui

import "fractal-gallery/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Scene, int, int) *HUD { return nil }

// SetScene is a no-op in the headless build.
func (h *HUD) SetScene(core.Scene) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
