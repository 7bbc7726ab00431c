//go:build !ebiten

package ui

// GalleryBar is a no-op placeholder used when the ebiten build tag is absent.
type GalleryBar struct{}

// NewGalleryBar constructs a stub bar.
func NewGalleryBar([]string, int, int) *GalleryBar { return &GalleryBar{} }

// SetActive is a no-op in headless builds.
func (g *GalleryBar) SetActive(int) {}

// Update never selects a scene in headless builds.
func (g *GalleryBar) Update() int { return -1 }

// Draw is a no-op placeholder.
func (g *GalleryBar) Draw(any) {}
