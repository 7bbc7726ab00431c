//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fractal-gallery/internal/app"
	_ "fractal-gallery/internal/sims/elementary"
	_ "fractal-gallery/internal/sims/solids"
	"fractal-gallery/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gallery, err := app.LoadGallery(cfg.Gallery)
	if err != nil {
		log.Fatalf("gallery: %v", err)
	}
	start := gallery.Index(cfg.Scene)
	if start < 0 {
		log.Fatalf("unknown scene %q", cfg.Scene)
	}

	game, err := app.New(cfg, gallery, start)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("fractal-gallery: " + gallery.Scenes[start].Label())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.ViewWidth+cfg.PanelWidth, cfg.ViewHeight+ui.BarHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
