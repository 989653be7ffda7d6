//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"infinite-lights/internal/app"
	"infinite-lights/internal/lights"
	"infinite-lights/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts := lights.DefaultOptions()
	if cfg.Options != "" {
		loaded, err := lights.LoadOptions(cfg.Options)
		if err != nil {
			log.Fatalf("load options: %v", err)
		}
		opts = *loaded
	} else if err := opts.Validate(); err != nil {
		log.Fatalf("default options: %v", err)
	}

	seed := cfg.ResolveSeed(nil, nil)
	game, err := app.New(scene.New(opts), cfg, seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Infinite Lights")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
