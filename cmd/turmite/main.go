//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"turmites/internal/app"
	"turmites/internal/core"
	_ "turmites/internal/turmite"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Behavior]
	if !ok {
		log.Fatalf("unknown behavior %q", cfg.Behavior)
	}

	sim, err := factory(cfg.ToMap())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("turmites: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
