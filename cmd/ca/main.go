//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dungenon/internal/app"
	"dungenon/internal/core"
	_ "dungenon/internal/sims/territory"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("dungenon: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
