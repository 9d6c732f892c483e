//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"sand-ca/internal/app"
	"sand-ca/internal/audio"
	"sand-ca/internal/core"
	_ "sand-ca/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("create sim %q: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	clicker := audio.NewClicker(cfg.Mute)
	defer clicker.Close()

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.Interval, clicker)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sand-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
