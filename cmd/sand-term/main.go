package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"sand-ca/internal/app"
	"sand-ca/internal/audio"
	"sand-ca/internal/core"
	_ "sand-ca/internal/sims/sand"
	"sand-ca/internal/term"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	clicker := audio.NewClicker(cfg.Mute)
	host := term.New(screen, sim, term.Options{Interval: cfg.Interval, Seed: cfg.Seed, Sound: clicker})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = host.Run(ctx)
	stop()
	clicker.Close()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
