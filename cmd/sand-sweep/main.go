package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"sand-ca/internal/sims/sand"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

// seedRange returns n consecutive seeds starting at first.
func seedRange(first int64, n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("-seeds must be positive, got %d", n)
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds, nil
}

func main() {
	width := flag.Int("w", 50, "grid width")
	height := flag.Int("h", 30, "grid height")
	maxTicks := flag.Int("ticks", 1000, "tick limit per run")
	seeds := flag.Int("seeds", 8, "number of seeds per density")
	firstSeed := flag.Int64("seed", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	var densities floatList
	flag.Var(&densities, "density", "comma separated densities to sweep (repeatable)")
	flag.Parse()

	if *maxTicks <= 0 {
		log.Fatalf("-ticks must be positive, got %d", *maxTicks)
	}
	if len(densities) == 0 {
		densities = floatList{0.05, 0.1, 0.2, 0.3, 0.5}
	}
	seedList, err := seedRange(*firstSeed, *seeds)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := sand.Config{Width: *width, Height: *height}
	fmt.Printf("Sweeping %d densities x %d seeds on %dx%d (%d workers, %d ticks max)\n",
		len(densities), len(seedList), cfg.Width, cfg.Height, *workers, *maxTicks)

	results, err := sand.Sweep(ctx, cfg, densities, seedList, *maxTicks, *workers)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%8s %8s %8s %8s %8s %8s\n", "density", "initial", "lost", "ticks", "settled", "peak")
	for i, d := range densities {
		var initial, lost, ticks, peak, settled int
		for _, r := range results[i*len(seedList) : (i+1)*len(seedList)] {
			initial += r.Initial
			lost += r.Lost()
			ticks += r.Ticks
			peak = max(peak, r.PeakMoves)
			if r.Settled {
				settled++
			}
		}
		n := max(len(seedList), 1)
		fmt.Printf("%8.2f %8.1f %8.2f %8.1f %5d/%-2d %8d\n",
			d, float64(initial)/float64(n), float64(lost)/float64(n), float64(ticks)/float64(n), settled, len(seedList), peak)
	}
}
