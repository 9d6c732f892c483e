package sand

import (
	"context"
	"errors"
	"testing"
)

func TestRunSettleReachesRest(t *testing.T) {
	cfg := Config{Width: 20, Height: 12, Density: 0.3, Seed: 8}
	res, err := RunSettle(cfg, 500)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Settled {
		t.Fatalf("grid did not settle: %s", res)
	}
	if res.Final > res.Initial || res.Lost() < 0 {
		t.Fatalf("population grew: %s", res)
	}
	if res.Initial == 0 || res.PeakMoves == 0 {
		t.Fatalf("expected a non-trivial run: %s", res)
	}
}

func TestRunSettleRespectsTickLimit(t *testing.T) {
	cfg := Config{Width: 10, Height: 40, Density: 0.3, Seed: 2}
	res, err := RunSettle(cfg, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Ticks != 3 || res.Settled {
		t.Fatalf("expected an unsettled 3-tick run: %s", res)
	}
}

func TestRunSettleInvalidConfig(t *testing.T) {
	if _, err := RunSettle(Config{Width: 0, Height: 5}, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v", err)
	}
}

func TestSweepMatchesSerialRuns(t *testing.T) {
	cfg := Config{Width: 16, Height: 10}
	densities := []float64{0.1, 0.3}
	seeds := []int64{1, 2, 3}

	results, err := Sweep(context.Background(), cfg, densities, seeds, 200, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(densities)*len(seeds) {
		t.Fatalf("got %d results", len(results))
	}
	for i, d := range densities {
		for j, s := range seeds {
			run := cfg
			run.Density, run.Seed = d, s
			want, err := RunSettle(run, 200)
			if err != nil {
				t.Fatal(err)
			}
			if got := results[i*len(seeds)+j]; got != want {
				t.Fatalf("result %d,%d = %s, want %s", i, j, got, want)
			}
		}
	}
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, Config{Width: 8, Height: 8}, []float64{0.3}, []int64{1, 2}, 50, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
