package sand

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	pcore "sand-ca/pkg/core"
)

// SettleResult captures telemetry from a deterministic run that ticks until
// the grid stops moving.
type SettleResult struct {
	Density float64
	Seed    int64
	// Initial and Final hold the population before the first and after the
	// last tick. They differ only when grains collided.
	Initial int
	Final   int
	// Ticks counts the steps executed, including the one that detected rest.
	Ticks int
	// Settled reports whether a tick with zero moves was reached.
	Settled   bool
	PeakMoves int
}

// Lost returns the number of grains merged away by collisions.
func (r SettleResult) Lost() int { return r.Initial - r.Final }

func (r SettleResult) String() string {
	return fmt.Sprintf("density=%.2f seed=%d initial=%d final=%d lost=%d ticks=%d settled=%v peak=%d",
		r.Density, r.Seed, r.Initial, r.Final, r.Lost(), r.Ticks, r.Settled, r.PeakMoves)
}

// RunSettle seeds a fresh grid from cfg and ticks until nothing moves or
// maxTicks steps have run.
func RunSettle(cfg Config, maxTicks int) (SettleResult, error) {
	eng, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return SettleResult{}, err
	}
	rng := pcore.NewRNG(cfg.Seed)
	eng.Reset(cfg.Density, rng)

	res := SettleResult{Density: cfg.Density, Seed: cfg.Seed, Initial: eng.Occupied()}
	for res.Ticks < maxTicks {
		eng.Tick(rng)
		res.Ticks++
		moves := eng.Moves()
		if moves > res.PeakMoves {
			res.PeakMoves = moves
		}
		if moves == 0 {
			res.Settled = true
			break
		}
	}
	res.Final = eng.Occupied()
	return res, nil
}

// Sweep runs RunSettle for every (density, seed) pair using at most workers
// goroutines. Results follow the input order, densities outer.
func Sweep(ctx context.Context, cfg Config, densities []float64, seeds []int64, maxTicks, workers int) ([]SettleResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]SettleResult, len(densities)*len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, density := range densities {
		for j, seed := range seeds {
			idx := i*len(seeds) + j
			run := cfg
			run.Density = density
			run.Seed = seed
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := RunSettle(run, maxTicks)
				if err != nil {
					return err
				}
				results[idx] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
