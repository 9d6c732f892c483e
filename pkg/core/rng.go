package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the generator sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a uniform draw in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// NextSeed draws a fresh non-zero seed from the sequence.
func (r *RNG) NextSeed() int64 {
	for {
		if s := r.r.Int64(); s != 0 {
			return s
		}
	}
}
