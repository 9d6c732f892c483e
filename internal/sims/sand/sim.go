package sand

import (
	"sand-ca/internal/core"
	pcore "sand-ca/pkg/core"
)

// Sim adapts an Engine to the core.Sim contract. It owns the random source
// and keeps a screen-ordered display buffer in sync with the grid.
type Sim struct {
	cfg     Config
	eng     *Engine
	rng     *pcore.RNG
	display *core.ByteGrid
	ticks   int
}

// NewSim builds a sim from cfg. The grid starts empty; call Reset to seed it.
func NewSim(cfg Config) (*Sim, error) {
	eng, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Sim{
		cfg:     cfg,
		eng:     eng,
		rng:     pcore.NewRNG(cfg.Seed),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "sand" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.eng.w, H: s.eng.h} }

// Cells exposes the display buffer with row 0 at the top of the screen.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Engine exposes the underlying automaton.
func (s *Sim) Engine() *Engine { return s.eng }

// Ticks reports how many steps ran since the last reset.
func (s *Sim) Ticks() int { return s.ticks }

// Reset reseeds the RNG and refills the board at the configured density.
// A zero seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng.Reseed(seed)
	s.eng.Reset(s.cfg.Density, s.rng)
	s.ticks = 0
	s.rebuildDisplay()
}

// Step advances the automaton by one tick.
func (s *Sim) Step() {
	s.eng.Tick(s.rng)
	s.ticks++
	s.rebuildDisplay()
}

// Paint drops sand at grid coordinates (x, y).
func (s *Sim) Paint(x, y int) {
	s.eng.SetOccupied(x, y)
	s.rebuildDisplay()
}

func (s *Sim) rebuildDisplay() {
	w, h := s.eng.w, s.eng.h
	cells := s.display.Cells()
	for y := 0; y < h; y++ {
		src := s.eng.cur[y*w : (y+1)*w]
		dst := cells[(h-1-y)*w : (h-y)*w]
		for x, occupied := range src {
			if occupied {
				dst[x] = 1
			} else {
				dst[x] = 0
			}
		}
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		return NewSim(FromMap(cfg))
	})
}
