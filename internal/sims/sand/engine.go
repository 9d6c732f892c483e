package sand

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultDensity is the occupancy used when seeding a fresh board.
const DefaultDensity = 0.3

var (
	// ErrInvalidDimensions is returned when constructing an engine with a
	// non-positive width or height, or one whose cell count overflows int.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfRange is returned when reading a cell outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
)

// Rand is the random source threaded through seeding and ticking.
type Rand interface {
	// Bool returns a fair coin flip.
	Bool() bool
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
}

// Engine holds a falling-sand grid. Row 0 is the ground; y grows upward.
//
// Engine is not safe for concurrent use.
type Engine struct {
	w, h  int
	cur   []bool
	nxt   []bool
	moves int
}

// New allocates an empty engine of the given dimensions.
func New(w, h int) (*Engine, error) {
	if w <= 0 || h <= 0 || h > math.MaxInt/w {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[sand.New] %dx%d", w, h)
	}
	total := w * h
	return &Engine{w: w, h: h, cur: make([]bool, total), nxt: make([]bool, total)}, nil
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.w }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.h }

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.w && y >= 0 && y < e.h
}

// Seed marks each cell occupied with probability density. Cells that miss the
// draw keep their current state.
func (e *Engine) Seed(density float64, rng Rand) {
	density = min(max(density, 0), 1)
	threshold := 1 - density
	for x := 0; x < e.w; x++ {
		for y := 0; y < e.h; y++ {
			if rng.Float64() > threshold {
				e.cur[y*e.w+x] = true
			}
		}
	}
}

// Clear empties every cell.
func (e *Engine) Clear() {
	for i := range e.cur {
		e.cur[i] = false
	}
	e.moves = 0
}

// Reset clears the grid and seeds it again without reallocating.
func (e *Engine) Reset(density float64, rng Rand) {
	e.Clear()
	e.Seed(density, rng)
}

// SetOccupied places sand at (x, y). Coordinates outside the grid are ignored.
func (e *Engine) SetOccupied(x, y int) {
	if !e.inBounds(x, y) {
		return
	}
	e.cur[y*e.w+x] = true
}

// IsOccupied reports whether (x, y) holds sand.
func (e *Engine) IsOccupied(x, y int) (bool, error) {
	if !e.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfRange, "(%d,%d) outside %dx%d", x, y, e.w, e.h)
	}
	return e.cur[y*e.w+x], nil
}

// Occupied counts the cells holding sand.
func (e *Engine) Occupied() int {
	n := 0
	for _, c := range e.cur {
		if c {
			n++
		}
	}
	return n
}

// Moves reports how many cells moved during the last Tick. Zero means the
// grid has settled.
func (e *Engine) Moves() int { return e.moves }

// Snapshot copies the current grid into dst (row-major, row 0 first) and
// returns it, growing dst when needed.
func (e *Engine) Snapshot(dst []bool) []bool {
	if cap(dst) < len(e.cur) {
		dst = make([]bool, len(e.cur))
	}
	dst = dst[:len(e.cur)]
	copy(dst, e.cur)
	return dst
}

// Tick advances the grid by one step. Every movement decision reads the
// pre-tick state in cur; writes only go to nxt. Two cells targeting the same
// empty destination both write it, so the later one in traversal order wins
// and one grain is lost.
func (e *Engine) Tick(rng Rand) {
	w, h := e.w, e.h
	cur, nxt := e.cur, e.nxt
	copy(nxt, cur)
	moves := 0

	for y := 1; y < h; y++ {
		row := y * w
		below := row - w
		for x := 0; x < w; x++ {
			if !cur[row+x] {
				continue
			}
			if !cur[below+x] {
				nxt[row+x] = false
				nxt[below+x] = true
				moves++
				continue
			}

			first, second := x-1, x+1
			if !rng.Bool() {
				first, second = second, first
			}
			for _, nx := range [2]int{first, second} {
				if nx < 0 || nx >= w || cur[below+nx] {
					continue
				}
				nxt[row+x] = false
				nxt[below+nx] = true
				moves++
				break
			}
		}
	}

	e.cur, e.nxt = nxt, cur
	e.moves = moves
}
