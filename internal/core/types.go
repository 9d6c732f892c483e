package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// FromScreen maps a top-down screen cell (row 0 at the top) to grid
// coordinates where y grows upward. ok is false outside the grid.
func (s Size) FromScreen(col, row int) (x, y int, ok bool) {
	if col < 0 || col >= s.W || row < 0 || row >= s.H {
		return 0, 0, false
	}
	return col, s.H - 1 - row, true
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Painter is implemented by sims that accept pointer painting in grid
// coordinates.
type Painter interface {
	Paint(x, y int)
}

// Sounder gives audible feedback for host actions.
type Sounder interface {
	Click()
	Reset()
}

// Silent is a Sounder that does nothing.
type Silent struct{}

func (Silent) Click() {}
func (Silent) Reset() {}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
