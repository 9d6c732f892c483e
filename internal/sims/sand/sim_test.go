package sand

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"sand-ca/internal/core"
)

func TestSimRegistered(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	if !ok {
		t.Fatal("sand sim not registered")
	}
	sim, err := factory(map[string]string{"w": "12", "h": "8", "density": "0.5"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if sim.Name() != "sand" {
		t.Fatalf("name = %q", sim.Name())
	}
	if size := sim.Size(); size.W != 12 || size.H != 8 {
		t.Fatalf("size = %+v", size)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "h": "abc", "density": "1.5", "seed": "x"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values changed config: %+v", c)
	}
	c = FromMap(map[string]string{"w": "7", "h": "9", "density": "0.1", "seed": "-4"})
	want := Config{Width: 7, Height: 9, Density: 0.1, Seed: -4}
	if c != want {
		t.Fatalf("config = %+v, want %+v", c, want)
	}
}

func TestNewSimRejectsInvalidDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewSim(cfg); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestCellsAreScreenOrdered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 4, 3
	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Paint(0, 0)
	sim.Paint(3, 2)
	sim.Paint(9, 9)

	want := []uint8{
		0, 0, 0, 1, // grid row 2
		0, 0, 0, 0, // grid row 1
		1, 0, 0, 0, // grid row 0
	}
	if !slices.Equal(sim.Cells(), want) {
		t.Fatalf("cells = %v, want %v", sim.Cells(), want)
	}

	sim.Step()
	want = []uint8{
		0, 0, 0, 0,
		0, 0, 0, 1,
		1, 0, 0, 0,
	}
	if !slices.Equal(sim.Cells(), want) {
		t.Fatalf("after step cells = %v, want %v", sim.Cells(), want)
	}
	if sim.Ticks() != 1 {
		t.Fatalf("ticks = %d", sim.Ticks())
	}
}

func TestSimResetDeterministic(t *testing.T) {
	sim, err := NewSim(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)
	initial := slices.Clone(sim.Cells())
	if sim.Engine().Occupied() == 0 {
		t.Fatal("reset produced an empty board")
	}

	for i := 0; i < 10; i++ {
		sim.Step()
	}
	sim.Reset(0)
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if sim.Ticks() != 0 {
		t.Fatalf("ticks not cleared: %d", sim.Ticks())
	}

	sim.Reset(777)
	if slices.Equal(initial, sim.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestSimDensityParameter(t *testing.T) {
	sim, err := NewSim(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !sim.SetFloatParameter("density", 1.7) {
		t.Fatal("expected density to be adjustable")
	}
	p, ok := sim.Parameters().Lookup("density")
	if !ok || p.Value != "1" {
		t.Fatalf("density param = %+v, %v", p, ok)
	}
	sim.Reset(3)
	if got, want := sim.Engine().Occupied(), 50*30; got != want {
		t.Fatalf("full density seeded %d, want %d", got, want)
	}
	pop, _ := sim.Parameters().Lookup("population")
	if pop.Value != strconv.Itoa(50*30) {
		t.Fatalf("population param = %q", pop.Value)
	}

	if sim.SetFloatParameter("gravity", 2) {
		t.Fatal("unknown parameter must be rejected")
	}
	if len(sim.ParameterControls()) != 1 {
		t.Fatalf("controls = %+v", sim.ParameterControls())
	}
}
