package core

import (
	"testing"
	"time"
)

func TestSizeFromScreenFlipsRows(t *testing.T) {
	s := Size{W: 4, H: 3}
	cases := []struct {
		col, row int
		x, y     int
		ok       bool
	}{
		{col: 0, row: 0, x: 0, y: 2, ok: true},
		{col: 3, row: 2, x: 3, y: 0, ok: true},
		{col: 1, row: 1, x: 1, y: 1, ok: true},
		{col: -1, row: 0},
		{col: 4, row: 0},
		{col: 0, row: 3},
		{col: 0, row: -1},
	}
	for _, tc := range cases {
		x, y, ok := s.FromScreen(tc.col, tc.row)
		if ok != tc.ok {
			t.Fatalf("FromScreen(%d,%d) ok=%v, want %v", tc.col, tc.row, ok, tc.ok)
		}
		if ok && (x != tc.x || y != tc.y) {
			t.Fatalf("FromScreen(%d,%d) = (%d,%d), want (%d,%d)", tc.col, tc.row, x, y, tc.x, tc.y)
		}
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
	g = NewByteGrid(5, 2)
	g.Cells()[g.Index(4, 1)] = 9
	if !g.InBounds(4, 1) || g.InBounds(5, 1) || g.InBounds(0, 2) {
		t.Fatal("InBounds disagrees with dimensions")
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared: %d", i, v)
		}
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFixedIntervalStepsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedInterval(100 * time.Millisecond)
	fs.SetClock(clock.now)

	if !fs.ShouldStep() {
		t.Fatal("expected the first call to fire immediately")
	}
	clock.t = clock.t.Add(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("did not expect a step after 40ms")
	}
	clock.t = clock.t.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step once 100ms accumulated")
	}
	if fs.ShouldStep() {
		t.Fatal("accumulator should be drained after stepping")
	}
}

func TestFixedStepPauseDropsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedInterval(50 * time.Millisecond)
	fs.SetClock(clock.now)
	fs.ShouldStep()

	fs.Pause()
	clock.t = clock.t.Add(time.Second)
	if fs.ShouldStep() {
		t.Fatal("paused time must not count toward the next step")
	}
	clock.t = clock.t.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step one interval after resuming")
	}
}

func TestIntervalDefaults(t *testing.T) {
	if got := NewFixedInterval(0).Interval(); got != DefaultInterval {
		t.Fatalf("interval = %v, want %v", got, DefaultInterval)
	}
	if got := NewFixedStep(0).Interval(); got != time.Second/60 {
		t.Fatalf("tps fallback interval = %v", got)
	}
}

func TestParameterSnapshotLookupAndClamp(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "3"}}},
		{Name: "B", Params: []Parameter{{Key: "density", Value: "0.3"}}},
	}}
	p, ok := snap.Lookup("density")
	if !ok || p.Value != "0.3" {
		t.Fatalf("lookup density = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}

	ctrl := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if got := ctrl.Clamp(1.5); got != 1 {
		t.Fatalf("clamp high = %f", got)
	}
	if got := ctrl.Clamp(-0.5); got != 0 {
		t.Fatalf("clamp low = %f", got)
	}
}

func TestRegisterIgnoresInvalidEntries(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
