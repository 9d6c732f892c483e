package ui

import (
	"testing"

	"sand-ca/internal/sims/sand"
)

func newSandSim(t *testing.T) *sand.Sim {
	t.Helper()
	sim, err := sand.NewSim(sand.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestControlSetAdjustsDensity(t *testing.T) {
	sim := newSandSim(t)
	cs := newControlSet(sim, 220)
	if len(cs.controls) != 1 {
		t.Fatalf("controls = %d, want 1", len(cs.controls))
	}
	cs.refresh(sim.Parameters())
	state := &cs.controls[0]
	if !state.hasValue || state.value != "0.30" {
		t.Fatalf("density state = %+v", state)
	}

	plus := state.plusRect
	if !cs.click(plus.Min.X+1, plus.Min.Y+1) {
		t.Fatal("click on plus button not consumed")
	}
	cs.refresh(sim.Parameters())
	if got := cs.controls[0].value; got != "0.35" {
		t.Fatalf("density after plus = %s, want 0.35", got)
	}

	if cs.click(0, 0) {
		t.Fatal("click outside the buttons must not be consumed")
	}
}

func TestControlSetClampsAtBounds(t *testing.T) {
	sim := newSandSim(t)
	sim.SetFloatParameter("density", 1)
	cs := newControlSet(sim, 220)
	cs.refresh(sim.Parameters())
	state := &cs.controls[0]
	if cs.canAdjust(state, 1) {
		t.Fatal("plus should be disabled at the maximum")
	}
	if !cs.canAdjust(state, -1) {
		t.Fatal("minus should be enabled at the maximum")
	}
	cs.adjust(state, 1)
	if state.floatValue != 1 {
		t.Fatalf("value moved past max: %f", state.floatValue)
	}
}

func TestControlLayoutStacksRows(t *testing.T) {
	cs := newControlSet(newSandSim(t), 200)
	r := cs.controls[0]
	if r.plusRect.Max.X != 200-panelPadding {
		t.Fatalf("plus button not right aligned: %v", r.plusRect)
	}
	if r.minusRect.Max.X != r.plusRect.Min.X-buttonGap {
		t.Fatalf("minus button should sit left of plus: %v %v", r.minusRect, r.plusRect)
	}
	if cs.bottom() != controlsTop+lineHeight {
		t.Fatalf("bottom = %d", cs.bottom())
	}
}

func TestStatusLinesSkipsControls(t *testing.T) {
	sim := newSandSim(t)
	lines := statusLines(sim.Parameters(), map[string]bool{"density": true})
	for _, line := range lines {
		if line == "Density: 0.3" {
			t.Fatal("adjustable parameter leaked into status lines")
		}
	}
	if len(lines) != 6 {
		t.Fatalf("status lines = %v", lines)
	}
	if lines[0] != "Width: 50" {
		t.Fatalf("first line = %q", lines[0])
	}
}
