package ui

import (
	"image"
	"math"
	"strconv"

	"sand-ca/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlSet tracks the HUD-adjustable parameters of a sim without depending
// on a renderer.
type controlSet struct {
	controls []hudControlState
	setter   core.FloatParameterSetter
	width    int
}

func newControlSet(sim core.Sim, width int) *controlSet {
	cs := &controlSet{width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeFloat {
				continue
			}
			cs.controls = append(cs.controls, hudControlState{control: ctrl, value: "--"})
		}
		cs.layout()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		cs.setter = setter
	}
	return cs
}

func (cs *controlSet) layout() {
	if len(cs.controls) == 0 || cs.width <= 0 {
		return
	}
	for i := range cs.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(cs.width-panelPadding-buttonSize, buttonY, cs.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		cs.controls[i].top = top
		cs.controls[i].minusRect = minusRect
		cs.controls[i].plusRect = plusRect
	}
}

// bottom returns the first free y coordinate below the controls.
func (cs *controlSet) bottom() int {
	return controlsTop + len(cs.controls)*lineHeight
}

func (cs *controlSet) refresh(snapshot core.ParameterSnapshot) {
	for i := range cs.controls {
		state := &cs.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

// click applies a press at panel-local coordinates. It reports whether a
// control consumed the press.
func (cs *controlSet) click(px, py int) bool {
	for i := range cs.controls {
		state := &cs.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, py, state.minusRect) {
			cs.adjust(state, -1)
			return true
		}
		if pointInRect(px, py, state.plusRect) {
			cs.adjust(state, 1)
			return true
		}
	}
	return false
}

func (cs *controlSet) adjust(state *hudControlState, direction int) {
	if state == nil || direction == 0 || cs.setter == nil {
		return
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*controlStep(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if cs.setter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
}

func (cs *controlSet) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || cs.setter == nil || !state.hasValue {
		return false
	}
	target := state.floatValue + float64(direction)*controlStep(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
		return false
	}
	return true
}

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := controlStep(ctrl); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// statusLines flattens the non-adjustable parameters into "Label: value"
// rows for the info block.
func statusLines(snapshot core.ParameterSnapshot, skip map[string]bool) []string {
	var lines []string
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			if skip[param.Key] {
				continue
			}
			lines = append(lines, param.Label+": "+param.Value)
		}
	}
	return lines
}
