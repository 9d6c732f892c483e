package sand

import (
	"strconv"

	"sand-ca/internal/core"
)

var densityControl = core.ParameterControl{
	Key:    "density",
	Label:  "Density",
	Type:   core.ParamTypeFloat,
	Step:   0.05,
	Min:    0,
	Max:    1,
	HasMin: true,
	HasMax: true,
}

// Parameters reports the sim's configuration and live counters.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("density", "Density", s.cfg.Density),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("ticks", "Ticks", s.ticks),
				intParam("population", "Population", s.eng.Occupied()),
				intParam("moves", "Moves", s.eng.Moves()),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{densityControl}
}

// SetFloatParameter updates a float tunable. The new density applies on the
// next reset.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		s.cfg.Density = densityControl.Clamp(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
