package territory

import (
	"fmt"
	"strconv"

	"dungenon/internal/core"
)

// maxCensusRows bounds the faction rows shown on the HUD.
const maxCensusRows = 8

// Parameters reports the configuration and the live census.
func (w *World) Parameters() core.ParameterSnapshot {
	census := w.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.front.Width()),
				intParam("h", "Height", w.front.Height()),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("factions", "Factions", w.cfg.Factions),
				floatParam("void_chance", "Void chance", w.cfg.VoidChance),
				intParam("workers", "Workers", w.sim.Workers()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(w.Generation(), 10)},
				intParam("neutral", "Neutral cells", census.Neutral),
				intParam("void", "Void cells", census.Void),
				intParam("alive", "Factions alive", len(census.Owned)),
			},
		},
	}

	var top []core.Parameter
	for _, id := range census.Factions() {
		if len(top) == maxCensusRows {
			break
		}
		top = append(top, intParam(fmt.Sprintf("faction_%d", id), fmt.Sprintf("Faction %d", id), census.Owned[id]))
	}
	groups = append(groups, core.ParameterGroup{Name: "Territory", Params: top})
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "factions", Label: "Factions", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 254, HasMax: true},
		{Key: "void_chance", Label: "Void chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true, Max: 0.9, HasMax: true},
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 64, HasMax: true},
	}
}

// SetIntParameter adjusts an integer parameter. Changing the faction count
// restarts the map; the worker count applies from the next step.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "factions":
		if value <= 0 {
			return false
		}
		w.cfg.Factions = value
		w.Reset(0)
	case "workers":
		if value < 0 {
			return false
		}
		w.cfg.Workers = value
		w.sim.SetWorkers(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter adjusts a float parameter and restarts the map.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key != "void_chance" {
		return false
	}
	w.cfg.VoidChance = min(max(value, 0), 1)
	w.Reset(0)
	return true
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
