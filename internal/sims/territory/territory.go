// Package territory runs the faction diffusion automaton as a registered sim:
// it owns the front/back level pair and seeds the starting map.
package territory

import (
	"image/color"

	"dungenon/internal/core"
	"dungenon/internal/render"
	pcore "dungenon/pkg/core"
	"dungenon/pkg/faction"
	"dungenon/pkg/level"
)

// World holds the current and scratch generations of a territory map.
type World struct {
	cfg Config

	front *level.Level[faction.Faction]
	back  *level.Level[faction.Faction]
	sim   *faction.Simulator

	display []uint8
	palette []color.RGBA

	frontier []bool
	mask     []float32
}

// New returns a territory world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// map is seeded from cfg.Seed.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		front:   level.New[faction.Faction](cfg.Width, cfg.Height),
		back:    level.New[faction.Faction](cfg.Width, cfg.Height),
		palette: render.FactionPalette(),
	}
	w.display = make([]uint8, len(w.front.Cells()))
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "factions" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.front.Width(), H: w.front.Height()}
}

// Cells exposes the palette-indexed display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Palette exposes the colours used for Cells.
func (w *World) Palette() []color.RGBA { return w.palette }

// Level exposes the current generation.
func (w *World) Level() *level.Level[faction.Faction] { return w.front }

// Census counts the current generation.
func (w *World) Census() faction.Census { return faction.Count(w.front.Cells()) }

// Simulator exposes the stepping engine of the current run.
func (w *World) Simulator() *faction.Simulator { return w.sim }

// Generation returns the number of steps since the last Reset.
func (w *World) Generation() uint64 { return w.sim.Steps() }

// Reset rebuilds the starting map. A zero seed falls back to the configured
// seed; the same seed always yields the same map and the same run.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.sim = faction.NewSeeded(uint64(effective))
	w.sim.SetWorkers(w.cfg.Workers)
	w.sim.SetKernel(w.cfg.Kernel)

	rng := pcore.NewRNG(effective)
	w.front.
		ApplyGenerator(voidPass(rng, w.cfg.VoidChance)).
		ApplyGenerator(fillPass(rng, w.cfg.Fill, w.cfg.Factions))
	w.back.FillWith(faction.Neutral)
	w.rebuildDisplay()
}

// Step advances the map by one generation.
func (w *World) Step() {
	if len(w.front.Cells()) == 0 {
		return
	}
	// Both levels are allocated together with identical shapes, so an
	// error here means the world itself is corrupt.
	if err := w.sim.Step(w.front, w.back); err != nil {
		panic(err)
	}
	w.rebuildDisplay()
}

// FrontierMask returns 1 for every owned cell bordering another faction and 0
// elsewhere. The slice is reused between calls.
func (w *World) FrontierMask() []float32 {
	var n int
	w.frontier, n = faction.Frontier(w.front, w.frontier)
	if len(w.mask) != len(w.frontier) {
		w.mask = make([]float32, len(w.frontier))
	}
	if n == 0 {
		clear(w.mask)
		return w.mask
	}
	for i, contested := range w.frontier {
		w.mask[i] = 0
		if contested {
			w.mask[i] = 1
		}
	}
	return w.mask
}

type layer = level.Level[faction.Faction]

func voidPass(rng *pcore.RNG, chance float64) level.Generator[faction.Faction] {
	return level.GeneratorFunc[faction.Faction](func(l *layer) {
		sprinkleVoid(l, rng, chance)
	})
}

func fillPass(rng *pcore.RNG, fill Fill, n int) level.Generator[faction.Faction] {
	if fill == FillScatter {
		return level.GeneratorFunc[faction.Faction](func(l *layer) {
			scatterFactions(l, rng, n)
		})
	}
	return level.GeneratorFunc[faction.Faction](func(l *layer) {
		placeFactions(l, rng, n)
	})
}

func (w *World) rebuildDisplay() {
	render.EncodeFactions(w.display, w.front.Cells())
}

// sprinkleVoid resets the level to neutral and marks cells void with the
// given probability.
func sprinkleVoid(l *layer, rng *pcore.RNG, chance float64) {
	cells := l.Cells()
	for i := range cells {
		cells[i] = faction.Neutral
		if rng.Chance(chance) {
			cells[i] = faction.Void
		}
	}
}

// placeFactions claims one random neutral cell per faction. Factions that
// cannot find a free cell after a bounded number of attempts are skipped.
func placeFactions(l *layer, rng *pcore.RNG, n int) {
	w, h := l.Width(), l.Height()
	if w == 0 || h == 0 {
		return
	}
	attempts := 8 * (w*h + n)
	for id := 0; id < n && attempts > 0; attempts-- {
		tile, err := l.TileMut(rng.IntN(w), rng.IntN(h))
		if err != nil || *tile != faction.Neutral {
			continue
		}
		*tile = faction.Owned(uint64(id))
		id++
	}
}

// scatterFactions assigns every non-void cell to a random faction.
func scatterFactions(l *layer, rng *pcore.RNG, n int) {
	if n <= 0 {
		return
	}
	cells := l.Cells()
	for i, f := range cells {
		if f == faction.Void {
			continue
		}
		cells[i] = faction.Owned(uint64(rng.IntN(n)))
	}
}

func init() {
	core.Register("factions", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
