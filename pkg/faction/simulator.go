package faction

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dungenon/pkg/core"
	"dungenon/pkg/level"
)

var (
	ErrNilLevel          = errors.New("faction: nil level")
	ErrDimensionMismatch = errors.New("faction: current and scratch dimensions differ")
	ErrEmptyGrid         = errors.New("faction: grid has no cells")
	ErrAliasedBuffers    = errors.New("faction: current and scratch share storage")
)

// tickMultiplier advances the tick seed between steps. It is odd, so an odd
// state stays odd and never reaches zero.
const tickMultiplier = 0xd1342543de82ef95

// Kernel selects the row implementation. Both produce identical output.
type Kernel uint8

const (
	// KernelWindowed uses the 4-wide sliding window on interior cells.
	KernelWindowed Kernel = iota
	// KernelScalar evaluates every cell independently.
	KernelScalar
)

func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	default:
		return "windowed"
	}
}

// ParseKernel maps a kernel name as printed by String back to its value.
func ParseKernel(name string) (Kernel, error) {
	switch name {
	case "windowed", "":
		return KernelWindowed, nil
	case "scalar":
		return KernelScalar, nil
	}
	return 0, fmt.Errorf("faction: unknown kernel %q", name)
}

func (k Kernel) row() rowKernel {
	if k == KernelScalar {
		return stepRowScalar
	}
	return stepRowWindowed
}

// Options configures a Simulator.
type Options struct {
	Seed        uint64 // Seed for reproducible runs (0 = random)
	Workers     int    // Workers caps parallel bands (<= 0 = GOMAXPROCS)
	RowsPerBand int    // RowsPerBand fixes the band height (<= 0 = automatic)
	Kernel      Kernel
}

// Simulator advances faction ownership one generation per Step.
//
// A Simulator is not safe for concurrent use; it parallelises internally.
type Simulator struct {
	state       uint64
	workers     int
	rowsPerBand int
	kernel      Kernel
	steps       uint64
}

// New creates a simulator. A nil opts uses defaults and a random seed.
func New(opts *Options) *Simulator {
	if opts == nil {
		opts = &Options{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return newSimulator(seed, *opts)
}

// NewSeeded creates a simulator with default options and a fixed seed. Unlike
// New, a zero seed is used as given.
func NewSeeded(seed uint64) *Simulator {
	return newSimulator(seed, Options{})
}

func newSimulator(seed uint64, opts Options) *Simulator {
	s := &Simulator{
		state:       seed<<1 | 1,
		rowsPerBand: opts.RowsPerBand,
		kernel:      opts.Kernel,
	}
	s.SetWorkers(opts.Workers)
	return s
}

// SetWorkers changes the number of bands computed concurrently. Values <= 0
// select runtime.GOMAXPROCS(0). The output does not depend on this setting.
func (s *Simulator) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	s.workers = n
}

// Workers returns the current worker limit.
func (s *Simulator) Workers() int { return s.workers }

// SetKernel switches the row implementation for subsequent steps.
func (s *Simulator) SetKernel(k Kernel) { s.kernel = k }

// Kernel returns the row implementation in use.
func (s *Simulator) Kernel() Kernel { return s.kernel }

// Steps returns the number of completed steps.
func (s *Simulator) Steps() uint64 { return s.steps }

// TickSeed returns the seed the next Step will use.
func (s *Simulator) TickSeed() uint64 { return s.state * tickMultiplier }

// Step computes the next generation of current into scratch and then swaps
// the two levels: on return current holds the new generation and scratch the
// previous one. Shape and aliasing errors are reported before any cell is
// touched, and a failed Step does not consume a tick seed.
func (s *Simulator) Step(current, scratch *level.Level[Faction]) error {
	if err := validate(current, scratch); err != nil {
		return err
	}
	s.state *= tickMultiplier
	s.compute(current.Grid(), scratch.Grid(), s.state)
	current.Swap(scratch)
	s.steps++
	return nil
}

// StepN runs n steps, stopping at the first error.
func (s *Simulator) StepN(current, scratch *level.Level[Faction], n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(current, scratch); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func validate(current, scratch *level.Level[Faction]) error {
	if current == nil || scratch == nil {
		return ErrNilLevel
	}
	if !current.SameShape(scratch) {
		return fmt.Errorf("%w: current %dx%d, scratch %dx%d", ErrDimensionMismatch,
			current.Width(), current.Height(), scratch.Width(), scratch.Height())
	}
	if len(current.Cells()) == 0 {
		return ErrEmptyGrid
	}
	if &current.Cells()[0] == &scratch.Cells()[0] {
		return ErrAliasedBuffers
	}
	return nil
}

// compute fills next from prev. prev is only read and every band writes a
// disjoint slice of next, so bands run without synchronisation until the
// final join.
func (s *Simulator) compute(prev, next *core.Grid[Faction], tick uint64) {
	w, h := prev.Width(), prev.Height()
	cells := prev.Cells()
	kernel := s.kernel.row()
	bands := partition(next, bandRows(w, h, s.workers, s.rowsPerBand))

	if s.workers == 1 || len(bands) == 1 {
		for _, b := range bands {
			b.compute(cells, w, h, tick, kernel)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, b := range bands {
		g.Go(func() error {
			b.compute(cells, w, h, tick, kernel)
			return nil
		})
	}
	_ = g.Wait()
}
