package core

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOutOfBounds is returned when a coordinate falls outside the grid.
var ErrOutOfBounds = errors.New("index out of bounds")

// Grid stores a 2D grid of cell values in row-major order (index = x + y*W).
// The dimensions never change after construction.
type Grid[V any] struct {
	w, h int
	data []V
}

// NewGrid allocates a grid with the given dimensions. Every cell holds the
// zero value of V.
func NewGrid[V any](w, h int) *Grid[V] {
	w, h, n := checkedArea(w, h)
	return &Grid[V]{w: w, h: h, data: make([]V, n)}
}

// NewGridFilledWith allocates a grid with every cell set to value.
func NewGridFilledWith[V any](value V, w, h int) *Grid[V] {
	g := NewGrid[V](w, h)
	g.Fill(value)
	return g
}

// checkedArea validates the dimensions and returns them with the cell count.
// A grid without cells is normalised to 0x0.
func checkedArea(w, h int) (int, int, int) {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("core: negative grid size %dx%d", w, h))
	}
	hi, lo := bits.Mul64(uint64(w), uint64(h))
	if hi != 0 || lo > math.MaxInt {
		panic(fmt.Sprintf("core: grid size %dx%d overflows", w, h))
	}
	if lo == 0 {
		return 0, 0, 0
	}
	return w, h, int(lo)
}

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.h }

// Len returns the number of cells.
func (g *Grid[V]) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[V]) Cells() []V { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[V]) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[V]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Get returns the value at (x, y).
func (g *Grid[V]) Get(x, y int) (V, error) {
	if !g.InBounds(x, y) {
		var zero V
		return zero, g.outOfBounds(x, y)
	}
	return g.data[y*g.w+x], nil
}

// GetMut returns a pointer to the cell at (x, y). The pointer stays valid for
// the lifetime of the grid.
func (g *Grid[V]) GetMut(x, y int) (*V, error) {
	if !g.InBounds(x, y) {
		return nil, g.outOfBounds(x, y)
	}
	return &g.data[y*g.w+x], nil
}

// Set stores value at (x, y).
func (g *Grid[V]) Set(x, y int, value V) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.data[y*g.w+x] = value
	return nil
}

// Rows returns the cells of rows [y0, y1). The returned slice is capped so
// appending to it can never reach into the following row.
func (g *Grid[V]) Rows(y0, y1 int) []V {
	if y0 < 0 || y1 > g.h || y0 > y1 {
		panic(fmt.Sprintf("core: row range [%d,%d) outside grid of height %d", y0, y1, g.h))
	}
	lo, hi := y0*g.w, y1*g.w
	return g.data[lo:hi:hi]
}

// Fill sets every cell to value.
func (g *Grid[V]) Fill(value V) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[V]) Clone() *Grid[V] {
	data := make([]V, len(g.data))
	copy(data, g.data)
	return &Grid[V]{w: g.w, h: g.h, data: data}
}

func (g *Grid[V]) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
}
