// Package level wraps a core.Grid with bounds-checked tile access and a
// composition hook for chaining generation passes.
package level

import "dungenon/pkg/core"

// Level is a fixed-size 2D map of tiles of type T.
type Level[T any] struct {
	tiles *core.Grid[T]
}

// New returns a level whose tiles hold the zero value of T.
func New[T any](w, h int) *Level[T] {
	return &Level[T]{tiles: core.NewGrid[T](w, h)}
}

// NewFilledWith returns a level with every tile set to tile.
func NewFilledWith[T any](tile T, w, h int) *Level[T] {
	return &Level[T]{tiles: core.NewGridFilledWith(tile, w, h)}
}

// Width returns the number of columns.
func (l *Level[T]) Width() int { return l.tiles.Width() }

// Height returns the number of rows.
func (l *Level[T]) Height() int { return l.tiles.Height() }

// Tile returns the tile at (x, y), or core.ErrOutOfBounds.
func (l *Level[T]) Tile(x, y int) (T, error) { return l.tiles.Get(x, y) }

// TileMut returns a pointer to the tile at (x, y), or core.ErrOutOfBounds.
func (l *Level[T]) TileMut(x, y int) (*T, error) { return l.tiles.GetMut(x, y) }

// SetTile stores tile at (x, y), or returns core.ErrOutOfBounds.
func (l *Level[T]) SetTile(x, y int, tile T) error { return l.tiles.Set(x, y, tile) }

// FillWith overwrites every tile.
func (l *Level[T]) FillWith(tile T) { l.tiles.Fill(tile) }

// Cells exposes the row-major backing slice.
func (l *Level[T]) Cells() []T { return l.tiles.Cells() }

// Grid exposes the underlying grid.
func (l *Level[T]) Grid() *core.Grid[T] { return l.tiles }

// SameShape reports whether both levels have identical dimensions.
func (l *Level[T]) SameShape(o *Level[T]) bool {
	return l.Width() == o.Width() && l.Height() == o.Height()
}

// Clone returns a deep copy of the level.
func (l *Level[T]) Clone() *Level[T] {
	return &Level[T]{tiles: l.tiles.Clone()}
}

// Swap exchanges the storage of l and o without copying tiles.
func (l *Level[T]) Swap(o *Level[T]) {
	l.tiles, o.tiles = o.tiles, l.tiles
}

// Apply runs gen against the level and returns the level so passes can be
// chained:
//
//	lvl.Apply(carveMaze).Apply(placeRooms)
func (l *Level[T]) Apply(gen func(*Level[T])) *Level[T] {
	gen(l)
	return l
}

// ApplyGenerator is Apply for values implementing Generator.
func (l *Level[T]) ApplyGenerator(g Generator[T]) *Level[T] {
	g.Generate(l)
	return l
}
