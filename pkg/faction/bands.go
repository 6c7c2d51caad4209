package faction

import "dungenon/pkg/core"

const (
	// bandsPerWorker oversubscribes workers so uneven bands balance out.
	bandsPerWorker = 4
	// minBandCells keeps bands large enough to amortise goroutine start-up.
	minBandCells = 1 << 12
)

// band is a contiguous range of rows [y0, y1) together with the slice of the
// scratch grid it alone writes.
type band struct {
	y0, y1 int
	out    []Faction
}

// partition splits next into disjoint row bands. Each band owns a capped
// sub-slice of the scratch storage, so no two workers can address the same
// cell.
func partition(next *core.Grid[Faction], rowsPerBand int) []band {
	h := next.Height()
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}
	bands := make([]band, 0, (h+rowsPerBand-1)/rowsPerBand)
	for y0 := 0; y0 < h; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, h)
		bands = append(bands, band{y0: y0, y1: y1, out: next.Rows(y0, y1)})
	}
	return bands
}

// bandRows picks the band height for a w x h grid.
func bandRows(w, h, workers, fixed int) int {
	if fixed > 0 {
		return min(fixed, h)
	}
	target := max(workers*bandsPerWorker, 1)
	rows := (h + target - 1) / target
	rows = max(rows, (minBandCells+w-1)/w, 1)
	return min(rows, h)
}

func (b band) compute(prev []Faction, w, h int, tick uint64, kernel rowKernel) {
	for y := b.y0; y < b.y1; y++ {
		off := (y - b.y0) * w
		kernel(prev, b.out[off:off+w], w, h, y, tick)
	}
}
