package faction

const (
	// groupSize is the number of cells computed per window position.
	groupSize = 4
	// windowCols covers a group plus one neighbour column on each side.
	windowCols = groupSize + 2
)

// window holds a 3x6 block of the previous generation: the rows above, at and
// below the current row, for columns x-1 through x+groupSize.
type window [3][windowCols]Faction

// stepRowWindowed computes one row using a sliding window over interior
// cells. Each cell's neighbours are read once per row instead of up to three
// times. Edge rows, the first and last columns and any tail narrower than a
// group fall back to nextCell.
func stepRowWindowed(prev, out []Faction, w, h, y int, tick uint64) {
	if y == 0 || y == h-1 || w < windowCols {
		stepRowScalar(prev, out, w, h, y, tick)
		return
	}
	above := prev[(y-1)*w : y*w]
	row := prev[y*w : (y+1)*w]
	below := prev[(y+1)*w : (y+2)*w]

	out[0] = nextCell(prev, w, h, 0, y, tick)

	var win window
	for c := 0; c < 2; c++ {
		win[0][c], win[1][c], win[2][c] = above[c], row[c], below[c]
	}
	x := 1
	// Columns x+1..x+groupSize must exist; the last column stays on the
	// scalar path.
	for ; x+groupSize < w; x += groupSize {
		for k := 0; k < groupSize; k++ {
			c := x + 1 + k
			win[0][2+k], win[1][2+k], win[2][2+k] = above[c], row[c], below[c]
		}
		for i := 0; i < groupSize; i++ {
			out[x+i] = win.cell(i, tick, x+i, y)
		}
		for r := range win {
			win[r][0], win[r][1] = win[r][groupSize], win[r][groupSize+1]
		}
	}
	for ; x < w; x++ {
		out[x] = nextCell(prev, w, h, x, y, tick)
	}
}

// cell applies the diffusion rule to the cell in window column i+1. Card
// order matches nextCell.
func (win *window) cell(i int, tick uint64, x, y int) Faction {
	self := win[1][i+1]
	if self == Void {
		return Void
	}
	var d deck
	d.add(self)
	d.add(win[0][i])
	d.add(win[0][i+1])
	d.add(win[0][i+2])
	d.add(win[1][i])
	d.add(win[1][i+2])
	d.add(win[2][i])
	d.add(win[2][i+1])
	d.add(win[2][i+2])
	if d.n == 0 {
		return self
	}
	return d.draw(tick, x, y)
}
