package faction

import "dungenon/pkg/level"

// Frontier marks the owned cells of l that touch a cell owned by another
// faction in their Moore neighbourhood. dst is reused when it has the right
// length; the returned slice holds one entry per cell in row-major order.
// It also returns the number of marked cells.
func Frontier(l *level.Level[Faction], dst []bool) ([]bool, int) {
	cells := l.Cells()
	if len(dst) != len(cells) {
		dst = make([]bool, len(cells))
	}
	w, h := l.Width(), l.Height()
	contested := 0
	for y := 0; y < h; y++ {
		y0, y1 := max(y-1, 0), min(y+1, h-1)
		for x := 0; x < w; x++ {
			i := y*w + x
			dst[i] = false
			self := cells[i]
			if !self.IsOwned() {
				continue
			}
			x0, x1 := max(x-1, 0), min(x+1, w-1)
		scan:
			for ny := y0; ny <= y1; ny++ {
				for nx := x0; nx <= x1; nx++ {
					if f := cells[ny*w+nx]; f.IsOwned() && f != self {
						dst[i] = true
						contested++
						break scan
					}
				}
			}
		}
	}
	return dst, contested
}
