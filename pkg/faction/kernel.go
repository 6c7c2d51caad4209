package faction

import "dungenon/pkg/core"

// deckSize bounds a deck: the cell itself plus its Moore neighbourhood.
const deckSize = 9

// deck is the multiset of owned factions eligible to claim a cell. Cards are
// kept in a fixed order (the cell itself, then neighbours row by row) so every
// kernel draws the same card for the same random value.
type deck struct {
	cards [deckSize]Faction
	n     int
}

func (d *deck) add(f Faction) {
	if f.IsOwned() {
		d.cards[d.n] = f
		d.n++
	}
}

// draw picks a card uniformly using the stream of cell (x, y).
func (d *deck) draw(tick uint64, x, y int) Faction {
	s := core.CellStream(tick, x, y)
	return d.cards[s.IntN(d.n)]
}

// rowKernel computes row y of the next generation into out (len w) from the
// full previous generation prev.
type rowKernel func(prev, out []Faction, w, h, y int, tick uint64)

// nextCell applies the diffusion rule to (x, y). Neighbour ranges are clamped
// to the grid, so it is safe on every cell including corners.
func nextCell(prev []Faction, w, h, x, y int, tick uint64) Faction {
	self := prev[y*w+x]
	if self == Void {
		return Void
	}
	var d deck
	d.add(self)
	x0, x1 := max(x-1, 0), min(x+1, w-1)
	y0, y1 := max(y-1, 0), min(y+1, h-1)
	for ny := y0; ny <= y1; ny++ {
		row := prev[ny*w : ny*w+w]
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			d.add(row[nx])
		}
	}
	if d.n == 0 {
		// Nothing owned nearby: the cell keeps its value.
		return self
	}
	return d.draw(tick, x, y)
}

func stepRowScalar(prev, out []Faction, w, h, y int, tick uint64) {
	for x := 0; x < w; x++ {
		out[x] = nextCell(prev, w, h, x, y, tick)
	}
}
