package faction

import (
	"dungenon/pkg/core"
	"dungenon/pkg/level"
)

// randomLevel builds a level with a mix of void, neutral and owned cells.
func randomLevel(seed int64, w, h, factions int, voidChance, neutralChance float64) *level.Level[Faction] {
	rng := core.NewRNG(seed)
	l := level.New[Faction](w, h)
	cells := l.Cells()
	for i := range cells {
		switch {
		case rng.Chance(voidChance):
			cells[i] = Void
		case rng.Chance(neutralChance):
			cells[i] = Neutral
		default:
			cells[i] = Owned(uint64(rng.IntN(factions)))
		}
	}
	return l
}

// ownedNeighbourhood returns the owned values of (x, y) and its Moore
// neighbours in prev.
func ownedNeighbourhood(prev []Faction, w, h, x, y int) map[Faction]bool {
	set := make(map[Faction]bool)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if f := prev[ny*w+nx]; f.IsOwned() {
				set[f] = true
			}
		}
	}
	return set
}

func cloneCells(cells []Faction) []Faction {
	return append([]Faction(nil), cells...)
}
