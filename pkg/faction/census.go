package faction

import "sort"

// Census counts cells by state.
type Census struct {
	Neutral int
	Void    int
	Owned   map[uint64]int
}

// Count tallies the provided cells.
func Count(cells []Faction) Census {
	c := Census{Owned: make(map[uint64]int)}
	for _, f := range cells {
		switch f {
		case Neutral:
			c.Neutral++
		case Void:
			c.Void++
		default:
			c.Owned[uint64(f-ownedBase)]++
		}
	}
	return c
}

// Total returns the number of counted cells.
func (c Census) Total() int {
	n := c.Neutral + c.Void
	for _, v := range c.Owned {
		n += v
	}
	return n
}

// Factions returns the ids still holding territory in ascending order.
func (c Census) Factions() []uint64 {
	ids := make([]uint64, 0, len(c.Owned))
	for id := range c.Owned {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Leader returns the faction with the most cells. Ties go to the lower id.
func (c Census) Leader() (id uint64, cells int, ok bool) {
	for _, fid := range c.Factions() {
		if n := c.Owned[fid]; n > cells {
			id, cells, ok = fid, n, true
		}
	}
	return id, cells, ok
}
