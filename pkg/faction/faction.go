// Package faction implements the territory diffusion automaton: factions
// spread into neutral space and compete for contested cells, one stochastic
// generation at a time.
package faction

import (
	"fmt"
	"math"
)

// Faction is the state of one cell. The zero value is Neutral.
type Faction uint64

const (
	// Neutral cells are unclaimed and may be captured.
	Neutral Faction = 0
	// Void cells never change and never contribute to a neighbour's deck.
	Void Faction = 1

	ownedBase Faction = 2
)

// MaxID is the largest faction id that Owned accepts.
const MaxID = math.MaxUint64 - uint64(ownedBase)

// Kind classifies a Faction value.
type Kind uint8

const (
	KindNeutral Kind = iota
	KindVoid
	KindOwned
)

// Owned returns the cell state for territory held by faction id.
func Owned(id uint64) Faction {
	if id > MaxID {
		panic(fmt.Sprintf("faction: id %d exceeds MaxID", id))
	}
	return Faction(id) + ownedBase
}

// ID returns the owning faction id and true for owned cells.
func (f Faction) ID() (uint64, bool) {
	if f < ownedBase {
		return 0, false
	}
	return uint64(f - ownedBase), true
}

// IsOwned reports whether a faction holds the cell.
func (f Faction) IsOwned() bool { return f >= ownedBase }

// IsNeutral reports whether the cell is unclaimed.
func (f Faction) IsNeutral() bool { return f == Neutral }

// IsVoid reports whether the cell is permanently unclaimable.
func (f Faction) IsVoid() bool { return f == Void }

// Kind returns the state class of f.
func (f Faction) Kind() Kind {
	switch f {
	case Neutral:
		return KindNeutral
	case Void:
		return KindVoid
	default:
		return KindOwned
	}
}

func (f Faction) String() string {
	switch f {
	case Neutral:
		return "Neutral"
	case Void:
		return "Void"
	default:
		return fmt.Sprintf("Owned(%d)", uint64(f-ownedBase))
	}
}
