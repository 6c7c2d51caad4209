package faction

import (
	"testing"

	"dungenon/pkg/level"
)

func TestFrontier(t *testing.T) {
	// A B .
	// A # .
	// . . B
	l := level.New[Faction](3, 3)
	a, b := Owned(0), Owned(1)
	set := map[[2]int]Faction{
		{0, 0}: a, {1, 0}: b,
		{0, 1}: a, {1, 1}: Void,
		{2, 2}: b,
	}
	for p, f := range set {
		if err := l.SetTile(p[0], p[1], f); err != nil {
			t.Fatal(err)
		}
	}

	mask, n := Frontier(l, nil)
	want := []bool{
		true, true, false,
		true, false, false,
		false, false, false,
	}
	if n != 3 {
		t.Fatalf("expected 3 contested cells, got %d", n)
	}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("cell %d: got %v want %v", i, mask[i], want[i])
		}
	}

	reused, _ := Frontier(l, mask)
	if &reused[0] != &mask[0] {
		t.Fatal("expected destination slice to be reused")
	}
}

func TestFrontierSingleFaction(t *testing.T) {
	l := level.NewFilledWith(Owned(4), 8, 5)
	if _, n := Frontier(l, nil); n != 0 {
		t.Fatalf("uniform level has no frontier, got %d", n)
	}
	empty := level.New[Faction](0, 0)
	if mask, n := Frontier(empty, nil); len(mask) != 0 || n != 0 {
		t.Fatal("empty level should yield an empty mask")
	}
}
