package core

import (
	"errors"
	"slices"
	"testing"
)

func TestNewGridZeroValues(t *testing.T) {
	g := NewGrid[int](4, 3)
	if g.Width() != 4 || g.Height() != 3 || g.Len() != 12 {
		t.Fatalf("unexpected shape %dx%d len=%d", g.Width(), g.Height(), g.Len())
	}
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d, expected zero value", i, v)
		}
	}
}

func TestRowMajorIndexing(t *testing.T) {
	g := NewGrid[int](5, 4)
	if err := g.Set(3, 2, 7); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := g.Cells()[3+2*5]; got != 7 {
		t.Fatalf("expected row-major placement, got %d", got)
	}
	if idx := g.Index(3, 2); idx != 13 {
		t.Fatalf("Index(3,2) = %d, expected 13", idx)
	}
	p, err := g.GetMut(1, 1)
	if err != nil {
		t.Fatalf("get mut: %v", err)
	}
	*p = 9
	if v, _ := g.Get(1, 1); v != 9 {
		t.Fatalf("write through GetMut not visible, got %d", v)
	}
}

func TestOutOfBoundsIsRecoverable(t *testing.T) {
	g := NewGridFilledWith("x", 3, 2)
	cases := [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}, {100, 100}}
	for _, c := range cases {
		if _, err := g.Get(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err=%v, expected ErrOutOfBounds", c[0], c[1], err)
		}
		if p, err := g.GetMut(c[0], c[1]); p != nil || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("GetMut(%d,%d) = %v, %v", c[0], c[1], p, err)
		}
		if err := g.Set(c[0], c[1], "y"); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err=%v", c[0], c[1], err)
		}
	}
	for _, v := range g.Cells() {
		if v != "x" {
			t.Fatal("failed writes must not touch the grid")
		}
	}
}

func TestZeroAreaGridIsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		g := NewGrid[byte](dims[0], dims[1])
		if g.Len() != 0 || g.Width() != 0 || g.Height() != 0 {
			t.Fatalf("%v: expected 0x0 grid, got %dx%d", dims, g.Width(), g.Height())
		}
		if _, err := g.Get(0, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("%v: expected out of bounds on empty grid", dims)
		}
	}
}

func TestNewGridPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for overflowing size")
		}
	}()
	NewGrid[byte](1<<40, 1<<40)
}

func TestNewGridPanicsOnNegativeSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative size")
		}
	}()
	NewGrid[byte](-1, 4)
}

func TestCloneIsDeep(t *testing.T) {
	g := NewGridFilledWith(1, 3, 3)
	c := g.Clone()
	c.Cells()[4] = 2
	if g.Cells()[4] != 1 {
		t.Fatal("clone shares storage with original")
	}
	if c.Width() != 3 || c.Height() != 3 {
		t.Fatal("clone changed shape")
	}
}

func TestRowsAreCapped(t *testing.T) {
	g := NewGrid[int](4, 3)
	rows := g.Rows(1, 2)
	if len(rows) != 4 || cap(rows) != 4 {
		t.Fatalf("expected len=cap=4, got len=%d cap=%d", len(rows), cap(rows))
	}
	rows[0] = 5
	if v, _ := g.Get(0, 1); v != 5 {
		t.Fatal("Rows must alias the grid storage")
	}
	_ = append(rows, 99)
	if v, _ := g.Get(0, 2); v != 0 {
		t.Fatal("append on a row slice leaked into the next row")
	}
	if !slices.Equal(g.Rows(0, 3), g.Cells()) {
		t.Fatal("full row range should cover every cell")
	}
}
