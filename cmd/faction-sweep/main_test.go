package main

import (
	"testing"

	"dungenon/pkg/faction"
)

func TestAspectShape(t *testing.T) {
	wide := aspectShape(1<<16, 16)
	if wide[0] != 1024 || wide[1] != 64 {
		t.Fatalf("unexpected wide shape %v", wide)
	}
	tall := aspectShape(1<<16, -16)
	if tall[0] != 64 || tall[1] != 1024 {
		t.Fatalf("unexpected tall shape %v", tall)
	}
	if s := aspectShape(3, 100); s[0] != 3 || s[1] != 1 {
		t.Fatalf("tiny target should collapse to one row, got %v", s)
	}
}

func TestScenarioChecksumsAgree(t *testing.T) {
	base := runScenario(scenario{w: 37, h: 21, kernel: faction.KernelScalar, workers: 1}, 5, 8)
	for _, sc := range []scenario{
		{w: 37, h: 21, kernel: faction.KernelWindowed, workers: 1},
		{w: 37, h: 21, kernel: faction.KernelWindowed, workers: 4},
	} {
		if got := runScenario(sc, 5, 8); got.checksum != base.checksum {
			t.Fatalf("%s: checksum %x, want %x", sc, got.checksum, base.checksum)
		}
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 1, 0,,16 ")
	if err != nil || len(got) != 3 || got[0] != 1 || got[1] != 0 || got[2] != 16 {
		t.Fatalf("parseInts = %v, %v", got, err)
	}
	if _, err := parseInts("1,x"); err == nil {
		t.Fatal("expected a parse error")
	}
	if _, err := parseInts("-2"); err == nil {
		t.Fatal("expected negative values to be rejected")
	}
}
