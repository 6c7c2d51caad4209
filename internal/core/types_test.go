package core

import "testing"

type stubSim struct{}

func (stubSim) Name() string { return "stub" }
func (stubSim) Size() Size { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64) {}
func (stubSim) Step() {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterIgnoresInvalidEntries(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
	Register("stub", func(map[string]string) Sim { return stubSim{} })
	f, ok := Lookup("stub")
	if !ok || f(nil).Name() != "stub" {
		t.Fatal("registered factory not found")
	}
}
