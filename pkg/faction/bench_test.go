package faction

import (
	"fmt"
	"testing"

	"dungenon/pkg/level"
)

const benchRounds = 10

func benchmarkSteps(b *testing.B, w, h int, opts Options) {
	start := randomLevel(1, w, h, 16, 0.02, 0.5)
	b.SetBytes(int64(w * h * benchRounds))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		cur := start.Clone()
		scratch := level.New[Faction](w, h)
		sim := newSimulator(uint64(i+1), opts)
		b.StartTimer()
		if err := sim.StepN(cur, scratch, benchRounds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkByKernel(b *testing.B) {
	for _, k := range []Kernel{KernelScalar, KernelWindowed} {
		b.Run(k.String(), func(b *testing.B) {
			benchmarkSteps(b, 1024, 1024, Options{Kernel: k})
		})
	}
}

func BenchmarkBySize(b *testing.B) {
	for i := 1; i <= 4; i++ {
		side := i * 1024
		b.Run(fmt.Sprint(side), func(b *testing.B) {
			benchmarkSteps(b, side, side, Options{})
		})
	}
}

func BenchmarkByAspectRatio(b *testing.B) {
	const steps = 12
	const size = 1 << steps
	for i := 0; i <= steps; i += 2 {
		w, h := size>>i, 1<<i
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			benchmarkSteps(b, w, h, Options{})
		})
	}
}

func BenchmarkSingleWorker(b *testing.B) {
	benchmarkSteps(b, 1024, 1024, Options{Workers: 1})
}
