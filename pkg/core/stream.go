package core

import (
	"math/bits"
	"math/rand/v2"
)

// Multipliers used to spread coordinates over the seed space. Both are odd so
// x*k is a bijection on uint64.
const (
	streamMulX = 0x9e3779b97f4a7c15
	streamMulY = 0xc2b2ae3d27d4eb4f
)

// warmup is the number of outputs discarded after seeding a stream so that
// streams of adjacent cells are decorrelated.
const warmup = 2

// Stream is an independent random sequence owned by a single grid cell for a
// single tick. It is a value type; deriving one allocates nothing and shares
// no state with any other stream.
type Stream struct {
	pcg rand.PCG
}

// CellStream derives the stream for cell (x, y) under the given tick seed.
// The derivation is a pure function of its inputs, so the same tick and
// coordinates always yield the same sequence regardless of which goroutine
// asks. Within one tick every cell gets a distinct generator state.
func CellStream(tick uint64, x, y int) Stream {
	var s Stream
	s.pcg.Seed(Mix(tick^uint64(x)*streamMulX), Mix(tick+uint64(y)*streamMulY))
	for i := 0; i < warmup; i++ {
		s.pcg.Uint64()
	}
	return s
}

// Uint64 advances the stream and returns the next value.
func (s *Stream) Uint64() uint64 { return s.pcg.Uint64() }

// IntN returns a value in [0, n) using a multiply-high reduction. n must be
// positive.
func (s *Stream) IntN(n int) int {
	hi, _ := bits.Mul64(s.pcg.Uint64(), uint64(n))
	return int(hi)
}

// Mix is the splitmix64 finaliser. It is a bijection, so distinct inputs
// always produce distinct outputs.
func Mix(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}
