// Package xorshift implements a 64 bit xorshift generator along with
// helpers to map its output onto ranges.
//
// It is not suitable for cryptographic use, and a T must not be used from
// multiple goroutines without external synchronization.
package xorshift

import (
	"math"

	"github.com/zeebo/omnim/internal/span"
)

// zeroSeed replaces a zero seed. An all zero state is a fixed point of the
// recurrence.
const zeroSeed = 0xDEADBEEF

// T is a xorshift generator. The zero value behaves like New(0).
type T struct {
	State uint64
}

// New constructs a xorshift generator from the seed.
func New(seed uint64) T {
	if seed == 0 {
		seed = zeroSeed
	}
	return T{State: seed}
}

// Uint64 advances the state and returns it.
func (x *T) Uint64() uint64 {
	s := x.State
	if s == 0 {
		s = zeroSeed
	}
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.State = s
	return s
}

// Uint64s returns n random uint64s.
func (x *T) Uint64s(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = x.Uint64()
	}
	return out
}

// Next returns the next uint64.
func (x *T) Next() uint64 { return x.Uint64() }

// Max returns the largest value Next can return.
func (x *T) Max() uint64 { return math.MaxUint64 }

// Float64 returns a float in [0, 1]. Both single and batch forms scale by
// the maximum uint64.
func (x *T) Float64() float64 {
	return span.Unit(x.Uint64(), math.MaxUint64)
}

// Float64s returns n floats in [0, 1].
func (x *T) Float64s(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x.Float64()
	}
	return out
}

// Int returns an int64 in [min, max]. It reduces the output modulo the
// width of the range, and so is slightly biased unless the width is a power
// of two.
func (x *T) Int(min, max int64) int64 {
	return span.Int(x.Uint64(), min, max)
}

// Ints returns n int64s in [min, max], with the same bias as Int.
func (x *T) Ints(n int, min, max int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = x.Int(min, max)
	}
	return out
}

// Float returns a float64 in [min, max].
func (x *T) Float(min, max float64) float64 {
	return span.Float(x.Float64(), min, max)
}

// Floats returns n float64s in [min, max].
func (x *T) Floats(n int, min, max float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x.Float(min, max)
	}
	return out
}
