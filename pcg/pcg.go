// Package pcg implements a 32 bit permuted congruential generator (PCG
// XSH-RR) along with helpers to map its output onto ranges.
//
// It is not suitable for cryptographic use, and a T must not be used from
// multiple goroutines without external synchronization.
package pcg

import (
	"math"
	"math/bits"

	"github.com/zeebo/omnim/internal/span"
)

// T is a pcg generator. The zero value behaves like New(0).
type T struct {
	State uint64
	Inc   uint64
}

const (
	mul    = 6364136223846793005
	offset = 0xDA3E39CB94B95BDB
)

// New constructs a pcg from the seed. The seed is offset into the state to
// avoid weak initial correlations, and the increment is forced odd so that
// the LCG step has full period.
func New(seed uint64) T {
	return T{
		State: seed + offset,
		Inc:   seed | 1,
	}
}

// Uint32 returns a random uint32.
func (p *T) Uint32() uint32 {
	// this branch will be predicted to be false in most cases and so is
	// essentially free. this causes the zero value of a pcg to be the same as
	// New(0).
	if p.Inc == 0 {
		*p = New(0)
	}

	// update the state (LCG step)
	oldstate := p.State
	p.State = oldstate*mul + p.Inc

	// apply the output permutation to the old state
	return output(oldstate)
}

// output is the xorshift and right rotate permutation applied to a state.
func output(state uint64) uint32 {
	xorshifted := uint32(((state >> 18) ^ state) >> 27)
	return bits.RotateLeft32(xorshifted, -int(state>>59))
}

// Uint32s returns n random uint32s. It produces the same values as n calls
// to Uint32 but keeps the state in registers for the whole batch.
func (p *T) Uint32s(n int) []uint32 {
	if p.Inc == 0 {
		*p = New(0)
	}

	out := make([]uint32, n)
	state, inc := p.State, p.Inc
	for i := range out {
		out[i] = output(state)
		state = state*mul + inc
	}
	p.State = state
	return out
}

// Next returns the next uint32 widened to a uint64.
func (p *T) Next() uint64 { return uint64(p.Uint32()) }

// Max returns the largest value Next can return.
func (p *T) Max() uint64 { return math.MaxUint32 }

// Float64 returns a float in [0, 1].
func (p *T) Float64() float64 {
	return span.Unit(uint64(p.Uint32()), math.MaxUint32)
}

// Float64s returns n floats in [0, 1].
func (p *T) Float64s(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Float64()
	}
	return out
}

// Int returns an int64 in [min, max]. It reduces the output modulo the
// width of the range, and so is slightly biased unless the width is a power
// of two.
func (p *T) Int(min, max int64) int64 {
	return span.Int(uint64(p.Uint32()), min, max)
}

// Ints returns n int64s in [min, max], with the same bias as Int.
func (p *T) Ints(n int, min, max int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = p.Int(min, max)
	}
	return out
}

// Float returns a float64 in [min, max].
func (p *T) Float(min, max float64) float64 {
	return span.Float(p.Float64(), min, max)
}

// Floats returns n float64s in [min, max].
func (p *T) Floats(n int, min, max float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Float(min, max)
	}
	return out
}
