package omnim

import (
	"github.com/zeebo/omnim/internal/span"
)

// Sampler maps the output of a Source onto floats and integer ranges. It is
// not thread safe.
type Sampler struct {
	src Source
	max uint64
}

// NewSampler returns a Sampler drawing from src. The Sampler becomes the
// owner of src, and src should not be advanced by anything else.
func NewSampler(src Source) *Sampler {
	return &Sampler{
		src: src,
		max: src.Max(),
	}
}

// New returns a Sampler over a fresh generator for the mode. A seed of 0 is
// replaced with one read from the operating system.
func New(mode Mode, seed uint64) (*Sampler, error) {
	if seed == 0 {
		var err error
		seed, err = RandomSeed()
		if err != nil {
			return nil, err
		}
	}

	src, err := NewSource(mode, seed)
	if err != nil {
		return nil, err
	}
	return NewSampler(src), nil
}

// Source returns the underlying source.
func (s *Sampler) Source() Source { return s.src }

// Next returns the next raw value from the source.
func (s *Sampler) Next() uint64 { return s.src.Next() }

// Nexts returns n raw values from the source.
func (s *Sampler) Nexts(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = s.src.Next()
	}
	return out
}

// Float64 returns a float in [0, 1].
func (s *Sampler) Float64() float64 {
	return span.Unit(s.src.Next(), s.max)
}

// Float64s returns n floats in [0, 1].
func (s *Sampler) Float64s(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Float64()
	}
	return out
}

// Int returns an int64 in [min, max]. It reduces the raw value modulo the
// width of the range, and so is slightly biased unless the width is a power
// of two.
func (s *Sampler) Int(min, max int64) int64 {
	return span.Int(s.src.Next(), min, max)
}

// Ints returns n int64s in [min, max], with the same bias as Int.
func (s *Sampler) Ints(n int, min, max int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = s.Int(min, max)
	}
	return out
}

// Float returns a float64 in [min, max].
func (s *Sampler) Float(min, max float64) float64 {
	return span.Float(s.Float64(), min, max)
}

// Floats returns n float64s in [min, max].
func (s *Sampler) Floats(n int, min, max float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Float(min, max)
	}
	return out
}

// Choice returns an index in [0, n). It returns an error if n is not
// positive.
func (s *Sampler) Choice(n int) (int, error) {
	if n <= 0 {
		return 0, Error.New("cannot choose from an empty sequence")
	}
	return int(s.Int(0, int64(n)-1)), nil
}
