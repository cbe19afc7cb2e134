// Package weighted picks indexes with probability proportional to a set of
// weights.
package weighted

import (
	"github.com/zeebo/omnim/internal/debug"
	"github.com/zeebo/omnim/pcg"
)

// T is a weighted index sampler backed by a pcg generator. It is not thread
// safe.
type T struct {
	rng pcg.T
	cum []float64 // cumulative weights from the last search
}

// New returns a sampler whose generator is seeded with seed.
func New(seed uint64) *T {
	return &T{rng: pcg.New(seed)}
}

// Search returns an index into weights chosen with probability proportional
// to its weight, or -1 if there are no weights. Weights must be
// non-negative. It consumes exactly one draw from the generator per call.
//
// An index with zero weight is never returned while any weight is positive.
// If every weight is zero, the last index is returned.
func (t *T) Search(weights ...float64) int {
	length := len(weights)
	if length < 1 {
		return -1
	}

	cum := t.cum[:0]
	total := 0.0
	for _, weight := range weights {
		total += weight
		cum = append(cum, total)
	}
	t.cum = cum

	r := t.rng.Float(0, total)
	idx := search(cum, r)

	debug.Assert("search result in range", func() bool { return 0 <= idx && idx < length })
	return idx
}

// search finds the band of cum that contains r. Band i covers
// [cum[i-1], cum[i]] with cum[-1] taken as 0, and it returns as soon as the
// midpoint lands in a band of nonzero width.
func search(cum []float64, r float64) int {
	bottom, top := 0, len(cum)-1
	for bottom < top {
		middle := (bottom + top) / 2
		if r > cum[middle] {
			bottom = middle + 1
			continue
		}

		prev := 0.0
		if middle > 0 {
			prev = cum[middle-1]
		}

		switch {
		case r >= prev && cum[middle] > prev:
			return middle

		// r sits on a zero width band with nothing but zero weights below
		// it, so the band that owns r must be to the right.
		case r == 0 && cum[middle] == 0:
			bottom = middle + 1

		default:
			top = middle
		}
	}
	return top
}
