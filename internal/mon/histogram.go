package mon

import (
	"sync/atomic"
)

// Histogram counts observations of indexes in [0, n). Observations outside
// of that range are counted separately as misses. It is safe to observe
// from multiple goroutines.
type Histogram struct {
	total  int64
	misses int64
	counts []int64
}

// NewHistogram returns a histogram for indexes in [0, n).
func NewHistogram(n int) *Histogram {
	return &Histogram{counts: make([]int64, n)}
}

// Observe records one observation of the index.
func (h *Histogram) Observe(index int) {
	atomic.AddInt64(&h.total, 1)
	if index < 0 || index >= len(h.counts) {
		atomic.AddInt64(&h.misses, 1)
		return
	}
	atomic.AddInt64(&h.counts[index], 1)
}

// Total returns the amount of times an index has been observed.
func (h *Histogram) Total() int64 { return atomic.LoadInt64(&h.total) }

// Misses returns the amount of out of range observations.
func (h *Histogram) Misses() int64 { return atomic.LoadInt64(&h.misses) }

// Counts returns a copy of the per index counts.
func (h *Histogram) Counts() []int64 {
	out := make([]int64, len(h.counts))
	for i := range out {
		out[i] = atomic.LoadInt64(&h.counts[i])
	}
	return out
}

// Frequencies returns the fraction of observations for each index.
func (h *Histogram) Frequencies() []float64 {
	total := float64(h.Total())
	out := make([]float64, len(h.counts))
	if total == 0 {
		return out
	}
	for i, c := range h.Counts() {
		out[i] = float64(c) / total
	}
	return out
}
