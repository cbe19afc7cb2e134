// Package span maps raw generator output onto bounded ranges.
package span

// Int reduces v into [min, max] by taking it modulo the width of the span.
// The width is computed with wrapping arithmetic, so a span covering every
// int64 has width 0 and v is added to min directly. If max < min the result
// wraps and is meaningless, but does not panic.
//
// The reduction is biased whenever the width does not evenly divide the
// range of v. Callers that need exact uniformity must reject samples
// themselves.
func Int(v uint64, min, max int64) int64 {
	width := uint64(max) - uint64(min) + 1
	if width == 0 {
		return min + int64(v)
	}
	return min + int64(v%width)
}

// Unit scales v into [0, 1] by dividing by max.
func Unit(v, max uint64) float64 {
	return float64(v) / float64(max)
}

// Float maps u from [0, 1] onto [min, max].
func Float(u, min, max float64) float64 {
	// the conversion keeps the compiler from fusing the multiply and add,
	// which would change the low bits on some architectures.
	return float64(u*(max-min)) + min
}
