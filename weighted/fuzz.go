//go:build gofuzz

package weighted

import (
	"encoding/binary"
	"math"
)

func Fuzz(data []byte) int {
	if len(data) < 8 {
		return 0
	}

	seed := binary.BigEndian.Uint64(data[0:8])
	data = data[8:]

	// limit to 4k weights and keep them finite and non-negative
	weights := make([]float64, 0, len(data)/8)
	for len(data) >= 8 && len(weights) < 4096 {
		w := math.Abs(math.Float64frombits(binary.BigEndian.Uint64(data[0:8])))
		if math.IsNaN(w) || math.IsInf(w, 0) {
			w = 0
		}
		weights = append(weights, w)
		data = data[8:]
	}

	idx := New(seed).Search(weights...)
	if len(weights) == 0 {
		if idx != -1 {
			panic("empty weights returned an index")
		}
		return 0
	}
	if idx < 0 || idx >= len(weights) {
		panic("index out of range")
	}
	return 1
}
