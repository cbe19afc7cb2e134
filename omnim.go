// Package omnim provides small, fast, non-cryptographic random number
// generators and samplers built on top of them.
//
// The generators live in the xorshift and pcg packages, and the weighted
// package picks indexes proportional to weights. This package ties them
// together behind the Source interface and the Sampler.
//
// Nothing here is safe for concurrent use. Distinct generators are fully
// independent and may be used from separate goroutines.
package omnim

import (
	"strconv"
	"strings"

	"github.com/zeebo/errs"
	"github.com/zeebo/omnim/pcg"
	"github.com/zeebo/omnim/xorshift"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("omnim")

// Source is a generator of raw random integers.
type Source interface {
	// Next advances the state exactly once and returns the raw output.
	Next() uint64

	// Max returns the largest value Next can return.
	Max() uint64
}

var (
	_ Source = (*xorshift.T)(nil)
	_ Source = (*pcg.T)(nil)
)

// Mode selects a generator.
type Mode int

const (
	Xorshift Mode = iota
	PCG32
)

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "xorshift", "xorshift64":
		return Xorshift, nil
	case "pcg", "pcg32":
		return PCG32, nil
	default:
		return 0, Error.New("unknown mode: %q", name)
	}
}

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Xorshift:
		return "xorshift"
	case PCG32:
		return "pcg32"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// NewSource returns a fresh generator for the mode seeded with seed.
func NewSource(mode Mode, seed uint64) (Source, error) {
	switch mode {
	case Xorshift:
		x := xorshift.New(seed)
		return &x, nil
	case PCG32:
		p := pcg.New(seed)
		return &p, nil
	default:
		return nil, Error.New("unknown mode: %v", mode)
	}
}
