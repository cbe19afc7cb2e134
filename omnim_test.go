package omnim

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/omnim/pcg"
	"github.com/zeebo/omnim/xorshift"
)

func TestMode(t *testing.T) {
	for name, exp := range map[string]Mode{
		"xorshift":   Xorshift,
		"Xorshift64": Xorshift,
		"pcg":        PCG32,
		"PCG32":      PCG32,
	} {
		mode, err := ParseMode(name)
		assert.NoError(t, err)
		assert.Equal(t, mode, exp)
	}

	_, err := ParseMode("mt19937")
	assert.Error(t, err)
	assert.That(t, Error.Has(err))

	assert.Equal(t, Xorshift.String(), "xorshift")
	assert.Equal(t, PCG32.String(), "pcg32")
	assert.Equal(t, Mode(7).String(), "Mode(7)")

	var m Mode
	assert.NoError(t, m.UnmarshalText([]byte("pcg")))
	assert.Equal(t, m, PCG32)
	assert.Error(t, m.UnmarshalText([]byte("nope")))
	assert.Equal(t, m, PCG32)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Xorshift, 42)
	assert.NoError(t, err)
	assert.Equal(t, src.Next(), uint64(0xa95514aaa))
	assert.Equal(t, src.Max(), ^uint64(0))

	src, err = NewSource(PCG32, 42)
	assert.NoError(t, err)
	assert.Equal(t, src.Next(), uint64(0xf83d1068))
	assert.Equal(t, src.Max(), uint64(0xffffffff))

	_, err = NewSource(Mode(-1), 42)
	assert.Error(t, err)
}

func TestSampler(t *testing.T) {
	t.Run("PCG", func(t *testing.T) {
		p := pcg.New(99)
		s, err := New(PCG32, 99)
		assert.NoError(t, err)

		for i := 0; i < 100; i++ {
			assert.Equal(t, s.Float64(), p.Float64())
			assert.Equal(t, s.Int(-50, 50), p.Int(-50, 50))
			assert.Equal(t, s.Float(1, 2), p.Float(1, 2))
		}
		assert.DeepEqual(t, s.Floats(10, 0, 3), p.Floats(10, 0, 3))
		assert.DeepEqual(t, s.Ints(10, 0, 3), p.Ints(10, 0, 3))
		assert.DeepEqual(t, s.Float64s(10), p.Float64s(10))
	})

	t.Run("Xorshift", func(t *testing.T) {
		x := xorshift.New(99)
		s, err := New(Xorshift, 99)
		assert.NoError(t, err)

		for i := 0; i < 100; i++ {
			assert.Equal(t, s.Float64(), x.Float64())
			assert.Equal(t, s.Int(-50, 50), x.Int(-50, 50))
			assert.Equal(t, s.Float(1, 2), x.Float(1, 2))
		}
		assert.DeepEqual(t, s.Nexts(10), x.Uint64s(10))
	})

	t.Run("Owned", func(t *testing.T) {
		x := xorshift.New(5)
		s := NewSampler(&x)
		s.Next()
		s.Next()
		assert.Equal(t, s.Source().(*xorshift.T), &x)

		exp := xorshift.New(5)
		exp.Uint64s(2)
		assert.Equal(t, x, exp)
	})

	t.Run("RandomSeed", func(t *testing.T) {
		s, err := New(PCG32, 0)
		assert.NoError(t, err)
		v := s.Float(0, 1)
		assert.That(t, v >= 0 && v <= 1)
	})

	t.Run("BadMode", func(t *testing.T) {
		_, err := New(Mode(9), 1)
		assert.Error(t, err)
	})
}

func TestChoice(t *testing.T) {
	s, err := New(PCG32, 1)
	assert.NoError(t, err)

	_, err = s.Choice(0)
	assert.Error(t, err)
	assert.That(t, Error.Has(err))

	seen := make([]bool, 5)
	for i := 0; i < 1000; i++ {
		idx, err := s.Choice(len(seen))
		assert.NoError(t, err)
		seen[idx] = true
	}
	assert.DeepEqual(t, seen, []bool{true, true, true, true, true})
}

var blackholeFloat64 float64

func BenchmarkSampler(b *testing.B) {
	p := pcg.New(2345)
	s := NewSampler(&p)

	for i := 0; i < b.N; i++ {
		blackholeFloat64 += s.Float64()
	}
}
