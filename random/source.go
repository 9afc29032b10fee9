package random

import (
	"math/rand/v2"
	"sync"
)

// Source yields a pseudo-random value in the half-open range [0, 1) each
// time it is called.
type Source func() float64

// defaultSource is safe for concurrent use.
var defaultSource Source = rand.Float64

// Default returns the source used when a call is not given one.
//
// It is backed by the top-level functions of [math/rand/v2] and is safe
// for concurrent use.
func Default() Source {
	return defaultSource
}

// FromRand returns a source drawing from r.
//
// A [math/rand/v2.Rand] is not safe for concurrent use; neither is the
// returned source unless the caller serializes access to r.
func FromRand(r *rand.Rand) Source {
	return r.Float64
}

func Fixed(v float64) Source {
	return func() float64 {
		return v
	}
}

// Sequence returns a source cycling through vs in order, starting over once
// every value has been used. It is safe for concurrent use.
//
// Sequence panics if vs is empty.
func Sequence(vs ...float64) Source {
	if len(vs) == 0 {
		invalidArgument("sequence source needs at least one value")
	}
	values := append([]float64(nil), vs...)
	var (
		mu   sync.Mutex
		next int
	)
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := values[next]
		next = (next + 1) % len(values)
		return v
	}
}

type randSource struct {
	src Source
}

// Assert that randSource implements rand.Source.
var _ rand.Source = randSource{}

func (s randSource) Uint64() uint64 {
	return uint64(s.src() * 0x1p64)
}

// AsRandSource adapts src into a [math/rand/v2.Source].
//
// Use this function to drive a [math/rand/v2.Rand] from a Source, for
// example to reach its Perm or NormFloat64 helpers. Only the 53 bits of
// precision carried by a float64 are random in the resulting values.
func AsRandSource(src Source) rand.Source {
	if src == nil {
		src = defaultSource
	}
	return randSource{src}
}
