// Package random provides uniform random helpers (floats, integers, and
// choosing, sampling and shuffling slices) built on a single injectable
// [Source].
//
// Every function accepts optional [Option] values. Without any, the process
// default source is used; pass [WithSource] to draw from a different one for
// that call only:
//
//	die := random.RandInt(1, 6, random.WithSource(random.FromRand(r)))
package random

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by the value of every panic raised for a
// precondition violation, such as choosing from an empty slice or asking for
// a negative number of items.
var ErrInvalidArgument = errors.New("random: invalid argument")

func invalidArgument(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)))
}

// Random returns a value in [0, 1) drawn from the configured source.
//
// The value is passed through unchecked: a source that breaks its contract
// breaks the guarantees of every other function in this package.
func Random(opts ...Option) float64 {
	o := newOpts(opts)
	return o.random()
}

// Uniform returns a float in [min, max).
//
// When min > max the range is reversed and the result lies in (max, min].
// When min == max the result is exactly min.
func Uniform(min, max float64, opts ...Option) float64 {
	o := newOpts(opts)
	return o.random()*(max-min) + min
}

// RandInt returns an integer in [min, max], both ends inclusive, for min <= max.
// The range may span every int, from math.MinInt to math.MaxInt.
//
// The source must never return 1: if it does, the result is max+1.
func RandInt(min, max int, opts ...Option) int {
	o := newOpts(opts)
	return o.randInt(min, max)
}

func (o Opts) randInt(min, max int) int {
	r := o.random()
	// Width of [min, max] in uint64 so spans past MaxInt don't overflow.
	// It wraps to zero only when the range covers every int.
	w := uint64(max-min) + 1
	if w == 0 {
		return min + int(uint64(r*0x1p64))
	}
	offset := uint64(r * float64(w))
	if offset >= w && r < 1 {
		// float64(w) can round up past w once w exceeds 2^53.
		offset = w - 1
	}
	return min + int(offset)
}
