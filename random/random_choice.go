package random

import (
	"math"
)

// Choice returns a randomly chosen item from a list of options. Every
// position is equally likely under a uniform source.
//
// Choice panics if things is empty.
func Choice[S ~[]E, E any](things S, opts ...Option) E {
	o := newOpts(opts)
	return choice(things, o)
}

func choice[S ~[]E, E any](things S, o Opts) E {
	numThings := len(things)
	if numThings == 0 {
		invalidArgument("choice from an empty slice")
	}
	index := int(math.Floor(float64(numThings) * o.random()))
	return things[index]
}

// Choices returns n items drawn independently from things, with
// replacement: duplicates are expected and n may exceed len(things).
//
// Choices panics if n is negative, or if n is positive and things is empty.
func Choices[S ~[]E, E any](things S, n int, opts ...Option) S {
	if n < 0 {
		invalidArgument("negative number of choices %d", n)
	}
	o := newOpts(opts)
	chosen := make(S, n)
	for i := range chosen {
		chosen[i] = choice(things, o)
	}
	return chosen
}

// Sample returns size items from things without repeating a position. The
// result is a prefix of [ToShuffled]; when size exceeds len(things) the
// whole shuffled copy is returned. things is not modified.
//
// Sample panics if size is negative.
func Sample[S ~[]E, E any](things S, size int, opts ...Option) S {
	if size < 0 {
		invalidArgument("negative sample size %d", size)
	}
	shuffled := ToShuffled(things, opts...)
	n := min(size, len(shuffled))
	return shuffled[:n:n]
}
