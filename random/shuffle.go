package random

import (
	"slices"
)

// Shuffle reorders s in place and returns it; the result shares its
// backing array with s.
//
// The order comes from sorting s with a comparator that answers at random
// (the sign of Random()-0.5) on every comparison. The resulting permutations
// are not uniformly distributed; use [ShuffleUniform] when that matters.
func Shuffle[S ~[]E, E any](s S, opts ...Option) S {
	o := newOpts(opts)
	slices.SortFunc(s, func(E, E) int {
		switch d := o.random() - 0.5; {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
		return 0
	})
	return s
}

// ToShuffled is like [Shuffle] but leaves s untouched and returns a new
// slice.
func ToShuffled[S ~[]E, E any](s S, opts ...Option) S {
	return Shuffle(append(make(S, 0, len(s)), s...), opts...)
}

// ShuffleUniform reorders s in place with a Fisher-Yates shuffle and returns
// it. Every permutation is equally likely under a uniform source.
func ShuffleUniform[S ~[]E, E any](s S, opts ...Option) S {
	o := newOpts(opts)
	for i := len(s) - 1; i > 0; i-- {
		j := o.randInt(0, i)
		s[i], s[j] = s[j], s[i]
	}
	return s
}

func ToShuffledUniform[S ~[]E, E any](s S, opts ...Option) S {
	return ShuffleUniform(append(make(S, 0, len(s)), s...), opts...)
}
