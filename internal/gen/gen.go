// Package gen generates random input sequences for sorting benchmarks.
//
// Generation is parallel, but deterministic for a given seed: elements are
// produced in fixed-size chunks, each with its own generator seeded from the
// seed and the chunk index.
package gen

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/exascience/parradix/internal/seqio"
	"github.com/exascience/parradix/parallel"
)

// Distribution selects how keys are distributed.
type Distribution string

const (
	// Uniform keys are drawn uniformly below the bound.
	Uniform Distribution = "uniform"
	// Exponential keys are concentrated near 0, with a mean of 1/64 of the
	// bound.
	Exponential Distribution = "exponential"
	// AlmostSorted keys are increasing, except for about one in a hundred
	// elements that are swapped with a random other element.
	AlmostSorted Distribution = "almost-sorted"
)

const chunkSize = 1 << 16

// Distributions lists the supported distributions.
var Distributions = []Distribution{Uniform, Exponential, AlmostSorted}

// ParseDistribution returns the distribution named s.
func ParseDistribution(s string) (Distribution, error) {
	for _, d := range Distributions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", errors.Errorf("unknown distribution %q", s)
}

func chunks(n int, seed int64, f func(r *rand.Rand, low, high int)) {
	nchunks := (n + chunkSize - 1) / chunkSize
	parallel.Range(0, nchunks, 0, func(low, high int) {
		for c := low; c < high; c++ {
			r := rand.New(rand.NewSource(seed + int64(c)*0x9e3779b9))
			f(r, c*chunkSize, min((c+1)*chunkSize, n))
		}
	})
}

// Keys returns n keys below bound, distributed according to d.
func Keys(d Distribution, n int, bound uint32, seed int64) ([]uint32, error) {
	if n < 0 {
		return nil, errors.Errorf("invalid number of keys: %v", n)
	}
	if bound == 0 {
		return nil, errors.New("key bound must be positive")
	}
	keys := make([]uint32, n)
	switch d {
	case Uniform:
		chunks(n, seed, func(r *rand.Rand, low, high int) {
			for i := low; i < high; i++ {
				keys[i] = uint32(r.Int63n(int64(bound)))
			}
		})
	case Exponential:
		mean := float64(bound) / 64
		chunks(n, seed, func(r *rand.Rand, low, high int) {
			for i := low; i < high; i++ {
				keys[i] = uint32(min(r.ExpFloat64()*mean, float64(bound-1)))
			}
		})
	case AlmostSorted:
		chunks(n, seed, func(_ *rand.Rand, low, high int) {
			for i := low; i < high; i++ {
				keys[i] = uint32(uint64(i) * uint64(bound) / uint64(n))
			}
		})
		r := rand.New(rand.NewSource(seed))
		for k := 0; k < n/100; k++ {
			i, j := r.Intn(n), r.Intn(n)
			keys[i], keys[j] = keys[j], keys[i]
		}
	default:
		return nil, errors.Errorf("unknown distribution %q", d)
	}
	return keys, nil
}

// Pairs returns n pairs with keys as returned by Keys, each carrying its
// original position as value.
func Pairs(d Distribution, n int, bound uint32, seed int64) ([]seqio.Pair, error) {
	keys, err := Keys(d, n, bound, seed)
	if err != nil {
		return nil, err
	}
	pairs := make([]seqio.Pair, n)
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			pairs[i] = seqio.Pair{Key: keys[i], Value: uint32(i)}
		}
	})
	return pairs, nil
}

// Sequence returns a sequence of n keys or pairs, as returned by Keys or
// Pairs.
func Sequence(d Distribution, n int, bound uint32, seed int64, pairs bool) (*seqio.Sequence, error) {
	if pairs {
		p, err := Pairs(d, n, bound, seed)
		if err != nil {
			return nil, err
		}
		return &seqio.Sequence{Kind: seqio.IntPairs, Pairs: p}, nil
	}
	k, err := Keys(d, n, bound, seed)
	if err != nil {
		return nil, err
	}
	return &seqio.Sequence{Kind: seqio.Ints, Ints: k}, nil
}
