package bench

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/exascience/parradix/internal/seqio"
	"github.com/exascience/parradix/sort"
)

// VerifyInts checks that sorted is the sorted permutation of orig.
func VerifyInts(orig, sorted []uint32) error {
	if len(orig) != len(sorted) {
		return errors.Errorf("lengths do not match: expected %v, got %v", len(orig), len(sorted))
	}
	var g errgroup.Group
	g.Go(func() error {
		if !sort.Uint32sAreSorted(sorted) {
			return errors.New("array not sorted")
		}
		return nil
	})
	g.Go(func() error {
		expected := slices.Clone(orig)
		slices.Sort(expected)
		if i := mismatch(expected, sorted); i >= 0 {
			return errors.Errorf("not a permutation of the input at %v: expected %v, got %v", i, expected[i], sorted[i])
		}
		return nil
	})
	return g.Wait()
}

// VerifyPairs checks that sorted is the stable sort of orig by key.
func VerifyPairs(orig, sorted []seqio.Pair) error {
	if len(orig) != len(sorted) {
		return errors.Errorf("lengths do not match: expected %v, got %v", len(orig), len(sorted))
	}
	var g errgroup.Group
	g.Go(func() error {
		if !sort.KeysAreSorted(sorted, seqio.PairKey) {
			return errors.New("array not sorted")
		}
		return nil
	})
	g.Go(func() error {
		expected := slices.Clone(orig)
		slices.SortStableFunc(expected, func(x, y seqio.Pair) int {
			switch {
			case x.Key < y.Key:
				return -1
			case x.Key > y.Key:
				return 1
			default:
				return 0
			}
		})
		if i := mismatch(expected, sorted); i >= 0 {
			return errors.Errorf("not the stable order of the input at %v: expected %v, got %v", i, expected[i], sorted[i])
		}
		return nil
	})
	return g.Wait()
}

func mismatch[E comparable](expected, got []E) int {
	for i := range expected {
		if expected[i] != got[i] {
			return i
		}
	}
	return -1
}
