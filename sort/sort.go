/*
Package sort provides a parallel radix sort of arbitrary elements by a
non-negative integer key.

The sort partitions on two key bits per radix step. Each step splits its
range into blocks that are histogrammed and scattered in parallel; the
per-block counts are transposed into bucket-major order and prefix-summed,
so that each block's runs can be moved to their final positions in
parallel. Every step is stable.

By default, keys are processed most significant digit first, and the
buckets of a step are sorted recursively and in parallel, each with a share
of the scratch count matrix proportional to its size. When a bucket's share
becomes too small to be divided further, the remaining digits are processed
least significant digit first, which needs no further scratch space.
*/
package sort

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/exascience/parradix/parallel"
	"github.com/exascience/parradix/speculative"
)

const sortedGrainSize = 0x500

/*
KeysAreSorted determines in parallel whether data is sorted in increasing
order of key. It attempts to terminate early when the return value is
false.
*/
func KeysAreSorted[E any, K constraints.Integer](data []E, key func(E) K) bool {
	size := len(data)
	sorted := func(low, high int) bool {
		for i := max(low, 1); i < high; i++ {
			if key(data[i]) < key(data[i-1]) {
				return false
			}
		}
		return true
	}
	if size < sortedGrainSize {
		return sorted(0, size)
	}
	return speculative.RangeAnd(0, size, 0, sorted)
}

func identity[T any](x T) T { return x }

/*
Uint32sAreSorted determines in parallel whether a slice of uint32s is
already sorted in increasing order.
*/
func Uint32sAreSorted(a []uint32) bool {
	return KeysAreSorted(a, identity[uint32])
}

/*
IntsAreSorted determines in parallel whether a slice of ints is already
sorted in increasing order.
*/
func IntsAreSorted(a []int) bool {
	return KeysAreSorted(a, identity[int])
}

// MaxKey returns the largest key of the elements of data in parallel, or 0
// if data is empty.
func MaxKey[E any, K constraints.Integer](data []E, key func(E) K) K {
	if len(data) == 0 {
		return 0
	}
	return parallel.RangeReduce(0, len(data), 0,
		func(low, high int) K {
			result := key(data[low])
			for _, x := range data[low+1 : high] {
				result = max(result, key(x))
			}
			return result
		},
		func(x, y K) K { return max(x, y) },
	)
}

// Uint32s sorts a slice of uint32s in increasing order. The key range is
// determined from the largest element.
func Uint32s(a []uint32) {
	if len(a) < 2 {
		return
	}
	IntegerSort(a, int(MaxKey(a, identity[uint32]))+1, identity[uint32])
}

/*
Ints sorts a slice of non-negative ints in increasing order. The key range
is determined from the largest element.

Ints panics if a contains a negative int.
*/
func Ints(a []int) {
	if len(a) < 2 {
		return
	}
	lowest := parallel.RangeReduce(0, len(a), 0,
		func(low, high int) int { return minSlice(a[low:high]) },
		minInt,
	)
	if lowest < 0 {
		panic(fmt.Sprintf("negative key: %v", lowest))
	}
	IntegerSort(a, MaxKey(a, identity[int])+1, identity[int])
}

func minSlice(a []int) int {
	result := a[0]
	for _, x := range a[1:] {
		result = min(result, x)
	}
	return result
}
