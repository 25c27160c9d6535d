package sort

import "math/bits"

// bottomUp sorts a on the low bits of its keys, least significant digit
// first, reusing the same count vectors bk for every round.
func (e *engine[E, K]) bottomUp(a, b []E, digits []uint8, bk []int, nbits int, top bool) {
	rounds := 1 + (nbits-1)/MaxRadix
	width := 1 + (nbits-1)/rounds
	for offset := 0; offset < nbits; offset += width {
		width = min(width, nbits-offset)
		e.step(a, b, digits, bk, 1<<width, top, newDigit(e.key, width, offset))
	}
}

// topDown sorts a on the low nbits bits of its keys, most significant digit
// first. After partitioning on the top digit, each bucket is sorted
// recursively and concurrently with its own share of bud. When bud is too
// small to be shared, the remaining bits are sorted bottom-up.
func (e *engine[E, K]) topDown(a, b []E, digits []uint8, bud budget, nbits int, top bool) {
	n := len(a)
	if n == 0 {
		return
	}
	bk := e.scratch.vectors(bud)
	switch {
	case nbits <= MaxRadix:
		e.step(a, b, digits, bk, 1<<nbits, top, newDigit(e.key, nbits, 0))

	case bud.units >= Buckets+1:
		e.step(a, b, digits, bk, Buckets, top, newDigit(e.key, MaxRadix, nbits-MaxRadix))

		var starts [Buckets + 1]int
		copy(starts[:], bk[:Buckets])
		starts[Buckets] = n
		var sizes [Buckets]int
		for i := range sizes {
			sizes[i] = starts[i+1] - starts[i]
		}

		// The first vector of bud still holds this call's bucket starts,
		// and every non-empty bucket reserves one vector of its own.
		shares := subBudgets(sizes, n, bud.units-Buckets-1)
		next := bud.first + 1
		thunks := make([]func(), 0, Buckets)
		for i := 0; i < Buckets; i++ {
			lo, hi := starts[i], starts[i+1]
			if lo == hi {
				continue
			}
			child := budget{first: next, units: 1 + shares[i]}
			next += child.units
			thunks = append(thunks, func() {
				e.topDown(a[lo:hi], b[lo:hi], digits[lo:hi], child, nbits-MaxRadix, false)
			})
		}
		e.dispatcher.Do(thunks...)

	default:
		e.bottomUp(a, b, digits, bk, nbits, top)
	}
}

// subBudgets divides remain count vectors among buckets in proportion to
// their sizes: a bucket holding k of n elements receives floor(k*remain/n)
// vectors. The shares never add up to more than remain.
func subBudgets(sizes [Buckets]int, n, remain int) (shares [Buckets]int) {
	if n <= 0 || remain <= 0 {
		return
	}
	for i, k := range sizes {
		hi, lo := bits.Mul64(uint64(k), uint64(remain))
		q, _ := bits.Div64(hi, lo, uint64(n))
		shares[i] = int(q)
	}
	return
}
