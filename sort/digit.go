package sort

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// A digit extracts a bit window of an element's key.
type digit[E any, K constraints.Integer] struct {
	key   func(E) K
	shift uint
	mask  uint64
}

// newDigit returns the digit of width bits starting at bit offset.
func newDigit[E any, K constraints.Integer](key func(E) K, width, offset int) digit[E, K] {
	return digit[E, K]{
		key:   key,
		shift: uint(offset),
		mask:  (uint64(1) << uint(width)) - 1,
	}
}

// of returns the digit of e, a value in [0, 1<<width).
func (d digit[E, K]) of(e E) int {
	return int((uint64(d.key(e)) >> d.shift) & d.mask)
}

// log2Up returns the number of bits needed to represent m distinct keys.
func log2Up(m int) int {
	return bits.Len(uint(m - 1))
}
