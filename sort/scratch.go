package sort

import (
	"fmt"
	"unsafe"
)

const (
	// MaxRadix is the largest number of key bits that a single radix step
	// partitions on.
	MaxRadix = 2

	// Buckets is the number of buckets of a radix step on MaxRadix bits, and
	// the width of each count vector in the scratch count matrix.
	Buckets = 1 << MaxRadix
)

// units returns the number of count vectors available to a sort of n
// elements.
func units(n int) int {
	return 1 + n/(Buckets*8)
}

// ScratchSize returns the number of bytes of scratch space that sorting n
// elements of elemSize bytes each requires: a buffer for n elements, one
// digit byte per element, and the bucket count matrix.
func ScratchSize(elemSize, n int) int {
	if elemSize < 0 || n < 0 {
		panic(fmt.Sprintf("invalid scratch size request: %v elements of %v bytes", n, elemSize))
	}
	return elemSize*n + n + int(unsafe.Sizeof(int(0)))*Buckets*units(n)
}

/*
Scratch is temporary space for sorting up to Len elements of type E.

A Scratch can be allocated once with NewScratch and passed to repeated calls
of IntegerSortWith or IntegerSortScratch to avoid allocating it for every
sort. A Scratch must not be used by more than one sort at a time.
*/
type Scratch[E any] struct {
	out    []E
	digits []uint8
	counts []int
}

// NewScratch allocates scratch space for sorting up to n elements.
func NewScratch[E any](n int) *Scratch[E] {
	if n < 0 {
		panic(fmt.Sprintf("invalid scratch length: %v", n))
	}
	return &Scratch[E]{
		out:    make([]E, n),
		digits: make([]uint8, n),
		counts: make([]int, Buckets*units(n)),
	}
}

// Len returns the largest number of elements s can be used for.
func (s *Scratch[E]) Len() int {
	return len(s.out)
}

// Size returns the number of bytes held by s, as computed by ScratchSize.
func (s *Scratch[E]) Size() int {
	var e E
	return ScratchSize(int(unsafe.Sizeof(e)), s.Len())
}

// A budget is a run of consecutive count vectors in the count matrix of a
// Scratch. Sibling recursive calls always receive disjoint budgets.
type budget struct {
	first, units int
}

// vectors returns the count vectors of b, Buckets entries per vector.
func (s *Scratch[E]) vectors(b budget) []int {
	return s.counts[b.first*Buckets : (b.first+b.units)*Buckets]
}
