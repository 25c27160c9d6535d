package sort

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/exascience/parradix/parallel"
	"github.com/exascience/parradix/scan"
	"github.com/exascience/parradix/sequential"
)

// Options select how IntegerSortWith sorts.
type Options struct {
	// BottomUp sorts least significant digit first, without recursion.
	// By default, keys wider than one digit are sorted most significant
	// digit first, recursing into the buckets in parallel.
	BottomUp bool

	// Sequential executes every fan-out sequentially, for testing and
	// debugging. The result is the same as that of a parallel sort.
	Sequential bool
}

/*
IntegerSortWith stably sorts data in increasing order of key, which must
map every element to an integer in [0, m).

If offsets is not nil, it must have at least m entries, and offsets[i]
receives the index of the first element with key i in the sorted data. For
keys that do not occur, offsets[i] is the start of the next key that occurs,
or len(data) if there is none. So for i < m-1, offsets[i+1]-offsets[i] is
the number of elements with key i.

If scratch is nil, IntegerSortWith allocates the scratch space it needs.
Otherwise, scratch must have been allocated for at least len(data)
elements.

IntegerSortWith panics if m < 1, if offsets is too short, or if scratch is
too small. Keys outside of [0, m) yield an undefined order.
*/
func IntegerSortWith[E any, K constraints.Integer](
	data []E,
	m int,
	key func(E) K,
	offsets []int,
	scratch *Scratch[E],
	opts Options,
) {
	if m < 1 {
		panic(fmt.Sprintf("invalid key range: %v", m))
	}
	if offsets != nil {
		if len(offsets) < m {
			panic(fmt.Sprintf("bucket offsets too short: %v < %v", len(offsets), m))
		}
		offsets = offsets[:m]
	}
	n := len(data)
	if n == 0 {
		clear(offsets)
		return
	}
	if scratch == nil {
		scratch = NewScratch[E](n)
	} else if scratch.Len() < n {
		panic(fmt.Sprintf("scratch too small: %v < %v", scratch.Len(), n))
	}

	e := &engine[E, K]{
		key:        key,
		scratch:    scratch,
		dispatcher: parallel.Dispatcher,
		sequential: opts.Sequential,
		expand:     32,
	}
	if opts.Sequential {
		e.dispatcher = sequential.Dispatcher
	}
	var zero E
	if unsafe.Sizeof(zero) <= 4 {
		e.expand = 64
	}

	a, b, digits := data, scratch.out[:n], scratch.digits[:n]
	root := budget{first: 0, units: units(n)}
	nbits := log2Up(m)

	if nbits <= MaxRadix {
		bk := scratch.vectors(root)
		e.step(a, b, digits, bk, 1<<nbits, true, newDigit(key, nbits, 0))
		copy(offsets, bk[:m])
		return
	}
	if opts.BottomUp {
		e.bottomUp(a, b, digits, scratch.vectors(root), nbits, true)
	} else {
		e.topDown(a, b, digits, root, nbits, true)
	}
	if offsets != nil {
		e.bucketOffsets(data, offsets)
	}
}

// bucketOffsets derives the start of each key's run from the sorted data.
func (e *engine[E, K]) bucketOffsets(data []E, offsets []int) {
	n := len(data)
	e.dispatcher.Range(0, len(offsets), 0, func(low, high int) {
		for i := low; i < high; i++ {
			offsets[i] = n
		}
	})
	// Each key starts at most once in sorted data, so the writes are
	// disjoint.
	e.dispatcher.Range(0, n-1, 0, func(low, high int) {
		for i := low; i < high; i++ {
			if v, next := e.key(data[i]), e.key(data[i+1]); v != next {
				offsets[int(next)] = i + 1
			}
		}
	})
	offsets[int(e.key(data[0]))] = 0
	// Keys without elements take the start of the next key that has some.
	if e.sequential {
		scan.InclusiveBackwardSerial(offsets, offsets, n, minInt)
	} else {
		scan.InclusiveBackward(offsets, offsets, n, minInt)
	}
}

// IntegerSort stably sorts data in increasing order of key, which must map
// every element to an integer in [0, m). See IntegerSortWith.
func IntegerSort[E any, K constraints.Integer](data []E, m int, key func(E) K) {
	IntegerSortWith(data, m, key, nil, nil, Options{})
}

// IntegerSortOffsets is IntegerSort, additionally storing the start of each
// key's run in offsets. See IntegerSortWith.
func IntegerSortOffsets[E any, K constraints.Integer](data []E, offsets []int, m int, key func(E) K) {
	IntegerSortWith(data, m, key, offsets, nil, Options{})
}

// IntegerSortBottomUp is IntegerSort, sorting least significant digit
// first.
func IntegerSortBottomUp[E any, K constraints.Integer](data []E, m int, key func(E) K) {
	IntegerSortWith(data, m, key, nil, nil, Options{BottomUp: true})
}

// IntegerSortScratch is IntegerSort, using scratch instead of allocating
// scratch space.
func IntegerSortScratch[E any, K constraints.Integer](data []E, m int, scratch *Scratch[E], key func(E) K) {
	IntegerSortWith(data, m, key, nil, scratch, Options{})
}
