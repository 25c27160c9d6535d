/*
Package scan provides prefix sums over an arbitrary associative combine
function with an identity element.

The parallel variants divide the input into one batch per few workers,
reduce each batch in parallel, scan the batch totals sequentially, and then
scan each batch again in parallel starting from its batch total. They fall
back to the sequential variants for small inputs.

All functions allow in and out to be the same slice.
*/
package scan

import (
	"fmt"

	"golang.org/x/sys/cpu"

	"github.com/exascience/parradix"
	"github.com/exascience/parradix/parallel"
)

const grainSize = 0x2000

// Batch totals are written concurrently by different workers.
type total[T any] struct {
	value T
	_     cpu.CacheLinePad
}

func checkLengths(in, out int) {
	if out < in {
		panic(fmt.Sprintf("output too short: %v < %v", out, in))
	}
}

// ExclusiveSerial stores in out[i] the combination of identity and in[0]
// through in[i-1], and returns the combination of all elements.
func ExclusiveSerial[T any](in, out []T, identity T, combine func(x, y T) T) T {
	checkLengths(len(in), len(out))
	acc := identity
	for i, x := range in {
		out[i] = acc
		acc = combine(acc, x)
	}
	return acc
}

// Exclusive is the parallel variant of ExclusiveSerial.
func Exclusive[T any](in, out []T, identity T, combine func(x, y T) T) T {
	n := len(in)
	checkLengths(n, len(out))
	if n < grainSize {
		return ExclusiveSerial(in, out, identity, combine)
	}
	size := max(parradix.ComputeEffectiveThreshold(0, n, 2), grainSize/4)
	batches := (n + size - 1) / size
	totals := make([]total[T], batches)
	parallel.Range(0, batches, batches, func(low, high int) {
		for b := low; b < high; b++ {
			acc := identity
			for _, x := range in[b*size : min((b+1)*size, n)] {
				acc = combine(acc, x)
			}
			totals[b].value = acc
		}
	})
	acc := identity
	for b := range totals {
		t := totals[b].value
		totals[b].value = acc
		acc = combine(acc, t)
	}
	parallel.Range(0, batches, batches, func(low, high int) {
		for b := low; b < high; b++ {
			lo, hi := b*size, min((b+1)*size, n)
			ExclusiveSerial(in[lo:hi], out[lo:hi], totals[b].value, combine)
		}
	})
	return acc
}

// InclusiveBackwardSerial stores in out[i] the combination of in[i] through
// in[len(in)-1] and identity, scanning from right to left, and returns the
// combination of all elements.
func InclusiveBackwardSerial[T any](in, out []T, identity T, combine func(x, y T) T) T {
	checkLengths(len(in), len(out))
	acc := identity
	for i := len(in) - 1; i >= 0; i-- {
		acc = combine(in[i], acc)
		out[i] = acc
	}
	return acc
}

// InclusiveBackward is the parallel variant of InclusiveBackwardSerial.
func InclusiveBackward[T any](in, out []T, identity T, combine func(x, y T) T) T {
	n := len(in)
	checkLengths(n, len(out))
	if n < grainSize {
		return InclusiveBackwardSerial(in, out, identity, combine)
	}
	size := max(parradix.ComputeEffectiveThreshold(0, n, 2), grainSize/4)
	batches := (n + size - 1) / size
	totals := make([]total[T], batches)
	parallel.Range(0, batches, batches, func(low, high int) {
		for b := low; b < high; b++ {
			acc := identity
			batch := in[b*size : min((b+1)*size, n)]
			for i := len(batch) - 1; i >= 0; i-- {
				acc = combine(batch[i], acc)
			}
			totals[b].value = acc
		}
	})
	acc := identity
	for b := batches - 1; b >= 0; b-- {
		t := totals[b].value
		totals[b].value = acc
		acc = combine(t, acc)
	}
	parallel.Range(0, batches, batches, func(low, high int) {
		for b := low; b < high; b++ {
			lo, hi := b*size, min((b+1)*size, n)
			InclusiveBackwardSerial(in[lo:hi], out[lo:hi], totals[b].value, combine)
		}
	})
	return acc
}
