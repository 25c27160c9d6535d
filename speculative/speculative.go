/*
Package speculative provides functions for expressing parallel
predicates, similar to the functions in package parallel, except that
the implementations here terminate early when they can.

And and RangeAnd terminate early if the final return value is known
early, that is if any of the predicates invoked in parallel returns
false.

Panics are handled similar to the functions in package parallel.
However, panics may not propagate to the invoking goroutine in case
they terminate early because of a known return value.

None of the functions described above stop the execution of invoked
functions that may still be running in parallel in case of early
termination. Predicates that run for a long time should poll some
other safe form of communication to stop early themselves.
*/
package speculative

import (
	"fmt"
	"sync"

	"github.com/exascience/parradix/internal"
)

/*
And receives zero or more predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and And returns true
if all of them return true; or And returns false when at least one of
them returns false, without waiting for the other predicates to
terminate.

If one or more predicates panic, the corresponding goroutines recover
the panics, and And may eventually panic with the left-most recovered
panic value. If both panics occur and false values are returned, then
the left-most of these events takes precedence.
*/
func And(predicates ...func() bool) bool {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	var b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	half := len(predicates) / 2
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		b1 = And(predicates[half:]...)
	}()
	if !And(predicates[:half]...) {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

/*
RangeAnd receives a range, a batch count, and a range predicate
function, divides the range into batches, and invokes the range
predicate for each of these batches in parallel.

The range is specified by a low and high integer, with low <=
high. The batches are determined by dividing up the size of the range
(high - low) by n. If n is 0, a reasonable default is used that takes
runtime.GOMAXPROCS(0) into account.

The range predicate is invoked for each batch in its own goroutine,
and RangeAnd returns true if all of them return true; or RangeAnd
returns false when at least one of them returns false, without waiting
for the other range predicates to terminate.

RangeAnd panics if high < low, or if n < 0.
*/
func RangeAnd(low, high, n int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			mid, half, split := internal.BatchBounds(low, high, n)
			if !split {
				return f(low, high)
			}
			var b1 bool
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				b1 = recur(mid, high, n-half)
			}()
			if !recur(low, mid, half) {
				return false
			}
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return b1
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
