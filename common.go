package parradix

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the size in bytes of a cache line on the current
// architecture.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

/*
A Dispatcher executes fork-join fan-outs. Every fan-out has an implicit join:
Do and Range return only after all the work they started has terminated.

The parallel and sequential packages each provide a Dispatcher, so that
algorithms can be run in parallel or, for testing and debugging,
sequentially, without changing their code.
*/
type Dispatcher interface {
	// Do executes the thunks and returns when all of them have terminated.
	Do(thunks ...func())

	// Range divides the half-open interval from low to high into n
	// batches, and invokes f for each batch. If n is 0, a reasonable
	// default is used that takes NumWorkers into account.
	Range(low, high, n int, f func(low, high int))
}

// NumWorkers returns the number of workers that can execute in parallel,
// as determined by runtime.GOMAXPROCS(0).
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

/*
ComputeEffectiveThreshold determines a batch size for a range from low to
high, with 0 <= low <= high.

If the input threshold is > 0, the return value is ceiling((high - low) /
(threshold * NumWorkers())).

If the input threshold is == 0, the return value is 1.

If the input threshold is < 0, the return value is abs(threshold).
*/
func ComputeEffectiveThreshold(low, high, threshold int) int {
	if (low < 0) || (high < low) {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if threshold > 0 {
		threshold = ((high - low - 1) / (threshold * NumWorkers())) + 1
	} else if threshold < 0 {
		return -1 * threshold
	}
	if threshold == 0 {
		threshold = 1
	}
	return threshold
}
