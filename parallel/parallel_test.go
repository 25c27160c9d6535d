package parallel_test

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/exascience/parradix/parallel"
)

func ExampleDo() {
	var fib func(int) int

	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}

	var parallelFib func(int) int

	parallelFib = func(n int) int {
		if n < 20 {
			return fib(n)
		}
		var n1, n2 int
		parallel.Do(
			func() { n1 = parallelFib(n - 1) },
			func() { n2 = parallelFib(n - 2) },
		)
		return n1 + n2
	}

	fmt.Println(parallelFib(25))

	// Output:
	// 75025
}

func ExampleRangeReduceIntSum() {
	numDivisors := func(n int) int {
		return parallel.RangeReduceIntSum(
			1, n+1, runtime.GOMAXPROCS(0),
			func(low, high int) int {
				var sum int
				for i := low; i < high; i++ {
					if (n % i) == 0 {
						sum++
					}
				}
				return sum
			},
		)
	}

	fmt.Println(numDivisors(12))

	// Output:
	// 6
}

func ExampleRangeReduce() {
	findPrimes := func(n int) []int {
		return parallel.RangeReduce(
			2, n, 4*runtime.GOMAXPROCS(0),
			func(low, high int) []int {
				var slice []int
				for i := low; i < high; i++ {
					prime := true
					for j := 2; j*j <= i; j++ {
						if i%j == 0 {
							prime = false
							break
						}
					}
					if prime {
						slice = append(slice, i)
					}
				}
				return slice
			},
			func(x, y []int) []int {
				return append(x, y...)
			},
		)
	}

	fmt.Println(findPrimes(20))

	// Output:
	// [2 3 5 7 11 13 17 19]
}

func TestRangeCoversInterval(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7, 64} {
		seen := make([]int32, 1000)
		parallel.Range(0, len(seen), n, func(low, high int) {
			for i := low; i < high; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("batches %v: index %v visited %v times", n, i, c)
			}
		}
	}
}

func TestDoJoinsAllThunks(t *testing.T) {
	var count int32
	thunks := make([]func(), 17)
	for i := range thunks {
		thunks[i] = func() { atomic.AddInt32(&count, 1) }
	}
	parallel.Dispatcher.Do(thunks...)
	if count != int32(len(thunks)) {
		t.Errorf("expected %v thunks to run, got %v", len(thunks), count)
	}
}

func TestDoPropagatesPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic to propagate to the joining goroutine")
		}
	}()
	parallel.Do(
		func() {},
		func() { panic("boom") },
	)
}
