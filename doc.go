// Package parradix provides a parallel in-memory integer radix sort, together
// with the fork-join, prefix-sum, and transpose building blocks it is
// constructed from.
//
// Parradix provides the following subpackages:
//
// parradix/parallel provides simple functions for executing series of thunks,
// as well as thunks or reducers over ranges in parallel.
//
// parradix/sequential provides sequential implementations of the functions
// from parradix/parallel, for testing and debugging purposes.
//
// parradix/speculative provides parallel predicates over ranges that attempt
// to terminate early as soon as the final result is known.
//
// parradix/scan provides parallel and sequential exclusive and inclusive
// prefix sums over an arbitrary associative combine function.
//
// parradix/transpose provides cache-oblivious transposition of count matrices
// and of blocks of elements described by such matrices.
//
// parradix/sort provides the radix sort itself: a stable, recursive,
// cache-blocked sort of arbitrary elements by a non-negative integer key, that
// can additionally report where each key's run starts in the sorted output.
//
// The radixbench command generates input files and benchmarks the sort on
// them.
//
// The radix sort follows the blocked integer sort of the Problem Based
// Benchmark Suite. See https://doi.org/10.1145/2312005.2312018 for some
// background on the benchmark suite, and
// http://supertech.csail.mit.edu/papers/steal.pdf for the theory behind the
// fork-join scheduling model.
package parradix
