package sort

import (
	"golang.org/x/exp/constraints"

	"github.com/exascience/parradix"
	"github.com/exascience/parradix/scan"
	"github.com/exascience/parradix/transpose"
)

// An engine carries the state that is shared by all recursive calls of one
// sort: the key projection, the scratch space, and how fan-outs execute.
type engine[E any, K constraints.Integer] struct {
	key        func(E) K
	scratch    *Scratch[E]
	dispatcher parradix.Dispatcher
	sequential bool

	// expand scales the minimum block length, trading parallelism against
	// the fixed cost of a block. Small elements get longer blocks.
	expand int
}

func add(x, y int) int { return x + y }

func minInt(x, y int) int { return min(x, y) }

// blocks returns how many blocks a radix step over n elements with the
// given count vectors uses.
func (e *engine[E, K]) blocks(n, vectors int) int {
	// Each block needs three count vectors: counts, transposed global
	// offsets, and block-local offsets.
	return min(vectors/3, 1+n/(Buckets*e.expand))
}

/*
step stably partitions a into m buckets by digit d, using b and digits as
scratch of the same length as a, and bk as count vectors. On return, the
first m entries of bk hold the start index of each bucket in a.

With fewer than two blocks, the whole range is partitioned by a single
serial block. Otherwise, the blocks are histogrammed and scattered
concurrently into b, their counts transposed to bucket-major order and
prefix-summed, and finally each block's bucket runs are moved to their
global positions in a. The prefix sum runs in parallel only if top is set.
*/
func (e *engine[E, K]) step(a, b []E, digits []uint8, bk []int, m int, top bool, d digit[E, K]) {
	n := len(a)
	blocks := e.blocks(n, len(bk)/Buckets)
	if blocks < 2 {
		radixStepSerial(a, b, digits, bk[:m], d.of)
		return
	}

	size := n / blocks
	counts := bk[:blocks*m]
	global := bk[blocks*Buckets : blocks*Buckets+blocks*m]
	local := bk[2*blocks*Buckets : 2*blocks*Buckets+blocks*m]

	e.dispatcher.Range(0, blocks, blocks, func(low, high int) {
		for i := low; i < high; i++ {
			lo, hi := i*size, (i+1)*size
			if i == blocks-1 {
				hi = n
			}
			radixBlock(a[lo:hi], b, digits[lo:hi], counts[i*m:(i+1)*m], local[i*m:(i+1)*m], lo, d.of)
		}
	})

	transpose.Matrix(e.dispatcher, counts, global, blocks, m)
	if top && !e.sequential {
		scan.Exclusive(global, global, 0, add)
	} else {
		scan.ExclusiveSerial(global, global, 0, add)
	}
	transpose.Blocks(e.dispatcher, b, a, local, global, counts, blocks, m)

	for j := 0; j < m; j++ {
		bk[j] = global[j*blocks]
	}
}
