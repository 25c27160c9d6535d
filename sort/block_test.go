package sort

import (
	"math/rand"
	stdsort "sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/parradix/parallel"
	"github.com/exascience/parradix/sequential"
)

func TestRadixBlock(t *testing.T) {
	src := []pair{{3, 0}, {1, 1}, {3, 2}, {0, 3}, {1, 4}}
	dst := make([]pair, 10+len(src))
	digits := make([]uint8, len(src))
	counts := make([]int, Buckets)
	offsets := make([]int, Buckets)
	d := newDigit(pairKey, 2, 0)
	radixBlock(src, dst, digits, counts, offsets, 10, d.of)
	require.Equal(t, []int{1, 2, 0, 2}, counts)
	require.Equal(t, []int{10, 11, 13, 13}, offsets)
	require.Equal(t, []uint8{3, 1, 3, 0, 1}, digits)
	require.Equal(t, []pair{{0, 3}, {1, 1}, {1, 4}, {3, 0}, {3, 2}}, dst[10:])
}

func TestRadixStepSerial(t *testing.T) {
	a := []pair{{6, 0}, {5, 1}, {2, 2}, {4, 3}, {1, 4}}
	b := make([]pair, len(a))
	buckets := make([]int, 2)
	// The second bit of each key.
	radixStepSerial(a, b, make([]uint8, len(a)), buckets, newDigit(pairKey, 1, 1).of)
	require.Equal(t, []pair{{5, 1}, {4, 3}, {1, 4}, {6, 0}, {2, 2}}, a)
	require.Equal(t, []int{0, 3}, buckets)
}

func TestDigit(t *testing.T) {
	d := newDigit(identity[uint64], 3, 61)
	require.Equal(t, 7, d.of(^uint64(0)))
	require.Equal(t, 5, newDigit(identity[int], 4, 4).of(0x5f))
	require.Equal(t, 0, newDigit(identity[int], 0, 0).of(12345))
}

func TestStepBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	const n = 100000
	org := makeRandomPairs(r, n, 1<<10)
	for _, mode := range []struct {
		name       string
		sequential bool
	}{{"Parallel", false}, {"Sequential", true}} {
		t.Run(mode.name, func(t *testing.T) {
			e := &engine[pair, uint32]{
				key:        pairKey,
				scratch:    NewScratch[pair](n),
				dispatcher: parallel.Dispatcher,
				sequential: mode.sequential,
				expand:     32,
			}
			if mode.sequential {
				e.dispatcher = sequential.Dispatcher
			}
			bk := e.scratch.vectors(budget{0, units(n)})
			require.GreaterOrEqual(t, e.blocks(n, len(bk)/Buckets), 2)

			a := append([]pair(nil), org...)
			e.step(a, e.scratch.out, e.scratch.digits, bk, Buckets, true, newDigit(pairKey, MaxRadix, 4))

			d := newDigit(pairKey, MaxRadix, 4)
			expected := append([]pair(nil), org...)
			stdsort.SliceStable(expected, func(i, j int) bool { return d.of(expected[i]) < d.of(expected[j]) })
			expectedOffsets := make([]int, Buckets)
			for _, p := range org {
				for k := d.of(p) + 1; k < Buckets; k++ {
					expectedOffsets[k]++
				}
			}
			require.Equal(t, expected, a)
			require.Equal(t, expectedOffsets, bk[:Buckets])
		})
	}
}

func TestBlocksHeuristic(t *testing.T) {
	e := &engine[pair, uint32]{expand: 32}
	require.Equal(t, 0, e.blocks(100, 2))
	require.Equal(t, 1, e.blocks(100, 3))
	require.Equal(t, 3, e.blocks(256, 1000))
	require.Equal(t, 10, e.blocks(1<<20, 30))
}
