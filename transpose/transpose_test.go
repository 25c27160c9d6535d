package transpose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/parradix/parallel"
	"github.com/exascience/parradix/sequential"
)

func TestMatrix(t *testing.T) {
	in := []int{
		1, 2, 3,
		4, 5, 6,
	}
	out := make([]int, 6)
	Matrix(parallel.Dispatcher, in, out, 2, 3)
	require.Equal(t, []int{
		1, 4,
		2, 5,
		3, 6,
	}, out)
}

func TestMatrixLarge(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {4, 300}, {300, 4}, {129, 257}} {
		rows, cols := shape[0], shape[1]
		in := make([]int, rows*cols)
		for i := range in {
			in[i] = i
		}
		par := make([]int, len(in))
		seq := make([]int, len(in))
		Matrix(parallel.Dispatcher, in, par, rows, cols)
		Matrix(sequential.Dispatcher, in, seq, rows, cols)
		require.Equal(t, seq, par)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				require.Equal(t, in[i*cols+j], par[j*rows+i])
			}
		}
	}
}

func TestBlocks(t *testing.T) {
	// Two blocks with three buckets each, already grouped by bucket inside
	// each block. Block 0 holds a0 | b0 b0 | -, block 1 holds a1 a1 | - | c1.
	src := []string{"a0", "b0", "b0", "a1", "a1", "c1"}
	lengths := []int{
		1, 2, 0,
		2, 0, 1,
	}
	srcOffsets := []int{
		0, 1, 3,
		3, 5, 5,
	}
	// bucket-major: a0 a1 a1 b0 b0 c1
	dstOffsets := []int{
		0, 1,
		3, 5,
		5, 5,
	}
	dst := make([]string, len(src))
	Blocks(parallel.Dispatcher, src, dst, srcOffsets, dstOffsets, lengths, 2, 3)
	require.Equal(t, []string{"a0", "a1", "a1", "b0", "b0", "c1"}, dst)
}

func TestShortMatrixPanics(t *testing.T) {
	require.Panics(t, func() {
		Matrix(sequential.Dispatcher, make([]int, 5), make([]int, 6), 2, 3)
	})
}
