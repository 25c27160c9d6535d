/*
Package transpose provides cache-oblivious transposition of row-major
matrices, and of blocks of elements whose positions and lengths are given
by such matrices.

Both functions recursively halve the longer dimension of the matrix until
the remaining tile is small, and execute the two halves with the given
Dispatcher. Tiles never overlap, so the halves write disjoint parts of the
output.
*/
package transpose

import (
	"fmt"

	"github.com/exascience/parradix"
)

// Threshold is the side length below which Matrix transposes a tile
// sequentially.
const Threshold = 64

// The base case of Blocks moves whole runs of elements, so its tiles hold
// fewer matrix entries.
const blockThreshold = Threshold * 16

/*
Matrix stores the transpose of the rows×cols row-major matrix in into out,
so that out[j*rows+i] = in[i*cols+j].

Matrix panics if in or out hold fewer than rows*cols entries.
*/
func Matrix[T any](d parradix.Dispatcher, in, out []T, rows, cols int) {
	checkSize("in", len(in), rows, cols)
	checkSize("out", len(out), rows, cols)
	var recur func(rStart, rCount, cStart, cCount int)
	recur = func(rStart, rCount, cStart, cCount int) {
		switch {
		case cCount < Threshold && rCount < Threshold:
			for i := rStart; i < rStart+rCount; i++ {
				for j := cStart; j < cStart+cCount; j++ {
					out[j*rows+i] = in[i*cols+j]
				}
			}
		case cCount > rCount:
			l1 := cCount / 2
			d.Do(
				func() { recur(rStart, rCount, cStart, l1) },
				func() { recur(rStart, rCount, cStart+l1, cCount-l1) },
			)
		default:
			l1 := rCount / 2
			d.Do(
				func() { recur(rStart, l1, cStart, cCount) },
				func() { recur(rStart+l1, rCount-l1, cStart, cCount) },
			)
		}
	}
	recur(0, rows, 0, cols)
}

/*
Blocks moves runs of elements from src to dst. The run for row i and column
j of a rows×cols matrix starts at src[srcOffsets[i*cols+j]], has length
lengths[i*cols+j], and is moved to dst[dstOffsets[j*rows+i]]. In other
words, srcOffsets and lengths are row-major, and dstOffsets is the
transposed, column-major layout.

The destination runs must not overlap.
*/
func Blocks[E any](
	d parradix.Dispatcher,
	src, dst []E,
	srcOffsets, dstOffsets, lengths []int,
	rows, cols int,
) {
	checkSize("srcOffsets", len(srcOffsets), rows, cols)
	checkSize("dstOffsets", len(dstOffsets), rows, cols)
	checkSize("lengths", len(lengths), rows, cols)
	var recur func(rStart, rCount, cStart, cCount int)
	recur = func(rStart, rCount, cStart, cCount int) {
		switch {
		case cCount*rCount < blockThreshold:
			for i := rStart; i < rStart+rCount; i++ {
				for j := cStart; j < cStart+cCount; j++ {
					l := lengths[i*cols+j]
					s, t := srcOffsets[i*cols+j], dstOffsets[j*rows+i]
					copy(dst[t:t+l], src[s:s+l])
				}
			}
		case cCount > rCount:
			l1 := cCount / 2
			d.Do(
				func() { recur(rStart, rCount, cStart, l1) },
				func() { recur(rStart, rCount, cStart+l1, cCount-l1) },
			)
		default:
			l1 := rCount / 2
			d.Do(
				func() { recur(rStart, l1, cStart, cCount) },
				func() { recur(rStart+l1, rCount-l1, cStart, cCount) },
			)
		}
	}
	recur(0, rows, 0, cols)
}

func checkSize(name string, size, rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid matrix shape: %v×%v", rows, cols))
	}
	if size < rows*cols {
		panic(fmt.Sprintf("%v too short for %v×%v matrix: %v", name, rows, cols, size))
	}
}
