package sort

// radixBlock partitions src stably by digit into dst. The buckets of src
// occupy dst[base:base+len(src)] in ascending digit order. On return,
// counts holds the number of elements per bucket, and offsets the absolute
// index in dst where each bucket starts. counts and offsets may be the same
// slice, in which case it holds the offsets on return.
//
// digits receives the digit of each element of src and must have the same
// length.
func radixBlock[E any](
	src, dst []E,
	digits []uint8,
	counts, offsets []int,
	base int,
	digit func(E) int,
) {
	clear(counts)
	for j, x := range src {
		k := digit(x)
		digits[j] = uint8(k)
		counts[k]++
	}
	s := base
	for i, c := range counts {
		s += c
		offsets[i] = s
	}
	// Filling each bucket from its end, scanning src backwards, keeps equal
	// digits in input order.
	for j := len(src) - 1; j >= 0; j-- {
		k := digits[j]
		offsets[k]--
		dst[offsets[k]] = src[j]
	}
}

// radixStepSerial partitions a by digit in a single block, using b as the
// output buffer. buckets receives the start of each bucket.
func radixStepSerial[E any](a, b []E, digits []uint8, buckets []int, digit func(E) int) {
	radixBlock(a, b, digits, buckets, buckets, 0, digit)
	copy(a, b)
}
