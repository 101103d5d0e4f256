package bigint

// Magnitude layer: all helpers below operate on little-endian base-10000
// block slices and ignore sign. Inputs are assumed canonical (trimmed);
// outputs are trimmed before return.

func trimBlocks(blocks []uint32) []uint32 {
	for len(blocks) > 0 && blocks[len(blocks)-1] == 0 {
		blocks = blocks[:len(blocks)-1]
	}
	if len(blocks) == 0 {
		return nil
	}
	return blocks
}

func cloneBlocks(blocks []uint32) []uint32 {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]uint32, len(blocks))
	copy(out, blocks)
	return out
}

// cmpBlocks compares two magnitudes: longer slice is larger, equal lengths
// compare block by block from the most significant end.
func cmpBlocks(a, b []uint32) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		av := a[i]
		bv := b[i]
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		if i == 0 {
			break
		}
	}
	return 0
}

// addAbs returns x+y at magnitude level. The result has at most
// max(len(x), len(y))+1 blocks.
func addAbs(x, y []uint32) []uint32 {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n == 0 {
		return nil
	}
	out := make([]uint32, n+1)
	var carry uint32
	for i := range n {
		sum := carry
		if i < len(x) {
			sum += x[i]
		}
		if i < len(y) {
			sum += y[i]
		}
		out[i] = sum % Radix
		carry = sum / Radix
	}
	out[n] = carry
	return trimBlocks(out)
}

// subAbs returns x-y at magnitude level. The caller must guarantee x >= y.
func subAbs(x, y []uint32) []uint32 {
	if len(y) == 0 {
		return cloneBlocks(x)
	}
	out := cloneBlocks(x)
	subInPlace(out, y)
	return trimBlocks(out)
}

// subInPlace subtracts sub from dst with borrow propagation. The caller
// must guarantee dst >= sub; blocks of sub beyond its length read as zero.
func subInPlace(dst, sub []uint32) {
	var borrow uint32
	for i := range dst {
		take := borrow
		if i < len(sub) {
			take += sub[i]
		}
		if dst[i] >= take {
			dst[i] -= take
			borrow = 0
		} else {
			dst[i] += Radix - take
			borrow = 1
		}
	}
}

// mulAbs returns x*y at magnitude level via schoolbook convolution into
// len(x)+len(y) blocks. Either operand empty short-circuits to zero.
func mulAbs(x, y []uint32) []uint32 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	out := make([]uint32, len(x)+len(y))
	for i := range x {
		if x[i] == 0 {
			continue
		}
		xi := uint64(x[i])
		var carry uint64
		for j := range y {
			k := i + j
			sum := uint64(out[k]) + xi*uint64(y[j]) + carry
			out[k] = uint32(sum % Radix) //nolint:gosec // G115: remainder is below the radix.
			carry = sum / Radix
		}
		for k := i + len(y); carry != 0; k++ {
			sum := uint64(out[k]) + carry
			out[k] = uint32(sum % Radix) //nolint:gosec // G115: remainder is below the radix.
			carry = sum / Radix
		}
	}
	return trimBlocks(out)
}

// mulAbsSmall multiplies a magnitude by a single block value m in [0, Radix).
// Division's quotient-digit search relies on this helper.
func mulAbsSmall(x []uint32, m uint32) []uint32 {
	if m == 0 || len(x) == 0 {
		return nil
	}
	if m == 1 {
		return cloneBlocks(x)
	}
	out := make([]uint32, len(x)+1)
	var carry uint64
	for i := range x {
		prod := uint64(x[i])*uint64(m) + carry
		out[i] = uint32(prod % Radix) //nolint:gosec // G115: remainder is below the radix.
		carry = prod / Radix
	}
	out[len(x)] = uint32(carry) //nolint:gosec // G115: carry is below the radix.
	return trimBlocks(out)
}
