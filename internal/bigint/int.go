package bigint

// Radix is the base of one digit block. Each block stores four decimal
// digits, so decimal conversion never crosses a block boundary.
const Radix = 10000

// blockDigits is the number of decimal digits per block.
const blockDigits = 4

// Int is an arbitrary-precision signed integer.
//
// Operations have value semantics: they never mutate their operands and
// always allocate fresh result storage, so aliasing the same value on both
// sides (squaring, doubling) is safe.
type Int struct {
	neg bool
	// digits are base-10000 little-endian magnitude blocks (digits[0] is
	// least significant).
	//
	// Canonical form: no trailing zero blocks, and canonical zero is
	// neg=false with nil/empty digits.
	digits []uint32
}

// Zero returns a zero Int.
func Zero() Int { return Int{} }

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	if v > 0 {
		return Int{digits: blocksFromUint64(uint64(v))}
	}
	// v < 0
	u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	u++
	return Int{neg: true, digits: blocksFromUint64(u)}
}

func blocksFromUint64(v uint64) []uint32 {
	var out []uint32
	for v != 0 {
		out = append(out, uint32(v%Radix)) //nolint:gosec // G115: remainder is below the radix.
		v /= Radix
	}
	return out
}

// IsZero reports whether the integer is zero.
func (x Int) IsZero() bool {
	return len(x.digits) == 0
}

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (x Int) Sign() int {
	switch {
	case len(x.digits) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Negated returns the negated value. Zero stays non-negative.
func (x Int) Negated() Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{neg: !x.neg, digits: x.digits}
}

// Abs returns the absolute value.
func (x Int) Abs() Int {
	return Int{digits: x.digits}
}

// Cmp compares two Int values and returns -1, 0, or 1. Differing signs
// resolve by sign alone; equal signs compare magnitudes, with the direction
// flipped when both values are negative.
func (x Int) Cmp(y Int) int {
	switch {
	case len(x.digits) == 0 && len(y.digits) == 0:
		return 0
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	default:
		cmp := cmpBlocks(x.digits, y.digits)
		if x.neg {
			return -cmp
		}
		return cmp
	}
}

// CmpAbs compares the magnitudes of two Int values.
func (x Int) CmpAbs(y Int) int {
	return cmpBlocks(x.digits, y.digits)
}

// Int64 converts the value to int64 if it fits.
func (x Int) Int64() (int64, bool) {
	var mag uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		d := uint64(x.digits[i])
		if mag > (^uint64(0)-d)/Radix {
			return 0, false
		}
		mag = mag*Radix + d
		if i == 0 {
			break
		}
	}
	if !x.neg {
		if mag > uint64(^uint64(0)>>1) {
			return 0, false
		}
		return int64(mag), true //nolint:gosec // G115: bounded by MaxInt64 above.
	}
	// Negative: allow magnitude up to 2^63.
	if mag > uint64(^uint64(0)>>1)+1 {
		return 0, false
	}
	if mag == uint64(^uint64(0)>>1)+1 {
		return -1 << 63, true
	}
	return -int64(mag), true //nolint:gosec // G115: bounded by MaxInt64 above.
}

// Add adds two Int values. Matching signs add magnitudes and keep the shared
// sign; differing signs subtract the smaller magnitude from the larger and
// take the sign of whichever operand dominates.
func Add(a, b Int) Int {
	if a.neg == b.neg {
		sum := addAbs(a.digits, b.digits)
		if len(sum) == 0 {
			return Int{}
		}
		return Int{neg: a.neg, digits: sum}
	}
	switch cmpBlocks(a.digits, b.digits) {
	case 0:
		return Int{}
	case 1:
		return Int{neg: a.neg, digits: subAbs(a.digits, b.digits)}
	default:
		return Int{neg: b.neg, digits: subAbs(b.digits, a.digits)}
	}
}

// Sub subtracts two Int values.
func Sub(a, b Int) Int {
	return Add(a, b.Negated())
}

// Mul multiplies two Int values. The result is negative iff operand signs
// differ and the product is nonzero.
func Mul(a, b Int) Int {
	prod := mulAbs(a.digits, b.digits)
	if len(prod) == 0 {
		return Int{}
	}
	return Int{neg: a.neg != b.neg, digits: prod}
}
