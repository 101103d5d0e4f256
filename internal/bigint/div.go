package bigint

import "errors"

// ErrDivisionByZero indicates a division or modulo with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// DivMod divides two Int values with floor semantics: the quotient rounds
// toward negative infinity and the remainder's sign matches the divisor's
// (or is zero). The identity a = q*b + r holds exactly.
func DivMod(a, b Int) (q, r Int, err error) {
	if len(b.digits) == 0 {
		return Int{}, Int{}, ErrDivisionByZero
	}
	if len(a.digits) == 0 {
		return Int{}, Int{}, nil
	}
	qMag, rMag := divModAbs(a.digits, b.digits)
	negQ := a.neg != b.neg
	if negQ && len(rMag) != 0 {
		// Truncating quotient rounds toward zero; when signs differ and the
		// division is inexact, floor is one further from zero.
		qMag = addAbs(qMag, []uint32{1})
	}
	if len(qMag) != 0 {
		q = Int{neg: negQ, digits: qMag}
	}
	r = Sub(a, Mul(q, b))
	return q, r, nil
}

// Div returns the floor quotient of two Int values.
func Div(a, b Int) (Int, error) {
	q, _, err := DivMod(a, b)
	return q, err
}

// Mod returns the floor remainder of two Int values. Its sign matches the
// divisor's, or it is zero.
func Mod(a, b Int) (Int, error) {
	_, r, err := DivMod(a, b)
	return r, err
}

// divModAbs performs long division on magnitudes. The caller must guarantee
// v is nonzero. Returns the truncating quotient and remainder.
func divModAbs(u, v []uint32) (q, r []uint32) {
	if cmpBlocks(u, v) < 0 {
		return nil, cloneBlocks(u)
	}

	// Align v to u's width: shifted starts as v with k zero blocks below it
	// and sheds one block per quotient position.
	k := len(u) - len(v)
	shifted := make([]uint32, k+len(v))
	copy(shifted[k:], v)

	rem := cloneBlocks(u)
	q = make([]uint32, k+1)
	for pos := k; pos >= 0; pos-- {
		d := quotientDigit(rem, shifted)
		if d != 0 {
			subInPlace(rem, mulAbsSmall(shifted, d))
			rem = trimBlocks(rem)
		}
		q[pos] = d
		shifted = shifted[1:]
		if pos == 0 {
			break
		}
	}
	return trimBlocks(q), rem
}

// quotientDigit finds the largest d in [0, Radix) with d*shifted <= rem by
// binary search. Pure: neither argument is mutated.
func quotientDigit(rem, shifted []uint32) uint32 {
	lo, hi := 0, Radix-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if cmpBlocks(mulAbsSmall(shifted, uint32(mid)), rem) <= 0 { //nolint:gosec // G115: mid is below the radix.
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return uint32(best) //nolint:gosec // G115: digit is below the radix.
}
