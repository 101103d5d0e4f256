package bigint

import "errors"

var (
	// ErrNegativeExponent indicates a power with an exponent below zero.
	ErrNegativeExponent = errors.New("negative exponent")
	// ErrExponentRange indicates an exponent too large to evaluate.
	ErrExponentRange = errors.New("exponent out of range")
)

// Pow raises b to the power e by binary exponentiation. The exponent must
// be non-negative and fit in an int64. Pow(0, 0) is 1.
func Pow(b, e Int) (Int, error) {
	if e.neg {
		return Int{}, ErrNegativeExponent
	}
	n, ok := e.Int64()
	if !ok {
		return Int{}, ErrExponentRange
	}
	result := FromInt64(1)
	base := b
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base)
		}
		n >>= 1
		if n == 0 {
			break
		}
		base = Mul(base, base)
	}
	return result, nil
}
