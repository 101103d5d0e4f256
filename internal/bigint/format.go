package bigint

import (
	"fmt"
	"strings"
)

// String renders the canonical decimal representation: "0" for zero, a
// leading '-' for negative values, the most significant block unpadded and
// every following block zero-padded to four digits.
func (x Int) String() string {
	if len(x.digits) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(x.digits)*blockDigits + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	last := x.digits[len(x.digits)-1]
	sb.WriteString(fmt.Sprintf("%d", last))
	for i := len(x.digits) - 2; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%04d", x.digits[i]))
		if i == 0 {
			break
		}
	}
	return sb.String()
}
