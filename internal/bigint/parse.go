package bigint

import "strings"

// Parse converts lenient decimal text to an Int. It never fails: leading
// whitespace is skipped, an optional +/- sign is consumed, then the leading
// run of ASCII digits; everything after the first non-digit is ignored.
// Text with no digits at all parses as zero.
func Parse(s string) Int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" {
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			neg = true
			s = s[1:]
		}
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits := blocksFromDecimal(s[:end])
	if len(digits) == 0 {
		return Int{}
	}
	return Int{neg: neg, digits: digits}
}

// SetString replaces the receiver's value with the result of parsing s,
// using Parse's lenient rules.
func (x *Int) SetString(s string) {
	*x = Parse(s)
}

// blocksFromDecimal groups an ASCII digit string into base-10000 blocks of
// four decimal digits each, from the least significant end.
func blocksFromDecimal(s string) []uint32 {
	if s == "" {
		return nil
	}
	out := make([]uint32, 0, (len(s)+blockDigits-1)/blockDigits)
	for end := len(s); end > 0; end -= blockDigits {
		start := end - blockDigits
		if start < 0 {
			start = 0
		}
		var block uint32
		for k := start; k < end; k++ {
			block = block*10 + uint32(s[k]-'0')
		}
		out = append(out, block)
	}
	return trimBlocks(out)
}
