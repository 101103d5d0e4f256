package bigint

import (
	"math"
	"testing"
)

// checkCanonical fails the test when x violates canonical form: trailing
// zero blocks, a negative zero, or a block outside [0, Radix).
func checkCanonical(t *testing.T, x Int) {
	t.Helper()
	if len(x.digits) > 0 && x.digits[len(x.digits)-1] == 0 {
		t.Fatalf("non-canonical digits %v for %q", x.digits, x.String())
	}
	if len(x.digits) == 0 && x.neg {
		t.Fatalf("negative zero")
	}
	for _, d := range x.digits {
		if d >= Radix {
			t.Fatalf("block %d out of range in %q", d, x.String())
		}
	}
}

func TestFromInt64(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{9999, "9999"},
		{10000, "10000"},
		{-10001, "-10001"},
		{123456789, "123456789"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		got := FromInt64(tt.in)
		checkCanonical(t, got)
		if got.String() != tt.want {
			t.Fatalf("FromInt64(%d) = %q, want %q", tt.in, got.String(), tt.want)
		}
	}
}

func TestInt64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 9999, -10000, math.MaxInt64, math.MinInt64, 1 << 62}
	for _, v := range values {
		got, ok := FromInt64(v).Int64()
		if !ok || got != v {
			t.Fatalf("Int64 round trip of %d = (%d, %v)", v, got, ok)
		}
	}
}

func TestInt64Overflow(t *testing.T) {
	tests := []string{
		"9223372036854775808",  // MaxInt64+1
		"-9223372036854775809", // MinInt64-1
		"123456789012345678901234567890",
	}
	for _, s := range tests {
		if v, ok := Parse(s).Int64(); ok {
			t.Fatalf("Int64(%q) = %d, want overflow", s, v)
		}
	}
	if v, ok := Parse("-9223372036854775808").Int64(); !ok || v != math.MinInt64 {
		t.Fatalf("Int64(MinInt64 text) = (%d, %v)", v, ok)
	}
}

func TestSignNegatedAbs(t *testing.T) {
	tests := []struct {
		in      string
		sign    int
		negated string
		abs     string
	}{
		{"0", 0, "0", "0"},
		{"5", 1, "-5", "5"},
		{"-5", -1, "5", "5"},
		{"-123456789123456789", -1, "123456789123456789", "123456789123456789"},
	}
	for _, tt := range tests {
		x := Parse(tt.in)
		if x.Sign() != tt.sign {
			t.Fatalf("Sign(%q) = %d, want %d", tt.in, x.Sign(), tt.sign)
		}
		if got := x.Negated().String(); got != tt.negated {
			t.Fatalf("Negated(%q) = %q, want %q", tt.in, got, tt.negated)
		}
		if got := x.Abs().String(); got != tt.abs {
			t.Fatalf("Abs(%q) = %q, want %q", tt.in, got, tt.abs)
		}
		checkCanonical(t, x.Negated())
		checkCanonical(t, x.Abs())
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"0", "-0", 0},
		{"1", "0", 1},
		{"-1", "0", -1},
		{"-1", "1", -1},
		{"42", "42", 0},
		{"-42", "-42", 0},
		{"-3", "-2", -1},
		{"-2", "-3", 1},
		{"10000", "9999", 1},
		{"-10000", "-9999", -1},
		{"99999999999999999999", "99999999999999999998", 1},
	}
	for _, tt := range tests {
		if got := Parse(tt.a).Cmp(Parse(tt.b)); got != tt.want {
			t.Fatalf("Cmp(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCmpTrichotomy(t *testing.T) {
	values := []string{"0", "1", "-1", "9999", "-9999", "10000", "123456789012345678901234567890", "-123456789012345678901234567890"}
	for _, as := range values {
		for _, bs := range values {
			a, b := Parse(as), Parse(bs)
			cmp := a.Cmp(b)
			lt := cmp < 0
			eq := cmp == 0
			gt := cmp > 0
			count := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					count++
				}
			}
			if count != 1 {
				t.Fatalf("trichotomy violated for (%s, %s): cmp=%d", as, bs, cmp)
			}
			if b.Cmp(a) != -cmp {
				t.Fatalf("Cmp not antisymmetric for (%s, %s)", as, bs)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"small", "2", "3", "5"},
		{"carry across blocks", "9999", "1", "10000"},
		{"carry chain", "99999999", "1", "100000000"},
		{"big plus one", "123456789012345678901234567890", "1", "123456789012345678901234567891"},
		{"mixed signs larger positive", "10", "-3", "7"},
		{"mixed signs larger negative", "3", "-10", "-7"},
		{"both negative", "-4", "-6", "-10"},
		{"cancel to zero", "7", "-7", "0"},
		{"zero left", "0", "42", "42"},
		{"zero right", "-42", "0", "-42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Add(Parse(tt.a), Parse(tt.b))
			checkCanonical(t, got)
			if got.String() != tt.want {
				t.Fatalf("Add(%s, %s) = %q, want %q", tt.a, tt.b, got.String(), tt.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"borrow across blocks", "10000", "1", "9999"},
		{"equal values", "1000", "1000", "0"},
		{"result flips negative", "3", "10", "-7"},
		{"subtract negative", "3", "-10", "13"},
		{"big cancellation", "123456789012345678901234567890", "123456789012345678901234567889", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sub(Parse(tt.a), Parse(tt.b))
			checkCanonical(t, got)
			if got.String() != tt.want {
				t.Fatalf("Sub(%s, %s) = %q, want %q", tt.a, tt.b, got.String(), tt.want)
			}
		})
	}
}

func TestSubEqualClearsSign(t *testing.T) {
	got := Sub(Parse("1000"), Parse("1000"))
	if !got.IsZero() || got.neg {
		t.Fatalf("Sub(1000, 1000) = %+v, want canonical zero", got)
	}
	if got.Sign() != 0 {
		t.Fatalf("zero sign = %d", got.Sign())
	}
}

func propertyOperands() []Int {
	texts := []string{
		"0", "1", "-1", "2", "-2", "9999", "10000", "-10000",
		"99999999", "-99999999", "123456789012345678901234567890",
		"-123456789012345678901234567890", "500000000000", "-7",
	}
	out := make([]Int, len(texts))
	for i, s := range texts {
		out[i] = Parse(s)
	}
	return out
}

func TestAddProperties(t *testing.T) {
	ops := propertyOperands()
	for _, a := range ops {
		for _, b := range ops {
			ab := Add(a, b)
			ba := Add(b, a)
			if ab.Cmp(ba) != 0 {
				t.Fatalf("a+b != b+a for %s, %s", a, b)
			}
			checkCanonical(t, ab)
			for _, c := range ops {
				left := Add(Add(a, b), c)
				right := Add(a, Add(b, c))
				if left.Cmp(right) != 0 {
					t.Fatalf("associativity violated for %s, %s, %s", a, b, c)
				}
			}
		}
		inv := Add(a, a.Negated())
		if !inv.IsZero() || inv.neg {
			t.Fatalf("a + (-a) != 0 for %s", a)
		}
	}
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	a := Parse("99999999")
	b := Parse("1")
	before := a.String()
	_ = Add(a, b)
	_ = Sub(a, b)
	_ = Mul(a, a)
	if a.String() != before {
		t.Fatalf("operand mutated: %q != %q", a.String(), before)
	}
}
