package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"small", "12", "12", "144"},
		{"block boundary", "9999", "9999", "99980001"},
		{"twelve nines squared", "999999999999", "999999999999", "999999999998000000000001"},
		{"zero left", "0", "123456789", "0"},
		{"zero right", "123456789", "0", "0"},
		{"sign mixed", "-25", "4", "-100"},
		{"sign both negative", "-25", "-4", "100"},
		{"one", "1", "123456789012345678901234567890", "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mul(Parse(tt.a), Parse(tt.b))
			checkCanonical(t, got)
			if got.String() != tt.want {
				t.Fatalf("Mul(%s, %s) = %q, want %q", tt.a, tt.b, got.String(), tt.want)
			}
		})
	}
}

func TestMulCommutative(t *testing.T) {
	ops := propertyOperands()
	for _, a := range ops {
		for _, b := range ops {
			ab := Mul(a, b)
			ba := Mul(b, a)
			if ab.Cmp(ba) != 0 {
				t.Fatalf("a*b != b*a for %s, %s", a, b)
			}
			checkCanonical(t, ab)
		}
	}
}

func TestMulZeroClearsSign(t *testing.T) {
	got := Mul(Parse("-5"), Parse("0"))
	if !got.IsZero() || got.neg {
		t.Fatalf("Mul(-5, 0) = %+v, want canonical zero", got)
	}
}

func TestMulSquaringAliased(t *testing.T) {
	x := Parse("123456789")
	x = Mul(x, x)
	if x.String() != "15241578750190521" {
		t.Fatalf("squaring = %q", x.String())
	}
	x = Mul(x, x)
	checkCanonical(t, x)
	if x.String() != "232305722798259244150093798251441" {
		t.Fatalf("double squaring = %q", x.String())
	}
}

func TestMulAbsSmall(t *testing.T) {
	tests := []struct {
		x    string
		m    uint32
		want string
	}{
		{"0", 5, "0"},
		{"5", 0, "0"},
		{"5", 1, "5"},
		{"9999", 9999, "99980001"},
		{"123456789", 9999, "1234444433211"},
	}
	for _, tt := range tests {
		got := Int{digits: mulAbsSmall(Parse(tt.x).digits, tt.m)}
		checkCanonical(t, got)
		if got.String() != tt.want {
			t.Fatalf("mulAbsSmall(%s, %d) = %q, want %q", tt.x, tt.m, got.String(), tt.want)
		}
	}
}

// randDecimal builds a signed decimal string with up to maxDigits digits.
func randDecimal(r *rand.Rand, maxDigits int) string {
	n := 1 + r.Intn(maxDigits)
	buf := make([]byte, 0, n+1)
	if r.Intn(2) == 1 {
		buf = append(buf, '-')
	}
	buf = append(buf, byte('1'+r.Intn(9)))
	for range n - 1 {
		buf = append(buf, byte('0'+r.Intn(10)))
	}
	return string(buf)
}

func TestMulMatchesMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 200 {
		as := randDecimal(r, 40)
		bs := randDecimal(r, 40)
		got := Mul(Parse(as), Parse(bs))
		checkCanonical(t, got)

		ba, _ := new(big.Int).SetString(as, 10)
		bb, _ := new(big.Int).SetString(bs, 10)
		want := new(big.Int).Mul(ba, bb).String()
		if got.String() != want {
			t.Fatalf("Mul(%s, %s) = %s, want %s", as, bs, got.String(), want)
		}
	}
}

func TestAddSubMatchMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 200 {
		as := randDecimal(r, 40)
		bs := randDecimal(r, 40)
		ba, _ := new(big.Int).SetString(as, 10)
		bb, _ := new(big.Int).SetString(bs, 10)

		if got, want := Add(Parse(as), Parse(bs)).String(), new(big.Int).Add(ba, bb).String(); got != want {
			t.Fatalf("Add(%s, %s) = %s, want %s", as, bs, got, want)
		}
		if got, want := Sub(Parse(as), Parse(bs)).String(), new(big.Int).Sub(ba, bb).String(); got != want {
			t.Fatalf("Sub(%s, %s) = %s, want %s", as, bs, got, want)
		}
	}
}
