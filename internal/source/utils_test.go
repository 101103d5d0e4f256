package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanged bool
	}{
		{"no carriage returns", "a\nb\n", "a\nb\n", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want || changed != tt.wantChanged {
				t.Fatalf("normalizeCRLF(%q) = (%q, %v), want (%q, %v)", tt.in, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, '4', '2'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "42" {
		t.Fatalf("removeBOM = (%q, %v)", got, had)
	}
	plain := []byte("42")
	got, had = removeBOM(plain)
	if had || string(got) != "42" {
		t.Fatalf("removeBOM on plain input = (%q, %v)", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nxyz")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline itself
		{3, LineCol{Line: 2, Col: 1}},
		{5, LineCol{Line: 2, Col: 3}},
		{6, LineCol{Line: 3, Col: 1}}, // empty line
		{7, LineCol{Line: 4, Col: 1}},
		{9, LineCol{Line: 4, Col: 3}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Fatalf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	idx := buildLineIndex([]byte("no newline here"))
	if got := toLineCol(idx, 5); got != (LineCol{Line: 1, Col: 6}) {
		t.Fatalf("toLineCol(5) = %+v", got)
	}
}
