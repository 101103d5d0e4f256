package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{
			name: "disjoint widens",
			a:    Span{File: 1, Start: 10, End: 12},
			b:    Span{File: 1, Start: 20, End: 25},
			want: Span{File: 1, Start: 10, End: 25},
		},
		{
			name: "contained keeps outer",
			a:    Span{File: 1, Start: 10, End: 30},
			b:    Span{File: 1, Start: 15, End: 20},
			want: Span{File: 1, Start: 10, End: 30},
		},
		{
			name: "different files unchanged",
			a:    Span{File: 1, Start: 10, End: 12},
			b:    Span{File: 2, Start: 0, End: 100},
			want: Span{File: 1, Start: 10, End: 12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Fatalf("Cover = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 4}
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("empty span misreported: %+v", s)
	}
	s.End = 9
	if s.Empty() || s.Len() != 5 {
		t.Fatalf("span len = %d", s.Len())
	}
}
