package diagfmt_test

import (
	"strings"
	"testing"

	"abacus/internal/diag"
	"abacus/internal/diagfmt"
	"abacus/internal/source"
)

func singleDiagBag(t *testing.T, d diag.Diagnostic) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(10)
	if !bag.Add(d) {
		t.Fatalf("bag rejected diagnostic")
	}
	return bag
}

func TestPrettyPointsAtSpan(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.abc", []byte("x = 1 / 0\n"))
	sp := source.Span{File: fileID, Start: 4, End: 9}
	bag := singleDiagBag(t, diag.NewError(diag.EvalDivisionByZero, sp, "division by zero"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "test.abc:1:5: ERROR EVL3001: division by zero") {
		t.Errorf("missing header line:\n%s", out)
	}
	if !strings.Contains(out, "    1 | x = 1 / 0") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "      |     ^~~~~") {
		t.Errorf("missing caret marker:\n%s", out)
	}
}

func TestPrettyZeroWidthSpanGetsSingleCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.abc", []byte("1 +\n"))
	sp := source.Span{File: fileID, Start: 3, End: 3}
	bag := singleDiagBag(t, diag.NewError(diag.SynExpectExpression, sp, "expected expression"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "      |    ^") {
		t.Errorf("zero-width span should render one caret:\n%s", out)
	}
	if strings.Contains(out, "^~") {
		t.Errorf("zero-width span should not stretch:\n%s", out)
	}
}

func TestPrettyShowsNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.abc", []byte("(1 + 2\n"))
	open := source.Span{File: fileID, Start: 0, End: 1}
	end := source.Span{File: fileID, Start: 6, End: 6}
	d := diag.NewError(diag.SynUnclosedParen, end, "expected ')'").
		WithNote(open, "opened here")
	bag := singleDiagBag(t, d)

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	out := sb.String()
	if !strings.Contains(out, "note: test.abc:1:1: opened here") {
		t.Errorf("missing note line:\n%s", out)
	}

	sb.Reset()
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{ShowNotes: false})
	if strings.Contains(sb.String(), "note:") {
		t.Errorf("notes should be suppressed:\n%s", sb.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.abc", []byte("a = 1\nb = 2\nc = a / 0\n"))
	// span of "a / 0" on line 3
	sp := source.Span{File: fileID, Start: 16, End: 21}
	bag := singleDiagBag(t, diag.NewError(diag.EvalDivisionByZero, sp, "division by zero"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{Context: 1})
	out := sb.String()

	if !strings.Contains(out, "    2 | b = 2") {
		t.Errorf("missing context line:\n%s", out)
	}
	if strings.Contains(out, "    1 | a = 1") {
		t.Errorf("context of 1 should not reach line 1:\n%s", out)
	}
	if !strings.Contains(out, "    3 | c = a / 0") {
		t.Errorf("missing primary line:\n%s", out)
	}
}

func TestPrettyMultipleDiagnosticsKeepBagOrder(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.abc", []byte("zz\nyy\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.EvalUndefinedVariable, source.Span{File: fileID, Start: 3, End: 5}, "undefined variable \"yy\""))
	bag.Add(diag.NewError(diag.EvalUndefinedVariable, source.Span{File: fileID, Start: 0, End: 2}, "undefined variable \"zz\""))
	bag.Sort()

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()
	first := strings.Index(out, "1:1:")
	second := strings.Index(out, "2:1:")
	if first < 0 || second < 0 || first > second {
		t.Errorf("sorted bag should render in span order:\n%s", out)
	}
}
