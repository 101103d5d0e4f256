package diag

import (
	"testing"

	"abacus/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(SynUnexpectedToken, span(1, 0, 1), "first")) {
		t.Fatalf("Add() = false, want true")
	}
	if !bag.Add(NewError(SynUnexpectedToken, span(1, 2, 3), "second")) {
		t.Fatalf("Add() = false, want true")
	}
	if bag.Add(NewError(SynUnexpectedToken, span(1, 4, 5), "third")) {
		t.Fatalf("Add() over cap = true, want false")
	}
	if got := bag.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("empty bag reports errors or warnings")
	}

	bag.Add(New(LexInfo, SevInfo, span(1, 0, 1), "fyi"))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("info-only bag reports errors or warnings")
	}

	bag.Add(New(SynTrailingInput, SevWarning, span(1, 1, 2), "warn"))
	if bag.HasErrors() {
		t.Fatalf("warning-only bag reports errors")
	}
	if !bag.HasWarnings() {
		t.Fatalf("HasWarnings() = false after warning added")
	}

	bag.Add(NewError(EvalDivisionByZero, span(1, 2, 3), "boom"))
	if !bag.HasErrors() {
		t.Fatalf("HasErrors() = false after error added")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(EvalDivisionByZero, span(2, 5, 6), "late file"))
	bag.Add(New(SynTrailingInput, SevWarning, span(1, 4, 5), "warning at 4"))
	bag.Add(NewError(SynUnexpectedToken, span(1, 4, 5), "error at 4"))
	bag.Add(NewError(LexUnknownChar, span(1, 0, 1), "error at 0"))

	bag.Sort()

	items := bag.Items()
	wantMsgs := []string{"error at 0", "error at 4", "warning at 4", "late file"}
	for i, want := range wantMsgs {
		if items[i].Message != want {
			t.Fatalf("items[%d].Message = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SynUnexpectedToken, span(1, 0, 1), "dup"))
	bag.Add(NewError(SynUnexpectedToken, span(1, 0, 1), "dup"))
	bag.Add(NewError(SynUnexpectedToken, span(1, 2, 3), "other span"))

	bag.Dedup()

	if got := bag.Len(); got != 2 {
		t.Fatalf("Len() after Dedup = %d, want 2", got)
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynUnexpectedToken, span(1, 0, 1), "a"))

	b := NewBag(2)
	b.Add(NewError(LexUnknownChar, span(1, 1, 2), "b1"))
	b.Add(NewError(LexUnknownChar, span(1, 2, 3), "b2"))

	a.Merge(b)

	if got := a.Len(); got != 3 {
		t.Fatalf("Len() after Merge = %d, want 3", got)
	}
	if got := int(a.Cap()); got < 3 {
		t.Fatalf("Cap() after Merge = %d, want >= 3", got)
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(4)
	rep := &BagReporter{Bag: bag}

	ReportError(rep, EvalUndefinedVariable, span(1, 3, 7), "undefined variable").
		WithNote(span(1, 0, 2), "assigned names live for the whole session").
		Emit()

	if got := bag.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	d := bag.Items()[0]
	if d.Code != EvalUndefinedVariable {
		t.Fatalf("Code = %v, want %v", d.Code, EvalUndefinedVariable)
	}
	if len(d.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1", len(d.Notes))
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{EvalDivisionByZero, "EVL3001"},
		{IOLoadFileError, "IO4000"},
		{CfgInvalidManifest, "CFG5000"},
		{ObsTimings, "OBS6001"},
	}

	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Fatalf("ID(%d) = %q, want %q", uint16(tt.code), got, tt.want)
		}
	}
}
