package diag

import "abacus/internal/source"

// Reporter receives diagnostics from lexing, parsing, and evaluation.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// ReportBuilder accumulates the parts of a diagnostic before emitting it to a
// Reporter. The zero value is not usable; start with NewReportBuilder.
type ReportBuilder struct {
	reporter Reporter
	code     Code
	sev      Severity
	primary  source.Span
	msg      string
	notes    []Note
}

func NewReportBuilder(r Reporter, code Code, sev Severity, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		code:     code,
		sev:      sev,
		primary:  primary,
		msg:      msg,
	}
}

// ReportError starts an error-severity report.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, code, SevError, primary, msg)
}

// ReportWarning starts a warning-severity report.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, code, SevWarning, primary, msg)
}

func (rb *ReportBuilder) WithNote(span source.Span, msg string) *ReportBuilder {
	rb.notes = append(rb.notes, Note{Span: span, Msg: msg})
	return rb
}

// Emit sends the accumulated diagnostic to the reporter.
func (rb *ReportBuilder) Emit() {
	rb.reporter.Report(rb.code, rb.sev, rb.primary, rb.msg, rb.notes)
}

// Diagnostic returns the diagnostic as built so far without emitting it.
func (rb *ReportBuilder) Diagnostic() Diagnostic {
	return Diagnostic{
		Severity: rb.sev,
		Code:     rb.code,
		Message:  rb.msg,
		Primary:  rb.primary,
		Notes:    rb.notes,
	}
}

// BagReporter is a Reporter that stores diagnostics in a Bag.
type BagReporter struct {
	Bag *Bag
}

func (br *BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	br.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}
