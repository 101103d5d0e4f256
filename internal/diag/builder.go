package diag

import "abacus/internal/source"

// New builds a diagnostic with the given severity.
func New(code Code, sev Severity, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	}
}

// NewError builds an error-severity diagnostic.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(code, SevError, primary, msg)
}

// WithNote returns a copy of the diagnostic with an extra note attached.
func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: span, Msg: msg})
	return d
}
