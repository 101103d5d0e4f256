package lexer

import (
	"abacus/internal/diag"
	"abacus/internal/source"
)

type Options struct {
	Reporter diag.Reporter // may be nil; errors are then dropped, lexing continues
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
