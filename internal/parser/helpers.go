package parser

import (
	"abacus/internal/diag"
	"abacus/internal/source"
	"abacus/internal/token"
)

// peek returns the next significant token. Inside parentheses newlines stop
// being statement terminators and are skipped here.
func (p *Parser) peek() token.Token {
	for {
		t := p.lx.Peek()
		if t.Kind == token.Newline && p.parens > 0 {
			p.lx.Next()
			continue
		}
		return t
	}
}

// advance consumes the next significant token and updates lastSpan.
func (p *Parser) advance() token.Token {
	p.peek() // drain soft newlines first
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan returns the best span for a diagnostic. At EOF or on a
// zero-length Invalid token it uses the position right after lastSpan, so
// the caret points where input ended rather than at offset zero.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Start == peek.Span.End {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect consumes the given token kind or reports and returns (invalid, false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

// err reports an error at the current diagnostic span.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter != nil {
		if sev == diag.SevError {
			p.opts.CurrentErrors++
		}
		if !p.opts.Enough() {
			p.opts.Reporter.Report(code, sev, sp, msg, nil)
			return true
		}
		return false // error budget spent
	}
	return false // no reporter, nothing recorded
}

// tokenLabel renders a token for error messages.
func tokenLabel(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of input"
	case token.Newline:
		return "newline"
	default:
		return "\"" + t.Text + "\""
	}
}

// resyncUntil skips tokens until one of the stop kinds or EOF.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for {
		k := p.lx.Peek().Kind
		if k == token.EOF {
			return
		}
		for _, s := range stop {
			if k == s {
				return
			}
		}
		p.lx.Next()
	}
}
