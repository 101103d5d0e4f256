package lexer

import (
	"abacus/internal/diag"
	"abacus/internal/token"
)

// scanNumber scans a decimal integer literal: [0-9][0-9_]*. Underscores are
// digit separators and stay in Token.Text; the evaluator strips them. A
// literal may be arbitrarily long, so there is no length cap here.
// A separator must sit between digits; a trailing or doubled '_' is reported
// but the token is still emitted so parsing can continue.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	prev := byte(0)
	bad := false
	for {
		b := lx.cursor.Peek()
		if isDec(b) {
			prev = b
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			if prev == '_' {
				bad = true
			}
			prev = b
			lx.cursor.Bump()
			continue
		}
		break
	}
	if prev == '_' {
		bad = true
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if bad {
		lx.report(diag.LexBadNumber, sp, "digit separator must sit between digits")
	}
	return token.Token{Kind: token.Number, Span: sp, Text: text}
}
