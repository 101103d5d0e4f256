package lexer

import (
	"abacus/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdent scans an identifier. The language has no keywords; builtin
// function names stay plain identifiers and are resolved at evaluation time.
// Token.Text is exactly the source slice.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
	}

	for {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) { // fast-path ASCII
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r2, sz2 := lx.peekRune()
			if sz2 != 0 && isIdentContinueRune(r2) {
				lx.bumpRune()
				continue
			}
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
