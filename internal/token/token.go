package token

import (
	"abacus/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Caret, Assign,
		EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		LParen, RParen, Comma, Semicolon:
		return true
	default:
		return false
	}
}

// IsTerminator reports whether the token ends a statement.
func (t Token) IsTerminator() bool {
	switch t.Kind {
	case Newline, Semicolon, EOF:
		return true
	default:
		return false
	}
}
