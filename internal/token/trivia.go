package token

import "abacus/internal/source"

// TriviaKind classifies non-semantic input attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaLineComment
)

var triviaNames = [...]string{
	TriviaSpace:       "Space",
	TriviaLineComment: "LineComment",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(?)"
}

// Trivia is whitespace or a comment preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
