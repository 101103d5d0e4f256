// Package token defines lexical token kinds and trivia for abacus input.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Newlines are significant: they terminate statements and appear in the
//     token stream, unlike spaces and comments, which attach to the next
//     token as leading trivia.
//   - Builtin function names (abs, pow, min, ...) are plain identifiers.
//     They are recognized by the evaluator, not the lexer.
package token
