package parser

import (
	"abacus/internal/ast"
	"abacus/internal/token"
)

// Binary operator precedence. Higher binds tighter. Unary +/- binds tighter
// than all of these, and '^' tighter still (right-associative, so -2^2 is
// -(2^2)); both live outside the table, in parseUnaryExpr and parsePowerExpr.
const (
	precComparison     = 1 // == != < <= > >=
	precAdditive       = 2 // + -
	precMultiplicative = 3 // * / %
)

// getBinaryOperatorPrec returns the precedence and associativity of a binary
// operator token. The second result is true for right-associative operators.
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	default:
		return -1, false // not a binary operator
	}
}

// tokenKindToBinaryOp maps an operator token to its AST operator.
func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.Plus:
		return ast.ExprBinaryAdd
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	case token.Percent:
		return ast.ExprBinaryMod
	case token.Caret:
		return ast.ExprBinaryPow
	case token.EqEq:
		return ast.ExprBinaryEq
	case token.BangEq:
		return ast.ExprBinaryNotEq
	case token.Lt:
		return ast.ExprBinaryLess
	case token.LtEq:
		return ast.ExprBinaryLessEq
	case token.Gt:
		return ast.ExprBinaryGreater
	case token.GtEq:
		return ast.ExprBinaryGreaterEq
	default:
		// Unreachable while the precedence table and this switch agree.
		return ast.ExprBinaryAdd
	}
}

// getUnaryOperator returns the unary operator for a token, if any.
func (p *Parser) getUnaryOperator(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.Plus:
		return ast.ExprUnaryPlus, true
	case token.Minus:
		return ast.ExprUnaryMinus, true
	default:
		return ast.ExprUnaryPlus, false
	}
}
