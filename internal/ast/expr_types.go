package ast

import (
	"abacus/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprNumber represents an integer literal expression.
	ExprNumber
	// ExprCall represents a function call expression.
	ExprCall
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprUnary represents a unary expression.
	ExprUnary
	// ExprGroup represents a parenthesized expression.
	ExprGroup
)

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the floor division operator (/).
	ExprBinaryDiv
	// ExprBinaryMod represents the floor modulo operator (%).
	ExprBinaryMod
	// ExprBinaryPow represents the exponentiation operator (^).
	ExprBinaryPow

	// ExprBinaryEq represents the equality operator (==).
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

// String returns the symbol representation of a binary operator.
func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryPow:
		return "^"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	default:
		return "?"
	}
}

// IsComparison reports whether the operator yields a 0/1 truth value.
func (op ExprBinaryOp) IsComparison() bool {
	return op >= ExprBinaryEq && op <= ExprBinaryGreaterEq
}

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	// ExprUnaryPlus represents the unary plus operator (+).
	ExprUnaryPlus ExprUnaryOp = iota
	// ExprUnaryMinus represents the unary minus operator (-).
	ExprUnaryMinus
)

// String returns the symbol representation of a unary operator.
func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryPlus:
		return "+"
	case ExprUnaryMinus:
		return "-"
	default:
		return "?"
	}
}

// ExprIdentData holds identifier expression details.
type ExprIdentData struct {
	Name string
}

// ExprNumberData holds integer literal details. Text is the raw token text
// with digit separators still in place.
type ExprNumberData struct {
	Text string
}

// ExprBinaryData holds binary operation expression details.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprUnaryData holds unary operation expression details.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprCallData holds function call expression details.
type ExprCallData struct {
	Target ExprID
	Args   []ExprID
}

// ExprGroupData holds parenthesized expression details.
type ExprGroupData struct {
	Inner ExprID
}
