package eval

import (
	"errors"
	"strings"

	"abacus/internal/ast"
	"abacus/internal/bigint"
	"abacus/internal/diag"
	"abacus/internal/source"
)

func (ev *evaluator) evalExpr(id ast.ExprID) (bigint.Int, bool) {
	expr := ev.builder.Exprs.Get(id)
	if expr == nil {
		return bigint.Int{}, false
	}
	switch expr.Kind {
	case ast.ExprNumber:
		data, ok := ev.builder.Exprs.Number(id)
		if !ok {
			return bigint.Int{}, false
		}
		return ev.evalNumber(data.Text), true
	case ast.ExprIdent:
		data, ok := ev.builder.Exprs.Ident(id)
		if !ok {
			return bigint.Int{}, false
		}
		value, found := ev.env.Get(data.Name)
		if !found {
			ev.report(diag.EvalUndefinedVariable, expr.Span, "undefined variable %q", data.Name)
			return bigint.Int{}, false
		}
		return value, true
	case ast.ExprGroup:
		data, ok := ev.builder.Exprs.Group(id)
		if !ok {
			return bigint.Int{}, false
		}
		return ev.evalExpr(data.Inner)
	case ast.ExprUnary:
		data, ok := ev.builder.Exprs.Unary(id)
		if !ok {
			return bigint.Int{}, false
		}
		return ev.evalUnary(data)
	case ast.ExprBinary:
		data, ok := ev.builder.Exprs.Binary(id)
		if !ok {
			return bigint.Int{}, false
		}
		return ev.evalBinary(id, data)
	case ast.ExprCall:
		data, ok := ev.builder.Exprs.Call(id)
		if !ok {
			return bigint.Int{}, false
		}
		return ev.evalCall(id, data)
	default:
		return bigint.Int{}, false
	}
}

// evalNumber converts literal text to a value. The lexer keeps digit
// separators in the token text; they are stripped here.
func (ev *evaluator) evalNumber(text string) bigint.Int {
	if strings.ContainsRune(text, '_') {
		text = strings.ReplaceAll(text, "_", "")
	}
	return bigint.Parse(text)
}

func (ev *evaluator) evalUnary(data *ast.ExprUnaryData) (bigint.Int, bool) {
	operand, ok := ev.evalExpr(data.Operand)
	if !ok {
		return bigint.Int{}, false
	}
	switch data.Op {
	case ast.ExprUnaryMinus:
		return operand.Negated(), true
	case ast.ExprUnaryPlus:
		return operand, true
	default:
		return bigint.Int{}, false
	}
}

func (ev *evaluator) evalBinary(id ast.ExprID, data *ast.ExprBinaryData) (bigint.Int, bool) {
	left, ok := ev.evalExpr(data.Left)
	if !ok {
		return bigint.Int{}, false
	}
	right, ok := ev.evalExpr(data.Right)
	if !ok {
		return bigint.Int{}, false
	}
	if data.Op.IsComparison() {
		return ev.evalComparison(data.Op, left, right), true
	}
	span := ev.builder.Exprs.Span(id)
	switch data.Op {
	case ast.ExprBinaryAdd:
		return bigint.Add(left, right), true
	case ast.ExprBinarySub:
		return bigint.Sub(left, right), true
	case ast.ExprBinaryMul:
		return bigint.Mul(left, right), true
	case ast.ExprBinaryDiv:
		q, err := bigint.Div(left, right)
		if err != nil {
			ev.report(diag.EvalDivisionByZero, span, "division by zero")
			return bigint.Int{}, false
		}
		return q, true
	case ast.ExprBinaryMod:
		r, err := bigint.Mod(left, right)
		if err != nil {
			ev.report(diag.EvalDivisionByZero, span, "division by zero")
			return bigint.Int{}, false
		}
		return r, true
	case ast.ExprBinaryPow:
		return ev.evalPow(left, right, span)
	default:
		return bigint.Int{}, false
	}
}

func (ev *evaluator) evalComparison(op ast.ExprBinaryOp, left, right bigint.Int) bigint.Int {
	c := left.Cmp(right)
	switch op {
	case ast.ExprBinaryEq:
		return boolInt(c == 0)
	case ast.ExprBinaryNotEq:
		return boolInt(c != 0)
	case ast.ExprBinaryLess:
		return boolInt(c < 0)
	case ast.ExprBinaryLessEq:
		return boolInt(c <= 0)
	case ast.ExprBinaryGreater:
		return boolInt(c > 0)
	case ast.ExprBinaryGreaterEq:
		return boolInt(c >= 0)
	default:
		return bigint.Zero()
	}
}

func (ev *evaluator) evalPow(base, exp bigint.Int, span source.Span) (bigint.Int, bool) {
	result, err := bigint.Pow(base, exp)
	switch {
	case err == nil:
		return result, true
	case errors.Is(err, bigint.ErrNegativeExponent):
		ev.report(diag.EvalBadExponent, span, "exponent must not be negative")
	case errors.Is(err, bigint.ErrExponentRange):
		ev.report(diag.EvalBadExponent, span, "exponent too large")
	default:
		ev.report(diag.EvalBadExponent, span, "cannot raise to this power: %v", err)
	}
	return bigint.Int{}, false
}

func boolInt(v bool) bigint.Int {
	if v {
		return bigint.FromInt64(1)
	}
	return bigint.Zero()
}
