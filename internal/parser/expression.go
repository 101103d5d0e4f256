package parser

import (
	"abacus/internal/ast"
	"abacus/internal/diag"
	"abacus/internal/source"
	"abacus/internal/token"
)

// parseExpr is the entry point for expression parsing.
// Returns the ExprID and a success flag.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0) // minimum precedence
}

// parseBinaryExpr is the Pratt loop for table-driven binary operators.
// minPrec is the minimum precedence for the current level.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.peek()

		prec, isRightAssoc := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec {
			break
		}

		opTok := p.advance()

		nextMinPrec := prec + 1
		if isRightAssoc {
			nextMinPrec = prec
		}

		// parsePrimaryExpr reports the missing operand; just unwind here.
		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			return ast.NoExprID, false
		}

		op := p.tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.arenas.Exprs.Get(left).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		finalSpan := leftSpan.Cover(rightSpan)

		left = p.arenas.Exprs.NewBinary(finalSpan, op, left, right)
	}

	return left, true
}

// parseUnaryExpr handles prefix + and -. The operand is the power level, so
// -2^2 parses as -(2^2).
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}

	var prefixes []prefixOp

	for {
		tok := p.peek()
		op, ok := p.getUnaryOperator(tok.Kind)
		if !ok {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	expr, ok := p.parsePowerExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// Apply prefixes right to left.
	for i := len(prefixes) - 1; i >= 0; i-- {
		exprSpan := p.arenas.Exprs.Get(expr).Span
		finalSpan := prefixes[i].span.Cover(exprSpan)
		expr = p.arenas.Exprs.NewUnary(finalSpan, prefixes[i].op, expr)
	}

	return expr, true
}

// parsePowerExpr handles '^', right-associative and binding tighter than the
// unary prefixes: 2^3^2 is 2^(3^2), and 2^-3 takes a signed exponent.
func (p *Parser) parsePowerExpr() (ast.ExprID, bool) {
	base, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	if !p.at(token.Caret) {
		return base, true
	}
	p.advance() // '^'

	exp, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	baseSpan := p.arenas.Exprs.Get(base).Span
	expSpan := p.arenas.Exprs.Get(exp).Span
	finalSpan := baseSpan.Cover(expSpan)

	return p.arenas.Exprs.NewBinary(finalSpan, ast.ExprBinaryPow, base, exp), true
}

// parsePostfixExpr handles postfix operators; the only one is the call.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for p.at(token.LParen) {
		newExpr, ok := p.parseCallExpr(expr)
		if !ok {
			return ast.NoExprID, false
		}
		expr = newExpr
	}

	return expr, true
}

// parsePrimaryExpr parses the atomic expressions.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch p.peek().Kind {
	case token.Ident:
		tok := p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, tok.Text), true

	case token.Number:
		tok := p.advance()
		return p.arenas.Exprs.NewNumber(tok.Span, tok.Text), true

	case token.LParen:
		return p.parseParenExpr()

	default:
		p.err(diag.SynExpectExpression, "expected expression, got "+tokenLabel(p.peek()))
		return ast.NoExprID, false
	}
}

// parseParenExpr parses a parenthesized group: (expr).
func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	openTok := p.advance() // '('
	p.parens++

	if p.at(token.RParen) {
		p.parens--
		closeTok := p.advance()
		p.report(diag.SynExpectExpression, diag.SevError,
			openTok.Span.Cover(closeTok.Span), "empty parentheses")
		return ast.NoExprID, false
	}

	inner, ok := p.parseExpr()
	if !ok {
		p.parens--
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after expression")
	p.parens--
	if !ok {
		return ast.NoExprID, false
	}

	finalSpan := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewGroup(finalSpan, inner), true
}
