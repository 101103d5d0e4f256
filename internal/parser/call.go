package parser

import (
	"abacus/internal/ast"
	"abacus/internal/diag"
	"abacus/internal/token"
)

// parseCallExpr parses a function call: expr(args...). No trailing commas.
func (p *Parser) parseCallExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '('
	p.parens++
	defer func() { p.parens-- }()

	var args []ast.ExprID

	if !p.at(token.RParen) {
		for {
			if p.at(token.Comma) {
				p.err(diag.SynEmptyCall, "expected argument before ','")
				p.resyncUntil(token.RParen, token.Newline, token.Semicolon)
				if p.at(token.RParen) {
					p.advance()
				}
				return ast.NoExprID, false
			}

			arg, ok := p.parseExpr()
			if !ok {
				p.resyncUntil(token.RParen, token.Comma, token.Newline, token.Semicolon)
				if p.at(token.RParen) {
					p.advance()
				}
				return ast.NoExprID, false
			}
			args = append(args, arg)

			if !p.at(token.Comma) {
				break
			}
			commaTok := p.advance() // ','
			if p.at(token.RParen) {
				p.report(diag.SynEmptyCall, diag.SevError, commaTok.Span, "expected argument after ','")
				p.advance() // ')'
				return ast.NoExprID, false
			}
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		p.resyncUntil(token.Newline, token.Semicolon)
		return ast.NoExprID, false
	}

	targetSpan := p.arenas.Exprs.Get(target).Span
	finalSpan := targetSpan.Cover(closeTok.Span)

	return p.arenas.Exprs.NewCall(finalSpan, target, args), true
}
