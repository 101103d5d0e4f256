package parser

import (
	"abacus/internal/ast"
	"abacus/internal/diag"
	"abacus/internal/token"
)

// parseStmt parses one statement: either an assignment (name = expr) or a
// bare expression. The lexer looks ahead one token, so assignment is
// detected after the fact: parse an expression first, and if '=' follows,
// the expression must have been a plain identifier.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	if !p.at(token.Assign) {
		span := p.arenas.Exprs.Get(expr).Span
		return p.arenas.Stmts.NewExpr(span, expr), true
	}

	eqTok := p.advance() // '='

	ident, isIdent := p.arenas.Exprs.Ident(expr)
	if !isIdent {
		p.report(diag.SynBadAssignTarget, diag.SevError, eqTok.Span,
			"assignment target must be an identifier")
		return ast.NoStmtID, false
	}
	nameSpan := p.arenas.Exprs.Get(expr).Span

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	valueSpan := p.arenas.Exprs.Get(value).Span
	stmtSpan := nameSpan.Cover(valueSpan)
	return p.arenas.Stmts.NewAssign(stmtSpan, ident.Name, nameSpan, eqTok.Span, value), true
}
