package parser

import (
	"slices"

	"abacus/internal/ast"
	"abacus/internal/diag"
	"abacus/internal/lexer"
	"abacus/internal/source"
	"abacus/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx       *lexer.Lexer    // token stream (Peek/Next)
	arenas   *ast.Builder    // arena node builder
	file     ast.FileID      // current FileID (in the AST)
	fs       *source.FileSet // spans and paths, when needed
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
	parens   int         // '(' nesting depth; newlines are soft inside parens
}

// ParseFile is the entry point for parsing one file.
// It requires an already constructed lexer over the source.File.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseStmts()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseStmts is the top-level loop: statements separated by newlines or
// semicolons, until EOF.
func (p *Parser) parseStmts() {
	startSpan := p.peek().Span
	for !p.at(token.EOF) {
		if p.atOr(token.Newline, token.Semicolon) {
			p.advance()
			continue
		}

		stmtID, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			continue
		}
		p.arenas.PushStmt(p.file, stmtID)

		if !p.atOr(token.Newline, token.Semicolon, token.EOF) {
			p.err(diag.SynTrailingInput, "unexpected input after statement: "+tokenLabel(p.peek()))
			p.resyncStmt()
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.peek().Span)
}

// resyncStmt recovers after an error: skip to the next statement boundary
// and consume it.
func (p *Parser) resyncStmt() {
	p.parens = 0
	p.resyncUntil(token.Newline, token.Semicolon)
	if p.atOr(token.Newline, token.Semicolon) {
		p.advance()
	}
}
