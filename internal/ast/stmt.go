package ast

import (
	"abacus/internal/source"
)

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	// StmtExpr is a bare expression evaluated for its value.
	StmtExpr StmtKind = iota
	// StmtAssign binds the value of an expression to a name.
	StmtAssign
)

// Stmt represents a statement node in the AST.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtExprData holds bare expression statement details.
type StmtExprData struct {
	Expr ExprID
}

// StmtAssignData holds assignment statement details. NameSpan and EqSpan keep
// the token positions so diagnostics can point at the pieces.
type StmtAssignData struct {
	Name     string
	Value    ExprID
	NameSpan source.Span
	EqSpan   source.Span
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Exprs   *Arena[StmtExprData]
	Assigns *Arena[StmtAssignData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Assigns: NewArena[StmtAssignData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExpr creates a bare expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewAssign creates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, name string, nameSpan, eqSpan source.Span, value ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{
		Name:     name,
		Value:    value,
		NameSpan: nameSpan,
		EqSpan:   eqSpan,
	})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}
