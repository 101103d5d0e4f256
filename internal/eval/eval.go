// Package eval walks parsed files and computes arbitrary-precision integer
// results. Failures surface as diagnostics, never panics.
package eval

import (
	"fmt"

	"abacus/internal/ast"
	"abacus/internal/bigint"
	"abacus/internal/diag"
	"abacus/internal/source"
)

// Options configure an evaluation pass over a file.
type Options struct {
	Reporter diag.Reporter
	Env      *Env
}

// StmtResult describes the outcome of one top-level statement.
type StmtResult struct {
	Stmt  ast.StmtID
	Span  source.Span
	Value bigint.Int
	// Name is the bound variable for assignment statements, empty otherwise.
	Name string
	// OK is false when the statement failed; Value is zero then and a
	// diagnostic has already been reported.
	OK bool
}

// Result collects the per-statement outcomes of a file in source order.
type Result struct {
	Stmts []StmtResult
}

// HasFailures reports whether any statement failed to evaluate.
func (r Result) HasFailures() bool {
	for _, s := range r.Stmts {
		if !s.OK {
			return true
		}
	}
	return false
}

// EvalFile evaluates every statement of the file in order. Failed statements
// report diagnostics through opts.Reporter and do not stop the remaining
// statements. A nil Env gets a fresh one.
func EvalFile(builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	var res Result
	if builder == nil || !fileID.IsValid() {
		return res
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return res
	}
	env := opts.Env
	if env == nil {
		env = NewEnv()
	}
	ev := evaluator{
		builder:  builder,
		reporter: opts.Reporter,
		env:      env,
	}
	res.Stmts = make([]StmtResult, 0, len(file.Stmts))
	for _, stmtID := range file.Stmts {
		res.Stmts = append(res.Stmts, ev.evalStmt(stmtID))
	}
	return res
}

type evaluator struct {
	builder  *ast.Builder
	reporter diag.Reporter
	env      *Env
}

func (ev *evaluator) report(code diag.Code, span source.Span, format string, args ...any) {
	if ev.reporter == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if b := diag.ReportError(ev.reporter, code, span, msg); b != nil {
		b.Emit()
	}
}

func (ev *evaluator) evalStmt(id ast.StmtID) StmtResult {
	res := StmtResult{Stmt: id}
	stmt := ev.builder.Stmts.Get(id)
	if stmt == nil {
		return res
	}
	res.Span = stmt.Span
	switch stmt.Kind {
	case ast.StmtExpr:
		data, ok := ev.builder.Stmts.Expr(id)
		if !ok {
			return res
		}
		value, ok := ev.evalExpr(data.Expr)
		if !ok {
			return res
		}
		res.Value = value
		res.OK = true
	case ast.StmtAssign:
		data, ok := ev.builder.Stmts.Assign(id)
		if !ok {
			return res
		}
		value, ok := ev.evalExpr(data.Value)
		if !ok {
			return res
		}
		ev.env.Set(data.Name, value)
		res.Value = value
		res.Name = NormalizeName(data.Name)
		res.OK = true
	}
	if res.OK {
		ev.env.Set(AnsName, res.Value)
	}
	return res
}
