package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"abacus/internal/diag"
	"abacus/internal/driver"
	"abacus/internal/eval"
	"abacus/internal/token"
)

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestEvalSource(t *testing.T) {
	res := driver.EvalSource("repl", []byte("1 + 2\nx = ans * 2\n"), eval.NewEnv(), driver.Options{MaxDiagnostics: 100})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if len(res.Eval.Stmts) != 2 {
		t.Fatalf("stmts = %d, want 2", len(res.Eval.Stmts))
	}
	if got := res.Eval.Stmts[0].Value.String(); got != "3" {
		t.Errorf("first value = %s, want 3", got)
	}
	if got := res.Eval.Stmts[1].Value.String(); got != "6" {
		t.Errorf("second value = %s, want 6", got)
	}
	if res.Eval.Stmts[1].Name != "x" {
		t.Errorf("second statement name = %q, want x", res.Eval.Stmts[1].Name)
	}
}

func TestEvalSourceSkipsEvalAfterParseError(t *testing.T) {
	env := eval.NewEnv()
	res := driver.EvalSource("repl", []byte("x = 1\n2 +\n"), env, driver.Options{MaxDiagnostics: 100})
	if !res.Bag.HasErrors() {
		t.Fatalf("expected a syntax diagnostic")
	}
	if !hasCode(res.Bag, diag.SynExpectExpression) {
		t.Errorf("expected SynExpectExpression, got %v", res.Bag.Items())
	}
	if len(res.Eval.Stmts) != 0 {
		t.Errorf("evaluation should be skipped on parse errors, ran %d statements", len(res.Eval.Stmts))
	}
	if _, ok := env.Get("x"); ok {
		t.Errorf("broken source should not mutate the environment")
	}
}

func TestEvalSourceRuntimeFailureKeepsGoing(t *testing.T) {
	res := driver.EvalSource("repl", []byte("1 / 0\n4 + 4\n"), eval.NewEnv(), driver.Options{MaxDiagnostics: 100})
	if !hasCode(res.Bag, diag.EvalDivisionByZero) {
		t.Fatalf("expected EvalDivisionByZero, got %v", res.Bag.Items())
	}
	if len(res.Eval.Stmts) != 2 || res.Eval.Stmts[0].OK || !res.Eval.Stmts[1].OK {
		t.Fatalf("wrong statement outcomes: %+v", res.Eval.Stmts)
	}
	if got := res.Eval.Stmts[1].Value.String(); got != "8" {
		t.Errorf("second value = %s, want 8", got)
	}
}

func TestEvalSourceTimings(t *testing.T) {
	res := driver.EvalSource("repl", []byte("1 + 1\n"), eval.NewEnv(), driver.Options{MaxDiagnostics: 100, Timings: true})
	if res.Timing == nil {
		t.Fatalf("timing report missing")
	}
	if len(res.Timing.Phases) != 2 || res.Timing.Phases[0].Name != "parse" || res.Timing.Phases[1].Name != "eval" {
		t.Errorf("phases = %+v, want parse then eval", res.Timing.Phases)
	}
	if !hasCode(res.Bag, diag.ObsTimings) {
		t.Errorf("timing diagnostic missing from bag")
	}
	if res.Bag.HasErrors() {
		t.Errorf("timing info must not count as an error")
	}
}

func TestTokenizeSource(t *testing.T) {
	res := driver.TokenizeSource("repl", []byte("x = 1"), 100)
	kinds := make([]token.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Ident, token.Assign, token.Number, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestEvalPathLoadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.abc")
	if err := os.WriteFile(path, []byte("40 + 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	res, err := driver.EvalPath(path, eval.NewEnv(), driver.Options{MaxDiagnostics: 100})
	if err != nil {
		t.Fatalf("EvalPath: %v", err)
	}
	if len(res.Eval.Stmts) != 1 || res.Eval.Stmts[0].Value.String() != "42" {
		t.Fatalf("result = %+v, want 42", res.Eval.Stmts)
	}
}

func TestEvalPathMissingFile(t *testing.T) {
	_, err := driver.EvalPath(filepath.Join(t.TempDir(), "missing.abc"), eval.NewEnv(), driver.Options{MaxDiagnostics: 100})
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", name, err)
	}
	return path
}

func TestRunFilesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.abc", "1 + 1\n")
	b := writeScript(t, dir, "b.abc", "2 + 2\n")
	missing := filepath.Join(dir, "missing.abc")

	_, results, err := driver.RunFiles(context.Background(), []string{b, missing, a}, driver.RunOptions{
		Options: driver.Options{MaxDiagnostics: 100},
		Jobs:    2,
	})
	if err != nil {
		t.Fatalf("RunFiles: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].Path != b || results[1].Path != missing || results[2].Path != a {
		t.Errorf("argument order not preserved: %s, %s, %s", results[0].Path, results[1].Path, results[2].Path)
	}
	if got := results[0].Eval.Stmts[0].Value.String(); got != "4" {
		t.Errorf("b.abc = %s, want 4", got)
	}
	if got := results[2].Eval.Stmts[0].Value.String(); got != "2" {
		t.Errorf("a.abc = %s, want 2", got)
	}
	if !hasCode(results[1].Bag, diag.IOLoadFileError) {
		t.Errorf("missing file should report IOLoadFileError, got %v", results[1].Bag.Items())
	}
}

func TestRunFilesIsolatesEnvironments(t *testing.T) {
	dir := t.TempDir()
	first := writeScript(t, dir, "first.abc", "x = 5\nx\n")
	second := writeScript(t, dir, "second.abc", "x\n")

	_, results, err := driver.RunFiles(context.Background(), []string{first, second}, driver.RunOptions{
		Options: driver.Options{MaxDiagnostics: 100},
	})
	if err != nil {
		t.Fatalf("RunFiles: %v", err)
	}
	if results[0].Bag.HasErrors() {
		t.Errorf("first script should succeed: %v", results[0].Bag.Items())
	}
	if !hasCode(results[1].Bag, diag.EvalUndefinedVariable) {
		t.Errorf("second script must not see the first script's x")
	}
}

func TestExpandScriptsSortsDirectoryEntries(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "b.abc", "2\n")
	writeScript(t, dir, "a.abc", "1\n")
	writeScript(t, dir, "notes.txt", "skip me")

	paths, err := driver.ExpandScripts([]string{dir})
	if err != nil {
		t.Fatalf("ExpandScripts: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want two .abc files", paths)
	}
	if filepath.Base(paths[0]) != "a.abc" || filepath.Base(paths[1]) != "b.abc" {
		t.Errorf("paths not sorted: %v", paths)
	}
}

func TestRunFilesEmptyInput(t *testing.T) {
	_, results, err := driver.RunFiles(context.Background(), nil, driver.RunOptions{
		Options: driver.Options{MaxDiagnostics: 10},
	})
	if err != nil || len(results) != 0 {
		t.Fatalf("empty input: results=%d err=%v", len(results), err)
	}
}
