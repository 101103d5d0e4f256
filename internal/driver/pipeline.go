// Package driver wires the lexer, parser, and evaluator into the pipelines
// the CLI commands call.
package driver

import (
	"fmt"

	"fortio.org/safecast"

	"abacus/internal/ast"
	"abacus/internal/diag"
	"abacus/internal/eval"
	"abacus/internal/lexer"
	"abacus/internal/observ"
	"abacus/internal/parser"
	"abacus/internal/source"
	"abacus/internal/token"
)

// Options configure a single-file evaluation pipeline.
type Options struct {
	MaxDiagnostics int
	Timings        bool
}

// TokenizeResult holds the token stream of one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and scans it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource scans in-memory source registered as a virtual file.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeLoaded(fs, fileID, maxDiagnostics)
}

func tokenizeLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

// FileResult holds everything one file's pipeline produced.
type FileResult struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Eval    eval.Result
	Timing  *observ.Report
}

// EvalPath loads a script from disk and runs it with a fresh environment.
func EvalPath(path string, env *eval.Env, opts Options) (*FileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return evalLoaded(fs, fileID, path, env, opts), nil
}

// EvalSource runs in-memory source (REPL line, eval argument, stdin)
// registered as a virtual file.
func EvalSource(name string, src []byte, env *eval.Env, opts Options) *FileResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return evalLoaded(fs, fileID, name, env, opts)
}

// evalLoaded parses then evaluates one already loaded file. Lexing is inline
// with parsing (the parser pulls tokens), so the parse phase covers both.
// Evaluation is skipped when parsing reports errors: running half of a
// broken script would leave the environment in a surprising state.
func evalLoaded(fs *source.FileSet, fileID source.FileID, path string, env *eval.Env, opts Options) *FileResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		panic(fmt.Errorf("maxDiagnostics overflow: %w", err))
	}

	timer := observ.NewTimer()
	builder := ast.NewBuilder(ast.Hints{})

	parseIdx := timer.Begin("parse")
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	parsed := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	stmtCount := 0
	if fileNode := builder.Files.Get(parsed.File); fileNode != nil {
		stmtCount = len(fileNode.Stmts)
	}
	timer.End(parseIdx, fmt.Sprintf("%d statements", stmtCount))

	res := &FileResult{
		Path:    path,
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  parsed.File,
		Bag:     bag,
	}

	if !bag.HasErrors() {
		evalIdx := timer.Begin("eval")
		res.Eval = eval.EvalFile(builder, parsed.File, eval.Options{
			Reporter: reporter,
			Env:      env,
		})
		failed := 0
		for _, s := range res.Eval.Stmts {
			if !s.OK {
				failed++
			}
		}
		note := fmt.Sprintf("%d ok", len(res.Eval.Stmts)-failed)
		if failed > 0 {
			note = fmt.Sprintf("%s, %d failed", note, failed)
		}
		timer.End(evalIdx, note)
	}

	if opts.Timings {
		report := timer.Report()
		res.Timing = &report
		appendTimingDiagnostic(bag, timingPayload{
			Kind:    "eval",
			Path:    path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}
	return res
}
