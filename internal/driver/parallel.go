package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"abacus/internal/diag"
	"abacus/internal/eval"
	"abacus/internal/source"
)

// RunOptions configure a parallel run over several scripts.
type RunOptions struct {
	Options
	Jobs     int
	Progress ProgressSink
}

// ExpandScripts resolves the argument list into script paths: files pass
// through, directories expand to their *.abc files in sorted order.
func ExpandScripts(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			// Let the load step report it as a per-file diagnostic.
			out = append(out, path)
			continue
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}
		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".abc") {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		// Сортируем для детерминированного порядка
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// RunFiles executes each script in its own environment, in parallel, and
// returns per-file results in argument order. Scripts never share state, so
// output stays deterministic regardless of scheduling.
func RunFiles(ctx context.Context, paths []string, opts RunOptions) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	// Files enter the shared FileSet serially; the workers only read it.
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))
	for _, path := range paths {
		emitEvent(opts.Progress, path, StatusQueued)
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				if loadErr, hadError := loadErrors[path]; hadError {
					bag := diag.NewBag(opts.MaxDiagnostics)
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
						Primary:  source.Span{},
					})
					results[i] = FileResult{Path: path, FileSet: fileSet, Bag: bag}
					emitEvent(opts.Progress, path, StatusError)
					return nil
				}

				emitEvent(opts.Progress, path, StatusRunning)
				res := evalLoaded(fileSet, fileIDs[path], path, eval.NewEnv(), opts.Options)
				results[i] = *res
				if res.Bag.HasErrors() {
					emitEvent(opts.Progress, path, StatusError)
				} else {
					emitEvent(opts.Progress, path, StatusDone)
				}
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
