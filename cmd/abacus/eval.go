package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"abacus/internal/driver"
	"abacus/internal/eval"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expr ...]",
	Short: "Evaluate integer expressions",
	Long:  `Eval computes the expressions given as arguments, or reads statements from stdin when no arguments are given`,
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	name := "<eval>"
	var src []byte
	if len(args) > 0 {
		// Каждый аргумент — отдельный стейтмент
		src = []byte(strings.Join(args, "\n"))
	} else {
		name = "<stdin>"
		src, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Timings:        timings,
	}
	result := driver.EvalSource(name, src, eval.NewEnv(), opts)

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	for _, line := range resultLines(result.Eval) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	if timings && result.Timing != nil {
		fmt.Fprint(os.Stderr, result.Timing.Summary())
	}

	if result.Bag.HasErrors() {
		// os.Exit пропускает defer, поэтому останавливаем профилировщики явно
		cleanup()
		os.Exit(1)
	}
	return nil
}
