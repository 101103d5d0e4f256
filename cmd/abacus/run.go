package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"abacus/internal/driver"
	"abacus/internal/source"
	"abacus/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] <file.abc|directory> ...",
	Short: "Run abacus scripts",
	Long:  `Run executes .abc scripts; directories expand to the scripts inside them. Multiple scripts run in parallel workers with output kept in argument order`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScripts,
}

func init() {
	runCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	runCmd.Flags().String("ui", "auto", "progress view while scripts run (auto|on|off)")
}

func runScripts(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	paths, err := driver.ExpandScripts(args)
	if err != nil {
		return fmt.Errorf("failed to expand script arguments: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .abc scripts found in %s", strings.Join(args, ", "))
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := driver.RunOptions{
		Options: driver.Options{
			MaxDiagnostics: maxDiagnostics,
			Timings:        timings,
		},
		Jobs: jobs,
	}

	var results []driver.FileResult
	if shouldUseTUI(mode) && len(paths) > 1 && !quiet {
		_, results, err = runWithProgressUI(cmd.Context(), paths, opts)
	} else {
		_, results, err = driver.RunFiles(cmd.Context(), paths, opts)
	}
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	// Результаты уже в порядке аргументов
	failed := false
	multi := len(paths) > 1
	for idx, res := range results {
		if printErr := printDiagnostics(cmd, res.Bag, res.FileSet); printErr != nil {
			return printErr
		}
		if res.Bag.HasErrors() {
			failed = true
		}
		if !quiet && multi {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", res.Path)
		}
		for _, line := range resultLines(res.Eval) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		if timings && res.Timing != nil {
			fmt.Fprint(os.Stderr, res.Timing.Summary())
		}
		if !quiet && multi && idx < len(results)-1 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if failed {
		// os.Exit пропускает defer, поэтому останавливаем профилировщики явно
		cleanup()
		os.Exit(1)
	}
	return nil
}

type runOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// runWithProgressUI evaluates the scripts in a background goroutine while a
// Bubble Tea progress view consumes their run events. The view quits when
// the event channel closes.
func runWithProgressUI(ctx context.Context, paths []string, opts driver.RunOptions) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.RunEvent, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.RunFiles(ctx, paths, optsCopy)
		outcomeCh <- runOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("running scripts", paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
