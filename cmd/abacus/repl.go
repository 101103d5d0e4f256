package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"abacus/internal/diagfmt"
	"abacus/internal/driver"
	"abacus/internal/eval"
	"abacus/internal/project"
	"abacus/internal/session"
	"abacus/internal/ui"
	"abacus/internal/version"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Repl reads expressions interactively. Variables persist across sessions through the session store configured in abacus.toml`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	manifest, unknownKeys, found, err := project.LoadFromDir(cwd)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", project.ManifestName, err)
	}

	sessionPath := ""
	autosave := true
	if found {
		sessionPath = manifest.SessionPath()
		autosave = manifest.Session.Autosave
	}
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath("abacus")
		if err != nil {
			return fmt.Errorf("failed to resolve session path: %w", err)
		}
	}

	store, err := session.Open(sessionPath)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	env := eval.NewEnv()
	bindings, restored, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	for _, b := range bindings {
		env.Set(b.Name, b.Value)
	}

	var banner []ui.Line
	if !quiet {
		banner = append(banner, ui.Line{Kind: ui.LineInfo, Text: "abacus " + version.Version + " (ctrl+d to exit)"})
		if restored && len(bindings) > 0 {
			banner = append(banner, ui.Line{
				Kind: ui.LineInfo,
				Text: fmt.Sprintf("restored %d variable(s) from %s", len(bindings), store.Path()),
			})
		}
	}
	for _, key := range unknownKeys {
		banner = append(banner, ui.Line{
			Kind: ui.LineError,
			Text: fmt.Sprintf("warning: unknown key %q in %s", key, project.ManifestName),
		})
	}

	submit := func(input string) []ui.Line {
		return evalReplLine(env, input, maxDiagnostics)
	}

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		program := tea.NewProgram(ui.NewReplModel(banner, submit), tea.WithOutput(os.Stdout))
		if _, runErr := program.Run(); runErr != nil {
			return fmt.Errorf("repl failed: %w", runErr)
		}
	} else {
		if loopErr := plainLoop(cmd.InOrStdin(), cmd.OutOrStdout(), banner, submit); loopErr != nil {
			return loopErr
		}
	}

	if autosave {
		if saveErr := saveSession(store, env); saveErr != nil {
			return fmt.Errorf("failed to save session: %w", saveErr)
		}
	}
	return nil
}

// evalReplLine runs one input line against the shared environment and
// renders everything the scrollback should show for it.
func evalReplLine(env *eval.Env, input string, maxDiagnostics int) []ui.Line {
	result := driver.EvalSource("repl", []byte(input+"\n"), env, driver.Options{
		MaxDiagnostics: maxDiagnostics,
	})

	var lines []ui.Line
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		// Цвет здесь выключен: строки красит сама модель
		var buf bytes.Buffer
		diagfmt.Pretty(&buf, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Context:   1,
			ShowNotes: true,
		})
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			lines = append(lines, ui.Line{Kind: ui.LineError, Text: line})
		}
	}
	for _, s := range result.Eval.Stmts {
		if !s.OK {
			continue
		}
		lines = append(lines, ui.Line{Kind: ui.LineResult, Text: formatStmt(s)})
	}
	return lines
}

// plainLoop is the non-TTY fallback: same evaluation semantics, no screen
// control, no prompt echo.
func plainLoop(in io.Reader, out io.Writer, banner []ui.Line, submit func(string) []ui.Line) error {
	for _, line := range banner {
		fmt.Fprintln(out, line.Text)
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		input := scanner.Text()
		if strings.TrimSpace(input) == "" {
			continue
		}
		for _, line := range submit(input) {
			fmt.Fprintln(out, line.Text)
		}
	}
	return scanner.Err()
}

func saveSession(store *session.Store, env *eval.Env) error {
	names := env.Names()
	bindings := make([]session.Binding, 0, len(names))
	for _, name := range names {
		value, ok := env.Get(name)
		if !ok {
			continue
		}
		bindings = append(bindings, session.Binding{Name: name, Value: value})
	}
	return store.Save(bindings)
}
