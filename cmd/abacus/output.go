package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"abacus/internal/diag"
	"abacus/internal/diagfmt"
	"abacus/internal/eval"
	"abacus/internal/source"
)

// printDiagnostics renders the bag to stderr when it holds anything a user
// should see. Info-only bags stay silent.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
		return nil
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	opts := diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   2,
		ShowNotes: true,
	}
	diagfmt.Pretty(os.Stderr, bag, fs, opts)
	return nil
}

// resultLines formats what a finished script prints: expression statements
// print their value, assignments echo name = value.
func resultLines(res eval.Result) []string {
	var out []string
	for _, s := range res.Stmts {
		if !s.OK {
			continue
		}
		out = append(out, formatStmt(s))
	}
	return out
}

func formatStmt(s eval.StmtResult) string {
	if s.Name != "" {
		return fmt.Sprintf("%s = %s", s.Name, s.Value.String())
	}
	return s.Value.String()
}
