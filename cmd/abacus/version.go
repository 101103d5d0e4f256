package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"abacus/internal/version"
)

type versionInfo struct {
	Version string
	Commit  string
	Date    string
}

type versionOptions struct {
	format     string
	showCommit bool
	showDate   bool
}

type versionPayload struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	Tagline string `json:"tagline"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"build_date,omitempty"`
}

const versionTagline = "every digit accounted for"

var (
	versionFormat     string
	versionShowCommit bool
	versionShowDate   bool
	versionShowFull   bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowCommit, "commit", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show abacus build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := versionOptions{
			format:     strings.ToLower(versionFormat),
			showCommit: versionShowCommit || versionShowFull,
			showDate:   versionShowDate || versionShowFull,
		}

		switch opts.format {
		case "pretty", "json":
			// supported
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		info := collectVersionInfo()
		if opts.format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), info, opts)
		}

		renderVersionPretty(cmd.OutOrStdout(), info, opts)
		return nil
	},
}

func collectVersionInfo() versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	return versionInfo{
		Version: v,
		Commit:  strings.TrimSpace(version.Commit),
		Date:    strings.TrimSpace(version.Date),
	}
}

func renderVersionPretty(out io.Writer, info versionInfo, opts versionOptions) {
	fmt.Fprintf(out, "abacus %s - %s\n", info.Version, versionTagline)
	if opts.showCommit {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.Commit))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.Date))
	}
	if !opts.showCommit && !opts.showDate {
		fmt.Fprintln(out, "set --commit, --date, or --full for more build trivia")
	}
}

func renderVersionJSON(out io.Writer, info versionInfo, opts versionOptions) error {
	payload := versionPayload{
		Tool:    "abacus",
		Version: info.Version,
		Tagline: versionTagline,
	}
	if opts.showCommit {
		payload.Commit = valueOrUnknown(info.Commit)
	}
	if opts.showDate {
		payload.Date = valueOrUnknown(info.Date)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
