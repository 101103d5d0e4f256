// Package project locates and reads the abacus.toml manifest.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "abacus.toml"

// Manifest is a decoded abacus.toml plus where it was found.
type Manifest struct {
	Path    string
	Session SessionConfig
	Output  OutputConfig
}

// SessionConfig is the [session] section.
type SessionConfig struct {
	// File is the session store location; relative paths resolve against
	// the manifest's directory.
	File     string
	Autosave bool
}

// OutputConfig is the [output] section.
type OutputConfig struct {
	Color string // auto, on, off
}

type manifestFile struct {
	Session struct {
		File     string `toml:"file"`
		Autosave bool   `toml:"autosave"`
	} `toml:"session"`
	Output struct {
		Color string `toml:"color"`
	} `toml:"output"`
}

// Load parses a manifest file. Unknown keys are not fatal; they come back
// as the second result for the caller to report.
func Load(path string) (*Manifest, []string, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	m := &Manifest{
		Path: path,
		Session: SessionConfig{
			File:     strings.TrimSpace(cfg.Session.File),
			Autosave: true,
		},
		Output: OutputConfig{Color: "auto"},
	}
	if meta.IsDefined("session", "autosave") {
		m.Session.Autosave = cfg.Session.Autosave
	}
	if meta.IsDefined("output", "color") {
		color := strings.TrimSpace(cfg.Output.Color)
		switch color {
		case "auto", "on", "off":
			m.Output.Color = color
		default:
			return nil, nil, fmt.Errorf("%s: invalid [output].color %q: must be auto, on, or off", path, color)
		}
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return m, unknown, nil
}

// SessionPath resolves the configured session file against the manifest
// directory. An empty configuration resolves to an empty string; the caller
// falls back to the default location then.
func (m *Manifest) SessionPath() string {
	if m == nil || m.Session.File == "" {
		return ""
	}
	if filepath.IsAbs(m.Session.File) {
		return m.Session.File
	}
	return filepath.Join(filepath.Dir(m.Path), m.Session.File)
}
