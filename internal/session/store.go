// Package session persists variable bindings between runs so the REPL can
// pick up where the last one stopped.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"abacus/internal/bigint"
)

// Current schema version - increment when filePayload format changes
const schemaVersion uint16 = 1

// Binding is one persisted variable.
type Binding struct {
	Name  string
	Value bigint.Int
}

// filePayload is the on-disk layout. Values serialize through the Int
// msgpack codec, so the file stores canonical digit blocks plus the sign.
type filePayload struct {
	Schema   uint16
	Bindings []Binding
}

// Store reads and writes one session file.
// Thread-safe for concurrent access.
type Store struct {
	mu   sync.RWMutex
	path string
}

// Open returns a store over the given file path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("session: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// DefaultPath places the session file under the state dir
// ($XDG_STATE_HOME or ~/.local/state) in an app subdirectory.
func DefaultPath(app string) (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, app, "session.mp"), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Save writes the bindings atomically, sorted by name.
func (s *Store) Save(bindings []Binding) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]Binding, len(bindings))
	copy(sorted, bindings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	f, err := os.CreateTemp(filepath.Dir(s.path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", rmErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&filePayload{Schema: schemaVersion, Bindings: sorted}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), s.path)
}

// Load reads the bindings back. A missing file or an unknown schema is not
// an error; both report ok=false and the session starts empty.
func (s *Store) Load() (bindings []Binding, ok bool, err error) {
	if s == nil {
		return nil, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	var payload filePayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	return payload.Bindings, true, nil
}

// Clear removes the session file if it exists.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
