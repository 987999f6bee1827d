// Package store persists the planner state as a single JSON document
// and mirrors the transaction log into a SQLite archive.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wishplan/internal/model"
)

// ExportFilename is the fixed default name for exported state files.
const ExportFilename = "planner_data.json"

// Store reads and writes the planner state file. Every save fully
// overwrites the document; there is no locking, so two concurrent
// sessions race and the last writer wins (single-user assumption).
type Store struct {
	path string
}

// New returns a store over the given state file path.
func New(path string) *Store {
	return &Store{path: path}
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "wishplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "wishplan")
}

// DefaultPath returns the default state file location.
func DefaultPath() string {
	return filepath.Join(DataDir(), "planner.json")
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a state file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the persisted state. A missing file is a normal first run
// and yields the zeroed default state; a file that does not parse is an
// error surfaced to the caller. Loaded state is normalized before it is
// returned.
func (s *Store) Load() (*model.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultState(), nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var st model.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", s.path, err)
	}
	st.Normalize()
	return &st, nil
}

// Save writes the full state document, replacing any prior content.
func (s *Store) Save(st *model.AppState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := Encode(st)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// Reset deletes the state file. A missing file is not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing state file: %w", err)
	}
	return nil
}

// ExportTo writes the state document to an arbitrary path, in the same
// encoding as the state file itself.
func (s *Store) ExportTo(path string, st *model.AppState) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// Encode renders the state as the on-disk document: UTF-8, two-space
// indent, trailing newline, and no HTML escaping so non-ASCII item
// names stay literal. The encoding is deterministic, so load then save
// reproduces a file it wrote byte for byte.
func Encode(st *model.AppState) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return buf.Bytes(), nil
}
