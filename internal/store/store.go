// Package store persists the wheel document as a single JSON file.
// Every write rewrites the whole document; there is no append mode.
// That keeps the format human-readable and the code simple, at the cost
// of only suiting small-to-moderate datasets.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wheelspin/internal/models"
)

// ErrDataCorrupt reports that the backing file exists but could not be
// parsed as a document. Callers can match it with errors.Is and surface
// a degraded-service response instead of crashing.
var ErrDataCorrupt = errors.New("data file is corrupt")

// Store reads and writes the document at a fixed path.
type Store struct {
	path     string
	initOnce sync.Once
	initErr  error
}

// New creates a store for the given file path. The file is not touched
// until EnsureExists or a write.
func New(path string) *Store {
	return &Store{path: path}
}

// EnsureExists creates the data file with an empty document if it is
// absent. Safe to call concurrently any number of times: the check and
// creation run exactly once, and every caller observes the same result,
// so an existing file can never be truncated by a racing initializer.
func (s *Store) EnsureExists() error {
	s.initOnce.Do(func() {
		s.initErr = s.init()
	})
	return s.initErr
}

func (s *Store) init() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat data file: %w", err)
	}
	return s.Write(models.Document{Lists: []models.Wheel{}})
}

// Read parses and returns the persisted document. A file that cannot be
// parsed yields an error wrapping ErrDataCorrupt.
func (s *Store) Read() (models.Document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Document{Lists: []models.Wheel{}}, nil
		}
		return models.Document{}, fmt.Errorf("read data file: %w", err)
	}
	var doc models.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrDataCorrupt, err)
	}
	return doc, nil
}

// Write serializes the document and overwrites the file. Output is
// pretty-printed UTF-8 with a trailing newline.
func (s *Store) Write(doc models.Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}
