// Package history owns the bounded, newest-first list of past translations
// and its on-disk JSON representation.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/oukeidos/lingua/internal/apperrors"
	"github.com/oukeidos/lingua/internal/files"
	"github.com/oukeidos/lingua/internal/logger"
)

// MaxRecords is the retention cap; appending beyond it drops the oldest records.
const MaxRecords = 10

// Record is one completed translation. Immutable once created.
// The JSON field names are the on-disk schema; older files may carry unknown
// fields, which decoding ignores.
type Record struct {
	ID             string `json:"id"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	SourceText     string `json:"source_text"`
	TargetText     string `json:"target_text"`
	SourceLangCode string `json:"source_lang_code"`
	TargetLangCode string `json:"target_lang_code"`
	Timestamp      string `json:"timestamp"`
}

// NewID returns a fresh record identifier. UUIDs rather than wall-clock
// timestamps, so two translations completing within the same second cannot
// collide.
func NewID() string {
	return uuid.NewString()
}

// Store holds the in-memory record list and keeps the backing file in sync.
// The in-memory list is the source of truth; a failed persist leaves it intact.
type Store struct {
	mu      sync.Mutex
	path    string
	records []Record
}

// DefaultPath returns the per-user history file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".lingua", "history.json"), nil
}

// Open loads the store from path. A missing, unreadable, or malformed file is
// not an error: the application starts with an empty history and the condition
// is logged.
func Open(path string) *Store {
	s := &Store{path: path}
	s.records = load(path)
	return s
}

func load(path string) []Record {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to read history file, starting empty", "path", path, "error", err)
		}
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("History file is malformed, starting empty", "path", path, "error", err)
		return nil
	}
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	return records
}

// List returns a read-only snapshot, newest first.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the current number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Append inserts rec at the front, truncates to MaxRecords, and rewrites the
// backing file. Dropping the oldest records on overflow is steady-state
// behavior, not an error. A persist failure is returned but the in-memory
// append stands.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]Record{rec}, s.records...)
	if len(s.records) > MaxRecords {
		s.records = s.records[:MaxRecords]
	}
	return s.persistLocked()
}

// Remove deletes the record with the given id if present and rewrites the
// backing file. Removing an absent id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return s.persistLocked()
}

// Clear removes all records and rewrites the backing file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return s.persistLocked()
}

// Persist rewrites the backing file from the current in-memory state.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	records := s.records
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperrors.Persist(fmt.Errorf("failed to encode history: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return apperrors.Persist(fmt.Errorf("failed to create history directory: %w", err))
	}
	if err := files.AtomicWrite(s.path, data, 0600); err != nil {
		return apperrors.Persist(err)
	}
	return nil
}
