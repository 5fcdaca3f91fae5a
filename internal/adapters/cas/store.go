// Package cas implements run record storage.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultDir is the state directory, relative to the working directory.
	DefaultDir = ".shrink"
	// StateFile is the name of the run record file inside DefaultDir.
	StateFile = "state.json"
)

var _ ports.RunRecordStore = (*Store)(nil)

// Store implements ports.RunRecordStore using a flat JSON file keyed by project.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunRecord
}

// NewStore creates a new RunRecordStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(zerr.With(zerr.Wrap(err, "failed to read run record store"), "path", s.path), domain.ErrStoreReadFailed)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(err, "failed to unmarshal run record store"), "path", s.path), domain.ErrStoreReadFailed)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return errors.Join(zerr.Wrap(err, "failed to marshal run record store"), domain.ErrStoreWriteFailed)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return errors.Join(zerr.Wrap(err, "failed to create directory for run record store"), domain.ErrStoreWriteFailed)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(err, "failed to write run record store"), "path", s.path), domain.ErrStoreWriteFailed)
	}

	return nil
}

// Get retrieves the last run record of a project.
func (s *Store) Get(project string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[project]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the run record, replacing any previous record of the same project.
func (s *Store) Put(record domain.RunRecord) error {
	s.mu.Lock()
	s.cache[record.Project] = record
	s.mu.Unlock()

	return s.save()
}
