package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"term_harvester/internal/domain"
)

// fileState is the on-disk layout of the watermark file.
type fileState struct {
	Endpoints map[string]*domain.HarvestState `json:"endpoints"`
	LastRun   time.Time                       `json:"last_run"`
}

// FileStore keeps watermarks in a single JSON file. Writes go through a
// temporary file and rename so a crash mid-write never corrupts the
// previous watermark.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(ctx context.Context, endpoint string) (*domain.HarvestState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return nil, err
	}

	if st, ok := current.Endpoints[endpoint]; ok {
		copied := *st
		return &copied, nil
	}
	return &domain.HarvestState{}, nil
}

func (s *FileStore) Update(ctx context.Context, endpoint string, state *domain.HarvestState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}

	copied := *state
	current.Endpoints[endpoint] = &copied
	current.LastRun = time.Now().UTC()

	return s.save(current)
}

func (s *FileStore) load() (*fileState, error) {
	current := &fileState{Endpoints: make(map[string]*domain.HarvestState)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return current, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if err := json.Unmarshal(data, current); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	if current.Endpoints == nil {
		current.Endpoints = make(map[string]*domain.HarvestState)
	}
	return current, nil
}

func (s *FileStore) save(current *fileState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".harvest_state-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
