package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps runs in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]RunRecord
}

// NewMemoryStore returns an empty store; call Init before use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store to an empty, usable state.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]RunRecord)

	return nil
}

// SaveRun stores a copy of run, replacing any record with the same ID.
func (s *MemoryStore) SaveRun(_ context.Context, run RunRecord) error {
	if err := checkRecord(run); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	run.SchemaVersion = CurrentSchemaVersion
	run.Tour = append([]string(nil), run.Tour...)
	run.History = append([]float64(nil), run.History...)
	s.runs[run.ID] = run

	return nil
}

// GetRun returns the record with the given ID and whether it exists.
func (s *MemoryStore) GetRun(_ context.Context, id string) (RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return RunRecord{}, false, ErrNotInitialized
	}
	run, ok := s.runs[id]

	return run, ok, nil
}

// ListRuns returns up to limit runs, newest first; limit <= 0 means all.
func (s *MemoryStore) ListRuns(_ context.Context, limit int) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]RunRecord, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// Close drops all records. Init makes the store usable again.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = false
	s.runs = nil

	return nil
}
