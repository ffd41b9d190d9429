package storage

import (
	"sync"

	"pkg.jsn.cam/yamr/pkg/yamr/protocol"
)

// MemoryStore implements RunStore using an in-memory map (not persistent)
type MemoryStore struct {
	runs map[string]protocol.RunRecord
	mu   sync.RWMutex
}

// NewMemoryStore creates a new in-memory run store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]protocol.RunRecord),
	}
}

// SaveRun stores a copy of the record
func (m *MemoryStore) SaveRun(rec protocol.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[rec.ID] = cloneRun(rec)

	return nil
}

// GetRun retrieves a copy of a record
func (m *MemoryStore) GetRun(id string) (*protocol.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.runs[id]
	if !exists {
		return nil, nil
	}

	if err := checkVersion(&rec); err != nil {
		return nil, err
	}

	clone := cloneRun(rec)
	return &clone, nil
}

// ListRuns returns copies of all compatible records, oldest first
func (m *MemoryStore) ListRuns() ([]protocol.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]protocol.RunRecord, 0, len(m.runs))
	for _, rec := range m.runs {
		if checkVersion(&rec) != nil {
			continue
		}
		runs = append(runs, cloneRun(rec))
	}

	sortRuns(runs)
	return runs, nil
}

// DeleteRun removes a record
func (m *MemoryStore) DeleteRun(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.runs, id)

	return nil
}

// Close is a no-op for the in-memory store
func (m *MemoryStore) Close() error {
	return nil
}

// cloneRun copies the slices and map so callers cannot modify stored state
func cloneRun(rec protocol.RunRecord) protocol.RunRecord {
	rec.Outputs = append([]string(nil), rec.Outputs...)
	rec.TaskErrors = append([]string(nil), rec.TaskErrors...)

	if rec.StageDurations != nil {
		durations := make(map[string]float64, len(rec.StageDurations))
		for k, v := range rec.StageDurations {
			durations[k] = v
		}
		rec.StageDurations = durations
	}

	return rec
}
