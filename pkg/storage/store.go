package storage

import (
	"sort"

	"pkg.jsn.cam/yamr/pkg/yamr/protocol"
)

// RunStore persists the summaries of completed runs.
type RunStore interface {
	// SaveRun inserts or replaces the record with the same ID.
	SaveRun(rec protocol.RunRecord) error
	// GetRun returns nil, nil when no record has that ID.
	GetRun(id string) (*protocol.RunRecord, error)
	// ListRuns returns all readable records, oldest first.
	ListRuns() ([]protocol.RunRecord, error)
	DeleteRun(id string) error

	// Lifecycle
	Close() error
}

func sortRuns(runs []protocol.RunRecord) {
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
}
