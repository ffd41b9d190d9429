package protocol

import "time"

// RunStatus represents the outcome of a run
type RunStatus string

const (
	// RunStatusCompleted means every task succeeded.
	RunStatusCompleted RunStatus = "completed"
	// RunStatusDegraded means the pipeline finished but some tasks failed.
	RunStatusDegraded RunStatus = "degraded"
	// RunStatusFailed means the run could not start.
	RunStatusFailed RunStatus = "failed"
)

// RunRecord is the persisted summary of one run
type RunRecord struct {
	// Metadata
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`

	ID        string    `json:"id"`
	Version   string    `json:"version"`
	Executor  string    `json:"executor"`
	InputPath string    `json:"input_path"`
	OutputDir string    `json:"output_dir,omitempty"`
	Status    RunStatus `json:"status"`
	Error     string    `json:"error,omitempty"`

	Outputs    []string `json:"outputs,omitempty"`
	TaskErrors []string `json:"task_errors,omitempty"`

	// Stage durations in seconds, keyed by stage name
	StageDurations map[string]float64 `json:"stage_durations,omitempty"`

	FileSize    int64 `json:"file_size"`
	MapTasks    int   `json:"map_tasks"`
	ReduceTasks int   `json:"reduce_tasks"`

	// Record counts
	RecordsMapped   int `json:"records_mapped"`
	RecordsShuffled int `json:"records_shuffled"`
	RecordsReduced  int `json:"records_reduced"`

	// Total duration in seconds
	Duration float64 `json:"duration,omitempty"`
}

// ComputeDuration fills Duration from the start and completion times.
func (r *RunRecord) ComputeDuration() {
	if r.StartedAt.IsZero() || r.CompletedAt.IsZero() {
		return
	}
	r.Duration = r.CompletedAt.Sub(r.StartedAt).Seconds()
}
