package yamr

import (
	"errors"

	"pkg.jsn.cam/yamr/pkg/yamr/protocol"
)

// Record converts the result into the persisted run format.
func (r *Result) Record(executor, outputDir string) protocol.RunRecord {
	rec := protocol.RunRecord{
		ID:              r.ID,
		Version:         protocol.Version,
		Executor:        executor,
		InputPath:       r.InputPath,
		OutputDir:       outputDir,
		Status:          protocol.RunStatusCompleted,
		Outputs:         r.Outputs,
		FileSize:        r.FileSize,
		MapTasks:        r.MapTasks,
		ReduceTasks:     r.ReduceTasks,
		RecordsMapped:   sum(r.MapCounts),
		RecordsShuffled: sum(r.ShuffleCounts),
		RecordsReduced:  sum(r.ReduceCounts),
		StartedAt:       r.StartedAt,
		CompletedAt:     r.CompletedAt,
		StageDurations:  make(map[string]float64, len(r.Durations)),
	}

	for stage, d := range r.Durations {
		rec.StageDurations[string(stage)] = d.Seconds()
	}

	if r.Err != nil {
		rec.Status = protocol.RunStatusDegraded
		rec.Error = "some tasks failed"
		for _, err := range TaskErrors(r.Err) {
			rec.TaskErrors = append(rec.TaskErrors, err.Error())
		}
	}

	rec.ComputeDuration()
	return rec
}

// TaskErrors unpacks an aggregated Result.Err into its task errors.
func TaskErrors(err error) []*TaskError {
	if err == nil {
		return nil
	}

	var out []*TaskError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, TaskErrors(e)...)
		}
		return out
	}

	var taskErr *TaskError
	if errors.As(err, &taskErr) {
		out = append(out, taskErr)
	}
	return out
}

func sum(counts []int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
