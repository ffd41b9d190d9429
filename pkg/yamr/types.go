package yamr

import (
	"fmt"
	"time"
)

// Sequence is an ordered list of records. Map task output, shuffle
// partitions and reduce output are all Sequences.
type Sequence []string

// ResultSet holds one Sequence per task or partition, indexed by number.
type ResultSet []Sequence

// Total returns the number of records across all sequences.
func (rs ResultSet) Total() int {
	n := 0
	for _, seq := range rs {
		n += len(seq)
	}
	return n
}

// Counts returns the length of every sequence, index-aligned.
func (rs ResultSet) Counts() []int {
	counts := make([]int, len(rs))
	for i, seq := range rs {
		counts[i] = len(seq)
	}
	return counts
}

// Emitter receives records produced by a Mapper or Reducer.
type Emitter func(record string)

// Mapper turns one input line into zero or more records.
type Mapper interface {
	Map(line string, emit Emitter) error
}

// Reducer consumes the sorted records of a single partition, one at a time.
// Implementations may keep state between calls; a fresh Reducer is created
// for every partition of every run.
type Reducer interface {
	Reduce(record string, emit Emitter) error
}

// Finisher is an optional interface for reducers that hold back output
// until the partition is exhausted.
type Finisher interface {
	Finish(emit Emitter) error
}

// Job bundles the pluggable operations of one workload.
type Job interface {
	NewMapper() Mapper
	NewReducer() Reducer
	Description() string
}

// Stage names a pipeline stage.
type Stage string

const (
	StageMap     Stage = "map"
	StageShuffle Stage = "shuffle"
	StageReduce  Stage = "reduce"
	StageWrite   Stage = "write"
)

// TaskError records a failure local to one task. The pipeline keeps going
// when a task fails; task errors are aggregated into Result.Err.
type TaskError struct {
	Err   error
	Stage Stage
	Index int
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s task %d: %v", e.Stage, e.Index, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Observer receives progress events from Run. TaskDone may be called
// concurrently from several goroutines.
type Observer interface {
	StageStarted(stage Stage, tasks int)
	TaskDone(stage Stage, index int)
	StageDone(stage Stage, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) StageStarted(Stage, int)        {}
func (nopObserver) TaskDone(Stage, int)            {}
func (nopObserver) StageDone(Stage, time.Duration) {}
