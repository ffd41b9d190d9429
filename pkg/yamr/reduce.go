package yamr

import (
	"fmt"
	"log"
	"sync"
)

// ReducePhase runs one reduce task per partition. Each task gets its own
// Reducer from the job and feeds it the partition's records in order. When a
// reducer fails the task stops, keeps what it emitted so far and reports a
// *TaskError.
func ReducePhase(partitions ResultSet, job Job) (ResultSet, []error) {
	return reducePhase(partitions, job, nopObserver{})
}

func reducePhase(partitions ResultSet, job Job, obs Observer) (ResultSet, []error) {
	results := make(ResultSet, len(partitions))
	errs := make([]error, len(partitions))

	var wg sync.WaitGroup
	for i, values := range partitions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer obs.TaskDone(StageReduce, i)

			seq, err := reducePartition(values, job.NewReducer())
			if err != nil {
				log.Printf("[REDUCE:%d] %v", i, err)
				errs[i] = &TaskError{Stage: StageReduce, Index: i, Err: err}
			}
			results[i] = seq
		}()
	}
	wg.Wait()

	return results, compactErrors(errs)
}

func reducePartition(values Sequence, reducer Reducer) (Sequence, error) {
	seq := Sequence{}
	emit := func(record string) {
		seq = append(seq, record)
	}

	for n, value := range values {
		if err := reducer.Reduce(value, emit); err != nil {
			return seq, fmt.Errorf("reduce record %d: %w", n, err)
		}
	}

	if finisher, ok := reducer.(Finisher); ok {
		if err := finisher.Finish(emit); err != nil {
			return seq, fmt.Errorf("finish: %w", err)
		}
	}

	return seq, nil
}
