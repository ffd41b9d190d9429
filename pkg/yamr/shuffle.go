package yamr

import (
	"log"
	"sort"
	"sync"
)

// PartitionIndex routes a record by the value of its first byte modulo r.
func PartitionIndex(record string, r int) (int, error) {
	if r <= 0 {
		return 0, ErrNoPartitions
	}
	if record == "" {
		return 0, ErrEmptyRecord
	}
	return int(record[0]) % r, nil
}

// Shuffle redistributes the map output into r partitions and sorts each of
// them. One task runs per map sequence; each partition has its own lock, held
// for a single append, so tasks writing to different partitions never
// contend. Empty records are dropped and reported as task errors.
func Shuffle(mapped ResultSet, r int) (ResultSet, []error) {
	return shuffle(mapped, r, nopObserver{})
}

func shuffle(mapped ResultSet, r int, obs Observer) (ResultSet, []error) {
	if r <= 0 {
		return ResultSet{}, nil
	}

	partitions := make(ResultSet, r)
	for i := range partitions {
		partitions[i] = Sequence{}
	}
	locks := make([]sync.Mutex, r)
	errs := make([]error, len(mapped))

	var wg sync.WaitGroup
	for i, values := range mapped {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer obs.TaskDone(StageShuffle, i)

			dropped := 0
			for _, value := range values {
				index, err := PartitionIndex(value, r)
				if err != nil {
					dropped++
					continue
				}

				locks[index].Lock()
				partitions[index] = append(partitions[index], value)
				locks[index].Unlock()
			}

			if dropped > 0 {
				log.Printf("[SHUFFLE:%d] Dropped %d empty records", i, dropped)
				errs[i] = &TaskError{Stage: StageShuffle, Index: i, Err: ErrEmptyRecord}
			}
		}()
	}
	wg.Wait()

	sortPartitions(partitions)

	return partitions, compactErrors(errs)
}

func sortPartitions(partitions ResultSet) {
	var wg sync.WaitGroup
	for _, partition := range partitions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sort.Strings(partition)
		}()
	}
	wg.Wait()
}
