package wordcount

import (
	"strconv"
	"strings"

	"pkg.jsn.cam/yamr/pkg/executors/dupprefix"
	"pkg.jsn.cam/yamr/pkg/yamr"
)

// WordCountWorker implements yamr.Job
type WordCountWorker struct{}

func (w WordCountWorker) NewMapper() yamr.Mapper {
	return Mapper{}
}

func (w WordCountWorker) NewReducer() yamr.Reducer {
	return &RunCounter{}
}

func (w WordCountWorker) Description() string {
	return "A simple word count worker that counts occurrences of each word"
}

// Mapper splits each line into lowercase words.
type Mapper struct{}

func (Mapper) Map(line string, emit yamr.Emitter) error {
	for _, word := range strings.Fields(line) {
		emit(dupprefix.ToLowerASCII(word))
	}
	return nil
}

// RunCounter counts runs of identical adjacent records and emits
// "<record> <count>" when a run ends. The partition is sorted, so every run
// holds all occurrences of its record.
type RunCounter struct {
	current string
	count   int
}

func (r *RunCounter) Reduce(record string, emit yamr.Emitter) error {
	if r.count > 0 && record != r.current {
		r.flush(emit)
	}
	r.current = record
	r.count++
	return nil
}

// Finish emits the last run.
func (r *RunCounter) Finish(emit yamr.Emitter) error {
	if r.count > 0 {
		r.flush(emit)
	}
	return nil
}

func (r *RunCounter) flush(emit yamr.Emitter) {
	emit(r.current + " " + strconv.Itoa(r.count))
	r.count = 0
}
