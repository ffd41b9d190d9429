package average

import (
	"strconv"

	"pkg.jsn.cam/yamr/pkg/executors/maxvalue"
	"pkg.jsn.cam/yamr/pkg/yamr"
)

// AverageWorker calculates the average numeric value per key.
// Input format: "key:value" per line (e.g., "temperature:72.5")
type AverageWorker struct{}

func (w AverageWorker) NewMapper() yamr.Mapper {
	return maxvalue.Mapper{}
}

func (w AverageWorker) NewReducer() yamr.Reducer {
	return &Reducer{}
}

func (w AverageWorker) Description() string {
	return "Calculates average numeric value per key (format: key:value)"
}

// Reducer tracks sum and count of the current key.
type Reducer struct {
	key   string
	sum   float64
	count int
}

func (r *Reducer) Reduce(record string, emit yamr.Emitter) error {
	key, value, ok := maxvalue.ParseMetric(record)
	if !ok {
		return nil
	}

	if r.count > 0 && key != r.key {
		r.flush(emit)
	}
	r.key = key
	r.sum += value
	r.count++
	return nil
}

// Finish emits the average of the last key.
func (r *Reducer) Finish(emit yamr.Emitter) error {
	if r.count > 0 {
		r.flush(emit)
	}
	return nil
}

func (r *Reducer) flush(emit yamr.Emitter) {
	avg := r.sum / float64(r.count)
	emit(r.key + ":" + strconv.FormatFloat(avg, 'f', 2, 64))
	r.sum = 0
	r.count = 0
}
