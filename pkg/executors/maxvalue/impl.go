package maxvalue

import (
	"strconv"
	"strings"

	"pkg.jsn.cam/yamr/pkg/yamr"
)

// MaxValueWorker finds the maximum numeric value for each key.
// Input format: "key:value" per line (e.g., "temperature:72.5")
type MaxValueWorker struct{}

func (w MaxValueWorker) NewMapper() yamr.Mapper {
	return Mapper{}
}

func (w MaxValueWorker) NewReducer() yamr.Reducer {
	return &Reducer{}
}

func (w MaxValueWorker) Description() string {
	return "Finds the maximum numeric value for each key (format: key:value)"
}

// Mapper passes through well-formed "key:value" lines.
type Mapper struct{}

func (Mapper) Map(line string, emit yamr.Emitter) error {
	if key, value, ok := ParseMetric(line); ok {
		emit(FormatMetric(key, value))
	}
	return nil
}

// Reducer keeps the maximum of the current key. Records of one key are
// adjacent in a sorted partition because they share the "key:" prefix.
type Reducer struct {
	key  string
	max  float64
	seen bool
}

func (r *Reducer) Reduce(record string, emit yamr.Emitter) error {
	key, value, ok := ParseMetric(record)
	if !ok {
		return nil
	}

	if r.seen && key != r.key {
		emit(FormatMetric(r.key, r.max))
		r.seen = false
	}
	if !r.seen || value > r.max {
		r.max = value
	}
	r.key = key
	r.seen = true
	return nil
}

// Finish emits the maximum of the last key.
func (r *Reducer) Finish(emit yamr.Emitter) error {
	if r.seen {
		emit(FormatMetric(r.key, r.max))
	}
	return nil
}

// ParseMetric splits "key:value" and parses the value.
func ParseMetric(s string) (string, float64, bool) {
	key, raw, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || key == "" {
		return "", 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, false
	}
	return key, value, true
}

// FormatMetric is the inverse of ParseMetric.
func FormatMetric(key string, value float64) string {
	return key + ":" + strconv.FormatFloat(value, 'f', -1, 64)
}
