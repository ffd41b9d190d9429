package dupprefix

import (
	"strconv"

	"pkg.jsn.cam/yamr/pkg/yamr"
)

// DupPrefixWorker finds duplicated line prefixes.
// Input: arbitrary text lines
// Output: a growing length threshold each time a longer duplicated prefix is seen
type DupPrefixWorker struct {
	// Verbose appends the duplicated prefix to every emitted threshold.
	Verbose bool
}

func (w DupPrefixWorker) NewMapper() yamr.Mapper {
	return Mapper{}
}

func (w DupPrefixWorker) NewReducer() yamr.Reducer {
	return &Reducer{Verbose: w.Verbose}
}

// WithDebug returns the verbose variant of the worker.
func (w DupPrefixWorker) WithDebug() yamr.Job {
	return DupPrefixWorker{Verbose: true}
}

func (w DupPrefixWorker) Description() string {
	return "Expands every line into its lowercase prefixes and reports the longest duplicated prefix per partition"
}

// Mapper emits every prefix of the lowercased line, shortest first.
type Mapper struct{}

func (Mapper) Map(line string, emit yamr.Emitter) error {
	lower := ToLowerASCII(line)
	for k := 1; k <= len(lower); k++ {
		emit(lower[:k])
	}
	return nil
}

// Reducer tracks the previous record and a length threshold across calls.
// Each time a record repeats its predecessor and is longer than the
// threshold, the threshold becomes len(record)+1 and is emitted.
type Reducer struct {
	prev    string
	bestLen int
	Verbose bool
}

func (r *Reducer) Reduce(record string, emit yamr.Emitter) error {
	if record == r.prev && len(record) > r.bestLen {
		// +1 kept for output compatibility with existing result files.
		r.bestLen = len(record) + 1
		if r.Verbose {
			emit(strconv.Itoa(r.bestLen) + " " + record)
		} else {
			emit(strconv.Itoa(r.bestLen))
		}
	}

	r.prev = record
	return nil
}

// ToLowerASCII folds A-Z only; every other byte is left untouched.
func ToLowerASCII(s string) string {
	upper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			upper = true
			break
		}
	}
	if !upper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
