package yamr

import (
	"os"
	"path/filepath"
	"testing"
)

// testJob wires plain functions into a Job.
type testJob struct {
	mapFn      func(line string, emit Emitter) error
	newReducer func() Reducer
}

func (j testJob) NewMapper() Mapper {
	return mapperFunc(j.mapFn)
}

func (j testJob) NewReducer() Reducer {
	return j.newReducer()
}

func (j testJob) Description() string {
	return "test job"
}

type mapperFunc func(line string, emit Emitter) error

func (f mapperFunc) Map(line string, emit Emitter) error {
	return f(line, emit)
}

type reducerFunc func(record string, emit Emitter) error

func (f reducerFunc) Reduce(record string, emit Emitter) error {
	return f(record, emit)
}

// lineJob emits every line unchanged and reduces by echoing.
var lineJob = testJob{
	mapFn: func(line string, emit Emitter) error {
		emit(line)
		return nil
	},
	newReducer: func() Reducer {
		return reducerFunc(func(record string, emit Emitter) error {
			emit(record)
			return nil
		})
	},
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func isSorted(seq Sequence) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}
	return true
}
