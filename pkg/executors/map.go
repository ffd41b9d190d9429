package executors

import (
	"fmt"
	"sort"

	"pkg.jsn.cam/yamr/pkg/executors/actioncount"
	"pkg.jsn.cam/yamr/pkg/executors/average"
	"pkg.jsn.cam/yamr/pkg/executors/dupprefix"
	"pkg.jsn.cam/yamr/pkg/executors/maxvalue"
	"pkg.jsn.cam/yamr/pkg/executors/urldedup"
	"pkg.jsn.cam/yamr/pkg/executors/wordcount"
	"pkg.jsn.cam/yamr/pkg/yamr"
)

// Default is the executor used when none is named.
const Default = "dupprefix"

var Executors = map[string]yamr.Job{
	"dupprefix":   dupprefix.DupPrefixWorker{},
	"wordcount":   wordcount.WordCountWorker{},
	"actioncount": actioncount.ActionCountWorker{},
	"maxvalue":    maxvalue.MaxValueWorker{},
	"urldedup":    urldedup.URLDedupWorker{},
	"average":     average.AverageWorker{},
}

// Debuggable is implemented by executors with a more verbose output mode.
type Debuggable interface {
	WithDebug() yamr.Job
}

func IsValidExecutor(name string) bool {
	_, exists := Executors[name]
	return exists
}

// GetExecutor returns the named executor, switched to its verbose mode when
// debug is set and the executor supports one.
func GetExecutor(name string, debug bool) (yamr.Job, error) {
	job, exists := Executors[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", yamr.ErrUnknownExecutor, name)
	}

	if d, ok := job.(Debuggable); ok && debug {
		return d.WithDebug(), nil
	}
	return job, nil
}

func ListExecutors() []string {
	var names []string
	for name := range Executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetDescription(name string) (string, error) {
	if worker, exists := Executors[name]; exists {
		return worker.Description(), nil
	}
	return "", fmt.Errorf("%w: %s", yamr.ErrUnknownExecutor, name)
}
