package actioncount

import (
	"strings"

	"pkg.jsn.cam/yamr/pkg/executors/wordcount"
	"pkg.jsn.cam/yamr/pkg/yamr"
)

// ActionCountWorker implements yamr.Job
type ActionCountWorker struct{}

func (w ActionCountWorker) NewMapper() yamr.Mapper {
	return Mapper{}
}

func (w ActionCountWorker) NewReducer() yamr.Reducer {
	return &wordcount.RunCounter{}
}

func (w ActionCountWorker) Description() string {
	return "Counts how many times each user action (after 'did') occurs, ignoring users"
}

// Mapper extracts the action following " did " from each line.
type Mapper struct{}

func (Mapper) Map(line string, emit yamr.Emitter) error {
	_, action, found := strings.Cut(line, " did ")
	if !found {
		return nil
	}

	action = strings.TrimSpace(action)
	if action != "" {
		emit(action)
	}
	return nil
}
