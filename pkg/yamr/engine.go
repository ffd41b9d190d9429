package yamr

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Config holds the parameters of one run
type Config struct {
	Job         Job
	Observer    Observer // optional
	InputPath   string
	OutputDir   string // empty means the working directory
	MapTasks    int
	ReduceTasks int
	Debug       bool // log stage counts and every output record
}

// Result summarises a completed run.
type Result struct {
	StartedAt   time.Time
	CompletedAt time.Time

	// Err aggregates every task that failed without aborting the run.
	Err error

	Durations map[Stage]time.Duration

	ID        string
	InputPath string
	Outputs   []string
	Blocks    []Block

	MapCounts     []int
	ShuffleCounts []int
	ReduceCounts  []int

	FileSize    int64
	BlockSize   int64
	MapTasks    int
	ReduceTasks int
}

// Run executes the whole pipeline: split, map, shuffle, reduce, write. Each
// stage starts only after every task of the previous stage has returned.
//
// The returned error is non-nil only when the run could not start (no job,
// or the input cannot be opened). Failures of individual tasks are collected
// in Result.Err and never stop the pipeline.
func Run(cfg Config) (*Result, error) {
	if cfg.Job == nil {
		return nil, ErrNilJob
	}

	obs := cfg.Observer
	if obs == nil {
		obs = nopObserver{}
	}

	res := &Result{
		ID:          uuid.New().String(),
		InputPath:   cfg.InputPath,
		MapTasks:    cfg.MapTasks,
		ReduceTasks: cfg.ReduceTasks,
		Durations:   make(map[Stage]time.Duration),
		StartedAt:   time.Now(),
	}
	prefix := fmt.Sprintf("[ENGINE:%s]", res.ID[:8])

	size, blocks, err := SplitFile(cfg.InputPath, cfg.MapTasks)
	if err != nil {
		log.Printf("%s Cannot start run: %v", prefix, err)
		return nil, err
	}
	res.FileSize = size
	res.Blocks = blocks
	if cfg.MapTasks > 0 {
		res.BlockSize = size / int64(cfg.MapTasks)
	}

	log.Printf("%s File: %s. File size: %s. Block size: %s. Map tasks: %d. Reduce tasks: %d",
		prefix, cfg.InputPath, humanize.IBytes(uint64(size)), humanize.IBytes(uint64(res.BlockSize)),
		cfg.MapTasks, cfg.ReduceTasks)

	if cfg.MapTasks <= 0 || cfg.ReduceTasks <= 0 {
		log.Printf("%s Degenerate run (map tasks %d, reduce tasks %d)", prefix, cfg.MapTasks, cfg.ReduceTasks)
	}

	var taskErrs []error

	runStage := func(stage Stage, tasks int, fn func()) {
		obs.StageStarted(stage, tasks)
		start := time.Now()
		fn()
		elapsed := time.Since(start)
		res.Durations[stage] = elapsed
		obs.StageDone(stage, elapsed)
	}

	var mapped ResultSet
	runStage(StageMap, len(blocks), func() {
		var errs []error
		mapped, errs = mapPhase(cfg.InputPath, blocks, cfg.Job, obs)
		taskErrs = append(taskErrs, errs...)
	})
	res.MapCounts = mapped.Counts()
	if cfg.Debug {
		logCounts(prefix, "Map", mapped)
	}

	var shuffled ResultSet
	runStage(StageShuffle, len(mapped), func() {
		var errs []error
		shuffled, errs = shuffle(mapped, cfg.ReduceTasks, obs)
		taskErrs = append(taskErrs, errs...)
	})
	res.ShuffleCounts = shuffled.Counts()
	if cfg.Debug {
		logCounts(prefix, "Shuffle", shuffled)
	}

	var reduced ResultSet
	runStage(StageReduce, len(shuffled), func() {
		var errs []error
		reduced, errs = reducePhase(shuffled, cfg.Job, obs)
		taskErrs = append(taskErrs, errs...)
	})
	res.ReduceCounts = reduced.Counts()
	if cfg.Debug {
		logCounts(prefix, "Reduce", reduced)
		for i, seq := range reduced {
			for _, record := range seq {
				log.Printf("%s reduce_%d: %s", prefix, i, record)
			}
		}
	}

	if cfg.OutputDir != "" && len(reduced) > 0 {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			log.Printf("%s Cannot create output directory: %v", prefix, err)
		}
	}

	runStage(StageWrite, len(reduced), func() {
		var errs []error
		res.Outputs, errs = writeOutputs(cfg.OutputDir, reduced, obs)
		taskErrs = append(taskErrs, errs...)
	})

	res.Err = errors.Join(taskErrs...)
	res.CompletedAt = time.Now()

	log.Printf("%s Run completed in %s: %d records mapped, %d reduced, %d files written, %d task errors",
		prefix, res.CompletedAt.Sub(res.StartedAt), mapped.Total(), reduced.Total(), len(res.Outputs), len(taskErrs))

	return res, nil
}

// logCounts logs a line like "Map results count (3): 4 0 2 = 6".
func logCounts(prefix, stage string, rs ResultSet) {
	var b strings.Builder
	for _, n := range rs.Counts() {
		fmt.Fprintf(&b, "%d ", n)
	}
	log.Printf("%s %s results count (%d): %s= %d", prefix, stage, len(rs), b.String(), rs.Total())
}
