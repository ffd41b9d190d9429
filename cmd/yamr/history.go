package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"pkg.jsn.cam/yamr/pkg/storage"
	"pkg.jsn.cam/yamr/pkg/yamr"
	"pkg.jsn.cam/yamr/pkg/yamr/protocol"
)

// recordRun appends a run to the history file. Failures only log; the run's
// outputs are already on disk.
func recordRun(path string, rec protocol.RunRecord) {
	if path == "" {
		return
	}

	store, err := storage.NewBoltStore(path)
	if err != nil {
		log.Printf("[HISTORY] Cannot open %s: %v", path, err)
		return
	}
	defer store.Close()

	if err := store.SaveRun(rec); err != nil {
		log.Printf("[HISTORY] Failed to record run %s: %v", rec.ID, err)
		return
	}
	log.Printf("[HISTORY] Recorded run %s (%s)", rec.ID, rec.Status)
}

// failedRecord describes a run that never got past opening its input.
func failedRecord(cfg yamr.Config, executor, outputDir string, err error) protocol.RunRecord {
	now := time.Now()
	return protocol.RunRecord{
		ID:          uuid.New().String(),
		Version:     protocol.Version,
		Executor:    executor,
		InputPath:   cfg.InputPath,
		OutputDir:   outputDir,
		Status:      protocol.RunStatusFailed,
		Error:       err.Error(),
		MapTasks:    cfg.MapTasks,
		ReduceTasks: cfg.ReduceTasks,
		StartedAt:   now,
		CompletedAt: now,
	}
}

func listRuns(path string, w io.Writer) error {
	store, err := storage.NewBoltStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns()
	if err != nil {
		return err
	}

	return printRuns(w, runs)
}

func printRuns(w io.Writer, runs []protocol.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded")
		return err
	}

	fmt.Fprintf(w, "%-36s %-10s %-12s %-10s %-7s %-10s %s\n",
		"RUN ID", "STATUS", "EXECUTOR", "SIZE", "M/R", "DURATION", "STARTED")
	fmt.Fprintln(w, "─────────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		duration := time.Duration(run.Duration * float64(time.Second))
		_, err := fmt.Fprintf(w, "%-36s %-10s %-12s %-10s %-7s %-10s %s\n",
			run.ID,
			run.Status,
			run.Executor,
			humanize.IBytes(uint64(run.FileSize)),
			fmt.Sprintf("%d/%d", run.MapTasks, run.ReduceTasks),
			duration.Round(time.Millisecond),
			humanize.Time(run.StartedAt))
		if err != nil {
			return err
		}
	}

	return nil
}
