package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"pkg.jsn.cam/yamr/pkg/executors"
	"pkg.jsn.cam/yamr/pkg/yamr"
)

var (
	executorName  = flag.String("executor", executors.Default, "Workload to run (see -list)")
	outDir        = flag.String("out", ".", "Directory for the reduce_<i>.txt output files")
	debug         = flag.Bool("debug", false, "Verbose reducer output and per-stage record counts")
	showProgress  = flag.Bool("progress", false, "Show stage progress bars on stderr")
	historyPath   = flag.String("history", "", "bbolt file recording every run (empty disables history)")
	listRunsFlag  = flag.Bool("runs", false, "List runs recorded in -history and exit")
	listExecutors = flag.Bool("list", false, "List available executors and exit")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: yamr [flags] <filePath> <mapCount> <reduceCount>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *listExecutors {
		printExecutors()
		return
	}

	if *listRunsFlag {
		if *historyPath == "" {
			fmt.Fprintln(os.Stderr, "-runs requires -history")
			os.Exit(1)
		}
		if err := listRuns(*historyPath, os.Stdout); err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}
		return
	}

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	job, err := executors.GetExecutor(*executorName, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (available: %v)\n", err, executors.ListExecutors())
		os.Exit(1)
	}

	cfg := yamr.Config{
		Job:         job,
		InputPath:   flag.Arg(0),
		MapTasks:    parseCount(flag.Arg(1)),
		ReduceTasks: parseCount(flag.Arg(2)),
		OutputDir:   *outDir,
		Debug:       *debug,
	}
	if *showProgress {
		cfg.Observer = newProgressObserver(os.Stderr)
	}

	res, err := yamr.Run(cfg)
	if err != nil {
		if errors.Is(err, yamr.ErrInputNotFound) {
			fmt.Fprintf(os.Stderr, "No such file: %s\n", cfg.InputPath)
		} else {
			fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		}
		recordRun(*historyPath, failedRecord(cfg, *executorName, *outDir, err))
		os.Exit(1)
	}

	for _, taskErr := range yamr.TaskErrors(res.Err) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", taskErr)
	}

	recordRun(*historyPath, res.Record(*executorName, *outDir))
}

// parseCount mirrors atoi: anything that is not a number counts as 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func printExecutors() {
	fmt.Println("Available executors:")
	for _, name := range executors.ListExecutors() {
		desc, _ := executors.GetDescription(name)
		marker := " "
		if name == executors.Default {
			marker = "*"
		}
		fmt.Printf(" %s %-12s %s\n", marker, name, desc)
	}
}
