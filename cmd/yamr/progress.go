package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"pkg.jsn.cam/yamr/pkg/yamr"
)

// progressObserver draws one progress bar per stage. TaskDone is called from
// the task goroutines, so the current bar is guarded by mu.
type progressObserver struct {
	out io.Writer
	bar *progressbar.ProgressBar
	mu  sync.Mutex
}

func newProgressObserver(out io.Writer) *progressObserver {
	return &progressObserver{out: out}
}

func (p *progressObserver) StageStarted(stage yamr.Stage, tasks int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if tasks <= 0 {
		p.bar = nil
		return
	}

	p.bar = progressbar.NewOptions(tasks,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(fmt.Sprintf("%-8s", stage)),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *progressObserver) TaskDone(stage yamr.Stage, index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p *progressObserver) StageDone(stage yamr.Stage, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
	fmt.Fprintf(p.out, "%-8s done in %s\n", stage, elapsed.Round(time.Microsecond))
}
