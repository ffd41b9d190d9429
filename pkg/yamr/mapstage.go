package yamr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

// MapPhase runs one map task per block and waits for all of them. The
// returned ResultSet is index-aligned to the blocks. A task that cannot open
// or read the input, or whose mapper fails, contributes an empty Sequence and
// a *TaskError; the other tasks are unaffected.
func MapPhase(path string, blocks []Block, job Job) (ResultSet, []error) {
	return mapPhase(path, blocks, job, nopObserver{})
}

func mapPhase(path string, blocks []Block, job Job, obs Observer) (ResultSet, []error) {
	results := make(ResultSet, len(blocks))
	errs := make([]error, len(blocks))

	var wg sync.WaitGroup
	for i, block := range blocks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer obs.TaskDone(StageMap, i)

			seq, err := mapBlock(path, block, job.NewMapper())
			if err != nil {
				log.Printf("[MAP:%d] %v", i, err)
				errs[i] = &TaskError{Stage: StageMap, Index: i, Err: err}
				seq = Sequence{}
			}
			results[i] = seq
		}()
	}
	wg.Wait()

	return results, compactErrors(errs)
}

// mapBlock reads the lines of one block through its own file handle and
// returns the mapper's output, sorted.
func mapBlock(path string, block Block, mapper Mapper) (Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	seq := Sequence{}
	emit := func(record string) {
		seq = append(seq, record)
	}

	reader := bufio.NewReader(io.NewSectionReader(file, block.Start, block.Len()))
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read block %d: %w", block.Index, readErr)
		}

		// A trailing empty read at end of block is not a line.
		if line != "" {
			if err := mapper.Map(strings.TrimSuffix(line, "\n"), emit); err != nil {
				return nil, fmt.Errorf("map block %d: %w", block.Index, err)
			}
		}

		if readErr != nil {
			break
		}
	}

	sort.Strings(seq)
	return seq, nil
}

func compactErrors(errs []error) []error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
