package yamr

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// OutputName returns the file name used for partition i.
func OutputName(i int) string {
	return fmt.Sprintf("reduce_%d.txt", i)
}

// WriteOutputs writes one file per partition into dir, one record per line.
// Existing files are overwritten. A file that cannot be written is skipped
// and reported; the remaining partitions are still written. It returns the
// paths that were written successfully.
func WriteOutputs(dir string, results ResultSet) ([]string, []error) {
	return writeOutputs(dir, results, nopObserver{})
}

func writeOutputs(dir string, results ResultSet, obs Observer) ([]string, []error) {
	var (
		written []string
		errs    []error
	)

	for i, seq := range results {
		path := filepath.Join(dir, OutputName(i))
		if err := writeSequence(path, seq); err != nil {
			log.Printf("[WRITE] %v", err)
			errs = append(errs, &TaskError{Stage: StageWrite, Index: i, Err: err})
		} else {
			written = append(written, path)
		}
		obs.TaskDone(StageWrite, i)
	}

	return written, errs
}

func writeSequence(path string, seq Sequence) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(file)
	for _, record := range seq {
		if _, err := w.WriteString(record); err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return file.Close()
}
