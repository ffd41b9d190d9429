package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"pkg.jsn.cam/yamr/cmd/testdata/generator"
)

/* generates line-oriented input files for the yamr executors */

var (
	generatorName = flag.String("generator", "emails", "Data generator: "+strings.Join(generator.List(), ", "))
	count         = flag.Int64("count", 0, "Number of lines to generate (0 uses the generator's default)")
	outputPath    = flag.String("output", "var/testdata.txt", "Output file path")
	seed          = flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	quiet         = flag.Bool("quiet", false, "Disable the progress bar")
)

// progressStep is how many lines are written between progress bar updates
const progressStep = 1000

func main() {
	flag.Parse()

	gen, err := generator.Get(*generatorName)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(generator.List(), ", "))
	}

	total := *count
	if total <= 0 {
		total = gen.DefaultCount()
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	gen.Init(rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)))

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	file, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if !*quiet {
		bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(*generatorName),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	start := time.Now()
	w := bufio.NewWriterSize(file, 1<<20)
	for i := int64(0); i < total; i++ {
		if err := gen.WriteLine(w); err != nil {
			log.Fatalf("Failed to write line %d: %v", i, err)
		}
		if bar != nil && (i+1)%progressStep == 0 {
			bar.Add(progressStep)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}
	if bar != nil {
		bar.Finish()
	}

	info, err := file.Stat()
	if err != nil {
		log.Fatalf("Failed to stat output: %v", err)
	}

	fmt.Printf("Wrote %s lines (%s) of %s to %s in %s\n",
		humanize.Comma(total), humanize.IBytes(uint64(info.Size())), gen.Description(),
		*outputPath, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Seed: %d\n", s)
}
