package generator

import (
	"io"
	"math/rand/v2"
	"strings"
)

// WordsGenerator writes short sentences of random words
type WordsGenerator struct {
	MaxWords int
	rand     *rand.Rand
	sb       strings.Builder
}

var vocabulary = []string{
	"map", "reduce", "shuffle", "block", "record", "partition", "sort",
	"merge", "file", "line", "task", "worker", "barrier", "Prefix", "prefix",
	"the", "a", "of", "and", "to", "in", "is", "for", "on", "with",
}

func (g *WordsGenerator) Init(r *rand.Rand) {
	g.rand = r
	if g.MaxWords <= 0 {
		g.MaxWords = 12
	}
}

func (g *WordsGenerator) WriteLine(w io.Writer) error {
	g.sb.Reset()

	n := 1 + g.rand.IntN(g.MaxWords)
	for i := 0; i < n; i++ {
		if i > 0 {
			g.sb.WriteByte(' ')
		}
		g.sb.WriteString(pick(g.rand, vocabulary))
	}
	g.sb.WriteByte('\n')

	_, err := io.WriteString(w, g.sb.String())
	return err
}

func (g *WordsGenerator) Description() string {
	return "Sentences of random words (for wordcount and dupprefix)"
}

func (g *WordsGenerator) DefaultCount() int64 {
	return 5e4
}
