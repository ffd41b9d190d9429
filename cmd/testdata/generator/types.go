package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces line-oriented input for one workload
type Generator interface {
	// Init seeds the generator. Generators pre-build their line pools here so
	// WriteLine stays allocation free.
	Init(r *rand.Rand)

	// WriteLine writes a single '\n'-terminated line
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the data format
	Description() string

	// DefaultCount returns the suggested default number of lines to generate
	DefaultCount() int64
}

// pick returns a random element of items
func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}
