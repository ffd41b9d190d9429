package generator

import (
	"fmt"
	"sort"
)

// Registry maps generator names to factories. Several executors share an
// input format, so some names are aliases.
var Registry = map[string]func() Generator{
	"emails":      func() Generator { return &EmailGenerator{AddressCount: 1000} },
	"words":       func() Generator { return &WordsGenerator{MaxWords: 12} },
	"actioncount": func() Generator { return &ActionGenerator{UserCount: 100} },
	"maxvalue":    func() Generator { return &MetricGenerator{} },
	"average":     func() Generator { return &MetricGenerator{} }, // same format as maxvalue
	"urldedup":    func() Generator { return &URLGenerator{} },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all generator names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
