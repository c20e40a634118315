package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"wraithmaze/pkg/engine/world"
)

// GridGenerator is an interface for maze carving algorithms.
// Generate returns a cols x rows grid where true cells are walls.
type GridGenerator interface {
	Generate(cols, rows int) (*world.Grid, error)
	Name() string
}

// Registered generator names
const (
	NameBacktracker = "backtracker"
	NameLineWalker  = "linewalker"
)

// DefaultName is the generator used when none is configured
const DefaultName = NameBacktracker

var constructors = map[string]func(rng *rand.Rand) GridGenerator{
	NameBacktracker: func(rng *rand.Rand) GridGenerator { return NewBacktracker(rng) },
	NameLineWalker:  func(rng *rand.Rand) GridGenerator { return NewLineWalker(rng) },
}

// New returns the named generator drawing from rng
func New(name string, rng *rand.Rand) (GridGenerator, error) {
	if name == "" {
		name = DefaultName
	}
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(rng), nil
}

// Names returns the registered generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func checkDimensions(cols, rows int) error {
	if cols < 3 || rows < 3 {
		return fmt.Errorf("grid must be at least 3x3, got %dx%d", cols, rows)
	}
	return nil
}
