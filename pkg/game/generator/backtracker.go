package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"wraithmaze/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with a randomized depth-first
// search over the odd cells of the grid. Walls are the even rows/columns
// between them, so the result is a spanning tree over the coarsened grid.
type BacktrackerGenerator struct {
	rng *rand.Rand
}

// NewBacktracker creates a backtracker drawing from rng
func NewBacktracker(rng *rand.Rand) *BacktrackerGenerator {
	return &BacktrackerGenerator{rng: rng}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate creates a fully blocked grid and carves it from (cols/2, 1)
func (g *BacktrackerGenerator) Generate(cols, rows int) (*world.Grid, error) {
	if err := checkDimensions(cols, rows); err != nil {
		return nil, err
	}

	grid := world.NewGrid(cols, rows, true)
	Carve(grid, CarveStart(grid), g.rng)

	return grid, nil
}

// CarveStart returns the cell carving begins from: the centre column, first row inside the border
func CarveStart(grid *world.Grid) world.Cell {
	return world.Cell{X: grid.Cols() / 2, Y: 1}
}

// Carve runs the depth-first carve from start and returns every cell it opened.
// Candidate cells are two steps away and strictly inside the border ring.
func Carve(grid *world.Grid, start world.Cell, rng *rand.Rand) world.CellSet {
	carved := mapset.New[world.Cell]()
	visited := mapset.New[world.Cell]()

	grid.SetOpen(start.X, start.Y)
	carved.Put(start)
	visited.Put(start)

	s := stack.New[world.Cell]()
	s.Push(start)

	for s.Size() > 0 {
		current := s.Peek()

		var candidates []world.Direction
		for _, dir := range world.AllDirections() {
			next := dir.Step(current, 2)
			if grid.IsPlayablePosition(next.X, next.Y) && !visited.Has(next) {
				candidates = append(candidates, dir)
			}
		}

		if len(candidates) == 0 {
			s.Pop()
			continue
		}

		dir := candidates[rng.Intn(len(candidates))]
		mid := dir.Step(current, 1)
		next := dir.Step(current, 2)

		grid.SetOpen(mid.X, mid.Y)
		grid.SetOpen(next.X, next.Y)
		carved.Put(mid)
		carved.Put(next)
		visited.Put(next)
		s.Push(next)
	}

	return carved
}
