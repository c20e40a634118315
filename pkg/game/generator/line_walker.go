package generator

import (
	"math/rand"

	"wraithmaze/pkg/engine/world"
)

// LineWalkerGenerator carves a spine down the centre column, then walks
// straight corridors in random directions with a branching probability.
// Layouts contain loops, unlike the backtracker.
type LineWalkerGenerator struct {
	rng *rand.Rand

	// BranchProbability is the chance of spawning a side corridor at each step
	BranchProbability float32
	MinDistance       int
	MaxDistance       int
}

// NewLineWalker creates a line walker drawing from rng
func NewLineWalker(rng *rand.Rand) *LineWalkerGenerator {
	return &LineWalkerGenerator{
		rng:               rng,
		BranchProbability: 0.35,
		MinDistance:       2,
		MaxDistance:       5,
	}
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate creates a new grid with a connected network of corridors
func (g *LineWalkerGenerator) Generate(cols, rows int) (*world.Grid, error) {
	if err := checkDimensions(cols, rows); err != nil {
		return nil, err
	}

	grid := world.NewGrid(cols, rows, true)
	cx, _ := grid.CenterPosition()

	// Spine keeps the top and bottom of the centre column connected
	for y := 1; y < rows-1; y++ {
		grid.SetOpen(cx, y)
	}

	for y := 1; y < rows-1; y += 2 {
		if g.rng.Float32() < g.BranchProbability*2 {
			g.walk(grid, world.Cell{X: cx, Y: y}, g.randomDirection(), g.BranchProbability)
		}
	}

	return grid, nil
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection() world.Direction {
	return world.Direction(g.rng.Intn(4))
}

// branchDirection picks a direction for a side corridor leaving a corridor
// heading in dir. Branches never double back along the corridor.
func (g *LineWalkerGenerator) branchDirection(dir world.Direction) world.Direction {
	d := g.randomDirection()
	if d == dir.Opposite() {
		return dir
	}
	return d
}

// walk carves a straight line from c in the given direction, staying inside the border ring
func (g *LineWalkerGenerator) walk(grid *world.Grid, c world.Cell, dir world.Direction, branchProbability float32) world.Cell {
	distance := g.MinDistance + g.rng.Intn(g.MaxDistance-g.MinDistance+1)

	for segment := 0; segment < distance; segment++ {
		grid.SetOpen(c.X, c.Y)

		next := dir.Step(c, 1)
		if !grid.IsPlayablePosition(next.X, next.Y) {
			return c
		}

		if branchProbability > 0 && g.rng.Float32() < branchProbability {
			g.walk(grid, c, g.branchDirection(dir), branchProbability-.1)
		}

		c = next
	}

	grid.SetOpen(c.X, c.Y)
	return c
}
