// Package generator tests maze carving: connectivity of carved cells,
// border integrity, determinism per seed and the generator registry.
package generator

import (
	"math/rand"
	"testing"

	"wraithmaze/pkg/engine/world"
)

func TestBacktracker_CarvedCellsAreConnected(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid := world.NewGrid(18, 13, true)
		start := CarveStart(grid)
		carved := Carve(grid, start, rand.New(rand.NewSource(seed)))

		reached := grid.Reachable(start)
		carved.Each(func(c world.Cell) {
			if !reached.Has(c) {
				t.Errorf("seed %d: carved cell %v not reachable from %v", seed, c, start)
			}
		})
		if reached.Size() != carved.Size() {
			t.Errorf("seed %d: reachable %d cells, carved %d", seed, reached.Size(), carved.Size())
		}
	}
}

func TestBacktracker_BorderStaysBlocked(t *testing.T) {
	g := NewBacktracker(rand.New(rand.NewSource(7)))
	grid, err := g.Generate(18, 13)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	grid.ForEachCell(func(x, y int, blocked bool) {
		if grid.IsOnPerimeter(x, y) && !blocked {
			t.Errorf("perimeter cell (%d,%d) is open", x, y)
		}
	})
}

func TestBacktracker_VisitsEveryOddCell(t *testing.T) {
	g := NewBacktracker(rand.New(rand.NewSource(3)))
	grid, err := g.Generate(18, 13)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Start column 9 is odd, so the coarse lattice is the odd columns and rows
	for y := 1; y < 12; y += 2 {
		for x := 1; x < 17; x += 2 {
			if grid.Blocked(x, y) {
				t.Errorf("lattice cell (%d,%d) was never carved", x, y)
			}
		}
	}
}

func TestBacktracker_SpanningTreeHasNoLoops(t *testing.T) {
	g := NewBacktracker(rand.New(rand.NewSource(11)))
	grid, err := g.Generate(19, 13)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// A tree over the lattice has exactly (nodes - 1) carved connectors
	nodes, connectors := 0, 0
	grid.ForEachCell(func(x, y int, blocked bool) {
		if blocked {
			return
		}
		if x%2 == 1 && y%2 == 1 {
			nodes++
		} else {
			connectors++
		}
	})
	if connectors != nodes-1 {
		t.Errorf("nodes=%d connectors=%d, want connectors == nodes-1", nodes, connectors)
	}
}

func TestBacktracker_DeterministicPerSeed(t *testing.T) {
	a, _ := NewBacktracker(rand.New(rand.NewSource(42))).Generate(18, 13)
	b, _ := NewBacktracker(rand.New(rand.NewSource(42))).Generate(18, 13)
	a.ForEachCell(func(x, y int, blocked bool) {
		if b.Blocked(x, y) != blocked {
			t.Fatalf("grids differ at (%d,%d) for the same seed", x, y)
		}
	})
}

func TestGenerators_RejectTinyGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range Names() {
		g, err := New(name, rng)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if _, err := g.Generate(2, 5); err == nil {
			t.Errorf("%s: Generate(2,5) returned no error", g.Name())
		}
	}
}

func TestLineWalker_SpineConnectsTopAndBottom(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := NewLineWalker(rand.New(rand.NewSource(seed)))
		grid, err := g.Generate(18, 13)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		cx, _ := grid.CenterPosition()
		reached := grid.Reachable(world.Cell{X: cx, Y: 1})
		if !reached.Has(world.Cell{X: cx, Y: 11}) {
			t.Errorf("seed %d: bottom of spine unreachable", seed)
		}
		if reached.Size() != grid.OpenCount() {
			t.Errorf("seed %d: %d open cells but only %d reachable", seed, grid.OpenCount(), reached.Size())
		}
	}
}

func TestLineWalker_BranchesNeverDoubleBack(t *testing.T) {
	g := NewLineWalker(rand.New(rand.NewSource(3)))
	for _, dir := range world.AllDirections() {
		for i := 0; i < 100; i++ {
			if got := g.branchDirection(dir); got == dir.Opposite() {
				t.Fatalf("branch from %s heads back %s", dir, got)
			}
		}
	}
}

func TestNew_UnknownName(t *testing.T) {
	if _, err := New("bsp", rand.New(rand.NewSource(1))); err == nil {
		t.Error("New(\"bsp\") returned no error")
	}
	g, err := New("", rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New(\"\"): %v", err)
	}
	if _, ok := g.(*BacktrackerGenerator); !ok {
		t.Errorf("default generator is %T, want *BacktrackerGenerator", g)
	}
}
