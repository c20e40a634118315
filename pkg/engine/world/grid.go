package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Cell addresses a grid square by column (X) and row (Y).
type Cell struct {
	X int
	Y int
}

// String returns the "x:y" form used in logs and dumps
func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// CellSet is a set of grid cells
type CellSet = mapset.Set[Cell]

// Grid is a rectangular passability map. A true cell is blocked.
// Every position outside the grid is treated as blocked.
type Grid struct {
	blocked []bool
	cols    int
	rows    int
}

// NewGrid creates a cols x rows grid with every cell blocked or every cell open
func NewGrid(cols, rows int, blocked bool) *Grid {
	g := &Grid{}
	g.Build(cols, rows, blocked)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(cols, rows int, blocked bool) {
	if cols <= 0 || rows <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.cols = cols
	g.rows = rows
	g.blocked = make([]bool, cols*rows)
	if blocked {
		for i := range g.blocked {
			g.blocked[i] = true
		}
	}
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// IsValidPosition checks if a column/row position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// IsPlayablePosition checks if a position is inside the one-cell border ring
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.cols-1 && y >= 1 && y < g.rows-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// Blocked reports whether a cell is blocked. Out-of-range cells are blocked.
func (g *Grid) Blocked(x, y int) bool {
	if !g.IsValidPosition(x, y) {
		return true
	}
	return g.blocked[y*g.cols+x]
}

// SetOpen opens a cell. Returns false if out of bounds.
func (g *Grid) SetOpen(x, y int) bool {
	return g.set(x, y, false)
}

// SetBlocked blocks a cell. Returns false if out of bounds.
func (g *Grid) SetBlocked(x, y int) bool {
	return g.set(x, y, true)
}

func (g *Grid) set(x, y int, blocked bool) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.blocked[y*g.cols+x] = blocked
	return true
}

// CenterPosition returns the column and row of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.cols / 2, g.rows / 2
}

// OpenNeighbors returns the open orthogonal neighbours of a cell, in
// North, East, South, West order
func (g *Grid) OpenNeighbors(c Cell) []Cell {
	var out []Cell
	for _, dir := range AllDirections() {
		n := dir.Step(c, 1)
		if !g.Blocked(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// ForEachCell iterates over all cells row by row, calling fn with each position and its state
func (g *Grid) ForEachCell(fn func(x, y int, blocked bool)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			fn(x, y, g.blocked[y*g.cols+x])
		}
	}
}

// OpenCount returns the number of open cells
func (g *Grid) OpenCount() int {
	n := 0
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}
	return n
}

// Reachable returns every open cell connected to start through orthogonal
// moves. A blocked start yields an empty set.
func (g *Grid) Reachable(start Cell) CellSet {
	visited := mapset.New[Cell]()
	if g.Blocked(start.X, start.Y) {
		return visited
	}

	q := queue.New[Cell]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, n := range g.OpenNeighbors(current) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}

	return visited
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, blocked: make([]bool, len(g.blocked))}
	copy(c.blocked, g.blocked)
	return c
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	if len(g.blocked) != g.rows*g.cols {
		return "Grid storage does not match its dimensions"
	}

	if g.OpenCount() == 0 {
		return "Grid has no open cells"
	}

	return ""
}

// ParseGrid builds a grid from text rows where '#' is blocked and any other
// character is open. All rows must have the same length.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty grid layout")
	}

	g := NewGrid(len(lines[0]), len(lines), false)
	for y, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", y, len(line), g.cols)
		}
		for x := 0; x < len(line); x++ {
			if line[x] == '#' {
				g.SetBlocked(x, y)
			}
		}
	}
	return g, nil
}
