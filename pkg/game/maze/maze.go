// Package maze builds playable mazes from carved grids and answers the
// spatial queries the simulation needs: wall tests, bounding-box occupancy
// and zone containment. A Maze is immutable once built; a new layout means
// a new Maze.
package maze

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"

	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/generator"
)

// SpawnRoom is a cell designated as a wraith spawn point
type SpawnRoom struct {
	ID   int
	Cell world.Cell
}

// Maze is one generated layout plus its derived world geometry.
type Maze struct {
	grid     *world.Grid
	cellSize float64
	offset   world.Point
	worldW   float64
	worldH   float64

	seed      int64
	generator string

	Walls      []world.Rect
	Entrance   world.Rect
	Exit       world.Rect
	SafeRooms  []world.Rect
	SpawnRooms []SpawnRoom

	safeRoomCells []world.Cell
}

// Generate carves a new maze with the configured generator, seeded with seed
func Generate(cfg Config, seed int64) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen, err := generator.New(cfg.Generator, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	grid, err := gen.Generate(cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		return nil, fmt.Errorf("generate grid: %w", err)
	}

	openEntranceAndExit(grid)
	spawns := openSpawnRooms(grid)

	m := build(grid, cfg)
	m.seed = seed
	m.generator = gen.Name()
	m.SpawnRooms = spawns

	log.Printf("[MAZE] generated %dx%d maze with %s (seed %d): %d wall tiles, %d safe rooms, %d spawn rooms",
		cfg.GridWidth, cfg.GridHeight, m.generator, seed, len(m.Walls), len(m.SafeRooms), len(m.SpawnRooms))

	return m, nil
}

// FromGrid derives maze geometry from an existing grid without carving
// anything. The grid is copied. Mazes built this way have no spawn rooms.
func FromGrid(grid *world.Grid, cfg Config) (*Maze, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfig)
	}
	if msg := grid.Validate(); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
	}
	cfg.GridWidth = grid.Cols()
	cfg.GridHeight = grid.Rows()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := build(grid.Clone(), cfg)
	m.generator = "Fixed Grid"
	return m, nil
}

// openEntranceAndExit carves the centre column openings and splices them to the body
func openEntranceAndExit(grid *world.Grid) {
	cx, _ := grid.CenterPosition()
	rows := grid.Rows()

	grid.SetOpen(cx, 0)
	grid.SetOpen(cx, rows-1)

	grid.SetOpen(cx, 1)
	grid.SetOpen(cx, rows-2)
	if rows > 3 {
		grid.SetOpen(cx, 2)
		grid.SetOpen(cx, rows-3)
	}
}

// openSpawnRooms forces the three spawn cells open. Their connectivity to the
// carved body is not re-checked. Cells that fall outside the playable area
// on very small grids are skipped.
func openSpawnRooms(grid *world.Grid) []SpawnRoom {
	cols, rows := grid.Cols(), grid.Rows()
	cells := []world.Cell{
		{X: 2, Y: 2},
		{X: cols - 3, Y: 2},
		{X: cols - 3, Y: rows - 3},
	}

	var rooms []SpawnRoom
	for id, c := range cells {
		if !grid.IsPlayablePosition(c.X, c.Y) {
			continue
		}
		grid.SetOpen(c.X, c.Y)
		rooms = append(rooms, SpawnRoom{ID: id, Cell: c})
	}
	return rooms
}

func build(grid *world.Grid, cfg Config) *Maze {
	m := &Maze{
		grid:     grid,
		cellSize: cfg.CellSize,
		worldW:   cfg.WorldWidth,
		worldH:   cfg.WorldHeight,
	}
	mazeW := float64(grid.Cols()) * cfg.CellSize
	mazeH := float64(grid.Rows()) * cfg.CellSize
	m.offset = world.Point{
		X: (cfg.WorldWidth - mazeW) / 2,
		Y: (cfg.WorldHeight - mazeH) / 2,
	}

	cx, _ := grid.CenterPosition()
	x := m.offset.X + float64(cx)*cfg.CellSize
	h := cfg.EntranceHeight
	if h == 0 {
		h = cfg.CellSize
	}
	m.Entrance = world.Rect{X: x, Y: m.offset.Y - h/2, W: cfg.CellSize, H: h}
	m.Exit = world.Rect{X: x, Y: m.offset.Y + mazeH - h/2, W: cfg.CellSize, H: h}

	m.Walls = m.tileWalls(cfg.WallTile)
	m.placeSafeRooms()

	return m
}

// tileWalls covers every blocked cell with square tiles laid from the cell
// origin. Tiles are clipped at the cell edge.
func (m *Maze) tileWalls(tile float64) []world.Rect {
	var walls []world.Rect
	m.grid.ForEachCell(func(x, y int, blocked bool) {
		if !blocked {
			return
		}
		cell := m.CellRect(world.Cell{X: x, Y: y})
		for ty := cell.Y; ty < cell.Bottom(); ty += tile {
			for tx := cell.X; tx < cell.Right(); tx += tile {
				if r, ok := cell.Intersect(world.Rect{X: tx, Y: ty, W: tile, H: tile}); ok {
					walls = append(walls, r)
				}
			}
		}
	})
	return walls
}

// DeadEnds returns the interior open cells with exactly one open neighbour, sorted by row
func (m *Maze) DeadEnds() []world.Cell {
	var ends []world.Cell
	m.grid.ForEachCell(func(x, y int, blocked bool) {
		if blocked || !m.grid.IsPlayablePosition(x, y) {
			return
		}
		c := world.Cell{X: x, Y: y}
		if len(m.grid.OpenNeighbors(c)) == 1 {
			ends = append(ends, c)
		}
	})
	sort.SliceStable(ends, func(i, j int) bool { return ends[i].Y < ends[j].Y })
	return ends
}

// placeSafeRooms picks dead ends at 20%, 50% and 80% of the row-sorted list.
// Coinciding picks produce a single room.
func (m *Maze) placeSafeRooms() {
	ends := m.DeadEnds()
	if len(ends) == 0 {
		return
	}

	seen := make(map[int]bool)
	side := m.cellSize * SafeRoomScale
	for _, frac := range []float64{0.2, 0.5, 0.8} {
		i := int(float64(len(ends)) * frac)
		if seen[i] {
			continue
		}
		seen[i] = true
		c := ends[i]
		m.safeRoomCells = append(m.safeRoomCells, c)
		m.SafeRooms = append(m.SafeRooms, world.Square(m.CellRect(c).Center(), side))
	}
}

// Grid returns a copy of the underlying grid
func (m *Maze) Grid() *world.Grid {
	return m.grid.Clone()
}

// CellSize returns the side of one grid cell in world units
func (m *Maze) CellSize() float64 {
	return m.cellSize
}

// Offset returns the world position of the grid's top-left corner
func (m *Maze) Offset() world.Point {
	return m.offset
}

// Seed returns the seed the maze was generated from
func (m *Maze) Seed() int64 {
	return m.seed
}

// GeneratorName returns the name of the algorithm that carved the maze
func (m *Maze) GeneratorName() string {
	return m.generator
}

// Bounds returns the world rectangle
func (m *Maze) Bounds() world.Rect {
	return world.Rect{W: m.worldW, H: m.worldH}
}

// Size returns the world width and height
func (m *Maze) Size() (float64, float64) {
	return m.worldW, m.worldH
}

// Centre returns the centre of the maze area
func (m *Maze) Centre() world.Point {
	return world.Point{
		X: m.offset.X + float64(m.grid.Cols())*m.cellSize/2,
		Y: m.offset.Y + float64(m.grid.Rows())*m.cellSize/2,
	}
}

// CellRect returns the world rectangle covered by a grid cell
func (m *Maze) CellRect(c world.Cell) world.Rect {
	return world.Rect{
		X: m.offset.X + float64(c.X)*m.cellSize,
		Y: m.offset.Y + float64(c.Y)*m.cellSize,
		W: m.cellSize,
		H: m.cellSize,
	}
}

// SafeRoomCells returns the cells that hold safe rooms
func (m *Maze) SafeRoomCells() []world.Cell {
	return append([]world.Cell(nil), m.safeRoomCells...)
}

// Symbol returns the dump character for a cell
func (m *Maze) Symbol(c world.Cell) rune {
	cx, _ := m.grid.CenterPosition()
	switch {
	case c.X == cx && c.Y == 0 && !m.grid.Blocked(c.X, c.Y):
		return 'E'
	case c.X == cx && c.Y == m.grid.Rows()-1 && !m.grid.Blocked(c.X, c.Y):
		return 'X'
	case m.grid.Blocked(c.X, c.Y):
		return '#'
	}
	for _, s := range m.safeRoomCells {
		if s == c {
			return 'S'
		}
	}
	for _, s := range m.SpawnRooms {
		if s.Cell == c {
			return 'W'
		}
	}
	return '.'
}

// String returns an ASCII dump of the grid, one row per line
func (m *Maze) String() string {
	var sb strings.Builder
	for y := 0; y < m.grid.Rows(); y++ {
		for x := 0; x < m.grid.Cols(); x++ {
			sb.WriteRune(m.Symbol(world.Cell{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
