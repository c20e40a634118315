package maze

import (
	"math"

	"wraithmaze/pkg/engine/world"
)

// CellAt converts a world position to the grid cell containing it.
// The result may lie outside the grid.
func (m *Maze) CellAt(x, y float64) world.Cell {
	return world.Cell{
		X: int(math.Floor((x - m.offset.X) / m.cellSize)),
		Y: int(math.Floor((y - m.offset.Y) / m.cellSize)),
	}
}

// IsBlocked reports whether the world position falls in a wall cell or outside the grid
func (m *Maze) IsBlocked(x, y float64) bool {
	c := m.CellAt(x, y)
	return m.grid.Blocked(c.X, c.Y)
}

// CanOccupy reports whether a body of half-extent r centred at (x, y) fits:
// it must stay inside the world and none of its four bounding-box corners
// may be blocked.
func (m *Maze) CanOccupy(x, y, r float64) bool {
	if x < r || x > m.worldW-r || y < r || y > m.worldH-r {
		return false
	}
	return !m.IsBlocked(x-r, y-r) &&
		!m.IsBlocked(x+r, y-r) &&
		!m.IsBlocked(x-r, y+r) &&
		!m.IsBlocked(x+r, y+r)
}

// IsInSafeRoom reports whether the point is strictly inside any safe room
func (m *Maze) IsInSafeRoom(x, y float64) bool {
	for _, r := range m.SafeRooms {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// IsInExit reports whether the point is strictly inside the exit zone
func (m *Maze) IsInExit(x, y float64) bool {
	return m.Exit.Contains(x, y)
}

// StartPosition returns the player's starting point: entrance column, first row of the maze
func (m *Maze) StartPosition() world.Point {
	return world.Point{
		X: m.Entrance.X + m.Entrance.W/2,
		Y: m.offset.Y + m.cellSize/2,
	}
}

// SpawnPositions returns the world centres of the spawn rooms in ID order
func (m *Maze) SpawnPositions() []world.Point {
	pts := make([]world.Point, 0, len(m.SpawnRooms))
	for _, s := range m.SpawnRooms {
		pts = append(pts, m.CellRect(s.Cell).Center())
	}
	return pts
}
