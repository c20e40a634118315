// Package entities holds the moving actors of the maze: the player and the
// wraiths that hunt it.
package entities

import "wraithmaze/pkg/engine/world"

// Space is the spatial query surface actors move through.
// *maze.Maze implements it.
type Space interface {
	IsBlocked(x, y float64) bool
	CanOccupy(x, y, r float64) bool
	IsInSafeRoom(x, y float64) bool
	IsInExit(x, y float64) bool
}

// SpawnSource supplies wraith spawn points
type SpawnSource interface {
	SpawnPositions() []world.Point
	Centre() world.Point
}

// CatchMargin is added to the summed radii when testing for a catch
const CatchMargin = 12.0

// Caught reports whether the wraith is close enough to catch the player
func Caught(p *Player, w *Wraith, margin float64) bool {
	return p.Pos.Distance(w.Pos) < p.Radius+w.Radius+margin
}
