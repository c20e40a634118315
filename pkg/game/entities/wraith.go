package entities

import (
	"wraithmaze/pkg/engine/world"
)

// WraithRadius is the collision radius of every wraith
const WraithRadius = 15.0

// WraithSpeeds staggers the pack so the wraiths spread out while chasing
var WraithSpeeds = []float64{1.5, 1.3, 1.7}

// Fallback spawn offsets from the maze centre, used when no spawn rooms exist
var fallbackOffsets = []world.Vector{
	{X: -100, Y: 50},
	{X: 100, Y: 50},
	{X: 0, Y: -50},
}

// Wraith pursues the player in a straight line
type Wraith struct {
	ID     int
	Pos    world.Point
	Radius float64
	Speed  float64
}

// NewWraith creates a wraith with the speed for its ID
func NewWraith(id int, pos world.Point) *Wraith {
	return &Wraith{
		ID:     id,
		Pos:    pos,
		Radius: WraithRadius,
		Speed:  WraithSpeeds[id%len(WraithSpeeds)],
	}
}

// Bounds returns the wraith's bounding box
func (w *Wraith) Bounds() world.Rect {
	return world.Square(w.Pos, w.Radius*2)
}

// Step moves the wraith one tick toward target. It holds still while the
// target shelters in a safe room. When the direct move lands in a wall it
// tries the horizontal part alone, then the vertical part alone.
func (w *Wraith) Step(target world.Point, targetSafe bool, space Space) {
	if targetSafe {
		return
	}

	d := target.Sub(w.Pos)
	if d.Len() == 0 {
		return
	}
	v := d.Normalized().Scale(w.Speed)

	for _, next := range []world.Point{
		w.Pos.Add(v),
		{X: w.Pos.X + v.X, Y: w.Pos.Y},
		{X: w.Pos.X, Y: w.Pos.Y + v.Y},
	} {
		if !space.IsBlocked(next.X, next.Y) {
			w.Pos = next
			return
		}
	}
}

// SpawnWraiths places one wraith per spawn room, up to the number of
// configured speeds. With no spawn rooms the wraiths start around the maze centre.
func SpawnWraiths(src SpawnSource) []*Wraith {
	points := src.SpawnPositions()
	if len(points) == 0 {
		c := src.Centre()
		for _, off := range fallbackOffsets {
			points = append(points, c.Add(off))
		}
	}

	n := min(len(points), len(WraithSpeeds))
	wraiths := make([]*Wraith, 0, n)
	for i := 0; i < n; i++ {
		wraiths = append(wraiths, NewWraith(i, points[i]))
	}
	return wraiths
}
