// Package world provides generic 2D world primitives: continuous geometry
// and a boolean passability grid. These are engine-level constructs usable
// by any grid-based game.
package world

import "math"

// Point is a position in world coordinates (pixels).
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by v
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Vector is a direction/magnitude pair in world units.
type Vector struct {
	X float64
	Y float64
}

// IsZero reports whether both components are zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Len returns the length of the vector
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns v multiplied by s
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Normalized returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector) Normalized() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the centre point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether (x, y) lies strictly inside the rectangle.
// Points on the edge are outside.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Overlaps reports whether r and o intersect. Touching edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X && r.Y <= o.Bottom() && r.Bottom() >= o.Y
}

// Intersect returns the overlapping part of r and o, and false when they
// share no area.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Square returns a rectangle of the given side centred on c
func Square(c Point, side float64) Rect {
	return Rect{X: c.X - side/2, Y: c.Y - side/2, W: side, H: side}
}
