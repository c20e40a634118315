// Package camera tracks the visible part of the world.
package camera

import "wraithmaze/pkg/engine/world"

// Camera is a viewport in world coordinates
type Camera struct {
	X float64
	Y float64
	W float64
	H float64
}

// New creates a camera with a w x h viewport at the world origin
func New(w, h float64) *Camera {
	return &Camera{W: w, H: h}
}

// Resize changes the viewport size, keeping the top-left corner
func (c *Camera) Resize(w, h float64) {
	c.W = w
	c.H = h
}

// Follow centres the viewport on p, clamped so it never shows space past
// the world edges. A world smaller than the viewport pins the camera at 0.
func (c *Camera) Follow(p world.Point, worldW, worldH float64) {
	c.X = clamp(p.X-c.W/2, 0, worldW-c.W)
	c.Y = clamp(p.Y-c.H/2, 0, worldH-c.H)
}

// View returns the viewport rectangle
func (c *Camera) View() world.Rect {
	return world.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// IsInView reports whether r overlaps the viewport
func (c *Camera) IsInView(r world.Rect) bool {
	return c.View().Overlaps(r)
}

// ToScreen converts a world point to viewport coordinates
func (c *Camera) ToScreen(p world.Point) world.Point {
	return world.Point{X: p.X - c.X, Y: p.Y - c.Y}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
