package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_OutOfRangeIsBlocked(t *testing.T) {
	g := NewGrid(3, 3, false)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		assert.True(t, g.Blocked(c.X, c.Y), "cell %v should be blocked", c)
	}
	assert.False(t, g.Blocked(1, 1))
}

func TestGrid_SetOutOfRangeIgnored(t *testing.T) {
	g := NewGrid(2, 2, true)

	assert.False(t, g.SetOpen(5, 5))
	assert.Equal(t, 0, g.OpenCount())
	assert.True(t, g.SetOpen(1, 0))
	assert.Equal(t, 1, g.OpenCount())
}

func TestGrid_PlayableAndPerimeter(t *testing.T) {
	g := NewGrid(5, 4, true)

	assert.True(t, g.IsPlayablePosition(1, 1))
	assert.True(t, g.IsPlayablePosition(3, 2))
	assert.False(t, g.IsPlayablePosition(4, 2))
	assert.True(t, g.IsOnPerimeter(0, 0))
	assert.True(t, g.IsOnPerimeter(2, 3))
	assert.False(t, g.IsOnPerimeter(2, 2))
	assert.False(t, g.IsOnPerimeter(-1, 2))
}

func TestGrid_Reachable(t *testing.T) {
	g := NewGrid(5, 5, true)
	// Corridor along row 1 plus an isolated cell at (3,3)
	for x := 1; x <= 3; x++ {
		g.SetOpen(x, 1)
	}
	g.SetOpen(3, 3)

	reached := g.Reachable(Cell{1, 1})
	require.Equal(t, 3, reached.Size())
	assert.True(t, reached.Has(Cell{3, 1}))
	assert.False(t, reached.Has(Cell{3, 3}))

	assert.Equal(t, 0, g.Reachable(Cell{0, 0}).Size())
}

func TestGrid_OpenNeighborsOrder(t *testing.T) {
	g := NewGrid(3, 3, false)
	got := g.OpenNeighbors(Cell{1, 1})
	want := []Cell{{1, 0}, {2, 1}, {1, 2}, {0, 1}}
	assert.Equal(t, want, got)

	corner := g.OpenNeighbors(Cell{0, 0})
	assert.Len(t, corner, 2)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2, true)
	c := g.Clone()
	c.SetOpen(0, 0)
	assert.True(t, g.Blocked(0, 0))
	assert.False(t, c.Blocked(0, 0))
}

func TestGrid_Validate(t *testing.T) {
	g := NewGrid(2, 2, true)
	assert.NotEmpty(t, g.Validate())
	g.SetOpen(0, 0)
	assert.Empty(t, g.Validate())
}

func TestDirection_OppositeAndStep(t *testing.T) {
	for _, d := range AllDirections() {
		c := d.Step(Cell{5, 5}, 2)
		back := d.Opposite().Step(c, 2)
		if back != (Cell{5, 5}) {
			t.Errorf("%s then %s from (5,5) landed on %v", d, d.Opposite(), back)
		}
	}
}

func TestRect_ContainsIsStrict(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 15, 15, true},
		{"left edge", 10, 15, false},
		{"right edge", 30, 15, false},
		{"top edge", 15, 10, false},
		{"bottom edge", 15, 30, false},
		{"outside", 40, 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_OverlapsAndIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges overlap")
	assert.False(t, a.Overlaps(Rect{X: 11, Y: 0, W: 5, H: 5}))

	in, ok := a.Intersect(Rect{X: 5, Y: 5, W: 10, H: 10})
	require.True(t, ok)
	assert.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, in)

	_, ok = a.Intersect(Rect{X: 10, Y: 0, W: 5, H: 5})
	assert.False(t, ok)
}

func TestVector_Normalized(t *testing.T) {
	assert.Equal(t, Vector{}, Vector{}.Normalized())
	n := Vector{X: 3, Y: 4}.Normalized()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 5.0, Point{}.Distance(Point{X: 3, Y: 4}), 1e-9)
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(
		"#.#",
		"...",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 2, g.Rows())
	assert.True(t, g.Blocked(0, 0))
	assert.False(t, g.Blocked(1, 0))
	assert.Equal(t, 4, g.OpenCount())

	_, err = ParseGrid("##", "#")
	assert.Error(t, err)
	_, err = ParseGrid()
	assert.Error(t, err)
}
