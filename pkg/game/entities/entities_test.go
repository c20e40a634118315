package entities

import (
	"math"
	"testing"

	"wraithmaze/pkg/engine/world"
)

// fakeSpace answers spatial queries from plain predicates
type fakeSpace struct {
	blocked func(x, y float64) bool
	safe    bool
	exit    world.Rect
}

func (f *fakeSpace) IsBlocked(x, y float64) bool {
	if f.blocked == nil {
		return false
	}
	return f.blocked(x, y)
}

func (f *fakeSpace) CanOccupy(x, y, r float64) bool {
	return !f.IsBlocked(x-r, y-r) && !f.IsBlocked(x+r, y-r) &&
		!f.IsBlocked(x-r, y+r) && !f.IsBlocked(x+r, y+r)
}

func (f *fakeSpace) IsInSafeRoom(x, y float64) bool { return f.safe }

func (f *fakeSpace) IsInExit(x, y float64) bool { return f.exit.Contains(x, y) }

type fakeSpawns struct {
	points []world.Point
	centre world.Point
}

func (f fakeSpawns) SpawnPositions() []world.Point { return f.points }
func (f fakeSpawns) Centre() world.Point          { return f.centre }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPlayer_EnergyStaysInRange(t *testing.T) {
	space := &fakeSpace{}
	p := NewPlayer(world.Point{X: 0, Y: 0})

	for i := 0; i < 1000; i++ {
		p.Update(world.Vector{X: 1}, space)
		if p.Energy < 0 || p.Energy > p.MaxEnergy {
			t.Fatalf("tick %d: energy %v out of range", i, p.Energy)
		}
	}
	if p.Energy != 0 {
		t.Errorf("energy after long sprint = %v, want 0", p.Energy)
	}

	for i := 0; i < 1000; i++ {
		p.Update(world.Vector{}, space)
		if p.Energy < 0 || p.Energy > p.MaxEnergy {
			t.Fatalf("idle tick %d: energy %v out of range", i, p.Energy)
		}
	}
	if p.Energy != p.MaxEnergy {
		t.Errorf("energy after long rest = %v, want %v", p.Energy, p.MaxEnergy)
	}
}

func TestPlayer_RegenRates(t *testing.T) {
	tests := []struct {
		name string
		safe bool
		want float64
	}{
		{"open maze", false, 50.4},
		{"safe room", true, 51.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(world.Point{})
			p.Energy = 50
			p.Update(world.Vector{}, &fakeSpace{safe: tt.safe})
			if !approx(p.Energy, tt.want) {
				t.Errorf("energy = %v, want %v", p.Energy, tt.want)
			}
			if p.Sprinting {
				t.Error("idle player reports sprinting")
			}
		})
	}
}

func TestPlayer_SprintGraceTick(t *testing.T) {
	space := &fakeSpace{}
	p := NewPlayer(world.Point{X: 100, Y: 100})
	p.Energy = 0.2

	p.Update(world.Vector{X: 1}, space)
	if !p.Sprinting || !approx(p.Pos.X, 103) || p.Energy != 0 {
		t.Fatalf("draining tick: sprinting=%v x=%v energy=%v, want true 103 0", p.Sprinting, p.Pos.X, p.Energy)
	}

	p.Update(world.Vector{X: 1}, space)
	if p.Sprinting || !approx(p.Pos.X, 104.5) {
		t.Errorf("empty tick: sprinting=%v x=%v, want false 104.5", p.Sprinting, p.Pos.X)
	}
}

func TestPlayer_DiagonalIsNormalised(t *testing.T) {
	p := NewPlayer(world.Point{X: 100, Y: 100})
	p.Update(world.Vector{X: 1, Y: 1}, &fakeSpace{})

	moved := p.Pos.Distance(world.Point{X: 100, Y: 100})
	if !approx(moved, PlayerSprintSpeed) {
		t.Errorf("diagonal step length = %v, want %v", moved, PlayerSprintSpeed)
	}
}

func TestPlayer_SlidesAlongWall(t *testing.T) {
	// Wall occupies everything below y = 112
	space := &fakeSpace{blocked: func(x, y float64) bool { return y >= 112 }}
	p := NewPlayer(world.Point{X: 100, Y: 100})

	p.Update(world.Vector{X: 1, Y: 1}, space)

	step := PlayerSprintSpeed / math.Sqrt2
	if !approx(p.Pos.X, 100+step) {
		t.Errorf("x = %v, want %v (horizontal part should apply)", p.Pos.X, 100+step)
	}
	if p.Pos.Y != 100 {
		t.Errorf("y = %v, want 100 (vertical part blocked)", p.Pos.Y)
	}
}

func TestPlayer_VerticalMoveUsesUpdatedX(t *testing.T) {
	// Only the column x in [100,110) is blocked below y = 100. From x=95 the
	// right corners sit in that column, so the vertical part succeeds only
	// because the horizontal part has already moved the player left.
	space := &fakeSpace{blocked: func(x, y float64) bool { return y > 100 && x >= 100 && x < 110 }}
	p := NewPlayer(world.Point{X: 95, Y: 85})
	p.Speed, p.SprintSpeed = 20, 20

	p.Update(world.Vector{X: -1, Y: 1}, space)

	step := 20 / math.Sqrt2
	if !approx(p.Pos.X, 95-step) || !approx(p.Pos.Y, 85+step) {
		t.Errorf("pos = %v, want (%v, %v)", p.Pos, 95-step, 85+step)
	}
}

func TestPlayer_ReportsExit(t *testing.T) {
	space := &fakeSpace{exit: world.Rect{X: 90, Y: 102, W: 20, H: 20}}
	p := NewPlayer(world.Point{X: 100, Y: 100})

	if p.Update(world.Vector{}, space) {
		t.Error("idle player outside exit reported exit")
	}
	if !p.Update(world.Vector{Y: 1}, space) {
		t.Errorf("player at %v should be inside exit", p.Pos)
	}
}

func TestWraith_HoldsWhileTargetSafe(t *testing.T) {
	w := NewWraith(0, world.Point{X: 0, Y: 0})
	w.Step(world.Point{X: 100, Y: 0}, true, &fakeSpace{})
	if w.Pos != (world.Point{}) {
		t.Errorf("wraith moved to %v while target was safe", w.Pos)
	}
}

func TestWraith_DirectPursuit(t *testing.T) {
	w := NewWraith(0, world.Point{X: 0, Y: 0})
	w.Step(world.Point{X: 30, Y: 40}, false, &fakeSpace{})
	if !approx(w.Pos.X, 0.9) || !approx(w.Pos.Y, 1.2) {
		t.Errorf("pos = %v, want (0.9, 1.2)", w.Pos)
	}
}

func TestWraith_ZeroDistanceStays(t *testing.T) {
	w := NewWraith(1, world.Point{X: 5, Y: 5})
	w.Step(world.Point{X: 5, Y: 5}, false, &fakeSpace{})
	if w.Pos != (world.Point{X: 5, Y: 5}) {
		t.Errorf("pos = %v, want (5,5)", w.Pos)
	}
}

func TestWraith_AxisFallback(t *testing.T) {
	target := world.Point{X: 30, Y: 40}
	tests := []struct {
		name    string
		blocked func(x, y float64) bool
		want    world.Point
	}{
		{
			name:    "diagonal blocked, x only",
			blocked: func(x, y float64) bool { return y > 0 },
			want:    world.Point{X: 0.9, Y: 0},
		},
		{
			name:    "x blocked too, y only",
			blocked: func(x, y float64) bool { return x > 0 },
			want:    world.Point{X: 0, Y: 1.2},
		},
		{
			name:    "everything blocked",
			blocked: func(x, y float64) bool { return x > 0 || y > 0 },
			want:    world.Point{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWraith(0, world.Point{})
			w.Step(target, false, &fakeSpace{blocked: tt.blocked})
			if !approx(w.Pos.X, tt.want.X) || !approx(w.Pos.Y, tt.want.Y) {
				t.Errorf("pos = %v, want %v", w.Pos, tt.want)
			}
		})
	}
}

func TestCaught_Threshold(t *testing.T) {
	p := NewPlayer(world.Point{})
	tests := []struct {
		dist float64
		want bool
	}{
		{0, true},
		{36.9, true},
		{37, false},
		{37.1, false},
	}
	for _, tt := range tests {
		w := NewWraith(0, world.Point{X: tt.dist})
		if got := Caught(p, w, CatchMargin); got != tt.want {
			t.Errorf("Caught at distance %v = %v, want %v", tt.dist, got, tt.want)
		}
	}
}

func TestSpawnWraiths_UsesSpawnRooms(t *testing.T) {
	src := fakeSpawns{points: []world.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}}
	ws := SpawnWraiths(src)
	if len(ws) != 3 {
		t.Fatalf("got %d wraiths, want 3", len(ws))
	}
	for i, w := range ws {
		if w.ID != i || w.Speed != WraithSpeeds[i] || w.Pos != src.points[i] {
			t.Errorf("wraith %d = %+v", i, w)
		}
	}
}

func TestSpawnWraiths_FallbackAroundCentre(t *testing.T) {
	ws := SpawnWraiths(fakeSpawns{centre: world.Point{X: 500, Y: 400}})
	want := []world.Point{{X: 400, Y: 450}, {X: 600, Y: 450}, {X: 500, Y: 350}}
	if len(ws) != len(want) {
		t.Fatalf("got %d wraiths, want %d", len(ws), len(want))
	}
	for i, w := range ws {
		if w.Pos != want[i] {
			t.Errorf("wraith %d at %v, want %v", i, w.Pos, want[i])
		}
	}
}

func TestSpawnWraiths_FewerRoomsFewerWraiths(t *testing.T) {
	ws := SpawnWraiths(fakeSpawns{points: []world.Point{{X: 1, Y: 1}}})
	if len(ws) != 1 {
		t.Errorf("got %d wraiths, want 1", len(ws))
	}
}
