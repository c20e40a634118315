package entities

import "wraithmaze/pkg/engine/world"

// Player tuning
const (
	PlayerRadius      = 10.0
	PlayerSpeed       = 1.5
	PlayerSprintSpeed = 3.0
	MaxEnergy         = 100.0

	EnergyDrain     = 0.3 // Per moving tick
	EnergyRegen     = 0.4 // Per idle tick in the open
	EnergyRegenSafe = 1.5 // Per idle tick inside a safe room
)

// Player is the orb steered through the maze
type Player struct {
	Pos         world.Point
	Radius      float64
	Speed       float64
	SprintSpeed float64
	Energy      float64
	MaxEnergy   float64
	Sprinting   bool
}

// NewPlayer creates a player at pos with full energy
func NewPlayer(pos world.Point) *Player {
	return &Player{
		Pos:         pos,
		Radius:      PlayerRadius,
		Speed:       PlayerSpeed,
		SprintSpeed: PlayerSprintSpeed,
		Energy:      MaxEnergy,
		MaxEnergy:   MaxEnergy,
	}
}

// Respawn moves the player to pos and refills its energy
func (p *Player) Respawn(pos world.Point) {
	p.Pos = pos
	p.Energy = p.MaxEnergy
	p.Sprinting = false
}

// Bounds returns the player's bounding box
func (p *Player) Bounds() world.Rect {
	return world.Square(p.Pos, p.Radius*2)
}

// Update advances the player one tick along intent and reports whether it
// ended the tick inside the exit.
//
// Sprinting is decided from the energy held before this tick's drain, so the
// tick that empties the pool still moves at sprint speed.
func (p *Player) Update(intent world.Vector, space Space) bool {
	if intent.IsZero() {
		p.Sprinting = false
		regen := EnergyRegen
		if space.IsInSafeRoom(p.Pos.X, p.Pos.Y) {
			regen = EnergyRegenSafe
		}
		p.Energy = min(p.MaxEnergy, p.Energy+regen)
	} else {
		p.Sprinting = p.Energy > 0
		p.Energy = max(0, p.Energy-EnergyDrain)

		speed := p.Speed
		if p.Sprinting {
			speed = p.SprintSpeed
		}
		p.move(intent.Normalized().Scale(speed), space)
	}

	return space.IsInExit(p.Pos.X, p.Pos.Y)
}

// move applies the horizontal and vertical components independently so the
// player slides along walls.
func (p *Player) move(step world.Vector, space Space) {
	if nx := p.Pos.X + step.X; space.CanOccupy(nx, p.Pos.Y, p.Radius) {
		p.Pos.X = nx
	}
	if ny := p.Pos.Y + step.Y; space.CanOccupy(p.Pos.X, ny, p.Radius) {
		p.Pos.Y = ny
	}
}
