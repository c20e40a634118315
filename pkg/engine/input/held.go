package input

import (
	"math"
	"time"

	"github.com/zyedidia/generic/mapset"

	"wraithmaze/pkg/engine/world"
)

// StickDeadzone is the analog magnitude below which stick input is ignored
const StickDeadzone = 0.2

// State tracks which movement actions are held and the analog stick.
// Backends that only see key presses (terminals) can give each press a
// hold duration instead of waiting for a release.
type State struct {
	held    mapset.Set[Action]
	expires map[Action]time.Time
	stick   world.Vector
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		held:    mapset.New[Action](),
		expires: make(map[Action]time.Time),
	}
}

// Press marks a movement action as held until Release
func (s *State) Press(a Action) {
	if !a.IsMovement() {
		return
	}
	s.held.Put(a)
	delete(s.expires, a)
}

// PressFor marks a movement action as held until now+d
func (s *State) PressFor(a Action, now time.Time, d time.Duration) {
	if !a.IsMovement() {
		return
	}
	s.held.Put(a)
	s.expires[a] = now.Add(d)
}

// Release clears a held action
func (s *State) Release(a Action) {
	s.held.Remove(a)
	delete(s.expires, a)
}

// Expire releases timed presses whose hold has run out
func (s *State) Expire(now time.Time) {
	for a, at := range s.expires {
		if !now.Before(at) {
			s.Release(a)
		}
	}
}

// Reset releases everything
func (s *State) Reset() {
	s.held = mapset.New[Action]()
	s.expires = make(map[Action]time.Time)
	s.stick = world.Vector{}
}

// SetStick records the analog stick position, each axis in [-1, 1]
func (s *State) SetStick(v world.Vector) {
	s.stick = v
}

// Held reports whether a movement action is currently held
func (s *State) Held(a Action) bool {
	return s.held.Has(a)
}

// Intent adds the held directions to the stick and clamps each axis to
// [-1, 1]. A stick inside the deadzone contributes nothing. The result is
// not normalised.
func (s *State) Intent() world.Vector {
	var v world.Vector
	if s.held.Has(ActionMoveLeft) {
		v.X--
	}
	if s.held.Has(ActionMoveRight) {
		v.X++
	}
	if s.held.Has(ActionMoveUp) {
		v.Y--
	}
	if s.held.Has(ActionMoveDown) {
		v.Y++
	}

	if s.stick.Len() >= StickDeadzone {
		v.X += s.stick.X
		v.Y += s.stick.Y
	}
	return world.Vector{X: clampAxis(v.X), Y: clampAxis(v.Y)}
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
