package renderer

import (
	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/camera"
	"wraithmaze/pkg/game/entities"
	"wraithmaze/pkg/game/state"
)

// ZoneKind identifies the non-wall areas drawn on the map
type ZoneKind int

const (
	ZoneSafeRoom ZoneKind = iota
	ZoneEntrance
	ZoneExit
	ZoneSpawn // Only drawn with diagnostics on
)

// String returns the zone name
func (z ZoneKind) String() string {
	switch z {
	case ZoneSafeRoom:
		return "SafeRoom"
	case ZoneEntrance:
		return "Entrance"
	case ZoneExit:
		return "Exit"
	case ZoneSpawn:
		return "Spawn"
	default:
		return "Unknown"
	}
}

// Renderer receives the draw calls for one tick, always in the order
// Clear, Apply, DrawBackground, walls and zones, player, wraiths, Restore.
// Coordinates are world coordinates; Apply supplies the camera to map them.
type Renderer interface {
	// Clear starts a new frame
	Clear()

	// Apply sets the camera transform for the following draw calls
	Apply(cam *camera.Camera)

	DrawBackground(r world.Rect)
	DrawWall(r world.Rect)
	DrawZone(kind ZoneKind, r world.Rect)
	DrawPlayer(p *entities.Player)
	DrawWraith(w *entities.Wraith)

	// Restore ends the frame and drops the camera transform
	Restore()
}

// DebugSnapshot is the diagnostics overlay content for one tick
type DebugSnapshot struct {
	SessionID  string
	Seed       int64
	Generator  string
	Tick       uint64
	FPS        float64
	Player     world.Point
	Energy     float64
	Sprinting  bool
	InSafeRoom bool
	Wraiths    int
	Camera     world.Rect
}

// UI is the on-screen feedback surface outside the map
type UI interface {
	// UpdateEnergy is called every tick
	UpdateEnergy(energy, maxEnergy float64)

	// UpdateDebug is called every tick while diagnostics are on
	UpdateDebug(d DebugSnapshot)

	// ShowOutcome is called once when a round ends, with a function that
	// restarts the session. ShowOutcome(state.Playing, nil) hides the overlay.
	ShowOutcome(o state.Outcome, restart func())

	// Notify shows a short transient message
	Notify(msg string)
}
