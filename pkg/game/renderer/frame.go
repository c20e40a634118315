// Package renderer defines the drawing and UI surfaces the simulation loop
// talks to, plus the frame recorder and HUD state shared by the backends.
package renderer

import (
	"sync"

	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/camera"
	"wraithmaze/pkg/game/entities"
)

// OpKind is the type of a recorded draw call
type OpKind int

const (
	OpBackground OpKind = iota
	OpWall
	OpZone
	OpPlayer
	OpWraith
)

// Op is one recorded draw call. Actor fields are copied so the frame stays
// valid after the simulation moves on.
type Op struct {
	Kind      OpKind
	Zone      ZoneKind
	Rect      world.Rect
	Pos       world.Point
	Radius    float64
	Sprinting bool    // Player only
	Energy    float64 // Player only, 0..1
	ID        int     // Wraith only
}

// Frame is a complete recorded tick
type Frame struct {
	Camera camera.Camera
	Ops    []Op
}

// Recorder implements Renderer by recording draw calls into a frame.
// Restore publishes the frame; backends read the latest published frame
// when they paint, which keeps painting decoupled from the tick.
type Recorder struct {
	building Frame

	mu     sync.Mutex
	latest Frame
	frames uint64
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear starts a new frame
func (r *Recorder) Clear() {
	r.building = Frame{Ops: r.building.Ops[:0]}
}

// Apply records the camera for this frame
func (r *Recorder) Apply(cam *camera.Camera) {
	r.building.Camera = *cam
}

func (r *Recorder) DrawBackground(rect world.Rect) {
	r.building.Ops = append(r.building.Ops, Op{Kind: OpBackground, Rect: rect})
}

func (r *Recorder) DrawWall(rect world.Rect) {
	r.building.Ops = append(r.building.Ops, Op{Kind: OpWall, Rect: rect})
}

func (r *Recorder) DrawZone(kind ZoneKind, rect world.Rect) {
	r.building.Ops = append(r.building.Ops, Op{Kind: OpZone, Zone: kind, Rect: rect})
}

func (r *Recorder) DrawPlayer(p *entities.Player) {
	energy := 0.0
	if p.MaxEnergy > 0 {
		energy = p.Energy / p.MaxEnergy
	}
	r.building.Ops = append(r.building.Ops, Op{
		Kind:      OpPlayer,
		Rect:      p.Bounds(),
		Pos:       p.Pos,
		Radius:    p.Radius,
		Sprinting: p.Sprinting,
		Energy:    energy,
	})
}

func (r *Recorder) DrawWraith(w *entities.Wraith) {
	r.building.Ops = append(r.building.Ops, Op{
		Kind:   OpWraith,
		Rect:   w.Bounds(),
		Pos:    w.Pos,
		Radius: w.Radius,
		ID:     w.ID,
	})
}

// Restore publishes the frame being built
func (r *Recorder) Restore() {
	ops := make([]Op, len(r.building.Ops))
	copy(ops, r.building.Ops)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = Frame{Camera: r.building.Camera, Ops: ops}
	r.frames++
}

// Latest returns the most recently published frame and how many frames
// have been published so far
func (r *Recorder) Latest() (Frame, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest, r.frames
}
