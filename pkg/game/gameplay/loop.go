// Package gameplay runs the fixed-rate simulation: it advances the player and
// the wraiths, decides the round outcome, and hands each tick to the renderer
// and UI.
package gameplay

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/camera"
	"wraithmaze/pkg/game/entities"
	"wraithmaze/pkg/game/i18n"
	"wraithmaze/pkg/game/renderer"
	"wraithmaze/pkg/game/state"
)

// TickRate is the number of simulation ticks per second
const TickRate = 60

// ErrHalted is returned by Tick while the loop is stopped after a failure
var ErrHalted = errors.New("simulation halted")

// InputSource supplies the movement intent for a tick
type InputSource interface {
	Intent() world.Vector
}

// ErrorPolicy decides what happens after a tick fails
type ErrorPolicy int

const (
	// PolicyHalt stops the simulation for good
	PolicyHalt ErrorPolicy = iota
	// PolicyRestart waits RestartDelay ticks and then restarts the session
	PolicyRestart
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyHalt:
		return "halt"
	case PolicyRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ParsePolicy converts "halt" or "restart" to an ErrorPolicy
func ParsePolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "halt":
		return PolicyHalt, nil
	case "restart":
		return PolicyRestart, nil
	}
	return PolicyHalt, fmt.Errorf("unknown error policy %q", s)
}

// Options tunes the loop
type Options struct {
	Policy       ErrorPolicy
	RestartDelay int // Ticks to wait before a PolicyRestart recovery
}

// DefaultOptions halts on the first failure
func DefaultOptions() Options {
	return Options{Policy: PolicyHalt, RestartDelay: TickRate}
}

// Loop owns the per-tick update order for one session
type Loop struct {
	session *state.Session
	input   InputSource
	render  renderer.Renderer
	ui      renderer.UI
	cam     *camera.Camera
	opts    Options

	last time.Time
	fps  float64

	halted   bool
	cooldown int
}

// NewLoop wires a session to its input, renderer, UI and camera
func NewLoop(s *state.Session, in InputSource, r renderer.Renderer, ui renderer.UI, cam *camera.Camera, opts Options) *Loop {
	return &Loop{
		session: s,
		input:   in,
		render:  r,
		ui:      ui,
		cam:     cam,
		opts:    opts,
	}
}

// Session returns the session driven by the loop
func (l *Loop) Session() *state.Session {
	return l.session
}

// Halted reports whether the loop is stopped after a failure
func (l *Loop) Halted() bool {
	return l.halted
}

// FPS returns the measured tick rate
func (l *Loop) FPS() float64 {
	return l.fps
}

// Tick runs one simulation step. A failing or panicking step stops the loop;
// later calls return ErrHalted until the error policy allows a restart.
func (l *Loop) Tick(now time.Time) (err error) {
	if l.halted {
		if l.opts.Policy != PolicyRestart {
			return ErrHalted
		}
		l.cooldown--
		if l.cooldown > 0 {
			return ErrHalted
		}
		l.halted = false
		l.session.RequestRestart()
		log.Printf("[LOOP] recovering, restarting session %s", l.session.ID)
	}

	defer func() {
		if r := recover(); r != nil {
			err = l.fail(fmt.Errorf("panic: %v", r))
		}
	}()

	if stepErr := l.step(now); stepErr != nil {
		return l.fail(stepErr)
	}
	return nil
}

func (l *Loop) fail(err error) error {
	l.halted = true
	l.cooldown = l.opts.RestartDelay
	log.Printf("[LOOP] tick %d failed (policy %s): %v", l.session.Ticks, l.opts.Policy, err)
	l.ui.Notify(i18n.T("SIM_HALTED", err))
	return fmt.Errorf("tick %d: %w", l.session.Ticks, err)
}

func (l *Loop) step(now time.Time) error {
	s := l.session

	if s.HasPending() {
		wasOver := s.Outcome.Terminal()
		prev := s.World.Maze
		if err := s.ApplyPending(); err != nil {
			return err
		}
		if wasOver && !s.Outcome.Terminal() {
			l.ui.ShowOutcome(state.Playing, nil)
		}
		if s.World.Maze != prev {
			l.ui.Notify(i18n.T("NEW_MAZE", s.World.Maze.Seed()))
		}
	}

	s.Ticks++
	l.measure(now)

	w := s.World
	if s.Outcome == state.Playing {
		l.simulate(w)
	}

	worldW, worldH := w.Maze.Size()
	l.cam.Follow(w.Player.Pos, worldW, worldH)

	l.ui.UpdateEnergy(w.Player.Energy, w.Player.MaxEnergy)
	if s.Debug {
		l.ui.UpdateDebug(l.snapshot(w))
	}

	l.draw(w)
	return nil
}

// simulate moves the player, then every wraith, then checks the round. A
// catch ends the round even when the player reached the exit on the same tick.
func (l *Loop) simulate(w *state.World) {
	p := w.Player
	escaped := p.Update(l.input.Intent(), w.Maze)
	safe := w.Maze.IsInSafeRoom(p.Pos.X, p.Pos.Y)

	for _, wr := range w.Wraiths {
		wr.Step(p.Pos, safe, w.Maze)
	}

	for _, wr := range w.Wraiths {
		if entities.Caught(p, wr, entities.CatchMargin) {
			l.finish(state.Caught)
			return
		}
	}

	if escaped {
		l.finish(state.Escaped)
	}
}

func (l *Loop) finish(o state.Outcome) {
	s := l.session
	s.Outcome = o
	log.Printf("[LOOP] session %s round %d ended at tick %d: %s", s.ID, s.Rounds, s.Ticks, o)
	l.ui.ShowOutcome(o, s.RequestRestart)
}

// measure keeps a smoothed ticks-per-second figure for the diagnostics overlay
func (l *Loop) measure(now time.Time) {
	if !l.last.IsZero() {
		if dt := now.Sub(l.last).Seconds(); dt > 0 {
			if l.fps == 0 {
				l.fps = 1 / dt
			} else {
				l.fps = l.fps*0.9 + (1/dt)*0.1
			}
		}
	}
	l.last = now
}

func (l *Loop) snapshot(w *state.World) renderer.DebugSnapshot {
	s := l.session
	p := w.Player
	return renderer.DebugSnapshot{
		SessionID:  s.ID.String(),
		Seed:       w.Maze.Seed(),
		Generator:  w.Maze.GeneratorName(),
		Tick:       s.Ticks,
		FPS:        l.fps,
		Player:     p.Pos,
		Energy:     p.Energy,
		Sprinting:  p.Sprinting,
		InSafeRoom: w.Maze.IsInSafeRoom(p.Pos.X, p.Pos.Y),
		Wraiths:    len(w.Wraiths),
		Camera:     l.cam.View(),
	}
}

// draw emits the frame. Anything outside the camera view is skipped.
func (l *Loop) draw(w *state.World) {
	r := l.render
	m := w.Maze

	r.Clear()
	r.Apply(l.cam)
	r.DrawBackground(m.Bounds())

	for _, wall := range m.Walls {
		if l.cam.IsInView(wall) {
			r.DrawWall(wall)
		}
	}

	zone := func(kind renderer.ZoneKind, rect world.Rect) {
		if l.cam.IsInView(rect) {
			r.DrawZone(kind, rect)
		}
	}
	for _, sr := range m.SafeRooms {
		zone(renderer.ZoneSafeRoom, sr)
	}
	zone(renderer.ZoneEntrance, m.Entrance)
	zone(renderer.ZoneExit, m.Exit)
	if l.session.Debug {
		for _, sp := range m.SpawnRooms {
			zone(renderer.ZoneSpawn, m.CellRect(sp.Cell))
		}
	}

	if l.cam.IsInView(w.Player.Bounds()) {
		r.DrawPlayer(w.Player)
	}
	for _, wr := range w.Wraiths {
		if l.cam.IsInView(wr.Bounds()) {
			r.DrawWraith(wr)
		}
	}

	r.Restore()
}
