// Package tui provides a tcell-based terminal backend. Each terminal column
// shows 10 world units and each row 20, so the maze keeps roughly its shape.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	engineinput "wraithmaze/pkg/engine/input"
	"wraithmaze/pkg/engine/terminal"
	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/camera"
	"wraithmaze/pkg/game/gameplay"
	"wraithmaze/pkg/game/i18n"
	"wraithmaze/pkg/game/renderer"
	"wraithmaze/pkg/game/state"
)

// World units per terminal cell
const (
	UnitsPerCol = 10.0
	UnitsPerRow = 20.0
)

// Terminals only report key presses, so a press counts as held for this long.
// It has to outlast the keyboard repeat delay.
const holdDuration = 150 * time.Millisecond

// hudRows are reserved at the top of the screen
const hudRows = 1

// terminalSize reports the tty size when the screen has none
var terminalSize = terminal.GetSize

// Icons
const (
	IconWall   = '█'
	IconFloor  = ' '
	IconZone   = '░'
	IconPlayer = '@'
	IconWraith = 'W'
)

var (
	colorFloor = tcell.NewRGBColor(26, 26, 46)

	styleFloor   = tcell.StyleDefault.Background(colorFloor)
	styleWall    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 120)).Background(colorFloor)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(colorFloor).Bold(true)
	styleSprint  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(colorFloor).Bold(true)
	styleWraith  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Background(colorFloor).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 210, 245))
	styleEnergy  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleLow     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEscaped = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleCaught  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDebug   = tcell.StyleDefault.Foreground(tcell.ColorGray)

	zoneStyles = map[renderer.ZoneKind]tcell.Style{
		renderer.ZoneSafeRoom: tcell.StyleDefault.Foreground(tcell.ColorTeal).Background(colorFloor),
		renderer.ZoneEntrance: tcell.StyleDefault.Foreground(tcell.ColorSlateBlue).Background(colorFloor),
		renderer.ZoneExit:     tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(colorFloor),
		renderer.ZoneSpawn:    tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(colorFloor),
	}
)

// TUIRenderer is the terminal backend
type TUIRenderer struct {
	screen tcell.Screen

	loop   *gameplay.Loop
	frames *renderer.Recorder
	hud    *renderer.HUD
	cam    *camera.Camera
	input  *engineinput.State

	width  int
	height int
}

// New opens the terminal screen. frames, hud and cam must be the ones the loop was built with.
func New(loop *gameplay.Loop, frames *renderer.Recorder, hud *renderer.HUD, cam *camera.Camera, in *engineinput.State) (*TUIRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	t := &TUIRenderer{
		screen: screen,
		loop:   loop,
		frames: frames,
		hud:    hud,
		cam:    cam,
		input:  in,
	}
	t.resize()
	return t, nil
}

// Run drives the simulation at the tick rate until the player quits or ctx ends
func (t *TUIRenderer) Run(ctx context.Context) error {
	defer t.screen.Fini()

	ticker := time.NewTicker(time.Second / gameplay.TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if t.handleEvent(ev, time.Now()) {
				log.Printf("[TUI] quit")
				return nil
			}

		case now := <-ticker.C:
			t.input.Expire(now)
			if err := t.loop.Tick(now); err != nil && !errors.Is(err, gameplay.ErrHalted) {
				log.Printf("[TUI] %v", err)
			}
			t.draw()
		}
	}
}

// resize sizes the camera to the part of the terminal below the HUD. Some
// terminals report no size until the first resize event; the tty size is
// used until then.
func (t *TUIRenderer) resize() {
	t.width, t.height = screenSize(t.screen.Size())
	t.cam.Resize(float64(t.width)*UnitsPerCol, float64(max(0, t.height-hudRows))*UnitsPerRow)
}

// handleEvent processes one terminal event and reports whether to quit
func (t *TUIRenderer) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		code := keyCode(ev)
		if code == "" {
			return false
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceTerminal,
			Code:      code,
			Timestamp: now,
		}))
		if intent.Action.IsMovement() {
			t.input.PressFor(intent.Action, now, holdDuration)
			return false
		}
		if intent.Action == engineinput.ActionConfirm && t.hud.Restart() {
			return false
		}
		return t.loop.ProcessIntent(intent)
	}
	return false
}

// keyCode converts a tcell key event to a binding code
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyF1:
		return "f1"
	case tcell.KeyF2:
		return "f2"
	case tcell.KeyF3:
		return "f3"
	case tcell.KeyCtrlR:
		return "ctrl+r"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return string(ev.Rune())
	}
	return ""
}

func screenSize(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return terminalSize()
	}
	return w, h
}

// cellSpan converts a world rectangle to the terminal columns and rows it covers
func (t *TUIRenderer) cellSpan(cam *camera.Camera, r world.Rect) (x0, y0, x1, y1 int) {
	p := cam.ToScreen(world.Point{X: r.X, Y: r.Y})
	x0 = int(math.Floor(p.X / UnitsPerCol))
	y0 = int(math.Floor(p.Y/UnitsPerRow)) + hudRows
	x1 = int(math.Ceil((p.X+r.W)/UnitsPerCol)) - 1
	y1 = int(math.Ceil((p.Y+r.H)/UnitsPerRow)) - 1 + hudRows
	return x0, y0, x1, y1
}

func (t *TUIRenderer) fill(cam *camera.Camera, r world.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := t.cellSpan(cam, r)
	for y := max(y0, hudRows); y <= min(y1, t.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, t.width-1); x++ {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (t *TUIRenderer) point(cam *camera.Camera, p world.Point, ch rune, style tcell.Style) {
	s := cam.ToScreen(p)
	x := int(math.Floor(s.X / UnitsPerCol))
	y := int(math.Floor(s.Y/UnitsPerRow)) + hudRows
	if x >= 0 && x < t.width && y >= hudRows && y < t.height {
		t.screen.SetContent(x, y, ch, nil, style)
	}
}

func (t *TUIRenderer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= t.width {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *TUIRenderer) centred(y int, s string, style tcell.Style) {
	t.text(max(0, (t.width-len([]rune(s)))/2), y, s, style)
}

func (t *TUIRenderer) draw() {
	t.screen.Clear()

	frame, n := t.frames.Latest()
	if n > 0 {
		cam := &frame.Camera
		for _, op := range frame.Ops {
			switch op.Kind {
			case renderer.OpBackground:
				t.fill(cam, op.Rect, IconFloor, styleFloor)
			case renderer.OpWall:
				t.fill(cam, op.Rect, IconWall, styleWall)
			case renderer.OpZone:
				t.fill(cam, op.Rect, IconZone, zoneStyles[op.Zone])
			case renderer.OpPlayer:
				style := stylePlayer
				if op.Sprinting {
					style = styleSprint
				}
				t.point(cam, op.Pos, IconPlayer, style)
			case renderer.OpWraith:
				t.point(cam, op.Pos, IconWraith, styleWraith)
			}
		}
	}

	t.drawHUD(t.hud.State(t.loop.Session().Ticks))
	t.screen.Show()
}

func (t *TUIRenderer) drawHUD(hs renderer.HUDState) {
	const barWidth = 20

	frac := 0.0
	if hs.MaxEnergy > 0 {
		frac = hs.Energy / hs.MaxEnergy
	}
	filled := int(math.Round(frac * barWidth))
	style := styleEnergy
	if frac < 0.25 {
		style = styleLow
	}

	label := i18n.T("ENERGY") + " ["
	t.text(0, 0, label, styleHUD)
	for i := 0; i < barWidth; i++ {
		ch := '·'
		if i < filled {
			ch = '#'
		}
		t.screen.SetContent(len([]rune(label))+i, 0, ch, nil, style)
	}
	x := len([]rune(label)) + barWidth
	t.text(x, 0, fmt.Sprintf("] %3.0f%%", frac*100), styleHUD)
	x += 7
	if hs.Notice != "" {
		t.text(x+2, 0, hs.Notice, styleHUD)
	}

	if hs.HasDebug {
		d := hs.Debug
		lines := []string{
			fmt.Sprintf("seed %d %s tick %d %.0ftps", d.Seed, d.Generator, d.Tick, d.FPS),
			fmt.Sprintf("player %.0f,%.0f energy %.1f sprint %v safe %v", d.Player.X, d.Player.Y, d.Energy, d.Sprinting, d.InSafeRoom),
		}
		for i, l := range lines {
			t.text(0, t.height-len(lines)+i, l, styleDebug)
		}
	}

	if hs.Outcome.Terminal() {
		style := styleEscaped
		if hs.Outcome == state.Caught {
			style = styleCaught
		}
		t.centred(t.height/2-1, i18n.T(hs.Outcome.String()), style)
		t.centred(t.height/2+1, i18n.T("RESTART_HINT"), styleHUD)
	}
}
