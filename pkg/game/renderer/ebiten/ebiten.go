package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	engineinput "wraithmaze/pkg/engine/input"
	"wraithmaze/pkg/game/camera"
	"wraithmaze/pkg/game/gameplay"
	"wraithmaze/pkg/game/renderer"
)

// EbitenRenderer runs the simulation inside Ebiten's game loop. The loop
// draws into a Recorder; Draw replays the latest recorded frame.
type EbitenRenderer struct {
	loop   *gameplay.Loop
	frames *renderer.Recorder
	hud    *renderer.HUD
	cam    *camera.Camera
	input  *engineinput.State

	windowWidth  int
	windowHeight int

	titleFace *text.GoTextFace
	uiFace    *text.GoTextFace

	windowOpenedLogged bool
}

// New creates the backend. frames, hud and cam must be the ones the loop was built with.
func New(loop *gameplay.Loop, frames *renderer.Recorder, hud *renderer.HUD, cam *camera.Camera, in *engineinput.State, width, height int) (*EbitenRenderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	return &EbitenRenderer{
		loop:         loop,
		frames:       frames,
		hud:          hud,
		cam:          cam,
		input:        in,
		windowWidth:  width,
		windowHeight: height,
		titleFace:    &text.GoTextFace{Source: src, Size: titleFontSize},
		uiFace:       &text.GoTextFace{Source: src, Size: uiFontSize},
	}, nil
}

// Run opens the window and blocks until the player quits
func (e *EbitenRenderer) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gameplay.TickRate)

	return ebiten.RunGame(e)
}

// Update polls input and advances the simulation one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("[EBITEN] main window opened (%dx%d)", w, h)
	}

	e.pollMovement()

	for _, intent := range e.pressedIntents() {
		// The outcome screen owns the restart control while it is up
		if intent.Action == engineinput.ActionConfirm && e.hud.Restart() {
			continue
		}
		if e.loop.ProcessIntent(intent) {
			return ebiten.Termination
		}
	}

	if err := e.loop.Tick(time.Now()); err != nil && !errors.Is(err, gameplay.ErrHalted) {
		log.Printf("[EBITEN] %v", err)
	}
	return nil
}

// Layout keeps the camera the size of the window (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	e.cam.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
