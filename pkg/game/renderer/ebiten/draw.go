package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wraithmaze/pkg/engine/world"
	"wraithmaze/pkg/game/camera"
	"wraithmaze/pkg/game/i18n"
	"wraithmaze/pkg/game/renderer"
	"wraithmaze/pkg/game/state"
)

var zoneColors = map[renderer.ZoneKind]color.RGBA{
	renderer.ZoneSafeRoom: colorSafeRoom,
	renderer.ZoneEntrance: colorEntrance,
	renderer.ZoneExit:     colorExit,
	renderer.ZoneSpawn:    colorSpawn,
}

// Draw paints the latest recorded frame and the HUD (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	frame, n := e.frames.Latest()
	if n == 0 {
		return
	}
	for _, op := range frame.Ops {
		drawOp(screen, &frame.Camera, op)
	}

	e.drawHUD(screen, e.hud.State(e.loop.Session().Ticks))
}

func drawOp(screen *ebiten.Image, cam *camera.Camera, op renderer.Op) {
	switch op.Kind {
	case renderer.OpBackground:
		fillRect(screen, cam, op.Rect, colorMapBackground)
	case renderer.OpWall:
		fillRect(screen, cam, op.Rect, colorWall)
		p := cam.ToScreen(world.Point{X: op.Rect.X, Y: op.Rect.Y})
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(op.Rect.W), float32(op.Rect.H), 1, colorWallEdge, false)
	case renderer.OpZone:
		fillRect(screen, cam, op.Rect, zoneColors[op.Zone])
	case renderer.OpPlayer:
		c := colorPlayer
		if op.Sprinting {
			c = colorPlayerSprint
		}
		p := cam.ToScreen(op.Pos)
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(op.Radius), c, true)
	case renderer.OpWraith:
		p := cam.ToScreen(op.Pos)
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(op.Radius), colorWraith, true)
		vector.FillCircle(screen, float32(p.X), float32(p.Y-op.Radius/3), float32(op.Radius/4), colorWraithCore, true)
	}
}

func fillRect(screen *ebiten.Image, cam *camera.Camera, r world.Rect, c color.Color) {
	p := cam.ToScreen(world.Point{X: r.X, Y: r.Y})
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(r.W), float32(r.H), c, false)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, hs renderer.HUDState) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Energy bar, top left
	frac := 0.0
	if hs.MaxEnergy > 0 {
		frac = hs.Energy / hs.MaxEnergy
	}
	fill := colorEnergy
	if frac < lowEnergy {
		fill = colorEnergyLow
	}
	x, y := float32(hudMargin), float32(hudMargin)
	vector.FillRect(screen, x-2, y-2, energyBarWidth+4, energyBarHeight+4, colorPanel, false)
	vector.FillRect(screen, x, y, float32(energyBarWidth*frac), energyBarHeight, fill, false)
	e.drawText(screen, i18n.T("ENERGY"), e.uiFace, float64(x)+energyBarWidth+10, float64(y)-3, colorText, text.AlignStart)

	if hs.HasDebug {
		drawDebug(screen, hs.Debug, hudMargin, hudMargin+energyBarHeight+12)
	}

	if hs.Notice != "" {
		e.drawText(screen, hs.Notice, e.uiFace, float64(w)/2, float64(h-hudMargin)-uiFontSize, colorText, text.AlignCenter)
	}

	if hs.Outcome.Terminal() {
		e.drawOutcome(screen, hs.Outcome, w, h)
	}
}

func drawDebug(screen *ebiten.Image, d renderer.DebugSnapshot, x, y int) {
	lines := []string{
		fmt.Sprintf("session %s", d.SessionID),
		fmt.Sprintf("seed %d  %s", d.Seed, d.Generator),
		fmt.Sprintf("tick %d  %.1f tps", d.Tick, d.FPS),
		fmt.Sprintf("player %.1f,%.1f  energy %.1f", d.Player.X, d.Player.Y, d.Energy),
		fmt.Sprintf("sprint %v  safe %v  wraiths %d", d.Sprinting, d.InSafeRoom, d.Wraiths),
		fmt.Sprintf("camera %.0f,%.0f %.0fx%.0f", d.Camera.X, d.Camera.Y, d.Camera.W, d.Camera.H),
	}
	const lineH = 16
	vector.FillRect(screen, float32(x-4), float32(y-2), 320, float32(len(lines)*lineH+4), colorPanel, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y+i*lineH)
	}
}

func (e *EbitenRenderer) drawOutcome(screen *ebiten.Image, o state.Outcome, w, h int) {
	vector.FillRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	c := colorEscaped
	if o == state.Caught {
		c = colorCaught
	}
	cx, cy := float64(w)/2, float64(h)/2
	e.drawText(screen, i18n.T(o.String()), e.titleFace, cx, cy-titleFontSize, c, text.AlignCenter)
	e.drawText(screen, i18n.T("RESTART_HINT"), e.uiFace, cx, cy+8, colorText, text.AlignCenter)
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}
