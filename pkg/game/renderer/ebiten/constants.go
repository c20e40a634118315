// Package ebiten provides the Ebiten-based 2D graphical backend for Wraith Maze.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{10, 10, 18, 255}    // Outside the world
	colorMapBackground = color.RGBA{26, 26, 46, 255}    // World floor
	colorWall          = color.RGBA{60, 60, 80, 255}    // Wall tiles
	colorWallEdge      = color.RGBA{90, 90, 120, 255}   // Wall tile outline
	colorSafeRoom      = color.RGBA{40, 120, 140, 160}  // Safe room glow
	colorEntrance      = color.RGBA{70, 70, 110, 200}   // Entrance marker
	colorExit          = color.RGBA{60, 200, 100, 200}  // Exit marker
	colorSpawn         = color.RGBA{160, 40, 40, 120}   // Wraith spawn (diagnostics only)
	colorPlayer        = color.RGBA{120, 255, 140, 255} // Player orb
	colorPlayerSprint  = color.RGBA{255, 240, 120, 255} // Player orb while sprinting
	colorWraith        = color.RGBA{200, 120, 255, 230} // Wraith body
	colorWraithCore    = color.RGBA{255, 255, 255, 200} // Wraith eye
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorEnergy        = color.RGBA{100, 220, 255, 255} // Energy bar fill
	colorEnergyLow     = color.RGBA{255, 100, 100, 255} // Energy bar fill below lowEnergy
	colorPanel         = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorOverlay       = color.RGBA{0, 0, 0, 170}       // Outcome screen dim
	colorEscaped       = color.RGBA{100, 255, 150, 255} // Outcome text on escape
	colorCaught        = color.RGBA{255, 120, 120, 255} // Outcome text on capture
)

const (
	energyBarWidth  = 200
	energyBarHeight = 12
	lowEnergy       = 0.25 // Fraction below which the bar turns red

	hudMargin     = 12
	titleFontSize = 32.0
	uiFontSize    = 16.0
)
