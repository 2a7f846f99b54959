package render

import "github.com/gdamore/tcell/v2"

// Palette cycles through these for dynamic and kinematic bodies, one color
// per body.
var Palette = []tcell.Color{
	tcell.NewHexColor(0x98C1D9),
	tcell.NewHexColor(0x053C5E),
	tcell.NewHexColor(0x1F7A8C),
}

// GroundColor is used for every static body.
var GroundColor = tcell.NewHexColor(0xF3D9B1)

// Background is the color behind the world.
var Background = tcell.NewHexColor(0x0E2C33)

// Glyphs used for solid colliders and sensors.
const (
	SolidGlyph  = '█'
	SensorGlyph = '░'
)
