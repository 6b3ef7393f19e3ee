package assets

import "github.com/gdamore/tcell/v2"

// Terrain backgrounds: dark is remembered, light is currently visible.
var (
	ColorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	ColorLightWall   = tcell.NewRGBColor(130, 110, 50)
	ColorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	ColorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// Entity and message colours.
var (
	ColorWhite            = tcell.NewRGBColor(255, 255, 255)
	ColorRed              = tcell.NewRGBColor(255, 0, 0)
	ColorDarkRed          = tcell.NewRGBColor(191, 0, 0)
	ColorDarkerRed        = tcell.NewRGBColor(127, 0, 0)
	ColorLightRed         = tcell.NewRGBColor(255, 114, 114)
	ColorPeach            = tcell.NewRGBColor(255, 159, 127)
	ColorDarkFlame        = tcell.NewRGBColor(191, 47, 0)
	ColorDesaturatedGreen = tcell.NewRGBColor(63, 127, 63)
	ColorDarkerGreen      = tcell.NewRGBColor(0, 127, 0)
)
