package core

import "image/color"

// Color is a named color shared by every frontend. Terminals map it to an
// ANSI code, windows to an RGB value.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// rgba holds the pixel value of each color. Default is the light
// foreground used for text.
var rgba = [...]color.RGBA{
	ColorDefault:       {230, 230, 230, 255},
	ColorRed:           {220, 50, 50, 255},
	ColorGreen:         {80, 220, 120, 255},
	ColorYellow:        {240, 220, 80, 255},
	ColorBlue:          {90, 140, 240, 255},
	ColorMagenta:       {200, 80, 200, 255},
	ColorCyan:          {80, 200, 220, 255},
	ColorWhite:         {200, 200, 210, 255},
	ColorBrightRed:     {255, 90, 90, 255},
	ColorBrightGreen:   {120, 255, 160, 255},
	ColorBrightYellow:  {255, 240, 120, 255},
	ColorBrightBlue:    {130, 180, 255, 255},
	ColorBrightMagenta: {255, 130, 255, 255},
	ColorBrightCyan:    {130, 240, 255, 255},
	ColorBrightWhite:   {230, 230, 230, 255},
	ColorOrange:        {255, 150, 40, 255},
	ColorGray:          {100, 100, 110, 255},
}

// RGBA returns the pixel value for the color.
// Unknown colors fall back to the default foreground.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(rgba) {
		return rgba[c]
	}
	return rgba[ColorDefault]
}
