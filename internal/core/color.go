package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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

// ANSI returns the 256-color palette index used by terminal renderers.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightMagenta:
		return "13"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}

// RGBA returns the color for pixel renderers, approximating the xterm palette.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 0xcd, A: 0xff}
	case ColorGreen:
		return color.RGBA{G: 0xcd, A: 0xff}
	case ColorYellow:
		return color.RGBA{R: 0xcd, G: 0xcd, A: 0xff}
	case ColorBlue:
		return color.RGBA{B: 0xee, A: 0xff}
	case ColorMagenta:
		return color.RGBA{R: 0xcd, B: 0xcd, A: 0xff}
	case ColorCyan:
		return color.RGBA{G: 0xcd, B: 0xcd, A: 0xff}
	case ColorBrightRed:
		return color.RGBA{R: 0xff, A: 0xff}
	case ColorBrightGreen:
		return color.RGBA{G: 0xff, A: 0xff}
	case ColorBrightYellow:
		return color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	case ColorBrightBlue:
		return color.RGBA{R: 0x5c, G: 0x5c, B: 0xff, A: 0xff}
	case ColorBrightMagenta:
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	case ColorBrightCyan:
		return color.RGBA{G: 0xff, B: 0xff, A: 0xff}
	case ColorOrange:
		return color.RGBA{R: 0xff, G: 0x87, A: 0xff}
	case ColorGray:
		return color.RGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	default:
		return color.RGBA{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff}
	}
}
