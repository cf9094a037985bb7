package engine

import "strings"

// Color identifies a sphere color. Clusters only compare colors for equality.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorPurple
	ColorCount // Sentinel value for iteration
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns the layout letter for the color.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	default:
		return '?'
	}
}

// Valid reports whether c is one of the playable colors.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a color name or layout letter to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return ColorRed, false
	}
}

// AllColors returns every playable color.
func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorPurple}
}

// Cell is a single grid slot: either empty or holding one colored sphere.
type Cell struct {
	Filled bool  // Whether the cell holds a sphere
	Color  Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Sphere returns a cell holding a sphere of the given color.
func Sphere(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Char returns the layout letter for the cell, '-' when empty.
func (c Cell) Char() rune {
	if !c.Filled {
		return '-'
	}
	return c.Color.Char()
}

// ParseCell converts one layout token ("R", "G", "B", "P", "-", or a color name).
func ParseCell(s string) (Cell, bool) {
	switch s {
	case "-", ".", "":
		return Empty(), true
	}
	color, ok := ParseColor(s)
	if !ok {
		return Empty(), false
	}
	return Sphere(color), true
}
