// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps a continuous canvas onto a rectangle of terminal cells.
// The mapping keeps the canvas proportions, so the canvas is letterboxed
// inside Area when the aspect ratios differ.
type Viewport struct {
	Area       Rect
	CanvasW    float64
	CanvasH    float64
	scale      float64 // canvas units per cell column
	offX, offY int
	usedW      int
	usedH      int
}

// NewViewport fits a canvasW x canvasH canvas into area.
func NewViewport(canvasW, canvasH float64, area Rect) Viewport {
	v := Viewport{Area: area, CanvasW: canvasW, CanvasH: canvasH}
	if canvasW <= 0 || canvasH <= 0 || area.W <= 0 || area.H <= 0 {
		v.scale = 1
		return v
	}

	// A column spans scale units, a row spans scale*CellAspect units.
	v.scale = math.Max(canvasW/float64(area.W), canvasH/(float64(area.H)*CellAspect))
	v.usedW = Clamp(int(math.Ceil(canvasW/v.scale)), 1, area.W)
	v.usedH = Clamp(int(math.Ceil(canvasH/(v.scale*CellAspect))), 1, area.H)
	v.offX = area.X + (area.W-v.usedW)/2
	v.offY = area.Y + (area.H-v.usedH)/2
	return v
}

// Used returns the part of Area the canvas occupies.
func (v Viewport) Used() Rect {
	return NewRect(v.offX, v.offY, v.usedW, v.usedH)
}

// Scale returns the number of canvas units covered by one cell column.
func (v Viewport) Scale() float64 {
	return v.scale
}

// ToScreen converts a canvas point to the cell containing it.
func (v Viewport) ToScreen(x, y float64) (int, int) {
	col := int(math.Floor(x / v.scale))
	row := int(math.Floor(y / (v.scale * CellAspect)))
	return v.offX + col, v.offY + row
}

// ToCanvas converts a cell to the canvas point at its center.
func (v Viewport) ToCanvas(col, row int) (float64, float64) {
	x := (float64(col-v.offX) + 0.5) * v.scale
	y := (float64(row-v.offY) + 0.5) * v.scale * CellAspect
	return x, y
}

// RadiusCells returns a canvas length expressed in cell columns.
func (v Viewport) RadiusCells(r float64) float64 {
	return r / v.scale
}
