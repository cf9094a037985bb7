package engine

import "errors"

var (
	// ErrInvalidLevelLayout is returned when a layout does not match its
	// declared dimensions or is not rectangular. Fatal to level load.
	ErrInvalidLevelLayout = errors.New("invalid level layout")

	// ErrOutOfBounds is returned by checked grid accessors for coordinates
	// outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
