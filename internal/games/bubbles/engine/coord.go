package engine

import "fmt"

// Coord addresses a grid cell. Row 0 is nearest the ceiling.
type Coord struct {
	Row int
	Col int
}

// RC is a convenience constructor for Coord.
func RC(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// neighborOffsets lists the 4-directional neighbors: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the four orthogonal neighbors. Some may be out of bounds.
func (c Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, d := range neighborOffsets {
		out[i] = c.Add(d[0], d[1])
	}
	return out
}
