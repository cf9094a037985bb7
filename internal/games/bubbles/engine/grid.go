package engine

import (
	"fmt"
	"strings"
)

// Grid is the sphere field as a fixed rows x cols matrix of cells.
// Cells are stored in row-major order: index = row*Cols + col.
// Dimensions never change after construction.
type Grid struct {
	Rows  int    // Number of rows, row 0 nearest the ceiling
	Cols  int    // Number of columns
	Cells []Cell // Flat array of cells, length Rows*Cols
}

// NewGrid creates a grid whose cells are copied from layout.
// The layout must have exactly rows rows of exactly cols cells each.
func NewGrid(rows, cols int, layout [][]Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidLevelLayout, rows, cols)
	}
	if len(layout) != rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLevelLayout, rows, len(layout))
	}

	g := NewEmptyGrid(rows, cols)
	for r, line := range layout {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidLevelLayout, r, len(line), cols)
		}
		copy(g.Cells[r*cols:(r+1)*cols], line)
	}
	return g, nil
}

// NewEmptyGrid creates a grid with all cells empty.
func NewEmptyGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// coordOf converts a flat array index back to a coordinate.
func (g *Grid) coordOf(i int) Coord {
	return Coord{Row: i / g.Cols, Col: i % g.Cols}
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// ColorAt returns the cell at c, or ErrOutOfBounds.
func (g *Grid) ColorAt(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Empty(), fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
	}
	return g.Cells[g.index(c)], nil
}

// Get returns the cell at c without an error path.
// Out-of-bounds coordinates read as empty; hot paths check InBounds first.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.Cells[g.index(c)]
}

// SetColor places a sphere of the given color at c.
// Out-of-bounds coordinates and unknown colors are ignored.
func (g *Grid) SetColor(c Coord, color Color) {
	if g.InBounds(c) && color.Valid() {
		g.Cells[g.index(c)] = Sphere(color)
	}
}

// SetEmpty clears the cell at c.
func (g *Grid) SetEmpty(c Coord) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = Empty()
	}
}

// Clear empties every listed cell.
func (g *Grid) Clear(coords []Coord) {
	for _, c := range coords {
		g.SetEmpty(c)
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// IsCleared returns true if every cell is empty.
func (g *Grid) IsCleared() bool {
	for _, cell := range g.Cells {
		if cell.Filled {
			return false
		}
	}
	return true
}

// FilledCoords returns all occupied coordinates in row-major order.
func (g *Grid) FilledCoords() []Coord {
	coords := make([]Coord, 0)
	for i, cell := range g.Cells {
		if cell.Filled {
			coords = append(coords, g.coordOf(i))
		}
	}
	return coords
}

// Layout returns the grid as a fresh 2D slice, suitable for NewGrid.
func (g *Grid) Layout() [][]Cell {
	out := make([][]Cell, g.Rows)
	for r := range out {
		out[r] = make([]Cell, g.Cols)
		copy(out[r], g.Cells[r*g.Cols:(r+1)*g.Cols])
	}
	return out
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// String dumps the grid one row per line using layout letters.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Cols; c++ {
			sb.WriteRune(g.Cells[r*g.Cols+c].Char())
		}
	}
	return sb.String()
}

// ParseLayout converts layout rows such as "R-GB" into cells.
// Each rune is one cell; whitespace is ignored.
func ParseLayout(lines []string) ([][]Cell, error) {
	layout := make([][]Cell, 0, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			if ch == ' ' || ch == '\t' {
				continue
			}
			cell, ok := ParseCell(string(ch))
			if !ok {
				return nil, fmt.Errorf("%w: row %d: unknown cell %q", ErrInvalidLevelLayout, r, ch)
			}
			row = append(row, cell)
		}
		layout = append(layout, row)
	}
	return layout, nil
}
