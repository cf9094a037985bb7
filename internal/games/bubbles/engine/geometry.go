package engine

import "math"

// Reference sizing in canvas units (pixels).
const (
	DefaultRadius  = 40.0 // Sphere radius
	DefaultPacking = 1.05 // Cell pitch and contact distance, in radii
	DefaultSpeed   = 15.0 // Projectile displacement per tick
)

// Vec is a point or displacement in canvas space. Y grows downward.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Metrics maps between canvas space and grid cells.
// The same pitch is used for placing cell centers and for resolving an
// attaching projectile's cell.
type Metrics struct {
	Radius  float64 // Sphere radius
	Packing float64 // Pitch multiplier applied to the radius
}

// DefaultMetrics returns the reference sizing.
func DefaultMetrics() Metrics {
	return Metrics{Radius: DefaultRadius, Packing: DefaultPacking}
}

// Pitch is the spacing between neighboring cell centers.
func (m Metrics) Pitch() float64 {
	return m.Radius * m.Packing
}

// ContactDistance is the center distance under which a projectile touches a sphere.
func (m Metrics) ContactDistance() float64 {
	return m.Radius * m.Packing
}

// CellCenter returns the canvas position of a cell's center.
func (m Metrics) CellCenter(c Coord) Vec {
	p := m.Pitch()
	return Vec{
		X: float64(c.Col)*p + m.Radius,
		Y: float64(c.Row)*p + m.Radius,
	}
}

// Clamp records which bounds were applied while resolving a cell.
type Clamp uint8

const (
	ClampRowLow Clamp = 1 << iota
	ClampRowHigh
	ClampColLow
	ClampColHigh

	ClampNone Clamp = 0
)

// Has reports whether all bits of f are set.
func (c Clamp) Has(f Clamp) bool {
	return c&f == f
}

// ResolveCell converts a canvas position to a grid cell by flooring pos/pitch,
// then clamps row to [0, rows-1] and col to [0, cols-1].
// The returned Clamp tells which bound, if any, had to be applied.
func (m Metrics) ResolveCell(pos Vec, rows, cols int) (Coord, Clamp) {
	p := m.Pitch()
	row := floorDiv(pos.Y, p)
	col := floorDiv(pos.X, p)

	var clamp Clamp
	switch {
	case row < 0:
		row = 0
		clamp |= ClampRowLow
	case row > rows-1:
		row = rows - 1
		clamp |= ClampRowHigh
	}
	switch {
	case col < 0:
		col = 0
		clamp |= ClampColLow
	case col > cols-1:
		col = cols - 1
		clamp |= ClampColHigh
	}
	return RC(row, col), clamp
}

// floorDiv returns floor(v/p) as an int, saturating non-finite inputs.
func floorDiv(v, p float64) int {
	q := math.Floor(v / p)
	switch {
	case math.IsNaN(q):
		return 0
	case q > math.MaxInt32:
		return math.MaxInt32
	case q < math.MinInt32:
		return math.MinInt32
	}
	return int(q)
}
