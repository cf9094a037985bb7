package engine

import "math"

// StopReason says why a projectile stopped.
type StopReason uint8

const (
	StopNone    StopReason = iota
	StopCeiling            // Reached the top of the canvas
	StopContact            // Touched an occupied cell
)

// String returns the string representation of a stop reason.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopCeiling:
		return "ceiling"
	case StopContact:
		return "contact"
	default:
		return "unknown"
	}
}

// CheckStop decides whether a projectile at pos must attach this tick.
//
// Contact is tested only against occupied cells whose centers lie in the
// band of one contact distance around pos on each axis.
func CheckStop(pos Vec, g *Grid, m Metrics) StopReason {
	if pos.Y < m.Radius {
		return StopCeiling
	}

	p := m.Pitch()
	limit := m.ContactDistance()

	r0 := max(floorDiv(pos.Y-m.Radius-limit, p), 0)
	r1 := min(floorDiv(pos.Y-m.Radius+limit, p)+1, g.Rows-1)
	c0 := max(floorDiv(pos.X-m.Radius-limit, p), 0)
	c1 := min(floorDiv(pos.X-m.Radius+limit, p)+1, g.Cols-1)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			coord := RC(r, c)
			if !g.Cells[g.index(coord)].Filled {
				continue
			}
			if pos.Dist(m.CellCenter(coord)) < limit {
				return StopContact
			}
		}
	}
	return StopNone
}

// Placement is where an attaching projectile ends up.
type Placement struct {
	Cell      Coord // Final cell written
	Resolved  Coord // Cell obtained from the position before relocation
	Clamp     Clamp // Bounds applied while resolving
	Relocated bool  // Resolved cell was occupied; moved to the nearest free cell
	Overwrote bool  // Grid was full; the occupied cell was overwritten
}

// PlaceSphere resolves pos to a cell and writes color there.
//
// If the resolved cell is already occupied, the sphere goes to the free cell
// whose center is nearest to pos. When no free cell exists the resolved cell
// is overwritten.
func PlaceSphere(g *Grid, m Metrics, pos Vec, color Color) Placement {
	cell, clamp := m.ResolveCell(pos, g.Rows, g.Cols)
	pl := Placement{Cell: cell, Resolved: cell, Clamp: clamp}

	if g.Get(cell).Filled {
		if free, ok := nearestFree(g, m, pos); ok {
			pl.Cell = free
			pl.Relocated = true
		} else {
			pl.Overwrote = true
		}
	}

	g.SetColor(pl.Cell, color)
	return pl
}

// nearestFree returns the empty cell whose center is closest to pos.
// Ties go to the first cell in row-major order.
func nearestFree(g *Grid, m Metrics, pos Vec) (Coord, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, cell := range g.Cells {
		if cell.Filled {
			continue
		}
		d := pos.Dist(m.CellCenter(g.coordOf(i)))
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return Coord{}, false
	}
	return g.coordOf(best), true
}
