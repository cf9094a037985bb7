package engine

import "github.com/kamstrup/intmap"

// DefaultMinCluster is the smallest cluster that gets removed.
const DefaultMinCluster = 3

// Cluster is a set of same-color cells connected through 4-directional adjacency.
type Cluster []Coord

// Len returns the number of cells in the cluster.
func (c Cluster) Len() int {
	return len(c)
}

// Contains reports whether coord belongs to the cluster.
func (c Cluster) Contains(coord Coord) bool {
	for _, x := range c {
		if x == coord {
			return true
		}
	}
	return false
}

// ClusterOf returns the maximal 4-connected region of cells sharing the seed's color.
// An empty or out-of-bounds seed yields an empty cluster. The grid is not modified.
//
// The traversal uses an explicit stack and visits each cell at most once.
func ClusterOf(g *Grid, seed Coord) Cluster {
	if !g.InBounds(seed) {
		return nil
	}
	start := g.Get(seed)
	if !start.Filled {
		return nil
	}

	visited := intmap.New[int, struct{}](16)
	stack := []Coord{seed}
	var cluster Cluster

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.InBounds(cur) {
			continue
		}
		idx := g.index(cur)
		if _, seen := visited.Get(idx); seen {
			continue
		}
		visited.Put(idx, struct{}{})

		cell := g.Cells[idx]
		if !cell.Filled || cell.Color != start.Color {
			continue
		}
		cluster = append(cluster, cur)
		for _, n := range cur.Neighbors() {
			stack = append(stack, n)
		}
	}

	return cluster
}

// ResolveClusters clears the seed's cluster when it has at least minSize cells.
// Returns the removed cells, or nil when the grid was left unchanged.
func ResolveClusters(g *Grid, seed Coord, minSize int) Cluster {
	if minSize < 1 {
		minSize = DefaultMinCluster
	}
	cluster := ClusterOf(g, seed)
	if len(cluster) < minSize {
		return nil
	}
	g.Clear(cluster)
	return cluster
}

// FloatingCells returns occupied cells that are not 4-connected (through any
// colors) to an occupied cell in row 0.
func FloatingCells(g *Grid) []Coord {
	anchored := intmap.New[int, struct{}](len(g.Cells))
	stack := make([]Coord, 0, g.Cols)
	for col := 0; col < g.Cols; col++ {
		c := RC(0, col)
		if g.Get(c).Filled {
			stack = append(stack, c)
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := g.index(cur)
		if _, seen := anchored.Get(idx); seen {
			continue
		}
		anchored.Put(idx, struct{}{})

		for _, n := range cur.Neighbors() {
			if g.InBounds(n) && g.Get(n).Filled {
				stack = append(stack, n)
			}
		}
	}

	var floating []Coord
	for i, cell := range g.Cells {
		if !cell.Filled {
			continue
		}
		if _, ok := anchored.Get(i); !ok {
			floating = append(floating, g.coordOf(i))
		}
	}
	return floating
}
