package engine_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
)

func sortedCoords(cs []engine.Coord) []engine.Coord {
	out := append([]engine.Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func TestClusterOfFollowsFourConnectivity(t *testing.T) {
	g := mustGrid(t,
		"RR-R",
		"-RG-",
		"R-RR",
	)

	cluster := engine.ClusterOf(g, engine.RC(0, 0))
	assert.Equal(t,
		[]engine.Coord{engine.RC(0, 0), engine.RC(0, 1), engine.RC(1, 1)},
		sortedCoords(cluster),
	)

	// Diagonal neighbors are not connected.
	assert.False(t, cluster.Contains(engine.RC(2, 0)))
	assert.False(t, cluster.Contains(engine.RC(2, 2)))
}

func TestClusterOfEmptySeed(t *testing.T) {
	g := mustGrid(t, "R-R", "RRR")
	before := g.Clone()

	assert.Empty(t, engine.ClusterOf(g, engine.RC(0, 1)))
	assert.Empty(t, engine.ResolveClusters(g, engine.RC(0, 1), 3))
	assert.Empty(t, engine.ClusterOf(g, engine.RC(-1, 0)))
	assert.True(t, before.Equal(g), "empty query must not mutate the grid")
}

func TestResolveClustersThreshold(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		seed    engine.Coord
		removed int
		after   string
	}{
		{
			name:    "pair stays",
			rows:    []string{"RR-", "---"},
			seed:    engine.RC(0, 1),
			removed: 0,
			after:   "RR-\n---",
		},
		{
			name:    "three in a row cleared",
			rows:    []string{"RRR", "G--"},
			seed:    engine.RC(0, 0),
			removed: 3,
			after:   "---\nG--",
		},
		{
			name:    "L shape cleared fully",
			rows:    []string{"B--", "B--", "BBG"},
			seed:    engine.RC(2, 1),
			removed: 4,
			after:   "---\n---\n--G",
		},
		{
			name:    "other colors untouched",
			rows:    []string{"RGR", "RGR", "RGR"},
			seed:    engine.RC(1, 1),
			removed: 3,
			after:   "R-R\nR-R\nR-R",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.rows...)
			removed := engine.ResolveClusters(g, tt.seed, engine.DefaultMinCluster)
			assert.Len(t, removed, tt.removed)
			assert.Equal(t, tt.after, g.String())
		})
	}
}

func TestResolveClustersCrossScenario(t *testing.T) {
	// Red center with four red neighbors; the top neighbor is the sphere
	// that just attached.
	g := mustGrid(t,
		"-R-",
		"RRR",
		"-R-",
	)

	removed := engine.ResolveClusters(g, engine.RC(0, 1), engine.DefaultMinCluster)
	assert.Len(t, removed, 5)
	assert.True(t, g.IsCleared())
}

// floodReference computes the same-color component by repeated relaxation,
// independent of the stack traversal.
func floodReference(g *engine.Grid, seed engine.Coord) map[engine.Coord]bool {
	in := map[engine.Coord]bool{}
	start := g.Get(seed)
	if !start.Filled {
		return in
	}
	in[seed] = true
	for changed := true; changed; {
		changed = false
		for _, c := range g.FilledCoords() {
			if in[c] || g.Get(c).Color != start.Color {
				continue
			}
			for _, n := range c.Neighbors() {
				if in[n] {
					in[c] = true
					changed = true
					break
				}
			}
		}
	}
	return in
}

func TestClusterOfMatchesReferenceOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		g := engine.NewEmptyGrid(rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rng.Float64() < 0.7 {
					g.SetColor(engine.RC(r, c), engine.Color(rng.Intn(2)))
				}
			}
		}
		seed := engine.RC(rng.Intn(rows), rng.Intn(cols))

		cluster := engine.ClusterOf(g, seed)
		want := floodReference(g, seed)

		require.Len(t, cluster, len(want), "grid:\n%s\nseed %v", g, seed)
		seen := map[engine.Coord]bool{}
		for _, c := range cluster {
			require.True(t, want[c], "unexpected cell %v", c)
			require.False(t, seen[c], "cell %v visited twice", c)
			seen[c] = true
		}
	}
}

func TestFloatingCells(t *testing.T) {
	g := mustGrid(t,
		"R-G",
		"B--",
		"--P",
		"-BP",
	)

	floating := engine.FloatingCells(g)
	assert.Equal(t,
		[]engine.Coord{engine.RC(2, 2), engine.RC(3, 1), engine.RC(3, 2)},
		sortedCoords(floating),
	)
}
