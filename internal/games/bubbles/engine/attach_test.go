package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
)

func TestCheckStop(t *testing.T) {
	m := engine.DefaultMetrics()
	g := mustGrid(t,
		"R--",
		"---",
		"---",
	)

	tests := []struct {
		name string
		pos  engine.Vec
		want engine.StopReason
	}{
		{"above ceiling line", engine.V(200, 39.9), engine.StopCeiling},
		{"ceiling wins over contact", engine.V(40, 10), engine.StopCeiling},
		{"touching sphere below", engine.V(40, 81), engine.StopContact},
		{"touching sphere diagonally", engine.V(69, 69), engine.StopContact},
		{"exactly at contact distance", engine.V(82, 40), engine.StopNone},
		{"just out of reach", engine.V(40, 83), engine.StopNone},
		{"far away", engine.V(110, 110), engine.StopNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CheckStop(tt.pos, g, m))
		})
	}
}

// bruteContact tests every occupied cell.
func bruteContact(pos engine.Vec, g *engine.Grid, m engine.Metrics) bool {
	for _, c := range g.FilledCoords() {
		if pos.Dist(m.CellCenter(c)) < m.ContactDistance() {
			return true
		}
	}
	return false
}

func TestCheckStopMatchesFullScan(t *testing.T) {
	for _, m := range []engine.Metrics{
		engine.DefaultMetrics(),
		{Radius: 40, Packing: 0.25},
		{Radius: 10, Packing: 3},
	} {
		checkStopMatchesFullScan(t, m)
	}
}

func checkStopMatchesFullScan(t *testing.T, m engine.Metrics) {
	t.Helper()
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 100; iter++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(10)
		g := engine.NewEmptyGrid(rows, cols)
		for i := range g.Cells {
			if rng.Float64() < 0.3 {
				g.Cells[i] = engine.Sphere(engine.ColorRed)
			}
		}

		for k := 0; k < 200; k++ {
			pos := engine.V(
				rng.Float64()*float64(cols+2)*m.Pitch()-m.Pitch(),
				m.Radius+rng.Float64()*float64(rows+2)*m.Pitch(),
			)
			want := bruteContact(pos, g, m)
			got := engine.CheckStop(pos, g, m) == engine.StopContact
			require.Equal(t, want, got, "metrics %+v pos %+v grid:\n%s", m, pos, g)
		}
	}
}

func TestResolveCell(t *testing.T) {
	m := engine.DefaultMetrics() // pitch 42

	tests := []struct {
		name  string
		pos   engine.Vec
		want  engine.Coord
		clamp engine.Clamp
	}{
		{"origin", engine.V(0, 0), engine.RC(0, 0), engine.ClampNone},
		{"floors", engine.V(83.9, 42), engine.RC(1, 1), engine.ClampNone},
		{"negative x", engine.V(-1, 50), engine.RC(1, 0), engine.ClampColLow},
		{"negative y", engine.V(50, -0.5), engine.RC(0, 1), engine.ClampRowLow},
		{"past right edge", engine.V(500, 50), engine.RC(1, 2), engine.ClampColHigh},
		{"below last row", engine.V(50, 500), engine.RC(2, 1), engine.ClampRowHigh},
		{"both high", engine.V(1e9, 1e9), engine.RC(2, 2), engine.ClampRowHigh | engine.ClampColHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamp := m.ResolveCell(tt.pos, 3, 3)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.clamp, clamp)
		})
	}
}

func TestResolveCellAlwaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := engine.DefaultMetrics()
	g := engine.NewEmptyGrid(4, 5)

	for i := 0; i < 1000; i++ {
		pos := engine.V(rng.NormFloat64()*500, rng.NormFloat64()*500)
		c, _ := m.ResolveCell(pos, g.Rows, g.Cols)
		require.True(t, g.InBounds(c), "pos %+v resolved to %v", pos, c)
	}
}

func TestPlaceSphere(t *testing.T) {
	m := engine.DefaultMetrics()

	t.Run("free cell", func(t *testing.T) {
		g := mustGrid(t, "--", "--")
		pl := engine.PlaceSphere(g, m, engine.V(60, 50), engine.ColorBlue)

		assert.Equal(t, engine.RC(1, 1), pl.Cell)
		assert.False(t, pl.Relocated)
		assert.False(t, pl.Overwrote)
		assert.Equal(t, "--\n-B", g.String())
	})

	t.Run("occupied cell relocates to nearest free", func(t *testing.T) {
		g := mustGrid(t, "R-", "--")
		pl := engine.PlaceSphere(g, m, m.CellCenter(engine.RC(0, 0)), engine.ColorGreen)

		assert.Equal(t, engine.RC(0, 0), pl.Resolved)
		assert.Equal(t, engine.RC(0, 1), pl.Cell, "ties go to row-major order")
		assert.True(t, pl.Relocated)
		assert.Equal(t, "RG\n--", g.String())
	})

	t.Run("full grid overwrites", func(t *testing.T) {
		g := mustGrid(t, "RR", "RR")
		pl := engine.PlaceSphere(g, m, engine.V(10, 10), engine.ColorPurple)

		assert.Equal(t, engine.RC(0, 0), pl.Cell)
		assert.True(t, pl.Overwrote)
		assert.Equal(t, "PR\nRR", g.String())
		assert.Equal(t, 4, g.FilledCount())
	})

	t.Run("overflow is clamped into last row", func(t *testing.T) {
		g := mustGrid(t, "--", "--")
		pl := engine.PlaceSphere(g, m, engine.V(10, 400), engine.ColorRed)

		assert.Equal(t, engine.RC(1, 0), pl.Cell)
		assert.True(t, pl.Clamp.Has(engine.ClampRowHigh))
	})
}
