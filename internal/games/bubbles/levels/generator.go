package levels

import (
	"math/rand"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
)

// GenParams configures random level generation.
type GenParams struct {
	Rows      int
	Cols      int
	Occupancy float64        // Probability that a cell holds a sphere
	Colors    []engine.Color // Palette to draw from, uniformly
}

// DefaultGenParams returns the reference setup: 6x8, half the cells filled,
// all four colors.
func DefaultGenParams() GenParams {
	return GenParams{
		Rows:      6,
		Cols:      8,
		Occupancy: 0.5,
		Colors:    engine.AllColors(),
	}
}

// Generate fills a new grid cell by cell: with probability Occupancy the
// cell gets a uniformly chosen color, otherwise it stays empty.
// Zero or missing parameters fall back to DefaultGenParams.
func Generate(p GenParams, rng *rand.Rand) (*engine.Grid, error) {
	def := DefaultGenParams()
	if p.Rows <= 0 {
		p.Rows = def.Rows
	}
	if p.Cols <= 0 {
		p.Cols = def.Cols
	}
	if p.Occupancy <= 0 || p.Occupancy > 1 {
		p.Occupancy = def.Occupancy
	}
	if len(p.Colors) == 0 {
		p.Colors = def.Colors
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	layout := make([][]engine.Cell, p.Rows)
	for r := range layout {
		row := make([]engine.Cell, p.Cols)
		for c := range row {
			if rng.Float64() < p.Occupancy {
				row[c] = engine.Sphere(p.Colors[rng.Intn(len(p.Colors))])
			}
		}
		layout[r] = row
	}
	return engine.NewGrid(p.Rows, p.Cols, layout)
}
