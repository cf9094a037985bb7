package fx_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/fx"
)

func TestEmitBurst(t *testing.T) {
	s := fx.NewSystem(0, 0, rand.New(rand.NewSource(1)))
	s.Emit(100, 200, engine.ColorGreen)

	require.Equal(t, fx.DefaultBurst, s.Len())
	for _, p := range s.Particles() {
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, 200.0, p.Y)
		assert.Equal(t, 1.0, p.Alpha)
		assert.Equal(t, engine.ColorGreen, p.Color)
		assert.True(t, p.VX >= -2 && p.VX < 2, "vx %v", p.VX)
		assert.True(t, p.VY > -4 && p.VY <= 0, "vy %v", p.VY)
	}
}

func TestUpdateMovesAndFades(t *testing.T) {
	s := fx.NewSystem(1, 0.25, rand.New(rand.NewSource(2)))
	s.Emit(0, 0, engine.ColorRed)
	start := s.Particles()[0]

	s.Update()
	p := s.Particles()[0]
	assert.InDelta(t, start.VX, p.X, 1e-9)
	assert.InDelta(t, start.VY, p.Y, 1e-9)
	assert.InDelta(t, 0.75, p.Alpha, 1e-9)

	s.Update()
	s.Update()
	assert.Equal(t, 1, s.Len())
	s.Update()
	assert.Zero(t, s.Len(), "removed once alpha reaches zero")
}

func TestDefaultLifetime(t *testing.T) {
	s := fx.NewSystem(0, 0, nil)
	s.OnAttach(&engine.AttachEvent{X: 5, Y: 5, Color: engine.ColorBlue})
	s.OnAttach(nil)

	ticks := 0
	for s.Len() > 0 {
		s.Update()
		ticks++
		require.Less(t, ticks, 100)
	}
	// 1 / 0.03 rounds up to 34 ticks.
	assert.InDelta(t, 34, ticks, 1)
}

func TestClear(t *testing.T) {
	s := fx.NewSystem(3, 0, nil)
	s.Emit(0, 0, engine.ColorPurple)
	s.Emit(1, 1, engine.ColorPurple)
	assert.Equal(t, 6, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())
}
