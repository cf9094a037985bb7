package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
)

func TestProjectileFireNormalizesDirection(t *testing.T) {
	tests := []struct {
		name   string
		aim    engine.Vec
		wantVX float64
		wantVY float64
	}{
		{"3-4-5 triangle", engine.V(3, 4), 9, 12},
		{"straight up", engine.V(0, -100), 0, -15},
		{"left", engine.V(-7, 0), -15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.NewProjectile(engine.V(0, 0), engine.ColorBlue)
			require.True(t, p.Fire(tt.aim, engine.V(0, 0), engine.DefaultSpeed))

			assert.True(t, p.Moving)
			assert.InDelta(t, tt.wantVX, p.VX, 1e-9)
			assert.InDelta(t, tt.wantVY, p.VY, 1e-9)
			assert.InDelta(t, engine.DefaultSpeed, math.Hypot(p.VX, p.VY), 1e-9)
		})
	}
}

func TestProjectileFireDegenerateAim(t *testing.T) {
	origin := engine.V(210, 600)
	p := engine.NewProjectile(origin, engine.ColorRed)

	assert.False(t, p.Fire(origin, origin, engine.DefaultSpeed))
	assert.False(t, p.Moving)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)

	// Advancing an idle projectile is a no-op.
	assert.False(t, p.Advance(420, engine.DefaultRadius))
	assert.Equal(t, origin, p.Pos())
}

func TestProjectileFireIgnoredWhileFlying(t *testing.T) {
	p := engine.NewProjectile(engine.V(0, 0), engine.ColorRed)
	require.True(t, p.Fire(engine.V(0, -1), engine.V(0, 0), 15))

	assert.False(t, p.Fire(engine.V(1, 0), engine.V(0, 0), 15))
	assert.InDelta(t, 0, p.VX, 1e-9)
	assert.InDelta(t, -15, p.VY, 1e-9)
}

func TestProjectileAdvanceReflectsOffWalls(t *testing.T) {
	const (
		width  = 420.0
		radius = engine.DefaultRadius
	)

	tests := []struct {
		name      string
		start     engine.Projectile
		reflected bool
		wantX     float64
		wantVX    float64
	}{
		{
			name:      "left wall",
			start:     engine.Projectile{X: radius - 1 + 5, Y: 300, VX: -5, VY: -14, Moving: true},
			reflected: true,
			wantX:     radius - 1,
			wantVX:    5,
		},
		{
			name:      "right wall",
			start:     engine.Projectile{X: width - radius - 2, Y: 300, VX: 6, VY: -14, Moving: true},
			reflected: true,
			wantX:     width - radius + 4,
			wantVX:    -6,
		},
		{
			name:      "open field",
			start:     engine.Projectile{X: 200, Y: 300, VX: 6, VY: -14, Moving: true},
			reflected: false,
			wantX:     206,
			wantVX:    6,
		},
		{
			name:      "already heading out of the left band",
			start:     engine.Projectile{X: 30, Y: 300, VX: 5, VY: -14, Moving: true},
			reflected: false,
			wantX:     35,
			wantVX:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			got := p.Advance(width, radius)

			assert.Equal(t, tt.reflected, got)
			assert.InDelta(t, tt.wantX, p.X, 1e-9)
			assert.InDelta(t, tt.wantVX, p.VX, 1e-9)
			assert.InDelta(t, tt.start.VY, p.VY, 1e-9, "vy must not change")
			assert.InDelta(t, tt.start.Y+tt.start.VY, p.Y, 1e-9)
		})
	}
}

func TestProjectileReflectionKeepsSpeed(t *testing.T) {
	p := engine.NewProjectile(engine.V(210, 600), engine.ColorGreen)
	require.True(t, p.Fire(engine.V(0, 560), engine.V(210, 600), engine.DefaultSpeed))

	bounces := 0
	for i := 0; i < 200; i++ {
		if p.Advance(420, engine.DefaultRadius) {
			bounces++
		}
		require.InDelta(t, engine.DefaultSpeed, math.Hypot(p.VX, p.VY), 1e-9)
	}
	assert.Greater(t, bounces, 1)
}
