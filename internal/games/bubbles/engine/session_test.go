package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
)

// testOptions places the shooter at (125, 400) on a 300x500 canvas.
// Column 2 spans x in [84, 126), so a vertical shot lands there without
// touching spheres in column 1.
func testOptions() engine.Options {
	opts := engine.DefaultOptions(300, 500)
	opts.Shooter = engine.Shooter{X: 125, Y: 400, Radius: 30}
	return opts
}

func TestNewSessionValidates(t *testing.T) {
	_, err := engine.NewSession(nil, testOptions(), nil)
	assert.ErrorIs(t, err, engine.ErrInvalidLevelLayout)

	bad := testOptions()
	bad.Speed = 0
	_, err = engine.NewSession(engine.NewEmptyGrid(2, 2), bad, nil)
	assert.Error(t, err)

	s, err := engine.NewSession(engine.NewEmptyGrid(2, 2), testOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseIdle, s.Phase())
	assert.True(t, s.Projectile().Color.Valid())
	assert.Equal(t, engine.V(125, 400), s.Projectile().Pos())
}

func TestSessionDegenerateAimDoesNotFire(t *testing.T) {
	s, err := engine.NewSession(engine.NewEmptyGrid(3, 3), testOptions(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	s.SetAim(125, 400)
	assert.False(t, s.Fire())

	for i := 0; i < 5; i++ {
		res := s.Step()
		assert.Equal(t, engine.PhaseIdle, res.Phase)
		assert.Nil(t, res.Attached)
	}
	assert.Equal(t, engine.V(125, 400), s.Projectile().Pos())
	assert.Equal(t, uint64(5), s.Tick())
}

func TestSessionCeilingAttachClearsCluster(t *testing.T) {
	g := engine.NewEmptyGrid(3, 3)
	s, err := engine.NewSession(g, testOptions(), rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	// Two spheres matching the loaded projectile, leaving (0,2) open.
	color := s.Projectile().Color
	g.SetColor(engine.RC(0, 0), color)
	g.SetColor(engine.RC(0, 1), color)

	s.SetAim(125, 0)
	require.True(t, s.Fire())
	assert.Equal(t, engine.PhaseFlying, s.Phase())

	var attached *engine.AttachEvent
	ticks := 0
	for attached == nil && ticks < 100 {
		res := s.Step()
		ticks++
		assert.False(t, res.Reflected)
		attached = res.Attached
		if attached != nil {
			assert.Equal(t, engine.PhaseAttaching, res.Phase)
			assert.True(t, res.Cleared)
		}
	}

	require.NotNil(t, attached)
	assert.Equal(t, 25, ticks, "y goes 400 -> 25 in 25 ticks of 15")
	assert.Equal(t, engine.StopCeiling, attached.Reason)
	assert.InDelta(t, 25, attached.Y, 1e-9)
	assert.Equal(t, engine.RC(0, 2), attached.Place.Cell)
	assert.Len(t, attached.Removed, 3)
	assert.True(t, s.Grid().IsCleared())

	// A fresh projectile waits at the shooter.
	assert.Equal(t, engine.PhaseIdle, s.Phase())
	assert.Equal(t, engine.V(125, 400), s.Projectile().Pos())
}

func TestSessionContactAttachKeepsPair(t *testing.T) {
	g := engine.NewEmptyGrid(3, 3)
	s, err := engine.NewSession(g, testOptions(), rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	other := (s.Projectile().Color + 1) % engine.ColorCount
	g.SetColor(engine.RC(0, 2), other)

	s.SetAim(125, 0)
	require.True(t, s.Fire())

	var ev *engine.AttachEvent
	for i := 0; i < 100 && ev == nil; i++ {
		ev = s.Step().Attached
	}

	require.NotNil(t, ev)
	assert.Equal(t, engine.StopContact, ev.Reason)
	assert.Equal(t, engine.RC(1, 2), ev.Place.Cell)
	assert.Nil(t, ev.Removed)
	assert.Equal(t, 2, s.Remaining())
}

func TestSessionLostShotRespawns(t *testing.T) {
	s, err := engine.NewSession(engine.NewEmptyGrid(3, 3), testOptions(), nil)
	require.NoError(t, err)

	s.SetAim(125, 1000)
	require.True(t, s.Fire())

	lost := false
	for i := 0; i < 50 && !lost; i++ {
		res := s.Step()
		assert.Nil(t, res.Attached)
		lost = res.Lost
	}
	assert.True(t, lost)
	assert.Equal(t, engine.PhaseIdle, s.Phase())
	assert.Equal(t, 0, s.Remaining())
}

func TestSessionLevelShotRespawns(t *testing.T) {
	s, err := engine.NewSession(engine.NewEmptyGrid(3, 3), testOptions(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	sh := s.Shooter()
	for _, dx := range []float64{100, -100} {
		s.SetAim(sh.X+dx, sh.Y)
		require.True(t, s.Fire())

		res := s.Step()
		assert.True(t, res.Lost, "a shot with no vertical speed never stops")
		assert.Nil(t, res.Attached)
		assert.Equal(t, engine.PhaseIdle, s.Phase())
		assert.Equal(t, sh.Origin(), s.Projectile().Pos())
	}

	s.SetAim(sh.X, 0)
	assert.True(t, s.Fire(), "the session accepts a new shot")
}

func TestSessionDropFloating(t *testing.T) {
	g := engine.NewEmptyGrid(4, 3)
	opts := testOptions()
	opts.DropFloating = true
	s, err := engine.NewSession(g, opts, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	color := s.Projectile().Color
	other := (color + 1) % engine.ColorCount
	// (1,1) and (2,1) hang from (0,1) and fall once the match clears it.
	g.SetColor(engine.RC(0, 0), color)
	g.SetColor(engine.RC(0, 1), color)
	g.SetColor(engine.RC(1, 1), other)
	g.SetColor(engine.RC(2, 1), other)

	s.SetAim(125, 0)
	require.True(t, s.Fire())

	var ev *engine.AttachEvent
	for i := 0; i < 100 && ev == nil; i++ {
		ev = s.Step().Attached
	}

	require.NotNil(t, ev)
	assert.Len(t, ev.Removed, 3)
	assert.ElementsMatch(t, []engine.Coord{engine.RC(1, 1), engine.RC(2, 1)}, ev.Dropped)
	assert.True(t, s.Grid().IsCleared())
}

func TestSessionGridStaysInBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		layout := make([]string, 6)
		for r := range layout {
			row := make([]byte, 8)
			for c := range row {
				row[c] = "RGBP--"[rng.Intn(6)]
			}
			layout[r] = string(row)
		}
		cells, err := engine.ParseLayout(layout)
		require.NoError(t, err)
		g, err := engine.NewGrid(6, 8, cells)
		require.NoError(t, err)

		s, err := engine.NewSession(g, engine.DefaultOptions(400, 700), rng)
		require.NoError(t, err)
		sh := s.Shooter()

		for shot := 0; shot < 30; shot++ {
			s.SetAim(rng.Float64()*400, rng.Float64()*(sh.Y-200))
			require.True(t, s.Fire())

			done := false
			for i := 0; i < 1000 && !done; i++ {
				res := s.Step()
				if res.Attached != nil {
					rows, cols := s.Dims()
					require.Equal(t, 6, rows)
					require.Equal(t, 8, cols)
					require.True(t, g.InBounds(res.Attached.Place.Cell))
					done = true
				}
			}
			require.True(t, done, "seed %d shot %d never attached", seed, shot)
			require.Len(t, s.Grid().Cells, 48)
		}
	}
}

func TestSessionDeterministicForSeed(t *testing.T) {
	run := func() []engine.Snapshot {
		g, err := engine.NewGrid(2, 4, [][]engine.Cell{
			{engine.Sphere(engine.ColorRed), engine.Empty(), engine.Sphere(engine.ColorBlue), engine.Empty()},
			{engine.Empty(), engine.Empty(), engine.Empty(), engine.Empty()},
		})
		require.NoError(t, err)
		s, err := engine.NewSession(g, engine.DefaultOptions(300, 600), rand.New(rand.NewSource(77)))
		require.NoError(t, err)

		aims := []engine.Vec{engine.V(0, 100), engine.V(300, 50), engine.V(150, 0)}
		var snaps []engine.Snapshot
		for _, aim := range aims {
			s.SetAim(aim.X, aim.Y)
			s.Fire()
			for i := 0; i < 80; i++ {
				s.Step()
			}
			snaps = append(snaps, s.Snapshot())
		}
		return snaps
	}

	assert.Equal(t, run(), run())
}
