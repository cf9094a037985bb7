// Package engine implements the bubble-shooter grid simulation: projectile
// physics, attachment to the grid, cluster detection and removal, and the
// per-tick state machine that drives them.
//
// The package is UI-agnostic and deterministic for a given RNG seed.
package engine

import (
	"fmt"
	"math/rand"
)

// Phase is the state of the current projectile.
type Phase uint8

const (
	PhaseIdle      Phase = iota // Waiting at the shooter
	PhaseFlying                 // Moving; physics applies
	PhaseAttaching              // Stopped this tick; replaced before Step returns
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFlying:
		return "flying"
	case PhaseAttaching:
		return "attaching"
	default:
		return "unknown"
	}
}

// Options configures a Session.
type Options struct {
	Width        float64 // Canvas width; side walls are at 0 and Width
	Height       float64 // Canvas height
	Metrics      Metrics
	Speed        float64 // Projectile displacement per tick
	Shooter      Shooter
	MinCluster   int  // Smallest cluster that gets removed
	DropFloating bool // Also remove spheres cut off from row 0 after a clear
}

// DefaultOptions returns the reference setup for a canvas of the given size:
// shooter centered horizontally, 100 units above the bottom edge.
func DefaultOptions(width, height float64) Options {
	return Options{
		Width:      width,
		Height:     height,
		Metrics:    DefaultMetrics(),
		Speed:      DefaultSpeed,
		Shooter:    Shooter{X: width / 2, Y: height - 100, Radius: 30},
		MinCluster: DefaultMinCluster,
	}
}

// validate checks the options that the physics depends on.
func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("engine: canvas %gx%g must be positive", o.Width, o.Height)
	}
	if o.Metrics.Radius <= 0 || o.Metrics.Packing <= 0 {
		return fmt.Errorf("engine: radius %g and packing %g must be positive", o.Metrics.Radius, o.Metrics.Packing)
	}
	if o.Speed <= 0 {
		return fmt.Errorf("engine: speed %g must be positive", o.Speed)
	}
	return nil
}

// AttachEvent reports a projectile becoming part of the grid.
// Renderers use X, Y and Color to spawn effects.
type AttachEvent struct {
	X, Y    float64 // Projectile center at the moment it stopped
	Color   Color
	Reason  StopReason
	Place   Placement
	Removed Cluster // Cells cleared by the match, nil if none
	Dropped []Coord // Floating cells cleared afterwards (DropFloating only)
}

// Overflow reports whether the sphere stopped below the last grid row and
// was clamped back into it.
func (e AttachEvent) Overflow() bool {
	return e.Place.Clamp.Has(ClampRowHigh)
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Tick      uint64
	Phase     Phase // PhaseAttaching when an attachment happened this tick
	Reflected bool
	Attached  *AttachEvent
	Lost      bool // Projectile left through the bottom edge and was replaced
	Cleared   bool // Grid has no spheres left
}

// Session owns all mutable state of one level: grid, projectile, shooter
// and aim. It replaces process-wide globals so that ticks are plain method
// calls that can be driven by tests or by any host loop.
type Session struct {
	opts Options
	grid *Grid
	proj Projectile
	aim  Vec
	rng  *rand.Rand
	tick uint64
}

// NewSession starts a level on grid. The session takes ownership of the grid.
// A nil rng is replaced by a fixed-seed source.
func NewSession(grid *Grid, opts Options, rng *rand.Rand) (*Session, error) {
	if grid == nil || grid.Rows <= 0 || grid.Cols <= 0 || len(grid.Cells) != grid.Rows*grid.Cols {
		return nil, fmt.Errorf("engine: %w", ErrInvalidLevelLayout)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.MinCluster < 1 {
		opts.MinCluster = DefaultMinCluster
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &Session{
		opts: opts,
		grid: grid,
		aim:  Vec{X: opts.Shooter.X, Y: opts.Shooter.Y - 200},
		rng:  rng,
	}
	s.spawn()
	return s, nil
}

// spawn replaces the projectile with a fresh idle one of a random color.
func (s *Session) spawn() {
	color := Color(s.rng.Intn(int(ColorCount)))
	s.proj = NewProjectile(s.opts.Shooter.Origin(), color)
}

// SetAim records the latest aim point. Last value wins.
func (s *Session) SetAim(x, y float64) {
	s.aim = Vec{X: x, Y: y}
}

// Fire launches the idle projectile toward the aim point.
// Returns false if a projectile is already flying or the aim is degenerate.
func (s *Session) Fire() bool {
	return s.proj.Fire(s.aim, s.opts.Shooter.Origin(), s.opts.Speed)
}

// Phase returns the state of the current projectile.
func (s *Session) Phase() Phase {
	if s.proj.Moving {
		return PhaseFlying
	}
	return PhaseIdle
}

// Step advances the simulation by one tick:
// physics, stop detection, attachment, cluster resolution, respawn.
func (s *Session) Step() StepResult {
	s.tick++
	result := StepResult{Tick: s.tick}

	if !s.proj.Moving {
		result.Phase = PhaseIdle
		result.Cleared = s.grid.IsCleared()
		return result
	}

	result.Reflected = s.proj.Advance(s.opts.Width, s.opts.Metrics.Radius)
	result.Phase = PhaseFlying

	reason := CheckStop(s.proj.Pos(), s.grid, s.opts.Metrics)
	if reason != StopNone {
		ev := s.attach(reason)
		result.Attached = &ev
		result.Phase = PhaseAttaching
		s.spawn()
	} else if s.proj.VY == 0 || s.proj.Y-s.opts.Metrics.Radius > s.opts.Height {
		// A level shot can reach neither the ceiling nor the bottom edge.
		result.Lost = true
		s.spawn()
	}

	result.Cleared = s.grid.IsCleared()
	return result
}

// attach writes the stopped projectile into the grid and resolves matches.
func (s *Session) attach(reason StopReason) AttachEvent {
	p := s.proj
	ev := AttachEvent{
		X:      p.X,
		Y:      p.Y,
		Color:  p.Color,
		Reason: reason,
		Place:  PlaceSphere(s.grid, s.opts.Metrics, p.Pos(), p.Color),
	}

	ev.Removed = ResolveClusters(s.grid, ev.Place.Cell, s.opts.MinCluster)
	if ev.Removed != nil && s.opts.DropFloating {
		ev.Dropped = FloatingCells(s.grid)
		s.grid.Clear(ev.Dropped)
	}
	return ev
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// CellAt reads one cell without copying the grid.
func (s *Session) CellAt(c Coord) Cell {
	return s.grid.Get(c)
}

// Dims returns the grid dimensions.
func (s *Session) Dims() (rows, cols int) {
	return s.grid.Rows, s.grid.Cols
}

// Projectile returns the current projectile.
func (s *Session) Projectile() Projectile {
	return s.proj
}

// Shooter returns the shooter.
func (s *Session) Shooter() Shooter {
	return s.opts.Shooter
}

// Aim returns the latest aim point.
func (s *Session) Aim() Vec {
	return s.aim
}

// Options returns the session options.
func (s *Session) Options() Options {
	return s.opts
}

// Tick returns the number of ticks stepped so far.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Remaining returns the number of spheres left in the grid.
func (s *Session) Remaining() int {
	return s.grid.FilledCount()
}

// Snapshot captures the session state for determinism tests and replays.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Projectile Projectile
	Aim        Vec
	Remaining  int
	Layout     string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Phase:      s.Phase(),
		Projectile: s.proj,
		Aim:        s.aim,
		Remaining:  s.grid.FilledCount(),
		Layout:     s.grid.String(),
	}
}
