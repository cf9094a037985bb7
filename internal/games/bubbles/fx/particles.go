// Package fx owns short-lived visual effects spawned by engine events.
// Effects never feed back into the simulation.
package fx

import (
	"math/rand"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
)

// Defaults match the reference burst: ten sparks that fade over ~33 ticks.
const (
	DefaultBurst = 10
	DefaultDecay = 0.03
)

// Particle is one spark of an attach burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64 // 1 when spawned, removed once it reaches 0
	Color  engine.Color
}

// System holds live particles.
type System struct {
	particles []Particle
	burst     int
	decay     float64
	rng       *rand.Rand
}

// NewSystem creates a particle system emitting burst particles per event,
// each losing decay alpha per tick. Non-positive values use the defaults.
func NewSystem(burst int, decay float64, rng *rand.Rand) *System {
	if burst <= 0 {
		burst = DefaultBurst
	}
	if decay <= 0 {
		decay = DefaultDecay
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &System{burst: burst, decay: decay, rng: rng}
}

// Emit spawns a burst at (x, y). Horizontal speed is uniform in [-2, 2),
// vertical speed uniform in (-4, 0] so sparks fly upward.
func (s *System) Emit(x, y float64, color engine.Color) {
	for i := 0; i < s.burst; i++ {
		s.particles = append(s.particles, Particle{
			X:     x,
			Y:     y,
			VX:    s.rng.Float64()*4 - 2,
			VY:    -s.rng.Float64() * 4,
			Alpha: 1,
			Color: color,
		})
	}
}

// OnAttach emits a burst for an attach event.
func (s *System) OnAttach(ev *engine.AttachEvent) {
	if ev == nil {
		return
	}
	s.Emit(ev.X, ev.Y, ev.Color)
}

// Update moves every particle one tick and drops the faded ones.
func (s *System) Update() {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= s.decay
		if p.Alpha <= 0 {
			continue
		}
		live = append(live, p)
	}
	s.particles = live
}

// Particles returns the live particles. The slice is only valid until the
// next Update or Emit.
func (s *System) Particles() []Particle {
	return s.particles
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Clear removes all particles.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
