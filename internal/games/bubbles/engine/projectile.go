package engine

// Shooter is the fixed launch origin. It does not move during a level.
type Shooter struct {
	X, Y   float64
	Radius float64
}

// Origin returns the shooter position.
func (s Shooter) Origin() Vec {
	return Vec{X: s.X, Y: s.Y}
}

// Projectile is the sphere waiting at the shooter or in flight.
type Projectile struct {
	X, Y   float64 // Center position
	VX, VY float64 // Displacement per tick
	Color  Color
	Moving bool
}

// NewProjectile creates an idle projectile at origin.
func NewProjectile(origin Vec, color Color) Projectile {
	return Projectile{X: origin.X, Y: origin.Y, Color: color}
}

// Pos returns the projectile center.
func (p Projectile) Pos() Vec {
	return Vec{X: p.X, Y: p.Y}
}

// Fire launches the projectile from origin toward aim at the given speed.
// The direction is fixed at this moment. Returns false without changing
// anything when already moving or when aim coincides with origin.
func (p *Projectile) Fire(aim, origin Vec, speed float64) bool {
	if p.Moving {
		return false
	}
	d := aim.Sub(origin)
	mag := d.Len()
	if mag == 0 {
		return false
	}
	p.VX = d.X / mag * speed
	p.VY = d.Y / mag * speed
	p.Moving = true
	return true
}

// Advance moves a flying projectile by one tick and reflects it off the side
// walls of a canvas of the given width. Reflection negates VX only, without
// damping and without pushing the position back inside the walls.
// Returns true if VX was reversed this tick.
func (p *Projectile) Advance(width, radius float64) bool {
	if !p.Moving {
		return false
	}
	p.X += p.VX
	p.Y += p.VY

	// Only flip while heading into the wall, so a projectile still inside the
	// wall band after a bounce does not flip back.
	if (p.X < radius && p.VX < 0) || (p.X > width-radius && p.VX > 0) {
		p.VX = -p.VX
		return true
	}
	return false
}
