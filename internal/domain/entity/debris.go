package entity

// Debris is a drifting rock that damages the starship on contact
type Debris struct {
	Body

	Damage int
	Size   float64 // diameter in pixels

	// Angle and Spin are cosmetic, radians and radians per second
	Angle float64
	Spin  float64
}

// NewDebris creates a circular debris of the given diameter
func NewDebris(id EntityID, pos, vel Vec2, size float64, damage int, spin float64) *Debris {
	d := &Debris{
		Body:   NewBody(id, pos, Circle(size/2)),
		Damage: damage,
		Size:   size,
		Spin:   spin,
	}
	d.Vel = vel
	return d
}

// Rotate advances the cosmetic angle
func (d *Debris) Rotate(dt float64) {
	d.Angle += d.Spin * dt
}
