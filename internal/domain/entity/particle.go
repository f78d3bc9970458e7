package entity

// ParticleKind selects the look of a particle
type ParticleKind int

const (
	ParticleThrust ParticleKind = iota
	ParticleExplosion
	ParticleImpact
)

// Particle is a short-lived cosmetic effect. It never collides.
type Particle struct {
	Pos, Vel Vec2
	Life     float64 // seconds remaining
	MaxLife  float64
	Size     float64
	Depth    float64 // (0, 1]; 1 is nearest
	Kind     ParticleKind
}

// Update ages the particle and moves it with drag applied to its velocity.
// Returns false once the particle has expired.
func (p *Particle) Update(dt, drag float64) bool {
	p.Life -= dt
	if p.Life <= 0 {
		p.Life = 0
		return false
	}
	p.Vel = p.Vel.Scale(drag)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	return true
}

// Alpha returns the fade factor in [0, 1]
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a > 1 {
		return 1
	}
	return a
}
