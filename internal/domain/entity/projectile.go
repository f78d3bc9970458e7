package entity

// Projectile is a shot fired by the player or an enemy
type Projectile struct {
	Body

	Owner    Owner
	Damage   int
	Lifetime float64 // seconds left before the shot expires
}

// NewProjectile creates a projectile at pos travelling with vel
func NewProjectile(id EntityID, pos, vel Vec2, shape Shape, owner Owner, damage int, lifetime float64) *Projectile {
	p := &Projectile{
		Body:     NewBody(id, pos, shape),
		Owner:    owner,
		Damage:   damage,
		Lifetime: lifetime,
	}
	p.Vel = vel
	return p
}

// Age decrements the remaining lifetime and kills the projectile once it runs out
func (p *Projectile) Age(dt float64) {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.Kill()
	}
}

// IsPlayer reports whether the player fired this projectile
func (p *Projectile) IsPlayer() bool {
	return p.Owner == OwnerPlayer
}
