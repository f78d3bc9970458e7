package entity

// Player is the starship controlled by the user
type Player struct {
	Body

	Health    int
	MaxHealth int

	// regen accumulates fractional health until a whole point is earned
	regen float64

	FireCooldown float64 // seconds between shots
	FireTimer    float64 // seconds until the next shot is allowed
}

// NewPlayer creates the starship at pos with full health
func NewPlayer(id EntityID, pos Vec2, shape Shape, maxHealth int, fireCooldown float64) *Player {
	return &Player{
		Body:         NewBody(id, pos, shape),
		Health:       maxHealth,
		MaxHealth:    maxHealth,
		FireCooldown: fireCooldown,
	}
}

// TakeDamage subtracts damage from health, clamped at zero.
// Returns true when this hit destroyed the starship.
func (p *Player) TakeDamage(damage int) bool {
	if !p.Alive || damage <= 0 {
		return false
	}
	p.Health -= damage
	if p.Health <= 0 {
		p.Health = 0
		p.regen = 0
		p.Kill()
		return true
	}
	return false
}

// Regenerate restores perSecond health per second, never above MaxHealth
func (p *Player) Regenerate(perSecond, dt float64) {
	if !p.Alive || p.Health >= p.MaxHealth {
		p.regen = 0
		return
	}
	p.regen += perSecond * dt
	whole := int(p.regen)
	if whole == 0 {
		return
	}
	p.regen -= float64(whole)
	p.Health += whole
	if p.Health >= p.MaxHealth {
		p.Health = p.MaxHealth
		p.regen = 0
	}
}

// TickCooldown counts the fire timer down by dt
func (p *Player) TickCooldown(dt float64) {
	if p.FireTimer > 0 {
		p.FireTimer -= dt
	}
}

// TryFire reports whether the cooldown has elapsed and, if so, restarts it
func (p *Player) TryFire() bool {
	if !p.Alive || p.FireTimer > 0 {
		return false
	}
	p.FireTimer = p.FireCooldown
	return true
}

// HealthRatio returns health as a fraction of MaxHealth
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}
