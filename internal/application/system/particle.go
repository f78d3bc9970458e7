package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/starship/internal/domain/entity"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// ParticleSystem owns a bounded pool of cosmetic particles.
// Emissions beyond capacity are dropped.
type ParticleSystem struct {
	cfg       config.ParticlesConfig
	rng       *rand.Rand
	particles []entity.Particle
	dropped   int
}

// NewParticleSystem creates a pool with the configured capacity
func NewParticleSystem(cfg config.ParticlesConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		particles: make([]entity.Particle, 0, cfg.Capacity),
	}
}

// Thrust emits engine exhaust below the ship, drifting down
func (s *ParticleSystem) Thrust(pos entity.Vec2) {
	e := s.cfg.Thrust
	for i := 0; i < e.Count; i++ {
		speed := s.between(e.MinSpeed, e.MaxSpeed)
		s.add(entity.Particle{
			Pos:   entity.Vec2{X: pos.X + s.between(-e.Spread, e.Spread), Y: pos.Y},
			Vel:   entity.Vec2{X: s.between(-60, 60), Y: speed},
			Life:  e.Lifetime, MaxLife: e.Lifetime,
			Size:  e.Size,
			Depth: 1,
			Kind:  entity.ParticleThrust,
		})
	}
}

// Explosion emits a radial burst scaled by size
func (s *ParticleSystem) Explosion(pos entity.Vec2, size float64) {
	count := s.cfg.Explosion.Count
	if size > 0 {
		count = int(float64(count) * math.Max(0.5, size/50))
	}
	s.burst(pos, s.cfg.Explosion, count, entity.ParticleExplosion)
}

// Impact emits a small spark burst where a projectile hit
func (s *ParticleSystem) Impact(pos entity.Vec2) {
	s.burst(pos, s.cfg.Impact, s.cfg.Impact.Count, entity.ParticleImpact)
}

func (s *ParticleSystem) burst(pos entity.Vec2, e config.EmitterConfig, count int, kind entity.ParticleKind) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.between(e.MinSpeed, e.MaxSpeed)
		life := e.Lifetime * s.between(0.6, 1)
		s.add(entity.Particle{
			Pos:   pos,
			Vel:   entity.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:  life, MaxLife: life,
			Size:  e.Size,
			Depth: burstDepth(speed, e.MinSpeed, e.MaxSpeed),
			Kind:  kind,
		})
	}
}

// burstDepth puts the fastest fragments nearest the viewer
func burstDepth(speed, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return 0.5 + 0.5*(speed-lo)/(hi-lo)
}

func (s *ParticleSystem) add(p entity.Particle) {
	if len(s.particles) >= s.cfg.Capacity {
		s.dropped++
		return
	}
	s.particles = append(s.particles, p)
}

func (s *ParticleSystem) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Update ages every particle and removes the expired ones
func (s *ParticleSystem) Update(dt float64) {
	kept := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		if p.Update(dt, s.cfg.Drag) {
			kept = append(kept, p)
		}
	}
	s.particles = kept
}

// Particles returns the live particles. The slice is reused by the next Update.
func (s *ParticleSystem) Particles() []entity.Particle {
	return s.particles
}

func (s *ParticleSystem) Len() int { return len(s.particles) }

// Dropped counts emissions lost to the capacity bound
func (s *ParticleSystem) Dropped() int { return s.dropped }
