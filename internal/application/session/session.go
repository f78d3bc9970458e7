// Package session runs one play-through of the shooter: it owns the world,
// the systems and the score state, and advances them one fixed tick at a time.
package session

import (
	"math/rand"

	"github.com/younwookim/starship/internal/application/system"
	"github.com/younwookim/starship/internal/application/world"
	"github.com/younwookim/starship/internal/domain/entity"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// Session is the explicit context of one game: entity collections, score,
// elapsed time, difficulty tier and frame counter
type Session struct {
	cfg  *config.GameConfig
	seed int64
	rng  *rand.Rand
	dt   float64

	world     *world.World
	physics   *system.PhysicsSystem
	collision *system.CollisionSystem
	spawner   *system.Spawner
	particles *system.ParticleSystem
	weapons   *system.WeaponSystem

	elapsed float64
	score   int
	tier    int
	frame   int
	kills   int
}

// New starts a session with the starship centred near the bottom of the screen.
// All randomness (spawns, particles, enemy fire) is drawn from seed.
func New(cfg *config.GameConfig, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	display := cfg.Physics.Display
	pc := cfg.Entities.Player

	w := world.NewWorld()
	w.SpawnPlayer(
		entity.Vec2{X: float64(display.ScreenWidth) / 2, Y: float64(display.ScreenHeight) - pc.Size.Height*1.5},
		entity.Box(pc.Size.Width, pc.Size.Height),
		pc.MaxHealth,
		pc.FireCooldown,
	)

	s := &Session{
		cfg:       cfg,
		seed:      seed,
		rng:       rng,
		dt:        1.0 / float64(display.Framerate),
		world:     w,
		physics:   system.NewPhysicsSystem(cfg.Physics),
		collision: system.NewCollisionSystem(pc.RamDamage),
		spawner:   system.NewSpawner(cfg, rng),
		particles: system.NewParticleSystem(cfg.Physics.Particles, rng),
	}
	s.weapons = system.NewWeaponSystem(cfg.Entities, s.spawner.FireInterval)

	s.collision.OnExplosion = s.particles.Explosion
	s.collision.OnImpact = s.particles.Impact

	return s
}

// Step performs one Playing tick of the configured length (1/framerate).
func (s *Session) Step(in system.InputState) []system.Event {
	return s.Advance(in, s.dt)
}

// Advance performs one Playing tick of dt seconds and returns the events it emitted:
//  1. input: cooldowns, regeneration, thrust and firing
//  2. movement of every entity (and particles)
//  3. spawn decision
//  4. collision resolution with damage, removal and score
//  5. expiry of off-screen and spent entities
//  6. difficulty tier from elapsed time and score
//
// A non-positive dt falls back to the configured tick. Advance is a no-op
// once the starship is destroyed.
func (s *Session) Advance(in system.InputState, dt float64) []system.Event {
	if dt <= 0 {
		dt = s.dt
	}
	p := s.world.Player
	if !p.Alive {
		return nil
	}
	var events []system.Event

	p.TickCooldown(dt)
	p.Regenerate(s.cfg.Entities.Player.RegenPerSecond, dt)
	s.physics.ApplyThrust(p, in, dt)
	if ev, ok := s.weapons.PlayerFire(s.world, in); ok {
		events = append(events, ev)
	}
	events = append(events, s.weapons.EnemyFire(s.world, dt)...)

	s.physics.Integrate(s.world, dt)
	if !p.Vel.IsZero() {
		s.particles.Thrust(entity.Vec2{X: p.Pos.X, Y: p.Pos.Y + p.Shape.H/2})
	}
	s.particles.Update(dt)

	s.spawner.Update(s.world, s.tier)

	res := s.collision.Resolve(s.world)
	s.score += res.Score
	s.kills += res.Kills
	events = append(events, res.Events...)

	s.physics.Expire(s.world, dt)
	s.world.Sweep()

	s.elapsed += dt
	s.frame++
	if t := TierFor(s.elapsed, s.score, s.cfg.Spawn.Difficulty); t > s.tier {
		s.tier = t
	}

	return events
}

// Over reports whether the starship has been destroyed
func (s *Session) Over() bool {
	return !s.world.Player.Alive
}

func (s *Session) World() *world.World { return s.world }

func (s *Session) Player() *entity.Player { return s.world.Player }

func (s *Session) Score() int { return s.score }

func (s *Session) Tier() int { return s.tier }

func (s *Session) Elapsed() float64 { return s.elapsed }

func (s *Session) Frame() int { return s.frame }

func (s *Session) Kills() int { return s.kills }

func (s *Session) Seed() int64 { return s.seed }

// SpawnProbability is the current per-tick spawn chance
func (s *Session) SpawnProbability() float64 {
	return s.spawner.Probability(s.tier)
}

// Particles exposes the particle pool for rendering
func (s *Session) Particles() []entity.Particle {
	return s.particles.Particles()
}
