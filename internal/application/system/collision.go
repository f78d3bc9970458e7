package system

import (
	"github.com/younwookim/starship/internal/application/world"
	"github.com/younwookim/starship/internal/domain/entity"
)

// CollisionResult is the outcome of one collision pass
type CollisionResult struct {
	Events          []Event
	Score           int
	Kills           int
	PlayerDestroyed bool
}

// CollisionSystem resolves overlaps between the interacting categories:
// player/enemy, player/debris, player/enemy projectile and player projectile/enemy.
type CollisionSystem struct {
	ramDamage int

	// Effect callbacks
	OnExplosion func(pos entity.Vec2, size float64)
	OnImpact    func(pos entity.Vec2)
}

// NewCollisionSystem creates a collision system.
// ramDamage is what an enemy takes when it rams the starship.
func NewCollisionSystem(ramDamage int) *CollisionSystem {
	return &CollisionSystem{ramDamage: ramDamage}
}

// Resolve runs one pass over the live entities and applies damage, removal
// and score. Entities killed earlier in the pass are skipped by later pairs.
func (s *CollisionSystem) Resolve(w *world.World) CollisionResult {
	var res CollisionResult

	if p := w.Player; p != nil && p.Alive {
		s.resolvePlayer(w, p, &res)
	}
	s.resolvePlayerShots(w, &res)

	return res
}

func (s *CollisionSystem) resolvePlayer(w *world.World, p *entity.Player, res *CollisionResult) {
	for _, e := range w.Enemies {
		if !p.Alive {
			return
		}
		if !p.Overlaps(&e.Body) {
			continue
		}
		s.hitPlayer(p, entity.CategoryEnemy, e.ContactDamage, res)
		if e.TakeDamage(s.ramDamage) {
			s.destroyEnemy(e, res)
		}
	}

	for _, d := range w.Debris {
		if !p.Alive {
			return
		}
		if !p.Overlaps(&d.Body) {
			continue
		}
		s.hitPlayer(p, entity.CategoryDebris, d.Damage, res)
		d.Kill()
		s.explode(entity.CategoryDebris, d.Pos, d.Size, res)
	}

	for _, pr := range w.Projectiles {
		if !p.Alive {
			return
		}
		if pr.IsPlayer() || !p.Overlaps(&pr.Body) {
			continue
		}
		s.hitPlayer(p, entity.CategoryProjectile, pr.Damage, res)
		pr.Kill()
		s.impact(pr.Pos)
	}
}

// resolvePlayerShots lets one projectile damage every enemy it overlaps this tick
func (s *CollisionSystem) resolvePlayerShots(w *world.World, res *CollisionResult) {
	for _, pr := range w.Projectiles {
		if !pr.Alive || !pr.IsPlayer() {
			continue
		}
		hit := false
		for _, e := range w.Enemies {
			if !e.Alive || !entity.Overlaps(pr.Pos, pr.Shape, e.Pos, e.Shape) {
				continue
			}
			hit = true
			res.Events = append(res.Events, CollisionEvent{
				A: entity.CategoryProjectile, B: entity.CategoryEnemy, Damage: pr.Damage, Pos: pr.Pos,
			})
			if e.TakeDamage(pr.Damage) {
				s.destroyEnemy(e, res)
			}
		}
		if hit {
			pr.Kill()
			s.impact(pr.Pos)
		}
	}
}

func (s *CollisionSystem) hitPlayer(p *entity.Player, from entity.Category, damage int, res *CollisionResult) {
	res.Events = append(res.Events, CollisionEvent{
		A: entity.CategoryPlayer, B: from, Damage: damage, Pos: p.Pos,
	})
	if p.TakeDamage(damage) {
		res.PlayerDestroyed = true
		s.explode(entity.CategoryPlayer, p.Pos, p.Shape.H, res)
	}
}

func (s *CollisionSystem) destroyEnemy(e *entity.Enemy, res *CollisionResult) {
	res.Score += e.Score
	res.Kills++
	s.explode(entity.CategoryEnemy, e.Pos, e.Shape.H, res)
}

func (s *CollisionSystem) explode(c entity.Category, pos entity.Vec2, size float64, res *CollisionResult) {
	res.Events = append(res.Events, ExplosionEvent{Category: c, Pos: pos, Size: size})
	if s.OnExplosion != nil {
		s.OnExplosion(pos, size)
	}
}

func (s *CollisionSystem) impact(pos entity.Vec2) {
	if s.OnImpact != nil {
		s.OnImpact(pos)
	}
}
