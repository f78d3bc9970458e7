package session

import "github.com/younwookim/starship/internal/domain/entity"

// EntityView is the read-only state of one live entity handed to the renderer
type EntityView struct {
	ID       entity.EntityID
	Category entity.Category
	Pos      entity.Vec2
	Shape    entity.Shape
	Pattern  entity.Pattern
	Owner    entity.Owner
	Angle    float64
	// Depth in (0, 1] scales pseudo-3D sprites; 1 is nearest
	Depth float64
	// Health is the remaining fraction of health or hit-points
	Health float64
}

// Snapshot is everything the renderer needs for one frame
type Snapshot struct {
	Player    EntityView
	Alive     bool
	Health    int
	MaxHealth int

	Entities  []EntityView
	Particles []entity.Particle

	Score   int
	Tier    int
	Frame   int
	Elapsed float64
}

// Snapshot copies the live state. Dead entities are never included.
func (s *Session) Snapshot() Snapshot {
	p := s.world.Player
	snap := Snapshot{
		Player: EntityView{
			ID: p.ID, Category: entity.CategoryPlayer, Pos: p.Pos, Shape: p.Shape,
			Depth: 1, Health: p.HealthRatio(),
		},
		Alive:     p.Alive,
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		Entities:  make([]EntityView, 0, s.world.Count()),
		Particles: append([]entity.Particle(nil), s.particles.Particles()...),
		Score:     s.score,
		Tier:      s.tier,
		Frame:     s.frame,
		Elapsed:   s.elapsed,
	}

	for _, e := range s.world.Enemies {
		if !e.Alive {
			continue
		}
		snap.Entities = append(snap.Entities, EntityView{
			ID: e.ID, Category: entity.CategoryEnemy, Pos: e.Pos, Shape: e.Shape,
			Pattern: e.Pattern, Depth: 1,
			Health: float64(e.HitPoints) / float64(max(e.EnemyStats.HitPoints, 1)),
		})
	}
	for _, pr := range s.world.Projectiles {
		if !pr.Alive {
			continue
		}
		snap.Entities = append(snap.Entities, EntityView{
			ID: pr.ID, Category: entity.CategoryProjectile, Pos: pr.Pos, Shape: pr.Shape,
			Owner: pr.Owner, Depth: 1, Health: 1,
		})
	}
	maxSize := s.cfg.Entities.Debris.MaxSize
	for _, d := range s.world.Debris {
		if !d.Alive {
			continue
		}
		depth := 1.0
		if maxSize > 0 {
			depth = d.Size / maxSize
		}
		snap.Entities = append(snap.Entities, EntityView{
			ID: d.ID, Category: entity.CategoryDebris, Pos: d.Pos, Shape: d.Shape,
			Angle: d.Angle, Depth: depth, Health: 1,
		})
	}

	return snap
}
