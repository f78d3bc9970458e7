// Package world holds the entity collections of one game session.
package world

import "github.com/younwookim/starship/internal/domain/entity"

// World holds every live entity of a session and the next entity ID.
// A new session gets a new World; nothing is shared between sessions.
type World struct {
	nextID entity.EntityID

	Player      *entity.Player
	Enemies     []*entity.Enemy
	Projectiles []*entity.Projectile
	Debris      []*entity.Debris
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID: 1, // 0 is "nil"
	}
}

// NewEntity returns a new unique entity ID (never recycled)
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// SpawnPlayer creates the session's starship
func (w *World) SpawnPlayer(pos entity.Vec2, shape entity.Shape, maxHealth int, fireCooldown float64) *entity.Player {
	w.Player = entity.NewPlayer(w.NewEntity(), pos, shape, maxHealth, fireCooldown)
	return w.Player
}

// SpawnEnemy adds an enemy to the live set
func (w *World) SpawnEnemy(pos entity.Vec2, shape entity.Shape, pattern entity.Pattern, stats entity.EnemyStats, fireTimer float64) *entity.Enemy {
	e := entity.NewEnemy(w.NewEntity(), pos, shape, pattern, stats, fireTimer)
	w.Enemies = append(w.Enemies, e)
	return e
}

// SpawnProjectile adds a projectile to the live set
func (w *World) SpawnProjectile(pos, vel entity.Vec2, shape entity.Shape, owner entity.Owner, damage int, lifetime float64) *entity.Projectile {
	p := entity.NewProjectile(w.NewEntity(), pos, vel, shape, owner, damage, lifetime)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// SpawnDebris adds a debris to the live set
func (w *World) SpawnDebris(pos, vel entity.Vec2, size float64, damage int, spin float64) *entity.Debris {
	d := entity.NewDebris(w.NewEntity(), pos, vel, size, damage, spin)
	w.Debris = append(w.Debris, d)
	return d
}

// Sweep removes every dead enemy, projectile and debris and returns how
// many were removed. The player is never swept.
func (w *World) Sweep() int {
	removed := 0
	w.Enemies, removed = sweep(w.Enemies, removed, func(e *entity.Enemy) bool { return e.Alive })
	w.Projectiles, removed = sweep(w.Projectiles, removed, func(p *entity.Projectile) bool { return p.Alive })
	w.Debris, removed = sweep(w.Debris, removed, func(d *entity.Debris) bool { return d.Alive })
	return removed
}

// sweep filters s in place, keeping order
func sweep[T any](s []T, removed int, alive func(T) bool) ([]T, int) {
	kept := s[:0]
	for _, v := range s {
		if alive(v) {
			kept = append(kept, v)
		} else {
			removed++
		}
	}
	var zero T
	for i := len(kept); i < len(s); i++ {
		s[i] = zero
	}
	return kept, removed
}

// Count returns the number of enemies, projectiles and debris held
func (w *World) Count() int {
	return len(w.Enemies) + len(w.Projectiles) + len(w.Debris)
}
