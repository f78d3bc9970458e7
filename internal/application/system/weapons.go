package system

import (
	"github.com/younwookim/starship/internal/application/world"
	"github.com/younwookim/starship/internal/domain/entity"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// WeaponSystem fires projectiles for the starship and the enemies
type WeaponSystem struct {
	playerShot config.ProjectileConfig
	enemyShot  config.ProjectileConfig
	enemies    map[string]config.EnemyConfig

	// NextInterval draws the cooldown an enemy waits after firing
	NextInterval func(ec config.EnemyConfig) float64
}

// NewWeaponSystem creates a weapon system from the projectile tuning
func NewWeaponSystem(cfg *config.EntitiesConfig, nextInterval func(config.EnemyConfig) float64) *WeaponSystem {
	return &WeaponSystem{
		playerShot:   cfg.Projectiles[entity.OwnerPlayer.String()],
		enemyShot:    cfg.Projectiles[entity.OwnerEnemy.String()],
		enemies:      cfg.Enemies,
		NextInterval: nextInterval,
	}
}

// PlayerFire fires a shot straight up from the ship's nose when the fire
// intent is held and the cooldown has elapsed
func (s *WeaponSystem) PlayerFire(w *world.World, in InputState) (ShootEvent, bool) {
	p := w.Player
	if p == nil || !in.Fire || !p.TryFire() {
		return ShootEvent{}, false
	}

	pos := entity.Vec2{X: p.Pos.X, Y: p.Pos.Y - p.Shape.H/2}
	shot := s.playerShot
	w.SpawnProjectile(pos, entity.Vec2{Y: -shot.Speed}, entity.Box(shot.Size.Width, shot.Size.Height),
		entity.OwnerPlayer, shot.Damage, shot.Lifetime)

	return ShootEvent{Owner: entity.OwnerPlayer, Pos: pos}, true
}

// EnemyFire counts every enemy's fire timer down and fires a shot straight
// down from each enemy whose cooldown elapsed
func (s *WeaponSystem) EnemyFire(w *world.World, dt float64) []Event {
	var events []Event
	shot := s.enemyShot

	for _, e := range w.Enemies {
		if !e.TickFire(dt) {
			continue
		}
		e.FireTimer = s.interval(e)

		pos := entity.Vec2{X: e.Pos.X, Y: e.Pos.Y + e.Shape.H/2}
		w.SpawnProjectile(pos, entity.Vec2{Y: shot.Speed}, entity.Box(shot.Size.Width, shot.Size.Height),
			entity.OwnerEnemy, shot.Damage, shot.Lifetime)
		events = append(events, ShootEvent{Owner: entity.OwnerEnemy, Pos: pos})
	}
	return events
}

func (s *WeaponSystem) interval(e *entity.Enemy) float64 {
	ec := s.enemies[e.Pattern.String()]
	if s.NextInterval == nil {
		return ec.FireCooldownMax
	}
	return s.NextInterval(ec)
}
