package system

import "github.com/younwookim/starship/internal/domain/entity"

// Event is a discrete gameplay occurrence emitted by a tick.
// The audio sink and tests consume events; gameplay never reads them back.
type Event interface {
	isEvent()
}

// ShootEvent is emitted when a projectile is fired
type ShootEvent struct {
	Owner entity.Owner
	Pos   entity.Vec2
}

func (ShootEvent) isEvent() {}

// CollisionEvent is emitted for every resolved overlap between two categories
type CollisionEvent struct {
	A, B   entity.Category
	Damage int
	Pos    entity.Vec2
}

func (CollisionEvent) isEvent() {}

// ExplosionEvent is emitted when an enemy, debris or the starship is destroyed
type ExplosionEvent struct {
	Category entity.Category
	Pos      entity.Vec2
	Size     float64
}

func (ExplosionEvent) isEvent() {}
