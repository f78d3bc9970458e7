package entity

// EntityID is a unique identifier for an entity.
// IDs are assigned by the world container and never recycled within a session.
type EntityID uint32

// Category tags what an entity is for collision and rendering purposes
type Category int

const (
	CategoryPlayer Category = iota
	CategoryEnemy
	CategoryProjectile
	CategoryDebris
	CategoryParticle
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "Player"
	case CategoryEnemy:
		return "Enemy"
	case CategoryProjectile:
		return "Projectile"
	case CategoryDebris:
		return "Debris"
	case CategoryParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// Owner tags which side fired a projectile
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the config key of the owner ("player" or "enemy")
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}
