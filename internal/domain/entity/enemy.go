package entity

import "math"

// Pattern is the movement-pattern tag of an enemy
type Pattern int

const (
	PatternStraight Pattern = iota
	PatternZigZag
	PatternCircular
)

// Patterns lists every movement pattern in declaration order
var Patterns = []Pattern{PatternStraight, PatternZigZag, PatternCircular}

// String returns the config key of the pattern
func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternZigZag:
		return "zigzag"
	case PatternCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// EnemyStats holds the per-pattern tuning an enemy is created with
type EnemyStats struct {
	HitPoints     int
	ContactDamage int
	Score         int
	Speed         float64 // downward pixels per second
	Amplitude     float64 // lateral pixels per second (zigzag, circular)
	Frequency     float64 // radians per second (zigzag, circular)
}

// Enemy is a hostile ship that moves in a fixed pattern and shoots back
type Enemy struct {
	Body
	EnemyStats

	Pattern   Pattern
	HitPoints int
	FireTimer float64 // seconds until the next shot

	// PatternTime is the seconds elapsed since spawn, driving the motion curve
	PatternTime float64
}

// NewEnemy creates a new enemy
func NewEnemy(id EntityID, pos Vec2, shape Shape, pattern Pattern, stats EnemyStats, fireTimer float64) *Enemy {
	return &Enemy{
		Body:       NewBody(id, pos, shape),
		EnemyStats: stats,
		Pattern:    pattern,
		HitPoints:  stats.HitPoints,
		FireTimer:  fireTimer,
	}
}

// TakeDamage applies damage to the enemy.
// Returns true only on the hit that takes hit-points to zero, so callers
// can award score exactly once.
func (e *Enemy) TakeDamage(damage int) bool {
	if !e.Alive || damage <= 0 {
		return false
	}
	e.HitPoints -= damage
	if e.HitPoints <= 0 {
		e.HitPoints = 0
		e.Kill()
		return true
	}
	return false
}

// motion computes the velocity of a pattern at time t
type motion func(s *EnemyStats, t float64) Vec2

var patternMotion = [...]motion{
	PatternStraight: func(s *EnemyStats, _ float64) Vec2 {
		return Vec2{0, s.Speed}
	},
	PatternZigZag: func(s *EnemyStats, t float64) Vec2 {
		return Vec2{math.Sin(t*s.Frequency) * s.Amplitude, s.Speed}
	},
	PatternCircular: func(s *EnemyStats, t float64) Vec2 {
		// circle of radius Amplitude/Frequency drifting down at Speed
		return Vec2{
			math.Sin(t*s.Frequency) * s.Amplitude,
			math.Cos(t*s.Frequency)*s.Amplitude + s.Speed,
		}
	},
}

// Steer advances the pattern clock by dt and sets the velocity for this tick
func (e *Enemy) Steer(dt float64) {
	e.PatternTime += dt
	if int(e.Pattern) < 0 || int(e.Pattern) >= len(patternMotion) {
		e.Vel = Vec2{0, e.Speed}
		return
	}
	e.Vel = patternMotion[e.Pattern](&e.EnemyStats, e.PatternTime)
}

// TickFire counts the fire timer down and reports whether it elapsed.
// The caller rearms FireTimer after a shot.
func (e *Enemy) TickFire(dt float64) bool {
	if !e.Alive {
		return false
	}
	e.FireTimer -= dt
	return e.FireTimer <= 0
}
