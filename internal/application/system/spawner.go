package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/starship/internal/application/world"
	"github.com/younwookim/starship/internal/domain/entity"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// Edge is the screen edge a spawn enters from
type Edge int

const (
	EdgeTop Edge = iota
	EdgeLeft
	EdgeRight
)

// SpawnOutcome reports what one spawner evaluation did
type SpawnOutcome int

const (
	SpawnNone SpawnOutcome = iota
	SpawnEnemy
	SpawnDebris
	SpawnSkipped // landed in the safe zone, not retried
)

// Spawner decides once per tick whether a new enemy or debris enters the screen
type Spawner struct {
	cfg      config.SpawnerConfig
	entities *config.EntitiesConfig
	rng      *rand.Rand
	width    float64
	height   float64
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(cfg *config.GameConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:      cfg.Spawn.Spawner,
		entities: cfg.Entities,
		rng:      rng,
		width:    float64(cfg.Physics.Display.ScreenWidth),
		height:   float64(cfg.Physics.Display.ScreenHeight),
	}
}

// Probability returns the per-tick spawn chance at a difficulty tier.
// It never decreases as the tier grows.
func (s *Spawner) Probability(tier int) float64 {
	if tier < 0 {
		tier = 0
	}
	return math.Min(s.cfg.MaxProbability, s.cfg.BaseProbability+s.cfg.PerTier*float64(tier))
}

// Update evaluates the spawn gate once
func (s *Spawner) Update(w *world.World, tier int) SpawnOutcome {
	if s.rng.Float64() >= s.Probability(tier) {
		return SpawnNone
	}

	if s.rng.Float64() < s.cfg.EnemyShare {
		return s.spawnEnemy(w)
	}
	return s.spawnDebris(w)
}

func (s *Spawner) spawnEnemy(w *world.World) SpawnOutcome {
	pattern := entity.Patterns[s.rng.Intn(len(entity.Patterns))]
	ec := s.entities.Enemies[pattern.String()]

	pos, _ := s.edgePosition(ec.Size.Width/2, ec.Size.Height/2)
	if s.inSafeZone(w, pos) {
		return SpawnSkipped
	}

	stats := entity.EnemyStats{
		HitPoints:     ec.HitPoints,
		ContactDamage: ec.ContactDamage,
		Score:         ec.Score,
		Speed:         ec.Speed,
		Amplitude:     ec.Amplitude,
		Frequency:     ec.Frequency,
	}
	w.SpawnEnemy(pos, entity.Box(ec.Size.Width, ec.Size.Height), pattern, stats, s.FireInterval(ec))
	return SpawnEnemy
}

func (s *Spawner) spawnDebris(w *world.World) SpawnOutcome {
	dc := s.entities.Debris
	size := dc.MinSize + s.rng.Float64()*(dc.MaxSize-dc.MinSize)

	pos, edge := s.edgePosition(size/2, size/2)
	if s.inSafeZone(w, pos) {
		return SpawnSkipped
	}

	speed := dc.MinSpeed + s.rng.Float64()*(dc.MaxSpeed-dc.MinSpeed)
	var vel entity.Vec2
	switch edge {
	case EdgeLeft:
		vel = entity.Vec2{X: speed, Y: speed * s.rng.Float64()}
	case EdgeRight:
		vel = entity.Vec2{X: -speed, Y: speed * s.rng.Float64()}
	default:
		vel = entity.Vec2{X: speed * (s.rng.Float64() - 0.5), Y: speed}
	}
	spin := (s.rng.Float64()*2 - 1) * math.Pi

	w.SpawnDebris(pos, vel, size, dc.Damage, spin)
	return SpawnDebris
}

// FireInterval draws an enemy fire cooldown uniformly from its configured range
func (s *Spawner) FireInterval(ec config.EnemyConfig) float64 {
	return ec.FireCooldownMin + s.rng.Float64()*(ec.FireCooldownMax-ec.FireCooldownMin)
}

// edgePosition picks an edge and a point along it for a shape with the
// given half extents. Top spawns start just above the screen; side spawns
// straddle the edge in the upper half of the screen.
func (s *Spawner) edgePosition(hw, hh float64) (entity.Vec2, Edge) {
	edge := Edge(s.rng.Intn(3))
	switch edge {
	case EdgeLeft:
		return entity.Vec2{X: hw, Y: hh + s.rng.Float64()*(s.height/2)}, edge
	case EdgeRight:
		return entity.Vec2{X: s.width - hw, Y: hh + s.rng.Float64()*(s.height/2)}, edge
	default:
		return entity.Vec2{X: hw + s.rng.Float64()*(s.width-2*hw), Y: -hh}, edge
	}
}

func (s *Spawner) inSafeZone(w *world.World, pos entity.Vec2) bool {
	p := w.Player
	if p == nil || !p.Alive {
		return false
	}
	return pos.Sub(p.Pos).Len() < s.cfg.SafeRadius
}
