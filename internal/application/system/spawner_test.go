package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starship/internal/application/world"
	"github.com/younwookim/starship/internal/domain/entity"
)

func TestSpawner_ProbabilityNonDecreasing(t *testing.T) {
	s := NewSpawner(createTestGameConfig(), testRNG())

	assert.Equal(t, 0.01, s.Probability(0))
	assert.InDelta(t, 0.015, s.Probability(1), 1e-12)
	assert.Equal(t, 0.08, s.Probability(100), "capped at max")
	assert.Equal(t, s.Probability(0), s.Probability(-3))

	prev := 0.0
	for tier := 0; tier <= 50; tier++ {
		p := s.Probability(tier)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestSpawner_NeverSpawnsAtZeroProbability(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Spawn.Spawner.BaseProbability = 0
	cfg.Spawn.Spawner.PerTier = 0
	s := NewSpawner(cfg, testRNG())
	w := world.NewWorld()

	for i := 0; i < 1000; i++ {
		assert.Equal(t, SpawnNone, s.Update(w, 5))
	}
	assert.Equal(t, 0, w.Count())
}

func TestSpawner_SpawnsOnEdgesWithConfiguredStats(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Spawn.Spawner.BaseProbability = 1
	cfg.Spawn.Spawner.MaxProbability = 1
	s := NewSpawner(cfg, testRNG())
	w := world.NewWorld()

	for i := 0; i < 200; i++ {
		s.Update(w, 0)
	}

	require.NotEmpty(t, w.Enemies)
	require.NotEmpty(t, w.Debris)
	assert.Equal(t, 200, len(w.Enemies)+len(w.Debris), "no player means no safe zone skips")

	for _, e := range w.Enemies {
		ec := cfg.Entities.Enemies[e.Pattern.String()]
		assert.Equal(t, ec.HitPoints, e.HitPoints)
		assert.Equal(t, ec.Score, e.Score)
		assert.GreaterOrEqual(t, e.FireTimer, ec.FireCooldownMin)
		assert.LessOrEqual(t, e.FireTimer, ec.FireCooldownMax)
		assert.True(t, onEdge(e.Pos, 17.5, 25), "enemy at %v", e.Pos)
	}
	for _, d := range w.Debris {
		assert.GreaterOrEqual(t, d.Size, 10.0)
		assert.LessOrEqual(t, d.Size, 30.0)
		assert.Equal(t, 20, d.Damage)
		assert.True(t, onEdge(d.Pos, d.Size/2, d.Size/2), "debris at %v", d.Pos)
		assert.False(t, d.Vel.IsZero())
	}
}

func onEdge(p entity.Vec2, hw, hh float64) bool {
	const eps = 1e-9
	top := p.Y == -hh
	left := p.X > hw-eps && p.X < hw+eps
	right := p.X > 1280-hw-eps && p.X < 1280-hw+eps
	return top || left || right
}

func TestSpawner_SkipsSafeZone(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Spawn.Spawner.BaseProbability = 1
	cfg.Spawn.Spawner.MaxProbability = 1
	cfg.Spawn.Spawner.SafeRadius = 5000 // covers the whole screen
	s := NewSpawner(cfg, testRNG())
	w := world.NewWorld()
	w.SpawnPlayer(entity.Vec2{X: 640, Y: 360}, entity.Box(40, 60), 100, 0.2)

	for i := 0; i < 50; i++ {
		assert.Equal(t, SpawnSkipped, s.Update(w, 0))
	}
	assert.Equal(t, 0, w.Count(), "skipped spawns are not retried")
}

func TestSpawner_Deterministic(t *testing.T) {
	cfg := createTestGameConfig()
	run := func() []SpawnOutcome {
		s := NewSpawner(cfg, testRNG())
		w := world.NewWorld()
		out := make([]SpawnOutcome, 0, 500)
		for i := 0; i < 500; i++ {
			out = append(out, s.Update(w, 3))
		}
		return out
	}

	assert.Equal(t, run(), run())
}
