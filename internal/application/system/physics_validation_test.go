package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/starship/internal/domain/entity"
)

// These tests run whole seconds of ticks and compare against the tuning values.

func TestPlayerThrust_OneSecond(t *testing.T) {
	s, w := newPhysicsWorld(t)
	p := w.Player
	p.Pos = entity.Vec2{X: 100, Y: 360}

	for i := 0; i < 60; i++ {
		s.ApplyThrust(p, InputState{Right: true}, testDT)
		s.Integrate(w, testDT)
	}

	// With per-tick friction the speed approaches friction*accel*dt/(1-friction)
	terminal := 0.95 * 720 * testDT / (1 - 0.95)
	assert.InDelta(t, terminal*(1-math.Pow(0.95, 60)), p.Vel.X, 1e-6)
	assert.Less(t, terminal, 300.0, "the cap is never reached by thrust alone")
	assert.Greater(t, p.Pos.X, 100+terminal*0.6)
	assert.Equal(t, 360.0, p.Pos.Y)
}

func TestPlayerCoast_TwoSeconds(t *testing.T) {
	s, w := newPhysicsWorld(t)
	p := w.Player
	p.Vel = entity.Vec2{X: 200}

	for i := 0; i < 60; i++ {
		s.ApplyThrust(p, InputState{}, testDT)
	}
	assert.False(t, p.Vel.IsZero(), "still drifting after one second")

	for i := 0; i < 60; i++ {
		s.ApplyThrust(p, InputState{}, testDT)
	}
	assert.True(t, p.Vel.IsZero(), "at rest after two seconds")
}

func TestProjectileMovement_OneSecond(t *testing.T) {
	s, w := newPhysicsWorld(t)
	pr := w.SpawnProjectile(entity.Vec2{X: 640, Y: 700}, entity.Vec2{Y: -600}, entity.Box(4, 8), entity.OwnerPlayer, 1, 2)

	for i := 0; i < 60; i++ {
		s.Integrate(w, testDT)
		s.Expire(w, testDT)
	}

	assert.InDelta(t, 100, pr.Pos.Y, 1e-6)
	assert.True(t, pr.Alive)
	assert.InDelta(t, 1, pr.Lifetime, 1e-9)
}

func TestEnemyMovement_OneSecond(t *testing.T) {
	s, w := newPhysicsWorld(t)
	cfg := createTestGameConfig().Entities.Enemies

	straight := w.SpawnEnemy(entity.Vec2{X: 200}, entity.Box(35, 50), entity.PatternStraight,
		entity.EnemyStats{HitPoints: 3, Speed: cfg["straight"].Speed}, 10)
	zigzag := w.SpawnEnemy(entity.Vec2{X: 600}, entity.Box(35, 50), entity.PatternZigZag,
		entity.EnemyStats{HitPoints: 3, Speed: cfg["zigzag"].Speed, Amplitude: 180, Frequency: 2}, 10)

	for i := 0; i < 60; i++ {
		s.Integrate(w, testDT)
	}

	assert.InDelta(t, 180, straight.Pos.Y, 1e-6)
	assert.Equal(t, 200.0, straight.Pos.X)
	assert.InDelta(t, 120, zigzag.Pos.Y, 1e-6)
	assert.NotEqual(t, 600.0, zigzag.Pos.X, "zigzag drifts sideways")
}
