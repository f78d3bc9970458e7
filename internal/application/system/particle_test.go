package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/starship/internal/domain/entity"
)

func newTestParticles(capacity int) *ParticleSystem {
	cfg := createTestGameConfig().Physics.Particles
	cfg.Capacity = capacity
	return NewParticleSystem(cfg, testRNG())
}

func TestParticles_ThrustEmitsBelowShip(t *testing.T) {
	s := newTestParticles(64)

	s.Thrust(entity.Vec2{X: 100, Y: 200})

	assert.Equal(t, 2, s.Len())
	for _, p := range s.Particles() {
		assert.Equal(t, entity.ParticleThrust, p.Kind)
		assert.InDelta(t, 100, p.Pos.X, 15)
		assert.Greater(t, p.Vel.Y, 0.0, "exhaust drifts down")
	}
}

func TestParticles_CapacityBound(t *testing.T) {
	s := newTestParticles(10)

	s.Impact(entity.Vec2{})
	s.Impact(entity.Vec2{})

	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 2, s.Dropped())
}

func TestParticles_ExpireAfterLifetime(t *testing.T) {
	s := newTestParticles(64)
	s.Explosion(entity.Vec2{X: 50, Y: 50}, 50)
	assert.Equal(t, 24, s.Len())

	s.Update(0.1)
	assert.Equal(t, 24, s.Len())
	for _, p := range s.Particles() {
		assert.NotEqual(t, entity.Vec2{X: 50, Y: 50}, p.Pos, "particles move")
	}

	for i := 0; i < 60; i++ {
		s.Update(testDT)
	}
	assert.Equal(t, 0, s.Len(), "every particle expired")
}

func TestParticles_ExplosionScalesWithSize(t *testing.T) {
	small := newTestParticles(512)
	small.Explosion(entity.Vec2{}, 10)

	big := newTestParticles(512)
	big.Explosion(entity.Vec2{}, 100)

	assert.Equal(t, 12, small.Len())
	assert.Equal(t, 48, big.Len())
}

func TestParticles_Depth(t *testing.T) {
	ps := newTestParticles(512)

	ps.Thrust(entity.Vec2{})
	ps.Explosion(entity.Vec2{}, 40)
	for _, p := range ps.Particles() {
		assert.Greater(t, p.Depth, 0.0)
		assert.LessOrEqual(t, p.Depth, 1.0)
		if p.Kind == entity.ParticleThrust {
			assert.Equal(t, 1.0, p.Depth)
		}
	}

	assert.Equal(t, 0.5, burstDepth(10, 10, 90))
	assert.Equal(t, 1.0, burstDepth(90, 10, 90))
	assert.Equal(t, 1.0, burstDepth(5, 5, 5))
}
