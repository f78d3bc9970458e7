package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPlayer() *Player {
	return NewPlayer(1, Vec2{640, 600}, Box(40, 60), 100, 0.2)
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := newTestPlayer()

	destroyed := p.TakeDamage(20)
	assert.False(t, destroyed)
	assert.Equal(t, 80, p.Health)

	destroyed = p.TakeDamage(500)
	assert.True(t, destroyed)
	assert.Equal(t, 0, p.Health, "health is clamped at zero")
	assert.False(t, p.Alive)

	assert.False(t, p.TakeDamage(10), "a dead ship is not destroyed twice")
	assert.Equal(t, 0, p.Health)
}

func TestPlayer_RegenerateNeverExceedsMax(t *testing.T) {
	p := newTestPlayer()
	p.Health = 98

	for i := 0; i < 600; i++ {
		p.Regenerate(2, 1.0/60.0)
		assert.LessOrEqual(t, p.Health, p.MaxHealth)
	}
	assert.Equal(t, 100, p.Health)
}

func TestPlayer_RegenerateAccumulatesFractions(t *testing.T) {
	p := newTestPlayer()
	p.Health = 50

	// 2 hp/s for one second in 60 steps
	for i := 0; i < 60; i++ {
		p.Regenerate(2, 1.0/60.0)
	}
	assert.InDelta(t, 52, p.Health, 1)
}

func TestPlayer_NoRegenWhenDead(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(100)

	p.Regenerate(100, 1)
	assert.Equal(t, 0, p.Health)
}

func TestPlayer_FireCooldown(t *testing.T) {
	p := newTestPlayer()

	assert.True(t, p.TryFire())
	assert.False(t, p.TryFire(), "cooldown blocks a second shot")

	for i := 0; i < 11; i++ {
		p.TickCooldown(1.0 / 60.0)
	}
	assert.False(t, p.TryFire(), "0.18s is still inside the cooldown")

	p.TickCooldown(1.0 / 60.0)
	p.TickCooldown(1.0 / 60.0)
	assert.True(t, p.TryFire())
}

func TestPlayer_HealthRatio(t *testing.T) {
	p := newTestPlayer()
	p.Health = 25
	assert.Equal(t, 0.25, p.HealthRatio())
}
