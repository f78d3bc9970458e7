package config

import (
	"errors"
	"fmt"
)

// MaxPlayerHealth caps player.maxHealth; health always lives in [0, MaxPlayerHealth]
const MaxPlayerHealth = 100

// EnemyPatterns lists the enemies keys every entities.yaml must define.
var EnemyPatterns = []string{"straight", "zigzag", "circular"}

// Validate checks the shooter configuration for values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	if c.Physics == nil || c.Entities == nil || c.Spawn == nil {
		return errors.New("physics, entities and spawn sections are required")
	}

	d := c.Physics.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("display.framerate must be > 0, got %d", d.Framerate)
	}
	if f := c.Physics.Movement.Friction; f <= 0 || f > 1 {
		return fmt.Errorf("movement.friction must be in (0, 1], got %v", f)
	}
	if c.Physics.Particles.Capacity < 0 {
		return fmt.Errorf("particles.capacity must be >= 0, got %d", c.Physics.Particles.Capacity)
	}

	p := c.Entities.Player
	if p.MaxHealth <= 0 || p.MaxHealth > MaxPlayerHealth {
		return fmt.Errorf("player.maxHealth must be in (0, %d], got %d", MaxPlayerHealth, p.MaxHealth)
	}
	if p.RamDamage < 0 {
		return fmt.Errorf("player.ramDamage must be >= 0, got %d", p.RamDamage)
	}
	if p.RegenPerSecond < 0 {
		return fmt.Errorf("player.regenPerSecond must be >= 0, got %v", p.RegenPerSecond)
	}

	for _, name := range EnemyPatterns {
		e, ok := c.Entities.Enemies[name]
		if !ok {
			return fmt.Errorf("enemies.%s is missing", name)
		}
		if e.HitPoints <= 0 {
			return fmt.Errorf("enemies.%s.hitPoints must be > 0, got %d", name, e.HitPoints)
		}
		if e.ContactDamage < 0 {
			return fmt.Errorf("enemies.%s.contactDamage must be >= 0, got %d", name, e.ContactDamage)
		}
		if e.Score < 0 {
			return fmt.Errorf("enemies.%s.score must be >= 0, got %d", name, e.Score)
		}
		if e.FireCooldownMax < e.FireCooldownMin {
			return fmt.Errorf("enemies.%s fire cooldown range is inverted", name)
		}
	}

	for _, owner := range []string{"player", "enemy"} {
		shot, ok := c.Entities.Projectiles[owner]
		if !ok {
			return fmt.Errorf("projectiles.%s is missing", owner)
		}
		if shot.Damage <= 0 {
			return fmt.Errorf("projectiles.%s.damage must be > 0, got %d", owner, shot.Damage)
		}
		if shot.Lifetime <= 0 {
			return fmt.Errorf("projectiles.%s.lifetime must be > 0, got %v", owner, shot.Lifetime)
		}
	}

	if c.Entities.Debris.MinSize <= 0 || c.Entities.Debris.MaxSize < c.Entities.Debris.MinSize {
		return fmt.Errorf("debris size range [%v, %v] is invalid", c.Entities.Debris.MinSize, c.Entities.Debris.MaxSize)
	}
	if c.Entities.Debris.Damage < 0 {
		return fmt.Errorf("debris.damage must be >= 0, got %d", c.Entities.Debris.Damage)
	}

	s := c.Spawn.Spawner
	if s.BaseProbability < 0 || s.PerTier < 0 {
		return errors.New("spawner probabilities must be >= 0")
	}
	if s.MaxProbability < s.BaseProbability || s.MaxProbability > 1 {
		return fmt.Errorf("spawner.maxProbability must be in [baseProbability, 1], got %v", s.MaxProbability)
	}
	if s.EnemyShare < 0 || s.EnemyShare > 1 {
		return fmt.Errorf("spawner.enemyShare must be in [0, 1], got %v", s.EnemyShare)
	}
	if c.Spawn.Difficulty.TierSeconds <= 0 {
		return fmt.Errorf("difficulty.tierSeconds must be > 0, got %v", c.Spawn.Difficulty.TierSeconds)
	}
	if c.Spawn.Difficulty.MaxTier < 0 {
		return fmt.Errorf("difficulty.maxTier must be >= 0, got %d", c.Spawn.Difficulty.MaxTier)
	}

	return nil
}

// Validate checks the launch animation configuration.
func (c *LaunchConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameDelayMs <= 0 {
		return fmt.Errorf("frameDelayMs must be > 0, got %d", c.FrameDelayMs)
	}
	if c.TwinkleChance < 0 || c.TwinkleChance > 1 {
		return fmt.Errorf("twinkleChance must be in [0, 1], got %v", c.TwinkleChance)
	}
	if c.AscentPerFrame <= 0 {
		return fmt.Errorf("ascentPerFrame must be > 0, got %v", c.AscentPerFrame)
	}
	if c.Rumble.Enabled && c.Rumble.SampleRate <= 0 {
		return fmt.Errorf("rumble.sampleRate must be > 0, got %d", c.Rumble.SampleRate)
	}
	return nil
}
