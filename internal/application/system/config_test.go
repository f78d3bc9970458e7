package system

import (
	"math/rand"

	"github.com/younwookim/starship/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestGameConfig() *config.GameConfig {
	enemy := func(score int, speed, amp, freq float64) config.EnemyConfig {
		return config.EnemyConfig{
			Size:            config.Size{Width: 35, Height: 50},
			HitPoints:       3,
			ContactDamage:   25,
			Score:           score,
			Speed:           speed,
			Amplitude:       amp,
			Frequency:       freq,
			FireCooldownMin: 1,
			FireCooldownMax: 3,
		}
	}

	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display: config.DisplayConfig{
				ScreenWidth:  1280,
				ScreenHeight: 720,
				Scale:        1,
				Framerate:    60,
			},
			Movement: config.MovementConfig{
				Acceleration: 720,
				Friction:     0.95,
				MaxSpeed:     300,
				StopSpeed:    1,
			},
			Bounds: config.BoundsConfig{DespawnMargin: 64},
			Particles: config.ParticlesConfig{
				Capacity:  64,
				Drag:      0.96,
				Thrust:    config.EmitterConfig{Count: 2, Lifetime: 0.5, MinSpeed: 120, MaxSpeed: 240, Spread: 15, Size: 3},
				Explosion: config.EmitterConfig{Count: 24, Lifetime: 0.8, MinSpeed: 60, MaxSpeed: 260, Size: 4},
				Impact:    config.EmitterConfig{Count: 6, Lifetime: 0.3, MinSpeed: 40, MaxSpeed: 140, Size: 2},
			},
		},
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{
				Size:           config.Size{Width: 40, Height: 60},
				MaxHealth:      100,
				RegenPerSecond: 2,
				FireCooldown:   0.2,
				RamDamage:      3,
			},
			Enemies: map[string]config.EnemyConfig{
				"straight": enemy(100, 180, 0, 0),
				"zigzag":   enemy(150, 120, 180, 2),
				"circular": enemy(200, 40, 120, 3),
			},
			Projectiles: map[string]config.ProjectileConfig{
				"player": {Size: config.Size{Width: 4, Height: 8}, Speed: 600, Damage: 1, Lifetime: 2},
				"enemy":  {Size: config.Size{Width: 4, Height: 8}, Speed: 300, Damage: 10, Lifetime: 2},
			},
			Debris: config.DebrisConfig{MinSize: 10, MaxSize: 30, Damage: 20, MinSpeed: 60, MaxSpeed: 180},
		},
		Spawn: &config.SpawnConfig{
			Spawner: config.SpawnerConfig{
				BaseProbability: 0.01,
				PerTier:         0.005,
				MaxProbability:  0.08,
				EnemyShare:      0.6,
				SafeRadius:      150,
			},
			Difficulty: config.DifficultyConfig{TierSeconds: 20, TierScore: 1000, MaxTier: 10},
		},
	}
}
