package config

// SpawnConfig is the root config for spawn.yaml
type SpawnConfig struct {
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpawnerConfig holds the per-tick spawn probability curve:
// p(tier) = min(MaxProbability, BaseProbability + PerTier*tier).
type SpawnerConfig struct {
	BaseProbability float64 `yaml:"baseProbability"`
	PerTier         float64 `yaml:"perTier"`
	MaxProbability  float64 `yaml:"maxProbability"`
	EnemyShare      float64 `yaml:"enemyShare"`
	SafeRadius      float64 `yaml:"safeRadius"`
}

type DifficultyConfig struct {
	TierSeconds float64 `yaml:"tierSeconds"`
	TierScore   int     `yaml:"tierScore"`
	MaxTier     int     `yaml:"maxTier"`
}
