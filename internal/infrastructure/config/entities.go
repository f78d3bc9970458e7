package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player      PlayerConfig                `yaml:"player"`
	Enemies     map[string]EnemyConfig      `yaml:"enemies"`
	Projectiles map[string]ProjectileConfig `yaml:"projectiles"`
	Debris      DebrisConfig                `yaml:"debris"`
}

type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerConfig struct {
	Size           Size    `yaml:"size"`
	MaxHealth      int     `yaml:"maxHealth"`
	RegenPerSecond float64 `yaml:"regenPerSecond"`
	FireCooldown   float64 `yaml:"fireCooldown"`
	RamDamage      int     `yaml:"ramDamage"` // damage dealt to an enemy on contact
}

// EnemyConfig is keyed by movement pattern name (straight, zigzag, circular).
type EnemyConfig struct {
	Size            Size    `yaml:"size"`
	HitPoints       int     `yaml:"hitPoints"`
	ContactDamage   int     `yaml:"contactDamage"`
	Score           int     `yaml:"score"`
	Speed           float64 `yaml:"speed"`
	Amplitude       float64 `yaml:"amplitude,omitempty"`
	Frequency       float64 `yaml:"frequency,omitempty"`
	FireCooldownMin float64 `yaml:"fireCooldownMin"`
	FireCooldownMax float64 `yaml:"fireCooldownMax"`
}

type ProjectileConfig struct {
	Size     Size    `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
	Lifetime float64 `yaml:"lifetime"`
}

type DebrisConfig struct {
	MinSize  float64 `yaml:"minSize"`
	MaxSize  float64 `yaml:"maxSize"`
	Damage   int     `yaml:"damage"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
}
