package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Movement  MovementConfig  `yaml:"movement"`
	Bounds    BoundsConfig    `yaml:"bounds"`
	Particles ParticlesConfig `yaml:"particles"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

// MovementConfig drives the starship's thrust model.
// Acceleration and MaxSpeed are in pixels per second, Friction is the
// fraction of velocity kept each tick.
type MovementConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	StopSpeed    float64 `yaml:"stopSpeed"`
}

type BoundsConfig struct {
	// DespawnMargin is how far outside the screen a non-player entity may
	// travel before it is expired.
	DespawnMargin float64 `yaml:"despawnMargin"`
}

type ParticlesConfig struct {
	Capacity  int           `yaml:"capacity"`
	Drag      float64       `yaml:"drag"`
	Thrust    EmitterConfig `yaml:"thrust"`
	Explosion EmitterConfig `yaml:"explosion"`
	Impact    EmitterConfig `yaml:"impact"`
}

// EmitterConfig describes one particle burst.
type EmitterConfig struct {
	Count    int     `yaml:"count"`
	Lifetime float64 `yaml:"lifetime"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	Spread   float64 `yaml:"spread"` // horizontal jitter of the spawn point (pixels)
	Size     float64 `yaml:"size"`
}
