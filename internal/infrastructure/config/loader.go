package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/starship/configs"
)

// EnvConfigDir names a directory of YAML files that replaces the embedded tuning
const EnvConfigDir = "STARSHIP_CONFIG_DIR"

// GameConfig holds all loaded shooter configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Spawn    *SpawnConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// Default returns a loader over $STARSHIP_CONFIG_DIR when it is set,
// otherwise over the tuning embedded in the binary.
func Default() *Loader {
	if dir := GetEnv(EnvConfigDir, ""); dir != "" {
		return NewLoader(dir)
	}
	return NewFSLoader(configs.FS, "configs")
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) load(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.load("physics.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.load("entities.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSpawn loads spawn.yaml
func (l *Loader) LoadSpawn() (*SpawnConfig, error) {
	var cfg SpawnConfig
	if err := l.load("spawn.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLaunch loads launch.yaml and validates it
func (l *Loader) LoadLaunch() (*LaunchConfig, error) {
	var cfg LaunchConfig
	if err := l.load("launch.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid launch.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadAll loads and validates all shooter configurations (physics, entities, spawn)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	spawn, err := l.LoadSpawn()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics:  physics,
		Entities: entities,
		Spawn:    spawn,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}
