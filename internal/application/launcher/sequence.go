package launcher

import (
	"math/rand"

	"github.com/younwookim/starship/internal/domain/launch"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// NewSequence builds the launch sequence described by launch.yaml
func NewSequence(cfg *config.LaunchConfig, rng *rand.Rand) *launch.Sequence {
	return launch.NewSequence(launch.Params{
		Width:          cfg.Width,
		Height:         cfg.Height,
		StarCount:      cfg.StarCount,
		TwinkleChance:  cfg.TwinkleChance,
		AscentPerFrame: cfg.AscentPerFrame,
		ResetBelow:     cfg.ResetBelow,
		StartOffset:    cfg.StartOffset,
	}, rng)
}

// New wires a runner for cfg around a renderer and engine
func New(cfg *config.LaunchConfig, rng *rand.Rand, renderer Renderer, engine Engine) *Runner {
	return NewRunner(NewSequence(cfg, rng), cfg.Height, renderer, engine, cfg.FrameDelay())
}
