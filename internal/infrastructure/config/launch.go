package config

import "time"

// LaunchConfig is the root config for launch.yaml (terminal launch sequence)
type LaunchConfig struct {
	Width          int          `yaml:"width"`
	Height         int          `yaml:"height"`
	FrameDelayMs   int          `yaml:"frameDelayMs"`
	StarCount      int          `yaml:"starCount"`
	TwinkleChance  float64      `yaml:"twinkleChance"`
	AscentPerFrame float64      `yaml:"ascentPerFrame"`
	ResetBelow     float64      `yaml:"resetBelow"`
	StartOffset    int          `yaml:"startOffset"`
	Rumble         RumbleConfig `yaml:"rumble"`
}

type RumbleConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Frequency  float64 `yaml:"frequency"`
	Volume     float64 `yaml:"volume"` // beep effects.Volume exponent (base 2)
}

// FrameDelay returns the pause between two animation frames.
func (c *LaunchConfig) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}
