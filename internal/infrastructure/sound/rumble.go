// Package sound plays the engine rumble under the terminal launch animation.
package sound

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/starship/internal/infrastructure/config"
)

// ErrDisabled is returned by Ignite when launch.yaml turns the rumble off
var ErrDisabled = errors.New("rumble disabled")

// Rumble is a looping low drone mixed with engine crackle.
// It implements launcher.Engine.
type Rumble struct {
	cfg     config.RumbleConfig
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	started bool
}

func NewRumble(cfg config.RumbleConfig) *Rumble {
	return &Rumble{cfg: cfg}
}

// Ignite opens the speaker and starts the drone
func (r *Rumble) Ignite() error {
	if !r.cfg.Enabled {
		return ErrDisabled
	}

	sr := beep.SampleRate(r.cfg.SampleRate)
	stream, err := r.stream(sr)
	if err != nil {
		return err
	}

	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	r.volume = &effects.Volume{Streamer: stream, Base: 2, Volume: r.cfg.Volume}
	r.ctrl = &beep.Ctrl{Streamer: r.volume}
	speaker.Play(r.ctrl)
	r.started = true
	return nil
}

// stream mixes the fundamental, a fifth above it and the crackle
func (r *Rumble) stream(sr beep.SampleRate) (beep.Streamer, error) {
	base, err := generators.SineTone(sr, r.cfg.Frequency)
	if err != nil {
		return nil, fmt.Errorf("invalid rumble frequency %v: %w", r.cfg.Frequency, err)
	}
	fifth, err := generators.SineTone(sr, r.cfg.Frequency*1.5)
	if err != nil {
		return nil, fmt.Errorf("invalid rumble frequency %v: %w", r.cfg.Frequency*1.5, err)
	}
	return beep.Mix(
		&effects.Volume{Streamer: base, Base: 2, Volume: -1},
		&effects.Volume{Streamer: fifth, Base: 2, Volume: -3},
		NewCrackle(1, 0.35),
	), nil
}

// Throttle scales the rumble by level in [0, 1]
func (r *Rumble) Throttle(level float64) {
	if !r.started {
		return
	}
	speaker.Lock()
	r.volume.Volume, r.volume.Silent = VolumeFor(r.cfg.Volume, level)
	speaker.Unlock()
}

// Close stops the drone and releases the speaker
func (r *Rumble) Close() error {
	if !r.started {
		return nil
	}
	speaker.Lock()
	r.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	speaker.Close()
	r.started = false
	return nil
}

// VolumeFor converts a linear level into the base-2 exponent applied on
// top of the configured volume. Non-positive levels are silent.
func VolumeFor(base, level float64) (volume float64, silent bool) {
	if level <= 0 {
		return base, true
	}
	return base + math.Log2(min(level, 1)), false
}

// Crackle is band-limited noise: random samples smoothed by a one-pole filter
type Crackle struct {
	seed   uint32
	amp    float64
	smooth float64
	last   float64
}

// NewCrackle creates a crackle streamer. smooth in (0, 1] is the filter
// coefficient; lower values give a deeper rumble.
func NewCrackle(seed uint32, smooth float64) *Crackle {
	return &Crackle{seed: seed, amp: 0.5, smooth: smooth}
}

func (c *Crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		c.seed = c.seed*1664525 + 1013904223
		white := float64(c.seed>>8)/float64(1<<23) - 1
		c.last += c.smooth * (white - c.last)
		samples[i][0] = c.last * c.amp
		samples[i][1] = c.last * c.amp
	}
	return len(samples), true
}

func (c *Crackle) Err() error {
	return nil
}
