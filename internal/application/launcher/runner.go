// Package launcher runs the launch animation until its context is cancelled.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/younwookim/starship/internal/domain/launch"
)

// Renderer presents one frame with its header and footer lines
type Renderer interface {
	Render(f *launch.Frame, header, footer string) error
	Close() error
}

// Engine is the optional rumble played under the animation
type Engine interface {
	Ignite() error
	// Throttle sets the rumble level in [0, 1]
	Throttle(level float64)
	Close() error
}

// Idle is an Engine that makes no sound
type Idle struct{}

func (Idle) Ignite() error { return nil }
func (Idle) Throttle(float64) {}
func (Idle) Close() error { return nil }

// Ignite starts engine ahead of Run, so a failure is logged before a
// full-screen renderer takes over the terminal. A failed or nil engine
// comes back as Idle.
func Ignite(engine Engine) Engine {
	if engine == nil {
		return Idle{}
	}
	if err := engine.Ignite(); err != nil {
		log.Printf("Engine rumble unavailable, running silent: %v", err)
		return Idle{}
	}
	return running{engine}
}

// running is an engine that has already been ignited
type running struct {
	Engine
}

func (running) Ignite() error { return nil }

// Runner drives a launch sequence at a fixed frame delay
type Runner struct {
	seq      *launch.Sequence
	renderer Renderer
	engine   Engine
	delay    time.Duration
	height   int

	// MaxFrames stops the run after that many frames; 0 runs until cancelled
	MaxFrames int
}

// NewRunner creates a runner. A nil engine runs silent.
func NewRunner(seq *launch.Sequence, height int, renderer Renderer, engine Engine, delay time.Duration) *Runner {
	if engine == nil {
		engine = Idle{}
	}
	return &Runner{
		seq:      seq,
		renderer: renderer,
		engine:   engine,
		delay:    delay,
		height:   height,
	}
}

// Run renders frames until ctx is done, MaxFrames is reached or rendering fails.
// An engine not yet passed through Ignite is ignited here.
// The renderer and engine are always closed before Run returns.
func (r *Runner) Run(ctx context.Context) (err error) {
	r.engine = Ignite(r.engine)
	defer func() {
		err = errors.Join(err, r.engine.Close(), r.renderer.Close())
	}()

	ticker := time.NewTicker(r.delay)
	defer ticker.Stop()

	for frames := 0; r.MaxFrames == 0 || frames < r.MaxFrames; frames++ {
		if ctx.Err() != nil {
			return nil
		}

		if err := r.renderer.Render(r.seq.Render(), launch.Title, r.seq.Footer()); err != nil {
			return fmt.Errorf("failed to render frame %d: %w", r.seq.FrameCount(), err)
		}
		r.engine.Throttle(r.Throttle())
		r.seq.Advance()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// Throttle is the rumble level for the current altitude: full on the pad,
// fading as the rocket climbs.
func (r *Runner) Throttle() float64 {
	if r.height <= 0 {
		return 1
	}
	level := 1 - float64(r.seq.Altitude())/float64(r.height)*0.7
	return max(0.3, min(1, level))
}
