// Package replay provides scripted input sources: recorded frame lists that
// drive a session deterministically, and a seeded random pilot for soak runs.
package replay

import "github.com/younwookim/starship/internal/application/system"

// FrameInput is the input of a single frame
type FrameInput struct {
	F int // Frame number

	L, R, U, D bool // Movement
	Fire       bool

	Start, Pause, Restart, Quit bool
}

// State converts the frame to the input state polled by a scene
func (fi FrameInput) State() system.InputState {
	return system.InputState{
		Left:    fi.L,
		Right:   fi.R,
		Up:      fi.U,
		Down:    fi.D,
		Fire:    fi.Fire,
		Start:   fi.Start,
		Pause:   fi.Pause,
		Restart: fi.Restart,
		Quit:    fi.Quit,
	}
}

// FromState records an input state as frame f
func FromState(f int, in system.InputState) FrameInput {
	return FrameInput{
		F: f,
		L: in.Left, R: in.Right, U: in.Up, D: in.Down,
		Fire:  in.Fire,
		Start: in.Start, Pause: in.Pause, Restart: in.Restart, Quit: in.Quit,
	}
}

// Script is a seed plus the ordered frame inputs to play against it
type Script struct {
	Seed   int64
	Frames []FrameInput
}

// Builder appends frames to a Script
type Builder struct {
	script Script
}

// NewBuilder starts an empty script for seed
func NewBuilder(seed int64) *Builder {
	return &Builder{script: Script{Seed: seed}}
}

// Hold repeats in for n frames
func (b *Builder) Hold(n int, in system.InputState) *Builder {
	for i := 0; i < n; i++ {
		b.script.Frames = append(b.script.Frames, FromState(len(b.script.Frames), in))
	}
	return b
}

// Idle appends n frames without input
func (b *Builder) Idle(n int) *Builder {
	return b.Hold(n, system.InputState{})
}

// Tap appends a single frame of in
func (b *Builder) Tap(in system.InputState) *Builder {
	return b.Hold(1, in)
}

func (b *Builder) Build() Script {
	return b.script
}
