package replay

import (
	"math/rand"

	"github.com/younwookim/starship/internal/application/system"
)

// Replayer plays a Script back as an input source. After the last frame it
// keeps returning an idle input state.
type Replayer struct {
	data  Script
	frame int
}

// NewReplayer creates a new replayer from a script
func NewReplayer(data Script) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// Poll returns the input for the current frame and advances (implements system.InputSource)
func (r *Replayer) Poll() system.InputState {
	in, _ := r.Next()
	return in
}

// Next returns the input for the current frame and whether the script still had one
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.State(), true
}

// Pilot is a seeded random input source. It holds each manoeuvre for a
// random number of frames and keeps the trigger pulled most of the time.
type Pilot struct {
	rng  *rand.Rand
	cur  system.InputState
	left int
}

// NewPilot creates a random pilot drawing from rng
func NewPilot(rng *rand.Rand) *Pilot {
	return &Pilot{rng: rng}
}

// Poll implements system.InputSource
func (p *Pilot) Poll() system.InputState {
	if p.left <= 0 {
		p.cur = system.InputState{
			Up:    p.rng.Intn(4) == 0,
			Down:  p.rng.Intn(4) == 0,
			Left:  p.rng.Intn(3) == 0,
			Right: p.rng.Intn(3) == 0,
			Fire:  p.rng.Intn(5) != 0,
		}
		p.left = 10 + p.rng.Intn(50)
	}
	p.left--
	return p.cur
}
