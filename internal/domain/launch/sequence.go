package launch

import (
	"fmt"
	"math/rand"
)

const Title = "STARSHIP FALCON - LAUNCH SEQUENCE"

// Farewell is shown once the animation has stopped
var Farewell = [2]string{
	"Thanks for watching Starship Falcon!",
	"Safe travels through the cosmos!",
}

// Params tunes a launch sequence
type Params struct {
	Width, Height  int
	StarCount      int
	TwinkleChance  float64
	AscentPerFrame float64
	ResetBelow     float64
	StartOffset    int // rows above the bottom edge where the rocket starts
}

// Sequence is the animation state: rocket position, star field and frame count
type Sequence struct {
	params Params
	rng    *rand.Rand
	frame  *Frame
	stars  []Star

	rocketX int
	rocketY float64
	count   int
	laps    int
}

// NewSequence creates a sequence with a fresh star field and the rocket on the pad
func NewSequence(params Params, rng *rand.Rand) *Sequence {
	s := &Sequence{
		params:  params,
		rng:     rng,
		frame:   NewFrame(params.Width, params.Height),
		rocketX: params.Width / 2,
	}
	s.rocketY = s.startY()
	s.stars = NewStarField(rng, params.StarCount, params.Width, params.Height)
	return s
}

func (s *Sequence) startY() float64 {
	return float64(s.params.Height - s.params.StartOffset)
}

// Render draws the current state into the shared frame buffer and returns it.
// The frame is only valid until the next Render call.
func (s *Sequence) Render() *Frame {
	s.frame.Clear()
	DrawStars(s.frame, s.stars, s.rng, s.params.TwinkleChance)
	DrawRocket(s.frame, s.rocketX, s.RocketRow(), s.count)
	return s.frame
}

// Advance moves the rocket up one step and counts the frame.
// Once the rocket passes ResetBelow it returns to the pad under a new star field.
func (s *Sequence) Advance() {
	s.rocketY -= s.params.AscentPerFrame
	if s.rocketY < s.params.ResetBelow {
		s.rocketY = s.startY()
		s.stars = NewStarField(s.rng, s.params.StarCount, s.params.Width, s.params.Height)
		s.laps++
	}
	s.count++
}

// RocketRow is the row of the rocket tip, truncated toward zero
func (s *Sequence) RocketRow() int {
	return int(s.rocketY)
}

func (s *Sequence) RocketY() float64 { return s.rocketY }

func (s *Sequence) FrameCount() int { return s.count }

// Laps counts how many times the rocket left the top and was reset
func (s *Sequence) Laps() int { return s.laps }

func (s *Sequence) Stars() []Star { return s.stars }

// Altitude is the height of the rocket tip above the bottom edge
func (s *Sequence) Altitude() int {
	return s.params.Height - s.RocketRow()
}

// Footer is the status line printed under the frame
func (s *Sequence) Footer() string {
	return fmt.Sprintf("Frame: %04d │ Altitude: %3d units │ Press q to exit", s.count, s.Altitude())
}
