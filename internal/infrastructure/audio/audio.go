// Package audio turns gameplay events into short synthesized sounds.
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/starship/internal/application/system"
	"github.com/younwookim/starship/internal/domain/entity"
)

// SampleRate of every synthesized buffer
const SampleRate = 44100

// Sink receives discrete gameplay events. Play never blocks.
type Sink interface {
	Play(ev system.Event)
}

// Sound names one pre-synthesized effect
type Sound int

const (
	SoundShoot Sound = iota
	SoundEnemyShoot
	SoundHit
	SoundExplosion
	SoundShipDown
)

// SoundFor maps an event to the effect played for it
func SoundFor(ev system.Event) (Sound, bool) {
	switch e := ev.(type) {
	case system.ShootEvent:
		if e.Owner == entity.OwnerPlayer {
			return SoundShoot, true
		}
		return SoundEnemyShoot, true
	case system.CollisionEvent:
		return SoundHit, true
	case system.ExplosionEvent:
		if e.Category == entity.CategoryPlayer {
			return SoundShipDown, true
		}
		return SoundExplosion, true
	}
	return 0, false
}

// Silent discards every event. It is the fallback when no audio device is available.
type Silent struct{}

func (Silent) Play(system.Event) {}

// Opener opens the output device. speaker.Init is the production opener.
type Opener func(sr beep.SampleRate, bufferSize int) error

// SpeakerSink mixes the effects into the beep speaker
type SpeakerSink struct {
	mixer   *beep.Mixer
	buffers map[Sound]*beep.Buffer
}

// NewSpeakerSink opens the device and synthesizes every effect up front.
// A missing device fails here, before the first frame.
func NewSpeakerSink(open Opener) (*SpeakerSink, error) {
	sr := beep.SampleRate(SampleRate)
	if err := open(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	s := &SpeakerSink{mixer: &beep.Mixer{}, buffers: make(map[Sound]*beep.Buffer, len(tones))}
	for sound, tone := range tones {
		s.buffers[sound] = tone.Buffer(format)
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts the effect for ev on top of whatever is already playing
func (s *SpeakerSink) Play(ev system.Event) {
	sound, ok := SoundFor(ev)
	if !ok {
		return
	}
	buf := s.buffers[sound]
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Voices reports how many effects are still mixing
func (s *SpeakerSink) Voices() int {
	speaker.Lock()
	defer speaker.Unlock()
	return s.mixer.Len()
}

// New returns a speaker sink, or Silent when muted or the device cannot be opened
func New(muted bool) Sink {
	return newSink(muted, speaker.Init)
}

func newSink(muted bool, open Opener) Sink {
	if muted {
		log.Printf("Audio muted")
		return Silent{}
	}
	s, err := NewSpeakerSink(open)
	if err != nil {
		log.Printf("Audio unavailable, running silent: %v", err)
		return Silent{}
	}
	return s
}
