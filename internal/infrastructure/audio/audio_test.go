package audio

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starship/internal/application/system"
	"github.com/younwookim/starship/internal/domain/entity"
)

func TestSoundFor(t *testing.T) {
	tests := []struct {
		name string
		ev   system.Event
		want Sound
	}{
		{"player shot", system.ShootEvent{Owner: entity.OwnerPlayer}, SoundShoot},
		{"enemy shot", system.ShootEvent{Owner: entity.OwnerEnemy}, SoundEnemyShoot},
		{"collision", system.CollisionEvent{A: entity.CategoryPlayer, B: entity.CategoryDebris}, SoundHit},
		{"enemy explosion", system.ExplosionEvent{Category: entity.CategoryEnemy}, SoundExplosion},
		{"debris explosion", system.ExplosionEvent{Category: entity.CategoryDebris}, SoundExplosion},
		{"ship down", system.ExplosionEvent{Category: entity.CategoryPlayer}, SoundShipDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SoundFor(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := SoundFor(nil)
	assert.False(t, ok)
}

func TestEverySoundHasATone(t *testing.T) {
	for s := SoundShoot; s <= SoundShipDown; s++ {
		tone, ok := tones[s]
		require.True(t, ok, "sound %d", s)
		assert.Greater(t, tone.Duration, 0.0)
		assert.LessOrEqual(t, tone.Volume, 1.0)
	}
}

func TestTone_Synthesize(t *testing.T) {
	tone := Tone{Freq: 440, Duration: 0.5, Decay: 6, Volume: 0.5}
	buf := tone.Synthesize(SampleRate)

	require.Len(t, buf, int(SampleRate*0.5)*4)
	assert.Equal(t, buf, tone.Synthesize(SampleRate), "synthesis is deterministic")

	peak := func(from, to int) int {
		m := 0
		for i := from; i < to; i++ {
			v := int(int16(binary.LittleEndian.Uint16(buf[i*4:])))
			if v < 0 {
				v = -v
			}
			m = max(m, v)
		}
		return m
	}
	n := len(buf) / 4
	head, tail := peak(0, n/10), peak(n*9/10, n)
	assert.Greater(t, head, tail, "envelope decays")
	assert.LessOrEqual(t, head, 32767/2+1)

	// Both channels carry the same sample
	for i := 0; i < n; i += 997 {
		assert.Equal(t, buf[i*4:i*4+2], buf[i*4+2:i*4+4])
	}
}

func TestSilent(t *testing.T) {
	var s Sink = Silent{}
	assert.NotPanics(t, func() { s.Play(system.ShootEvent{}) })
	assert.IsType(t, Silent{}, New(true))
}

func TestNew_DeviceFailureRunsSilent(t *testing.T) {
	opened := false
	sink := newSink(false, func(beep.SampleRate, int) error {
		opened = true
		return errors.New("no audio device")
	})

	assert.True(t, opened, "device is opened before the game starts")
	assert.IsType(t, Silent{}, sink)
	assert.NotPanics(t, func() { sink.Play(system.ShootEvent{}) })
}

func TestNew_MutedNeverOpensDevice(t *testing.T) {
	sink := newSink(true, func(beep.SampleRate, int) error {
		t.Fatal("muted sink must not open the device")
		return nil
	})
	assert.IsType(t, Silent{}, sink)
}

func TestSpeakerSink_Play(t *testing.T) {
	var gotRate beep.SampleRate
	var gotBuffer int
	s, err := NewSpeakerSink(func(sr beep.SampleRate, bufferSize int) error {
		gotRate, gotBuffer = sr, bufferSize
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, beep.SampleRate(SampleRate), gotRate)
	assert.Positive(t, gotBuffer)
	assert.Len(t, s.buffers, len(tones))

	s.Play(system.ShootEvent{Owner: entity.OwnerPlayer})
	s.Play(system.ExplosionEvent{Category: entity.CategoryEnemy})
	s.Play(nil)
	assert.Equal(t, 2, s.Voices())
}

func TestTone_Buffer(t *testing.T) {
	tone := tones[SoundShoot]
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	buf := tone.Buffer(format)

	assert.Equal(t, len(tone.Synthesize(SampleRate))/4, buf.Len())
}
