package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Tone is a decaying sine, optionally swept and mixed with noise
type Tone struct {
	Freq     float64 // Hz at the start
	EndFreq  float64 // Hz at the end; 0 keeps Freq
	Duration float64 // seconds
	Decay    float64 // exponential envelope rate
	Volume   float64 // peak amplitude in [0, 1]
	Noise    float64 // share of noise in [0, 1]
}

var tones = map[Sound]Tone{
	SoundShoot:      {Freq: 1320, EndFreq: 660, Duration: 0.08, Decay: 30, Volume: 0.15},
	SoundEnemyShoot: {Freq: 440, EndFreq: 330, Duration: 0.1, Decay: 25, Volume: 0.1},
	SoundHit:        {Freq: 220, Duration: 0.12, Decay: 20, Volume: 0.2, Noise: 0.4},
	SoundExplosion:  {Freq: 90, EndFreq: 40, Duration: 0.45, Decay: 7, Volume: 0.3, Noise: 0.7},
	SoundShipDown:   {Freq: 160, EndFreq: 30, Duration: 1.2, Decay: 3, Volume: 0.35, Noise: 0.6},
}

// Synthesize renders the tone as 16-bit little-endian stereo PCM.
// Noise comes from a fixed LCG so the same tone always yields the same bytes.
func (t Tone) Synthesize(sampleRate int) []byte {
	n := int(float64(sampleRate) * t.Duration)
	buf := make([]byte, n*4)

	end := t.EndFreq
	if end == 0 {
		end = t.Freq
	}

	var phase float64
	seed := uint32(1)
	for i := 0; i < n; i++ {
		tm := float64(i) / float64(sampleRate)
		freq := t.Freq + (end-t.Freq)*tm/t.Duration
		phase += 2 * math.Pi * freq / float64(sampleRate)

		seed = seed*1664525 + 1013904223
		noise := float64(seed>>16)/32768 - 1

		envelope := math.Exp(-t.Decay * tm)
		sample := (math.Sin(phase)*(1-t.Noise) + noise*t.Noise) * envelope * t.Volume
		v := int16(sample * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

// Buffer decodes the synthesized PCM into a beep buffer of the given format
func (t Tone) Buffer(format beep.Format) *beep.Buffer {
	pcm := t.Synthesize(int(format.SampleRate))
	pcmFormat := beep.Format{SampleRate: format.SampleRate, NumChannels: 2, Precision: 2}
	width := pcmFormat.Width()

	buf := beep.NewBuffer(format)
	buf.Append(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if len(pcm) < width {
			return 0, false
		}
		n := 0
		for n < len(samples) && len(pcm) >= width {
			samples[n], _ = pcmFormat.DecodeSigned(pcm)
			pcm = pcm[width:]
			n++
		}
		return n, true
	}))
	return buf
}
