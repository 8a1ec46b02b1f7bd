package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

// Voice describes one synthesized cue: a sine tone whose gain ramps from 0
// to Volume over Attack, falls to 70% over Sustain and to silence over Release.
type Voice struct {
	Volume  float64
	Freq    float64
	Attack  time.Duration
	Sustain time.Duration
	Release time.Duration
}

// Duration returns the total length of the voice.
func (v Voice) Duration() time.Duration {
	return v.Attack + v.Sustain + v.Release
}

// Voices maps every cue to its tone.
var Voices = map[core.Cue]Voice{
	core.CueShoot:        {Volume: 0.3, Freq: 100, Attack: 10 * time.Millisecond, Sustain: 50 * time.Millisecond, Release: 200 * time.Millisecond},
	core.CueExplosion:    {Volume: 1, Freq: 200, Attack: 20 * time.Millisecond, Sustain: 200 * time.Millisecond, Release: 400 * time.Millisecond},
	core.CuePowerup:      {Volume: 0.5, Freq: 400, Attack: 10 * time.Millisecond, Sustain: 300 * time.Millisecond, Release: 300 * time.Millisecond},
	core.CueHit:          {Volume: 0.2, Freq: 150, Attack: 10 * time.Millisecond, Sustain: 50 * time.Millisecond, Release: 100 * time.Millisecond},
	core.CueDeath:        {Volume: 1.5, Freq: 100, Attack: 10 * time.Millisecond, Sustain: 300 * time.Millisecond, Release: 800 * time.Millisecond},
	core.CueWaveComplete: {Volume: 0.7, Freq: 500, Attack: 50 * time.Millisecond, Sustain: 500 * time.Millisecond, Release: 500 * time.Millisecond},
}

// tone is a sine oscillator shaped by the voice envelope.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
	attack   int
	sustain  int
	total    int
}

func newTone(v Voice, rate beep.SampleRate) *tone {
	attack := rate.N(v.Attack)
	sustain := rate.N(v.Sustain)
	return &tone{
		freq:    v.Freq,
		rate:    rate,
		attack:  attack,
		sustain: sustain,
		total:   attack + sustain + rate.N(v.Release),
	}
}

// gain returns the envelope level at the current position.
func (t *tone) gain() float64 {
	p := t.position
	switch {
	case p < t.attack:
		return float64(p) / float64(t.attack)
	case p < t.attack+t.sustain:
		frac := float64(p-t.attack) / float64(t.sustain)
		return 1 - 0.3*frac
	default:
		release := t.total - t.attack - t.sustain
		if release <= 0 {
			return 0
		}
		frac := float64(p-t.attack-t.sustain) / float64(release)
		return math.Max(0, 0.7*(1-frac))
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		val := math.Sin(2*math.Pi*t.phase) * t.gain()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s linearly by vol; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Streamer builds the streamer for a cue at the given intensity.
// Unknown cues return nil.
func Streamer(c core.Cue, intensity float64, rate beep.SampleRate) beep.Streamer {
	v, ok := Voices[c]
	if !ok {
		return nil
	}
	intensity = math.Max(0, math.Min(1, intensity))
	return withVolume(newTone(v, rate), v.Volume*intensity)
}
