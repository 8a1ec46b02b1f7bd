package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestEveryCueHasAVoice(t *testing.T) {
	cues := []core.Cue{
		core.CueShoot, core.CueExplosion, core.CuePowerup,
		core.CueHit, core.CueDeath, core.CueWaveComplete,
	}
	for _, c := range cues {
		t.Run(string(c), func(t *testing.T) {
			if Streamer(c, 1, sampleRate) == nil {
				t.Errorf("no streamer for cue %q", c)
			}
		})
	}
	if Streamer("unknown", 1, sampleRate) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	v := Voice{Volume: 1, Freq: 440, Attack: 10 * time.Millisecond, Sustain: 20 * time.Millisecond, Release: 30 * time.Millisecond}

	n, peak := drain(newTone(v, rate))
	if n != rate.N(v.Duration()) {
		t.Errorf("streamed %d samples, expected %d", n, rate.N(v.Duration()))
	}
	if peak > 1 || peak == 0 {
		t.Errorf("peak = %v, expected within (0, 1]", peak)
	}
}

func TestToneEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := newTone(Voice{Freq: 10, Attack: 10 * time.Millisecond, Sustain: 10 * time.Millisecond, Release: 10 * time.Millisecond}, rate)

	tests := []struct {
		pos  int
		gain float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{20, 0.7},
		{25, 0.35},
	}
	for _, tt := range tests {
		tn.position = tt.pos
		if g := tn.gain(); math.Abs(g-tt.gain) > 1e-9 {
			t.Errorf("gain at %d = %v, expected %v", tt.pos, g, tt.gain)
		}
	}
}

func TestIntensityScalesVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	_, loud := drain(Streamer(core.CueExplosion, 1, rate))
	_, quiet := drain(Streamer(core.CueExplosion, 0.25, rate))
	_, silent := drain(Streamer(core.CueExplosion, 0, rate))

	if quiet >= loud {
		t.Errorf("lower intensity should be quieter: %v >= %v", quiet, loud)
	}
	if silent != 0 {
		t.Errorf("zero intensity should be silent, peak %v", silent)
	}
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer()
	if p.Enabled() {
		t.Fatal("new player should be disabled")
	}
	// Must not panic or touch the speaker
	p.Play(core.CueShoot, 1)
	p.Close()
}

func TestPlayerInitialize(t *testing.T) {
	p := NewPlayer()
	if err := p.Initialize(); err != nil {
		// CI machines usually have no audio device
		t.Logf("Audio initialization failed (expected in headless environments): %v", err)
		return
	}
	defer p.Close()

	p.Play(core.CueHit, 0.5)
	if err := p.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
}
