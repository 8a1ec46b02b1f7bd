package backdrop

import (
	"math"
	"testing"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

func TestNewPopulation(t *testing.T) {
	b := New(1)
	if len(b.Particles) != ParticleCount {
		t.Errorf("particles = %d, expected %d", len(b.Particles), ParticleCount)
	}
	if len(b.Stars) != StarCount {
		t.Errorf("stars = %d, expected %d", len(b.Stars), StarCount)
	}
	if len(b.Icons) != 6 {
		t.Errorf("icons = %d, expected 6", len(b.Icons))
	}
	for _, p := range b.Particles {
		if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
			t.Errorf("particle velocity (%v, %v) out of range", p.VX, p.VY)
		}
	}
}

func TestParticlesBounce(t *testing.T) {
	b := &Backdrop{Particles: []Particle{{X: Width - 0.1, Y: 300, VX: 0.25, VY: 0}}}
	b.Update()
	if b.Particles[0].VX != -0.25 {
		t.Errorf("particle should bounce off the right edge, VX = %v", b.Particles[0].VX)
	}
	for i := 0; i < 100; i++ {
		b.Update()
	}
	if b.Particles[0].X > Width+0.25 {
		t.Errorf("particle escaped: x = %v", b.Particles[0].X)
	}
}

func TestStarsTwinkle(t *testing.T) {
	b := &Backdrop{Stars: []Star{{Brightness: 0.99, Twinkle: 0.05}}}
	b.Update()
	if b.Stars[0].Twinkle != -0.05 {
		t.Errorf("twinkle should reverse above 1, got %v", b.Stars[0].Twinkle)
	}
	for i := 0; i < 1000; i++ {
		b.Update()
		s := b.Stars[0]
		if s.Brightness < -0.05 || s.Brightness > 1.05 {
			t.Fatalf("brightness %v drifted out of range", s.Brightness)
		}
	}
}

func TestIconsBob(t *testing.T) {
	b := New(1)
	for i := 0; i < 500; i++ {
		b.Update()
		for _, ic := range b.Icons {
			if math.Abs(ic.DY) > 10 {
				t.Fatalf("bob %v exceeds amplitude", ic.DY)
			}
		}
	}
	if math.Abs(b.Icons[0].Phase-10) > 1e-9 {
		t.Errorf("phase = %v, expected 10 after 500 frames", b.Icons[0].Phase)
	}
}

func TestRenderFitsScreen(t *testing.T) {
	b := New(42)
	for _, size := range [][2]int{{80, 24}, {20, 10}, {1, 1}} {
		screen := core.NewScreen(size[0], size[1])
		b.Render(screen)
		b.Update()
	}
	screen := core.NewScreen(80, 24)
	b.Render(screen)
	if screen.String() == core.NewScreen(80, 24).String() {
		t.Error("backdrop drew nothing")
	}
}
