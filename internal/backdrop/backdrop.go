// Package backdrop animates the decorative scene drawn behind the game picker.
// It has no gameplay state and never reads input.
package backdrop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

// Scene dimensions in the same units the games use.
const (
	Width  = 800.0
	Height = 600.0
)

// Scene population.
const (
	ParticleCount = 30
	StarCount     = 50
	gridStep      = 50.0
	bobAmplitude  = 10.0
	phaseStep     = 0.02
)

// Particle drifts and bounces off the scene edges.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  core.Color
}

// Star twinkles between dark and bright.
type Star struct {
	X, Y       float64
	Size       float64
	Brightness float64
	Twinkle    float64
}

// IconKind selects the glyph of a floating icon.
type IconKind int

const (
	IconSoldier IconKind = iota
	IconTank
	IconStar
	IconSki
	IconTree
	IconSnowflake
)

// Icon floats in place with a slow bob and optional rotation.
type Icon struct {
	X, Y     float64
	Kind     IconKind
	Rotation float64
	RotSpeed float64
	Phase    float64
	DY       float64
}

// Backdrop holds the animated scene.
type Backdrop struct {
	Particles []Particle
	Stars     []Star
	Icons     []Icon
}

var particleColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorOrange,
}

// New builds a scene from seed.
func New(seed int64) *Backdrop {
	rng := rand.New(rand.NewSource(seed))
	b := &Backdrop{}

	for i := 0; i < ParticleCount; i++ {
		b.Particles = append(b.Particles, Particle{
			X:     rng.Float64() * Width,
			Y:     rng.Float64() * Height,
			Size:  2 + rng.Float64()*4,
			VX:    (rng.Float64() - 0.5) * 0.5,
			VY:    (rng.Float64() - 0.5) * 0.5,
			Color: particleColors[rng.Intn(len(particleColors))],
		})
	}

	for i := 0; i < StarCount; i++ {
		b.Stars = append(b.Stars, Star{
			X:          rng.Float64() * Width,
			Y:          rng.Float64() * Height,
			Size:       1 + rng.Float64()*2,
			Brightness: rng.Float64(),
			Twinkle:    0.02 + rng.Float64()*0.03,
		})
	}

	b.Icons = []Icon{
		{X: 100, Y: 150, Kind: IconSoldier, RotSpeed: 0.01, Phase: 0},
		{X: 200, Y: 400, Kind: IconTank, RotSpeed: -0.008, Phase: 1},
		{X: 700, Y: 200, Kind: IconStar, RotSpeed: 0.015, Phase: 2},
		{X: 600, Y: 450, Kind: IconSki, Rotation: 0.3, Phase: 3},
		{X: 150, Y: 500, Kind: IconTree, Phase: 4},
		{X: 650, Y: 100, Kind: IconSnowflake, RotSpeed: 0.02, Phase: 5},
	}

	return b
}

// Update advances the animation one frame.
func (b *Backdrop) Update() {
	for i := range b.Particles {
		p := &b.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 || p.X > Width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > Height {
			p.VY = -p.VY
		}
	}

	for i := range b.Stars {
		s := &b.Stars[i]
		s.Brightness += s.Twinkle
		if s.Brightness > 1 || s.Brightness < 0 {
			s.Twinkle = -s.Twinkle
		}
	}

	for i := range b.Icons {
		ic := &b.Icons[i]
		ic.Rotation += ic.RotSpeed
		ic.Phase += phaseStep
		ic.DY = math.Sin(ic.Phase) * bobAmplitude
	}
}

func cell(dst *core.Screen, x, y float64) (int, int) {
	return int(x * float64(dst.Width()) / Width), int(y * float64(dst.Height()) / Height)
}

// Render draws the scene into dst. Menu text is drawn on top afterwards.
func (b *Backdrop) Render(dst *core.Screen) {
	for gx := 0.0; gx < Width; gx += gridStep {
		for gy := 0.0; gy < Height; gy += gridStep {
			x, y := cell(dst, gx, gy)
			dst.SetColored(x, y, '·', core.ColorBlue)
		}
	}

	for _, s := range b.Stars {
		x, y := cell(dst, s.X, s.Y)
		switch {
		case s.Brightness > 0.75:
			dst.SetColored(x, y, '✦', core.ColorBrightWhite)
		case s.Brightness > 0.4:
			dst.SetColored(x, y, '*', core.ColorWhite)
		case s.Brightness > 0.1:
			dst.SetColored(x, y, '.', core.ColorGray)
		}
	}

	for _, p := range b.Particles {
		x, y := cell(dst, p.X, p.Y)
		r := '•'
		if p.Size > 4 {
			r = '●'
		}
		dst.SetColored(x, y, r, p.Color)
	}

	for _, ic := range b.Icons {
		x, y := cell(dst, ic.X, ic.Y+ic.DY)
		r, c := ic.glyph()
		dst.SetColored(x, y, r, c)
	}
}

// glyph returns the rune and color for the icon at its current rotation.
func (ic Icon) glyph() (rune, core.Color) {
	// Spinning icons alternate between two glyphs every quarter turn
	turn := int(math.Floor(ic.Rotation/(math.Pi/2))) % 2
	switch ic.Kind {
	case IconSoldier:
		return '☻', core.ColorBrightCyan
	case IconTank:
		return '▣', core.ColorGreen
	case IconStar:
		if turn == 0 {
			return '★', core.ColorBrightYellow
		}
		return '☆', core.ColorBrightYellow
	case IconSki:
		return '⟋', core.ColorBrightRed
	case IconTree:
		return '♣', core.ColorBrightGreen
	case IconSnowflake:
		if turn == 0 {
			return '❄', core.ColorBrightWhite
		}
		return '✻', core.ColorBrightWhite
	default:
		return '?', core.ColorDefault
	}
}
