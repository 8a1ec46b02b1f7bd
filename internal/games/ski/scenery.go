package ski

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

// Scenery is the decorative layer scrolling past the slope.
// It draws from its own RNG so the gameplay sequence never depends on it.
type Scenery struct {
	rng        *rand.Rand
	SideTrees  []SideTree
	Snowflakes []Snowflake
	Flags      []Flag
}

// SideTree is a pine at the edge of the slope.
type SideTree struct {
	X, Y, Size float64
}

// Snowflake falls slowly against the scroll.
type Snowflake struct {
	X, Y  float64
	Size  float64
	Speed float64
	Drift float64
}

// Flag is a racing flag along the course.
type Flag struct {
	X, Y  float64
	Color core.Color
	Sway  float64
}

// NewScenery generates the background layer.
func NewScenery(seed int64) *Scenery {
	s := &Scenery{rng: rand.New(rand.NewSource(seed))}

	for i := 0; i < 12; i++ {
		x := 10 + s.rng.Float64()*20
		if s.rng.Float64() >= 0.5 {
			x = WorldWidth - 30 + s.rng.Float64()*20
		}
		s.SideTrees = append(s.SideTrees, SideTree{
			X:    x,
			Y:    s.rng.Float64() * 700,
			Size: 20 + s.rng.Float64()*10,
		})
	}

	for i := 0; i < 50; i++ {
		s.Snowflakes = append(s.Snowflakes, Snowflake{
			X:     s.rng.Float64() * WorldWidth,
			Y:     s.rng.Float64() * WorldHeight,
			Size:  2 + s.rng.Float64()*3,
			Speed: 0.5 + s.rng.Float64(),
			Drift: (s.rng.Float64() - 0.5) * 0.5,
		})
	}

	for i := 0; i < 10; i++ {
		x := 30.0
		if s.rng.Float64() >= 0.5 {
			x = WorldWidth - 30
		}
		c := core.ColorRed
		if i%2 == 1 {
			c = core.ColorYellow
		}
		s.Flags = append(s.Flags, Flag{
			X:     x,
			Y:     float64(i)*80 + s.rng.Float64()*40,
			Color: c,
			Sway:  s.rng.Float64() * math.Pi * 2,
		})
	}

	return s
}

// Update scrolls the scenery for a slope moving at speed.
func (s *Scenery) Update(speed float64) {
	for i := range s.SideTrees {
		t := &s.SideTrees[i]
		t.Y -= speed * 1.5
		if t.Y < -100 {
			t.Y = WorldHeight + 100
			if s.rng.Float64() < 0.5 {
				t.X = 10 + s.rng.Float64()*20
			} else {
				t.X = WorldWidth - 30 + s.rng.Float64()*20
			}
		}
	}

	for i := range s.Snowflakes {
		f := &s.Snowflakes[i]
		f.Y -= speed*0.3 + f.Speed
		f.X += f.Drift
		if f.Y < -10 {
			f.Y = WorldHeight + 10
			f.X = s.rng.Float64() * WorldWidth
		}
		if f.X < 0 {
			f.X = WorldWidth
		}
		if f.X > WorldWidth {
			f.X = 0
		}
	}

	for i := range s.Flags {
		fl := &s.Flags[i]
		fl.Y -= speed * 1.5
		fl.Sway += 0.1
		if fl.Y < -50 {
			fl.Y = WorldHeight + 50
		}
	}
}
