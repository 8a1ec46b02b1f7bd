package ski

import (
	"math"

	"github.com/vovakirdan/squad-arcade/internal/config"
)

// ObstacleType identifies what is on the slope.
type ObstacleType int

const (
	ObstacleTree ObstacleType = iota
	ObstacleSkier
	ObstacleBear
	ObstacleRock
	ObstacleSnowman
	ObstacleLog
	ObstacleSign
	ObstacleJump
	obstacleTypeCount
)

// String returns the obstacle name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleTree:
		return "tree"
	case ObstacleSkier:
		return "skier"
	case ObstacleBear:
		return "bear"
	case ObstacleRock:
		return "rock"
	case ObstacleSnowman:
		return "snowman"
	case ObstacleLog:
		return "log"
	case ObstacleSign:
		return "sign"
	case ObstacleJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Size returns the hitbox of an obstacle type.
func (t ObstacleType) Size() (w, h float64) {
	switch t {
	case ObstacleBear:
		return 50, 40
	case ObstacleSkier:
		return 25, 35
	case ObstacleSnowman:
		return 45, 50
	case ObstacleLog:
		return 50, 20
	case ObstacleSign:
		return 30, 45
	case ObstacleJump:
		return 60, 15
	default:
		return 30, 40
	}
}

// Obstacle scrolls up the slope. (X, Y) is its top-left corner.
// Only skiers use the steering fields.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Type  ObstacleType
	Speed float64 // Own downhill speed, fixed at spawn

	VX        float64
	AITimer   float64
	TargetX   float64
	HasTarget bool
	AnimFrame float64
}

// NewObstacle creates an obstacle of type t at (x, y) on a slope moving at slopeSpeed.
func NewObstacle(t ObstacleType, x, y, slopeSpeed float64, cfg config.SkiObstacles) Obstacle {
	w, h := t.Size()
	speed := -slopeSpeed * cfg.DriftFactor
	if t == ObstacleSkier {
		speed = slopeSpeed * cfg.SkierSpeedFactor
	}
	return Obstacle{X: x, Y: y, W: w, H: h, Type: t, Speed: speed}
}

// Scroll moves the obstacle up by the slope speed minus its own speed.
func (o *Obstacle) Scroll(slopeSpeed, mult float64) {
	o.Y -= (slopeSpeed - o.Speed) * mult
	o.AnimFrame += 0.1
}

// Steer runs the dodge behaviour for the skier at index self.
// The skier rescans for threats every ScanInterval ticks and eases its
// horizontal velocity toward the dodge target in between.
func Steer(obstacles []Obstacle, self int, ai config.SkierAI, mult float64) {
	o := &obstacles[self]
	if o.Type != ObstacleSkier {
		return
	}

	o.AITimer += mult
	if o.AITimer > float64(ai.ScanInterval) {
		o.AITimer = 0
		o.HasTarget = false
		for j := range obstacles {
			if j == self {
				continue
			}
			other := obstacles[j]
			if other.Y > o.Y && other.Y < o.Y+ai.LookAhead && math.Abs(other.X-o.X) < ai.LateralWindow {
				if other.X > o.X {
					o.TargetX = o.X - ai.DodgeOffset
				} else {
					o.TargetX = o.X + ai.DodgeOffset
				}
				o.TargetX = math.Max(ai.TargetMin, math.Min(ai.TargetMax, o.TargetX))
				o.HasTarget = true
				break
			}
		}
	}

	if o.HasTarget {
		dx := o.TargetX - o.X
		if math.Abs(dx) > ai.ArriveEpsilon {
			want := math.Copysign(ai.SteerSpeed, dx)
			o.VX += (want - o.VX) * ai.Damping
		} else {
			o.HasTarget = false
		}
	} else {
		o.VX *= ai.CoastDecay
		if math.Abs(o.VX) < 0.1 {
			o.VX = 0
		}
	}

	o.X += o.VX * mult
	o.X = math.Max(ai.MinX, math.Min(ai.MaxX, o.X))
}
