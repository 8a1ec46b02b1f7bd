package squad

import (
	"github.com/vovakirdan/squad-arcade/internal/core"
)

// World dimensions in simulation units.
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0
)

// Entity sizes and lifetimes that are part of the game's feel rather than its tuning.
const (
	bulletW, bulletH     = 4.0, 8.0
	rocketW, rocketH     = 8.0, 16.0
	enemySize            = 25.0
	bossEnemySize        = 40.0
	powerupSize          = 20.0
	particleLife         = 30
	flashLife            = 5
	trailLife            = 20
	trailEvery           = 3
	rocketOffscreenSlack = 50.0
	shooterMinY          = 50.0
	shooterMaxY          = WorldHeight - 150
)

// Body is the shared position and extent of every entity.
// Whether (X, Y) is a corner or a center depends on the entity kind.
type Body struct {
	X, Y float64
	W, H float64
}

// Bullet is a player projectile. X is the horizontal center, Y the top edge.
type Bullet struct {
	Body
	Speed  float64
	Damage int
}

// Update moves the bullet up the screen.
func (b *Bullet) Update(mult float64) {
	b.Y -= b.Speed * mult
}

// Gone reports whether the bullet left the top of the world.
func (b Bullet) Gone() bool {
	return b.Y+b.H < 0
}

// EnemyBullet is fired downward by shooter enemies.
type EnemyBullet struct {
	Body
	Speed float64
}

// Update moves the bullet down the screen.
func (b *EnemyBullet) Update(mult float64) {
	b.Y += b.Speed * mult
}

// Gone reports whether the bullet left the bottom of the world.
func (b EnemyBullet) Gone() bool {
	return b.Y > WorldHeight
}

// TrailPuff is a fading smoke point left behind a rocket.
type TrailPuff struct {
	X, Y float64
	Life int
}

// Rocket is a homing missile fired by the big boss. (X, Y) is its center.
type Rocket struct {
	Body
	VX, VY float64
	Speed  float64
	Turn   float64
	Health int
	Trail  []TrailPuff
}

// NewRocket creates a rocket heading straight down.
func NewRocket(x, y, speed, turn float64, health int) Rocket {
	return Rocket{
		Body:   Body{X: x, Y: y, W: rocketW, H: rocketH},
		VX:     0,
		VY:     speed,
		Speed:  speed,
		Turn:   turn,
		Health: health,
	}
}

// Update steers toward (tx, ty) and advances the trail.
// The velocity eases toward the target heading and is renormalized to Speed.
func (r *Rocket) Update(mult, tx, ty float64, tick uint64) {
	dx, dy := tx-r.X, ty-r.Y
	wantX, wantY := core.Normalize(dx, dy, r.Speed)
	if wantX != 0 || wantY != 0 {
		r.VX += (wantX - r.VX) * r.Turn
		r.VY += (wantY - r.VY) * r.Turn
		if vx, vy := core.Normalize(r.VX, r.VY, r.Speed); vx != 0 || vy != 0 {
			r.VX, r.VY = vx, vy
		}
	}

	r.X += r.VX * mult
	r.Y += r.VY * mult

	if tick%trailEvery == 0 {
		r.Trail = append(r.Trail, TrailPuff{X: r.X, Y: r.Y, Life: trailLife})
	}
	alive := r.Trail[:0]
	for _, p := range r.Trail {
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	r.Trail = alive
}

// Gone reports whether the rocket drifted well outside the world.
func (r Rocket) Gone() bool {
	return r.X < -rocketOffscreenSlack || r.X > WorldWidth+rocketOffscreenSlack ||
		r.Y < -rocketOffscreenSlack || r.Y > WorldHeight+rocketOffscreenSlack
}

// Enemy walks down a lane toward the base. (X, Y) is its top-left corner.
type Enemy struct {
	Body
	Speed      float64
	Health     int
	MaxHealth  int
	IsBoss     bool
	IsShooter  bool
	ShootTimer float64
	ShootEvery float64
}

// NewEnemy creates an enemy centered on laneX, just above the world.
// Stats scale with the wave.
func NewEnemy(laneX float64, wave int, isBoss, isShooter bool, shootEvery float64) Enemy {
	size := enemySize
	if isBoss {
		size = bossEnemySize
	}

	w := float64(wave)
	var speed float64
	var health int
	switch {
	case isShooter:
		speed = 0.3 + w*0.05
		health = 5
	case isBoss:
		speed = 0.5 + w*0.1
		health = 10 + wave*5
	default:
		speed = 1 + w*0.1
		health = 3
	}

	return Enemy{
		Body:       Body{X: laneX - size/2, Y: -size, W: size, H: size},
		Speed:      speed,
		Health:     health,
		MaxHealth:  health,
		IsBoss:     isBoss,
		IsShooter:  isShooter,
		ShootEvery: shootEvery,
	}
}

// Update moves the enemy and reports whether a shooter fires this tick.
func (e *Enemy) Update(mult float64) bool {
	e.Y += e.Speed * mult
	if !e.IsShooter || e.Y <= shooterMinY || e.Y >= shooterMaxY {
		return false
	}
	e.ShootTimer += mult
	if e.ShootTimer >= e.ShootEvery {
		e.ShootTimer = 0
		return true
	}
	return false
}

// TakeDamage applies damage and reports whether the enemy is destroyed.
func (e *Enemy) TakeDamage(dmg int) bool {
	e.Health -= dmg
	return e.Health <= 0
}

// Muzzle returns the point shooter bullets leave from.
func (e Enemy) Muzzle() (float64, float64) {
	return e.X + e.W/2, e.Y + e.H
}

// Leaked reports whether the enemy walked past the bottom of the world.
func (e Enemy) Leaked() bool {
	return e.Y > WorldHeight
}

// PowerupType selects the powerup effect.
type PowerupType int

const (
	PowerupDamage PowerupType = iota // Raises bullet damage for new shots
	PowerupTroop                     // Adds one troop
)

// Powerup drifts down a lane until collected. (X, Y) is its top-left corner.
type Powerup struct {
	Body
	Speed float64
	Type  PowerupType
}

// NewPowerup creates a powerup centered on laneX above the world.
func NewPowerup(laneX, speed float64, t PowerupType) Powerup {
	return Powerup{
		Body:  Body{X: laneX - powerupSize/2, Y: -powerupSize, W: powerupSize, H: powerupSize},
		Speed: speed,
		Type:  t,
	}
}

// Update moves the powerup down.
func (p *Powerup) Update(mult float64) {
	p.Y += p.Speed * mult
}

// Gone reports whether the powerup left the bottom of the world.
func (p Powerup) Gone() bool {
	return p.Y > WorldHeight
}

// Particle is a visual spark. It is not scaled by game speed.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   int
	Color  core.Color
}

// Update advances the particle one tick.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
}

// MuzzleFlash is a short-lived flash at a gun barrel.
type MuzzleFlash struct {
	X, Y float64
	Life int
	Big  bool
}

// Update ages the flash.
func (f *MuzzleFlash) Update() {
	f.Life--
}

// BigBoss is the singleton end-of-wave boss. (X, Y) is its top-left corner.
type BigBoss struct {
	Body
	Speed      float64
	Health     int
	MaxHealth  int
	TargetY    float64
	ShootTimer float64
	ShootEvery float64
	Arrived    bool
}

// NewBigBoss creates the boss for a wave, centered above the world.
func NewBigBoss(wave int, cfg bossParams) *BigBoss {
	hp := cfg.baseHealth + wave*cfg.healthPerWave
	return &BigBoss{
		Body:       Body{X: WorldWidth/2 - cfg.size/2, Y: -cfg.size, W: cfg.size, H: cfg.size},
		Speed:      cfg.speed,
		Health:     hp,
		MaxHealth:  hp,
		TargetY:    cfg.targetY,
		ShootEvery: cfg.shootEvery,
	}
}

// Update descends to the firing line and reports whether a rocket launches this tick.
func (b *BigBoss) Update(mult float64) bool {
	if !b.Arrived {
		if b.Y < b.TargetY {
			b.Y += b.Speed * mult
		} else {
			b.Arrived = true
		}
	}
	if !b.Arrived {
		return false
	}
	b.ShootTimer += mult
	if b.ShootTimer >= b.ShootEvery {
		b.ShootTimer = 0
		return true
	}
	return false
}

// Muzzle returns the rocket launch point.
func (b BigBoss) Muzzle() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H
}

// bossParams is the slice of configuration the boss constructor needs.
type bossParams struct {
	size          float64
	speed         float64
	targetY       float64
	shootEvery    float64
	baseHealth    int
	healthPerWave int
}
