package squad

import (
	"math"

	"github.com/vovakirdan/squad-arcade/internal/config"
)

// Wave director phases.
const (
	PhaseNormal    = "normal"
	PhaseBossFight = "boss_fight"
)

// SpawnOrders tells the game what the director wants spawned this tick.
type SpawnOrders struct {
	Enemy   bool
	MidBoss bool
	Powerup bool
}

// WaveDirector owns wave progression: kill targets, spawn timers and the big boss.
type WaveDirector struct {
	Wave      int
	Killed    int
	Target    int
	BossFight bool
	Boss      *BigBoss

	spawnRate    float64
	enemyTimer   float64
	midBossTimer float64
	powerupTimer float64

	cfg  config.SquadWaves
	boss bossParams
}

// NewWaveDirector creates a director at wave 1.
func NewWaveDirector(waves config.SquadWaves, boss config.SquadBoss) *WaveDirector {
	d := &WaveDirector{
		cfg: waves,
		boss: bossParams{
			size:          boss.Size,
			speed:         boss.Speed,
			targetY:       boss.TargetY,
			shootEvery:    boss.ShootInterval,
			baseHealth:    boss.BaseHealth,
			healthPerWave: boss.HealthPerWave,
		},
	}
	d.Reset()
	return d
}

// Reset returns to wave 1 with all timers zeroed and no boss.
func (d *WaveDirector) Reset() {
	d.Wave = 1
	d.Killed = 0
	d.Target = d.cfg.InitialTarget
	d.BossFight = false
	d.Boss = nil
	d.spawnRate = d.cfg.InitialSpawnRate
	d.enemyTimer = 0
	d.midBossTimer = 0
	d.powerupTimer = 0
}

// Phase returns the current state machine phase.
func (d *WaveDirector) Phase() string {
	if d.BossFight {
		return PhaseBossFight
	}
	return PhaseNormal
}

// SpawnRate returns the ticks between regular enemy spawns.
func (d *WaveDirector) SpawnRate() float64 {
	return d.spawnRate
}

// Tick advances the spawn timers by mult and returns what should spawn.
// midBossAlive blocks a second mid-boss while one is on the field.
func (d *WaveDirector) Tick(mult float64, midBossAlive bool) SpawnOrders {
	var orders SpawnOrders

	if d.Killed < d.Target || d.BossFight {
		d.enemyTimer += mult
		if d.enemyTimer >= d.spawnRate {
			orders.Enemy = true
			d.enemyTimer = 0
		}

		if !d.BossFight {
			d.midBossTimer += mult
			if d.midBossTimer >= d.cfg.MidBossInterval && !midBossAlive {
				orders.MidBoss = true
				d.midBossTimer = 0
			}
		}
	}

	d.powerupTimer += mult
	if d.powerupTimer >= d.cfg.PowerupInterval {
		orders.Powerup = true
		d.powerupTimer = 0
	}

	return orders
}

// RecordKill counts one destroyed enemy toward the wave target.
func (d *WaveDirector) RecordKill() {
	d.Killed++
}

// BossDefeated clears the boss and marks the wave's kill target as met.
func (d *WaveDirector) BossDefeated() {
	d.Boss = nil
	d.Killed = d.Target
}

// ReadyToAdvance reports whether the wave is complete.
// A boss fight additionally requires the big boss to be gone.
func (d *WaveDirector) ReadyToAdvance(liveEnemies int) bool {
	if d.Killed < d.Target || liveEnemies != 0 {
		return false
	}
	return !(d.BossFight && d.Boss != nil)
}

// NextWave moves to the next wave and configures its target and spawn rate.
func (d *WaveDirector) NextWave() {
	d.Wave++
	d.Killed = 0

	every := d.cfg.BossEvery
	if every <= 0 {
		every = 3
	}

	step := float64(d.Wave) * d.cfg.SpawnRateStep
	if d.Wave%every == 0 {
		d.BossFight = true
		d.Boss = NewBigBoss(d.Wave, d.boss)
		d.Target = d.cfg.BossWaveTarget
		d.spawnRate = math.Max(d.cfg.BossSpawnRateFloor, d.cfg.BossSpawnRateBase-step)
	} else {
		d.BossFight = false
		d.Boss = nil
		d.Target = d.cfg.TargetBase + d.Wave*d.cfg.TargetPerWave
		d.spawnRate = math.Max(d.cfg.SpawnRateFloor, d.cfg.SpawnRateBase-step)
	}
}
