// Package squad implements Squad Defense, a lane tower-defense shooter.
// A formation of up to nine troops holds a widening bridge against waves of
// enemies, shooter enemies, mid-bosses and a rocket-firing big boss every
// third wave.
package squad

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/squad-arcade/internal/config"
	"github.com/vovakirdan/squad-arcade/internal/core"
	"github.com/vovakirdan/squad-arcade/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateExited   = "exited"
)

// Player is the squad anchor. Troop offsets are relative to (X, Y).
type Player struct {
	X, Y       float64
	W, H       float64
	Speed      float64
	TargetLane float64 // Lane center being moved to, valid while HasTarget
	HasTarget  bool
	Formation  *Formation
}

// Game implements the Squad Defense game logic.
type Game struct {
	cfg     config.SquadConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	signals core.Signals

	player Player
	waves  *WaveDirector

	bullets      []Bullet
	enemyBullets []EnemyBullet
	rockets      []Rocket
	enemies      []Enemy
	powerups     []Powerup
	particles    []Particle
	flashes      []MuzzleFlash

	state       string
	score       int
	lives       int
	damageLevel int
	mult        float64
	tick        uint64
	volleyTimer int
	latchLeft   bool
	latchRight  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Squad Defense game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "squad"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Squad Defense"
}

// Attach wires the HUD reporter and audio cue player.
func (g *Game) Attach(r core.Reporter, a core.CuePlayer) {
	g.signals.Reporter = r
	g.signals.Audio = a
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSquad(configPath)
	if err != nil {
		cfg = config.DefaultSquadConfig()
	}
	if difficultyPreset != "" {
		config.ApplySquadPreset(&cfg, difficultyPreset)
	}
	g.resetWith(runtime, cfg)
}

// resetWith restarts the game with an explicit config.
func (g *Game) resetWith(runtime core.RuntimeConfig, cfg config.SquadConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.mult = runtime.SpeedOrDefault()

	g.waves = NewWaveDirector(cfg.Waves, cfg.Boss)
	g.clearPools()

	pc := cfg.Player
	g.player = Player{
		W:         pc.Width,
		H:         pc.Height,
		Speed:     pc.Speed,
		Y:         pc.StartY,
		Formation: NewFormation(pc.StartTroops, pc.MaxTroops, pc.Width, pc.Height, pc.Gap),
	}
	g.player.X = SnapToLane(WorldWidth/2, g.lanes()) - pc.Width/2

	g.state = StatePlaying
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.damageLevel = 1
	g.tick = 0
	g.volleyTimer = 0
	g.latchLeft = false
	g.latchRight = false

	g.signals.Reset()
	g.signals.Publish(g.hud())
}

// clearPools empties every entity pool.
func (g *Game) clearPools() {
	g.bullets = g.bullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.rockets = g.rockets[:0]
	g.enemies = g.enemies[:0]
	g.powerups = g.powerups[:0]
	g.particles = g.particles[:0]
	g.flashes = g.flashes[:0]
}

// teardown returns to the menu: pools cleared, boss cleared, timers zeroed.
func (g *Game) teardown() {
	g.clearPools()
	g.waves.Reset()
	g.player.Formation.Clear()
	g.player.HasTarget = false
	g.volleyTimer = 0
	g.latchLeft = false
	g.latchRight = false
	g.state = StateExited
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateExited:
		return g.result()
	case StateGameOver:
		if in.Has(core.ActionBack) {
			g.teardown()
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}

	if g.state == StatePaused {
		if in.Has(core.ActionBack) {
			g.teardown()
		}
		return g.result()
	}

	if in.Has(core.ActionSpeedUp) {
		g.mult = core.StepSpeed(g.mult, 1)
	}
	if in.Has(core.ActionSpeedDown) {
		g.mult = core.StepSpeed(g.mult, -1)
	}

	g.tick++

	// Input sampling
	if in.Has(core.ActionLeft) {
		g.latchLeft = true
	}
	if in.Has(core.ActionRight) {
		g.latchRight = true
	}
	g.handleFire(in)

	g.updatePlayer(in)
	g.integrate()
	g.direct()

	if !g.resolveCollisions() {
		return g.result()
	}

	g.prune()
	return g.result()
}

// handleFire fires on a press and keeps a volley cadence while fire is held.
func (g *Game) handleFire(in core.InputFrame) {
	switch {
	case in.Has(core.ActionFire):
		g.shoot()
		g.volleyTimer = 0
	case in.IsHeld(core.ActionFire):
		g.volleyTimer++
		if g.volleyTimer >= g.cfg.Weapons.VolleyInterval {
			g.shoot()
			g.volleyTimer = 0
		}
	default:
		g.volleyTimer = 0
	}
}

// shoot fires one bullet from every troop.
func (g *Game) shoot() {
	troops := g.player.Formation.Troops()
	if len(troops) == 0 {
		return
	}
	for _, t := range troops {
		x := g.player.X + t.OffsetX + g.player.W/2
		y := g.player.Y + t.OffsetY
		g.bullets = append(g.bullets, Bullet{
			Body:   Body{X: x, Y: y, W: bulletW, H: bulletH},
			Speed:  g.cfg.Weapons.BulletSpeed,
			Damage: g.damageLevel,
		})
		g.flashes = append(g.flashes, MuzzleFlash{X: x, Y: y, Life: flashLife})
	}
	g.signals.Cue(core.CueShoot, 0.3)
}

// lanes returns the lane centers for the current wave.
func (g *Game) lanes() []float64 {
	left, width := BridgeBounds(g.waves.Wave, g.cfg.Lanes)
	return Lanes(g.cfg.Lanes.Count, left, width)
}

// updatePlayer applies held vertical movement and latched lane changes.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := &g.player
	step := p.Speed * g.mult

	if in.IsHeld(core.ActionUp) {
		p.Y = math.Max(g.cfg.Player.TopLimit, p.Y-step)
	}
	if in.IsHeld(core.ActionDown) {
		maxY := WorldHeight - g.cfg.Player.BaseMargin - (p.Formation.Depth() + p.H)
		p.Y = math.Min(maxY, p.Y+step)
	}

	lanes := g.lanes()
	if !p.HasTarget && len(lanes) > 0 {
		idx := NearestLane(p.X+p.W/2, lanes)
		// A press against the bridge edge has nowhere to go and is dropped.
		if g.latchLeft {
			g.latchLeft = false
			if idx > 0 {
				p.TargetLane, p.HasTarget = lanes[idx-1], true
			}
		}
		if !p.HasTarget && g.latchRight {
			g.latchRight = false
			if idx < len(lanes)-1 {
				p.TargetLane, p.HasTarget = lanes[idx+1], true
			}
		}
	}

	if p.HasTarget {
		targetX := p.TargetLane - p.W/2
		diff := targetX - p.X
		if math.Abs(diff) < 1 {
			p.X = targetX
			p.HasTarget = false
		} else {
			p.X += math.Copysign(math.Min(math.Abs(diff), step*2), diff)
		}
	}
}

// integrate advances every pool and the boss by one tick.
func (g *Game) integrate() {
	for i := range g.bullets {
		g.bullets[i].Update(g.mult)
	}
	for i := range g.enemyBullets {
		g.enemyBullets[i].Update(g.mult)
	}

	tx := g.player.X + g.player.W/2
	ty := g.player.Y + g.player.H/2
	for i := range g.rockets {
		g.rockets[i].Update(g.mult, tx, ty, g.tick)
	}

	for i := range g.enemies {
		if g.enemies[i].Update(g.mult) {
			x, y := g.enemies[i].Muzzle()
			g.enemyBullets = append(g.enemyBullets, EnemyBullet{
				Body:  Body{X: x, Y: y, W: bulletW, H: bulletH},
				Speed: g.cfg.Weapons.EnemyBulletSpeed,
			})
			g.signals.Cue(core.CueShoot, 0.2)
		}
	}

	if boss := g.waves.Boss; boss != nil && boss.Update(g.mult) {
		x, y := boss.Muzzle()
		w := g.cfg.Weapons
		g.rockets = append(g.rockets, NewRocket(x, y, w.RocketSpeed, w.RocketTurnRate, w.RocketHealth))
		g.flashes = append(g.flashes, MuzzleFlash{X: x, Y: y, Life: flashLife, Big: true})
		g.signals.Cue(core.CueShoot, 0.4)
	}

	for i := range g.powerups {
		g.powerups[i].Update(g.mult)
	}
	for i := range g.particles {
		g.particles[i].Update()
	}
	for i := range g.flashes {
		g.flashes[i].Update()
	}
}

// direct runs the spawn timers and the wave-completion check.
func (g *Game) direct() {
	orders := g.waves.Tick(g.mult, g.midBossAlive())
	if orders.Enemy {
		g.spawnEnemy(false)
	}
	if orders.MidBoss {
		g.spawnEnemy(true)
	}
	if orders.Powerup {
		g.spawnPowerup()
	}

	if g.waves.ReadyToAdvance(len(g.enemies)) {
		g.waves.NextWave()
		g.signals.Cue(core.CueWaveComplete, 0.7)
	}
}

func (g *Game) midBossAlive() bool {
	for _, e := range g.enemies {
		if e.IsBoss {
			return true
		}
	}
	return false
}

func (g *Game) randomLane() float64 {
	lanes := g.lanes()
	return lanes[g.rng.Intn(len(lanes))]
}

func (g *Game) spawnEnemy(isBoss bool) {
	isShooter := !isBoss && g.rng.Float64() < g.cfg.Enemies.ShooterChance
	e := NewEnemy(g.randomLane(), g.waves.Wave, isBoss, isShooter, g.cfg.Enemies.ShootInterval)
	g.enemies = append(g.enemies, e)
}

func (g *Game) spawnPowerup() {
	lane := g.randomLane()
	t := PowerupTroop
	if g.rng.Float64() > 0.5 {
		t = PowerupDamage
	}
	g.powerups = append(g.powerups, NewPowerup(lane, g.cfg.Enemies.PowerupSpeed, t))
}

// burst spawns count particles at (x, y).
func (g *Game) burst(x, y float64, c core.Color, count int) {
	for i := 0; i < count; i++ {
		g.particles = append(g.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (g.rng.Float64() - 0.5) * 4,
			VY:    (g.rng.Float64() - 0.5) * 4,
			Size:  g.rng.Float64()*4 + 2,
			Life:  particleLife,
			Color: c,
		})
	}
}

// prune drops entities that left the world or expired, charging lives for leaks.
func (g *Game) prune() {
	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Gone() {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	enemyBullets := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		if !b.Gone() {
			enemyBullets = append(enemyBullets, b)
		}
	}
	g.enemyBullets = enemyBullets

	rockets := g.rockets[:0]
	for _, r := range g.rockets {
		if !r.Gone() {
			rockets = append(rockets, r)
		}
	}
	g.rockets = rockets

	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Leaked() {
			if e.IsBoss {
				g.lives -= g.cfg.Gameplay.BossLeakPenalty
			} else {
				g.lives -= g.cfg.Gameplay.LeakPenalty
			}
			continue
		}
		enemies = append(enemies, e)
	}
	g.enemies = enemies

	powerups := g.powerups[:0]
	for _, p := range g.powerups {
		if !p.Gone() {
			powerups = append(powerups, p)
		}
	}
	g.powerups = powerups

	particles := g.particles[:0]
	for _, p := range g.particles {
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	g.particles = particles

	flashes := g.flashes[:0]
	for _, f := range g.flashes {
		if f.Life > 0 {
			flashes = append(flashes, f)
		}
	}
	g.flashes = flashes

	if g.lives <= 0 {
		g.lives = 0
		g.endGame()
	}
}

// endGame moves to game over. Only the first call has any effect.
func (g *Game) endGame() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.signals.Cue(core.CueDeath, 1)
}

func (g *Game) hud() core.HUD {
	h := core.HUD{
		Score:       g.score,
		Wave:        g.waves.Wave,
		Troops:      g.player.Formation.Len(),
		Lives:       g.lives,
		DamageLevel: g.damageLevel,
		Kills:       g.waves.Killed,
		KillTarget:  g.waves.Target,
	}
	if boss := g.waves.Boss; boss != nil {
		h.BossHealth = max(boss.Health, 0)
		h.BossMax = boss.MaxHealth
	}
	return h
}

func (g *Game) result() core.StepResult {
	h := g.hud()
	g.signals.Publish(h)
	return core.StepResult{State: g.State(), HUD: h}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	wave := 0
	if g.waves != nil {
		wave = g.waves.Wave
	}
	return core.GameState{
		Score:    g.score,
		Progress: wave,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
		Exited:   g.state == StateExited,
		Speed:    g.mult,
	}
}

// Register the game with the registry
func init() {
	registry.Register("squad", func() registry.Game {
		return New()
	})
}
