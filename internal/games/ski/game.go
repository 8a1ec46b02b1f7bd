// Package ski implements Ski Dodge, an endless downhill run.
// The player steers left and right while obstacles scroll up the slope;
// AI skiers among them steer around everything else.
package ski

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/squad-arcade/internal/config"
	"github.com/vovakirdan/squad-arcade/internal/core"
	"github.com/vovakirdan/squad-arcade/internal/registry"
)

// World dimensions in simulation units.
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateExited   = "exited"
)

// Player is the skier under player control. (X, Y) is its top-left corner.
type Player struct {
	X, Y      float64
	W, H      float64
	VX        float64
	Direction int // -1 left, 0 straight, 1 right
}

// Game implements the Ski Dodge game logic.
type Game struct {
	cfg        config.SkiConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	signals    core.Signals
	difficulty *config.DifficultyManager

	player    Player
	obstacles []Obstacle
	scenery   *Scenery

	state      string
	score      int
	distance   float64
	speed      float64
	mult       float64
	tick       uint64
	elapsed    float64 // Speed-scaled ticks driving the difficulty ramp
	spawnTimer float64
	spawnRate  int
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

// New creates a new Ski Dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ski"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ski Dodge"
}

// Attach wires the HUD reporter and audio cue player.
func (g *Game) Attach(r core.Reporter, a core.CuePlayer) {
	g.signals.Reporter = r
	g.signals.Audio = a
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSki(configPath)
	if err != nil {
		cfg = config.DefaultSkiConfig()
	}
	if difficultyPreset != "" {
		config.ApplySkiPreset(&cfg, difficultyPreset)
	}
	g.resetWith(runtime, cfg)
}

func (g *Game) resetWith(runtime core.RuntimeConfig, cfg config.SkiConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.scenery = NewScenery(runtime.Seed + 1)
	g.mult = runtime.SpeedOrDefault()

	g.player = Player{
		X: cfg.Player.X,
		Y: cfg.Player.Y,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
	g.obstacles = g.obstacles[:0]

	g.state = StatePlaying
	g.score = 0
	g.distance = 0
	g.speed = cfg.Slope.BaseSpeed
	g.tick = 0
	g.elapsed = 0
	g.spawnTimer = 0
	g.spawnRate = cfg.Obstacles.BaseInterval

	g.signals.Reset()
	g.signals.Publish(g.hud())
}

// teardown returns to the menu with every pool and timer cleared.
func (g *Game) teardown() {
	g.obstacles = g.obstacles[:0]
	g.spawnTimer = 0
	g.elapsed = 0
	g.player.VX = 0
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
	g.elapsed += g.mult

	g.speed = math.Min(g.difficulty.Speed(g.cfg.Slope.BaseSpeed, g.score, g.elapsed), g.cfg.Slope.MaxSpeed)
	g.distance += g.speed * g.mult
	g.spawnRate = max(g.cfg.Obstacles.MinInterval, g.cfg.Obstacles.BaseInterval-int(math.Floor(g.speed*3)))

	g.updatePlayer(in)
	g.updateObstacles()
	g.scenery.Update(g.speed)

	g.checkCollisions()
	return g.result()
}

// updatePlayer applies held steering with friction when released.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := &g.player
	pc := g.cfg.Player

	switch {
	case in.IsHeld(core.ActionLeft):
		p.VX = -pc.SteerSpeed
		p.Direction = -1
	case in.IsHeld(core.ActionRight):
		p.VX = pc.SteerSpeed
		p.Direction = 1
	default:
		p.VX *= pc.Friction
		if math.Abs(p.VX) < 0.1 {
			p.VX = 0
			p.Direction = 0
		}
	}

	p.X += p.VX * g.mult
	p.X = math.Max(pc.Margin, math.Min(WorldWidth-pc.Margin-p.W, p.X))
}

// updateObstacles spawns, scrolls, steers and retires obstacles.
func (g *Game) updateObstacles() {
	oc := g.cfg.Obstacles

	g.spawnTimer += g.mult
	if g.spawnTimer >= float64(g.spawnRate) {
		t := ObstacleType(g.rng.Intn(int(obstacleTypeCount)))
		x := oc.MinX + g.rng.Float64()*oc.SpanX
		g.obstacles = append(g.obstacles, NewObstacle(t, x, oc.SpawnY, g.speed, oc))
		g.spawnTimer = 0
	}

	// One pass from the newest obstacle down, so a skier sees older
	// obstacles at their positions from the previous tick.
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		g.obstacles[i].Scroll(g.speed, g.mult)
		Steer(g.obstacles, i, g.cfg.SkierAI, g.mult)
	}

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Y < oc.DespawnY {
			g.score += oc.PassScore
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept
}

// checkCollisions ends the run on the first obstacle touching the player.
func (g *Game) checkCollisions() {
	p := core.CornerBox(g.player.X, g.player.Y, g.player.W, g.player.H)
	for _, o := range g.obstacles {
		if p.Overlaps(core.CornerBox(o.X, o.Y, o.W, o.H)) {
			g.state = StateGameOver
			g.signals.Cue(core.CueDeath, 1)
			return
		}
	}
}

// Metres returns the distance travelled in display metres.
func (g *Game) Metres() int {
	return int(g.distance / 100)
}

func (g *Game) hud() core.HUD {
	return core.HUD{
		Score:    g.score,
		Distance: g.Metres(),
		Speed:    int(g.speed * 10),
	}
}

func (g *Game) result() core.StepResult {
	h := g.hud()
	g.signals.Publish(h)
	return core.StepResult{State: g.State(), HUD: h}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Progress: g.Metres(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
		Exited:   g.state == StateExited,
		Speed:    g.mult,
	}
}

// Register the game with the registry
func init() {
	registry.Register("ski", func() registry.Game {
		return New()
	})
}
