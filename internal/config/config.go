// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// SquadConfig contains all configuration for the Squad Defense game.
type SquadConfig struct {
	Player   SquadPlayer   `yaml:"player"`
	Lanes    SquadLanes    `yaml:"lanes"`
	Weapons  SquadWeapons  `yaml:"weapons"`
	Enemies  SquadEnemies  `yaml:"enemies"`
	Waves    SquadWaves    `yaml:"waves"`
	Boss     SquadBoss     `yaml:"boss"`
	Gameplay SquadGameplay `yaml:"gameplay"`
}

// SquadPlayer defines the squad anchor and formation.
type SquadPlayer struct {
	Width       float64 `yaml:"width"`        // Troop width
	Height      float64 `yaml:"height"`       // Troop height
	Gap         float64 `yaml:"gap"`          // Gap between formation slots
	Speed       float64 `yaml:"speed"`        // Vertical speed; lane changes move at 2x
	StartY      float64 `yaml:"start_y"`      // Initial anchor y
	TopLimit    float64 `yaml:"top_limit"`    // Smallest anchor y
	BaseMargin  float64 `yaml:"base_margin"`  // Space kept free at the bottom of the world
	MaxTroops   int     `yaml:"max_troops"`   // Formation cap
	StartTroops int     `yaml:"start_troops"` // Troops at reset
}

// SquadLanes defines the bridge and its lanes.
type SquadLanes struct {
	Count         int     `yaml:"count"`
	BaseWidth     float64 `yaml:"base_width"`
	GrowthPerWave float64 `yaml:"growth_per_wave"`
	MaxWidth      float64 `yaml:"max_width"`
}

// SquadWeapons defines projectile parameters.
type SquadWeapons struct {
	BulletSpeed      float64 `yaml:"bullet_speed"`
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"`
	VolleyInterval   int     `yaml:"volley_interval"` // Ticks between volleys while fire is held
	RocketSpeed      float64 `yaml:"rocket_speed"`
	RocketTurnRate   float64 `yaml:"rocket_turn_rate"`
	RocketHealth     int     `yaml:"rocket_health"`
}

// SquadEnemies defines enemy spawning parameters.
type SquadEnemies struct {
	ShooterChance float64 `yaml:"shooter_chance"` // Chance a regular spawn is a shooter
	ShootInterval float64 `yaml:"shoot_interval"` // Ticks between shooter volleys
	PowerupSpeed  float64 `yaml:"powerup_speed"`
}

// SquadWaves defines wave progression parameters.
type SquadWaves struct {
	InitialTarget    int     `yaml:"initial_target"`
	InitialSpawnRate float64 `yaml:"initial_spawn_rate"`
	MidBossInterval  float64 `yaml:"mid_boss_interval"`
	PowerupInterval  float64 `yaml:"powerup_interval"`
	BossEvery        int     `yaml:"boss_every"`
	BossWaveTarget   int     `yaml:"boss_wave_target"`

	// Later waves: target = target_base + wave*target_per_wave,
	// spawn rate = max(floor, base - wave*spawn_rate_step).
	TargetBase         int     `yaml:"target_base"`
	TargetPerWave      int     `yaml:"target_per_wave"`
	SpawnRateStep      float64 `yaml:"spawn_rate_step"`
	SpawnRateBase      float64 `yaml:"spawn_rate_base"`
	SpawnRateFloor     float64 `yaml:"spawn_rate_floor"`
	BossSpawnRateBase  float64 `yaml:"boss_spawn_rate_base"`
	BossSpawnRateFloor float64 `yaml:"boss_spawn_rate_floor"`
}

// SquadBoss defines the end-of-wave boss.
type SquadBoss struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	TargetY       float64 `yaml:"target_y"`
	ShootInterval float64 `yaml:"shoot_interval"`
	BaseHealth    int     `yaml:"base_health"`
	HealthPerWave int     `yaml:"health_per_wave"`
}

// SquadGameplay defines lives and scoring.
type SquadGameplay struct {
	Lives           int `yaml:"lives"`
	LeakPenalty     int `yaml:"leak_penalty"`      // Lives lost when an enemy passes the base
	BossLeakPenalty int `yaml:"boss_leak_penalty"` // Lives lost when a mid-boss passes the base
}

// SkiConfig contains all configuration for the Ski Dodge game.
type SkiConfig struct {
	Player     SkiPlayer        `yaml:"player"`
	Slope      SkiSlope         `yaml:"slope"`
	Obstacles  SkiObstacles     `yaml:"obstacles"`
	SkierAI    SkierAI          `yaml:"skier_ai"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkiPlayer defines the player skier.
type SkiPlayer struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SteerSpeed float64 `yaml:"steer_speed"`
	Friction   float64 `yaml:"friction"`
	Margin     float64 `yaml:"margin"` // Distance kept from the world edges
}

// SkiSlope defines the scroll speed bounds.
type SkiSlope struct {
	BaseSpeed float64 `yaml:"base_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

// SkiObstacles defines obstacle spawning.
type SkiObstacles struct {
	SpawnY           float64 `yaml:"spawn_y"`
	MinX             float64 `yaml:"min_x"`
	SpanX            float64 `yaml:"span_x"`
	BaseInterval     int     `yaml:"base_interval"`
	MinInterval      int     `yaml:"min_interval"`
	DespawnY         float64 `yaml:"despawn_y"`
	PassScore        int     `yaml:"pass_score"`
	SkierSpeedFactor float64 `yaml:"skier_speed_factor"`
	DriftFactor      float64 `yaml:"drift_factor"` // Static obstacles scroll slightly faster than the slope
}

// SkierAI defines the dodge behaviour of AI skiers.
type SkierAI struct {
	ScanInterval  int     `yaml:"scan_interval"`
	LookAhead     float64 `yaml:"look_ahead"`
	LateralWindow float64 `yaml:"lateral_window"`
	DodgeOffset   float64 `yaml:"dodge_offset"`
	TargetMin     float64 `yaml:"target_min"`
	TargetMax     float64 `yaml:"target_max"`
	MinX          float64 `yaml:"min_x"`
	MaxX          float64 `yaml:"max_x"`
	SteerSpeed    float64 `yaml:"steer_speed"`
	Damping       float64 `yaml:"damping"`
	CoastDecay    float64 `yaml:"coast_decay"`
	ArriveEpsilon float64 `yaml:"arrive_epsilon"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.15
	case DifficultyHard:
		return 0.4
	default:
		return 0.0
	}
}
