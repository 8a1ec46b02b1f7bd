package config

import (
	_ "embed"
)

//go:embed defaults/squad.yaml
var defaultSquadYAML []byte

//go:embed defaults/ski.yaml
var defaultSkiYAML []byte

// DefaultSquadConfig returns the default Squad Defense configuration.
func DefaultSquadConfig() SquadConfig {
	return SquadConfig{
		Player: SquadPlayer{
			Width:       25,
			Height:      25,
			Gap:         5,
			Speed:       4,
			StartY:      500,
			TopLimit:    50,
			BaseMargin:  80,
			MaxTroops:   9,
			StartTroops: 1,
		},
		Lanes: SquadLanes{
			Count:         5,
			BaseWidth:     200,
			GrowthPerWave: 40,
			MaxWidth:      600,
		},
		Weapons: SquadWeapons{
			BulletSpeed:      8,
			EnemyBulletSpeed: 5,
			VolleyInterval:   10,
			RocketSpeed:      2.5,
			RocketTurnRate:   0.08,
			RocketHealth:     3,
		},
		Enemies: SquadEnemies{
			ShooterChance: 0.2,
			ShootInterval: 120,
			PowerupSpeed:  2,
		},
		Waves: SquadWaves{
			InitialTarget:    10,
			InitialSpawnRate: 120,
			MidBossInterval:  600,
			PowerupInterval:  300,
			BossEvery:        3,
			BossWaveTarget:   5,

			TargetBase:         10,
			TargetPerWave:      5,
			SpawnRateStep:      5,
			SpawnRateBase:      120,
			SpawnRateFloor:     30,
			BossSpawnRateBase:  200,
			BossSpawnRateFloor: 60,
		},
		Boss: SquadBoss{
			Size:          80,
			Speed:         0.3,
			TargetY:       100,
			ShootInterval: 90,
			BaseHealth:    100,
			HealthPerWave: 50,
		},
		Gameplay: SquadGameplay{
			Lives:           100,
			LeakPenalty:     10,
			BossLeakPenalty: 20,
		},
	}
}

// DefaultSkiConfig returns the default Ski Dodge configuration.
func DefaultSkiConfig() SkiConfig {
	return SkiConfig{
		Player: SkiPlayer{
			X:          400,
			Y:          100,
			Width:      30,
			Height:     40,
			SteerSpeed: 5,
			Friction:   0.9,
			Margin:     20,
		},
		Slope: SkiSlope{
			BaseSpeed: 3,
			MaxSpeed:  12,
		},
		Obstacles: SkiObstacles{
			SpawnY:           650,
			MinX:             50,
			SpanX:            700,
			BaseInterval:     60,
			MinInterval:      30,
			DespawnY:         -100,
			PassScore:        10,
			SkierSpeedFactor: 0.6,
			DriftFactor:      0.5,
		},
		SkierAI: SkierAI{
			ScanInterval:  10,
			LookAhead:     150,
			LateralWindow: 60,
			DodgeOffset:   80,
			TargetMin:     200,
			TargetMax:     570,
			MinX:          180,
			MaxX:          595,
			SteerSpeed:    2,
			Damping:       0.3,
			CoastDecay:    0.8,
			ArriveEpsilon: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 4500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}
