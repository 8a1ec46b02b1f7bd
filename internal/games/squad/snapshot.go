package squad

import "math"

// Snapshot contains the complete game state for determinism checks and replays.
// Positions are stored in hundredths of a world unit.
type Snapshot struct {
	Tick        uint64
	State       string
	Score       int
	Lives       int
	DamageLevel int
	Wave        int
	Killed      int
	Target      int
	BossFight   bool
	BossHealth  int
	PlayerX     int
	PlayerY     int
	Troops      int

	// Each entity is 3 ints: X, Y, extra (health, damage or type)
	BulletData      []int
	EnemyBulletData []int
	RocketData      []int
	EnemyData       []int
	PowerupData     []int

	ParticleCount int
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		State:         g.state,
		Score:         g.score,
		Lives:         g.lives,
		DamageLevel:   g.damageLevel,
		Wave:          g.waves.Wave,
		Killed:        g.waves.Killed,
		Target:        g.waves.Target,
		BossFight:     g.waves.BossFight,
		PlayerX:       fixed(g.player.X),
		PlayerY:       fixed(g.player.Y),
		Troops:        g.player.Formation.Len(),
		ParticleCount: len(g.particles),
	}
	if g.waves.Boss != nil {
		snap.BossHealth = g.waves.Boss.Health
	}

	for _, b := range g.bullets {
		snap.BulletData = append(snap.BulletData, fixed(b.X), fixed(b.Y), b.Damage)
	}
	for _, b := range g.enemyBullets {
		snap.EnemyBulletData = append(snap.EnemyBulletData, fixed(b.X), fixed(b.Y), 0)
	}
	for _, r := range g.rockets {
		snap.RocketData = append(snap.RocketData, fixed(r.X), fixed(r.Y), r.Health)
	}
	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData, fixed(e.X), fixed(e.Y), e.Health)
	}
	for _, p := range g.powerups {
		snap.PowerupData = append(snap.PowerupData, fixed(p.X), fixed(p.Y), int(p.Type))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DamageLevel) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Killed)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Target)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHealth)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Troops)      //#nosec G115 -- hash computation
	if snap.BossFight {
		h = h*31 + 1
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, data := range [][]int{snap.BulletData, snap.EnemyBulletData, snap.RocketData, snap.EnemyData, snap.PowerupData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	return h
}
