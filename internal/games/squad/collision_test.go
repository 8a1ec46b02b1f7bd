package squad

import (
	"testing"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

func addBullet(g *Game, x, y float64, dmg int) {
	g.bullets = append(g.bullets, Bullet{
		Body:   Body{X: x, Y: y, W: bulletW, H: bulletH},
		Speed:  8,
		Damage: dmg,
	})
}

func TestEnemyDiesOnThirdHit(t *testing.T) {
	g := newTestGame(1)
	e := NewEnemy(112.5, 1, false, false, 120)
	e.Y = 100
	g.enemies = append(g.enemies, e)

	for hit := 1; hit <= 3; hit++ {
		addBullet(g, 110, 110, 1)
		g.bulletsVsEnemies()
		if len(g.bullets) != 0 {
			t.Fatalf("hit %d: bullet should be consumed", hit)
		}
		if hit < 3 {
			if len(g.enemies) != 1 || g.enemies[0].Health != 3-hit {
				t.Fatalf("hit %d: enemy should survive with %d health", hit, 3-hit)
			}
		}
	}

	if len(g.enemies) != 0 {
		t.Fatal("enemy should die on the third hit")
	}
	if g.score != 10 || g.waves.Killed != 1 {
		t.Errorf("expected score 10 and 1 kill, got %d and %d", g.score, g.waves.Killed)
	}
}

func TestMidBossKillScores50(t *testing.T) {
	g := newTestGame(1)
	e := NewEnemy(400, 1, true, false, 120)
	e.Y = 100
	e.Health = 1
	g.enemies = append(g.enemies, e)

	addBullet(g, 390, 110, 1)
	g.bulletsVsEnemies()

	if g.score != 50 {
		t.Errorf("mid-boss should award 50, got %d", g.score)
	}
}

func TestBulletMissesTouchingEnemy(t *testing.T) {
	g := newTestGame(1)
	e := NewEnemy(112.5, 1, false, false, 120) // x 100..125
	e.Y = 100
	g.enemies = append(g.enemies, e)

	addBullet(g, 96, 110, 1) // right edge at exactly 100
	g.bulletsVsEnemies()

	if len(g.bullets) != 1 || g.enemies[0].Health != 3 {
		t.Error("touching boxes must not collide")
	}
}

func TestBossKillAward(t *testing.T) {
	g := newTestGame(1)
	g.waves.Wave = 2
	g.waves.Boss = NewBigBoss(2, g.waves.boss)
	g.waves.Boss.Y = 100
	g.waves.Boss.Health = 1

	addBullet(g, 400, 140, 1)
	g.bulletsVsBoss()

	if g.score != 2000 {
		t.Errorf("boss at wave 2 should award 2000, got %d", g.score)
	}
	if g.waves.Boss != nil {
		t.Error("boss should be cleared")
	}
	if g.waves.Killed != g.waves.Target {
		t.Error("boss kill should meet the wave target")
	}
}

func TestEveryBulletHitsBoss(t *testing.T) {
	g := newTestGame(1)
	g.waves.Boss = NewBigBoss(3, g.waves.boss)
	g.waves.Boss.Y = 100
	g.waves.Boss.Health = 10

	addBullet(g, 380, 140, 1)
	addBullet(g, 400, 140, 2)
	addBullet(g, 420, 140, 1)
	g.bulletsVsBoss()

	if g.waves.Boss.Health != 6 {
		t.Errorf("expected boss health 6, got %d", g.waves.Boss.Health)
	}
	if len(g.bullets) != 0 {
		t.Errorf("all bullets should be consumed, %d left", len(g.bullets))
	}
}

func TestBulletsStopAfterBossDies(t *testing.T) {
	g := newTestGame(1)
	g.waves.Boss = NewBigBoss(3, g.waves.boss)
	g.waves.Boss.Y = 100
	g.waves.Boss.Health = 1

	addBullet(g, 380, 140, 1)
	addBullet(g, 420, 140, 1)
	g.bulletsVsBoss()

	if len(g.bullets) != 1 {
		t.Errorf("bullets after the kill should be left alone, got %d", len(g.bullets))
	}
}

func TestBulletDestroysRocket(t *testing.T) {
	g := newTestGame(1)
	g.rockets = append(g.rockets, NewRocket(200, 200, 2.5, 0.08, 2))

	addBullet(g, 201, 201, 1)
	g.bulletsVsRockets()
	if len(g.rockets) != 1 || g.rockets[0].Health != 1 {
		t.Fatal("rocket should survive the first hit")
	}

	addBullet(g, 199, 199, 1)
	g.bulletsVsRockets()
	if len(g.rockets) != 0 || g.score != 50 {
		t.Errorf("rocket should be destroyed for 50 points, got %d rockets score %d", len(g.rockets), g.score)
	}
}

func TestPowerupCollection(t *testing.T) {
	g := newTestGame(1)
	g.powerups = append(g.powerups,
		Powerup{Body: Body{X: g.player.X, Y: g.player.Y, W: powerupSize, H: powerupSize}, Type: PowerupDamage},
	)
	g.troopsVsPowerups()
	if g.damageLevel != 2 || len(g.powerups) != 0 {
		t.Errorf("damage powerup should raise damage, got %d", g.damageLevel)
	}

	for i := 0; i < 12; i++ {
		g.powerups = append(g.powerups,
			Powerup{Body: Body{X: g.player.X, Y: g.player.Y, W: powerupSize, H: powerupSize}, Type: PowerupTroop},
		)
		g.troopsVsPowerups()
	}
	if g.player.Formation.Len() != 9 {
		t.Errorf("troop powerups should cap at 9, got %d", g.player.Formation.Len())
	}
}

func TestMidBossContactCostsTroops(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 5; i++ {
		g.player.Formation.Add()
	}
	g.waves.Wave = 6

	e := NewEnemy(400, 6, true, false, 120)
	e.Y = g.player.Y
	g.enemies = append(g.enemies, e)

	if !g.troopsVsEnemies() {
		t.Fatal("squad should survive")
	}
	// (6-1)/5 + 2 = 3
	if g.player.Formation.Len() != 3 {
		t.Errorf("expected 3 troops left, got %d", g.player.Formation.Len())
	}
	if len(g.enemies) != 0 {
		t.Error("enemy should be removed on contact")
	}
}

func TestRocketWipesSmallSquad(t *testing.T) {
	g := newTestGame(1)
	rec := &cueRecorder{}
	g.Attach(nil, rec)

	g.rockets = append(g.rockets, NewRocket(g.player.X+10, g.player.Y+10, 2.5, 0.08, 3))
	if g.rocketsVsTroops() {
		t.Fatal("rocket should end the game")
	}
	if g.player.Formation.Len() != 0 {
		t.Errorf("troop count should be 0, got %d", g.player.Formation.Len())
	}
	if g.state != StateGameOver || rec.counts[core.CueDeath] != 1 {
		t.Error("expected a single game over")
	}
}

func TestEnemyBulletRemovesHitTroop(t *testing.T) {
	g := newTestGame(1)
	g.player.Formation.Add()
	g.player.Formation.Add()

	// Slot 2 sits two columns left of the anchor
	x := g.player.X - 60 + 10
	g.enemyBullets = append(g.enemyBullets, EnemyBullet{Body: Body{X: x, Y: g.player.Y + 5, W: bulletW, H: bulletH}})

	if !g.enemyBulletsVsTroops() {
		t.Fatal("squad should survive")
	}
	if g.player.Formation.Len() != 2 || len(g.enemyBullets) != 0 {
		t.Errorf("expected 2 troops and no bullets, got %d and %d", g.player.Formation.Len(), len(g.enemyBullets))
	}
}

func TestCollisionShortCircuitsOnWipe(t *testing.T) {
	g := newTestGame(1)
	rec := &cueRecorder{}
	g.Attach(nil, rec)

	e := NewEnemy(400, 1, false, false, 120)
	e.Y = g.player.Y + 5
	g.enemies = append(g.enemies, e)
	g.enemyBullets = append(g.enemyBullets, EnemyBullet{Body: Body{X: g.player.X + 5, Y: g.player.Y + 5, W: bulletW, H: bulletH}})

	if g.resolveCollisions() {
		t.Fatal("wipe should stop collision processing")
	}
	if len(g.enemyBullets) != 1 {
		t.Error("later categories must not run after a wipe")
	}
	if rec.counts[core.CueDeath] != 1 {
		t.Errorf("death cue should fire once, got %d", rec.counts[core.CueDeath])
	}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Error("game should stay over")
	}
	if rec.counts[core.CueDeath] != 1 {
		t.Error("death cue repeated")
	}
}
