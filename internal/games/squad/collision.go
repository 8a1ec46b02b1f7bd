package squad

import (
	"github.com/vovakirdan/squad-arcade/internal/core"
)

// Score awards.
const (
	scoreRocket  = 50
	scoreEnemy   = 10
	scoreMidBoss = 50
)

// removeAt deletes s[i] keeping order.
func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}

// troopBox returns the corner box of the troop in slot t.
func (g *Game) troopBox(t Troop) core.Box {
	return core.CornerBox(g.player.X+t.OffsetX, g.player.Y+t.OffsetY, g.player.W, g.player.H)
}

// resolveCollisions runs every pair category in a fixed order.
// It returns false when the squad was wiped out and the tick must stop.
func (g *Game) resolveCollisions() bool {
	g.bulletsVsRockets()
	g.bulletsVsBoss()
	g.bulletsVsEnemies()
	g.troopsVsPowerups()
	if !g.troopsVsEnemies() {
		return false
	}
	if !g.rocketsVsTroops() {
		return false
	}
	return g.enemyBulletsVsTroops()
}

func (g *Game) bulletsVsRockets() {
	for i := len(g.bullets) - 1; i >= 0; i-- {
		b := g.bullets[i]
		for j := len(g.rockets) - 1; j >= 0; j-- {
			r := &g.rockets[j]
			if !core.CenterBox(r.X, r.Y, r.W, r.H).StrictlyContains(b.X, b.Y) {
				continue
			}
			r.Health -= b.Damage
			g.bullets = removeAt(g.bullets, i)
			if r.Health <= 0 {
				x, y := r.X, r.Y
				g.rockets = removeAt(g.rockets, j)
				g.score += scoreRocket
				g.burst(x, y, core.ColorOrange, 15)
				g.signals.Cue(core.CueExplosion, 0.6)
			}
			break
		}
	}
}

func (g *Game) bulletsVsBoss() {
	boss := g.waves.Boss
	if boss == nil {
		return
	}
	box := core.CornerBox(boss.X, boss.Y, boss.W, boss.H)
	for i := len(g.bullets) - 1; i >= 0; i-- {
		b := g.bullets[i]
		if !box.StrictlyContains(b.X, b.Y) {
			continue
		}
		boss.Health -= b.Damage
		g.bullets = removeAt(g.bullets, i)
		g.burst(b.X, b.Y, core.ColorOrange, 5)
		g.signals.Cue(core.CueHit, 0.3)

		if boss.Health <= 0 {
			g.score += 1000 + g.waves.Wave*500
			cx, cy := box.Center()
			g.burst(cx, cy, core.ColorBrightRed, 50)
			g.signals.Cue(core.CueExplosion, 1)
			g.waves.BossDefeated()
			return
		}
	}
}

func (g *Game) bulletsVsEnemies() {
	for i := len(g.bullets) - 1; i >= 0; i-- {
		b := g.bullets[i]
		hit := core.CornerBox(b.X, b.Y, b.W, b.H)
		for j := len(g.enemies) - 1; j >= 0; j-- {
			e := &g.enemies[j]
			if !hit.Overlaps(core.CornerBox(e.X, e.Y, e.W, e.H)) {
				continue
			}
			g.bullets = removeAt(g.bullets, i)
			g.burst(b.X, b.Y, core.ColorYellow, 5)
			g.signals.Cue(core.CueHit, 0.4)

			if e.TakeDamage(b.Damage) {
				cx, cy := e.X+e.W/2, e.Y+e.H/2
				if e.IsBoss {
					g.score += scoreMidBoss
					g.signals.Cue(core.CueExplosion, 0.8)
				} else {
					g.score += scoreEnemy
					g.signals.Cue(core.CueExplosion, 0.5)
				}
				g.enemies = removeAt(g.enemies, j)
				g.waves.RecordKill()
				g.burst(cx, cy, core.ColorRed, 15)
			}
			break
		}
	}
}

func (g *Game) troopsVsPowerups() {
	for i := len(g.powerups) - 1; i >= 0; i-- {
		p := g.powerups[i]
		box := core.CornerBox(p.X, p.Y, p.W, p.H)
		for _, t := range g.player.Formation.Troops() {
			if !g.troopBox(t).Overlaps(box) {
				continue
			}
			switch p.Type {
			case PowerupDamage:
				g.damageLevel++
			case PowerupTroop:
				g.player.Formation.Add()
			}
			g.powerups = removeAt(g.powerups, i)
			g.burst(p.X+p.W/2, p.Y+p.H/2, core.ColorBrightGreen, 20)
			g.signals.Cue(core.CuePowerup, 0.6)
			break
		}
	}
}

func (g *Game) troopsVsEnemies() bool {
	f := g.player.Formation
	for i := len(g.enemies) - 1; i >= 0; i-- {
		e := g.enemies[i]
		box := core.CornerBox(e.X, e.Y, e.W, e.H)
		troops := f.Troops()
		for t := len(troops) - 1; t >= 0; t-- {
			if !g.troopBox(troops[t]).Overlaps(box) {
				continue
			}
			loss := 1
			if e.IsBoss {
				loss = (g.waves.Wave-1)/5 + 2
			}
			f.RemoveTail(loss)
			g.enemies = removeAt(g.enemies, i)
			g.burst(e.X+e.W/2, e.Y+e.H/2, core.ColorRed, 20)
			g.signals.Cue(core.CueHit, 0.5)
			if f.Len() == 0 {
				g.endGame()
				return false
			}
			break
		}
	}
	return true
}

func (g *Game) rocketsVsTroops() bool {
	f := g.player.Formation
	for i := len(g.rockets) - 1; i >= 0; i-- {
		r := g.rockets[i]
		box := core.CenterBox(r.X, r.Y, r.W, r.H)
		troops := f.Troops()
		for t := len(troops) - 1; t >= 0; t-- {
			if !g.troopBox(troops[t]).Overlaps(box) {
				continue
			}
			f.RemoveTail(3)
			g.rockets = removeAt(g.rockets, i)
			g.burst(r.X, r.Y, core.ColorOrange, 30)
			g.signals.Cue(core.CueExplosion, 0.8)
			if f.Len() == 0 {
				g.endGame()
				return false
			}
			break
		}
	}
	return true
}

func (g *Game) enemyBulletsVsTroops() bool {
	f := g.player.Formation
	for i := len(g.enemyBullets) - 1; i >= 0; i-- {
		b := g.enemyBullets[i]
		box := core.CornerBox(b.X, b.Y, b.W, b.H)
		troops := f.Troops()
		for t := len(troops) - 1; t >= 0; t-- {
			if !g.troopBox(troops[t]).Overlaps(box) {
				continue
			}
			f.RemoveAt(t)
			g.enemyBullets = removeAt(g.enemyBullets, i)
			g.burst(b.X, b.Y, core.ColorMagenta, 10)
			g.signals.Cue(core.CueHit, 0.4)
			if f.Len() == 0 {
				g.endGame()
				return false
			}
			break
		}
	}
	return true
}
