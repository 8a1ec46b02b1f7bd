package squad

import (
	"fmt"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

// Glyphs used by the renderer.
const (
	TroopChar       = '☻'
	BulletChar      = '|'
	EnemyBulletChar = '!'
	RocketChar      = '▼'
	TrailChar       = '·'
	EnemyChar       = 'V'
	ShooterChar     = 'S'
	MidBossChar     = 'W'
	BossChar        = '█'
	ParticleChar    = '*'
	FlashChar       = '+'
	WaterChar       = '~'
	BridgeChar      = '░'
	LaneChar        = '┊'
	BaseChar        = '▀'
)

// hudRows is the number of screen rows reserved above the field.
const hudRows = 1

// projection maps world units onto screen cells below the HUD.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen) projection {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return projection{
		sx: float64(dst.Width()) / WorldWidth,
		sy: float64(rows) / WorldHeight,
	}
}

func (p projection) cell(x, y float64) (int, int) {
	return int(x * p.sx), int(y*p.sy) + hudRows
}

// rect converts a corner box to a screen rectangle at least one cell in size.
func (p projection) rect(x, y, w, h float64) core.Rect {
	cx, cy := p.cell(x, y)
	cw := max(int(w*p.sx+0.5), 1)
	ch := max(int(h*p.sy+0.5), 1)
	return core.NewRect(cx, cy, cw, ch)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.waves == nil {
		return
	}
	p := newProjection(dst)

	g.renderField(dst, p)
	g.renderPowerups(dst, p)
	g.renderEnemies(dst, p)
	g.renderBoss(dst, p)
	g.renderProjectiles(dst, p)
	g.renderEffects(dst, p)
	g.renderSquad(dst, p)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderField draws water, the bridge, lane markers and the base line.
func (g *Game) renderField(dst *core.Screen, p projection) {
	left, width := BridgeBounds(g.waves.Wave, g.cfg.Lanes)
	bx0, _ := p.cell(left, 0)
	bx1, _ := p.cell(left+width, 0)

	for y := hudRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if x < bx0 || x >= bx1 {
				if (x+y)%4 == 0 {
					dst.SetColored(x, y, WaterChar, core.ColorBlue)
				}
				continue
			}
			dst.SetColored(x, y, BridgeChar, core.ColorGray)
		}
	}

	lanes := g.lanes()
	laneW := width / float64(max(len(lanes), 1))
	for i := 1; i < len(lanes); i++ {
		x, _ := p.cell(left+laneW*float64(i), 0)
		dst.DrawVLine(x, hudRows, dst.Height()-hudRows, LaneChar, core.ColorWhite)
	}

	_, baseY := p.cell(0, WorldHeight-g.cfg.Player.BaseMargin)
	for x := bx0; x < bx1; x++ {
		dst.SetColored(x, baseY, BaseChar, core.ColorCyan)
	}
}

func (g *Game) renderPowerups(dst *core.Screen, p projection) {
	for _, pu := range g.powerups {
		x, y := p.cell(pu.X+pu.W/2, pu.Y+pu.H/2)
		if pu.Type == PowerupDamage {
			dst.SetColored(x, y, 'D', core.ColorBrightYellow)
		} else {
			dst.SetColored(x, y, 'T', core.ColorBrightGreen)
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, p projection) {
	for _, e := range g.enemies {
		glyph, color := EnemyChar, core.ColorRed
		switch {
		case e.IsBoss:
			glyph, color = MidBossChar, core.ColorBrightRed
		case e.IsShooter:
			glyph, color = ShooterChar, core.ColorMagenta
		}
		dst.DrawRectColored(p.rect(e.X, e.Y, e.W, e.H), glyph, color)
	}
}

func (g *Game) renderBoss(dst *core.Screen, p projection) {
	boss := g.waves.Boss
	if boss == nil {
		return
	}
	dst.DrawRectColored(p.rect(boss.X, boss.Y, boss.W, boss.H), BossChar, core.ColorGreen)
}

func (g *Game) renderProjectiles(dst *core.Screen, p projection) {
	for _, r := range g.rockets {
		for _, puff := range r.Trail {
			x, y := p.cell(puff.X, puff.Y)
			dst.SetColored(x, y, TrailChar, core.ColorGray)
		}
		x, y := p.cell(r.X, r.Y)
		dst.SetColored(x, y, RocketChar, core.ColorOrange)
	}
	for _, b := range g.enemyBullets {
		x, y := p.cell(b.X+b.W/2, b.Y)
		dst.SetColored(x, y, EnemyBulletChar, core.ColorBrightMagenta)
	}
	for _, b := range g.bullets {
		x, y := p.cell(b.X, b.Y)
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderSquad(dst *core.Screen, p projection) {
	for _, t := range g.player.Formation.Troops() {
		x, y := p.cell(g.player.X+t.OffsetX+g.player.W/2, g.player.Y+t.OffsetY+g.player.H/2)
		dst.SetColored(x, y, TroopChar, core.ColorBrightCyan)
	}
}

func (g *Game) renderEffects(dst *core.Screen, p projection) {
	for _, pt := range g.particles {
		x, y := p.cell(pt.X, pt.Y)
		dst.SetColored(x, y, ParticleChar, pt.Color)
	}
	for _, f := range g.flashes {
		x, y := p.cell(f.X, f.Y)
		glyph := FlashChar
		if f.Big {
			glyph = '✹'
		}
		dst.SetColored(x, y, glyph, core.ColorYellow)
	}
}

// renderHUD draws score, wave, troops, lives and the boss health bar.
func (g *Game) renderHUD(dst *core.Screen) {
	troops := fmt.Sprintf("%d", g.player.Formation.Len())
	if g.player.Formation.Len() >= g.player.Formation.Max() {
		troops += " MAX"
	}
	left := fmt.Sprintf("Score: %d  Wave: %d  Troops: %s  Lives: %d  Dmg: %d",
		g.score, g.waves.Wave, troops, g.lives, g.damageLevel)
	dst.DrawText(1, 0, left)

	var right string
	if boss := g.waves.Boss; boss != nil {
		const barW = 10
		filled := barW * max(boss.Health, 0) / max(boss.MaxHealth, 1)
		bar := make([]rune, barW)
		for i := range bar {
			if i < filled {
				bar[i] = '█'
			} else {
				bar[i] = '░'
			}
		}
		right = "BOSS " + string(bar)
	} else {
		right = fmt.Sprintf("Kills: %d/%d", g.waves.Killed, g.waves.Target)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightRed)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "P to resume  |  Esc for menu")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  Wave: %d  |  Press R to restart", g.score, g.waves.Wave)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
