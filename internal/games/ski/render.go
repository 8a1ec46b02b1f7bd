package ski

import (
	"fmt"
	"math"

	"github.com/vovakirdan/squad-arcade/internal/core"
)

// Glyphs used by the renderer.
const (
	PlayerChar    = 'Å'
	SideTreeChar  = '♣'
	SnowflakeChar = '·'
	FlagChar      = '▶'
)

const hudRows = 1

// glyph returns the fill rune and color for an obstacle type.
func glyph(t ObstacleType) (rune, core.Color) {
	switch t {
	case ObstacleTree:
		return '♠', core.ColorGreen
	case ObstacleSkier:
		return '&', core.ColorBrightBlue
	case ObstacleBear:
		return 'B', core.ColorOrange
	case ObstacleRock:
		return '●', core.ColorGray
	case ObstacleSnowman:
		return '☃', core.ColorBrightWhite
	case ObstacleLog:
		return '═', core.ColorOrange
	case ObstacleSign:
		return '╬', core.ColorYellow
	case ObstacleJump:
		return '▲', core.ColorCyan
	default:
		return '?', core.ColorDefault
	}
}

// toCell maps world coordinates to a screen cell below the HUD.
func toCell(dst *core.Screen, x, y float64) (int, int) {
	rows := max(dst.Height()-hudRows, 1)
	return int(x * float64(dst.Width()) / WorldWidth), int(y*float64(rows)/WorldHeight) + hudRows
}

// toRect maps a world box to screen cells, at least one cell in each direction.
func toRect(dst *core.Screen, x, y, w, h float64) core.Rect {
	cx, cy := toCell(dst, x, y)
	rows := max(dst.Height()-hudRows, 1)
	cw := max(int(math.Round(w*float64(dst.Width())/WorldWidth)), 1)
	ch := max(int(math.Round(h*float64(rows)/WorldHeight)), 1)
	return core.NewRect(cx, cy, cw, ch)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.scenery == nil {
		return
	}

	g.renderScenery(dst)
	g.renderObstacles(dst)
	g.renderPlayer(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderScenery(dst *core.Screen) {
	for _, f := range g.scenery.Snowflakes {
		x, y := toCell(dst, f.X, f.Y)
		dst.SetColored(x, y, SnowflakeChar, core.ColorBrightWhite)
	}
	for _, t := range g.scenery.SideTrees {
		x, y := toCell(dst, t.X, t.Y)
		dst.SetColored(x, y, SideTreeChar, core.ColorGreen)
	}
	for _, f := range g.scenery.Flags {
		x, y := toCell(dst, f.X, f.Y)
		if math.Sin(f.Sway) < 0 {
			dst.SetColored(x, y, '◀', f.Color)
		} else {
			dst.SetColored(x, y, FlagChar, f.Color)
		}
	}
}

func (g *Game) renderObstacles(dst *core.Screen) {
	for _, o := range g.obstacles {
		r, c := glyph(o.Type)
		dst.DrawRectColored(toRect(dst, o.X, o.Y, o.W, o.H), r, c)
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.player
	x, y := toCell(dst, p.X+p.W/2, p.Y+p.H/2)
	dst.SetColored(x, y, PlayerChar, core.ColorBrightMagenta)

	// Skis trail the lean direction
	skis := '|'
	switch p.Direction {
	case -1:
		skis = '/'
	case 1:
		skis = '\\'
	}
	dst.SetColored(x, y+1, skis, core.ColorBrightRed)
}

// renderHUD draws distance, score and speed.
func (g *Game) renderHUD(dst *core.Screen) {
	text := fmt.Sprintf("Distance: %dm  Score: %d  Speed: %d km/h", g.Metres(), g.score, int(g.speed*10))
	dst.DrawText(1, 0, text)
	if g.mult != 1 {
		mult := fmt.Sprintf("x%.1f", g.mult)
		dst.DrawTextColored(dst.Width()-len(mult)-1, 0, mult, core.ColorYellow)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "P to resume  |  Esc for menu")
	case StateGameOver:
		subtitle := fmt.Sprintf("Distance: %dm  Score: %d  |  Press R to restart", g.Metres(), g.score)
		g.drawCenteredBox(dst, "WIPEOUT", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
