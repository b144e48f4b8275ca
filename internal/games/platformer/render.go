package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
)

// Visual characters for rendering
const (
	GroundTopChar = '█'
	GroundChar    = '▓'
	BrickChar     = '▒'
	PipeChar      = '║'
	CloudChar     = '░'
	PlayerChar    = '█'
	FireballChar  = '•'
	ParticleChar  = '·'
	FlagPoleChar  = '│'
	FlagChar      = '▶'
	StarChar      = '.'
)

// view maps world pixels to screen cells for one frame.
type view struct {
	camX  float64
	cellW float64
	cellH float64
	top   int // screen row of world y = 0
}

func (v view) col(x float64) int {
	return int(math.Floor((x - v.camX) / v.cellW))
}

func (v view) row(y float64) int {
	return v.top + int(math.Floor(y/v.cellH))
}

// span returns the cells a box covers, at least one in each direction.
func (v view) span(b core.Box) (x0, y0, x1, y1 int) {
	x0, y0 = v.col(b.X), v.row(b.Y)
	x1 = int(math.Ceil((b.Right()-v.camX)/v.cellW)) - 1
	y1 = v.top + int(math.Ceil(b.Bottom()/v.cellH)) - 1
	return x0, y0, max(x0, x1), max(y0, y1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.loadErr != nil {
		g.drawCenteredBox(dst, "LEVEL LOAD FAILED", g.loadErr.Error())
		return
	}

	v := g.view(dst)
	g.renderBackground(dst, v)
	g.renderPlatforms(dst, v)
	g.renderGoal(dst, v)
	g.renderCollectibles(dst, v)
	g.renderEnemies(dst, v)
	g.renderFireballs(dst, v)
	g.renderPlayer(dst, v)
	g.renderParticles(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// view computes the camera transform. The level is bottom-aligned so the
// ground stays visible on short terminals.
func (g *Game) view(dst *core.Screen) view {
	cellH := float64(g.cfg.Render.CellHeight)
	worldRows := int(math.Ceil(g.level.Height / cellH))
	return view{
		camX:  g.level.Camera.X + Shake(g.tickCount, g.runtime.TickRate, g.levelNum, g.cfg.Camera),
		cellW: float64(g.cfg.Render.CellWidth),
		cellH: cellH,
		top:   dst.Height() - worldRows,
	}
}

func (g *Game) renderBackground(dst *core.Screen, v view) {
	if g.level.Theme != content.ThemeSpace {
		return
	}
	w, h := int(g.level.Width), int(g.level.Height)
	for i := range 100 {
		x := float64((i * 137) % w)
		y := float64((i * 211) % h)
		dst.SetCell(v.col(x), v.row(y), StarChar, core.ColorGray)
	}
}

func (g *Game) renderPlatforms(dst *core.Screen, v view) {
	for _, p := range g.level.Platforms {
		if !p.Visible {
			continue
		}
		x0, y0, x1, y1 := v.span(p.Box)
		if x1 < 0 || x0 >= dst.Width() {
			continue
		}

		glyph, color := platformGlyph(p.Kind)
		if p.Vanish != nil && p.Vanish.Timer > p.Vanish.Threshold/2 && g.tickCount%10 < 5 {
			glyph, color = CloudChar, core.ColorGray
		}

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if p.Kind == content.PlatformGround && y == y0 {
					dst.SetCell(x, y, GroundTopChar, core.ColorGreen)
					continue
				}
				dst.SetCell(x, y, glyph, color)
			}
		}
	}
}

func platformGlyph(kind content.PlatformKind) (rune, core.Color) {
	switch kind {
	case content.PlatformBrick:
		return BrickChar, core.ColorOrange
	case content.PlatformPipe:
		return PipeChar, core.ColorBrightGreen
	case content.PlatformCloud:
		return CloudChar, core.ColorBrightWhite
	default:
		return GroundChar, core.ColorYellow
	}
}

func (g *Game) renderGoal(dst *core.Screen, v view) {
	x := v.col(g.level.GoalX)
	top := v.row(g.level.Height - 200)
	bottom := v.row(g.level.Height-content.GroundTile) - 1
	for y := top; y <= bottom; y++ {
		dst.SetCell(x, y, FlagPoleChar, core.ColorWhite)
	}
	dst.SetCell(x+1, top, FlagChar, core.ColorBrightMagenta)
}

func (g *Game) renderCollectibles(dst *core.Screen, v view) {
	for _, c := range g.collectibles {
		if c.Collected {
			continue
		}
		t := c.Kind.Traits()
		dst.SetCell(v.col(c.Box.CenterX()), v.row(c.Box.CenterY()), t.Glyph, t.Color)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v view) {
	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		t := e.Kind.Traits()
		x0, y0, x1, y1 := v.span(e.Box)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetCell(x, y, t.Glyph, t.Color)
			}
		}
	}
}

func (g *Game) renderFireballs(dst *core.Screen, v view) {
	for _, f := range g.fireballs {
		if f.Alive {
			dst.SetCell(v.col(f.Box.CenterX()), v.row(f.Box.CenterY()), FireballChar, core.ColorBrightRed)
		}
	}
}

// starColors cycles while star power is active.
var starColors = []core.Color{core.ColorBrightYellow, core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightGreen}

func (g *Game) renderPlayer(dst *core.Screen, v view) {
	p := g.player
	if p.Invuln.Flashing() {
		return
	}

	color := core.ColorBrightCyan
	switch {
	case p.Invuln.Kind == InvulnStar:
		color = starColors[(g.tickCount/4)%len(starColors)]
	case p.Fire:
		color = core.ColorOrange
	case p.Size == SizeBig:
		color = core.ColorBrightRed
	}

	x0, y0, x1, y1 := v.span(p.Box)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, PlayerChar, color)
		}
	}

	// Eyes on the leading edge of the top row
	eye := x1
	if p.Direction < 0 {
		eye = x0
	}
	dst.SetCell(eye, y0, '▪', core.ColorWhite)
}

func (g *Game) renderParticles(dst *core.Screen, v view) {
	for _, pt := range g.particles.Particles {
		if pt.Life > 0 {
			dst.SetCell(v.col(pt.X), v.row(pt.Y), ParticleChar, pt.Color)
		}
	}
}

// renderHUD draws score, coins, lives and level on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	for x := range dst.Width() {
		dst.Set(x, 0, ' ')
	}

	left := fmt.Sprintf("Score: %d  Coins: %d  Lives: %d", g.ctx.Tally.Score, g.ctx.Tally.Coins, g.player.Lives)
	if status := g.statusString(); status != "" {
		left += "  " + status
	}
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf("Hi: %d  Level: %d %s", g.highScore, g.levelNum, g.level.Theme)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

// statusString lists active power-ups with their remaining seconds.
func (g *Game) statusString() string {
	rate := g.runtime.TickRate
	var parts []string
	if g.player.Size == SizeBig {
		parts = append(parts, fmt.Sprintf("BIG(%d)", g.player.GrowTicks()/rate))
	}
	if g.player.Fire {
		parts = append(parts, fmt.Sprintf("FIRE(%d)", g.player.FireTicks()/rate))
	}
	if g.player.Invuln.Kind == InvulnStar {
		parts = append(parts, fmt.Sprintf("STAR(%d)", g.player.Invuln.Ticks/rate))
	}
	return strings.Join(parts, " ")
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateLevelComplete:
		subtitle := fmt.Sprintf("Score: %d  |  Press ENTER for level %d", g.ctx.Tally.Score, g.levelNum+1)
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d COMPLETE", g.levelNum), subtitle)

	case StateGameOver:
		title := "GAME OVER"
		if g.newRecord {
			title = "GAME OVER - NEW HIGH SCORE"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", g.ctx.Tally.Score, g.highScore)
		g.drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := max(boxX+(boxW-len(subtitle))/2, boxX+1)
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
