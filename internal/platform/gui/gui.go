// Package gui runs a game in an Ebitengine window. It draws the same cell
// buffer the terminal frontend prints, one 16x32 pixel rectangle per cell,
// and reads real key state instead of key repeats.
package gui

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Window layout in cells and pixels.
const (
	Cols   = 64
	Rows   = 18
	CellW  = 16
	CellH  = 32
	Width  = Cols * CellW
	Height = Rows * CellH
)

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(gameID string, score, level int) (int64, error)
}

// liveKeys reads the keyboard through ebiten.
type liveKeys struct{}

func (liveKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (liveKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreSaver
	config     core.RuntimeConfig
	keys       keyState
	face       text.Face
	logger     *log.Logger
	state      core.GameState
	randomSeed bool // reseed on restart
	scoreSaved bool
}

var _ ebiten.Game = (*Game)(nil)

// New resets game on a Cols x Rows screen. store may be nil.
func New(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	cfg.ScreenW, cfg.ScreenH = Cols, Rows
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g := &Game{
		game:       game,
		screen:     core.NewScreen(Cols, Rows),
		store:      store,
		config:     cfg,
		keys:       liveKeys{},
		face:       text.NewGoXFace(basicfont.Face7x13),
		logger:     logger.WithPrefix("gui"),
		randomSeed: cfg.Seed == 0,
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	if g.randomSeed {
		g.config.Seed = time.Now().UnixNano()
	}
	g.game.Reset(g.config)
	g.state = g.game.State()
	g.scoreSaved = false
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	if quitRequested(g.keys) {
		return ebiten.Termination
	}

	in := readInput(g.keys)
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.reset()
		return nil
	}

	g.state = g.game.Step(in).State

	// Save score on game over (once)
	if g.state.GameOver && !g.scoreSaved && g.state.Score > 0 {
		if g.store != nil {
			if _, err := g.store.SaveScore(g.game.ID(), g.state.Score, max(1, g.state.Level)); err != nil {
				g.logger.Debug("score not saved", "error", err)
			}
		}
		g.scoreSaved = true
	}
	return nil
}

// Draw paints the cell buffer.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	g.screen.Clear()
	g.game.Render(g.screen)

	for y := range g.screen.Height() {
		for x := range g.screen.Width() {
			cell := g.screen.GetCell(x, y)
			sh, alpha := cellShape(cell.Rune)
			if sh == shapeNone {
				continue
			}
			c := colorOf(cell.Color)
			if sh == shapeText {
				g.drawGlyph(dst, x, y, cell.Rune, c)
				continue
			}
			rx, ry, rw, rh := cellRect(sh, x, y)
			vector.FillRect(dst, rx, ry, rw, rh, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}, false)
		}
	}
}

func (g *Game) drawGlyph(dst *ebiten.Image, x, y int, r rune, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x*CellW+4), float64(y*CellH+10))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, string(r), g.face, op)
}

// cellRect returns the rectangle drawn for a shape in cell (x, y).
func cellRect(sh shape, x, y int) (rx, ry, rw, rh float32) {
	px, py := float32(x*CellW), float32(y*CellH)
	switch sh {
	case shapeVBar:
		return px + CellW*3/8, py, CellW / 4, CellH
	case shapeDot:
		return px + CellW/4, py + CellH*3/8, CellW / 2, CellH / 4
	case shapeFlag:
		return px, py + CellH/8, CellW, CellH * 3 / 8
	case shapeBlob:
		return px + 1, py + CellH/3, CellW - 2, CellH * 2 / 3
	}
	return px, py, CellW, CellH
}

// Layout keeps the logical size fixed; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return Width, Height
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := New(game, store, cfg, logger)

	ebiten.SetWindowSize(Width, Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.config.TickRate)

	return ebiten.RunGame(g)
}
