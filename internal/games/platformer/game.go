// Package platformer implements a side-scrolling platformer as a
// deterministic tick simulation. The session owns every entity; entities
// receive an explicit Context for score, effects and randomness.
package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameState constants
const (
	StatePlaying       = "playing"
	StatePaused        = "paused"
	StateLevelComplete = "level_complete"
	StateGameOver      = "game_over"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // authored levels first, then random ones
	ModeEndless                  // random layouts from the first level
)

// advanceDelay is how long the level-complete screen ignores input.
const advanceDelay = 30

// HighScoreStore persists the best score per name.
type HighScoreStore interface {
	BestScore(name string) (int, error)
	SaveBestScore(name string, score int) error
}

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	// startLevel is the campaign level a fresh game begins at
	startLevel = 1

	highScores  HighScoreStore
	effectSink  EffectSink
	levelSource content.Provider
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetStartLevel sets the campaign start level. Values below 1 reset it to 1.
func SetStartLevel(n int) {
	startLevel = max(1, n)
}

// SetHighScoreStore sets where game-over high scores are read and written.
func SetHighScoreStore(s HighScoreStore) {
	highScores = s
}

// SetEffectSink adds a sink that receives every gameplay event, such as
// the audio player.
func SetEffectSink(s EffectSink) {
	effectSink = s
}

// SetLevelSource puts a provider, usually a YAML pack, in front of the
// built-in levels. Levels it does not have come from the built-in set.
func SetLevelSource(p content.Provider) {
	levelSource = p
}

// Game implements the platformer session.
type Game struct {
	mode GameMode

	player       *Player
	level        *Level
	enemies      []*Enemy
	collectibles []*Collectible
	fireballs    []*Fireball
	particles    *ParticleSystem

	state      string
	levelNum   int
	tickCount  int
	delay      int
	highScore  int
	newRecord  bool
	loadErr    error
	viewportW  float64
	enemySpeed float64

	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	provider   content.Provider
	rng        *rand.Rand
	ctx        *Context
	store      HighScoreStore

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new platformer instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new platformer instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "platformer_endless"
	}
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Platformer (Endless)"
	}
	return "Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	// Load game config
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if g.mode == ModeEndless && !config.IsFixedPreset(difficultyPreset) {
		g.difficulty.SetEnabled(true) // endless always ramps
	}
	g.store = highScores

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	g.viewportW = float64(runtime.ScreenW * cfg.Render.CellWidth)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.particles = NewParticleSystem(g.rng)
	g.ctx = NewContext(Multi{g.particles, effectSink}, g.rng)

	if g.mode == ModeEndless {
		g.provider = content.NewEndless(runtime.Seed)
	} else {
		g.provider = content.Chain(levelSource, content.NewBuiltin(runtime.Seed))
	}

	g.player = NewPlayer(cfg.Player, cfg.Physics)
	g.state = StatePlaying
	g.tickCount = 0
	g.delay = 0
	g.newRecord = false
	g.highScore = g.readHighScore()

	g.levelNum = 1
	if g.mode == ModeCampaign {
		g.levelNum = startLevel
	}
	g.loadLevel(g.levelNum)
}

// Resize adapts the viewport to a new terminal size without restarting
// the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
	g.viewportW = float64(w * g.cfg.Render.CellWidth)
}

// loadLevel replaces the level and everything in it. The player keeps
// lives and score but respawns small.
func (g *Game) loadLevel(n int) {
	spec, err := g.provider.Level(n)
	if err != nil {
		g.loadErr = err
		return
	}
	g.loadErr = nil

	g.level = NewLevel(spec, g.cfg.Platforms)
	g.player.Reset(g.level.SpawnX, g.level.SpawnY)

	g.enemySpeed = g.difficulty.Speed(g.cfg.Enemies.Speed, config.Progress{
		Stage: n,
		Score: g.ctx.Tally.Score,
		Ticks: g.tickCount,
	})
	g.enemies = make([]*Enemy, 0, len(spec.Enemies))
	for _, es := range spec.Enemies {
		g.enemies = append(g.enemies, NewEnemy(es, g.cfg.Enemies, g.enemySpeed))
	}

	g.collectibles = make([]*Collectible, 0, len(spec.Collectibles))
	for _, cs := range spec.Collectibles {
		g.collectibles = append(g.collectibles, NewCollectible(cs, g.cfg.Collectibles))
	}

	g.fireballs = g.fireballs[:0]
	g.particles.Clear()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state == StateLevelComplete {
		if g.delay > 0 {
			g.delay--
		} else if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.nextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick(in)
	return core.StepResult{State: g.State()}
}

// tick runs one simulation step in a fixed order.
func (g *Game) tick(in core.InputFrame) {
	g.tickCount++

	// Dynamic platforms first, using last tick's PlayerOn flags
	g.level.Update()

	if g.player.Update(in, g.level.Modifiers, g.ctx) {
		g.fireballs = append(g.fireballs, NewFireball(g.player, g.cfg.Player))
	}

	deathY := g.level.Height + g.cfg.Physics.FallMargin
	for _, e := range g.enemies {
		e.Update(g.cfg.Enemies.Gravity, deathY)
	}
	for _, c := range g.collectibles {
		c.Update(g.cfg.Collectibles)
	}
	for _, f := range g.fireballs {
		f.Update()
	}
	g.particles.Update()

	g.resolvePlatforms()

	if g.resolveEnemies() {
		return
	}

	for _, f := range g.fireballs {
		for _, e := range g.enemies {
			if f.HitEnemy(e, g.cfg.Scoring.Stomp, g.ctx) {
				break
			}
		}
	}
	for _, c := range g.collectibles {
		c.CheckPlayer(g.player, &g.cfg, g.ctx)
	}

	if g.keepPlayerInBounds() {
		return
	}

	if g.level.AtGoal(g.player) {
		g.completeLevel()
	}

	if g.survivalBonusTick() {
		g.ctx.addScore(g.cfg.Scoring.SurvivalPoints)
	}

	g.level.Camera.Follow(g.player.Box.X, g.viewportW, g.level.Width, g.cfg.Camera)

	g.purge()
}

// resolvePlatforms pushes the player, enemies and fireballs out of platforms.
func (g *Game) resolvePlatforms() {
	for _, p := range g.level.Platforms {
		p.PlayerOn = false
		if !p.Solid() {
			continue
		}
		if Resolve(&g.player.Body, p.Box, WallStop).Landed() {
			p.PlayerOn = true
		}
	}

	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		for _, p := range g.level.Platforms {
			if p.Solid() {
				Resolve(&e.Body, p.Box, WallReverse)
			}
		}
	}

	for _, f := range g.fireballs {
		for _, p := range g.level.Platforms {
			if f.HitPlatform(p) {
				break
			}
		}
	}
}

// resolveEnemies handles stomps and enemy damage. The first damaging
// enemy ends the scan. It reports true when the game ended.
func (g *Game) resolveEnemies() bool {
	for _, e := range g.enemies {
		if !e.CheckPlayer(g.player, g.cfg.Enemies, g.cfg.Scoring.Stomp, g.ctx) {
			continue
		}
		if g.player.TakeDamage(g.ctx) {
			g.gameOver()
			return true
		}
		break
	}
	return false
}

// keepPlayerInBounds clamps the player horizontally and handles falling
// out of the world. It reports true when the game ended.
func (g *Game) keepPlayerInBounds() bool {
	p := g.player
	if p.Box.X < 0 {
		p.Box.X = 0
		p.VX = 0
	}
	if maxX := g.level.Width - p.Box.W; p.Box.X > maxX {
		p.Box.X = maxX
		p.VX = 0
	}

	if p.Box.Y > g.level.Height+g.cfg.Physics.FallMargin {
		if p.TakeDamage(g.ctx) {
			g.gameOver()
			return true
		}
		p.Reset(g.level.SpawnX, g.level.SpawnY)
	}
	return false
}

// survivalBonusTick reports whether this tick falls in the bonus window:
// one second out of every SurvivalCycle seconds of play.
func (g *Game) survivalBonusTick() bool {
	cycle := g.cfg.Scoring.SurvivalCycle
	if cycle <= 0 {
		return false
	}
	return (g.tickCount/g.runtime.TickRate)%cycle == 0
}

// purge drops dead enemies, collected items, spent fireballs and
// expired particles.
func (g *Game) purge() {
	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	items := g.collectibles[:0]
	for _, c := range g.collectibles {
		if !c.Collected {
			items = append(items, c)
		}
	}
	g.collectibles = items

	fireballs := g.fireballs[:0]
	for _, f := range g.fireballs {
		if f.Alive {
			fireballs = append(fireballs, f)
		}
	}
	g.fireballs = fireballs

	g.particles.Prune()
}

// completeLevel awards the lives bonus and waits for the player to continue.
func (g *Game) completeLevel() {
	g.ctx.addScore(g.player.Lives * g.cfg.Scoring.LevelBonusPerLife)
	g.ctx.emit(EventLevelComplete, g.player.Box.CenterX(), g.player.Box.CenterY())
	g.state = StateLevelComplete
	g.delay = advanceDelay
}

// nextLevel loads the following level.
func (g *Game) nextLevel() {
	g.levelNum++
	g.loadLevel(g.levelNum)
	g.state = StatePlaying
}

// gameOver ends the run and records the high score.
func (g *Game) gameOver() {
	g.state = StateGameOver
	g.recordHighScore()
	g.ctx.emit(EventGameOver, g.player.Box.CenterX(), g.player.Box.CenterY())
}

// readHighScore returns the stored best score. A missing or failing store
// reads as zero.
func (g *Game) readHighScore() int {
	if g.store == nil {
		return 0
	}
	best, err := g.store.BestScore(g.ID())
	if err != nil {
		return 0
	}
	return best
}

// recordHighScore overwrites the stored best score when it was beaten.
func (g *Game) recordHighScore() {
	best := g.readHighScore()
	score := g.ctx.Tally.Score
	if score > best {
		g.newRecord = true
		best = score
		if g.store != nil {
			g.store.SaveBestScore(g.ID(), score) //nolint:errcheck // Best-effort save
		}
	}
	g.highScore = best
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.ctx != nil {
		score = g.ctx.Tally.Score
	}
	return core.GameState{
		Score:    score,
		Level:    g.levelNum,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
	registry.Register("platformer_endless", func() registry.Game {
		return NewEndless()
	})
}
