package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
)

// Enemy patrols horizontally and turns around at walls.
type Enemy struct {
	Body

	Kind  content.EnemyKind
	Alive bool

	AnimFrame int
	animTimer int
}

// NewEnemy spawns an enemy walking left at the given patrol speed.
func NewEnemy(spec content.EnemySpec, cfg config.EnemyConfig, speed float64) *Enemy {
	e := &Enemy{
		Kind:  spec.Kind,
		Alive: true,
	}
	e.Box = core.Box{X: spec.X, Y: spec.Y, W: cfg.Width, H: cfg.Height}
	e.VX = -speed
	e.Direction = -1
	return e
}

// Update moves the enemy and marks it dead once it falls below deathY.
func (e *Enemy) Update(gravity, deathY float64) {
	if !e.Alive {
		return
	}

	if e.Kind.Traits().Flying {
		e.integrate(0, 0)
	} else {
		e.integrate(gravity, 0)
	}

	e.animTimer++
	if e.animTimer > 30 {
		e.AnimFrame = (e.AnimFrame + 1) % 2
		e.animTimer = 0
	}

	if e.Box.Y > deathY {
		e.Alive = false
	}
}

// Stomped reports whether the player is coming down on top of the enemy.
func (e *Enemy) Stomped(p *Player, margin float64) bool {
	return p.Box.Bottom() < e.Box.Y+margin && p.VY > 0
}

// CheckPlayer resolves contact with the player. A stomp defeats the enemy
// and bounces the player; any other touch reports damage to the caller.
// Invulnerable players pass through enemies untouched.
func (e *Enemy) CheckPlayer(p *Player, cfg config.EnemyConfig, points int, ctx *Context) bool {
	if !e.Alive || p.Invuln.Active() {
		return false
	}
	if !e.Box.Overlaps(p.Box) {
		return false
	}

	if e.Stomped(p, cfg.StompMargin) {
		e.Defeat(points, ctx)
		p.VY = -cfg.StompBounce
		return false
	}
	return true
}

// Defeat kills the enemy and awards points.
func (e *Enemy) Defeat(points int, ctx *Context) {
	if !e.Alive {
		return
	}
	e.Alive = false
	ctx.addScore(points)
	ctx.emit(EventEnemyDefeat, e.Box.CenterX(), e.Box.CenterY())
}
