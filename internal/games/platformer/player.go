package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
)

// Size is the player's hitbox size.
type Size uint8

const (
	SizeSmall Size = iota
	SizeBig
)

func (s Size) String() string {
	if s == SizeBig {
		return "big"
	}
	return "small"
}

// Player is the controllable character.
type Player struct {
	Body

	Lives  int
	Size   Size
	Fire   bool
	Invuln Invulnerability

	growTicks    int
	fireTicks    int
	fireCooldown int

	AnimFrame int
	animTimer int

	cfg  config.PlayerConfig
	phys config.PhysicsConfig
}

// NewPlayer creates a small player with full lives at (0, 0).
func NewPlayer(cfg config.PlayerConfig, phys config.PhysicsConfig) *Player {
	p := &Player{
		Lives: cfg.Lives,
		cfg:   cfg,
		phys:  phys,
	}
	p.Ceiling = true
	p.Reset(0, 0)
	return p
}

// Reset puts the player back at a spawn point: small, no fire, no
// invulnerability, not moving. Lives are kept.
func (p *Player) Reset(x, y float64) {
	p.shrink()
	p.Box = core.Box{X: x, Y: y, W: p.cfg.Width, H: p.cfg.Height}
	p.VX, p.VY = 0, 0
	p.OnGround = false
	p.Direction = 1
	p.Invuln = Invulnerability{}
	p.Fire = false
	p.growTicks = 0
	p.fireTicks = 0
	p.fireCooldown = 0
	p.AnimFrame = 0
	p.animTimer = 0
}

// Update runs one tick of input, physics and timers. It reports whether
// the player threw a fireball this tick.
func (p *Player) Update(in core.InputFrame, mods content.Modifiers, ctx *Context) bool {
	shot := p.handleInput(in, mods, ctx)
	p.integrate(p.phys.Gravity, p.phys.MaxFallSpeed)
	p.updateAnimation()
	p.Invuln.Tick()
	p.updateTimers()
	return shot
}

func (p *Player) handleInput(in core.InputFrame, mods content.Modifiers, ctx *Context) bool {
	switch {
	case in.Has(core.ActionLeft):
		p.VX = -p.cfg.Speed
		p.Direction = -1
	case in.Has(core.ActionRight):
		p.VX = p.cfg.Speed
		p.Direction = 1
	default:
		friction := p.phys.Friction
		if mods.Friction > 0 {
			friction = mods.Friction
		}
		p.VX *= friction
	}

	if in.Has(core.ActionJump) && p.OnGround {
		p.VY = -p.cfg.JumpPower
		p.OnGround = false
		ctx.emit(EventJump, p.Box.CenterX(), p.Box.Bottom())
	}

	// Airborne means moving vertically. A resting player loses OnGround on
	// every other tick (the resolver only sees it after gravity sinks it
	// half a pixel) but its vy stays 0, so it does not drift.
	if mods.Wind != 0 && p.VY != 0 {
		p.VX += mods.Wind
	}

	if in.Has(core.ActionFire) && p.Fire && p.fireCooldown == 0 {
		p.fireCooldown = p.cfg.FireballCooldown
		ctx.emit(EventFireball, p.Box.CenterX(), p.Box.CenterY())
		return true
	}
	return false
}

func (p *Player) updateAnimation() {
	if core.AbsF(p.VX) > 0.1 {
		p.animTimer++
		if p.animTimer > 8 {
			p.AnimFrame = (p.AnimFrame + 1) % 4
			p.animTimer = 0
		}
		return
	}
	p.AnimFrame = 0
}

func (p *Player) updateTimers() {
	if p.Size == SizeBig && p.growTicks > 0 {
		p.growTicks--
		if p.growTicks == 0 {
			p.shrink()
		}
	}
	if p.Fire && p.fireTicks > 0 {
		p.fireTicks--
		if p.fireTicks == 0 {
			p.Fire = false
		}
	}
	if p.fireCooldown > 0 {
		p.fireCooldown--
	}
}

// TakeDamage hurts the player. Big players shrink, small players lose a
// life. Both open a post-damage window. It reports true only on the hit
// that takes the last life and does nothing while invulnerable.
func (p *Player) TakeDamage(ctx *Context) bool {
	if p.Invuln.Active() || p.Lives == 0 {
		return false
	}

	if p.Size == SizeBig {
		p.shrink()
		p.Invuln = PostDamage(p.cfg.InvulnTicks)
		return false
	}

	p.Lives--
	p.Invuln = PostDamage(p.cfg.InvulnTicks)
	ctx.emit(EventDeath, p.Box.CenterX(), p.Box.CenterY())
	return p.Lives == 0
}

// Grow turns a small player big for GrowTicks. The hitbox grows upward so
// the feet stay where they were.
func (p *Player) Grow(ctx *Context) {
	if p.Size == SizeBig {
		return
	}
	p.Size = SizeBig
	delta := p.cfg.BigHeight - p.cfg.Height
	p.Box.H = p.cfg.BigHeight
	p.Box.Y -= delta
	p.growTicks = p.cfg.GrowTicks
	ctx.emit(EventPowerUp, p.Box.CenterX(), p.Box.CenterY())
}

func (p *Player) shrink() {
	if p.Size != SizeBig {
		return
	}
	p.Size = SizeSmall
	delta := p.cfg.BigHeight - p.cfg.Height
	p.Box.H = p.cfg.Height
	p.Box.Y += delta
}

// GainFirePower lets the player throw fireballs for FireTicks.
func (p *Player) GainFirePower(ctx *Context) {
	p.Fire = true
	p.fireTicks = p.cfg.FireTicks
	ctx.emit(EventPowerUp, p.Box.CenterX(), p.Box.CenterY())
}

// GrantStar replaces any current invulnerability with a star window.
func (p *Player) GrantStar(ticks int) {
	p.Invuln = StarPower(ticks)
}

// GrowTicks returns the remaining big-size time.
func (p *Player) GrowTicks() int { return p.growTicks }

// FireTicks returns the remaining fire-power time.
func (p *Player) FireTicks() int { return p.fireTicks }
