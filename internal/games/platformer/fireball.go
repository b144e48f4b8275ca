package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Fireball flies straight ahead until it hits something or burns out.
type Fireball struct {
	Box   core.Box
	VX    float64
	Life  int
	Alive bool
}

// NewFireball launches a fireball from the player's leading edge.
func NewFireball(p *Player, cfg config.PlayerConfig) *Fireball {
	size := cfg.FireballSize
	x := p.Box.Right()
	if p.Direction < 0 {
		x = p.Box.X - size
	}
	return &Fireball{
		Box:   core.Box{X: x, Y: p.Box.CenterY() - size/2, W: size, H: size},
		VX:    float64(p.Direction) * cfg.FireballSpeed,
		Life:  cfg.FireballLife,
		Alive: true,
	}
}

// Update moves the fireball and burns down its life.
func (f *Fireball) Update() {
	if !f.Alive {
		return
	}
	f.Box.X += f.VX
	f.Life--
	if f.Life <= 0 {
		f.Alive = false
	}
}

// HitPlatform kills the fireball when it touches a solid platform.
func (f *Fireball) HitPlatform(p *Platform) bool {
	if !f.Alive || !p.Solid() || !f.Box.Overlaps(p.Box) {
		return false
	}
	f.Alive = false
	return true
}

// HitEnemy defeats an overlapping enemy and consumes the fireball.
func (f *Fireball) HitEnemy(e *Enemy, points int, ctx *Context) bool {
	if !f.Alive || !e.Alive || !f.Box.Overlaps(e.Box) {
		return false
	}
	f.Alive = false
	e.Defeat(points, ctx)
	return true
}
