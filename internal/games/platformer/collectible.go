package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
)

// Collectible is a floating pickup.
type Collectible struct {
	Box       core.Box
	Kind      content.CollectibleKind
	Collected bool

	baseY float64
	phase float64

	AnimFrame int
	animTimer int
}

// NewCollectible places a pickup; it bobs around its initial Y.
func NewCollectible(spec content.CollectibleSpec, cfg config.CollectibleConfig) *Collectible {
	return &Collectible{
		Box:   core.Box{X: spec.X, Y: spec.Y, W: cfg.Width, H: cfg.Height},
		Kind:  spec.Kind,
		baseY: spec.Y,
	}
}

// Update advances the float animation.
func (c *Collectible) Update(cfg config.CollectibleConfig) {
	if c.Collected {
		return
	}
	c.animTimer++
	if c.animTimer > 15 {
		c.AnimFrame = (c.AnimFrame + 1) % 4
		c.animTimer = 0
	}
	c.phase += cfg.FloatSpeed
	c.Box.Y = c.baseY + math.Sin(c.phase)*cfg.FloatAmplitude
}

// CheckPlayer collects the pickup when the player touches it.
func (c *Collectible) CheckPlayer(p *Player, cfg *config.PlatformerConfig, ctx *Context) bool {
	if c.Collected || !c.Box.Overlaps(p.Box) {
		return false
	}
	c.Collected = true
	c.apply(p, cfg, ctx)
	return true
}

func (c *Collectible) apply(p *Player, cfg *config.PlatformerConfig, ctx *Context) {
	score := cfg.Scoring
	switch c.Kind {
	case content.CollectibleCoin:
		ctx.Tally.Coins++
		ctx.addScore(score.Coin)
		ctx.emit(EventCoin, c.Box.CenterX(), c.Box.CenterY())
	case content.CollectibleMushroom:
		p.Grow(ctx)
		ctx.addScore(score.Mushroom)
	case content.CollectibleStar:
		p.GrantStar(cfg.Player.StarTicks)
		ctx.addScore(score.Star)
		ctx.emit(EventPowerUp, p.Box.CenterX(), p.Box.CenterY())
	case content.CollectibleFireFlower:
		p.GainFirePower(ctx)
		ctx.addScore(score.FireFlower)
	case content.CollectibleOneUp:
		p.Lives++
		ctx.addScore(score.OneUp)
		ctx.emit(EventPowerUp, p.Box.CenterX(), p.Box.CenterY())
	}
}
