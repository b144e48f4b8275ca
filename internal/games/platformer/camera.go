package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Camera is the left edge of the visible part of the level.
type Camera struct {
	X, Y float64
}

// Follow eases the camera toward the player, keeping a lead of
// LeadFraction of the viewport ahead, and clamps it to the level.
func (c *Camera) Follow(playerX, viewportW, levelW float64, cfg config.CameraConfig) {
	target := playerX - viewportW*cfg.LeadFraction
	c.X = core.Lerp(c.X, target, cfg.FollowRate)
	c.X = core.ClampF(c.X, 0, max(0, levelW-viewportW))
	c.Y = 0
}

// Shake returns the horizontal render offset for late levels. It derives
// from the tick counter so replays look the same.
func Shake(tick, tickRate, level int, cfg config.CameraConfig) float64 {
	if cfg.ShakeFromLevel <= 0 || level < cfg.ShakeFromLevel || tickRate <= 0 {
		return 0
	}
	ms := float64(tick) * 1000 / float64(tickRate)
	return math.Sin(ms*0.01) * cfg.ShakeAmplitude
}
