package config

import "fmt"

// Validate rejects configurations the simulation cannot run with.
func Validate(cfg PlatformerConfig) error {
	positives := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", cfg.Physics.Gravity},
		{"physics.max_fall_speed", cfg.Physics.MaxFallSpeed},
		{"player.width", cfg.Player.Width},
		{"player.height", cfg.Player.Height},
		{"player.speed", cfg.Player.Speed},
		{"player.jump_power", cfg.Player.JumpPower},
		{"player.lives", float64(cfg.Player.Lives)},
		{"enemies.width", cfg.Enemies.Width},
		{"enemies.height", cfg.Enemies.Height},
		{"collectibles.width", cfg.Collectibles.Width},
		{"collectibles.height", cfg.Collectibles.Height},
		{"render.cell_width", float64(cfg.Render.CellWidth)},
		{"render.cell_height", float64(cfg.Render.CellHeight)},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.value)
		}
	}

	if cfg.Player.BigHeight < cfg.Player.Height {
		return fmt.Errorf("config: player.big_height (%v) must be at least player.height (%v)",
			cfg.Player.BigHeight, cfg.Player.Height)
	}
	if cfg.Physics.Friction < 0 || cfg.Physics.Friction > 1 {
		return fmt.Errorf("config: physics.friction must be within [0, 1], got %v", cfg.Physics.Friction)
	}
	if cfg.Camera.FollowRate <= 0 || cfg.Camera.FollowRate > 1 {
		return fmt.Errorf("config: camera.follow_rate must be within (0, 1], got %v", cfg.Camera.FollowRate)
	}

	switch cfg.Difficulty.Progression.Type {
	case "stage", "score", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", cfg.Difficulty.Progression.Type)
	}

	return nil
}
