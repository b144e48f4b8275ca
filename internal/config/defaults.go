package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded platformer configuration.
// It mirrors defaults/platformer.yaml and is the last fallback when the
// embedded file cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      0.5,
			MaxFallSpeed: 15,
			Friction:     0.8,
			FallMargin:   100,
		},
		Player: PlayerConfig{
			Width:            32,
			Height:           32,
			BigHeight:        48,
			Speed:            4,
			JumpPower:        12,
			Lives:            3,
			InvulnTicks:      120,  // 2 seconds at 60fps
			GrowTicks:        1800, // 30 seconds
			FireTicks:        1800,
			StarTicks:        600,
			FireballSpeed:    6,
			FireballSize:     12,
			FireballLife:     90,
			FireballCooldown: 20,
		},
		Enemies: EnemyConfig{
			Width:       24,
			Height:      24,
			Speed:       1,
			Gravity:     0.5,
			StompMargin: 10,
			StompBounce: 8,
		},
		Collectibles: CollectibleConfig{
			Width:          20,
			Height:         20,
			FloatAmplitude: 3,
			FloatSpeed:     0.1,
		},
		Platforms: PlatformConfig{
			DisappearThreshold: 60,
		},
		Scoring: ScoringConfig{
			Coin:              200,
			Mushroom:          1000,
			Star:              1000,
			FireFlower:        1000,
			OneUp:             0,
			Stomp:             100,
			LevelBonusPerLife: 1000,
			SurvivalCycle:     10,
			SurvivalPoints:    1,
		},
		Camera: CameraConfig{
			FollowRate:     0.1,
			LeadFraction:   0.3333,
			ShakeFromLevel: 8,
			ShakeAmplitude: 2,
		},
		Render: RenderConfig{
			CellWidth:  16,
			CellHeight: 32,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 12,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.75,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer", "platformer_endless":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
