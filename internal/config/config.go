// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all tunables for the platformer simulation.
// Distances are world pixels, durations are ticks.
type PlatformerConfig struct {
	Physics      PhysicsConfig     `yaml:"physics"`
	Player       PlayerConfig      `yaml:"player"`
	Enemies      EnemyConfig       `yaml:"enemies"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Platforms    PlatformConfig    `yaml:"platforms"`
	Scoring      ScoringConfig     `yaml:"scoring"`
	Camera       CameraConfig      `yaml:"camera"`
	Render       RenderConfig      `yaml:"render"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
}

// PhysicsConfig defines world-wide physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	Friction     float64 `yaml:"friction"`    // Horizontal velocity multiplier with no input
	FallMargin   float64 `yaml:"fall_margin"` // Distance below the level before a body counts as fallen out
}

// PlayerConfig defines the player's body, movement and power-up timers.
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BigHeight        float64 `yaml:"big_height"`
	Speed            float64 `yaml:"speed"`
	JumpPower        float64 `yaml:"jump_power"`
	Lives            int     `yaml:"lives"`
	InvulnTicks      int     `yaml:"invuln_ticks"` // Grace period after taking damage
	GrowTicks        int     `yaml:"grow_ticks"`
	FireTicks        int     `yaml:"fire_ticks"`
	StarTicks        int     `yaml:"star_ticks"`
	FireballSpeed    float64 `yaml:"fireball_speed"`
	FireballSize     float64 `yaml:"fireball_size"`
	FireballLife     int     `yaml:"fireball_life"`
	FireballCooldown int     `yaml:"fireball_cooldown"`
}

// EnemyConfig defines enemy bodies and the stomp interaction.
type EnemyConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	Gravity     float64 `yaml:"gravity"`
	StompMargin float64 `yaml:"stomp_margin"`
	StompBounce float64 `yaml:"stomp_bounce"`
}

// CollectibleConfig defines item size and float animation.
type CollectibleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FloatAmplitude float64 `yaml:"float_amplitude"`
	FloatSpeed     float64 `yaml:"float_speed"`
}

// PlatformConfig defines dynamic platform behavior.
type PlatformConfig struct {
	DisappearThreshold int `yaml:"disappear_threshold"` // Ticks of standing before a platform vanishes
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Coin              int `yaml:"coin"`
	Mushroom          int `yaml:"mushroom"`
	Star              int `yaml:"star"`
	FireFlower        int `yaml:"fire_flower"`
	OneUp             int `yaml:"one_up"`
	Stomp             int `yaml:"stomp"`
	LevelBonusPerLife int `yaml:"level_bonus_per_life"`
	SurvivalCycle     int `yaml:"survival_cycle"`  // Seconds per bonus cycle
	SurvivalPoints    int `yaml:"survival_points"` // Points per tick in the first second of each cycle
}

// CameraConfig defines how the viewport follows the player.
type CameraConfig struct {
	FollowRate     float64 `yaml:"follow_rate"`
	LeadFraction   float64 `yaml:"lead_fraction"` // Player sits this far into the viewport
	ShakeFromLevel int     `yaml:"shake_from_level"`
	ShakeAmplitude float64 `yaml:"shake_amplitude"`
}

// RenderConfig maps world pixels onto terminal cells.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Stage/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy patrol speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI string into a preset.
// Unknown or empty strings yield the empty preset (config defaults).
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
