package content

import "fmt"

// Default level geometry shared by built-in and pack levels.
const (
	DefaultLevelHeight = 576
	DefaultSpawnX      = 100
	DefaultSpawnY      = 400
	GoalInset          = 200 // goal sits this far before the right edge
	GroundTile         = 64
)

// LevelSpec is everything the simulation needs to build a level.
type LevelSpec struct {
	Number       int
	Name         string
	Theme        Theme
	Width        float64
	Height       float64
	SpawnX       float64
	SpawnY       float64
	GoalX        float64
	Modifiers    Modifiers
	Platforms    []PlatformSpec
	Enemies      []EnemySpec
	Collectibles []CollectibleSpec
}

// Modifiers are theme-derived physics tweaks.
type Modifiers struct {
	Wind     float64 // horizontal force on an airborne player, px/tick²
	Friction float64 // replaces the default friction factor when non-zero
}

// PlatformSpec is a platform's initial placement.
type PlatformSpec struct {
	X, Y, W, H   float64
	Kind         PlatformKind
	Motion       *MotionSpec
	Disappearing bool
}

// MotionSpec makes a platform oscillate horizontally around its start X.
type MotionSpec struct {
	Range float64
	Speed float64
}

// EnemySpec is an enemy's spawn point.
type EnemySpec struct {
	X, Y float64
	Kind EnemyKind
}

// CollectibleSpec is a pickup's placement.
type CollectibleSpec struct {
	X, Y float64
	Kind CollectibleKind
}

// ValidationError contains details about an invalid level.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks level geometry.
// Checks:
//   - positive level size
//   - spawn and goal inside the level
//   - positive platform sizes and sane motion
func (s LevelSpec) Validate() error {
	if s.Number < 1 {
		return ValidationError{
			Code:    "INVALID_NUMBER",
			Message: fmt.Sprintf("level number must be at least 1, got %d", s.Number),
		}
	}
	if s.Width <= 0 || s.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("level %d has non-positive size %vx%v", s.Number, s.Width, s.Height),
		}
	}
	if s.SpawnX < 0 || s.SpawnX >= s.Width || s.SpawnY >= s.Height {
		return ValidationError{
			Code:    "INVALID_SPAWN",
			Message: fmt.Sprintf("level %d spawn (%v, %v) is outside the level", s.Number, s.SpawnX, s.SpawnY),
		}
	}
	if s.GoalX <= s.SpawnX || s.GoalX > s.Width {
		return ValidationError{
			Code:    "INVALID_GOAL",
			Message: fmt.Sprintf("level %d goal x %v must lie between spawn %v and width %v", s.Number, s.GoalX, s.SpawnX, s.Width),
		}
	}

	for i, p := range s.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return ValidationError{
				Code:    "INVALID_PLATFORM",
				Message: fmt.Sprintf("level %d platform %d has non-positive size %vx%v", s.Number, i, p.W, p.H),
			}
		}
		if p.X < 0 || p.X >= s.Width {
			return ValidationError{
				Code:    "PLATFORM_OUT_OF_BOUNDS",
				Message: fmt.Sprintf("level %d platform %d starts at x %v outside width %v", s.Number, i, p.X, s.Width),
			}
		}
		if p.Motion != nil && (p.Motion.Range <= 0 || p.Motion.Speed <= 0) {
			return ValidationError{
				Code:    "INVALID_MOTION",
				Message: fmt.Sprintf("level %d platform %d needs positive range and speed", s.Number, i),
			}
		}
	}

	return nil
}

// GroundRow returns ground tiles covering the whole level width.
func GroundRow(width, height float64) []PlatformSpec {
	tiles := make([]PlatformSpec, 0, int(width/GroundTile)+1)
	for x := 0.0; x < width; x += GroundTile {
		tiles = append(tiles, PlatformSpec{X: x, Y: height - GroundTile, W: GroundTile, H: GroundTile, Kind: PlatformGround})
	}
	return tiles
}
