// Package content describes platformer levels as plain data and provides
// the sources they come from: built-in tables, seeded random layouts and
// YAML level packs. The simulation treats a LevelSpec as pure input.
package content

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KindError reports an entity type string that no kind matches.
type KindError struct {
	Category string // "enemy", "collectible", "platform" or "theme"
	Value    string
}

func (e KindError) Error() string {
	return fmt.Sprintf("unknown %s kind %q", e.Category, e.Value)
}

// EnemyKind identifies an enemy variant.
type EnemyKind uint8

const (
	EnemyGoomba EnemyKind = iota
	EnemyKoopa
	EnemySpiny
	EnemyParatroopa
)

// EnemyTraits is the per-kind capability table.
type EnemyTraits struct {
	Glyph  rune
	Color  core.Color
	Flying bool // flying kinds ignore gravity
}

var enemyTraits = [...]EnemyTraits{
	EnemyGoomba:     {Glyph: '●', Color: core.ColorOrange},
	EnemyKoopa:      {Glyph: '◘', Color: core.ColorGreen},
	EnemySpiny:      {Glyph: '▲', Color: core.ColorBrightRed},
	EnemyParatroopa: {Glyph: '◊', Color: core.ColorBrightCyan, Flying: true},
}

// Traits returns the capability table entry for the kind.
func (k EnemyKind) Traits() EnemyTraits {
	if int(k) < len(enemyTraits) {
		return enemyTraits[k]
	}
	return EnemyTraits{Glyph: '?', Color: core.ColorDefault}
}

func (k EnemyKind) String() string {
	switch k {
	case EnemyGoomba:
		return "goomba"
	case EnemyKoopa:
		return "koopa"
	case EnemySpiny:
		return "spiny"
	case EnemyParatroopa:
		return "paratroopa"
	default:
		return "unknown"
	}
}

// ParseEnemyKind converts a type string to an EnemyKind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "goomba":
		return EnemyGoomba, nil
	case "koopa":
		return EnemyKoopa, nil
	case "spiny":
		return EnemySpiny, nil
	case "paratroopa":
		return EnemyParatroopa, nil
	default:
		return EnemyGoomba, KindError{Category: "enemy", Value: s}
	}
}

// CollectibleKind identifies a pickup.
type CollectibleKind uint8

const (
	CollectibleCoin CollectibleKind = iota
	CollectibleMushroom
	CollectibleStar
	CollectibleFireFlower
	CollectibleOneUp
)

// CollectibleTraits holds how a pickup is drawn.
type CollectibleTraits struct {
	Glyph rune
	Color core.Color
}

var collectibleTraits = [...]CollectibleTraits{
	CollectibleCoin:       {Glyph: 'o', Color: core.ColorBrightYellow},
	CollectibleMushroom:   {Glyph: '♠', Color: core.ColorRed},
	CollectibleStar:       {Glyph: '★', Color: core.ColorYellow},
	CollectibleFireFlower: {Glyph: '✿', Color: core.ColorOrange},
	CollectibleOneUp:      {Glyph: '♥', Color: core.ColorBrightGreen},
}

// Traits returns the drawing table entry for the kind.
func (k CollectibleKind) Traits() CollectibleTraits {
	if int(k) < len(collectibleTraits) {
		return collectibleTraits[k]
	}
	return CollectibleTraits{Glyph: '?', Color: core.ColorDefault}
}

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectibleMushroom:
		return "mushroom"
	case CollectibleStar:
		return "star"
	case CollectibleFireFlower:
		return "fireflower"
	case CollectibleOneUp:
		return "1up"
	default:
		return "unknown"
	}
}

// ParseCollectibleKind converts a type string to a CollectibleKind.
func ParseCollectibleKind(s string) (CollectibleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coin":
		return CollectibleCoin, nil
	case "mushroom":
		return CollectibleMushroom, nil
	case "star":
		return CollectibleStar, nil
	case "fireflower", "fire_flower":
		return CollectibleFireFlower, nil
	case "1up", "oneup":
		return CollectibleOneUp, nil
	default:
		return CollectibleCoin, KindError{Category: "collectible", Value: s}
	}
}

// PlatformKind identifies a platform's material. It only affects drawing.
type PlatformKind uint8

const (
	PlatformGround PlatformKind = iota
	PlatformBrick
	PlatformPipe
	PlatformCloud
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformBrick:
		return "brick"
	case PlatformPipe:
		return "pipe"
	case PlatformCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// ParsePlatformKind converts a type string to a PlatformKind.
func ParsePlatformKind(s string) (PlatformKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ground":
		return PlatformGround, nil
	case "brick":
		return PlatformBrick, nil
	case "pipe":
		return PlatformPipe, nil
	case "cloud":
		return PlatformCloud, nil
	default:
		return PlatformGround, KindError{Category: "platform", Value: s}
	}
}

// Theme is the visual world a level belongs to. Sky and ice carry modifiers.
type Theme uint8

const (
	ThemeGrassland Theme = iota
	ThemeUnderground
	ThemeCastle
	ThemeSky
	ThemeDesert
	ThemeIce
	ThemeVolcano
	ThemeSpace
	themeCount
)

// ThemeForLevel cycles through the themes by level number (1-based).
func ThemeForLevel(n int) Theme {
	if n < 1 {
		n = 1
	}
	return Theme((n - 1) % int(themeCount))
}

// Modifiers returns the physics modifiers the theme implies.
func (t Theme) Modifiers() Modifiers {
	switch t {
	case ThemeSky:
		return Modifiers{Wind: 0.2}
	case ThemeIce:
		return Modifiers{Friction: 0.95}
	default:
		return Modifiers{}
	}
}

func (t Theme) String() string {
	switch t {
	case ThemeGrassland:
		return "grassland"
	case ThemeUnderground:
		return "underground"
	case ThemeCastle:
		return "castle"
	case ThemeSky:
		return "sky"
	case ThemeDesert:
		return "desert"
	case ThemeIce:
		return "ice"
	case ThemeVolcano:
		return "volcano"
	case ThemeSpace:
		return "space"
	default:
		return "unknown"
	}
}

// ParseTheme converts a theme name to a Theme.
func ParseTheme(s string) (Theme, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t := range themeCount {
		if t.String() == name {
			return t, nil
		}
	}
	return ThemeGrassland, KindError{Category: "theme", Value: s}
}
