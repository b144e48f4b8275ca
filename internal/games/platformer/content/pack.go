package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk shape of a level file.
type yamlLevel struct {
	Number       int            `yaml:"number"`
	Name         string         `yaml:"name"`
	Theme        string         `yaml:"theme"`
	Width        float64        `yaml:"width"`
	Height       float64        `yaml:"height,omitempty"`
	Spawn        *yamlPoint     `yaml:"spawn,omitempty"`
	GoalX        float64        `yaml:"goal_x,omitempty"`
	Ground       *bool          `yaml:"ground,omitempty"` // default true
	Wind         *float64       `yaml:"wind,omitempty"`
	Friction     *float64       `yaml:"friction,omitempty"`
	Platforms    []yamlPlatform `yaml:"platforms"`
	Enemies      []yamlEntity   `yaml:"enemies"`
	Collectibles []yamlEntity   `yaml:"collectibles"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlPlatform struct {
	X            float64     `yaml:"x"`
	Y            float64     `yaml:"y"`
	W            float64     `yaml:"w"`
	H            float64     `yaml:"h"`
	Kind         string      `yaml:"kind"`
	Moving       *yamlMotion `yaml:"moving,omitempty"`
	Disappearing bool        `yaml:"disappearing,omitempty"`
}

type yamlMotion struct {
	Range float64 `yaml:"range"`
	Speed float64 `yaml:"speed"`
}

type yamlEntity struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}

// ParseLevel decodes and validates a YAML level file. Unknown kind strings
// are reported with their position in the file.
func ParseLevel(data []byte) (LevelSpec, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return LevelSpec{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	spec := LevelSpec{
		Number: yl.Number,
		Name:   yl.Name,
		Width:  yl.Width,
		Height: yl.Height,
		SpawnX: DefaultSpawnX,
		SpawnY: DefaultSpawnY,
		GoalX:  yl.GoalX,
	}
	if spec.Height == 0 {
		spec.Height = DefaultLevelHeight
	}
	if yl.Spawn != nil {
		spec.SpawnX, spec.SpawnY = yl.Spawn.X, yl.Spawn.Y
	}
	if spec.GoalX == 0 {
		spec.GoalX = spec.Width - GoalInset
	}

	if yl.Theme == "" {
		spec.Theme = ThemeForLevel(yl.Number)
	} else {
		theme, err := ParseTheme(yl.Theme)
		if err != nil {
			return LevelSpec{}, err
		}
		spec.Theme = theme
	}
	spec.Modifiers = spec.Theme.Modifiers()
	if yl.Wind != nil {
		spec.Modifiers.Wind = *yl.Wind
	}
	if yl.Friction != nil {
		spec.Modifiers.Friction = *yl.Friction
	}

	if yl.Ground == nil || *yl.Ground {
		spec.Platforms = GroundRow(spec.Width, spec.Height)
	}
	for i, p := range yl.Platforms {
		kind, err := ParsePlatformKind(p.Kind)
		if err != nil {
			return LevelSpec{}, fmt.Errorf("platforms[%d]: %w", i, err)
		}
		ps := PlatformSpec{X: p.X, Y: p.Y, W: p.W, H: p.H, Kind: kind, Disappearing: p.Disappearing}
		if p.Moving != nil {
			ps.Motion = &MotionSpec{Range: p.Moving.Range, Speed: p.Moving.Speed}
		}
		spec.Platforms = append(spec.Platforms, ps)
	}

	for i, e := range yl.Enemies {
		kind, err := ParseEnemyKind(e.Kind)
		if err != nil {
			return LevelSpec{}, fmt.Errorf("enemies[%d]: %w", i, err)
		}
		spec.Enemies = append(spec.Enemies, EnemySpec{X: e.X, Y: e.Y, Kind: kind})
	}

	for i, c := range yl.Collectibles {
		kind, err := ParseCollectibleKind(c.Kind)
		if err != nil {
			return LevelSpec{}, fmt.Errorf("collectibles[%d]: %w", i, err)
		}
		spec.Collectibles = append(spec.Collectibles, CollectibleSpec{X: c.X, Y: c.Y, Kind: kind})
	}

	if err := spec.Validate(); err != nil {
		return LevelSpec{}, err
	}
	return spec, nil
}

// LoadFile reads a single level file.
func LoadFile(path string) (LevelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	spec, err := ParseLevel(data)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return spec, nil
}

// LoadDir loads every .yaml/.yml file under dir. Any invalid file fails the
// whole load so broken content is noticed before play starts.
func LoadDir(dir string) (map[int]LevelSpec, error) {
	levels := make(map[int]LevelSpec)
	files := make(map[int]string)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}

		spec, err := LoadFile(path)
		if err != nil {
			return err
		}
		if prev, dup := files[spec.Number]; dup {
			return fmt.Errorf("level %d defined twice: %s and %s", spec.Number, prev, path)
		}
		files[spec.Number] = path
		levels[spec.Number] = spec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: loading %s: %w", dir, err)
	}
	return levels, nil
}

// IsLevelFile reports whether the path has a level file extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Pack serves levels loaded from a directory. It is safe for concurrent use;
// Reload swaps the level set while a session keeps reading it.
type Pack struct {
	dir    string
	mu     sync.RWMutex
	levels map[int]LevelSpec
}

// OpenPack loads a level pack directory.
func OpenPack(dir string) (*Pack, error) {
	p := &Pack{dir: dir}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Dir returns the pack directory.
func (p *Pack) Dir() string {
	return p.dir
}

// Reload re-reads the directory. On error the previous levels stay active.
func (p *Pack) Reload() error {
	levels, err := LoadDir(p.dir)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.levels = levels
	p.mu.Unlock()
	return nil
}

// Level returns level n or an error wrapping ErrLevelNotFound.
func (p *Pack) Level(n int) (LevelSpec, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	spec, ok := p.levels[n]
	if !ok {
		return LevelSpec{}, fmt.Errorf("content: pack %s has no level %d: %w", p.dir, n, ErrLevelNotFound)
	}
	return spec, nil
}

// Numbers returns the level numbers in the pack in ascending order.
func (p *Pack) Numbers() []int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	nums := make([]int, 0, len(p.levels))
	for n := range p.levels {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// AsKindError extracts a KindError from err, if any.
func AsKindError(err error) (KindError, bool) {
	var ke KindError
	ok := errors.As(err, &ke)
	return ke, ok
}
