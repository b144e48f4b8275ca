package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
)

// Motion moves a platform back and forth around StartX.
type Motion struct {
	StartX float64
	Range  float64
	Speed  float64
	Dir    float64
}

// Vanish makes a platform disappear after it was stood on long enough.
type Vanish struct {
	Timer     int
	Threshold int
}

// Platform is solid ground the player and enemies collide with.
type Platform struct {
	Box      core.Box
	Kind     content.PlatformKind
	Motion   *Motion
	Vanish   *Vanish
	Visible  bool
	PlayerOn bool // set by the player's collision pass
}

// Update advances motion and the vanish timer.
func (p *Platform) Update() {
	if m := p.Motion; m != nil {
		p.Box.X += m.Speed * m.Dir
		hi, lo := m.StartX+m.Range, m.StartX-m.Range
		switch {
		case p.Box.X >= hi:
			p.Box.X = hi
			m.Dir = -1
		case p.Box.X <= lo:
			p.Box.X = lo
			m.Dir = 1
		}
	}

	if v := p.Vanish; v != nil && p.PlayerOn && p.Visible {
		v.Timer++
		if v.Timer > v.Threshold {
			p.Visible = false
		}
	}
}

// Solid reports whether movers collide with the platform.
func (p *Platform) Solid() bool {
	return p.Visible
}

// Level is the live state of one level.
type Level struct {
	Number    int
	Name      string
	Theme     content.Theme
	Width     float64
	Height    float64
	SpawnX    float64
	SpawnY    float64
	GoalX     float64
	Modifiers content.Modifiers
	Platforms []*Platform
	Camera    Camera
}

// NewLevel builds a level from its spec.
func NewLevel(spec content.LevelSpec, cfg config.PlatformConfig) *Level {
	l := &Level{
		Number:    spec.Number,
		Name:      spec.Name,
		Theme:     spec.Theme,
		Width:     spec.Width,
		Height:    spec.Height,
		SpawnX:    spec.SpawnX,
		SpawnY:    spec.SpawnY,
		GoalX:     spec.GoalX,
		Modifiers: spec.Modifiers,
		Platforms: make([]*Platform, 0, len(spec.Platforms)),
	}

	for _, ps := range spec.Platforms {
		p := &Platform{
			Box:     core.Box{X: ps.X, Y: ps.Y, W: ps.W, H: ps.H},
			Kind:    ps.Kind,
			Visible: true,
		}
		if ps.Motion != nil {
			p.Motion = &Motion{StartX: ps.X, Range: ps.Motion.Range, Speed: ps.Motion.Speed, Dir: 1}
		}
		if ps.Disappearing {
			p.Vanish = &Vanish{Threshold: cfg.DisappearThreshold}
		}
		l.Platforms = append(l.Platforms, p)
	}
	return l
}

// Update advances all dynamic platforms.
func (l *Level) Update() {
	for _, p := range l.Platforms {
		p.Update()
	}
}

// AtGoal reports whether the player has reached the goal line.
func (l *Level) AtGoal(p *Player) bool {
	return p.Box.X >= l.GoalX
}
