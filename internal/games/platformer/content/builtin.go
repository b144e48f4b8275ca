package content

import (
	"fmt"
	"math/rand"
)

// Builtin generates levels from the authored tables (1-8) and seeded
// random layouts beyond them. The same seed always yields the same level.
type Builtin struct {
	seed   int64
	offset int // stage = requested number + offset
}

// NewBuiltin creates the campaign provider.
func NewBuiltin(seed int64) *Builtin {
	return &Builtin{seed: seed}
}

// NewEndless creates a provider that starts straight in random layouts.
// Level 1 is generated as the first stage past the authored tables.
func NewEndless(seed int64) *Builtin {
	return &Builtin{seed: seed, offset: HandLevelCount}
}

// Level returns level n.
func (b *Builtin) Level(n int) (LevelSpec, error) {
	if n < 1 {
		return LevelSpec{}, fmt.Errorf("content: level number must be at least 1, got %d", n)
	}
	stage := n + b.offset
	rng := rand.New(rand.NewSource(b.seed*1_000_003 + int64(stage)))
	spec := Generate(stage, rng)
	spec.Number = n
	return spec, nil
}

// Generate builds the layout for a stage. Random draws happen in a fixed
// order (layout, challenges, enemies, collectibles) so a seeded rng gives
// a reproducible level.
func Generate(stage int, rng *rand.Rand) LevelSpec {
	if stage < 1 {
		stage = 1
	}
	g := generator{rng: rng, stage: stage}
	theme := ThemeForLevel(stage)
	width := float64(3200 + stage*400)
	height := float64(DefaultLevelHeight)

	spec := LevelSpec{
		Number:    stage,
		Name:      fmt.Sprintf("World %d", stage),
		Theme:     theme,
		Width:     width,
		Height:    height,
		SpawnX:    DefaultSpawnX,
		SpawnY:    DefaultSpawnY,
		GoalX:     width - GoalInset,
		Modifiers: theme.Modifiers(),
	}

	platforms := GroundRow(width, height)
	if stage <= HandLevelCount {
		for _, s := range handLevels[stage-1] {
			platforms = append(platforms, PlatformSpec{X: s.x, Y: s.y, W: s.w, H: s.h, Kind: s.kind})
		}
	} else {
		platforms = g.randomLayout(platforms, width)
	}
	spec.Platforms = g.challenges(platforms, width)
	spec.Enemies = g.enemies(theme, width, height)
	spec.Collectibles = g.collectibles(width)
	return spec
}

type generator struct {
	rng   *rand.Rand
	stage int
}

// random returns a float in [lo, hi).
func (g generator) random(lo, hi float64) float64 {
	return g.rng.Float64()*(hi-lo) + lo
}

// randomInt returns an int in [lo, hi].
func (g generator) randomInt(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g generator) randomLayout(platforms []PlatformSpec, width float64) []PlatformSpec {
	count := 20 + (g.stage-8)*3
	difficulty := min(g.stage-8, 10)
	kinds := []PlatformKind{PlatformBrick, PlatformCloud, PlatformPipe}

	for i := range count {
		w := float64(g.randomInt(64, 160))
		hi := width - 200 - w
		lo := min(200+float64(i)*150, hi) // late stages run out of room
		p := PlatformSpec{
			X: g.random(lo, hi),
			Y: g.random(100-float64(difficulty)*5, 450-float64(difficulty)*10),
			W: w,
			H: 32,
		}
		p.Kind = kinds[g.randomInt(0, len(kinds)-1)]

		if difficulty > 3 && g.random(0, 1) > 0.8 {
			speed := g.random(0.5, 2)
			p.Motion = &MotionSpec{Speed: speed, Range: g.random(100, 300)}
		}
		if difficulty > 5 && g.random(0, 1) > 0.9 {
			p.Disappearing = true
		}
		platforms = append(platforms, p)
	}

	return g.gaps(platforms, width, difficulty)
}

// gaps cuts holes into the layout, ground included, and puts a ledge on
// either side of each one.
func (g generator) gaps(platforms []PlatformSpec, width float64, difficulty int) []PlatformSpec {
	for range min(difficulty, 5) {
		start := g.random(800, width-800)
		gap := g.random(150+float64(difficulty)*10, 250+float64(difficulty)*15)

		kept := platforms[:0]
		for _, p := range platforms {
			if p.X >= start && p.X <= start+gap {
				continue
			}
			kept = append(kept, p)
		}
		platforms = kept

		platforms = append(platforms,
			PlatformSpec{X: start - 96, Y: g.random(300, 400), W: 96, H: 32, Kind: PlatformBrick},
			PlatformSpec{X: start + gap, Y: g.random(300, 400), W: 96, H: 32, Kind: PlatformBrick},
		)
	}
	return platforms
}

// challenges adds moving clouds from stage 5 and turns some clouds into
// vanishing ones from stage 7.
func (g generator) challenges(platforms []PlatformSpec, width float64) []PlatformSpec {
	if g.stage >= 5 {
		for range min(3, g.stage/2) {
			x := g.random(500, width-500)
			y := g.random(200, 400)
			platforms = append(platforms, PlatformSpec{
				X: x, Y: y, W: 96, H: 32,
				Kind:   PlatformCloud,
				Motion: &MotionSpec{Speed: 1, Range: 200},
			})
		}
	}
	if g.stage >= 7 {
		for i := range platforms {
			if platforms[i].Kind == PlatformCloud && g.random(0, 1) > 0.7 {
				platforms[i].Disappearing = true
			}
		}
	}
	return platforms
}

func (g generator) enemies(theme Theme, width, height float64) []EnemySpec {
	count := min(8+g.stage*2, 25) + (g.stage/3)*2
	enemies := make([]EnemySpec, 0, count)

	for range count {
		x := g.random(400, width-400)
		kind := EnemyGoomba
		if g.stage >= 3 && g.stage < 5 && g.random(0, 1) > 0.6 {
			kind = EnemyKoopa
		}
		if g.stage >= 5 {
			r := g.random(0, 1)
			switch {
			case r > 0.8:
				kind = EnemySpiny
			case r > 0.5:
				kind = EnemyKoopa
			}
		}
		enemies = append(enemies, EnemySpec{X: x, Y: height - 120, Kind: kind})
	}

	if theme == ThemeSky && g.stage >= 6 {
		for range g.stage / 2 {
			x := g.random(500, width-500)
			y := g.random(100, 300)
			enemies = append(enemies, EnemySpec{X: x, Y: y, Kind: EnemyParatroopa})
		}
	}
	return enemies
}

func (g generator) collectibles(width float64) []CollectibleSpec {
	var items []CollectibleSpec

	for range 25 + g.stage*6 {
		x := g.random(200, width-200)
		y := g.random(100, 400)
		items = append(items, CollectibleSpec{X: x, Y: y, Kind: CollectibleCoin})
	}

	for range max(2, g.stage/2+1) {
		x := g.random(500, width-500)
		y := g.random(200, 350)
		kind := CollectibleMushroom
		if g.stage >= 4 {
			r := g.random(0, 1)
			switch {
			case r > 0.7:
				kind = CollectibleStar
			case r > 0.4:
				kind = CollectibleFireFlower
			}
		}
		items = append(items, CollectibleSpec{X: x, Y: y, Kind: kind})
	}

	if g.stage >= 5 {
		for range g.stage / 3 {
			x := g.random(1000, width-1000)
			y := g.random(150, 250)
			items = append(items, CollectibleSpec{X: x, Y: y, Kind: CollectibleOneUp})
		}
	}
	return items
}
