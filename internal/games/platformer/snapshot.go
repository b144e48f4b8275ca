package platformer

// snapScale keeps two decimals of world coordinates in snapshot ints.
const snapScale = 100

func fix(v float64) int {
	return int(v * snapScale)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Snapshot contains the simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Score int
	Coins int
	Lives int
	Level int
	State string
	Mode  int // 0=Campaign, 1=Endless

	// Player position and velocity in hundredths of a pixel
	PlayerX     int
	PlayerY     int
	PlayerVX    int
	PlayerVY    int
	OnGround    bool
	Size        int
	Fire        bool
	InvulnKind  int
	InvulnTicks int

	// Each enemy is 5 ints: Kind, X, Y, VX, Alive
	EnemyCount int
	EnemyData  []int

	// Each collectible is 3 ints: Kind, X, Y
	CollectibleCount int
	CollectibleData  []int

	// Each platform is 3 ints: X, Visible, PlayerOn
	PlatformData []int

	// Each fireball is 3 ints: X, Y, Life
	FireballCount int
	FireballData  []int

	ParticleCount int
	CameraX       int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Level: g.levelNum,
		State: g.state,
		Mode:  int(g.mode),
	}
	if g.ctx != nil {
		snap.Score = g.ctx.Tally.Score
		snap.Coins = g.ctx.Tally.Coins
	}

	if p := g.player; p != nil {
		snap.Lives = p.Lives
		snap.PlayerX = fix(p.Box.X)
		snap.PlayerY = fix(p.Box.Y)
		snap.PlayerVX = fix(p.VX)
		snap.PlayerVY = fix(p.VY)
		snap.OnGround = p.OnGround
		snap.Size = int(p.Size)
		snap.Fire = p.Fire
		snap.InvulnKind = int(p.Invuln.Kind)
		snap.InvulnTicks = p.Invuln.Ticks
	}

	snap.EnemyCount = len(g.enemies)
	snap.EnemyData = make([]int, 0, len(g.enemies)*5)
	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData, int(e.Kind), fix(e.Box.X), fix(e.Box.Y), fix(e.VX), flag(e.Alive))
	}

	snap.CollectibleCount = len(g.collectibles)
	snap.CollectibleData = make([]int, 0, len(g.collectibles)*3)
	for _, c := range g.collectibles {
		snap.CollectibleData = append(snap.CollectibleData, int(c.Kind), fix(c.Box.X), fix(c.Box.Y))
	}

	if g.level != nil {
		snap.PlatformData = make([]int, 0, len(g.level.Platforms)*3)
		for _, p := range g.level.Platforms {
			snap.PlatformData = append(snap.PlatformData, fix(p.Box.X), flag(p.Visible), flag(p.PlayerOn))
		}
		snap.CameraX = fix(g.level.Camera.X)
	}

	snap.FireballCount = len(g.fireballs)
	snap.FireballData = make([]int, 0, len(g.fireballs)*3)
	for _, f := range g.fireballs {
		snap.FireballData = append(snap.FireballData, fix(f.Box.X), fix(f.Box.Y), f.Life)
	}

	if g.particles != nil {
		snap.ParticleCount = len(g.particles.Particles)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(flag(snap.OnGround))   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Size)             //#nosec G115 -- hash computation
	h = h*31 + uint64(flag(snap.Fire))       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InvulnKind)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InvulnTicks)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CollectibleCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireballCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CameraX)          //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.CollectibleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PlatformData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.FireballData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
