package platformer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const particleGravity = 0.3

// Particle is a short-lived cosmetic dot.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   core.Color
	Size    float64
	Life    int
	MaxLife int
}

// ParticleSystem turns events into particle bursts. It only affects what
// is drawn, never the simulation.
type ParticleSystem struct {
	Particles []Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

func (ps *ParticleSystem) random(lo, hi float64) float64 {
	return ps.rng.Float64()*(hi-lo) + lo
}

func (ps *ParticleSystem) add(x, y, vx, vy float64, c core.Color, size float64, life int) {
	ps.Particles = append(ps.Particles, Particle{
		X: x, Y: y, VX: vx, VY: vy,
		Color: c, Size: size,
		Life: life, MaxLife: life,
	})
}

// Emit spawns the burst for an event. Events without a burst are ignored.
func (ps *ParticleSystem) Emit(e Event) {
	switch e.Kind {
	case EventCoin:
		ps.radial(e.X, e.Y, 8, 2, 5, -2, core.ColorBrightYellow, 3, 30)
	case EventEnemyDefeat:
		for range 12 {
			vx := ps.random(-4, 4)
			vy := ps.random(-6, -2)
			ps.add(e.X, e.Y, vx, vy, core.ColorBrightRed, 2, 40)
		}
	case EventJump:
		for range 5 {
			vx := ps.random(-2, 2)
			vy := ps.random(1, 3)
			ps.add(e.X, e.Y+20, vx, vy, core.ColorBrightWhite, 2, 20)
		}
	case EventPowerUp:
		ps.radial(e.X, e.Y, 15, 3, 6, 0, core.ColorBrightGreen, 4, 50)
	}
}

// radial spreads n particles evenly around a circle.
func (ps *ParticleSystem) radial(x, y float64, n int, minSpeed, maxSpeed, lift float64, c core.Color, size float64, life int) {
	for i := range n {
		angle := float64(i) / float64(n) * 2 * math.Pi
		speed := ps.random(minSpeed, maxSpeed)
		ps.add(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed+lift, c, size, life)
	}
}

// Update moves every particle and ages it by one tick.
func (ps *ParticleSystem) Update() {
	for i := range ps.Particles {
		p := &ps.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life--
	}
}

// Prune drops expired particles.
func (ps *ParticleSystem) Prune() {
	alive := ps.Particles[:0]
	for _, p := range ps.Particles {
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.Particles = alive
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.Particles = ps.Particles[:0]
}
