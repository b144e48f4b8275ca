package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var ground = core.Box{X: 0, Y: 512, W: 800, H: 64}

func TestOverlapSymmetric(t *testing.T) {
	boxes := []core.Box{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 5, Y: 5, W: 10, H: 10},
		{X: 10, Y: 0, W: 10, H: 10}, // touching edge
		{X: -3, Y: 8, W: 4, H: 40},
		{X: 100, Y: 100, W: 1, H: 1},
	}
	for _, a := range boxes {
		for _, b := range boxes {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Errorf("Overlaps not symmetric for %+v and %+v", a, b)
			}
		}
	}
	if boxes[0].Overlaps(boxes[2]) {
		t.Error("touching edges should not overlap")
	}
}

func TestResolveSides(t *testing.T) {
	tests := []struct {
		name     string
		body     Body
		wall     WallResponse
		wantSide Side
		wantBox  core.Box
		wantVX   float64
		wantVY   float64
		wantDir  int
		grounded bool
	}{
		{
			name:     "landing on top",
			body:     Body{Box: core.Box{X: 100, Y: 482, W: 32, H: 32}, VY: 3, Direction: 1},
			wantSide: SideTop,
			wantBox:  core.Box{X: 100, Y: 480, W: 32, H: 32},
			wantDir:  1,
			grounded: true,
		},
		{
			name:     "head bump from below",
			body:     Body{Box: core.Box{X: 100, Y: 574, W: 32, H: 32}, VY: -5, Ceiling: true, Direction: 1},
			wantSide: SideBottom,
			wantBox:  core.Box{X: 100, Y: 576, W: 32, H: 32},
			wantDir:  1,
		},
		{
			name:     "player stops at left face",
			body:     Body{Box: core.Box{X: -30, Y: 530, W: 32, H: 32}, VX: 4, Direction: 1},
			wall:     WallStop,
			wantSide: SideLeft,
			wantBox:  core.Box{X: -32, Y: 530, W: 32, H: 32},
			wantDir:  1,
		},
		{
			name:     "enemy reverses at right face",
			body:     Body{Box: core.Box{X: 798, Y: 530, W: 24, H: 24}, VX: -1, Direction: -1},
			wall:     WallReverse,
			wantSide: SideRight,
			wantBox:  core.Box{X: 800, Y: 530, W: 24, H: 24},
			wantVX:   1,
			wantDir:  1,
		},
		{
			name:     "enemy reverses at left face",
			body:     Body{Box: core.Box{X: -22, Y: 530, W: 24, H: 24}, VX: 1, Direction: 1},
			wall:     WallReverse,
			wantSide: SideLeft,
			wantBox:  core.Box{X: -24, Y: 530, W: 24, H: 24},
			wantVX:   -1,
			wantDir:  -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			c := Resolve(&b, ground, tc.wall)
			if c.Side != tc.wantSide || !c.Applied {
				t.Fatalf("contact = %+v, expected applied %v", c, tc.wantSide)
			}
			if b.Box != tc.wantBox {
				t.Errorf("box = %+v, expected %+v", b.Box, tc.wantBox)
			}
			if b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
			if b.Direction != tc.wantDir {
				t.Errorf("direction = %d, expected %d", b.Direction, tc.wantDir)
			}
			if b.OnGround != tc.grounded {
				t.Errorf("OnGround = %v, expected %v", b.OnGround, tc.grounded)
			}
		})
	}
}

func TestResolveLandingExact(t *testing.T) {
	b := Body{Box: core.Box{X: 100, Y: 479, W: 32, H: 32}, VY: 2}
	b.integrate(0.5, 15)
	c := Resolve(&b, ground, WallStop)

	if !c.Landed() {
		t.Fatalf("expected landing, got %+v", c)
	}
	if b.Box.Bottom() != ground.Y {
		t.Errorf("bottom = %v, expected %v", b.Box.Bottom(), ground.Y)
	}
	if b.Box.Y != 480 {
		t.Errorf("y = %v, expected 480", b.Box.Y)
	}
	if b.VY != 0 || !b.OnGround {
		t.Errorf("vy = %v grounded = %v, expected 0 and true", b.VY, b.OnGround)
	}
}

func TestResolveTieOrder(t *testing.T) {
	// A square mover centered on a square platform has equal depth on
	// every side; left is evaluated first.
	p := core.Box{X: 0, Y: 0, W: 10, H: 10}
	b := Body{Box: core.Box{X: 0, Y: 0, W: 10, H: 10}, VX: 1, VY: 1, Ceiling: true}
	c := Resolve(&b, p, WallStop)
	if c.Side != SideLeft {
		t.Errorf("side = %v, expected left", c.Side)
	}

	// Equal top and bottom depth with the horizontal axes deeper: top wins.
	p = core.Box{X: 0, Y: 0, W: 100, H: 10}
	b = Body{Box: core.Box{X: 40, Y: 0, W: 10, H: 10}, VY: 1, Ceiling: true}
	c = Resolve(&b, p, WallStop)
	if c.Side != SideTop || !c.Applied {
		t.Errorf("contact = %+v, expected applied top", c)
	}
}

// Guard failures leave the overlap in place; pinned so a stricter policy
// is a deliberate change.
func TestResolveGuardIsPermissive(t *testing.T) {
	tests := []struct {
		name string
		body Body
		side Side
	}{
		{"top while rising", Body{Box: core.Box{X: 100, Y: 482, W: 32, H: 32}, VY: -3}, SideTop},
		{"top at rest", Body{Box: core.Box{X: 100, Y: 482, W: 32, H: 32}}, SideTop},
		{"left while moving away", Body{Box: core.Box{X: -30, Y: 530, W: 32, H: 32}, VX: -4}, SideLeft},
		{"right while standing", Body{Box: core.Box{X: 798, Y: 530, W: 32, H: 32}}, SideRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			before := b
			c := Resolve(&b, ground, WallStop)
			if c.Side != tc.side || c.Applied {
				t.Fatalf("contact = %+v, expected unapplied %v", c, tc.side)
			}
			if b != before {
				t.Errorf("body changed: %+v -> %+v", before, b)
			}
			if !b.Box.Overlaps(ground) {
				t.Error("body should still overlap")
			}
		})
	}
}

func TestResolveWithoutCeiling(t *testing.T) {
	b := Body{Box: core.Box{X: 100, Y: 574, W: 24, H: 24}, VY: -5}
	c := Resolve(&b, ground, WallReverse)
	if c.Side != SideBottom || c.Applied {
		t.Errorf("contact = %+v, expected unapplied bottom", c)
	}
	if b.VY != -5 {
		t.Errorf("vy = %v, expected unchanged", b.VY)
	}
}

func TestResolveNoOverlap(t *testing.T) {
	b := Body{Box: core.Box{X: 100, Y: 480, W: 32, H: 32}, VY: 1}
	if c := Resolve(&b, ground, WallStop); c.Side != SideNone {
		t.Errorf("touching box should not resolve, got %+v", c)
	}
}

func TestIntegrate(t *testing.T) {
	b := Body{VY: 14.8}
	b.integrate(0.5, 15)
	if b.VY != 15 {
		t.Errorf("vy = %v, expected clamp to 15", b.VY)
	}

	b = Body{OnGround: true, VX: 2}
	b.integrate(0.5, 15)
	if b.VY != 0 {
		t.Errorf("grounded body gained vy %v", b.VY)
	}
	if b.Box.X != 2 {
		t.Errorf("x = %v, expected 2", b.Box.X)
	}
	if b.OnGround {
		t.Error("integrate should clear OnGround")
	}
}
