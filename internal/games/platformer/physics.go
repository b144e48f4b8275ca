package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Side is the face of a platform a mover was pushed out through.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// WallResponse selects what a side contact does to horizontal velocity.
type WallResponse uint8

const (
	WallStop    WallResponse = iota // player: vx = 0
	WallReverse                     // enemy: turn around
)

// Contact is the outcome of resolving one mover against one platform.
type Contact struct {
	Side    Side // minimal penetration axis, SideNone without overlap
	Applied bool // false when the velocity guard skipped the correction
}

// Landed reports whether the mover was snapped onto the platform top.
func (c Contact) Landed() bool {
	return c.Side == SideTop && c.Applied
}

// Body is a moving box with velocity, shared by the player and enemies.
type Body struct {
	Box       core.Box
	VX, VY    float64
	OnGround  bool
	Direction int  // -1 left, 1 right
	Ceiling   bool // whether hitting a platform underside stops upward motion
}

// integrate applies gravity while airborne, moves the body and clears the
// ground flag. maxFall <= 0 leaves the fall speed unbounded.
func (b *Body) integrate(gravity, maxFall float64) {
	if !b.OnGround {
		b.VY += gravity
		if maxFall > 0 {
			b.VY = min(b.VY, maxFall)
		}
	}
	b.Box.X += b.VX
	b.Box.Y += b.VY
	b.OnGround = false
}

// Resolve pushes b out of platform p along the axis of least penetration.
// Ties are broken in the order left, right, top, bottom. The correction is
// only applied when the body moves into that face; otherwise the overlap
// is left for a later tick.
func Resolve(b *Body, p core.Box, wall WallResponse) Contact {
	if !b.Box.Overlaps(p) {
		return Contact{}
	}

	left := b.Box.Right() - p.X
	right := p.Right() - b.Box.X
	top := b.Box.Bottom() - p.Y
	bottom := p.Bottom() - b.Box.Y

	side, depth := SideLeft, left
	if right < depth {
		side, depth = SideRight, right
	}
	if top < depth {
		side, depth = SideTop, top
	}
	if bottom < depth {
		side = SideBottom
	}

	c := Contact{Side: side}
	switch side {
	case SideTop:
		if b.VY > 0 {
			b.Box.Y = p.Y - b.Box.H
			b.VY = 0
			b.OnGround = true
			c.Applied = true
		}
	case SideBottom:
		if b.Ceiling && b.VY < 0 {
			b.Box.Y = p.Bottom()
			b.VY = 0
			c.Applied = true
		}
	case SideLeft:
		if b.VX > 0 {
			b.Box.X = p.X - b.Box.W
			b.hitWall(wall, -1)
			c.Applied = true
		}
	case SideRight:
		if b.VX < 0 {
			b.Box.X = p.Right()
			b.hitWall(wall, 1)
			c.Applied = true
		}
	}
	return c
}

// hitWall applies the wall response; away is the direction pointing out
// of the wall.
func (b *Body) hitWall(wall WallResponse, away int) {
	switch wall {
	case WallStop:
		b.VX = 0
	case WallReverse:
		b.VX = float64(away) * core.AbsF(b.VX)
		b.Direction = away
	}
}
