package platformer

// InvulnKind tells why the player cannot be hurt.
type InvulnKind uint8

const (
	InvulnNone       InvulnKind = iota
	InvulnPostDamage            // grace window after being hit
	InvulnStar                  // star power-up
)

func (k InvulnKind) String() string {
	switch k {
	case InvulnPostDamage:
		return "post_damage"
	case InvulnStar:
		return "star"
	default:
		return "none"
	}
}

// Invulnerability is a tagged countdown. The zero value is not invulnerable.
type Invulnerability struct {
	Kind  InvulnKind
	Ticks int
}

// PostDamage returns a grace window of the given length.
func PostDamage(ticks int) Invulnerability {
	return newInvulnerability(InvulnPostDamage, ticks)
}

// StarPower returns a star window of the given length.
func StarPower(ticks int) Invulnerability {
	return newInvulnerability(InvulnStar, ticks)
}

func newInvulnerability(kind InvulnKind, ticks int) Invulnerability {
	if ticks <= 0 {
		return Invulnerability{}
	}
	return Invulnerability{Kind: kind, Ticks: ticks}
}

// Active reports whether damage is currently ignored.
func (v Invulnerability) Active() bool {
	return v.Kind != InvulnNone
}

// Tick counts down one tick. The window closes on the tick the counter
// reaches zero.
func (v *Invulnerability) Tick() {
	if v.Kind == InvulnNone {
		return
	}
	v.Ticks--
	if v.Ticks <= 0 {
		*v = Invulnerability{}
	}
}

// Flashing reports whether the player sprite is hidden this tick.
// Stars flash faster than the post-damage window.
func (v Invulnerability) Flashing() bool {
	switch v.Kind {
	case InvulnPostDamage:
		return (v.Ticks/5)%2 == 1
	case InvulnStar:
		return (v.Ticks/2)%2 == 1
	default:
		return false
	}
}
