package platformer

import "math/rand"

// EventKind identifies a gameplay moment other systems may react to.
type EventKind uint8

const (
	EventJump EventKind = iota
	EventCoin
	EventEnemyDefeat
	EventPowerUp
	EventDeath
	EventLevelComplete
	EventFireball
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventCoin:
		return "coin"
	case EventEnemyDefeat:
		return "enemy_defeat"
	case EventPowerUp:
		return "power_up"
	case EventDeath:
		return "death"
	case EventLevelComplete:
		return "level_complete"
	case EventFireball:
		return "fireball"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted at a world position.
type Event struct {
	Kind EventKind
	X, Y float64
}

// EffectSink receives events. Emit must not block; the simulation never
// waits for an effect to finish.
type EffectSink interface {
	Emit(e Event)
}

// Multi fans an event out to several sinks. Nil entries are skipped.
type Multi []EffectSink

// Emit forwards e to every sink.
func (m Multi) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

// Recorder keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Emit records e.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many events of a kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Tally is the session's score and coin count.
type Tally struct {
	Score int
	Coins int
}

// Context is what entities may touch during a tick besides themselves.
type Context struct {
	Tally   *Tally
	Effects EffectSink
	RNG     *rand.Rand
}

// NewContext creates a context with an empty tally.
func NewContext(effects EffectSink, rng *rand.Rand) *Context {
	return &Context{Tally: &Tally{}, Effects: effects, RNG: rng}
}

func (c *Context) emit(kind EventKind, x, y float64) {
	if c.Effects != nil {
		c.Effects.Emit(Event{Kind: kind, X: x, Y: y})
	}
}

func (c *Context) addScore(points int) {
	c.Tally.Score += points
}
