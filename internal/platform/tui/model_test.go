package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames  []core.InputFrame
	state   core.GameState
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func testModel(t *testing.T, store *storage.Store) (Model, *fakeGame) {
	t.Helper()
	g := &fakeGame{}
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(g, store, cfg)
	m.Init()
	return m, g
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelHoldsMovementBetweenRepeats(t *testing.T) {
	m, g := testModel(t, nil)

	m = send(t, m, runeKey('d'))
	for range DefaultHoldTicks + 2 {
		m = send(t, m, TickMsg{})
	}

	if len(g.frames) != DefaultHoldTicks+2 {
		t.Fatalf("stepped %d times", len(g.frames))
	}
	for i := range DefaultHoldTicks {
		if !g.frames[i].Has(core.ActionRight) {
			t.Fatalf("tick %d: right not held", i)
		}
	}
	if g.frames[DefaultHoldTicks].Has(core.ActionRight) {
		t.Error("right held past the hold window")
	}
}

func TestModelEdgeActionsLastOneTick(t *testing.T) {
	m, g := testModel(t, nil)

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	if !g.frames[0].Has(core.ActionPause) {
		t.Error("pause not delivered")
	}
	if g.frames[1].Has(core.ActionPause) {
		t.Error("pause repeated on the next tick")
	}

	// Restart is ignored while the game is running
	m = send(t, m, runeKey('r'))
	send(t, m, TickMsg{})
	if g.frames[2].Has(core.ActionRestart) {
		t.Error("restart delivered during play")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := testModel(t, store)
	g.state = core.GameState{Score: 2400, Level: 3, GameOver: true}
	for range 3 {
		m = send(t, m, TickMsg{})
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 2400 || scores[0].Level != 3 {
		t.Errorf("saved %+v", scores[0])
	}

	// Restart after game over resets the game
	m = send(t, m, runeKey('r'))
	send(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, g := testModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize restarted the game")
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m, _ := testModel(t, nil)
	if got := send(t, m, runeKey('q')); !got.IsQuitting() {
		t.Error("q did not quit")
	}

	// Standalone games ignore back
	m, g := testModel(t, nil)
	g.state.GameOver = true
	m = send(t, m, TickMsg{})
	if send(t, m, runeKey('b')).BackToMenu() {
		t.Error("standalone model went back to a menu")
	}

	m.embedded = true
	if !send(t, m, runeKey('b')).BackToMenu() {
		t.Error("embedded model ignored back after game over")
	}
}

func TestModelView(t *testing.T) {
	m, _ := testModel(t, nil)
	if !strings.Contains(m.View(), "fake") {
		t.Error("view does not show the game")
	}
	m.quitting = true
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}
