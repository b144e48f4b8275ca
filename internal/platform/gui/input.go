package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// binding ties keys to an action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// heldBindings are read from the live key state every tick.
var heldBindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionFire, []ebiten.Key{ebiten.KeyX, ebiten.KeyF}},
}

// edgeBindings fire once on the tick the key goes down.
var edgeBindings = []binding{
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
}

// keyState abstracts ebiten's keyboard so input mapping can be tested.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// readInput builds the frame for one tick.
func readInput(ks keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range heldBindings {
		for _, k := range b.keys {
			if ks.Pressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	for _, b := range edgeBindings {
		for _, k := range b.keys {
			if ks.JustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}

	// Opposite directions cancel out
	if frame.Has(core.ActionLeft) && frame.Has(core.ActionRight) {
		delete(frame.Actions, core.ActionLeft)
		delete(frame.Actions, core.ActionRight)
	}
	return frame
}

// quitRequested reports a press of Q.
func quitRequested(ks keyState) bool {
	return ks.JustPressed(ebiten.KeyQ)
}
