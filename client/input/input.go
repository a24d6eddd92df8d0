package input

import (
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Control is one of the four logical paddle controls.
type Control int

const (
	ControlP1Up Control = iota
	ControlP1Down
	ControlP2Up
	ControlP2Down
)

func (c Control) String() string {
	switch c {
	case ControlP1Up:
		return "P1 Up"
	case ControlP1Down:
		return "P1 Down"
	case ControlP2Up:
		return "P2 Up"
	case ControlP2Down:
		return "P2 Down"
	}
	return "Unknown"
}

// KeyBindings maps each control to its physical key.
var KeyBindings = map[Control]ebiten.Key{
	ControlP1Up:   ebiten.KeyW,
	ControlP1Down: ebiten.KeyS,
	ControlP2Up:   ebiten.KeyArrowUp,
	ControlP2Down: ebiten.KeyArrowDown,
}

// IsHeld returns whether the key bound to the control is currently held down.
func IsHeld(control Control) bool {
	key, ok := KeyBindings[control]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

// Poll samples the held state of every control.
func Poll() types.Input {
	return Snapshot(IsHeld)
}

// Snapshot builds an input from a held-state query, asking once per control.
func Snapshot(isHeld func(Control) bool) types.Input {
	return types.Input{
		P1Up:   isHeld(ControlP1Up),
		P1Down: isHeld(ControlP1Down),
		P2Up:   isHeld(ControlP2Up),
		P2Down: isHeld(ControlP2Down),
	}
}

// IsQuitJustPressed returns a boolean value indicating whether the quit key is just pressed.
func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsRestartJustPressed returns a boolean value indicating whether the restart key is just pressed.
func IsRestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsDebugJustPressed returns a boolean value indicating whether the debug overlay toggle is just pressed.
func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
