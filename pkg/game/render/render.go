package render

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

type CommandType uint8

const (
	CommandTypeRect CommandType = iota
	CommandTypeText
)

func (c CommandType) String() string {
	switch c {
	case CommandTypeRect:
		return "Rect"
	case CommandTypeText:
		return "Text"
	}
	return "Unknown"
}

// Command is a single draw call.
// Rects use X and Y as the top-left corner; text uses them as the top-left of the first line.
type Command struct {
	Type   CommandType
	X      float64
	Y      float64
	Width  float64
	Height float64
	Text   string
}

// Commands translates the game state into the draw calls for one frame:
// both paddles, the ball, then the score line near the top center of the field.
func Commands(state *types.GameState, field types.Field) []Command {
	return []Command{
		rect(state.Paddle1.Bounds()),
		rect(state.Paddle2.Bounds()),
		rect(state.Ball.Bounds()),
		{
			Type: CommandTypeText,
			X:    field.Width * constants.ScoreX,
			Y:    field.Height * constants.ScoreY,
			Text: state.Score.String(),
		},
	}
}

func rect(bounds types.Bounds) Command {
	return Command{
		Type:   CommandTypeRect,
		X:      bounds.Left,
		Y:      bounds.Top,
		Width:  bounds.Right - bounds.Left,
		Height: bounds.Bottom - bounds.Top,
	}
}
