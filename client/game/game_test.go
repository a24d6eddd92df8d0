package game

import (
	"fmt"
	"testing"

	"github.com/cbodonnell/pong/pkg/game/render"
	gametypes "github.com/cbodonnell/pong/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCanvas keeps one line per draw call.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) FillRect(x, y, width, height float64) {
	c.calls = append(c.calls, fmt.Sprintf("rect %g %g %g %g", x, y, width, height))
}

func (c *recordingCanvas) DrawText(s string, x, y float64) {
	c.calls = append(c.calls, fmt.Sprintf("text %q %g %g", s, x, y))
}

func TestDrawCommands(t *testing.T) {
	field := gametypes.Field{Width: 800, Height: 600}
	state := gametypes.NewGameState(field, gametypes.NewRandomSource(2))
	state.Score = gametypes.Score{P1: 1, P2: 4}

	dst := &recordingCanvas{}
	require.NoError(t, drawCommands(dst, render.Commands(state, field)))

	assert.Equal(t, []string{
		"rect 40 250 20 100",
		"rect 740 250 20 100",
		"rect 387.5 287.5 25 25",
		`text "1                4" 360 60`,
	}, dst.calls)
}

func TestDrawCommands_UnknownCommand(t *testing.T) {
	dst := &recordingCanvas{}
	commands := []render.Command{
		{Type: render.CommandTypeRect, X: 1, Y: 2, Width: 3, Height: 4},
		{Type: render.CommandType(42)},
		{Type: render.CommandTypeText, Text: "never drawn"},
	}

	err := drawCommands(dst, commands)

	require.ErrorIs(t, err, errUnknownCommand)
	assert.Contains(t, err.Error(), "Unknown")
	assert.Equal(t, []string{"rect 1 2 3 4"}, dst.calls)
}

func TestGame_Layout(t *testing.T) {
	g := &Game{field: gametypes.Field{Width: 800, Height: 600}}

	for _, outside := range [][2]int{{800, 600}, {1920, 1080}, {320, 200}} {
		w, h := g.Layout(outside[0], outside[1])
		assert.Equal(t, 800, w)
		assert.Equal(t, 600, h)
	}
}
