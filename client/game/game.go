package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/render"
	gametypes "github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether the debug overlay is shown.
	debug bool
	// gameManager steps the match and owns the game state.
	gameManager *game.GameManager
	// clock supplies the frame delta time.
	clock game.Clock
	// field is the logical play field, handed to the simulation on every frame.
	field gametypes.Field
	// seed is the seed of the ball direction draws, shown in the debug overlay.
	seed uint64
}

type NewGameOptions struct {
	Debug       bool
	GameManager *game.GameManager
	// Field is the logical size of the screen
	Field gametypes.Field
	// Clock defaults to a WallClock
	Clock game.Clock
	Seed  uint64
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.GameManager == nil {
		return nil, fmt.Errorf("game manager is required")
	}
	if err := fonts.Load(); err != nil {
		return nil, fmt.Errorf("failed to load fonts: %v", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = game.NewWallClock()
	}

	return &Game{
		debug:       opts.Debug,
		gameManager: opts.GameManager,
		clock:       clock,
		field:       opts.Field,
		seed:        opts.Seed,
	}, nil
}

func (g *Game) Update() error {
	if input.IsQuitJustPressed() {
		return ebiten.Termination
	}
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
		log.Debug("Debug overlay enabled: %t", g.debug)
	}
	if input.IsRestartJustPressed() {
		g.gameManager.Restart(g.field)
	}

	g.gameManager.Step(g.clock.Delta(), input.Poll(), g.field)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	commands := render.Commands(g.gameManager.GameState(), g.field)
	if err := drawCommands(screenCanvas{screen: screen}, commands); err != nil {
		log.Error("Failed to draw frame: %v", err)
	}

	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

var errUnknownCommand = errors.New("unknown draw command")

// canvas is the surface draw commands are executed on.
type canvas interface {
	FillRect(x, y, width, height float64)
	DrawText(s string, x, y float64)
}

type screenCanvas struct {
	screen *ebiten.Image
}

func (c screenCanvas) FillRect(x, y, width, height float64) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(width), float32(height), color.White, false)
}

func (c screenCanvas) DrawText(s string, x, y float64) {
	face := fonts.ScoreFont
	op := &ebiten.DrawImageOptions{}
	// text is drawn from its baseline
	op.GeoM.Translate(x, y+float64(face.Metrics().Ascent.Ceil()))
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(c.screen, s, face, op)
}

// drawCommands executes the commands in order and stops at the first one it cannot draw.
func drawCommands(dst canvas, commands []render.Command) error {
	for _, c := range commands {
		switch c.Type {
		case render.CommandTypeRect:
			dst.FillRect(c.X, c.Y, c.Width, c.Height)
		case render.CommandTypeText:
			dst.DrawText(c.Text, c.X, c.Y)
		default:
			return fmt.Errorf("%w: %s", errUnknownCommand, c.Type)
		}
	}
	return nil
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	state := g.gameManager.GameState()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Ball: (%0.1f, %0.1f) v=(%0.0f, %0.0f)", state.Ball.Position.X, state.Ball.Position.Y, state.Ball.Velocity.X, state.Ball.Velocity.Y))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Seed: %d", g.seed))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Match: %s", g.gameManager.MatchID()))
}

// Layout keeps the logical field size fixed; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.field.Width), int(g.field.Height)
}
