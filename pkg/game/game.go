package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/google/uuid"
)

// InputSource returns the current held state of the paddle controls.
type InputSource func() types.Input

// GameManager drives a single match. It owns the game state exclusively;
// nothing else may mutate it while the manager is in use.
type GameManager struct {
	gameState        *types.GameState
	field            types.Field
	inputSource      InputSource
	gameLoopInterval time.Duration
	matchID          uuid.UUID
	logger           *log.Logger
	frames           uint64
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	GameState *types.GameState
	// Field is the play field used by Start
	Field types.Field
	// InputSource is polled once per tick by Start. Nil means no controls are held.
	InputSource InputSource
	// GameLoopInterval is the tick interval used by Start
	GameLoopInterval time.Duration
	// MatchID identifies the match in logs. A new one is generated when nil.
	MatchID uuid.UUID
	// Logger defaults to the package default logger
	Logger *log.Logger
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	matchID := opts.MatchID
	if matchID == uuid.Nil {
		matchID = uuid.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}
	inputSource := opts.InputSource
	if inputSource == nil {
		inputSource = func() types.Input { return types.Input{} }
	}

	return &GameManager{
		gameState:        opts.GameState,
		field:            opts.Field,
		inputSource:      inputSource,
		gameLoopInterval: opts.GameLoopInterval,
		matchID:          matchID,
		logger:           logger.With("match", matchID.String()),
	}
}

func (gm *GameManager) MatchID() uuid.UUID {
	return gm.matchID
}

func (gm *GameManager) GameState() *types.GameState {
	return gm.gameState
}

// Frames returns the number of steps run so far.
func (gm *GameManager) Frames() uint64 {
	return gm.frames
}

// Start runs the game loop on the calling goroutine until ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	if gm.gameLoopInterval <= 0 {
		return fmt.Errorf("game loop interval must be positive, got %s", gm.gameLoopInterval)
	}

	gm.logger.Info("Starting match on a %.0fx%.0f field", gm.field.Width, gm.field.Height)

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	deltaTime := gm.gameLoopInterval.Seconds()
	for {
		select {
		case <-ctx.Done():
			gm.logger.Info("Match ended after %d frames with score %d-%d", gm.frames, gm.gameState.Score.P1, gm.gameState.Score.P2)
			return nil
		case <-ticker.C:
			gm.Step(deltaTime, gm.inputSource(), gm.field)
		}
	}
}

// Step runs one simulation step and reports the player who scored during it, if any.
func (gm *GameManager) Step(deltaTime float64, input types.Input, field types.Field) (types.Player, bool) {
	previous := gm.gameState.Score
	gm.gameState.Update(deltaTime, input, field)
	gm.frames++

	scorer, scored := gm.gameState.Score.ScorerSince(previous)
	if scored {
		gm.logger.Info("%s scored (%d-%d)", scorer, gm.gameState.Score.P1, gm.gameState.Score.P2)
	}
	gm.logger.Trace("Frame %d: ball at (%.1f, %.1f)", gm.frames, gm.gameState.Ball.Position.X, gm.gameState.Ball.Position.Y)

	return scorer, scored
}

// Restart puts the match back to its starting positions and clears the score.
func (gm *GameManager) Restart(field types.Field) {
	gm.gameState.Reset(field)
	gm.logger.Info("Match restarted")
}
