package types

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/solarlune/resolv"
)

// GameState owns every entity of a match and is mutated in place once per frame.
type GameState struct {
	// Paddle1 is the left paddle, controlled by player 1
	Paddle1 *PaddleState
	// Paddle2 is the right paddle, controlled by player 2
	Paddle2 *PaddleState
	// Ball is the only ball in play
	Ball *BallState
	// Score is the points of both players
	Score Score
	// CollisionSpace holds the objects of the paddles and the ball.
	// It is rebuilt whenever the field changes size.
	CollisionSpace *resolv.Space

	rng RandomSource
}

// NewGameState creates the paddles centered vertically on each side of the field
// and serves the ball from the center.
func NewGameState(field Field, rng RandomSource) *GameState {
	centerX, centerY := field.Center()
	g := &GameState{
		Paddle1: NewPaddleState(constants.PaddleWidthHalf+constants.Padding, centerY),
		Paddle2: NewPaddleState(field.Width-constants.PaddleWidthHalf-constants.Padding, centerY),
		Ball:    NewBallState(centerX, centerY, RandVec(rng, constants.BallSpeed, constants.BallSpeed)),
		rng:     rng,
	}
	g.fitCollisionSpace(field)
	return g
}

// Reset puts the paddles and the ball back to their starting positions
// and clears the score.
func (g *GameState) Reset(field Field) {
	_, centerY := field.Center()
	g.Paddle1.Position.X = constants.PaddleWidthHalf + constants.Padding
	g.Paddle1.Position.Y = centerY
	g.Paddle2.Position.X = field.Width - constants.PaddleWidthHalf - constants.Padding
	g.Paddle2.Position.Y = centerY
	g.Ball.Serve(field, g.rng)
	g.Score = Score{}
	g.fitCollisionSpace(field)
	g.syncObjects()
}

// Update advances the simulation by deltaTime seconds.
// The order of the steps matters: clamping follows movement and collisions follow the position update.
func (g *GameState) Update(deltaTime float64, input Input, field Field) {
	// Paddle control
	g.Paddle1.ApplyInput(input.P1Up, input.P1Down, deltaTime)
	g.Paddle2.ApplyInput(input.P2Up, input.P2Down, deltaTime)

	// Ball integration
	g.Ball.Integrate(deltaTime)

	// Keep the paddles on the field
	g.Paddle1.Clamp(field.Height)
	g.Paddle2.Clamp(field.Height)

	// Scoring
	if g.Ball.Position.X < 0 {
		g.Ball.Serve(field, g.rng)
		g.Score.Award(Player2)
	}
	if g.Ball.Position.X > field.Width {
		g.Ball.Serve(field, g.rng)
		g.Score.Award(Player1)
	}

	// Top and bottom walls
	g.Ball.BounceWalls(field.Height)

	// Paddles
	g.fitCollisionSpace(field)
	g.syncObjects()
	g.Ball.BounceOff(g.Paddle1, 1)
	g.Ball.BounceOff(g.Paddle2, -1)
}

// fitCollisionSpace replaces the collision space if it does not cover the field.
func (g *GameState) fitCollisionSpace(field Field) {
	if collisionSpaceFits(g.CollisionSpace, field) {
		return
	}
	g.CollisionSpace = NewCollisionSpace(field)
	g.CollisionSpace.Add(g.Paddle1.Object, g.Paddle2.Object, g.Ball.Object)
}

func (g *GameState) syncObjects() {
	g.Paddle1.syncObject()
	g.Paddle2.syncObject()
	g.Ball.syncObject()
}
