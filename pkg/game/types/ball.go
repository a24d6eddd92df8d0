package types

import (
	"math"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/solarlune/resolv"
)

type BallState struct {
	// Position is the center of the ball
	Position kinematic.Vector
	// Velocity is the ball speed per axis in units per second
	Velocity kinematic.Vector
	// Object is the broad phase box of the ball in the collision space, kept in sync with Position
	Object *resolv.Object
}

func NewBallState(positionX float64, positionY float64, velocity kinematic.Vector) *BallState {
	b := &BallState{
		Position: kinematic.Vector{
			X: positionX,
			Y: positionY,
		},
		Velocity: velocity,
		Object: resolv.NewObject(
			0, 0,
			constants.BallSize+2*collisionMargin,
			constants.BallSize+2*collisionMargin,
			CollisionSpaceTagBall,
		),
	}
	b.syncObject()
	return b
}

// Integrate advances the ball by a single Euler step.
func (b *BallState) Integrate(deltaTime float64) {
	b.Position = kinematic.Integrate(b.Position, b.Velocity, deltaTime)
}

// Serve recenters the ball in the field and draws a new diagonal velocity.
func (b *BallState) Serve(field Field, rng RandomSource) {
	b.Position.X, b.Position.Y = field.Center()
	b.Velocity = RandVec(rng, constants.BallSpeed, constants.BallSpeed)
}

// BounceWalls keeps the ball inside the top and bottom edges of the field,
// forcing the vertical velocity away from the wall it hit.
func (b *BallState) BounceWalls(fieldHeight float64) {
	if b.Position.Y < constants.BallSizeHalf {
		b.Position.Y = constants.BallSizeHalf
		b.Velocity.Y = math.Abs(b.Velocity.Y)
	} else if b.Position.Y > fieldHeight-constants.BallSizeHalf {
		b.Position.Y = fieldHeight - constants.BallSizeHalf
		b.Velocity.Y = -math.Abs(b.Velocity.Y)
	}
}

// BounceOff forces the horizontal velocity to the given direction (1 for right, -1 for left)
// if the ball overlaps the paddle. The speed is unchanged.
// Both objects must be in sync with their positions.
func (b *BallState) BounceOff(paddle *PaddleState, direction float64) bool {
	if !b.near(paddle) || !b.Bounds().Overlaps(paddle.Bounds()) {
		return false
	}
	b.Velocity.X = math.Copysign(b.Velocity.X, direction)
	return true
}

func (b *BallState) Bounds() Bounds {
	return BoundsAround(b.Position.X, b.Position.Y, constants.BallSizeHalf, constants.BallSizeHalf)
}

// near reports whether the paddle shares a cell with the ball in the collision space.
func (b *BallState) near(paddle *PaddleState) bool {
	if paddle.Object == nil {
		return false
	}
	collision := b.Object.Check(0, 0, CollisionSpaceTagPaddle)
	if collision == nil {
		return false
	}
	for _, o := range collision.Objects {
		if o == paddle.Object {
			return true
		}
	}
	return false
}

func (b *BallState) syncObject() {
	b.Object.Position.X = b.Position.X - constants.BallSizeHalf - collisionMargin
	b.Object.Position.Y = b.Position.Y - constants.BallSizeHalf - collisionMargin
	b.Object.Update()
}
