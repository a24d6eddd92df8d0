package types

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/solarlune/resolv"
)

type PaddleState struct {
	// Position is the center of the paddle. X is fixed for the lifetime of the paddle.
	Position kinematic.Vector
	// Object is the bounding box of the paddle, kept in sync with Position
	Object *resolv.Object
}

func NewPaddleState(positionX float64, positionY float64) *PaddleState {
	p := &PaddleState{
		Position: kinematic.Vector{
			X: positionX,
			Y: positionY,
		},
		Object: resolv.NewObject(0, 0, constants.PaddleWidth, constants.PaddleHeight, CollisionSpaceTagPaddle),
	}
	p.syncObject()
	return p
}

// ApplyInput moves the paddle by PlayerSpeed*deltaTime for each held control.
// Up and down are applied independently, so holding both cancels out.
func (p *PaddleState) ApplyInput(up bool, down bool, deltaTime float64) {
	if up {
		p.Position.Y -= constants.PlayerSpeed * deltaTime
	}
	if down {
		p.Position.Y += constants.PlayerSpeed * deltaTime
	}
}

// Clamp keeps the paddle fully inside a field of the given height.
func (p *PaddleState) Clamp(fieldHeight float64) {
	p.Position.Y = kinematic.Clamp(p.Position.Y, constants.PaddleHeightHalf, fieldHeight-constants.PaddleHeightHalf)
}

func (p *PaddleState) Bounds() Bounds {
	return BoundsAround(p.Position.X, p.Position.Y, constants.PaddleWidthHalf, constants.PaddleHeightHalf)
}

func (p *PaddleState) syncObject() {
	p.Object.Position.X = p.Position.X - constants.PaddleWidthHalf
	p.Object.Position.Y = p.Position.Y - constants.PaddleHeightHalf
	p.Object.Update()
}
