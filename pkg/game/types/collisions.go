package types

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceCellSize = 16

	// resolv registers an object in the cells up to Position+Size-1, so the ball is
	// registered one unit larger on every side to never miss a sub-unit overlap.
	// The exact test is always Bounds.Overlaps.
	collisionMargin = 1.0
)

// NewCollisionSpace creates a space covering the whole field.
func NewCollisionSpace(field Field) *resolv.Space {
	return resolv.NewSpace(
		collisionCells(field.Width)*CollisionSpaceCellSize,
		collisionCells(field.Height)*CollisionSpaceCellSize,
		CollisionSpaceCellSize,
		CollisionSpaceCellSize,
	)
}

// collisionSpaceFits reports whether space has exactly the cells needed for field.
func collisionSpaceFits(space *resolv.Space, field Field) bool {
	return space != nil &&
		space.Width() == collisionCells(field.Width) &&
		space.Height() == collisionCells(field.Height)
}

func collisionCells(length float64) int {
	return int(math.Ceil(math.Max(length, 0) / CollisionSpaceCellSize))
}
