package types

const (
	CollisionSpaceTagPaddle string = "paddle"
	CollisionSpaceTagBall   string = "ball"
)

// Field is the drawable area the game is played in.
// It is supplied on every call and never cached by the simulation.
type Field struct {
	Width  float64
	Height float64
}

// Center returns the center point of the field.
func (f Field) Center() (float64, float64) {
	return f.Width * 0.5, f.Height * 0.5
}

// Input is a point-in-time snapshot of the held state of the four paddle controls.
type Input struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool
}

// Bounds is an axis-aligned bounding box described by its edges.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// BoundsAround returns the box with the given half-extents around a center point.
func BoundsAround(x, y, halfWidth, halfHeight float64) Bounds {
	return Bounds{
		Left:   x - halfWidth,
		Right:  x + halfWidth,
		Top:    y - halfHeight,
		Bottom: y + halfHeight,
	}
}

// Overlaps reports whether b and other strictly intersect.
// Boxes that only touch along an edge do not overlap.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.Left < other.Right &&
		b.Right > other.Left &&
		b.Top < other.Bottom &&
		b.Bottom > other.Top
}
