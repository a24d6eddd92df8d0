package kinematic

// This package includes the motion helpers shared by the simulation:
// a 2D vector, single-step Euler displacement and a branch-based clamp.

// Vector is a 2D vector in screen space (x right, y down).
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns v multiplied by s.
// The products are explicitly rounded so that callers never get a fused multiply-add.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: float64(v.X * s), Y: float64(v.Y * s)}
}

// Displacement returns the displacement of an object moving at a constant velocity for the given time.
func Displacement(velocity Vector, time float64) Vector {
	return velocity.Scale(time)
}

// Integrate advances a position by a single Euler step of the given velocity.
func Integrate(position Vector, velocity Vector, time float64) Vector {
	return position.Add(Displacement(velocity, time))
}

// Clamp constrains value into [low, high] by snapping it to the nearest bound.
func Clamp(value float64, low float64, high float64) float64 {
	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}
