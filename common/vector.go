package common

import "github.com/jakecoffman/cp"

// Vector2 is a 2D float vector with value semantics (Add, Sub, Mult, ...).
type Vector2 = cp.Vector

// Vec builds a Vector2.
func Vec(x, y float64) Vector2 {
	return cp.Vector{X: x, Y: y}
}
