package ga

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a 3D vector on the basis {e1, e2, e3}.
type Vector = r3.Vec

// Basis vectors.
var (
	E1 = Vector{X: 1}
	E2 = Vector{Y: 1}
	E3 = Vector{Z: 1}
)

// NullScalar returns the invalid scalar sentinel.
func NullScalar() float64 { return math.NaN() }

// ScalarIsValid reports whether x is a usable (non-NaN) value.
func ScalarIsValid(x float64) bool { return !math.IsNaN(x) }

// NullVec returns the invalid vector sentinel.
func NullVec() Vector {
	nan := math.NaN()
	return Vector{X: nan, Y: nan, Z: nan}
}

// VecIsValid reports whether every component of v is valid.
func VecIsValid(v Vector) bool {
	return ScalarIsValid(v.X) && ScalarIsValid(v.Y) && ScalarIsValid(v.Z)
}

// NearlyEquals reports whether a and b agree to within tol in every
// component. Invalid inputs never compare equal.
func NearlyEquals(a, b Vector, tol float64) bool {
	if !(VecIsValid(a) && VecIsValid(b)) {
		return false
	}
	d := r3.Sub(a, b)
	return r3.Norm(d) < tol
}
