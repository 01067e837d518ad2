package ga

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// BiVector is a 3D bivector on the basis {e23, e31, e12}. Its magnitude
// is an area (for rotations, an angle) and its direction a plane with
// orientation.
type BiVector struct {
	X23, X31, X12 float64
}

// Bivector basis elements.
var (
	E23 = BiVector{X23: 1}
	E31 = BiVector{X31: 1}
	E12 = BiVector{X12: 1}
)

// NullBiv returns the invalid bivector sentinel.
func NullBiv() BiVector {
	nan := math.NaN()
	return BiVector{X23: nan, X31: nan, X12: nan}
}

// IsValid reports whether every component of b is valid.
func (b BiVector) IsValid() bool {
	return ScalarIsValid(b.X23) && ScalarIsValid(b.X31) && ScalarIsValid(b.X12)
}

// Mag returns the magnitude of b.
func (b BiVector) Mag() float64 {
	return math.Sqrt(b.X23*b.X23 + b.X31*b.X31 + b.X12*b.X12)
}

// Scale returns f*b.
func (b BiVector) Scale(f float64) BiVector {
	return BiVector{X23: f * b.X23, X31: f * b.X31, X12: f * b.X12}
}

// Add returns b+c.
func (b BiVector) Add(c BiVector) BiVector {
	return BiVector{X23: b.X23 + c.X23, X31: b.X31 + c.X31, X12: b.X12 + c.X12}
}

// Neg returns -b (the same plane with reversed orientation).
func (b BiVector) Neg() BiVector { return b.Scale(-1) }

// Dir returns the unit bivector with the plane and orientation of b.
// A zero-magnitude b yields the invalid sentinel.
func (b BiVector) Dir() BiVector {
	mag := b.Mag()
	if !(0 < mag) {
		return NullBiv()
	}
	return b.Scale(1 / mag)
}

// Exp returns the spinor exp(b) = cos|b| + sin|b|*Dir(b).
func (b BiVector) Exp() Spinor {
	return spinorFromQuat(quat.Exp(b.quat()))
}

// Wedge returns the outer product a^b, the bivector of the plane
// spanned by a and b with orientation turning a toward b.
func Wedge(a, b Vector) BiVector {
	return BiVector{
		X23: a.Y*b.Z - a.Z*b.Y,
		X31: a.Z*b.X - a.X*b.Z,
		X12: a.X*b.Y - a.Y*b.X,
	}
}

// quat encodes b as a pure quaternion under {e23,e31,e12} → {i,j,k}.
func (b BiVector) quat() quat.Number {
	return quat.Number{Imag: b.X23, Jmag: b.X31, Kmag: b.X12}
}
