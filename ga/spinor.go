package ga

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Spinor is an even-grade multivector: a scalar plus a bivector. The
// even subalgebra is closed under the geometric product, and unit
// spinors are the rotors that generate rotations.
type Spinor struct {
	W float64
	B BiVector
}

// NullSpinor returns the invalid spinor sentinel.
func NullSpinor() Spinor { return Spinor{W: NullScalar(), B: NullBiv()} }

// IsValid reports whether every component of s is valid.
func (s Spinor) IsValid() bool { return ScalarIsValid(s.W) && s.B.IsValid() }

// Neg returns -s.
func (s Spinor) Neg() Spinor { return Spinor{W: -s.W, B: s.B.Neg()} }

// Scale returns f*s.
func (s Spinor) Scale(f float64) Spinor { return Spinor{W: f * s.W, B: s.B.Scale(f)} }

// Mag returns the magnitude of s.
func (s Spinor) Mag() float64 {
	return quat.Abs(s.quat())
}

// Mul returns the geometric product s*t. Note the operand swap when
// delegating to the quaternion product: the component correspondence
// used here is an anti-isomorphism of the even subalgebra.
func (s Spinor) Mul(t Spinor) Spinor {
	return spinorFromQuat(quat.Mul(t.quat(), s.quat()))
}

// Sqrt returns the principal square root of s within the even
// subalgebra.
func (s Spinor) Sqrt() Spinor {
	return spinorFromQuat(quat.Sqrt(s.quat()))
}

// Log returns the principal logarithm of s; for a unit spinor the
// result is a pure bivector (half the rotation angle of s*s~).
func (s Spinor) Log() Spinor {
	return spinorFromQuat(quat.Log(s.quat()))
}

// VecProduct returns the geometric product a*b of two vectors: their
// scalar inner product plus their wedge.
func VecProduct(a, b Vector) Spinor {
	return Spinor{W: r3.Dot(a, b), B: Wedge(a, b)}
}

// BivProduct returns the geometric product a*b of two bivectors, an
// even element with scalar part -<da,db> and bivector part carrying
// -da×db on {e23,e31,e12}, where da, db are the component triples.
func BivProduct(a, b BiVector) Spinor {
	da := Vector{X: a.X23, Y: a.X31, Z: a.X12}
	db := Vector{X: b.X23, Y: b.X31, Z: b.X12}
	x := r3.Cross(da, db)
	return Spinor{
		W: -r3.Dot(da, db),
		B: BiVector{X23: -x.X, X31: -x.Y, X12: -x.Z},
	}
}

func (s Spinor) quat() quat.Number {
	return quat.Number{Real: s.W, Imag: s.B.X23, Jmag: s.B.X31, Kmag: s.B.X12}
}

func spinorFromQuat(q quat.Number) Spinor {
	return Spinor{W: q.Real, B: BiVector{X23: q.Imag, X31: q.Jmag, X12: q.Kmag}}
}
