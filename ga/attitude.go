package ga

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Attitude is a unit rotor specifying the orientation of one frame with
// respect to another. The zero Attitude is invalid; use IdentityAtt for
// the no-rotation attitude.
type Attitude struct {
	q quat.Number
}

// IdentityAtt returns the attitude of a rotation by nothing.
func IdentityAtt() Attitude { return Attitude{q: quat.Number{Real: 1}} }

// NullAtt returns the invalid attitude sentinel.
func NullAtt() Attitude { return Attitude{q: quat.NaN()} }

// AttFromPhysAngle returns the attitude rotating by |b| within the
// plane of b. PhysAngle θ·e12 takes e1 toward e2.
func AttFromPhysAngle(b BiVector) Attitude {
	if !b.IsValid() {
		return NullAtt()
	}
	return Attitude{q: quat.Exp(quat.Scale(0.5, b.quat()))}
}

// AttFromSpinor returns the attitude whose rotor is s normalized to
// unit magnitude. A zero-magnitude or invalid s yields the invalid
// attitude.
func AttFromSpinor(s Spinor) Attitude {
	mag := s.Mag()
	if !(0 < mag) || !s.IsValid() {
		return NullAtt()
	}
	return Attitude{q: quat.Scale(1/mag, s.quat())}
}

// Spinor returns the rotor of a as an even multivector.
func (a Attitude) Spinor() Spinor { return spinorFromQuat(a.q) }

// IsValid reports whether a carries usable rotor data.
func (a Attitude) IsValid() bool {
	return !quat.IsNaN(a.q) && quat.Abs(a.q) > 0
}

// PhysAngle returns the physical angle bivector of a: magnitude is the
// principal rotation angle (within [0,pi]) and direction the rotation
// plane.
func (a Attitude) PhysAngle() BiVector {
	q := a.q
	// canonical branch: rotors double-cover rotations
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	l := quat.Log(q)
	return BiVector{X23: 2 * l.Imag, X31: 2 * l.Jmag, X12: 2 * l.Kmag}
}

// Apply rotates v by a.
func (a Attitude) Apply(v Vector) Vector {
	qv := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(a.q, qv), quat.Conj(a.q))
	return Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// Inverse returns the attitude undoing a.
func (a Attitude) Inverse() Attitude { return Attitude{q: quat.Conj(a.q)} }

// Mul composes attitudes: a.Mul(b) applies b first, then a.
func (a Attitude) Mul(b Attitude) Attitude {
	return Attitude{q: quat.Mul(a.q, b.q)}
}

// String formats a as its physical angle components.
func (a Attitude) String() string {
	b := a.PhysAngle()
	return fmt.Sprintf("pAng:(%.6f,%.6f,%.6f)", b.X23, b.X31, b.X12)
}
