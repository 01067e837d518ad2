package ga

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a rigid body motion combining an offset with a rotation:
// x ↦ Att(x + Loc). For a transform expressing frame B with respect to
// frame A, Apply carries A coordinates into B coordinates.
type Transform struct {
	Loc Vector
	Att Attitude
}

// IdentityXform returns the transform that moves nothing.
func IdentityXform() Transform { return Transform{Att: IdentityAtt()} }

// NullXform returns the invalid transform sentinel.
func NullXform() Transform { return Transform{Loc: NullVec(), Att: NullAtt()} }

// IsValid reports whether every component of t is valid.
func (t Transform) IsValid() bool { return VecIsValid(t.Loc) && t.Att.IsValid() }

// Apply carries v through t.
func (t Transform) Apply(v Vector) Vector {
	return t.Att.Apply(r3.Add(v, t.Loc))
}

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	return Transform{
		Loc: r3.Scale(-1, t.Att.Apply(t.Loc)),
		Att: t.Att.Inverse(),
	}
}

// Mul composes transforms: t.Mul(u) applies u first, then t, so that
// xCwrtA = xCwrtB.Mul(xBwrtA).
func (t Transform) Mul(u Transform) Transform {
	uInv := u.Att.Inverse()
	return Transform{
		Loc: r3.Add(u.Loc, uInv.Apply(t.Loc)),
		Att: t.Att.Mul(u.Att),
	}
}

// String formats t as its offset and physical angle components.
func (t Transform) String() string {
	return fmt.Sprintf("loc:(%.6f,%.6f,%.6f) %v", t.Loc.X, t.Loc.Y, t.Loc.Z, t.Att)
}
