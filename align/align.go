package align

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Stellacore/orinet/ga"
)

// minPlaneMag is the smallest wedge magnitude treated as a usable
// plane; direction pairs closer to (anti)parallel than this are
// degenerate.
const minPlaneMag = 1e-12

// DirPair is a pair of unit directions, arbitrary but not
// (anti)parallel.
type DirPair struct {
	A, B ga.Vector
}

// IsValid reports whether both directions carry usable data.
func (p DirPair) IsValid() bool {
	return ga.VecIsValid(p.A) && ga.VecIsValid(p.B)
}

// AttitudeFromDirPairs returns the attitude that best transforms
// refPair into bodPair: the plane of the reference pair is mapped
// exactly onto the plane of the body pair, and the mean reference
// direction onto the mean body direction.
//
// Degenerate input - either pair (anti)parallel, or any invalid
// component - yields ga.NullAtt().
func AttitudeFromDirPairs(refPair, bodPair DirPair) ga.Attitude {
	if !(refPair.IsValid() && bodPair.IsValid()) {
		return ga.NullAtt()
	}

	// plane bivectors for each pair
	wedge0 := ga.Wedge(refPair.A, refPair.B)
	wedge1 := ga.Wedge(bodPair.A, bodPair.B)
	if !(minPlaneMag < wedge0.Mag()) || !(minPlaneMag < wedge1.Mag()) {
		return ga.NullAtt()
	}
	theta0 := wedge0.Dir()
	theta1 := wedge1.Dir()

	// plane alignment: rotor taking the theta0 plane onto theta1
	spinP := ga.BivProduct(theta0, theta1).Neg().Sqrt()
	attP := ga.AttFromSpinor(spinP)

	// reference directions carried into the body plane
	aMid := attP.Apply(refPair.A)
	bMid := attP.Apply(refPair.B)

	// mean directions within the (now common) plane
	meanMid := r3.Unit(r3.Add(aMid, bMid))
	meanBod := r3.Unit(r3.Add(bodPair.A, bodPair.B))

	// in-plane alignment of the mean directions
	spinV := ga.VecProduct(meanMid, meanBod)
	var spinQ ga.Spinor
	if spinV.B.Mag() < minPlaneMag && spinV.W < 0 {
		// antiparallel means: the half turn, oriented by the body plane
		spinQ = ga.Spinor{B: theta1}
	} else {
		spinQ = spinV.Sqrt()
	}
	attQ := ga.AttFromSpinor(spinQ)

	return attQ.Mul(attP)
}
