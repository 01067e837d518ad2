package compare

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Stellacore/orinet/ga"
)

// TriadDeltas returns the per-basis attitude action differences
// att2(ek) - att1(ek) for k = 1, 2, 3. Invalid input yields invalid
// vectors.
func TriadDeltas(att1, att2 ga.Attitude) [3]ga.Vector {
	if !(att1.IsValid() && att2.IsValid()) {
		return [3]ga.Vector{ga.NullVec(), ga.NullVec(), ga.NullVec()}
	}
	return [3]ga.Vector{
		r3.Sub(att2.Apply(ga.E1), att1.Apply(ga.E1)),
		r3.Sub(att2.Apply(ga.E2), att1.Apply(ga.E2)),
		r3.Sub(att2.Apply(ga.E3), att1.Apply(ga.E3)),
	}
}

// HexadDeltas returns the six difference vectors between the images of
// the hexad probes +/-ek under xfm1 and xfm2.
//
// The six probe differences equal dt +/- rho*dk, where dt is the
// difference of the rotated offsets and dk the basis-image differences.
// With normalize set, rho = max(1, (|loc1|+|loc2|)/2) scales the
// rotational contribution to the translation magnitude so that angular
// discrepancy is weighted commensurately with offset discrepancy.
func HexadDeltas(xfm1, xfm2 ga.Transform, normalize bool) [6]ga.Vector {
	if !(xfm1.IsValid() && xfm2.IsValid()) {
		return [6]ga.Vector{
			ga.NullVec(), ga.NullVec(), ga.NullVec(),
			ga.NullVec(), ga.NullVec(), ga.NullVec(),
		}
	}

	rho := 1.
	if normalize {
		aveMag := 0.5 * (r3.Norm(xfm1.Loc) + r3.Norm(xfm2.Loc))
		rho = math.Max(1., aveMag)
	}

	// rotated offset difference
	deltaTrans := r3.Sub(xfm1.Att.Apply(xfm1.Loc), xfm2.Att.Apply(xfm2.Loc))

	// basis image differences, scaled
	triad := TriadDeltas(xfm1.Att, xfm2.Att)
	d1 := r3.Scale(rho, triad[0])
	d2 := r3.Scale(rho, triad[1])
	d3 := r3.Scale(rho, triad[2])

	return [6]ga.Vector{
		r3.Add(deltaTrans, d1), r3.Sub(deltaTrans, d1),
		r3.Add(deltaTrans, d2), r3.Sub(deltaTrans, d2),
		r3.Add(deltaTrans, d3), r3.Sub(deltaTrans, d3),
	}
}

// MaxMagDiff returns the maximum magnitude over the hexad difference
// vectors, or NaN for invalid input.
func MaxMagDiff(xfm1, xfm2 ga.Transform, normalize bool) float64 {
	if !(xfm1.IsValid() && xfm2.IsValid()) {
		return ga.NullScalar()
	}
	diffs := HexadDeltas(xfm1, xfm2, normalize)
	maxMag := -1.
	for _, diff := range diffs {
		maxMag = math.Max(maxMag, r3.Norm(diff))
	}
	return maxMag
}

// AvgMagDiff returns the mean magnitude over the hexad difference
// vectors, or NaN for invalid input.
func AvgMagDiff(xfm1, xfm2 ga.Transform, normalize bool) float64 {
	if !(xfm1.IsValid() && xfm2.IsValid()) {
		return ga.NullScalar()
	}
	diffs := HexadDeltas(xfm1, xfm2, normalize)
	sumMag := 0.
	for _, diff := range diffs {
		sumMag += r3.Norm(diff)
	}
	return sumMag / 6.
}

// SimilarAttitudes reports whether two attitudes produce nearly the
// same effect on the basis triad; the returned magnitude is the largest
// basis-image difference (NaN for invalid input).
func SimilarAttitudes(att1, att2 ga.Attitude, tol float64) (bool, float64) {
	if !(att1.IsValid() && att2.IsValid()) {
		return false, ga.NullScalar()
	}
	deltas := TriadDeltas(att1, att2)
	maxMag := -1.
	for _, delta := range deltas {
		maxMag = math.Max(maxMag, r3.Norm(delta))
	}
	return maxMag < tol, maxMag
}

// SimilarResult reports whether two transforms produce nearly the same
// effect on the hexad probes; the returned magnitude is MaxMagDiff
// (NaN for invalid input).
func SimilarResult(xfm1, xfm2 ga.Transform, normalize bool, tol float64) (bool, float64) {
	if !(xfm1.IsValid() && xfm2.IsValid()) {
		return false, ga.NullScalar()
	}
	maxMag := MaxMagDiff(xfm1, xfm2, normalize)
	return maxMag < tol, maxMag
}
