// Package compare assesses similarity between rigid-body transforms
// by the effect they produce, not by their parameter values.
//
// What & Why
//
//   - Why not compare parameters?
//     Parameter-vector distance is not rotation invariant: the same
//     physical discrepancy scores differently depending on the frame
//     it is expressed in, and angle components degenerate badly for
//     large rotations.
//
//   - What is the hexad metric?
//     Each transform is applied to the six "hexad" probe points
//     +/-e1, +/-e2, +/-e3; transforms are compared by the magnitudes
//     of the six difference vectors. The metric is rotation aware,
//     degrades gracefully for large angles, and has physical units
//     (displacement at unit radius).
//
//   - Why is it cheap?
//     The naive 12 transform applications reduce to one
//     rotated-offset difference plus three basis-image differences
//     combined with alternating signs (HexadDeltas); the maximum over
//     the six - and even over the six plus the origin - is attained on
//     one of the basis probes, so MaxMagDiff is exact, not a bound.
//
//   - Why the normalize flag?
//     With normalize set, the rotational term is scaled by
//     rho = max(1, mean offset magnitude), weighting angular
//     discrepancy commensurately with offset discrepancy for
//     far-from-origin transforms.
//
// GoDoc Summary
//
//   - TriadDeltas(att1, att2) - per-basis attitude image differences.
//   - HexadDeltas(xfm1, xfm2, normalize) - the six probe differences.
//   - MaxMagDiff / AvgMagDiff - scalar summaries of the six.
//   - SimilarAttitudes / SimilarResult - tolerance predicates that
//     also report the achieved maximum magnitude.
//   - Stats / DifferenceStats - {count, min, median, mean, max} of
//     MaxMagDiff over a collection against a common reference
//     (aggregation via gonum stat/floats, median via robust).
//
// All functions follow the kernel's sentinel convention: any invalid
// input produces NaN-bearing output rather than an error. Each
// comparison is O(1); DifferenceStats is O(n) over the collection.
package compare
