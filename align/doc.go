// Package align recovers a rigid-body attitude from a pair of
// reference directions and their observed images in a body frame.
//
// What & Why
//
//   - What problem does it solve?
//     Two non-parallel directions fix an orientation completely, but
//     measured directions never match a rotation of the reference
//     pair exactly - the pair over-determines the attitude by one
//     degree of freedom. AttitudeFromDirPairs resolves the redundancy
//     with a closed-form best fit instead of an iterative adjustment.
//
//   - Why this best-fit criterion?
//     Given reference pair (a0, b0) and body pair (a1, b1), the
//     returned rotor is the unique attitude such that
//
//  1. the plane spanned by the rotated reference pair coincides
//     exactly with the plane spanned by the body pair, and
//
//  2. the mean direction of the rotated reference pair coincides with
//     the mean direction of the body pair.
//
//     Individual directions generally do not match; their residual
//     discrepancy is distributed symmetrically about the mean, which
//     is what makes the construction useful as the reconstruction
//     step of streaming attitude medians (package track) and the
//     effect-median estimator (package robust).
//
//   - Why geometric algebra?
//     Both criteria are one product each: the plane-alignment rotor is
//     the principal square root of the spinor turning one unit plane
//     bivector into the other, and the in-plane rotor is the square
//     root of the product of the two mean directions. Composing the
//     two rotors finishes the job - a handful of products and one
//     square root in the even subalgebra, no linearization, valid at
//     any rotation angle including the 180-degree branch point (which
//     takes its orientation from the body plane).
//
// Failure semantics
//
// An (anti)parallel direction pair spans no plane: such input - or any
// NaN-bearing component - yields the invalid attitude (ga.NullAtt),
// which callers must test for before use. No errors are returned;
// invalidity propagates as values, per the kernel convention.
//
// Complexity: O(1). For a worked quarter-turn recovery see
// example_test.go.
package align
