// Package ga provides the 3D geometric-algebra kernel used throughout
// the orientation-network library: vectors, bivectors, spinors (even
// multivectors), attitudes (unit rotors) and rigid transforms.
//
// What & Why
//
//   - What is a geometric-algebra kernel?
//     Rigid-body orientation work needs a small, closed set of
//     geometric types - directions, oriented planes, rotations, and
//     full rigid motions - together with the products that move
//     between them. G(3), the geometric algebra of 3D space, supplies
//     exactly that: vectors for directions, bivectors for oriented
//     planes (and rotation angles), and the even subalgebra for
//     rotors, with one associative product tying them together.
//
//   - Why bivectors instead of axis vectors?
//     A rotation is fundamentally "an angle within an oriented plane".
//     The bivector carries both at once: its magnitude is the angle
//     and its direction the plane with orientation. That makes
//     composition, interpolation, and the alignment constructions in
//     package align closed-form rather than case analyses on Euler
//     angles or axis conventions.
//
//   - Why rotors instead of matrices?
//     Rotors compose with one multiplication, invert by reversal,
//     expose their rotation content through a well-defined logarithm,
//     and admit a principal square root - the operation the
//     direction-pair alignment and the streaming attitude median both
//     lean on. None of these are natural on 3x3 matrices.
//
// Representation
//
//   - Vector is gonum's spatial/r3.Vec; the basis vectors E1, E2, E3
//     are package variables. Vector arithmetic (Add, Sub, Scale, Dot,
//     Cross, Norm, Unit) is gonum's.
//
//   - BiVector carries components on the basis {e23, e31, e12}. Wedge
//     builds one from two vectors, oriented turning the first toward
//     the second; Exp produces the rotor of the plane.
//
//   - Spinor is a scalar plus a bivector - the even subalgebra of
//     G(3), closed under the geometric product. Even-subalgebra
//     arithmetic (Mul, Exp, Log, Sqrt) is delegated to gonum's
//     num/quat using the component correspondence
//     {e23, e31, e12} -> {i, j, k}. Under this correspondence the
//     quaternion product realizes the reversed geometric product, so
//     Spinor.Mul swaps operands when delegating; single-argument
//     functions (exp, log, sqrt) commute with reversal and delegate
//     directly.
//
//   - Attitude stores the rotor as a unit quaternion. Apply performs
//     the rotor sandwich on a vector. The orientation convention is
//     fixed by the physical angle: a rotor built from PhysAngle
//     theta*e12 takes e1 toward e2 by theta. PhysAngle returns the
//     principal branch (magnitude within [0, pi]), resolving the
//     rotor double cover.
//
//   - Transform is the rigid motion x -> Att(x + Loc). For a
//     transform expressing frame B with respect to frame A, Apply
//     carries A coordinates into B coordinates; Mul composes with the
//     right operand acting first, and Inverse undoes the motion.
//     Under this convention the hexad comparison identity of package
//     compare is exact.
//
// Validity
//
// NaN is the designated invalid sentinel: any NaN component renders
// the whole value invalid. All operations on invalid inputs yield
// NaN-bearing results and never panic - invalidity propagates through
// arithmetic without branching, and consumers test IsValid before
// use. Null constructors (NullScalar, NullVec, NullBiv, NullSpinor,
// NullAtt, NullXform) produce fully invalid values; identity
// constructors (IdentityAtt, IdentityXform) produce the group
// identities.
//
// GoDoc Summary
//
//   - Wedge(a, b Vector) BiVector - oriented plane spanned by a and b.
//   - VecProduct(a, b Vector) Spinor - geometric product of vectors.
//   - BivProduct(a, b BiVector) Spinor - geometric product of planes.
//   - (Spinor).Mul/Sqrt/Log, (BiVector).Exp - even-subalgebra ops,
//     principal branches.
//   - AttFromPhysAngle(BiVector), (Attitude).PhysAngle - bijection
//     between an attitude and its physical angle.
//   - (Attitude).Apply/Inverse/Mul, AttFromSpinor - rotor action,
//     group structure, construction from an (unnormalized) spinor.
//   - (Transform).Apply/Inverse/Mul - rigid-motion group structure.
//
// All operations are O(1). For usage in context see the package tests
// and the example files of the consuming packages.
package ga
