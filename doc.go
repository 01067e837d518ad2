// Package orinet solves the rigid-body orientation network problem:
// given many noisy, partially redundant, and occasionally blunderous
// measurements of the relative pose (position + orientation) between
// pairs of rigid frames ("stations"), compute a single, globally
// consistent pose for every station in a shared reference frame.
//
// Typical use is photogrammetric "setup + backsight" adjustment and
// SLAM-style landmark mapping, where the input is a stream of pairwise
// relative transforms with an unknown outlier rate.
//
// The work is organized under subpackages:
//
//	ga/      — 3D geometric-algebra kernel: Vector, BiVector, Spinor,
//	           Attitude, Transform (bound onto gonum quat/r3)
//	align/   — attitude recovery from a pair of reference/body directions
//	compare/ — rotation-aware "hexad" difference metric between transforms
//	robust/  — median primitive and robust transform estimators
//	track/   — streaming order-statistics trackers (scalar, vector,
//	           attitude, transform medians with flanking values)
//	random/  — deterministic noise deviates for perturbed/blunder poses
//	sim/     — station trajectory and backsight observation simulation
//	network/ — the pose network: station frames, weighted pose edges,
//	           minimum spanning tree extraction, and breadth-first
//	           propagation of an anchor pose to every reachable frame
//
// Data flows measurements → robust fusion (track, robust, align,
// compare) → network edges → spanning tree → propagated absolute poses.
//
// The library is single-threaded and synchronous: no operation blocks
// or suspends, and no mutable state is exposed. The random and sim
// packages keep module-private generators shared by all their calls.
// Callers wanting parallelism run independent network.Geometry
// instances, which share nothing.
package orinet
