// Package random generates pseudo-random rigid-body transforms for
// simulation and testing: Gaussian-perturbed "measurements" around an
// expected transform, and uniformly distributed "blunder" transforms
// spanning the whole parameter range.
//
// The two populations model real observation streams: most samples
// scatter tightly about the truth (PerturbedTransform), a few carry no
// information at all (UniformTransform, angles wrapped to the
// principal half range). NoisyTransforms concatenates the two, and
// NoiseModel bundles the parameters the trajectory and measurement
// simulators consume. SigmaMagForSigmaLocAng estimates the hexad
// difference scale implied by given component deviations, for sizing
// test tolerances.
//
// Deviates come from gonum's stat/distuv distributions driven by
// math/rand/v2 PCG sources. Every call site owns its own source,
// seeded at a fixed constant, so generated sequences are reproducible
// run to run; callers wanting independent streams use their own
// distributions. The package-level generators carry module-private
// state and are not safe for concurrent use.
package random
