// Package sim simulates station networks and backsight observation
// data for experimentation and testing.
//
// Stations are rigid-body poses, laid out along a line
// (SequentialStations) or scattered uniformly (RandomStations).
// Observations are relative transforms between a newly occupied
// station and previously occupied ones ("backsights"):
// BacksightTransforms connects each station to a random selection of
// its predecessors and produces a bundle of noisy measurements plus a
// configurable number of uniform blunders per pair, keyed by the
// station index pair - exactly the input shape the network package
// fuses. DirectionPair and BodyDirectionPair generate alignment
// scenarios whose in-plane perturbation the best-fit criterion
// absorbs.
//
// All randomness is deterministic: generators are module private and
// seeded at fixed constants, so a given call sequence reproduces the
// same scenario run to run.
package sim
