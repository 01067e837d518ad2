package sim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Stellacore/orinet/align"
	"github.com/Stellacore/orinet/compare"
	"github.com/Stellacore/orinet/ga"
	"github.com/Stellacore/orinet/random"
	"github.com/Stellacore/orinet/sim"
)

// TestDirectionPairSeparation draws pairs and checks the separation
// window.
func TestDirectionPairSeparation(t *testing.T) {
	window := random.MinMax{Min: 0.1, Max: 3.0}
	for nn := 0; nn < 32; nn++ {
		pair := sim.DirectionPair(window)
		require.True(t, pair.IsValid())
		assert.InDelta(t, 1., r3.Norm(pair.A), 1e-12)
		assert.InDelta(t, 1., r3.Norm(pair.B), 1e-12)

		angleMag := ga.VecProduct(pair.A, pair.B).Log().B.Mag()
		assert.Greater(t, angleMag, window.Min)
		assert.Less(t, angleMag, window.Max)
	}
}

// TestBodyDirectionPairRecovers verifies that alignment recovers the
// attitude used to generate noisy body observations: the perturbation
// stays within the reference plane, which the best-fit criterion
// absorbs exactly.
func TestBodyDirectionPairRecovers(t *testing.T) {
	sqrtEps := math.Sqrt(2.220446049250313e-16)
	refDirPair := align.DirPair{A: ga.E1, B: r3.Unit(ga.Vector{X: 1, Y: 1})}

	for nn := 0; nn < 16; nn++ {
		attExp := ga.AttFromPhysAngle(ga.BiVector{
			X23: 0.1 * float64(nn),
			X31: -0.05 * float64(nn),
			X12: 0.4,
		})
		bodPair := sim.BodyDirectionPair(refDirPair, attExp)
		attGot := align.AttitudeFromDirPairs(refDirPair, bodPair)
		require.True(t, attGot.IsValid())

		same, maxMag := compare.SimilarAttitudes(attGot, attExp, sqrtEps)
		assert.True(t, same, "nn %d maxMag %v", nn, maxMag)
	}
}

// TestSequentialStations pins the simple station layout used by chain
// scenarios.
func TestSequentialStations(t *testing.T) {
	stas := sim.SequentialStations(4)
	require.Len(t, stas, 4)
	for k, sta := range stas {
		assert.True(t, sta.IsValid())
		assert.True(t, ga.NearlyEquals(sta.Loc, ga.E1.Scale(10*float64(k)), 1e-12), "station %d", k)
	}
}

// TestRandomStationsBounds checks count, validity, and offset bounds.
func TestRandomStationsBounds(t *testing.T) {
	locMM := random.MinMax{Min: -5, Max: 5}
	stas := sim.RandomStations(8, locMM)
	require.Len(t, stas, 8)
	for _, sta := range stas {
		require.True(t, sta.IsValid())
		for _, comp := range []float64{sta.Loc.X, sta.Loc.Y, sta.Loc.Z} {
			assert.GreaterOrEqual(t, comp, locMM.Min)
			assert.LessOrEqual(t, comp, locMM.Max)
		}
	}
}

// TestBacksightTransforms checks bundle structure: keys reference
// earlier stations, bundles carry the requested sample counts, and the
// clean samples surround the expected relative transform.
func TestBacksightTransforms(t *testing.T) {
	expStas := sim.SequentialStations(6)
	model := random.NoiseModel{
		SigmaLoc:  0.01,
		SigmaAng:  0.002,
		LocMinMax: random.MinMax{Min: -60, Max: 60},
		AngMinMax: random.FullAngRange(),
	}

	numMea, numErr := 4, 1
	pairXforms := sim.BacksightTransforms(expStas, 2, numMea, numErr, model)
	require.NotEmpty(t, pairXforms)

	for pair, xforms := range pairXforms {
		assert.Less(t, pair.From, pair.Into, "backsights reference earlier stations")
		assert.GreaterOrEqual(t, pair.From, 0)
		assert.Less(t, pair.Into, len(expStas))
		require.Len(t, xforms, numMea+numErr)

		expRel := expStas[pair.Into].Mul(expStas[pair.From].Inverse())
		for nn := 0; nn < numMea; nn++ {
			maxMag := compare.MaxMagDiff(xforms[nn], expRel, false)
			assert.Less(t, maxMag, 0.2, "pair %v sample %d", pair, nn)
		}
	}

	// every non-anchor station appears as an Into at least once
	seen := make(map[int]bool)
	for pair := range pairXforms {
		seen[pair.Into] = true
	}
	for sta := 1; sta < len(expStas); sta++ {
		assert.True(t, seen[sta], "station %d has backsights", sta)
	}
}
