package compare_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Stellacore/orinet/compare"
	"github.com/Stellacore/orinet/ga"
)

const eps = 2.220446049250313e-16

// probe points for the brute-force check: the hexad plus the origin
var sevenProbes = []ga.Vector{
	ga.E1, ga.E1.Scale(-1),
	ga.E2, ga.E2.Scale(-1),
	ga.E3, ga.E3.Scale(-1),
	{},
}

// TestHexadIdentity verifies that the reduced-effort hexad computation
// matches a brute-force probe evaluation and that the maximum over the
// seven probes is attained on one of the six basis vectors.
func TestHexadIdentity(t *testing.T) {
	xfm1 := ga.Transform{
		Loc: ga.Vector{X: 1.5, Y: -0.3, Z: 0.8},
		Att: ga.AttFromPhysAngle(ga.BiVector{X23: 0.4, X31: -0.2, X12: 1.1}),
	}
	xfm2 := ga.Transform{
		Loc: ga.Vector{X: 1.3, Y: -0.1, Z: 1.0},
		Att: ga.AttFromPhysAngle(ga.BiVector{X23: 0.3, X31: -0.3, X12: 0.9}),
	}

	// explicit enumeration of probe differences
	maxProbe := -1.
	for _, probe := range sevenProbes {
		diff := xfm1.Apply(probe).Sub(xfm2.Apply(probe))
		maxProbe = math.Max(maxProbe, r3.Norm(diff))
	}

	gotMax := compare.MaxMagDiff(xfm1, xfm2, false)
	assert.InDelta(t, maxProbe, gotMax, 128*eps)

	// the six reduced deltas reproduce the basis-probe differences
	// (delta order pairs each basis delta sign-first: -e1, e1, ...)
	diffs := compare.HexadDeltas(xfm1, xfm2, false)
	basisProbes := []ga.Vector{
		ga.E1.Scale(-1), ga.E1,
		ga.E2.Scale(-1), ga.E2,
		ga.E3.Scale(-1), ga.E3,
	}
	for k, probe := range basisProbes {
		exp := xfm1.Apply(probe).Sub(xfm2.Apply(probe))
		assert.InDelta(t, r3.Norm(exp), r3.Norm(diffs[k]), 128*eps, "probe %d", k)
	}
}

// TestTriadDeltas checks basis-image differences for a quarter turn
// against identity.
func TestTriadDeltas(t *testing.T) {
	attA := ga.IdentityAtt()
	attB := ga.AttFromPhysAngle(ga.E12.Scale(math.Pi / 2))

	deltas := compare.TriadDeltas(attA, attB)
	// e1 -> e2 : delta (-1, 1, 0)
	assert.True(t, ga.NearlyEquals(deltas[0], ga.Vector{X: -1, Y: 1}, 1e-12))
	// e2 -> -e1 : delta (-1, -1, 0)
	assert.True(t, ga.NearlyEquals(deltas[1], ga.Vector{X: -1, Y: -1}, 1e-12))
	// e3 fixed
	assert.True(t, ga.NearlyEquals(deltas[2], ga.Vector{}, 1e-12))
}

// TestNormalizedScaling checks that normalization scales the rotation
// contribution by the mean offset magnitude.
func TestNormalizedScaling(t *testing.T) {
	// pure rotation difference: the common offset lies along e3, which
	// both rotations fix, so only the triad term contributes
	loc := ga.Vector{Z: 100}
	xfm1 := ga.Transform{Loc: loc, Att: ga.IdentityAtt()}
	xfm2 := ga.Transform{Loc: loc, Att: ga.AttFromPhysAngle(ga.E12.Scale(0.001))}

	plain := compare.MaxMagDiff(xfm1, xfm2, false)
	scaled := compare.MaxMagDiff(xfm1, xfm2, true)
	// rho = max(1, 100) amplifies the angular discrepancy
	assert.InDelta(t, 100., scaled/plain, 1e-6)

	// small offsets: rho clamps to one and both agree
	xfm3 := ga.Transform{Loc: ga.Vector{X: 0.1}, Att: xfm1.Att}
	xfm4 := ga.Transform{Loc: ga.Vector{X: 0.1}, Att: xfm2.Att}
	assert.InDelta(t,
		compare.MaxMagDiff(xfm3, xfm4, false),
		compare.MaxMagDiff(xfm3, xfm4, true), 1e-15)
}

// TestSimilarResult checks the similarity predicate and its reported
// magnitude.
func TestSimilarResult(t *testing.T) {
	xfm := ga.Transform{
		Loc: ga.Vector{X: 0.5, Y: 0.25, Z: -1},
		Att: ga.AttFromPhysAngle(ga.E23.Scale(0.2)),
	}

	same, maxMag := compare.SimilarResult(xfm, xfm, false, 1e-14)
	assert.True(t, same)
	assert.InDelta(t, 0., maxMag, 1e-15)

	other := xfm
	other.Loc = other.Loc.Add(ga.Vector{X: 0.01})
	same, maxMag = compare.SimilarResult(xfm, other, false, 1e-3)
	assert.False(t, same)
	assert.InDelta(t, 0.01, maxMag, 1e-3)

	// invalid input: never similar, NaN magnitude
	same, maxMag = compare.SimilarResult(xfm, ga.NullXform(), false, 1e6)
	assert.False(t, same)
	assert.True(t, math.IsNaN(maxMag))
}

// TestDifferenceStats checks aggregation over a small collection with
// hand-computable distances.
func TestDifferenceStats(t *testing.T) {
	ref := ga.IdentityXform()
	xfmAt := func(x float64) ga.Transform {
		return ga.Transform{Loc: ga.Vector{X: x}, Att: ga.IdentityAtt()}
	}
	xforms := []ga.Transform{xfmAt(1), xfmAt(2), xfmAt(4)}

	stats := compare.DifferenceStats(xforms, ref, false)
	require.Equal(t, 3, stats.NumSamps)
	assert.InDelta(t, 1., stats.Min, 1e-12)
	assert.InDelta(t, 2., stats.Median, 1e-12)
	assert.InDelta(t, 7./3., stats.Mean, 1e-12)
	assert.InDelta(t, 4., stats.Max, 1e-12)

	empty := compare.DifferenceStats(nil, ref, false)
	assert.Zero(t, empty.NumSamps)
	assert.True(t, math.IsNaN(empty.Median))
}
