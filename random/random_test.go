package random_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Stellacore/orinet/ga"
	"github.com/Stellacore/orinet/random"
)

// TestPerturbedTransformStaysNear draws many perturbed transforms and
// checks that parameters scatter about the means at the requested
// scale.
func TestPerturbedTransformStaysNear(t *testing.T) {
	meanLoc := ga.Vector{X: 4, Y: -2, Z: 1}
	meanAng := ga.BiVector{X23: 0.2, X31: -0.1, X12: 0.3}
	sigmaLoc := 0.015
	sigmaAng := 0.005

	numSamps := 256
	sumLoc := ga.Vector{}
	for nn := 0; nn < numSamps; nn++ {
		xfm := random.PerturbedTransform(meanLoc, meanAng, sigmaLoc, sigmaAng)
		require.True(t, xfm.IsValid())

		// every draw within a broad gate of the mean
		assert.Less(t, r3.Norm(xfm.Loc.Sub(meanLoc)), 10.*sigmaLoc*math.Sqrt(3.))
		angDiff := xfm.Att.PhysAngle().Add(meanAng.Neg())
		assert.Less(t, angDiff.Mag(), 10.*sigmaAng*math.Sqrt(3.))

		sumLoc = sumLoc.Add(xfm.Loc)
	}

	// sample mean converges on the requested mean
	aveLoc := sumLoc.Scale(1. / float64(numSamps))
	assert.Less(t, r3.Norm(aveLoc.Sub(meanLoc)), 5.*sigmaLoc/math.Sqrt(float64(numSamps))*math.Sqrt(3.))
}

// TestUniformTransformSpansRange checks range limits and angle
// wrapping.
func TestUniformTransformSpansRange(t *testing.T) {
	locMM := random.MinMax{Min: -2, Max: 2}
	angMM := random.FullAngRange()

	for nn := 0; nn < 256; nn++ {
		xfm := random.UniformTransform(locMM, angMM)
		require.True(t, xfm.IsValid())

		for _, comp := range []float64{xfm.Loc.X, xfm.Loc.Y, xfm.Loc.Z} {
			assert.GreaterOrEqual(t, comp, locMM.Min)
			assert.LessOrEqual(t, comp, locMM.Max)
		}
		// wrapped angles stay within the principal half range; the
		// recovered physical angle magnitude cannot exceed pi
		assert.LessOrEqual(t, xfm.Att.PhysAngle().Mag(), math.Pi+1e-12)
	}
}

// TestNoisyTransformsComposition checks the measurement/blunder split.
func TestNoisyTransformsComposition(t *testing.T) {
	expXform := ga.Transform{
		Loc: ga.Vector{X: 1, Y: 2, Z: 3},
		Att: ga.AttFromPhysAngle(ga.E12.Scale(0.1)),
	}

	xforms := random.NoisyTransforms(expXform, 5, 3,
		0.01, 0.001, random.FullLocRange(), random.FullAngRange())
	require.Len(t, xforms, 8)

	// leading samples hug the expectation
	for nn := 0; nn < 5; nn++ {
		assert.Less(t, r3.Norm(xforms[nn].Loc.Sub(expXform.Loc)), 0.2, "sample %d", nn)
	}
}

// TestSigmaMagEstimate pins the rmse combination rule.
func TestSigmaMagEstimate(t *testing.T) {
	got := random.SigmaMagForSigmaLocAng(0.015, 0.005)
	exp := math.Sqrt(3.*0.015*0.015 + 3.*0.005*0.005)
	assert.InDelta(t, exp, got, 1e-15)
}

// TestDirectionVectorIsUnit draws directions and checks unit length and
// loose coverage of both hemispheres.
func TestDirectionVectorIsUnit(t *testing.T) {
	numPos := 0
	for nn := 0; nn < 128; nn++ {
		dir := random.DirectionVector()
		assert.InDelta(t, 1., r3.Norm(dir), 1e-12)
		if 0 < dir.Z {
			numPos++
		}
	}
	assert.Greater(t, numPos, 16)
	assert.Less(t, numPos, 112)
}
