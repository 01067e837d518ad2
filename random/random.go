package random

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Stellacore/orinet/ga"
)

// LimLoc bounds blunder translations: components span +/- this limit.
const LimLoc = 10.

// LimAng bounds blunder rotation angles: components span +/- this
// limit (the principal half range).
const LimAng = math.Pi

// MinMax is an inclusive parameter range.
type MinMax struct {
	Min, Max float64
}

// FullLocRange returns the default blunder translation range.
func FullLocRange() MinMax { return MinMax{Min: -LimLoc, Max: LimLoc} }

// FullAngRange returns the default blunder angle range.
func FullAngRange() MinMax { return MinMax{Min: -LimAng, Max: LimAng} }

// NoiseModel bundles the measurement and blunder parameters consumed by
// trajectory and measurement simulators.
type NoiseModel struct {
	// SigmaLoc is the standard deviation of each offset component.
	SigmaLoc float64

	// SigmaAng is the standard deviation of each angle component.
	SigmaAng float64

	// ProbErr is the probability that any one observation is a blunder.
	ProbErr float64

	// LocMinMax spans the blunder offset components.
	LocMinMax MinMax

	// AngMinMax spans the blunder angle components.
	AngMinMax MinMax
}

// module-private generators, one per call site, fixed seeds
var (
	perturbSrc = rand.NewPCG(31035893, 31035893)
	uniformSrc = rand.NewPCG(74844020, 74844020)
	dirSrc     = rand.NewPCG(40183477, 40183477)
)

// SigmaMagForSigmaLocAng estimates the standard deviation of hexad
// difference magnitudes between two transforms whose offset components
// carry deviation sigmaLoc and whose angle components carry sigmaAng.
// Offset error maps directly onto the probes, angle error maps through
// the unit probe length, and the two combine rmse style.
func SigmaMagForSigmaLocAng(sigmaLoc, sigmaAng float64) float64 {
	return math.Sqrt(3.*sigmaLoc*sigmaLoc + 3.*sigmaAng*sigmaAng)
}

// PerturbedTransform returns a transform with normally distributed
// perturbations, independent per component, around the given mean
// offset and mean physical angle.
func PerturbedTransform(meanLoc ga.Vector, meanAng ga.BiVector, sigmaLoc, sigmaAng float64) ga.Transform {
	distLoc := distuv.Normal{Mu: 0, Sigma: sigmaLoc, Src: perturbSrc}
	distAng := distuv.Normal{Mu: 0, Sigma: sigmaAng, Src: perturbSrc}
	return ga.Transform{
		Loc: ga.Vector{
			X: meanLoc.X + distLoc.Rand(),
			Y: meanLoc.Y + distLoc.Rand(),
			Z: meanLoc.Z + distLoc.Rand(),
		},
		Att: ga.AttFromPhysAngle(ga.BiVector{
			X23: meanAng.X23 + distAng.Rand(),
			X31: meanAng.X31 + distAng.Rand(),
			X12: meanAng.X12 + distAng.Rand(),
		}),
	}
}

// UniformTransform returns a transform with uniformly distributed
// parameter components: offsets across locMinMax and angles across
// angMinMax, wrapped into the principal half range.
func UniformTransform(locMinMax, angMinMax MinMax) ga.Transform {
	distLoc := distuv.Uniform{Min: locMinMax.Min, Max: locMinMax.Max, Src: uniformSrc}
	distAng := distuv.Uniform{Min: angMinMax.Min, Max: angMinMax.Max, Src: uniformSrc}
	return ga.Transform{
		Loc: ga.Vector{
			X: distLoc.Rand(),
			Y: distLoc.Rand(),
			Z: distLoc.Rand(),
		},
		Att: ga.AttFromPhysAngle(ga.BiVector{
			X23: wrapAngle(distAng.Rand()),
			X31: wrapAngle(distAng.Rand()),
			X12: wrapAngle(distAng.Rand()),
		}),
	}
}

// wrapAngle folds a into (-pi, pi].
func wrapAngle(a float64) float64 {
	w := math.Remainder(a, 2.*math.Pi)
	if w <= -math.Pi {
		w += 2. * math.Pi
	}
	return w
}

// DirectionVector returns a uniformly distributed unit direction.
func DirectionVector() ga.Vector {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: dirSrc}
	for {
		v := ga.Vector{X: dist.Rand(), Y: dist.Rand(), Z: dist.Rand()}
		if mag := r3.Norm(v); 1e-6 < mag {
			return v.Scale(1 / mag)
		}
	}
}

// NoisyTransforms simulates observation data for an expected transform:
// numMea measurements near expXform with Gaussian component noise,
// followed by numErr blunders drawn uniformly from the allowed
// parameter ranges.
func NoisyTransforms(
	expXform ga.Transform,
	numMea, numErr int,
	sigmaLoc, sigmaAng float64,
	locMinMax, angMinMax MinMax,
) []ga.Transform {
	xforms := make([]ga.Transform, 0, numMea+numErr)

	expLoc := expXform.Loc
	expAng := expXform.Att.PhysAngle()

	// typical measurements, Gaussian noise about expectation
	for nn := 0; nn < numMea; nn++ {
		xforms = append(xforms, PerturbedTransform(expLoc, expAng, sigmaLoc, sigmaAng))
	}

	// blunderous measurements, uniform across the parameter space
	for nn := 0; nn < numErr; nn++ {
		xforms = append(xforms, UniformTransform(locMinMax, angMinMax))
	}

	return xforms
}
