package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Stellacore/orinet/align"
	"github.com/Stellacore/orinet/ga"
	"github.com/Stellacore/orinet/random"
)

// NdxPair associates two stations in From/Into order.
type NdxPair struct {
	From, Into int
}

// module-private generators, one per call site, fixed seeds
var (
	shufSrc  = rand.New(rand.NewPCG(55342463, 55342463))
	perturbW = rand.New(rand.NewPCG(23155577, 23155577))
)

// DirectionPair returns a random pair of unit directions whose
// separation angle lies within minMaxAngleMag, suitable as alignment
// input (never (anti)parallel).
func DirectionPair(minMaxAngleMag random.MinMax) align.DirPair {
	for {
		aDir := random.DirectionVector()
		bDir := random.DirectionVector()

		angleMag := ga.VecProduct(aDir, bDir).Log().B.Mag()
		if minMaxAngleMag.Min < angleMag && angleMag < minMaxAngleMag.Max {
			return align.DirPair{A: aDir, B: bDir}
		}
	}
}

// BodyDirectionPair returns a noisy body-frame observation of
// refDirPair: the pair is perturbed within its own plane (the degree
// of freedom the alignment criterion averages away) and carried
// through attBodWrtRef.
func BodyDirectionPair(refDirPair align.DirPair, attBodWrtRef ga.Attitude) align.DirPair {
	nu := (1. + 63.*perturbW.Float64()) / 256.
	wp := 1. + nu
	wn := 1. - nu

	// perturbed directions remain coplanar with the reference pair
	aTmp := r3.Unit(r3.Add(r3.Scale(0.5*wp, refDirPair.A), r3.Scale(0.5*wn, refDirPair.B)))
	bTmp := r3.Unit(r3.Add(r3.Scale(0.5*wn, refDirPair.A), r3.Scale(0.5*wp, refDirPair.B)))

	return align.DirPair{
		A: attBodWrtRef.Apply(aTmp),
		B: attBodWrtRef.Apply(bTmp),
	}
}

// SequentialStations returns numStas station poses spaced 10 units
// apart along e1 with identity attitudes.
func SequentialStations(numStas int) []ga.Transform {
	stas := make([]ga.Transform, 0, numStas)
	loc := ga.Vector{}
	for nn := 0; nn < numStas; nn++ {
		stas = append(stas, ga.Transform{Loc: loc, Att: ga.IdentityAtt()})
		loc = loc.Add(ga.E1.Scale(10))
	}
	return stas
}

// RandomStations returns numStas station poses with uniformly
// distributed parameters, offsets within locMinMax.
func RandomStations(numStas int, locMinMax random.MinMax) []ga.Transform {
	stas := make([]ga.Transform, 0, numStas)
	for nn := 0; nn < numStas; nn++ {
		stas = append(stas, random.UniformTransform(locMinMax, random.FullAngRange()))
	}
	return stas
}

// BacksightTransforms simulates observation bundles for a station
// sequence: each station sights up to numBacksight randomly chosen
// earlier stations, producing numMea noisy measurements plus numErr
// blunders of the expected relative transform Into-with-respect-to-
// From. Bundles are keyed by the station index pair.
func BacksightTransforms(
	expStas []ga.Transform,
	numBacksight, numMea, numErr int,
	model random.NoiseModel,
) map[NdxPair][]ga.Transform {
	pairXforms := make(map[NdxPair][]ga.Transform)

	staNdxs := make([]int, len(expStas))
	for nn := range staNdxs {
		staNdxs[nn] = nn
	}

	for currSta := range expStas {
		expCurrWrtRef := expStas[currSta]

		// connect with a random selection of previous stations
		shufSrc.Shuffle(currSta, func(i, j int) {
			staNdxs[i], staNdxs[j] = staNdxs[j], staNdxs[i]
		})
		nbMax := min(currSta, numBacksight)
		for backSta := 0; backSta < nbMax; backSta++ {
			fromNdx := staNdxs[backSta]

			// expected relative setup transformation
			expBackWrtRef := expStas[fromNdx]
			expCurrWrtBack := expCurrWrtRef.Mul(expBackWrtRef.Inverse())

			obsXforms := random.NoisyTransforms(
				expCurrWrtBack, numMea, numErr,
				model.SigmaLoc, model.SigmaAng,
				model.LocMinMax, model.AngMinMax,
			)
			pairXforms[NdxPair{From: fromNdx, Into: currSta}] = obsXforms
		}
	}

	return pairXforms
}
