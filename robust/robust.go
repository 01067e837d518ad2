package robust

import (
	"errors"

	"github.com/Stellacore/orinet/align"
	"github.com/Stellacore/orinet/ga"
)

// ErrUnknownMethod indicates an Options.Method value that names no
// estimator.
var ErrUnknownMethod = errors.New("robust: unknown estimation method")

// MethodParameters selects the parameter-median estimator.
const MethodParameters = "parameters"

// MethodEffect selects the effect-median (rotation-safe) estimator.
const MethodEffect = "effect"

// Options selects which robust estimator Estimate runs.
type Options struct {
	// Method to use: MethodParameters or MethodEffect.
	Method string
}

// DefaultOptions returns Options initialized for the rotation-safe
// effect estimator.
func DefaultOptions() Options {
	return Options{Method: MethodEffect}
}

// Estimate dispatches to the estimator named by opts.Method.
func Estimate(xforms []ga.Transform, opts Options) (ga.Transform, error) {
	switch opts.Method {
	case MethodParameters:
		return TransformViaParameters(xforms), nil
	case MethodEffect:
		return TransformViaEffect(xforms), nil
	default:
		return ga.NullXform(), ErrUnknownMethod
	}
}

// TransformViaParameters returns a transform synthesized from the
// per-component medians of the six transform parameters (three offset
// components, three physical-angle bivector components).
//
// Angle-space medians are not rotation covariant; prefer
// TransformViaEffect unless all rotations are known to be small.
//
// Invalid inputs are skipped; the result is invalid iff no valid input
// remains. A single input is returned as-is and two inputs yield their
// element-wise mean.
func TransformViaParameters(xforms []ga.Transform) ga.Transform {
	numXforms := len(xforms)
	if numXforms == 0 {
		return ga.NullXform()
	}

	comps := make([][]float64, 6)
	for k := range comps {
		comps[k] = make([]float64, 0, numXforms)
	}
	for _, xfm := range xforms {
		if !xfm.IsValid() {
			continue
		}
		pAng := xfm.Att.PhysAngle()
		comps[0] = append(comps[0], xfm.Loc.X)
		comps[1] = append(comps[1], xfm.Loc.Y)
		comps[2] = append(comps[2], xfm.Loc.Z)
		comps[3] = append(comps[3], pAng.X23)
		comps[4] = append(comps[4], pAng.X31)
		comps[5] = append(comps[5], pAng.X12)
	}
	if len(comps[0]) == 0 {
		return ga.NullXform()
	}

	return ga.Transform{
		Loc: ga.Vector{
			X: MedianOf(comps[0]),
			Y: MedianOf(comps[1]),
			Z: MedianOf(comps[2]),
		},
		Att: ga.AttFromPhysAngle(ga.BiVector{
			X23: MedianOf(comps[3]),
			X31: MedianOf(comps[4]),
			X12: MedianOf(comps[5]),
		}),
	}
}

// TransformViaEffect returns a transform robustly consistent with the
// collection, judged by the effect the transforms produce:
//
//   - the offset is the component-wise median of the input offsets;
//   - every input attitude transforms the fixed probe pair (e1, e2),
//     producing two point clouds whose component-wise medians define
//     the body direction pair;
//   - the attitude is recovered by aligning the probe pair onto the
//     median pair.
//
// Invalid inputs are skipped; the result is invalid iff no valid input
// remains. A single input is returned as-is and two inputs yield their
// element-wise mean.
func TransformViaEffect(xforms []ga.Transform) ga.Transform {
	numXforms := len(xforms)
	if numXforms == 0 {
		return ga.NullXform()
	}

	// probe pair tracked through every attitude
	refDirPair := align.DirPair{A: ga.E1, B: ga.E2}

	locs := make([][]float64, 3)
	imgAs := make([][]float64, 3)
	imgBs := make([][]float64, 3)
	for k := 0; k < 3; k++ {
		locs[k] = make([]float64, 0, numXforms)
		imgAs[k] = make([]float64, 0, numXforms)
		imgBs[k] = make([]float64, 0, numXforms)
	}

	for _, xfm := range xforms {
		if !xfm.IsValid() {
			continue
		}
		locs[0] = append(locs[0], xfm.Loc.X)
		locs[1] = append(locs[1], xfm.Loc.Y)
		locs[2] = append(locs[2], xfm.Loc.Z)

		imgA := xfm.Att.Apply(refDirPair.A)
		imgB := xfm.Att.Apply(refDirPair.B)
		imgAs[0] = append(imgAs[0], imgA.X)
		imgAs[1] = append(imgAs[1], imgA.Y)
		imgAs[2] = append(imgAs[2], imgA.Z)
		imgBs[0] = append(imgBs[0], imgB.X)
		imgBs[1] = append(imgBs[1], imgB.Y)
		imgBs[2] = append(imgBs[2], imgB.Z)
	}
	if len(locs[0]) == 0 {
		return ga.NullXform()
	}

	medianLoc := ga.Vector{
		X: MedianOf(locs[0]),
		Y: MedianOf(locs[1]),
		Z: MedianOf(locs[2]),
	}
	bodDirPair := align.DirPair{
		A: ga.Vector{X: MedianOf(imgAs[0]), Y: MedianOf(imgAs[1]), Z: MedianOf(imgAs[2])},
		B: ga.Vector{X: MedianOf(imgBs[0]), Y: MedianOf(imgBs[1]), Z: MedianOf(imgBs[2])},
	}

	return ga.Transform{
		Loc: medianLoc,
		Att: align.AttitudeFromDirPairs(refDirPair, bodDirPair),
	}
}
