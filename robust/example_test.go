package robust_test

import (
	"fmt"

	"github.com/Stellacore/orinet/ga"
	"github.com/Stellacore/orinet/robust"
)

// ExampleTransformViaEffect fuses repeat observations of the same
// offset, one of them a gross blunder.
func ExampleTransformViaEffect() {
	xfmAt := func(x float64) ga.Transform {
		return ga.Transform{Loc: ga.Vector{X: x}, Att: ga.IdentityAtt()}
	}
	obs := []ga.Transform{
		xfmAt(2.01),
		xfmAt(1.99),
		xfmAt(97.5), // blunder
		xfmAt(2.00),
		xfmAt(2.02),
	}

	// sorted offsets: 1.99 2.00 2.01 2.02 97.5 - the middle order
	// statistic shrugs off the blunder
	fit := robust.TransformViaEffect(obs)
	fmt.Printf("x: %.2f\n", fit.Loc.X)

	// Output:
	// x: 2.01
}
