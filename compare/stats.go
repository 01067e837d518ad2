package compare

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Stellacore/orinet/ga"
	"github.com/Stellacore/orinet/robust"
)

// Stats summarizes hexad distances between a collection of transforms
// and a common reference.
type Stats struct {
	NumSamps int
	Min      float64
	Median   float64
	Mean     float64
	Max      float64
}

// String formats the summary on one line.
func (s Stats) String() string {
	return fmt.Sprintf("n: %d min: %.9f med: %.9f ave: %.9f max: %.9f",
		s.NumSamps, s.Min, s.Median, s.Mean, s.Max)
}

// DifferenceStats computes the MaxMagDiff of every transform in xforms
// against refXform and summarizes the resulting magnitudes. An empty
// collection yields a zero-count Stats with NaN statistics.
func DifferenceStats(xforms []ga.Transform, refXform ga.Transform, normalize bool) Stats {
	stats := Stats{
		Min:    ga.NullScalar(),
		Median: ga.NullScalar(),
		Mean:   ga.NullScalar(),
		Max:    ga.NullScalar(),
	}
	if len(xforms) == 0 {
		return stats
	}

	mags := make([]float64, 0, len(xforms))
	for _, xfm := range xforms {
		mags = append(mags, MaxMagDiff(xfm, refXform, normalize))
	}

	stats.NumSamps = len(mags)
	stats.Min = floats.Min(mags)
	stats.Max = floats.Max(mags)
	stats.Mean = stat.Mean(mags, nil)
	stats.Median = robust.MedianOf(mags)

	return stats
}
