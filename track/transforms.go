package track

import (
	"github.com/Stellacore/orinet/compare"
	"github.com/Stellacore/orinet/ga"
)

// Transforms tracks running order statistics for rigid transform
// samples: a Vectors for the offsets and an Attitudes for the
// rotations.
type Transforms struct {
	locs *Vectors
	atts *Attitudes
}

// NewTransforms returns a tracker with capacity reserved for
// reserveSize samples.
func NewTransforms(reserveSize int) *Transforms {
	return &Transforms{
		locs: NewVectors(reserveSize),
		atts: NewAttitudes(reserveSize),
	}
}

// Size returns the number of inserted samples.
func (t *Transforms) Size() int { return t.locs.Size() }

// Insert incorporates value into the collection.
func (t *Transforms) Insert(value ga.Transform) {
	t.locs.Insert(value.Loc)
	t.atts.Insert(value.Att)
}

// Median returns the transform of component medians (invalid if
// empty).
func (t *Transforms) Median() ga.Transform {
	return ga.Transform{Loc: t.locs.Median(), Att: t.atts.Median()}
}

// MedianPrev returns the transform of order statistics flanking the
// medians from below (invalid for fewer than two samples).
func (t *Transforms) MedianPrev() ga.Transform {
	return ga.Transform{Loc: t.locs.MedianPrev(), Att: t.atts.MedianPrev()}
}

// MedianNext returns the transform of order statistics flanking the
// medians from above (invalid for fewer than two samples).
func (t *Transforms) MedianNext() ga.Transform {
	return ga.Transform{Loc: t.locs.MedianNext(), Att: t.atts.MedianNext()}
}

// MedianErrorEstimate reports the hexad spread between the order
// statistics flanking the running median, a scale for how well the
// median transform is determined.
//
// For fewer than two samples the estimate is NaN. For an odd count the
// flanking values straddle the median, so half their separation is
// returned; for an even count the flanking values are the adjacent
// middle pair and their full separation is returned.
func (t *Transforms) MedianErrorEstimate(normalize bool) float64 {
	numSamps := t.Size()
	if numSamps < 2 {
		return ga.NullScalar()
	}
	est := compare.MaxMagDiff(t.MedianPrev(), t.MedianNext(), normalize)
	if numSamps%2 == 1 {
		est = 0.5 * est
	}
	return est
}
