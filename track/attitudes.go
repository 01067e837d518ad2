package track

import (
	"github.com/Stellacore/orinet/align"
	"github.com/Stellacore/orinet/ga"
)

// refDirPair is the fixed probe pair whose images every inserted
// attitude contributes to the trackers.
var refDirPair = align.DirPair{A: ga.E1, B: ga.E2}

// Attitudes tracks running order statistics for attitude samples.
//
// Each inserted attitude transforms the fixed probe directions e1 and
// e2; the two image points are tracked component-wise. The median
// attitude is the one aligning the probe pair onto the pair of median
// image points.
type Attitudes struct {
	intoA *Vectors
	intoB *Vectors
}

// NewAttitudes returns a tracker with capacity reserved for
// reserveSize samples.
func NewAttitudes(reserveSize int) *Attitudes {
	return &Attitudes{
		intoA: NewVectors(reserveSize),
		intoB: NewVectors(reserveSize),
	}
}

// Size returns the number of inserted samples.
func (a *Attitudes) Size() int { return a.intoA.Size() }

// Insert incorporates value into the collection.
func (a *Attitudes) Insert(value ga.Attitude) {
	a.intoA.Insert(value.Apply(refDirPair.A))
	a.intoB.Insert(value.Apply(refDirPair.B))
}

// Median returns the attitude aligning the probe pair onto the median
// image pair (invalid if empty).
func (a *Attitudes) Median() ga.Attitude {
	bodDirPair := align.DirPair{A: a.intoA.Median(), B: a.intoB.Median()}
	return align.AttitudeFromDirPairs(refDirPair, bodDirPair)
}

// MedianPrev returns the attitude built from the image order
// statistics flanking the medians from below (invalid for fewer than
// two samples).
func (a *Attitudes) MedianPrev() ga.Attitude {
	bodDirPair := align.DirPair{A: a.intoA.MedianPrev(), B: a.intoB.MedianPrev()}
	return align.AttitudeFromDirPairs(refDirPair, bodDirPair)
}

// MedianNext returns the attitude built from the image order
// statistics flanking the medians from above (invalid for fewer than
// two samples).
func (a *Attitudes) MedianNext() ga.Attitude {
	bodDirPair := align.DirPair{A: a.intoA.MedianNext(), B: a.intoB.MedianNext()}
	return align.AttitudeFromDirPairs(refDirPair, bodDirPair)
}
