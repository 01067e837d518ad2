package track

import (
	"sort"

	"github.com/Stellacore/orinet/ga"
)

// Values tracks running order statistics for scalar samples.
//
// The implementation holds a sorted copy of all inserted data, so
// construction should reserve at least enough space for the
// anticipated number of samples to avoid reallocation during insert.
type Values struct {
	values []float64
}

// NewValues returns a tracker with capacity reserved for reserveSize
// samples.
func NewValues(reserveSize int) *Values {
	return &Values{values: make([]float64, 0, reserveSize)}
}

// Size returns the number of inserted samples.
func (v *Values) Size() int { return len(v.values) }

// Insert incorporates value into the collection, keeping sorted order.
func (v *Values) Insert(value float64) {
	at := sort.SearchFloat64s(v.values, value)
	v.values = append(v.values, 0)
	copy(v.values[at+1:], v.values[at:])
	v.values[at] = value
}

// Median returns the running median: NaN if empty, the middle element
// for an odd count, and the mean of the two middle elements for an
// even count.
func (v *Values) Median() float64 {
	numElem := len(v.values)
	if numElem == 0 {
		return ga.NullScalar()
	}
	half := numElem / 2
	if numElem%2 == 1 {
		return v.values[half]
	}
	return 0.5 * (v.values[half-1] + v.values[half])
}

// MedianPrev returns the order statistic flanking the median from
// below: the element before the middle for an odd count, the lower of
// the middle pair for an even count. NaN for fewer than two samples.
func (v *Values) MedianPrev() float64 {
	numElem := len(v.values)
	if numElem < 2 {
		return ga.NullScalar()
	}
	// same index whether the count is odd or even
	return v.values[numElem/2-1]
}

// MedianNext returns the order statistic flanking the median from
// above: the element after the middle for an odd count, the upper of
// the middle pair for an even count. NaN for fewer than two samples.
func (v *Values) MedianNext() float64 {
	numElem := len(v.values)
	if numElem < 2 {
		return ga.NullScalar()
	}
	half := numElem / 2
	if numElem%2 == 1 {
		return v.values[half+1]
	}
	return v.values[half]
}
