package track

import "github.com/Stellacore/orinet/ga"

// Vectors tracks running order statistics for vector samples,
// component by component.
type Vectors struct {
	comps [3]*Values
}

// NewVectors returns a tracker with capacity reserved for reserveSize
// samples per component.
func NewVectors(reserveSize int) *Vectors {
	return &Vectors{comps: [3]*Values{
		NewValues(reserveSize),
		NewValues(reserveSize),
		NewValues(reserveSize),
	}}
}

// Size returns the number of inserted samples.
func (v *Vectors) Size() int { return v.comps[0].Size() }

// Insert incorporates value into the collection.
func (v *Vectors) Insert(value ga.Vector) {
	v.comps[0].Insert(value.X)
	v.comps[1].Insert(value.Y)
	v.comps[2].Insert(value.Z)
}

// Median returns the vector of component medians (invalid if empty).
func (v *Vectors) Median() ga.Vector {
	return ga.Vector{
		X: v.comps[0].Median(),
		Y: v.comps[1].Median(),
		Z: v.comps[2].Median(),
	}
}

// MedianPrev returns the vector of component order statistics flanking
// the median from below (invalid for fewer than two samples).
func (v *Vectors) MedianPrev() ga.Vector {
	return ga.Vector{
		X: v.comps[0].MedianPrev(),
		Y: v.comps[1].MedianPrev(),
		Z: v.comps[2].MedianPrev(),
	}
}

// MedianNext returns the vector of component order statistics flanking
// the median from above (invalid for fewer than two samples).
func (v *Vectors) MedianNext() ga.Vector {
	return ga.Vector{
		X: v.comps[0].MedianNext(),
		Y: v.comps[1].MedianNext(),
		Z: v.comps[2].MedianNext(),
	}
}
