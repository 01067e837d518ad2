package robust

import "github.com/Stellacore/orinet/ga"

// MedianOf returns the median of values, partially reordering the slice
// in place (expected O(n) selection). An empty slice yields NaN. For an
// odd count the middle order statistic is returned; for an even count,
// the mean of the two middle order statistics. All values are assumed
// finite (sortable).
func MedianOf(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return ga.NullScalar()
	}

	// The largest of the smallest "half" of values.
	mid := (n - 1) / 2
	selectNth(values, mid)
	if n%2 == 1 {
		return values[mid]
	}

	// Average with the smallest of the remaining (all larger) values.
	next := values[mid+1]
	for _, v := range values[mid+2:] {
		if v < next {
			next = v
		}
	}
	return 0.5 * (values[mid] + next)
}

// selectNth partially sorts values so that values[nth] holds the value
// it would have after a full sort, smaller values before it and larger
// after. Quickselect with median-of-three pivoting.
func selectNth(values []float64, nth int) {
	lo, hi := 0, len(values)-1
	for lo < hi {
		// median-of-three pivot to stem quadratic behavior on
		// sorted or constant input
		mid := lo + (hi-lo)/2
		if values[mid] < values[lo] {
			values[mid], values[lo] = values[lo], values[mid]
		}
		if values[hi] < values[lo] {
			values[hi], values[lo] = values[lo], values[hi]
		}
		if values[hi] < values[mid] {
			values[hi], values[mid] = values[mid], values[hi]
		}
		pivot := values[mid]

		// Hoare partition
		i, j := lo-1, hi+1
		for {
			for {
				i++
				if !(values[i] < pivot) {
					break
				}
			}
			for {
				j--
				if !(pivot < values[j]) {
					break
				}
			}
			if j <= i {
				break
			}
			values[i], values[j] = values[j], values[i]
		}

		if nth <= j {
			hi = j
		} else {
			lo = j + 1
		}
	}
}
