// Package track provides online order-statistics accumulators that
// can report an exact running median - and the two flanking order
// statistics - after every insertion.
//
// What & Why
//
//   - Why streaming medians?
//     Orientation-network edges accumulate repeat observations one at
//     a time, and the fused value must be available after every
//     insert (a live edge weight, not a batch result). The trackers
//     keep their data sorted so the median and its neighbors are
//     index lookups.
//
//   - Why exact, memory-O(n) trackers?
//     The flanking values MedianPrev/MedianNext are what make a
//     spread-based quality estimate possible at every step; sketching
//     or bucketing approximations cannot provide them exactly. Each
//     insert costs an O(log n) search plus an O(n) worst-case shift -
//     deliberate, and cheap at the bundle sizes networks see.
//
// Four trackers build on each other:
//
//   - Values - scalars in a sorted slice. NewValues(reserve)
//     preallocates so inserts do not reallocate.
//
//   - Vectors - three independent Values over x/y/z components.
//
//   - Attitudes - each inserted attitude transforms the fixed probe
//     directions e1 and e2; the two image points are tracked
//     component-wise, and the median attitude is reconstructed by
//     aligning the probe pair onto the median image pair
//     (align.AttitudeFromDirPairs). Tracking images rather than angle
//     parameters keeps the median meaningful at any rotation size.
//
//   - Transforms - a Vectors for the offset plus an Attitudes for the
//     rotation. MedianErrorEstimate(normalize) reports the hexad
//     spread between the flanking order statistics: NaN below two
//     samples, the full flanking spread for even counts, half of it
//     for odd counts (where the flanks straddle the median).
//
// Median conventions follow the middle-order rule throughout: for odd
// n the element at index n/2 of the sorted data; for even n the mean
// of the elements at n/2-1 and n/2. Empty trackers yield NaN (or
// invalid composites); flanking values require at least two samples.
//
// For the running-median sequence in action see example_test.go.
package track
