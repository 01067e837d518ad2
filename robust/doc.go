// Package robust fuses many noisy rigid-body transform measurements -
// including uniform-distribution blunders - into a single best
// transform.
//
// What & Why
//
//   - Why medians?
//     Measurement bundles mix Gaussian noise with occasional gross
//     blunders at an unknown rate. A mean is dragged arbitrarily far
//     by one blunder; the component-wise median ignores blunders up
//     to a breakdown point near half the samples, with no tuning
//     parameters and no iteration.
//
//   - TransformViaParameters - decomposes each transform into its six
//     parameter components (three offset, three physical-angle) and
//     synthesizes a transform from the per-component medians. Cheap,
//     but angle-space medians are not rotation covariant; recommended
//     only when all rotations are known to be small.
//
//   - TransformViaEffect - the rotation-safe estimator: the offset is
//     the component-wise median of input offsets, while the attitude
//     is recovered from the component-wise medians of the images of
//     two fixed probe directions under every input attitude
//     (alignment of the probe pair onto the median image pair).
//     Judging attitudes by their effect keeps the estimator
//     meaningful at any rotation magnitude.
//
//   - Estimate + Options - method-selection wrapper over the two, via
//     the MethodParameters / MethodEffect constants; DefaultOptions
//     picks the rotation-safe estimator. Unknown method names yield
//     ErrUnknownMethod.
//
// Guarantees (both estimators)
//
//   - empty input, or no valid input, yields the invalid transform;
//   - a single input is returned as-is;
//   - two inputs yield their element-wise mean (the even-count median
//     rule, not a special case);
//   - invalid inputs are skipped, never propagated.
//
// MedianOf supplies the underlying order statistic: in-place partial
// selection (quickselect with median-of-three pivoting) placing the
// middle order statistic - and, for even counts, averaging with the
// smallest element of the upper half. Expected O(n) time; the slice
// is reordered, not fully sorted. All values are assumed finite.
//
// For a worked blunder-rejection case see example_test.go.
package robust
