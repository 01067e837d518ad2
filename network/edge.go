package network

import (
	"fmt"

	"github.com/Stellacore/orinet/compare"
	"github.com/Stellacore/orinet/ga"
	"github.com/Stellacore/orinet/robust"
	"github.com/Stellacore/orinet/track"
)

// veryUncertain is the weight assigned to an edge carrying no usable
// quality estimate (a robust edge with a single sample).
const veryUncertain = 1024. * 1024.

// Edge is the closed capability set shared by all network edge
// variants. The transform is interpreted strictly per Dir: it carries
// From-frame coordinates into Into-frame coordinates, and Reversed is
// the only legal reinterpretation.
type Edge interface {
	// Dir returns the direction fixing the transform interpretation.
	Dir() EdgeDir

	// Weight returns the fit error used for spanning-tree selection
	// (NaN when no estimate exists).
	Weight() float64

	// Xform returns the Into-with-respect-to-From transform.
	Xform() ga.Transform

	// Reversed returns an instance for traversal in the opposite
	// direction: swapped keys, inverted transform, same weight.
	Reversed() Edge

	// IsValid reports whether the edge carries usable data.
	IsValid() bool

	// InfoString describes the edge, prefixed with title.
	InfoString(title string) string
}

// EdgeBase is the null placeholder edge: a direction with no
// transform and an invalid weight.
type EdgeBase struct {
	dir EdgeDir
}

// NewEdgeBase returns a placeholder edge for dir.
func NewEdgeBase(dir EdgeDir) *EdgeBase { return &EdgeBase{dir: dir} }

// Dir returns the direction fixing the transform interpretation.
func (e *EdgeBase) Dir() EdgeDir { return e.dir }

// Weight returns the invalid sentinel: a placeholder has no fit.
func (e *EdgeBase) Weight() float64 { return ga.NullScalar() }

// Xform returns the invalid transform sentinel.
func (e *EdgeBase) Xform() ga.Transform { return ga.NullXform() }

// Reversed returns a placeholder for the opposite direction.
func (e *EdgeBase) Reversed() Edge { return NewEdgeBase(e.dir.Reversed()) }

// IsValid is always false: a placeholder never carries usable data.
func (e *EdgeBase) IsValid() bool {
	return e.dir.IsValid() && e.Xform().IsValid() && ga.ScalarIsValid(e.Weight())
}

// InfoString describes the edge, prefixed with title.
func (e *EdgeBase) InfoString(title string) string {
	pre := ""
	if title != "" {
		pre = title + " "
	}
	return fmt.Sprintf("%s%s <base>", pre, e.dir.InfoString(""))
}

// EdgeOri carries one rigid-body orientation between two station
// frames together with its fit error.
type EdgeOri struct {
	dir    EdgeDir
	xform  ga.Transform
	fitErr float64
}

// NewEdgeOri returns an edge holding xform (Into with respect to From
// per dir) with fit error fitErr.
func NewEdgeOri(dir EdgeDir, xform ga.Transform, fitErr float64) *EdgeOri {
	return &EdgeOri{dir: dir, xform: xform, fitErr: fitErr}
}

// EdgeOriMedianFit returns an edge robustly fit to a collection of
// repeated transform observations (Into with respect to From per dir).
// The transform is the effect-median of the valid samples; the weight
// is the median hexad distance of the samples from the fit, or the
// veryUncertain constant when only one sample exists. No valid sample
// yields an invalid edge.
func EdgeOriMedianFit(dir EdgeDir, xforms []ga.Transform) *EdgeOri {
	fit := robust.TransformViaEffect(xforms)
	if !fit.IsValid() {
		return NewEdgeOri(dir, ga.NullXform(), ga.NullScalar())
	}

	fitErr := veryUncertain
	if 1 < len(xforms) {
		stats := compare.DifferenceStats(xforms, fit, false)
		fitErr = stats.Median
	}
	return NewEdgeOri(dir, fit, fitErr)
}

// Dir returns the direction fixing the transform interpretation.
func (e *EdgeOri) Dir() EdgeDir { return e.dir }

// Weight returns the transformation fit error.
func (e *EdgeOri) Weight() float64 { return e.fitErr }

// Xform returns the Into-with-respect-to-From transform.
func (e *EdgeOri) Xform() ga.Transform { return e.xform }

// Reversed returns the edge for traversal in the opposite direction.
func (e *EdgeOri) Reversed() Edge {
	// fit error is assumed direction independent
	return NewEdgeOri(e.dir.Reversed(), e.xform.Inverse(), e.fitErr)
}

// IsValid reports whether the edge carries usable data.
func (e *EdgeOri) IsValid() bool {
	return e.dir.IsValid() && e.xform.IsValid() && ga.ScalarIsValid(e.fitErr)
}

// InfoString describes the edge, prefixed with title.
func (e *EdgeOri) InfoString(title string) string {
	pre := ""
	if title != "" {
		pre = title + " "
	}
	return fmt.Sprintf("%s%s xform: %v fitErr: %.9f",
		pre, e.dir.InfoString(""), e.xform, e.fitErr)
}

// EdgeRobust tracks the running median over every transform
// observation fed to it; the exposed transform is the streaming
// median and the weight its flanking-spread error estimate.
type EdgeRobust struct {
	dir     EdgeDir
	tracker *track.Transforms
}

// NewEdgeRobust returns a robust edge seeded with a first observation,
// reserving tracker capacity for reserveSize samples.
func NewEdgeRobust(dir EdgeDir, xform ga.Transform, reserveSize int) *EdgeRobust {
	edge := &EdgeRobust{dir: dir, tracker: track.NewTransforms(reserveSize)}
	edge.AccumulateXform(xform)
	return edge
}

// AccumulateXform incorporates one more observation (Into with respect
// to From per Dir) into the running median. Accumulation is defined on
// the robust variant only; other variants must be replaced, not
// augmented.
func (e *EdgeRobust) AccumulateXform(xform ga.Transform) {
	e.tracker.Insert(xform)
}

// Size returns the number of accumulated observations.
func (e *EdgeRobust) Size() int { return e.tracker.Size() }

// Dir returns the direction fixing the transform interpretation.
func (e *EdgeRobust) Dir() EdgeDir { return e.dir }

// Weight returns the median error estimate over the accumulated
// samples. A single sample carries no estimate and reports the
// veryUncertain constant instead.
func (e *EdgeRobust) Weight() float64 {
	numXforms := e.tracker.Size()
	switch {
	case numXforms == 0:
		return ga.NullScalar()
	case numXforms == 1:
		return veryUncertain
	}
	return e.tracker.MedianErrorEstimate(false)
}

// Xform returns the streaming median of the accumulated observations.
func (e *EdgeRobust) Xform() ga.Transform { return e.tracker.Median() }

// Reversed returns the edge for traversal in the opposite direction.
// The running tracker is not invertible sample-by-sample; the reversed
// instance is an EdgeOri snapshot of the inverted median.
func (e *EdgeRobust) Reversed() Edge {
	return NewEdgeOri(e.dir.Reversed(), e.Xform().Inverse(), e.Weight())
}

// IsValid reports whether the edge carries usable data.
func (e *EdgeRobust) IsValid() bool {
	return e.dir.IsValid() && e.Xform().IsValid()
}

// InfoString describes the edge, prefixed with title.
func (e *EdgeRobust) InfoString(title string) string {
	pre := ""
	if title != "" {
		pre = title + " "
	}
	return fmt.Sprintf("%s%s xform: %v fitErr: %.9f trackSize: %d",
		pre, e.dir.InfoString(""), e.Xform(), e.Weight(), e.Size())
}
