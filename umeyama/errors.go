// Package umeyama: sentinel error set.
// Estimation failure is an expected outcome of degenerate geometry, not a
// fault: callers MUST check ErrNoSolution with errors.Is and decide their
// own fallback. No function in this package panics on user input.

package umeyama

import "errors"

var (
	// ErrNoSolution is returned when the alignment is ill-defined: the
	// cross-covariance matrix has rank 0 (for example, all points of a set
	// coincide), or the SVD backend cannot factor it. Deterministic inputs
	// produce deterministic outcomes, so retrying the same call cannot
	// succeed.
	ErrNoSolution = errors.New("umeyama: no solution, covariance is rank deficient or not factorizable")

	// ErrDimensionMismatch indicates that src and dst do not share the same
	// R×C shape, or that a transform passed to Apply does not match the
	// point dimensionality.
	ErrDimensionMismatch = errors.New("umeyama: dimension mismatch")

	// ErrEmptyPointSet indicates an input with zero rows or zero columns.
	ErrEmptyPointSet = errors.New("umeyama: empty point set")
)
