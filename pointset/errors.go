// Package pointset: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors MUST
// return these sentinels and tests MUST check them via errors.Is. No
// constructor panics on user-triggered error conditions; panics are
// reserved for programmer errors in accessors (out-of-range At).

package pointset

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid:
	// rows <= 0, cols <= 0, or a nested input with no rows or empty rows.
	ErrBadShape = errors.New("pointset: invalid shape")

	// ErrLengthMismatch is returned when the supplied data does not cover
	// the declared shape: a flat slice whose length differs from rows*cols
	// (including an empty slice), or a ragged nested input.
	ErrLengthMismatch = errors.New("pointset: data length does not match rows*cols")
)
