// Package arrayerr holds the error kinds reported while building and evaluating arrays.
// Callers match them with errors.Is; call sites wrap them with context.
package arrayerr

import "errors"

var (
	// ErrInvalidConfiguration reports a setting that can never be built.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotSupported reports a recognised option that has no implementation yet.
	ErrNotSupported = errors.New("not supported")

	// ErrShapeMismatch reports azimuth and elevation batches of different shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInternalInvariant reports a construction bug, never a user error.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
