package interfaces

import "errors"

// Sentinel errors shared between repositories and use cases for the two
// conditional-write primitives the store provides.
var (
	// ErrVersionMismatch: an invoice write conditioned on row_version found
	// a different version; nothing was written.
	ErrVersionMismatch = errors.New("invoice version mismatch")

	// ErrTokenUsed: the conditional "mark used" found the token already
	// consumed. Exactly one of two racing requests observes success.
	ErrTokenUsed = errors.New("token already used")

	// ErrStaleStatus: a status update conditioned on the expected current
	// status found something else; the caller lost a race.
	ErrStaleStatus = errors.New("document status changed concurrently")
)
