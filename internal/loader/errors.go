// Package loader reads Kiva warehouse maps and planner result files, with
// deterministic fallbacks when either is missing or unreadable.
package loader

import "errors"

var (
	// ErrResourceMissing reports that an input file does not exist.
	ErrResourceMissing = errors.New("resource missing")
	// ErrMalformed reports an input that could not be parsed.
	ErrMalformed = errors.New("malformed input")
)
