// Package narserr centralizes the sentinel errors raised across the
// reasoner's recoverable failure kinds.
package narserr

import "errors"

// Sentinel errors for common cases.
var (
	ErrParseFailure  = errors.New("narsese: parse failure")
	ErrEmptyInput    = errors.New("narsese: empty input")
	ErrOutOfRange    = errors.New("shortfloat: value out of [0,1] range")
	ErrMalformedRule = errors.New("rule table: malformed line")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
