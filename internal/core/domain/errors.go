package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadTimestamp indicates a thought timestamp could not be parsed.
	ErrBadTimestamp = errors.New("bad timestamp")

	// ErrMissingField indicates a required thought field is absent.
	ErrMissingField = errors.New("missing field")

	// ErrMalformedInput indicates the analyzer's input file does not have
	// the expected structural shape. The analyzer has no per-record
	// recovery, so this aborts the run.
	ErrMalformedInput = errors.New("malformed input")
)
