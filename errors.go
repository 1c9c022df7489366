package subsys

import "errors"

var (
	// ErrInvalidArgument is returned when an argument is outside of its physical domain, e.g. a non-positive mass.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedInput is returned when a reading or a burn segment cannot be used as is (NaN, missing direction, duplicate name...).
	ErrMalformedInput = errors.New("malformed input")
)
