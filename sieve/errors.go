package sieve

import "github.com/cockroachdb/errors"

// Sentinel errors for range validation and nth lookup.
// Call sites wrap them with the offending values; match with errors.Is.
var (
	// ErrInvalidRange is returned when start or end is negative.
	ErrInvalidRange = errors.New("sieve: start and end must be non-negative")

	// ErrRangeTooLarge is returned when end exceeds MaxEnd on a non-empty
	// range.
	ErrRangeTooLarge = errors.New("sieve: end exceeds MaxEnd")

	// ErrUnknownAlgorithm is returned by Algorithm.Generate for values
	// outside the five defined constants.
	ErrUnknownAlgorithm = errors.New("sieve: unknown algorithm")

	// ErrIndexOutOfRange is returned by Nth when the requested position is
	// outside the generated sequence.
	ErrIndexOutOfRange = errors.New("sieve: prime index out of range")
)
