package measure

import "github.com/cockroachdb/errors"

var (
	// ErrNoAlgorithms is returned by Compare when the resolved algorithm
	// list is empty.
	ErrNoAlgorithms = errors.New("measure: no algorithms to compare")

	// ErrMismatch is returned by Comparison.Err when two successful runs
	// produced different sequences.
	ErrMismatch = errors.New("measure: algorithms disagree")
)
