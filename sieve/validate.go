package sieve

import "github.com/cockroachdb/errors"

// MaxEnd is the largest accepted upper bound. The sieves keep one flag per
// candidate up to end, so this caps a single call at about 2 GiB of flags.
const MaxEnd = 1 << 31

// ValidateRange rejects negative bounds, and an end above MaxEnd when the
// range is non-empty.
// start > end passes: it denotes an empty result, not an error.
func ValidateRange(start, end int) error {
	if start < 0 || end < 0 {
		return errors.Wrapf(ErrInvalidRange, "start=%d end=%d", start, end)
	}
	if start <= end && end > MaxEnd {
		return errors.Wrapf(ErrRangeTooLarge, "end=%d max=%d", end, MaxEnd)
	}

	return nil
}
