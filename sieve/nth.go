package sieve

import "github.com/cockroachdb/errors"

// NthBound is the upper bound a caller sieves up to when asking for the nth
// prime instead of a range.
const NthBound = 1_000_000

// Nth returns primes[n], treating n as a zero-based position in the
// ascending sequence. It never clamps: an n outside the sequence returns an
// error wrapping ErrIndexOutOfRange.
func Nth(primes []int, n int) (int, error) {
	if n < 0 || n >= len(primes) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, %d primes available", n, len(primes))
	}

	return primes[n], nil
}
