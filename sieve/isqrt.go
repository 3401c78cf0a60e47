package sieve

import (
	"math"

	"golang.org/x/exp/constraints"
)

// maxHint caps capacityHint; larger results grow by append instead.
const maxHint = 1 << 20

// isqrt returns floor(√n) for n ≥ 0, correcting the float estimate so that
// r² ≤ n < (r+1)² holds exactly. The checks divide instead of squaring, so
// they cannot overflow near the top of T.
func isqrt[T constraints.Integer](n T) T {
	if n < 2 {
		return n
	}
	r := T(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// capacityHint estimates how many primes lie in [start, end] from the prime
// number theorem, so result slices rarely regrow. The estimate only sizes
// allocations and is never used for correctness. The result never exceeds
// the width of the range or maxHint.
func capacityHint(start, end int) int {
	if end < 2 || start > end {
		return 0
	}
	pi := func(x int) float64 {
		if x < 3 {
			return float64(x)
		}
		fx := float64(x)

		return 1.25506 * fx / math.Log(fx)
	}
	est := pi(end) - pi(start) + 1
	switch {
	case est < 0:
		return 0
	case est > maxHint:
		est = maxHint
	}
	hint := int(est)
	if width := end - start; width < hint {
		hint = width + 1
	}

	return hint
}
