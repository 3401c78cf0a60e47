package sieve

// bruteForce returns the primes in [start, end] by trial division.
//
// Every candidate x is divided by each d in [2, x-1] until one divides it.
// There is no √x cutoff; it is the baseline the sieves are checked against
// and belongs on small ranges only. Values below 2 are never prime.
//
// Bounds are assumed valid; use Algorithm.Generate or GeneratePrimes for
// validated entry.
//
// Complexity: O(n²/ln n) time in the worst case, O(1) extra memory.
func bruteForce(start, end int) []int {
	primes := make([]int, 0, capacityHint(start, end))
	if start > end {
		return primes
	}
	// x never steps past end, so end == math.MaxInt cannot wrap around.
	for x := start; ; x++ {
		if isPrimeTrial(x) {
			primes = append(primes, x)
		}
		if x == end {
			break
		}
	}

	return primes
}

// isPrimeTrial reports whether x is prime by dividing by every d < x.
func isPrimeTrial(x int) bool {
	if x < 2 {
		return false
	}
	for d := 2; d < x; d++ {
		if x%d == 0 {
			return false
		}
	}

	return true
}
