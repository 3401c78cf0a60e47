package sieve

// eratosthenes returns the primes in [start, end] with the Sieve of
// Eratosthenes over odd candidates.
//
// Algorithm Outline:
//  1. composite[i] stands for the odd value 2i+1; even values are never stored.
//  2. For every odd p ≤ ⌊√end⌋ still unmarked, mark p², p²+2p, p²+4p, … ≤ end.
//     Smaller odd multiples were already marked by a smaller prime factor,
//     and even multiples are not candidates.
//  3. Emit 2 when it lies in range, then every unmarked odd in
//     [max(start, 3), end].
//
// Complexity: O(n log log n) time, O(n/2) memory.
func eratosthenes(start, end int) []int {
	primes := make([]int, 0, capacityHint(start, end))
	if end < 2 || start > end {
		return primes
	}

	composite := make([]bool, end/2+1)
	limit := isqrt(end)
	for p := 3; p <= limit; p += 2 {
		if composite[p/2] {
			continue
		}
		for m := p * p; m <= end; m += 2 * p {
			composite[m/2] = true
		}
	}

	if start <= 2 {
		primes = append(primes, 2)
	}
	first := start
	if first < 3 {
		first = 3
	}
	if first%2 == 0 {
		first++
	}
	for v := first; v <= end; v += 2 {
		if !composite[v/2] {
			primes = append(primes, v)
		}
	}

	return primes
}
