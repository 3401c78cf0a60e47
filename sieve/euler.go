package sieve

// euler returns the primes in [start, end] with the linear Sieve of Euler.
//
// Algorithm Outline:
//  1. Walk i = 2 … end. An unmarked i is prime and is appended to the list.
//  2. For each known prime p, in ascending order, mark p·i while p·i ≤ end,
//     and stop after the first p that divides i. p is then the smallest
//     prime factor of p·i, so every composite is marked exactly once.
//  3. Keep the primes that are ≥ start.
//
// Unlike Eratosthenes no composite is visited twice, which gives linear
// time at the price of a value-indexed flag array plus the prime list.
//
// Complexity: O(n) time, O(n) memory.
func euler(start, end int) []int {
	primes := make([]int, 0, capacityHint(start, end))
	if end < 2 || start > end {
		return primes
	}

	composite := make([]bool, end+1)
	found := make([]int, 0, capacityHint(0, end))
	for i := 2; i <= end; i++ {
		if !composite[i] {
			found = append(found, i)
		}
		for _, p := range found {
			m := p * i
			if m > end {
				break
			}
			composite[m] = true
			if i%p == 0 {
				break
			}
		}
	}

	for _, p := range found {
		if p >= start {
			primes = append(primes, p)
		}
	}

	return primes
}
