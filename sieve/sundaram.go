package sieve

// sundaram returns the primes in [start, end] with the Sieve of Sundaram.
//
// Algorithm Outline:
//  1. Let k = (end-1)/2. Index m in [1, k] stands for the odd value 2m+1.
//  2. For i = 1, 2, … mark every m = i + j + 2ij with j ≥ i, m ≤ k.
//     Written as a stride: step = 2i+1 and the first index is
//     initial = 2i(i+1), which advances by 2·(step+1) per outer iteration.
//  3. Stop once initial > k. Unmarked m yield the odd primes 2m+1; 2 is
//     added separately when in range.
//
// Complexity: O(n log n) time, O(n/2) memory.
func sundaram(start, end int) []int {
	primes := make([]int, 0, capacityHint(start, end))
	if end < 2 || start > end {
		return primes
	}

	k := (end - 1) / 2
	marked := make([]bool, k+1)
	for step, initial := 3, 4; initial <= k; step, initial = step+2, initial+2*(step+1) {
		for m := initial; m <= k; m += step {
			marked[m] = true
		}
	}

	if start <= 2 {
		primes = append(primes, 2)
	}
	// smallest m with 2m+1 ≥ start
	first := start / 2
	if first < 1 {
		first = 1
	}
	for m := first; m <= k; m++ {
		if !marked[m] {
			primes = append(primes, 2*m+1)
		}
	}

	return primes
}
