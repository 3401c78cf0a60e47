// Package sieve generates the primes of an inclusive integer range with five
// interchangeable algorithms that share one contract.
//
// What:
//
//   - Brute:        trial division by every d in [2, x-1]; the slow baseline
//     other algorithms are cross-checked against.
//   - Eratosthenes: odd-only flag array, multiples of each surviving p ≤ √end
//     are cleared starting at p².
//   - Euler:        linear sieve; every composite is cleared exactly once, by
//     its smallest prime factor.
//   - Sundaram:     clears indices i + j + 2ij, surviving m map to 2m+1.
//   - Atkin:        flips flags by quadratic-form residues mod 12, then
//     clears multiples of squares of the survivors.
//
// Contract:
//
//   - Both bounds are inclusive: the result holds every prime p with
//     start ≤ p ≤ end, ascending and without duplicates.
//   - start > end is legal and yields an empty (non-nil) slice.
//   - A negative bound yields an error wrapping ErrInvalidRange, and an end
//     above MaxEnd on a non-empty range one wrapping ErrRangeTooLarge, before
//     any work is done.
//   - Every call allocates its own candidate set; nothing is cached, so calls
//     may run concurrently without coordination.
//
// Complexity:
//
//   - Brute:        O(n²/ln n) worst case, O(1) extra memory
//   - Eratosthenes: O(n log log n) time, O(n/2) memory
//   - Euler:        O(n) time, O(n) memory
//   - Sundaram:     O(n log n) time, O(n/2) memory
//   - Atkin:        O(n) time, O(n) memory
//
// Usage:
//
//	primes, err := sieve.GeneratePrimes(2, 20, "eratosthenes")
//	if err != nil {
//		// errors.Is(err, sieve.ErrInvalidRange)
//	}
//	fmt.Println(primes) // [2 3 5 7 11 13 17 19]
//
// Unknown algorithm names resolve to Default (Atkin) rather than failing;
// use ParseAlgorithm when the caller needs to know.
package sieve
