// Package primes is a small laboratory for prime generation: five sieve
// strategies behind one contract, a timer, and a harness that runs them side
// by side.
//
// 🚀 What is in here?
//
//	• Brute force trial division, the baseline everything is checked against
//	• Sieve of Eratosthenes over odd candidates
//	• Sieve of Euler (linear, each composite cleared once)
//	• Sieve of Sundaram
//	• Sieve of Atkin
//
// ✨ Contract:
//
//   - every algorithm returns the primes of the inclusive range [start, end], ascending
//   - cross-algorithm agreement is the correctness oracle
//   - calls share no state and may run concurrently
//
// Layout:
//
//	sieve/      the five algorithms, range validation, algorithm registry
//	measure/    scoped timer and concurrent cross-algorithm comparison
//	report/     plain-text rendering of results
//	config/     flags, PRIMES_* environment and config file
//	cmd/primes/ the command line front end
//
// Quick start:
//
//	primes, err := sieve.GeneratePrimes(2, 20, "atkin")
//	// [2 3 5 7 11 13 17 19]
//
//	go install github.com/katalvlaran/primes/cmd/primes@latest
//	primes --compare --end 1000000
package primes
