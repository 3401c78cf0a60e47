package sieve

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Algorithm identifies one of the five prime generators.
// The zero value is Brute; use Default for the recommended choice.
//
// Name fallback happens once, in Resolve. A value outside the defined
// constants is never redirected: Func returns nil for it and Generate
// returns ErrUnknownAlgorithm.
type Algorithm int

const (
	// Brute is trial division without a √x cutoff.
	Brute Algorithm = iota
	// Eratosthenes is the odd-only Sieve of Eratosthenes.
	Eratosthenes
	// Euler is the linear Sieve of Euler.
	Euler
	// Sundaram is the Sieve of Sundaram.
	Sundaram
	// Atkin is the Sieve of Atkin.
	Atkin
)

// Default is the algorithm used when a name is empty or unknown.
const Default = Atkin

// Func is the shared capability of every algorithm: the primes in the
// inclusive range [start, end], for bounds already validated.
type Func func(start, end int) []int

// entry binds an Algorithm to its identifier, description and generator.
type entry struct {
	name string
	desc string
	fn   Func
}

// registry is indexed by Algorithm; order matches the const block.
var registry = [...]entry{
	Brute:        {name: "brute", desc: "Brute Force", fn: bruteForce},
	Eratosthenes: {name: "eratosthenes", desc: "Sieve of Eratosthenes", fn: eratosthenes},
	Euler:        {name: "euler", desc: "Sieve of Euler", fn: euler},
	Sundaram:     {name: "sundaram", desc: "Sieve of Sundaram", fn: sundaram},
	Atkin:        {name: "atkin", desc: "Sieve of Atkin", fn: atkin},
}

// Algorithms returns all algorithms from slowest to fastest.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registry))
	for i := range registry {
		out[i] = Algorithm(i)
	}

	return out
}

// Valid reports whether a names one of the five algorithms.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < len(registry)
}

// String returns the lower-case identifier accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "unknown"
	}

	return registry[a].name
}

// Description returns a human-readable name such as "Sieve of Atkin".
func (a Algorithm) Description() string {
	if !a.Valid() {
		return "Unknown"
	}

	return registry[a].desc
}

// Func returns the raw generator for a, or nil when a is not Valid.
func (a Algorithm) Func() Func {
	if !a.Valid() {
		return nil
	}

	return registry[a].fn
}

// Generate validates the range and returns the primes in [start, end].
//
// Errors:
//   - ErrUnknownAlgorithm if a is not Valid.
//   - ErrInvalidRange if start or end is negative.
//   - ErrRangeTooLarge if start ≤ end and end > MaxEnd.
//
// start > end yields an empty slice.
func (a Algorithm) Generate(start, end int) ([]int, error) {
	if !a.Valid() {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "value %d", int(a))
	}
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}
	if start > end {
		return []int{}, nil
	}

	return a.Func()(start, end), nil
}

// ParseAlgorithm maps a case-insensitive identifier to its Algorithm.
// ok is false for unknown names.
func ParseAlgorithm(name string) (a Algorithm, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, e := range registry {
		if e.name == name {
			return Algorithm(i), true
		}
	}

	return Default, false
}

// Resolve is ParseAlgorithm without the ok flag: unknown names fall back
// to Default.
func Resolve(name string) Algorithm {
	a, _ := ParseAlgorithm(name)

	return a
}

// GeneratePrimes returns the primes in [start, end] using the algorithm
// named by algorithm. Unknown names silently resolve to Default.
//
// Errors:
//   - ErrInvalidRange if start or end is negative.
//   - ErrRangeTooLarge if start ≤ end and end > MaxEnd.
func GeneratePrimes(start, end int, algorithm string) ([]int, error) {
	return Resolve(algorithm).Generate(start, end)
}
