package sieve_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/primes/sieve"
)

// benchmarkGenerate runs alg over [0, end] b.N times.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkGenerate(b *testing.B, alg sieve.Algorithm, end int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := alg.Generate(0, end); err != nil {
			b.Fatalf("%s failed: %v", alg, err)
		}
	}
}

// BenchmarkSieves compares the sieves on growing bounds.
func BenchmarkSieves(b *testing.B) {
	for _, end := range []int{1_000, 100_000, 1_000_000} {
		for _, alg := range sieve.Algorithms() {
			if alg == sieve.Brute {
				continue
			}
			b.Run(fmt.Sprintf("%s/%d", alg, end), func(b *testing.B) {
				benchmarkGenerate(b, alg, end)
			})
		}
	}
}

// BenchmarkBruteForce stays on small bounds; it is quadratic.
func BenchmarkBruteForce(b *testing.B) {
	for _, end := range []int{1_000, 10_000} {
		b.Run(fmt.Sprint(end), func(b *testing.B) {
			benchmarkGenerate(b, sieve.Brute, end)
		})
	}
}
