package sieve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primes/sieve"
)

func TestValidateRange(t *testing.T) {
	assert.NoError(t, sieve.ValidateRange(0, 0))
	assert.NoError(t, sieve.ValidateRange(10, 2), "start > end is not an error")
	assert.ErrorIs(t, sieve.ValidateRange(-1, 5), sieve.ErrInvalidRange)
	assert.ErrorIs(t, sieve.ValidateRange(1, -5), sieve.ErrInvalidRange)

	err := sieve.ValidateRange(-3, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start=-3 end=4")
}

func TestNth(t *testing.T) {
	primes, err := sieve.GeneratePrimes(2, 100, "atkin")
	require.NoError(t, err)

	p, err := sieve.Nth(primes, 5)
	require.NoError(t, err)
	assert.Equal(t, 13, p, "zero-based: 2,3,5,7,11,13")

	p, err = sieve.Nth(primes, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, p)

	p, err = sieve.Nth(primes, len(primes)-1)
	require.NoError(t, err)
	assert.Equal(t, 97, p)

	_, err = sieve.Nth(primes, len(primes))
	assert.ErrorIs(t, err, sieve.ErrIndexOutOfRange)
	_, err = sieve.Nth(primes, -1)
	assert.ErrorIs(t, err, sieve.ErrIndexOutOfRange)
	_, err = sieve.Nth(nil, 0)
	assert.ErrorIs(t, err, sieve.ErrIndexOutOfRange)
}

func TestNth_OverBound(t *testing.T) {
	primes, err := sieve.Eratosthenes.Generate(2, sieve.NthBound)
	require.NoError(t, err)
	require.Len(t, primes, 78498)

	p, err := sieve.Nth(primes, 78497)
	require.NoError(t, err)
	assert.Equal(t, 999983, p, "largest prime below one million")

	_, err = sieve.Nth(primes, 78498)
	assert.ErrorIs(t, err, sieve.ErrIndexOutOfRange)
}

func TestIsqrt(t *testing.T) {
	for n := 0; n <= 10000; n++ {
		r := sieve.ExportedIsqrt(n)
		assert.LessOrEqual(t, r*r, n)
		assert.Greater(t, (r+1)*(r+1), n)
	}
	big := 1 << 52
	assert.Equal(t, 1<<26, sieve.ExportedIsqrt(big))
	assert.Equal(t, 1<<26-1, sieve.ExportedIsqrt(big-1))
}

func TestIsPrimeTrial(t *testing.T) {
	for _, x := range []int{-7, 0, 1, 4, 9, 15, 91} {
		assert.False(t, sieve.ExportedIsPrimeTrial(x), "%d", x)
	}
	for _, x := range []int{2, 3, 5, 97, 7919} {
		assert.True(t, sieve.ExportedIsPrimeTrial(x), "%d", x)
	}
}

func TestCapacityHint(t *testing.T) {
	assert.Zero(t, sieve.ExportedCapacityHint(10, 5))
	assert.Zero(t, sieve.ExportedCapacityHint(0, 1))
	assert.GreaterOrEqual(t, sieve.ExportedCapacityHint(0, 1000000), 78498)
}

func TestValidateRange_MaxEnd(t *testing.T) {
	assert.NoError(t, sieve.ValidateRange(0, sieve.MaxEnd))
	assert.ErrorIs(t, sieve.ValidateRange(0, sieve.MaxEnd+1), sieve.ErrRangeTooLarge)
	assert.ErrorIs(t, sieve.ValidateRange(0, math.MaxInt), sieve.ErrRangeTooLarge)
	assert.NoError(t, sieve.ValidateRange(math.MaxInt, math.MaxInt-1), "empty ranges are never too large")
}

// TestGenerate_HugeBounds requires every algorithm to return an error, not
// panic or spin, at the top of the int range.
func TestGenerate_HugeBounds(t *testing.T) {
	for _, alg := range sieve.Algorithms() {
		assert.NotPanics(t, func() {
			got, err := alg.Generate(0, math.MaxInt)
			assert.ErrorIs(t, err, sieve.ErrRangeTooLarge, "%s", alg)
			assert.Nil(t, got)

			got, err = alg.Generate(math.MaxInt, math.MaxInt-1)
			assert.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

// TestBruteForce_EndAtMaxInt calls the raw generator where x+1 would wrap.
// MaxInt and MaxInt-1 have small factors (7 and 2), so trial division
// finishes at once.
func TestBruteForce_EndAtMaxInt(t *testing.T) {
	fn := sieve.Brute.Func()
	assert.Empty(t, fn(math.MaxInt-1, math.MaxInt))
	assert.Equal(t, []int{2, 3}, fn(0, 3))
}

func TestIsqrt_NoOverflow(t *testing.T) {
	assert.Equal(t, 3037000499, sieve.ExportedIsqrt(math.MaxInt))
	assert.Equal(t, 3037000499, sieve.ExportedIsqrt(3037000499*3037000499))
	assert.Equal(t, 3037000498, sieve.ExportedIsqrt(3037000499*3037000499-1))
}

func TestCapacityHint_Clamped(t *testing.T) {
	assert.NotPanics(t, func() { _ = make([]int, 0, sieve.ExportedCapacityHint(0, math.MaxInt)) })
	assert.LessOrEqual(t, sieve.ExportedCapacityHint(0, math.MaxInt), 1<<20)
	assert.LessOrEqual(t, sieve.ExportedCapacityHint(10, 12), 3, "never wider than the range")
	assert.Equal(t, 1, sieve.ExportedCapacityHint(7, 7))
}
