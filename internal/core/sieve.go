package core

import (
	"fmt"
	"iter"
	"math"

	"github.com/comalice/primepatterns/internal/primitives"
)

// Sieve classifies every integer in [0, limit] with the Sieve of Eratosthenes,
// bounded by DefaultMaxLimit.
func Sieve(limit int) (*primitives.PrimeSieve, error) {
	return sieve(limit, DefaultMaxLimit)
}

func sieve(limit, maxLimit int) (*primitives.PrimeSieve, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d is negative", primitives.ErrInvalidLimit, limit)
	}
	if limit > maxLimit {
		return nil, fmt.Errorf("%w: %d > %d", primitives.ErrCapacityExceeded, limit, maxLimit)
	}

	composite := make([]bool, limit+1)
	composite[0] = true
	if limit >= 1 {
		composite[1] = true
	}

	// Smaller multiples of i were already crossed out by smaller factors, so marking
	// starts at i*i and stops once i*i passes limit.
	for i := 2; i <= limit/i; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	return primitives.NewPrimeSieve(limit, composite), nil
}

// Extract yields the primes of s in ascending order. Each range over the result
// rescans s from 2, so the sequence can be consumed any number of times.
func Extract(s *primitives.PrimeSieve) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 2; n <= s.Limit(); n++ {
			if s.IsPrime(n) && !yield(n) {
				return
			}
		}
	}
}

// Primes collects Extract(s).
func Primes(s *primitives.PrimeSieve) primitives.PrimeSequence {
	out := make(primitives.PrimeSequence, 0, piUpperBound(s.Limit()))
	for p := range Extract(s) {
		out = append(out, p)
	}
	return out
}

// Count returns π(limit) for s without materializing the sequence.
func Count(s *primitives.PrimeSieve) int {
	n := 0
	for range Extract(s) {
		n++
	}
	return n
}

// piUpperBound is the Rosser–Schoenfeld bound π(n) < 1.25506·n/ln n, used only to size
// the output slice.
func piUpperBound(n int) int {
	if n < 2 {
		return 0
	}
	if n < 17 {
		return n / 2
	}
	return int(1.25506*float64(n)/math.Log(float64(n))) + 1
}
