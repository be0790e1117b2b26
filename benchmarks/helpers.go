// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/primitives"
)

// Decades returns 10^lo .. 10^hi inclusive.
func Decades(lo, hi int) []int {
	var out []int
	n := 1
	for i := 0; i <= hi; i++ {
		if i >= lo {
			out = append(out, n)
		}
		n *= 10
	}
	return out
}

// LimitName formats a limit for sub-benchmark names.
func LimitName(limit int) string {
	return fmt.Sprintf("limit=%d", limit)
}

// MustPrimes sieves limit and panics on error; limits in benchmarks are constants.
func MustPrimes(limit int) primitives.PrimeSequence {
	s, err := core.Sieve(limit)
	if err != nil {
		panic(err)
	}
	return core.Primes(s)
}
