// Package testutil provides reference data and recording collaborators shared by
// the engine, adapter and benchmark tests.
package testutil

// PiTable holds trusted values of the prime-counting function π(n).
var PiTable = map[int]int{
	0:         0,
	1:         0,
	2:         1,
	3:         2,
	10:        4,
	30:        10,
	100:       25,
	1_000:     168,
	10_000:    1_229,
	100_000:   9_592,
	1_000_000: 78_498,
}

// MaxGapTable holds the largest gap between consecutive primes <= n and the prime
// that opens it (first occurrence).
var MaxGapTable = map[int]struct{ Gap, Start int }{
	10:    {2, 3},
	30:    {6, 23},
	100:   {8, 89},
	1_000: {20, 887},
}

// IsPrimeTrialDivision reports whether n is prime by trial division.
func IsPrimeTrialDivision(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// TrialDivisionPrimes lists every prime <= limit without using a sieve.
func TrialDivisionPrimes(limit int) []int {
	var out []int
	for n := 2; n <= limit; n++ {
		if IsPrimeTrialDivision(n) {
			out = append(out, n)
		}
	}
	return out
}
