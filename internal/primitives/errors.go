package primitives

import "errors"

var (
	// ErrInvalidLimit reports a negative sieve limit, or a density limit below 2.
	ErrInvalidLimit = errors.New("invalid limit")
	// ErrCapacityExceeded reports a limit whose classification would not fit the configured ceiling.
	ErrCapacityExceeded = errors.New("limit exceeds sieve capacity")
	// ErrEmptyGapSequence reports fewer than two primes, so gap statistics are undefined.
	ErrEmptyGapSequence = errors.New("empty gap sequence")
	// ErrUnorderedPrimes reports a prime sequence that is not strictly increasing.
	ErrUnorderedPrimes = errors.New("prime sequence is not strictly increasing")
	// ErrInvalidBins reports a histogram bin count below 1.
	ErrInvalidBins = errors.New("invalid histogram bin count")
)
