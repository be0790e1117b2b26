package core

import (
	"fmt"
	"math"

	"github.com/comalice/primepatterns/internal/primitives"
)

// AnalyzeGaps derives the consecutive differences of primes and their statistics.
//
// gap[i] = primes[i+1] - primes[i] for i in [0, len(primes)-2]. No entry is produced
// before the first prime, so primes[0] + sum(gaps) == primes[len(primes)-1].
// Fewer than two primes yields ErrEmptyGapSequence.
func AnalyzeGaps(primes primitives.PrimeSequence) (primitives.GapSequence, primitives.GapStatistics, error) {
	if len(primes) < 2 {
		return nil, primitives.GapStatistics{}, fmt.Errorf("%w: need at least 2 primes, got %d",
			primitives.ErrEmptyGapSequence, len(primes))
	}

	gaps := make(primitives.GapSequence, len(primes)-1)
	stats := primitives.GapStatistics{
		Count: len(gaps),
		Min:   math.MaxInt,
	}

	for i := range gaps {
		g := primes[i+1] - primes[i]
		if g <= 0 {
			return nil, primitives.GapStatistics{}, fmt.Errorf("%w: primes[%d]=%d, primes[%d]=%d",
				primitives.ErrUnorderedPrimes, i, primes[i], i+1, primes[i+1])
		}
		gaps[i] = g
		stats.Sum += g
		if g > stats.Max {
			stats.Max = g
			stats.MaxStart = primes[i]
		}
		if g < stats.Min {
			stats.Min = g
		}
	}
	stats.Mean = float64(stats.Sum) / float64(stats.Count)

	return gaps, stats, nil
}
