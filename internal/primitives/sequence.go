package primitives

// PrimeSequence is a strictly increasing run of primes.
type PrimeSequence []int

// First returns the smallest prime, or 0 for an empty sequence.
func (p PrimeSequence) First() int {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// Last returns the largest prime, or 0 for an empty sequence.
func (p PrimeSequence) Last() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// GapSequence holds differences between consecutive primes:
// gap[i] = primes[i+1] - primes[i]. There is no entry before the first prime.
type GapSequence []int

// Sum returns the total of all gaps.
func (g GapSequence) Sum() int {
	total := 0
	for _, v := range g {
		total += v
	}
	return total
}

// GapAnalysis bundles the output of the sieve → extract → gap pipeline for one limit.
type GapAnalysis struct {
	Limit  int           `json:"limit" yaml:"limit"`
	Primes PrimeSequence `json:"primes" yaml:"primes"`
	Gaps   GapSequence   `json:"gaps" yaml:"gaps"`
	Stats  GapStatistics `json:"stats" yaml:"stats"`
}

// Summary returns the reportable digest of the analysis.
func (a GapAnalysis) Summary() Summary {
	return Summary{
		Limit:      a.Limit,
		PrimeCount: len(a.Primes),
		Stats:      a.Stats,
	}
}
