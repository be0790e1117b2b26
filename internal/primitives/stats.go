package primitives

import "math"

// GapStatistics aggregates a non-empty GapSequence.
type GapStatistics struct {
	Count int     `json:"count" yaml:"count"`
	Sum   int     `json:"sum" yaml:"sum"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Min   int     `json:"min" yaml:"min"`
	Max   int     `json:"max" yaml:"max"`
	// MaxStart is the prime that opens the first gap of size Max.
	MaxStart int `json:"max_start" yaml:"max_start"`
}

// Summary is the textual digest handed to reporters.
type Summary struct {
	Limit      int           `json:"limit" yaml:"limit"`
	PrimeCount int           `json:"prime_count" yaml:"prime_count"`
	Stats      GapStatistics `json:"stats" yaml:"stats"`
}

// DensitySample pairs the empirical prime density at Limit with 1/ln(Limit).
// Only defined for Limit >= 2.
type DensitySample struct {
	Limit       int     `json:"limit" yaml:"limit"`
	PrimeCount  int     `json:"prime_count" yaml:"prime_count"`
	Empirical   float64 `json:"empirical" yaml:"empirical"`
	Theoretical float64 `json:"theoretical" yaml:"theoretical"`
}

// NewDensitySample computes both densities for a prime count at limit.
// The caller guarantees limit >= 2.
func NewDensitySample(limit, primeCount int) DensitySample {
	return DensitySample{
		Limit:       limit,
		PrimeCount:  primeCount,
		Empirical:   float64(primeCount) / float64(limit),
		Theoretical: 1 / math.Log(float64(limit)),
	}
}

// Ratio returns Empirical/Theoretical, which tends to 1 as Limit grows.
func (d DensitySample) Ratio() float64 {
	return d.Empirical / d.Theoretical
}

// RelativeError returns |Ratio()-1|.
func (d DensitySample) RelativeError() float64 {
	return math.Abs(d.Ratio() - 1)
}
