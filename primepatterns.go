// Package primepatterns sieves primes up to a limit, derives the gaps between
// consecutive primes, and compares empirical prime density with 1/ln(n).
//
// The functions here are pure: every call builds fresh values and keeps no state.
// Rendering, reporting and metrics are attached through Engine options.
//
//	primes, _ := primepatterns.Primes(10)          // [2 3 5 7]
//	gaps, stats, _ := primepatterns.AnalyzeGaps(primes)
//	// gaps = [1 2 2], stats.Mean ≈ 1.67, stats.Max = 2
package primepatterns

import (
	"context"
	"iter"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/primitives"
)

type (
	PrimeSieve    = primitives.PrimeSieve
	PrimeSequence = primitives.PrimeSequence
	GapSequence   = primitives.GapSequence
	GapStatistics = primitives.GapStatistics
	GapAnalysis   = primitives.GapAnalysis
	DensitySample = primitives.DensitySample
	Summary       = primitives.Summary

	Engine          = core.Engine
	Option          = core.Option
	Reporter        = core.Reporter
	Observer        = core.Observer
	SamplePublisher = core.SamplePublisher
)

var (
	ErrInvalidLimit      = primitives.ErrInvalidLimit
	ErrCapacityExceeded  = primitives.ErrCapacityExceeded
	ErrEmptyGapSequence  = primitives.ErrEmptyGapSequence
	ErrUnorderedPrimes   = primitives.ErrUnorderedPrimes
	DefaultDensityLimits = core.DefaultDensityLimits
)

const DefaultMaxLimit = core.DefaultMaxLimit

var (
	WithMaxLimit  = core.WithMaxLimit
	WithWorkers   = core.WithWorkers
	WithReporter  = core.WithReporter
	WithSummary   = core.WithSummary
	WithObserver  = core.WithObserver
	WithPublisher = core.WithPublisher
)

// NewEngine creates an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	return core.NewEngine(opts...)
}

// Sieve classifies every integer in [0, limit].
func Sieve(limit int) (*PrimeSieve, error) {
	return core.Sieve(limit)
}

// Extract lazily yields the primes of s in ascending order.
func Extract(s *PrimeSieve) iter.Seq[int] {
	return core.Extract(s)
}

// Primes returns every prime <= limit.
func Primes(limit int) (PrimeSequence, error) {
	s, err := core.Sieve(limit)
	if err != nil {
		return nil, err
	}
	return core.Primes(s), nil
}

// AnalyzeGaps returns the consecutive differences of primes and their statistics.
func AnalyzeGaps(primes PrimeSequence) (GapSequence, GapStatistics, error) {
	return core.AnalyzeGaps(primes)
}

// RunDensityExperiment returns one DensitySample per limit, in input order.
func RunDensityExperiment(ctx context.Context, limits []int) ([]DensitySample, error) {
	return core.RunDensityExperiment(ctx, limits)
}
