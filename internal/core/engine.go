// Package core provides the computation tier of the prime analysis engine:
// the sieve, the prime extractor, the gap analyzer and the density experiment runner.
// Dependencies: internal/primitives, golang.org/x/sync (density fan-out only).
// Collaborators (reporting, metrics, publishing) are declared here as interfaces and
// implemented in the adapter tiers; the core never renders, logs or writes files.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/comalice/primepatterns/internal/primitives"
)

// Pluggable component interfaces.

// Reporter receives the summary of a finished gap analysis.
type Reporter interface {
	Report(ctx context.Context, summary primitives.Summary) error
}

// Observer receives measurements from the engine. Implementations must be safe for
// concurrent use when the engine runs with more than one worker.
type Observer interface {
	ObserveSieve(limit int, elapsed time.Duration)
	ObserveAnalysis(summary primitives.Summary)
	ObserveDensity(sample primitives.DensitySample)
}

// SamplePublisher receives each density sample as soon as it is computed.
type SamplePublisher interface {
	Publish(ctx context.Context, sample primitives.DensitySample) error
}

// DefaultMaxLimit bounds the classification at 1 GiB. Larger limits fail with
// ErrCapacityExceeded instead of running the process out of memory.
const DefaultMaxLimit = 1 << 30

// Option applies configuration to Engine via functional options pattern.
type Option func(*Engine)

// Engine runs the sieve pipeline with optional collaborators attached.
// An Engine holds no state between calls and is safe for concurrent use.
type Engine struct {
	maxLimit int
	workers  int
	summary  bool
	// Pluggable components (nil = disabled)
	reporter  Reporter
	observer  Observer
	publisher SamplePublisher
}

// NewEngine creates an Engine with the default capacity ceiling and a single worker.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxLimit: DefaultMaxLimit,
		workers:  1,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// MaxLimit returns the capacity ceiling of this engine.
func (e *Engine) MaxLimit() int {
	return e.maxLimit
}

// Sieve classifies every integer in [0, limit].
func (e *Engine) Sieve(limit int) (*primitives.PrimeSieve, error) {
	start := time.Now()
	s, err := sieve(limit, e.maxLimit)
	if err != nil {
		return nil, err
	}
	if e.observer != nil {
		e.observer.ObserveSieve(limit, time.Since(start))
	}
	return s, nil
}

// Primes returns every prime <= limit in ascending order.
func (e *Engine) Primes(limit int) (primitives.PrimeSequence, error) {
	s, err := e.Sieve(limit)
	if err != nil {
		return nil, err
	}
	return Primes(s), nil
}

// Analyze runs sieve → extract → gap analysis for one limit. When summary reporting is
// enabled the Reporter receives the result before Analyze returns.
func (e *Engine) Analyze(ctx context.Context, limit int) (primitives.GapAnalysis, error) {
	primes, err := e.Primes(limit)
	if err != nil {
		return primitives.GapAnalysis{}, err
	}

	gaps, stats, err := AnalyzeGaps(primes)
	if err != nil {
		return primitives.GapAnalysis{}, fmt.Errorf("limit %d: %w", limit, err)
	}

	analysis := primitives.GapAnalysis{
		Limit:  limit,
		Primes: primes,
		Gaps:   gaps,
		Stats:  stats,
	}

	if e.observer != nil {
		e.observer.ObserveAnalysis(analysis.Summary())
	}
	if e.summary && e.reporter != nil {
		if err := e.reporter.Report(ctx, analysis.Summary()); err != nil {
			return primitives.GapAnalysis{}, fmt.Errorf("report summary: %w", err)
		}
	}

	return analysis, nil
}
