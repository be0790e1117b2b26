package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/comalice/primepatterns/internal/primitives"
)

// RecordingReporter stores every summary it receives. Err, when set, is returned
// from Report.
type RecordingReporter struct {
	mu        sync.Mutex
	summaries []primitives.Summary
	Err       error
}

func (r *RecordingReporter) Report(ctx context.Context, summary primitives.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, summary)
	return r.Err
}

// Summaries returns a copy of the recorded summaries.
func (r *RecordingReporter) Summaries() []primitives.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]primitives.Summary(nil), r.summaries...)
}

// RecordingObserver counts engine measurements. Safe for concurrent use.
type RecordingObserver struct {
	mu        sync.Mutex
	Sieves    []int
	Analyses  []primitives.Summary
	Densities []primitives.DensitySample
}

func (o *RecordingObserver) ObserveSieve(limit int, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Sieves = append(o.Sieves, limit)
}

func (o *RecordingObserver) ObserveAnalysis(summary primitives.Summary) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Analyses = append(o.Analyses, summary)
}

func (o *RecordingObserver) ObserveDensity(sample primitives.DensitySample) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Densities = append(o.Densities, sample)
}

// SieveCount returns how many sieve runs were observed.
func (o *RecordingObserver) SieveCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.Sieves)
}

// FailingPublisher rejects every sample with Err.
type FailingPublisher struct {
	Err error
}

func (p FailingPublisher) Publish(ctx context.Context, sample primitives.DensitySample) error {
	return p.Err
}
