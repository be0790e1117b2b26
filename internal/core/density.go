package core

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/comalice/primepatterns/internal/primitives"
)

// DefaultDensityLimits are the decades the density experiment samples by default.
var DefaultDensityLimits = []int{1_000, 10_000, 100_000, 1_000_000}

// RunDensityExperiment samples prime density at each limit with a default Engine.
func RunDensityExperiment(ctx context.Context, limits []int) ([]primitives.DensitySample, error) {
	return NewEngine().RunDensityExperiment(ctx, limits)
}

// RunDensityExperiment sieves each limit independently and returns one DensitySample
// per limit, in input order.
//
// All limits are validated before any sieving starts; a limit below 2 fails with
// ErrInvalidLimit. With more than one worker the limits are fanned out and the first
// error cancels the remaining work. No partial result is ever returned.
func (e *Engine) RunDensityExperiment(ctx context.Context, limits []int) ([]primitives.DensitySample, error) {
	for i, limit := range limits {
		if limit < 2 {
			return nil, fmt.Errorf("%w: limits[%d]=%d, density needs limit >= 2",
				primitives.ErrInvalidLimit, i, limit)
		}
		if limit > e.maxLimit {
			return nil, fmt.Errorf("%w: limits[%d]=%d > %d",
				primitives.ErrCapacityExceeded, i, limit, e.maxLimit)
		}
	}

	samples := make([]primitives.DensitySample, len(limits))

	if e.workers <= 1 || len(limits) < 2 {
		for i, limit := range limits {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sample, err := e.densitySample(ctx, limit)
			if err != nil {
				return nil, err
			}
			samples[i] = sample
		}
		return samples, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, limit := range limits {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sample, err := e.densitySample(gctx, limit)
			if err != nil {
				return err
			}
			// Each goroutine owns exactly one slot.
			samples[i] = sample
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return samples, nil
}

func (e *Engine) densitySample(ctx context.Context, limit int) (primitives.DensitySample, error) {
	s, err := e.Sieve(limit)
	if err != nil {
		return primitives.DensitySample{}, err
	}

	sample := primitives.NewDensitySample(limit, Count(s))

	if e.observer != nil {
		e.observer.ObserveDensity(sample)
	}
	if e.publisher != nil {
		if err := e.publisher.Publish(ctx, sample); err != nil {
			return primitives.DensitySample{}, fmt.Errorf("publish sample for limit %d: %w", limit, err)
		}
	}

	return sample, nil
}
