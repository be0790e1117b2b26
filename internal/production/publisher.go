package production

import (
	"context"
	"time"

	"github.com/comalice/primepatterns/internal/primitives"
)

// PublishedSample bundles a density sample with the time it was produced.
type PublishedSample struct {
	Sample     primitives.DensitySample
	ProducedAt time.Time
}

// ChannelPublisher forwards density samples to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- PublishedSample
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- PublishedSample) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, sample primitives.DensitySample) error {
	select {
	case p.ch <- PublishedSample{Sample: sample, ProducedAt: time.Now()}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

// Close closes the output channel. Publish must not be called afterwards.
func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
