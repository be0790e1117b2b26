// Tests for ChannelPublisher delivery and Engine integration.
package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/primitives"
)

func TestChannelPublisher_Delivery(t *testing.T) {
	ch := make(chan PublishedSample, 10)
	p := NewChannelPublisher(ch)

	sample := primitives.NewDensitySample(100, 25)
	require.NoError(t, p.Publish(context.Background(), sample))

	select {
	case got := <-ch:
		assert.Equal(t, sample, got.Sample)
		assert.False(t, got.ProducedAt.IsZero())
	case <-time.After(100 * time.Millisecond):
		t.Error("No sample delivered")
	}
}

func TestChannelPublisher_BackpressureDrop(t *testing.T) {
	ch := make(chan PublishedSample, 1)
	p := NewChannelPublisher(ch)
	ch <- PublishedSample{} // Fill buffer

	assert.NoError(t, p.Publish(context.Background(), primitives.NewDensitySample(10, 4)))
	assert.Len(t, ch, 1)
}

func TestChannelPublisher_EngineIntegration(t *testing.T) {
	ch := make(chan PublishedSample, 4)
	p := NewChannelPublisher(ch)
	e := core.NewEngine(core.WithPublisher(p))

	limits := []int{10, 100, 1_000}
	_, err := e.RunDensityExperiment(context.Background(), limits)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	var got []int
	for s := range ch {
		got = append(got, s.Sample.Limit)
	}
	assert.Equal(t, limits, got)
}
