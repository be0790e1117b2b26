package core

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/comalice/primepatterns/internal/primitives"
	"github.com/comalice/primepatterns/testutil"
)

func TestRunDensityExperiment_Values(t *testing.T) {
	samples, err := RunDensityExperiment(context.Background(), []int{10, 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}

	s := samples[1]
	if s.Limit != 100 || s.PrimeCount != 25 {
		t.Errorf("unexpected sample %+v", s)
	}
	if s.Empirical != 0.25 {
		t.Errorf("expected empirical 0.25, got %v", s.Empirical)
	}
	if math.Abs(s.Theoretical-1/math.Log(100)) > 1e-12 {
		t.Errorf("expected theoretical 1/ln(100), got %v", s.Theoretical)
	}
}

func TestRunDensityExperiment_InputOrder(t *testing.T) {
	limits := []int{1_000, 10, 100, 10}
	samples, err := RunDensityExperiment(context.Background(), limits)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range samples {
		if s.Limit != limits[i] {
			t.Errorf("sample %d: limit %d, want %d", i, s.Limit, limits[i])
		}
		if s.PrimeCount != testutil.PiTable[limits[i]] {
			t.Errorf("sample %d: count %d, want %d", i, s.PrimeCount, testutil.PiTable[limits[i]])
		}
	}
}

func TestRunDensityExperiment_Convergence(t *testing.T) {
	samples, err := RunDensityExperiment(context.Background(), DefaultDensityLimits)
	if err != nil {
		t.Fatal(err)
	}

	for i, s := range samples {
		if s.Ratio() <= 1 {
			t.Errorf("limit %d: expected ratio above 1, got %.4f", s.Limit, s.Ratio())
		}
		if i > 0 && s.RelativeError() >= samples[i-1].RelativeError() {
			t.Errorf("relative error did not shrink from %d to %d: %.4f >= %.4f",
				samples[i-1].Limit, s.Limit, s.RelativeError(), samples[i-1].RelativeError())
		}
	}
	first, last := samples[0], samples[len(samples)-1]
	if last.RelativeError() >= first.RelativeError()/1.5 {
		t.Errorf("expected a clear downward trend, got %.4f -> %.4f", first.RelativeError(), last.RelativeError())
	}
}

func TestRunDensityExperiment_InvalidLimit(t *testing.T) {
	obs := &testutil.RecordingObserver{}
	e := NewEngine(WithObserver(obs))

	for _, limits := range [][]int{{1}, {0}, {-5}, {100, 1}, {1_000, 10, 0}} {
		samples, err := e.RunDensityExperiment(context.Background(), limits)
		if !errors.Is(err, primitives.ErrInvalidLimit) {
			t.Errorf("%v: expected ErrInvalidLimit, got %v", limits, err)
		}
		if samples != nil {
			t.Errorf("%v: expected no partial samples, got %v", limits, samples)
		}
	}
	if obs.SieveCount() != 0 {
		t.Errorf("validation must happen before sieving, observed %d sieves", obs.SieveCount())
	}
}

func TestRunDensityExperiment_CapacityExceeded(t *testing.T) {
	e := NewEngine(WithMaxLimit(1_000))

	_, err := e.RunDensityExperiment(context.Background(), []int{100, 10_000})
	if !errors.Is(err, primitives.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestRunDensityExperiment_Empty(t *testing.T) {
	samples, err := RunDensityExperiment(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 0 {
		t.Errorf("expected no samples, got %v", samples)
	}
}

func TestRunDensityExperiment_ParallelMatchesSequential(t *testing.T) {
	limits := []int{100_000, 10, 1_000, 50_000, 2, 10_000, 30}

	seq, err := NewEngine().RunDensityExperiment(context.Background(), limits)
	if err != nil {
		t.Fatal(err)
	}
	obs := &testutil.RecordingObserver{}
	par, err := NewEngine(WithWorkers(3), WithObserver(obs)).RunDensityExperiment(context.Background(), limits)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel result differs (-seq +par):\n%s", diff)
	}
	if len(obs.Densities) != len(limits) {
		t.Errorf("expected %d observed samples, got %d", len(limits), len(obs.Densities))
	}
}

func TestRunDensityExperiment_PublisherError(t *testing.T) {
	boom := errors.New("sink closed")

	for _, workers := range []int{1, 4} {
		e := NewEngine(WithWorkers(workers), WithPublisher(testutil.FailingPublisher{Err: boom}))
		samples, err := e.RunDensityExperiment(context.Background(), []int{10, 100, 1_000})
		if !errors.Is(err, boom) {
			t.Errorf("workers=%d: expected publisher error, got %v", workers, err)
		}
		if samples != nil {
			t.Errorf("workers=%d: expected no partial samples", workers)
		}
	}
}

func TestRunDensityExperiment_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 2} {
		_, err := NewEngine(WithWorkers(workers)).RunDensityExperiment(ctx, []int{10, 100})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
	}
}
