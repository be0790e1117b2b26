package extensibility

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/primitives"
	"github.com/comalice/primepatterns/testutil"
)

func tenSummary() primitives.Summary {
	return primitives.Summary{
		Limit:      10,
		PrimeCount: 4,
		Stats:      primitives.GapStatistics{Count: 3, Sum: 5, Mean: 5.0 / 3, Min: 1, Max: 2, MaxStart: 3},
	}
}

func TestTextReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	if err := r.Report(context.Background(), tenSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Total primes: 4\nMean gap: 1.67\nMax gap: 2\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestZapReporter_Report(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	r := NewZapReporter(zap.New(obsCore))

	if err := r.Report(context.Background(), tenSummary()); err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("gap summary").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["prime_count"] != int64(4) {
		t.Errorf("prime_count = %v", fields["prime_count"])
	}
	if fields["max_gap"] != int64(2) {
		t.Errorf("max_gap = %v", fields["max_gap"])
	}
}

func TestLoggingReporter(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	inner := &testutil.RecordingReporter{}
	r := NewLoggingReporter(inner, zap.New(obsCore))

	if err := r.Report(context.Background(), tenSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inner.Summaries()) != 1 {
		t.Error("inner reporter not called")
	}
	if logs.FilterMessage("summary delivered").Len() != 1 {
		t.Error("missing delivery log")
	}
}

func TestLoggingReporter_Error(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	boom := errors.New("boom")
	r := NewLoggingReporter(&testutil.RecordingReporter{Err: boom}, zap.New(obsCore))

	if err := r.Report(context.Background(), tenSummary()); !errors.Is(err, boom) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if logs.FilterMessage("summary delivery failed").Len() != 1 {
		t.Error("missing failure log")
	}
}

func TestMultiReporter(t *testing.T) {
	a := &testutil.RecordingReporter{}
	boom := errors.New("boom")
	b := &testutil.RecordingReporter{Err: boom}
	m := MultiReporter{a, nil, b}

	err := m.Report(context.Background(), tenSummary())
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if len(a.Summaries()) != 1 || len(b.Summaries()) != 1 {
		t.Error("every reporter must receive the summary")
	}
}

func TestEngineWithTextReporter(t *testing.T) {
	var buf bytes.Buffer
	e := core.NewEngine(
		core.WithReporter(NewLoggingReporter(NewTextReporter(&buf), nil)),
		core.WithSummary(true),
	)

	if _, err := e.Analyze(context.Background(), 30); err != nil {
		t.Fatal(err)
	}

	want := "Total primes: 10\nMean gap: 3.00\nMax gap: 6\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
