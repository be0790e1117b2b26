// Package extensibility provides the summary reporters plugged into core.Engine.
package extensibility

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/primitives"
)

// TextReporter writes the human-readable summary: prime count, mean gap to two
// decimals, max gap.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report writes the summary as three lines.
func (r *TextReporter) Report(ctx context.Context, summary primitives.Summary) error {
	_, err := fmt.Fprint(r.w, FormatSummary(summary))
	return err
}

// FormatSummary renders the summary the way TextReporter prints it.
func FormatSummary(summary primitives.Summary) string {
	return fmt.Sprintf("Total primes: %d\nMean gap: %.2f\nMax gap: %d\n",
		summary.PrimeCount, summary.Stats.Mean, summary.Stats.Max)
}

// ZapReporter logs the summary as structured fields.
type ZapReporter struct {
	logger *zap.Logger
}

// NewZapReporter creates a ZapReporter. A nil logger is replaced by a no-op logger.
func NewZapReporter(logger *zap.Logger) *ZapReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapReporter{logger: logger}
}

func (r *ZapReporter) Report(ctx context.Context, summary primitives.Summary) error {
	r.logger.Info("gap summary",
		zap.Int("limit", summary.Limit),
		zap.Int("prime_count", summary.PrimeCount),
		zap.Int("gap_count", summary.Stats.Count),
		zap.Float64("mean_gap", summary.Stats.Mean),
		zap.Int("min_gap", summary.Stats.Min),
		zap.Int("max_gap", summary.Stats.Max),
		zap.Int("max_gap_start", summary.Stats.MaxStart),
	)
	return nil
}

// LoggingReporter wraps a Reporter and adds logging around delivery.
type LoggingReporter struct {
	inner  core.Reporter
	logger *zap.Logger
}

// NewLoggingReporter creates a new LoggingReporter wrapping the given inner reporter.
func NewLoggingReporter(inner core.Reporter, logger *zap.Logger) *LoggingReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingReporter{inner: inner, logger: logger}
}

// Report logs before and after delegating to the inner reporter.
func (r *LoggingReporter) Report(ctx context.Context, summary primitives.Summary) error {
	r.logger.Debug("delivering summary", zap.Int("limit", summary.Limit))
	start := time.Now()
	err := r.inner.Report(ctx, summary)
	if err != nil {
		r.logger.Error("summary delivery failed",
			zap.Int("limit", summary.Limit),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return err
	}
	r.logger.Debug("summary delivered",
		zap.Int("limit", summary.Limit),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// MultiReporter delivers the summary to every reporter and joins their errors.
type MultiReporter []core.Reporter

func (m MultiReporter) Report(ctx context.Context, summary primitives.Summary) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Report(ctx, summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
