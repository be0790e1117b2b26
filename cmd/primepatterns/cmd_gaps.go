package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/extensibility"
	"github.com/comalice/primepatterns/internal/production"
)

var (
	gapsLimit     int
	gapsBins      int
	gapsHistogram bool
	gapsPoints    bool
)

// gapsCmd analyzes the gaps between consecutive primes
var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Summarize the gaps between consecutive primes up to a limit",
	Long: `Sieves the primes up to --limit and derives gap[i] = p[i+1] - p[i].

Text output prints the prime count, mean gap and max gap, optionally followed by a
histogram. JSON/YAML output emits a full report with histogram and gap frequencies.

Example:
  primepatterns gaps --limit 1000000 --histogram
  primepatterns gaps --limit 100 --format json --points`,
	Args: cobra.NoArgs,
	RunE: runGaps,
}

func init() {
	gapsCmd.Flags().IntVarP(&gapsLimit, "limit", "n", 0, "Upper bound (default from config)")
	gapsCmd.Flags().IntVar(&gapsBins, "bins", 0, "Histogram bin count (default from config)")
	gapsCmd.Flags().BoolVar(&gapsHistogram, "histogram", false, "Render the gap histogram (text format)")
	gapsCmd.Flags().BoolVar(&gapsPoints, "points", false, "Include gap-vs-prime points (json/yaml format)")
}

func runGaps(cmd *cobra.Command, args []string) error {
	limit := cfg.Limit
	if cmd.Flags().Changed("limit") {
		limit = gapsLimit
	}
	bins := cfg.Histogram.Bins
	if cmd.Flags().Changed("bins") {
		bins = gapsBins
	}
	out := cmd.OutOrStdout()

	reporters := extensibility.MultiReporter{extensibility.NewZapReporter(logger)}
	if format == production.FormatText {
		reporters = append(reporters, extensibility.NewTextReporter(out))
		heading(out, fmt.Sprintf("Prime gaps up to %s", comma(limit)))
	}

	engine := core.NewEngine(append(cfg.EngineOptions(),
		core.WithReporter(extensibility.NewLoggingReporter(reporters, logger)),
	)...)

	analysis, err := engine.Analyze(cmd.Context(), limit)
	if err != nil {
		return err
	}
	logger.Debug("gap analysis finished",
		zap.Int("limit", limit),
		zap.Int("primes", len(analysis.Primes)))

	if format != production.FormatText {
		report, err := production.NewGapReport(analysis, production.GapReportOptions{
			Bins:          bins,
			IncludePoints: gapsPoints,
		})
		if err != nil {
			return err
		}
		return production.Export(out, format, report)
	}

	note(out, fmt.Sprintf("Largest gap opens at %s", comma(analysis.Stats.MaxStart)))

	if gapsHistogram {
		h, err := production.NewHistogram(analysis.Gaps, bins)
		if err != nil {
			return err
		}
		heading(out, fmt.Sprintf("Gap histogram (%d bins)", bins))
		fmt.Fprint(out, (&production.TextVisualizer{}).RenderHistogram(h))
	}
	return nil
}
