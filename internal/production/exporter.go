package production

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/comalice/primepatterns/internal/primitives"
)

// Format selects how results are serialized for collaborators.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Export serializes v to w as JSON or YAML.
func Export(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q is not a structured export format", format)
	}
}

// GapReport is the structured output of one gap analysis.
type GapReport struct {
	RunID       string             `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
	Summary     primitives.Summary `json:"summary" yaml:"summary"`
	Histogram   Histogram          `json:"histogram" yaml:"histogram"`
	Frequencies []GapFrequency     `json:"frequencies" yaml:"frequencies"`
	Points      []Point            `json:"points,omitempty" yaml:"points,omitempty"`
}

// GapReportOptions controls what NewGapReport includes.
type GapReportOptions struct {
	// Bins is the histogram bin count. Zero means DefaultHistogramBins.
	Bins int
	// IncludePoints adds the full gap-vs-prime series.
	IncludePoints bool
}

// NewGapReport builds a GapReport for a finished analysis.
func NewGapReport(a primitives.GapAnalysis, opts GapReportOptions) (GapReport, error) {
	bins := opts.Bins
	if bins == 0 {
		bins = DefaultHistogramBins
	}

	h, err := NewHistogram(a.Gaps, bins)
	if err != nil {
		return GapReport{}, err
	}

	r := GapReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Summary:     a.Summary(),
		Histogram:   h,
		Frequencies: GapFrequencies(a.Gaps),
	}
	if opts.IncludePoints {
		points, err := GapPoints(a.Primes, a.Gaps)
		if err != nil {
			return GapReport{}, err
		}
		r.Points = points
	}
	return r, nil
}

// DensityReport is the structured output of one density experiment.
type DensityReport struct {
	RunID       string                     `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time                  `json:"generated_at" yaml:"generated_at"`
	Samples     []primitives.DensitySample `json:"samples" yaml:"samples"`
	Comparison  DensityComparison          `json:"comparison" yaml:"comparison"`
}

// NewDensityReport builds a DensityReport for a finished experiment.
func NewDensityReport(samples []primitives.DensitySample) DensityReport {
	return DensityReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Samples:     samples,
		Comparison:  NewDensityComparison(samples),
	}
}
