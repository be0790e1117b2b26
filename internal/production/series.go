// Package production provides the adapters that sit between the engine and its
// consumers: plot series, histograms, text rendering, exporters, metrics and
// sample publishing. Nothing in here is called by the core.
package production

import (
	"fmt"
	"maps"
	"slices"

	"github.com/comalice/primepatterns/internal/primitives"
)

// DefaultHistogramBins is the historical bin count for the gap histogram.
const DefaultHistogramBins = 30

// Point is one x/y pair of the "gap vs prime" plot.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// GapPoints aligns gaps with primes for plotting. Point i is (primes[i+1], gaps[i]):
// each gap is drawn at the prime that closes it.
func GapPoints(primes primitives.PrimeSequence, gaps primitives.GapSequence) ([]Point, error) {
	if len(gaps) == 0 {
		return nil, primitives.ErrEmptyGapSequence
	}
	if len(gaps) != len(primes)-1 {
		return nil, fmt.Errorf("misaligned series: %d primes, %d gaps", len(primes), len(gaps))
	}

	points := make([]Point, len(gaps))
	for i, g := range gaps {
		points[i] = Point{X: primes[i+1], Y: g}
	}
	return points, nil
}

// Histogram is an equal-width binning of a gap sequence. Bin i covers
// [Edges[i], Edges[i+1]); the last bin is closed on the right.
type Histogram struct {
	Edges  []float64 `json:"edges" yaml:"edges"`
	Counts []int     `json:"counts" yaml:"counts"`
}

// NewHistogram bins gaps into the given number of equal-width bins spanning
// [min, max]. When every gap has the same value the range is widened to
// [v-0.5, v+0.5].
func NewHistogram(gaps primitives.GapSequence, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, fmt.Errorf("%w: %d", primitives.ErrInvalidBins, bins)
	}
	if len(gaps) == 0 {
		return Histogram{}, primitives.ErrEmptyGapSequence
	}

	lo, hi := float64(slices.Min(gaps)), float64(slices.Max(gaps))
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	h := Histogram{
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}
	for i := range bins {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	for _, g := range gaps {
		idx := int((float64(g) - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Counts[idx]++
	}

	return h, nil
}

// Total returns the number of binned values.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// GapFrequency is the number of occurrences of one gap size.
type GapFrequency struct {
	Gap   int `json:"gap" yaml:"gap"`
	Count int `json:"count" yaml:"count"`
}

// GapFrequencies counts each distinct gap size, ascending by size.
func GapFrequencies(gaps primitives.GapSequence) []GapFrequency {
	counts := make(map[int]int)
	for _, g := range gaps {
		counts[g]++
	}

	out := make([]GapFrequency, 0, len(counts))
	for _, g := range slices.Sorted(maps.Keys(counts)) {
		out = append(out, GapFrequency{Gap: g, Count: counts[g]})
	}
	return out
}

// DensityComparison holds the aligned series for the empirical vs 1/ln(n) plot.
type DensityComparison struct {
	Limits      []int     `json:"limits" yaml:"limits"`
	Empirical   []float64 `json:"empirical" yaml:"empirical"`
	Theoretical []float64 `json:"theoretical" yaml:"theoretical"`
	Ratio       []float64 `json:"ratio" yaml:"ratio"`
	LogScaleX   bool      `json:"log_scale_x" yaml:"log_scale_x"`
}

// NewDensityComparison splits samples into parallel arrays, keeping their order.
func NewDensityComparison(samples []primitives.DensitySample) DensityComparison {
	c := DensityComparison{
		Limits:      make([]int, len(samples)),
		Empirical:   make([]float64, len(samples)),
		Theoretical: make([]float64, len(samples)),
		Ratio:       make([]float64, len(samples)),
		LogScaleX:   true,
	}
	for i, s := range samples {
		c.Limits[i] = s.Limit
		c.Empirical[i] = s.Empirical
		c.Theoretical[i] = s.Theoretical
		c.Ratio[i] = s.Ratio()
	}
	return c
}
