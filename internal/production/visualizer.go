package production

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/comalice/primepatterns/internal/primitives"
)

// TextVisualizer renders adapter output as plain text for terminals.
type TextVisualizer struct {
	// Width is the length of the longest histogram bar. Zero means 40.
	Width int
}

// RenderHistogram draws one bar per bin, scaled to the fullest bin.
func (v *TextVisualizer) RenderHistogram(h Histogram) string {
	width := v.Width
	if width <= 0 {
		width = 40
	}

	peak := 0
	for _, c := range h.Counts {
		peak = max(peak, c)
	}

	var buf bytes.Buffer
	for i, c := range h.Counts {
		bar := 0
		if peak > 0 {
			bar = c * width / peak
		}
		if c > 0 && bar == 0 {
			bar = 1
		}
		fmt.Fprintf(&buf, "[%7.2f, %7.2f) %-*s %d\n", h.Edges[i], h.Edges[i+1], width, strings.Repeat("#", bar), c)
	}
	return buf.String()
}

// RenderDensityTable lays out one row per sample: limit, π(limit), both densities
// and their ratio.
func (v *TextVisualizer) RenderDensityTable(samples []primitives.DensitySample) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "limit\tprimes\tempirical\t1/ln(n)\tratio\t")
	for _, s := range samples {
		fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\t%.4f\t\n", s.Limit, s.PrimeCount, s.Empirical, s.Theoretical, s.Ratio())
	}
	tw.Flush()
	return buf.String()
}
