package production

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/comalice/primepatterns/internal/primitives"
)

// PrometheusObserver records engine measurements as Prometheus metrics.
// It implements core.Observer and is safe for concurrent use.
type PrometheusObserver struct {
	SieveRuns     prometheus.Counter
	SieveDuration prometheus.Histogram
	PrimeCount    prometheus.Gauge
	MeanGap       prometheus.Gauge
	MaxGap        prometheus.Gauge
	DensityRatio  *prometheus.GaugeVec
}

// NewPrometheusObserver creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	f := promauto.With(reg)
	return &PrometheusObserver{
		SieveRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: "primepatterns",
			Name:      "sieve_runs_total",
			Help:      "Total number of completed sieve runs",
		}),
		SieveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "primepatterns",
			Name:      "sieve_duration_seconds",
			Help:      "Wall time of a single sieve run",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		PrimeCount: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "primepatterns",
			Name:      "analysis_prime_count",
			Help:      "Number of primes found by the latest gap analysis",
		}),
		MeanGap: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "primepatterns",
			Name:      "analysis_mean_gap",
			Help:      "Mean prime gap of the latest gap analysis",
		}),
		MaxGap: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "primepatterns",
			Name:      "analysis_max_gap",
			Help:      "Largest prime gap of the latest gap analysis",
		}),
		DensityRatio: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "primepatterns",
			Name:      "density_ratio",
			Help:      "Empirical prime density divided by 1/ln(limit)",
		}, []string{"limit"}),
	}
}

func (o *PrometheusObserver) ObserveSieve(limit int, elapsed time.Duration) {
	o.SieveRuns.Inc()
	o.SieveDuration.Observe(elapsed.Seconds())
}

func (o *PrometheusObserver) ObserveAnalysis(summary primitives.Summary) {
	o.PrimeCount.Set(float64(summary.PrimeCount))
	o.MeanGap.Set(summary.Stats.Mean)
	o.MaxGap.Set(float64(summary.Stats.Max))
}

func (o *PrometheusObserver) ObserveDensity(sample primitives.DensitySample) {
	o.DensityRatio.WithLabelValues(strconv.Itoa(sample.Limit)).Set(sample.Ratio())
}
