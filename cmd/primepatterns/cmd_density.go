package main

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/production"
)

var (
	densityLimits      []int
	densityWorkers     int
	densityMetricsFile string
)

// densityCmd compares empirical prime density with 1/ln(n)
var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Compare empirical prime density with 1/ln(n) across limits",
	Long: `Sieves every limit independently and reports π(n)/n next to 1/ln(n).
The ratio of the two approaches 1 as n grows.

Example:
  primepatterns density
  primepatterns density --limits 1000,1000000,10000000 --workers 3`,
	Args: cobra.NoArgs,
	RunE: runDensity,
}

func init() {
	densityCmd.Flags().IntSliceVar(&densityLimits, "limits", nil, "Limits to sample (default from config)")
	densityCmd.Flags().IntVarP(&densityWorkers, "workers", "w", 0, "Limits sieved concurrently (default from config)")
	densityCmd.Flags().StringVar(&densityMetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")
}

func runDensity(cmd *cobra.Command, args []string) error {
	limits := cfg.Density.Limits
	if cmd.Flags().Changed("limits") {
		limits = densityLimits
	}
	opts := cfg.EngineOptions()
	if cmd.Flags().Changed("workers") {
		opts = append(opts, core.WithWorkers(densityWorkers))
	}

	var reg *prometheus.Registry
	if densityMetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, core.WithObserver(production.NewPrometheusObserver(reg)))
	}

	samples := make(chan production.PublishedSample, len(limits))
	publisher := production.NewChannelPublisher(samples)
	opts = append(opts, core.WithPublisher(publisher))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for s := range samples {
			logger.Debug("density sample",
				zap.Int("limit", s.Sample.Limit),
				zap.Int("primes", s.Sample.PrimeCount),
				zap.Float64("ratio", s.Sample.Ratio()))
		}
	}()

	result, err := core.NewEngine(opts...).RunDensityExperiment(cmd.Context(), limits)
	publisher.Close()
	wg.Wait()
	if err != nil {
		return err
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(densityMetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", zap.String("path", densityMetricsFile))
	}

	out := cmd.OutOrStdout()
	if format != production.FormatText {
		return production.Export(out, format, production.NewDensityReport(result))
	}

	heading(out, "Prime density vs 1/ln(n)")
	fmt.Fprint(out, (&production.TextVisualizer{}).RenderDensityTable(result))
	return nil
}
