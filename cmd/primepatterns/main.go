package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/primepatterns/internal/config"
	"github.com/comalice/primepatterns/internal/logging"
	"github.com/comalice/primepatterns/internal/production"
)

var (
	// Global flags
	configPath string
	verbose    bool
	formatName string
	plain      bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	format production.Format
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "primepatterns",
	Short: "Prime gaps and prime density explorer",
	Long: `primepatterns sieves the primes up to a limit, summarizes the gaps between
consecutive primes, and compares the empirical prime density with the
Prime Number Theorem estimate 1/ln(n).

Settings come from an optional YAML file (--config) and PRIMEPATTERNS_* environment
variables; command-line flags win over both.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Report.Format = formatName
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		format, err = production.ParseFormat(cfg.Report.Format)
		if err != nil {
			return err
		}

		logger, err = logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			Verbose:     verbose,
		})
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.Int("limit", cfg.Limit),
			zap.String("format", string(format)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (missing file means defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable terminal styling")

	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(densityCmd)
	rootCmd.AddCommand(primesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
