package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/primepatterns/internal/core"
	"github.com/comalice/primepatterns/internal/primitives"
	"github.com/comalice/primepatterns/internal/production"
)

var (
	primesLimit int
	primesCount bool
)

// primesCmd lists primes up to a limit
var primesCmd = &cobra.Command{
	Use:   "primes",
	Short: "List the primes up to a limit, or count them",
	Args:  cobra.NoArgs,
	RunE:  runPrimes,
}

func init() {
	primesCmd.Flags().IntVarP(&primesLimit, "limit", "n", 0, "Upper bound (default from config)")
	primesCmd.Flags().BoolVar(&primesCount, "count", false, "Print only π(limit)")
}

// primeListing is the structured form of the primes command output.
type primeListing struct {
	Limit  int                      `json:"limit" yaml:"limit"`
	Count  int                      `json:"count" yaml:"count"`
	Primes primitives.PrimeSequence `json:"primes,omitempty" yaml:"primes,omitempty"`
}

func runPrimes(cmd *cobra.Command, args []string) error {
	limit := cfg.Limit
	if cmd.Flags().Changed("limit") {
		limit = primesLimit
	}

	s, err := core.NewEngine(cfg.EngineOptions()...).Sieve(limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if primesCount {
		n := core.Count(s)
		if format != production.FormatText {
			return production.Export(out, format, primeListing{Limit: limit, Count: n})
		}
		fmt.Fprintf(out, "π(%s) = %s\n", comma(limit), comma(n))
		return nil
	}

	primes := core.Primes(s)
	if format != production.FormatText {
		return production.Export(out, format, primeListing{Limit: limit, Count: len(primes), Primes: primes})
	}

	const perLine = 10
	var line []string
	for i, p := range primes {
		line = append(line, fmt.Sprint(p))
		if (i+1)%perLine == 0 || i == len(primes)-1 {
			fmt.Fprintln(out, strings.Join(line, " "))
			line = line[:0]
		}
	}
	return nil
}
