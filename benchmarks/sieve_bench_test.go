// Package benchmarks provides sieve, extraction and gap throughput benchmarks.
package benchmarks

import (
	"testing"

	"github.com/comalice/primepatterns/internal/core"
)

func BenchmarkSieve(b *testing.B) {
	for _, limit := range Decades(3, 7) {
		b.Run(LimitName(limit), func(b *testing.B) {
			for b.Loop() {
				if _, err := core.Sieve(limit); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(limit)*float64(b.N)/b.Elapsed().Seconds(), "ints/s")
		})
	}
}

func BenchmarkExtract(b *testing.B) {
	for _, limit := range Decades(4, 6) {
		s, err := core.Sieve(limit)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(LimitName(limit), func(b *testing.B) {
			for b.Loop() {
				_ = core.Count(s)
			}
		})
	}
}

func BenchmarkAnalyzeGaps(b *testing.B) {
	for _, limit := range Decades(4, 6) {
		primes := MustPrimes(limit)
		b.Run(LimitName(limit), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, _, err := core.AnalyzeGaps(primes); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
