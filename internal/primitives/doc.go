// Package primitives provides the foundational, zero-dependency data structures
// for the prime analysis engine.
//
// This package uses ONLY the Go standard library. External dependencies live in the
// adapter tiers (extensibility, production, config, logging).
//
// Core invariants:
//   - Immutability once produced (PrimeSieve fields are unexported)
//   - PrimeSequence is strictly increasing
//   - len(GapSequence) == len(PrimeSequence)-1
//   - Statistics over an empty GapSequence are an error, never a zero value
package primitives
