package primitives

// PrimeSieve is the classification produced by the sieve engine.
//
// Index i of the classification is true when i is composite or i < 2. The slice is
// owned by the sieve; readers go through the accessor methods and never see it
// directly, so a PrimeSieve cannot be mutated once returned.
type PrimeSieve struct {
	limit     int
	composite []bool
}

// NewPrimeSieve wraps a finished classification. The sieve takes ownership of
// composite; callers must not retain or modify it afterwards.
// len(composite) must be limit+1.
func NewPrimeSieve(limit int, composite []bool) *PrimeSieve {
	return &PrimeSieve{limit: limit, composite: composite}
}

// Limit returns the inclusive upper bound the sieve was built for.
func (s *PrimeSieve) Limit() int {
	return s.limit
}

// Len returns the number of classified integers (limit+1).
func (s *PrimeSieve) Len() int {
	return len(s.composite)
}

// IsComposite reports the raw classification flag for n. Values outside [0, limit]
// are reported as composite.
func (s *PrimeSieve) IsComposite(n int) bool {
	if n < 0 || n >= len(s.composite) {
		return true
	}
	return s.composite[n]
}

// IsPrime reports whether n is prime. Values outside [0, limit] are never prime.
func (s *PrimeSieve) IsPrime(n int) bool {
	return !s.IsComposite(n)
}

// Classification returns a copy of the composite flags.
func (s *PrimeSieve) Classification() []bool {
	out := make([]bool, len(s.composite))
	copy(out, s.composite)
	return out
}
