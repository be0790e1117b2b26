package primitives

import (
	"math"
	"testing"
)

func TestNewDensitySample(t *testing.T) {
	d := NewDensitySample(100, 25)

	if d.Empirical != 0.25 {
		t.Errorf("expected empirical 0.25, got %v", d.Empirical)
	}
	want := 1 / math.Log(100)
	if math.Abs(d.Theoretical-want) > 1e-12 {
		t.Errorf("expected theoretical %v, got %v", want, d.Theoretical)
	}
	if math.Abs(d.Ratio()-0.25*math.Log(100)) > 1e-12 {
		t.Errorf("unexpected ratio %v", d.Ratio())
	}
	if math.Abs(d.RelativeError()-math.Abs(d.Ratio()-1)) > 1e-12 {
		t.Errorf("unexpected relative error %v", d.RelativeError())
	}
}

func TestSequenceHelpers(t *testing.T) {
	var empty PrimeSequence
	if empty.First() != 0 || empty.Last() != 0 {
		t.Error("empty sequence must report 0 for First/Last")
	}

	p := PrimeSequence{2, 3, 5, 7}
	if p.First() != 2 || p.Last() != 7 {
		t.Errorf("unexpected First/Last %d/%d", p.First(), p.Last())
	}

	g := GapSequence{1, 2, 2}
	if g.Sum() != 5 {
		t.Errorf("expected gap sum 5, got %d", g.Sum())
	}
}

func TestGapAnalysis_Summary(t *testing.T) {
	a := GapAnalysis{
		Limit:  10,
		Primes: PrimeSequence{2, 3, 5, 7},
		Gaps:   GapSequence{1, 2, 2},
		Stats:  GapStatistics{Count: 3, Sum: 5, Mean: 5.0 / 3, Min: 1, Max: 2, MaxStart: 3},
	}

	s := a.Summary()
	if s.Limit != 10 || s.PrimeCount != 4 || s.Stats.Max != 2 {
		t.Errorf("unexpected summary %+v", s)
	}
}
