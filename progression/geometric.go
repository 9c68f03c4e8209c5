package progression

import "math"

// =============================================================================
// GEOMETRIC PROGRESSION - Constant quotient between terms
// =============================================================================

// Geometric is a progression whose consecutive terms share a constant
// quotient. The nth term is a₁·r^(n−1).
type Geometric struct {
	ratio float64

	// Lazily computed terms, keyed from 1. The first term is seeded at
	// construction and never changes.
	terms map[int]float64
}

// NewGeometric creates a geometric progression from its first term and
// common quotient.
func NewGeometric(initialTerm, ratio float64) *Geometric {
	return &Geometric{
		ratio: ratio,
		terms: map[int]float64{1: initialTerm},
	}
}

// Ratio returns the common quotient.
func (p *Geometric) Ratio() float64 { return p.ratio }

// NthTerm returns the 1-based nth term, computing and caching it on first
// request.
func (p *Geometric) NthTerm(n int) (float64, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}
	if term, ok := p.terms[n]; ok {
		return term, nil
	}

	term := p.terms[1] * math.Pow(p.ratio, float64(n-1))
	p.terms[n] = term
	return term, nil
}

// FirstTerms returns terms 1..n in order.
func (p *Geometric) FirstTerms(n int) ([]float64, error) {
	return firstTerms(p, n)
}

// SumFirstTerms returns a₁·(1−rⁿ)/(1−r), or n·a₁ when the quotient is
// exactly 1 (the general form would divide by zero).
func (p *Geometric) SumFirstTerms(n int) (float64, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}
	first := p.terms[1]
	if p.ratio == 1 {
		return float64(n) * first, nil
	}
	return first * (1 - math.Pow(p.ratio, float64(n))) / (1 - p.ratio), nil
}
