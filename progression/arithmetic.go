package progression

// =============================================================================
// ARITHMETIC PROGRESSION - Constant difference between terms
// =============================================================================

// Arithmetic is a progression whose consecutive terms differ by a constant.
// The nth term is a₁ + (n−1)·d.
type Arithmetic struct {
	difference float64

	// Lazily computed terms, keyed from 1. The first term is seeded at
	// construction and never changes.
	terms map[int]float64
}

// NewArithmetic creates an arithmetic progression from its first term and
// common difference.
func NewArithmetic(initialTerm, difference float64) *Arithmetic {
	return &Arithmetic{
		difference: difference,
		terms:      map[int]float64{1: initialTerm},
	}
}

// Ratio returns the common difference.
func (p *Arithmetic) Ratio() float64 { return p.difference }

// NthTerm returns the 1-based nth term, computing and caching it on first
// request.
func (p *Arithmetic) NthTerm(n int) (float64, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}
	if term, ok := p.terms[n]; ok {
		return term, nil
	}

	term := p.terms[1] + float64(n-1)*p.difference
	p.terms[n] = term
	return term, nil
}

// FirstTerms returns terms 1..n in order.
func (p *Arithmetic) FirstTerms(n int) ([]float64, error) {
	return firstTerms(p, n)
}

// SumFirstTerms returns n·(a₁ + aₙ)/2.
func (p *Arithmetic) SumFirstTerms(n int) (float64, error) {
	last, err := p.NthTerm(n)
	if err != nil {
		return 0, err
	}
	return float64(n) * (p.terms[1] + last) / 2, nil
}
