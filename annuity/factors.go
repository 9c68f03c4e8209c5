package annuity

// =============================================================================
// NAMED ANNUITY FACTORS
// =============================================================================
// Closed forms over Aₙ = (1+i)ⁿ with the standard annuity-table timing
// correction: a due series is an ordinary series shifted one period earlier,
// so due value factors gain one accumulation factor over a single period and
// due payment factors gain one reduction factor.
//
// NewSolver rejects i = 0 and i <= -1, so Aₙ − 1 never vanishes here.

// AccumulationFactor is the future value of one unit paid each period:
// (Aₙ−1)/i for an ordinary series, times (1+i) for a due series.
func (s *Solver) AccumulationFactor() float64 {
	factor := (s.accumulationN() - 1) / s.rate
	if s.timing == Due {
		factor *= s.accumulation1()
	}
	return factor
}

// SinkingFundFactor is the level payment accumulating to one unit:
// i/(Aₙ−1) for an ordinary series, times 1/(1+i) for a due series.
func (s *Solver) SinkingFundFactor() float64 {
	factor := s.rate / (s.accumulationN() - 1)
	if s.timing == Due {
		factor *= s.ratio
	}
	return factor
}

// PresentWorthFactor is the present value of one unit paid each period:
// (Aₙ−1)/(i·Aₙ) for an ordinary series, times (1+i) for a due series.
func (s *Solver) PresentWorthFactor() float64 {
	accumulation := s.accumulationN()
	factor := (accumulation - 1) / (s.rate * accumulation)
	if s.timing == Due {
		factor *= s.accumulation1()
	}
	return factor
}

// CapitalRecoveryFactor is the level payment amortizing one unit:
// i·Aₙ/(Aₙ−1) for an ordinary series, times 1/(1+i) for a due series.
func (s *Solver) CapitalRecoveryFactor() float64 {
	accumulation := s.accumulationN()
	factor := s.rate * accumulation / (accumulation - 1)
	if s.timing == Due {
		factor *= s.ratio
	}
	return factor
}

func (s *Solver) accumulationN() float64 {
	return s.model.AccumulationFactor(s.rate, float64(s.periods))
}

func (s *Solver) accumulation1() float64 {
	return s.model.AccumulationFactor(s.rate, 1)
}
