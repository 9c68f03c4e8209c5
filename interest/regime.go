/*
regime.go - Interest rate regimes (simple and compound)

PURPOSE:
  A Regime supplies the single primitive that distinguishes the two growth
  disciplines — the accumulation factor — plus the inversions whose closed
  form depends on it (implied rate, implied period count). Everything else
  an interest calculation needs is derived once in model.go against this
  interface.

THE PRIMITIVE:
  AccumulationFactor(rate, periods) multiplies a present amount into its
  future amount. Simple: 1 + rate·periods. Compound: (1+rate)^periods.
  For any regime, A(rate, 0) = 1.

REGIME EXTRAS:
  Simple rates scale linearly with the period length, so two simple rates
  over different spans are compared by proportionality. Compound rates are
  compared by equal accumulation (equivalence). Each concrete regime carries
  its own comparison and rescaling helpers.

SEE ALSO:
  - model.go: derived operations shared by both regimes
*/
package interest

import "math"

// =============================================================================
// REGIME - Polymorphic growth discipline
// =============================================================================

// Regime is the contract a growth discipline implements. Regimes are
// stateless; both implementations are zero-size structs.
type Regime interface {
	// Name identifies the regime ("simple", "compound").
	Name() string

	// AccumulationFactor is the multiplier turning a present amount into
	// its future amount after the given number of periods.
	AccumulationFactor(rate, periods float64) float64

	// ImpliedRate inverts the accumulation factor for the per-period rate
	// that grows presentValue into futureValue over periods.
	ImpliedRate(presentValue, futureValue, periods float64) (float64, error)

	// ImpliedPeriods inverts the accumulation factor for the period count
	// that grows presentValue into futureValue at rate.
	ImpliedPeriods(presentValue, futureValue, rate float64) (float64, error)
}

// =============================================================================
// SIMPLE - Linear growth on the principal only
// =============================================================================

// SimpleRegime accrues interest on the principal only: A = 1 + rate·periods.
type SimpleRegime struct{}

func (SimpleRegime) Name() string { return "simple" }

func (SimpleRegime) AccumulationFactor(rate, periods float64) float64 {
	return 1 + rate*periods
}

func (SimpleRegime) ImpliedRate(presentValue, futureValue, periods float64) (float64, error) {
	if presentValue == 0 {
		return 0, ErrZeroPresentValue
	}
	if periods <= 0 {
		return 0, ErrNonPositivePeriods
	}
	return (futureValue/presentValue - 1) / periods, nil
}

func (SimpleRegime) ImpliedPeriods(presentValue, futureValue, rate float64) (float64, error) {
	if presentValue == 0 {
		return 0, ErrZeroPresentValue
	}
	if rate == 0 {
		return 0, ErrZeroRate
	}
	return (futureValue/presentValue - 1) / rate, nil
}

// IsProportional reports whether two simple rates over different period
// lengths represent the same underlying rate: their quotient must match the
// quotient of the period counts within tolerance.
func (SimpleRegime) IsProportional(rateN, periodsN, rateM, periodsM, tolerance float64) bool {
	return math.Abs(rateN/rateM-periodsN/periodsM) < tolerance
}

// EquivalentRate rescales a simple rate from one period length to another:
// rate · (toPeriods/fromPeriods).
func (SimpleRegime) EquivalentRate(rate, fromPeriods, toPeriods float64) float64 {
	return rate * toPeriods / fromPeriods
}

// =============================================================================
// COMPOUND - Exponential growth, interest on interest
// =============================================================================

// CompoundRegime accrues interest on accumulated interest:
// A = (1+rate)^periods.
type CompoundRegime struct{}

func (CompoundRegime) Name() string { return "compound" }

func (CompoundRegime) AccumulationFactor(rate, periods float64) float64 {
	return math.Pow(1+rate, periods)
}

func (CompoundRegime) ImpliedRate(presentValue, futureValue, periods float64) (float64, error) {
	if presentValue == 0 {
		return 0, ErrZeroPresentValue
	}
	if periods <= 0 {
		return 0, ErrNonPositivePeriods
	}
	growth := futureValue / presentValue
	if growth <= 0 {
		return 0, ErrNegativeGrowth
	}
	return math.Pow(growth, 1/periods) - 1, nil
}

func (CompoundRegime) ImpliedPeriods(presentValue, futureValue, rate float64) (float64, error) {
	if presentValue == 0 {
		return 0, ErrZeroPresentValue
	}
	if rate <= -1 {
		return 0, ErrInvalidRate
	}
	if rate == 0 {
		return 0, ErrZeroRate
	}
	growth := futureValue / presentValue
	if growth <= 0 {
		return 0, ErrNegativeGrowth
	}
	return math.Log(growth) / math.Log(1+rate), nil
}

// IsEquivalent reports whether two compound rates over different period
// lengths accumulate to the same factor within tolerance.
func (r CompoundRegime) IsEquivalent(rateN, periodsN, rateM, periodsM, tolerance float64) bool {
	return math.Abs(r.AccumulationFactor(rateN, periodsN)-r.AccumulationFactor(rateM, periodsM)) < tolerance
}

// EquivalentRate rescales a compound rate from one period length to another
// while preserving accumulation: (1+rate)^(toPeriods/fromPeriods) − 1.
func (CompoundRegime) EquivalentRate(rate, fromPeriods, toPeriods float64) float64 {
	return math.Pow(1+rate, toPeriods/fromPeriods) - 1
}
