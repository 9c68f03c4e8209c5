/*
Package interest converts between present value, future value, interest
amount, rate, and period count under simple or compound growth.

PURPOSE:
  The package separates the one formula that differs between the two growth
  disciplines (the accumulation factor, see regime.go) from the operations
  every discipline shares. Model implements the shared operations once
  against the Regime interface; Simple and Compound are ready-to-use Model
  values over the two regimes.

KNOWN INPUTS:
  Money conversions are pure functions of whichever quantity the caller
  already knows. That quantity is passed as a Growth value (growth.go):

    fv, err := interest.Simple.FutureValue(20000, interest.FromRate(0.10, 5))
    fv, err := interest.Simple.FutureValue(20000, interest.FromInterest(10000))

  An operation that cannot resolve its result from the supplied kind returns
  ErrUnderdetermined — under-specification is a caller error, never a
  silent default.

DESIGN PRINCIPLES:
  1. Pure: no state, no I/O, no hidden caches at this layer
  2. Explicit failure: division by a vanishing factor is an error, not a NaN
  3. One primitive: every derived formula reaches the regime only through
     AccumulationFactor and the two inversions

SEE ALSO:
  - regime.go: SimpleRegime, CompoundRegime
  - growth.go: the Growth tagged union
  - annuity: uniform payment series built on the compound model
*/
package interest

// =============================================================================
// MODEL - Derived operations over a regime
// =============================================================================

// Model implements every regime-independent interest operation over a
// Regime. The zero value is unusable; use Simple, Compound, or NewModel.
type Model struct {
	regime Regime
}

// NewModel wraps a regime in a Model.
func NewModel(r Regime) Model { return Model{regime: r} }

// Ready-to-use models over the two regimes. Regimes are stateless, so these
// are safe to share.
var (
	Simple   = NewModel(SimpleRegime{})
	Compound = NewModel(CompoundRegime{})
)

// Regime returns the wrapped regime.
func (m Model) Regime() Regime { return m.regime }

// AccumulationFactor is the regime primitive: the multiplier turning a
// present amount into its future amount.
func (m Model) AccumulationFactor(rate, periods float64) float64 {
	return m.regime.AccumulationFactor(rate, periods)
}

// ReductionFactor discounts a future amount to its present amount. It is the
// reciprocal of the accumulation factor and fails when that factor vanishes.
func (m Model) ReductionFactor(rate, periods float64) (float64, error) {
	factor := m.regime.AccumulationFactor(rate, periods)
	if factor == 0 {
		return 0, ErrZeroAccumulation
	}
	return 1 / factor, nil
}

// =============================================================================
// MONEY CONVERSIONS
// =============================================================================

// FutureValue grows a present value by the supplied interest amount or by
// the accumulation factor of a rate over a period count.
func (m Model) FutureValue(presentValue float64, growth Growth) (float64, error) {
	switch growth.kind {
	case growthInterest:
		return presentValue + growth.interest, nil
	case growthRate:
		return presentValue * m.regime.AccumulationFactor(growth.rate, growth.periods), nil
	default:
		return 0, underdetermined("future value", growth)
	}
}

// PresentValue discounts a future value by the supplied interest amount or
// by the reduction factor of a rate over a period count.
func (m Model) PresentValue(futureValue float64, growth Growth) (float64, error) {
	switch growth.kind {
	case growthInterest:
		return futureValue - growth.interest, nil
	case growthRate:
		reduction, err := m.ReductionFactor(growth.rate, growth.periods)
		if err != nil {
			return 0, err
		}
		return futureValue * reduction, nil
	default:
		return 0, underdetermined("present value", growth)
	}
}

// Interest returns the interest amount earned on a present value, resolved
// from a realized future value or from a rate over a period count.
func (m Model) Interest(presentValue float64, growth Growth) (float64, error) {
	switch growth.kind {
	case growthFutureValue:
		return growth.futureValue - presentValue, nil
	case growthRate:
		return presentValue * (m.regime.AccumulationFactor(growth.rate, growth.periods) - 1), nil
	default:
		return 0, underdetermined("interest", growth)
	}
}

// =============================================================================
// RATE AND PERIOD INVERSIONS
// =============================================================================

// RatePerPeriod returns the single-period rate implied by one realized cash
// flow: interest divided by present value.
func (m Model) RatePerPeriod(presentValue float64, growth Growth) (float64, error) {
	if presentValue == 0 {
		return 0, ErrZeroPresentValue
	}
	switch growth.kind {
	case growthFutureValue:
		return (growth.futureValue - presentValue) / presentValue, nil
	case growthInterest:
		return growth.interest / presentValue, nil
	default:
		return 0, underdetermined("rate per period", growth)
	}
}

// InternalRateOfReturn is the per-period rate equating a present and future
// value over a number of periods. It is the regime's rate inversion.
func (m Model) InternalRateOfReturn(presentValue, futureValue, periods float64) (float64, error) {
	return m.regime.ImpliedRate(presentValue, futureValue, periods)
}

// PeriodCount is the number of periods over which a present value grows
// into a future value at the given rate. It is the regime's period
// inversion.
func (m Model) PeriodCount(presentValue, futureValue, rate float64) (float64, error) {
	return m.regime.ImpliedPeriods(presentValue, futureValue, rate)
}

// =============================================================================
// NET PRESENT VALUE
// =============================================================================

// NetPresentValue discounts each future cash flow and sums the results.
// Shorter slices repeat their final element until the longest slice is
// exhausted, so a schedule with a constant tail rate or period is expressed
// compactly. Every slice must carry at least one element.
func (m Model) NetPresentValue(futureValues, rates, periods []float64) (float64, error) {
	if len(futureValues) == 0 || len(rates) == 0 || len(periods) == 0 {
		return 0, ErrEmptyCashFlows
	}

	length := len(futureValues)
	if len(rates) > length {
		length = len(rates)
	}
	if len(periods) > length {
		length = len(periods)
	}

	total := 0.0
	for i := 0; i < length; i++ {
		value, err := m.PresentValue(fillForward(futureValues, i),
			FromRate(fillForward(rates, i), fillForward(periods, i)))
		if err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}

func fillForward(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return values[len(values)-1]
}

// =============================================================================
// INFLATION ADJUSTMENT (Fisher relation)
// =============================================================================

// RealRatePerPeriod deflates a nominal single-period rate:
// (nominal − inflation)/(1 + inflation). The nominal rate is resolved from
// the Growth with priority explicit rate > future value > interest.
func (m Model) RealRatePerPeriod(presentValue, inflationRate float64, growth Growth) (float64, error) {
	if inflationRate <= -1 {
		return 0, ErrInvalidInflation
	}
	nominal, err := m.nominalRate(presentValue, growth)
	if err != nil {
		return 0, err
	}
	return (nominal - inflationRate) / (1 + inflationRate), nil
}

// RealInterestPerPeriod is the interest amount left after inflation:
// presentValue · (nominal − inflation). Nominal resolution follows
// RealRatePerPeriod.
func (m Model) RealInterestPerPeriod(presentValue, inflationRate float64, growth Growth) (float64, error) {
	nominal, err := m.nominalRate(presentValue, growth)
	if err != nil {
		return 0, err
	}
	return presentValue * (nominal - inflationRate), nil
}

func (m Model) nominalRate(presentValue float64, growth Growth) (float64, error) {
	if growth.kind == growthRate {
		return growth.rate, nil
	}
	return m.RatePerPeriod(presentValue, growth)
}

// RealOrEffectiveRate picks the rate that stays advantageous under the
// expected inflation scenario: the real rate when expected inflation
// exceeds (1+effective)/(1+real) − 1, the effective rate otherwise.
// Both rates must be greater than -1.
func RealOrEffectiveRate(realRate, effectiveRate, expectedInflation float64) float64 {
	relation := (1+effectiveRate)/(1+realRate) - 1
	if expectedInflation > relation {
		return realRate
	}
	return effectiveRate
}
