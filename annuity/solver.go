/*
Package annuity solves uniform series of payments.

PURPOSE:
  Converts between a constant per-period payment and the lump sums it is
  worth today (present value) or at the end of the series (future value),
  under compound growth. The payment stream is represented internally as a
  geometric progression whose quotient is the one-period reduction factor
  1/(1+i), so the present value is a memoized partial sum.

TIMING:
  Ordinary series pay at the end of each period, due series at the start.
  A due series is an ordinary series shifted one period earlier, so every
  due quantity differs from its ordinary counterpart by one accumulation
  or reduction factor over a single period.

CACHING:
  Each solve records the mutually consistent triple
  {payment, present value, future value} plus the payment progression.
  A repeated query within tolerance of the previously solved value returns
  the cached counterpart without recomputation. This is an optimization,
  not a correctness requirement; recomputing is always safe.

USAGE:
  s, err := annuity.NewSolver(0.05, 6, annuity.Ordinary)
  pv, err := s.PresentValueOfPayment(3000)
  pmt, err := s.PaymentFromPresentValue(pv) // cache hit, returns 3000

SEE ALSO:
  - factors.go: the named annuity multipliers
  - interest: the compound model this solver delegates to
  - progression: the geometric partial sum behind PresentValueOfPayment
*/
package annuity

import (
	"errors"
	"fmt"

	"github.com/warp/finmath-engine/interest"
	"github.com/warp/finmath-engine/progression"
)

// =============================================================================
// TIMING - When within each period the payment lands
// =============================================================================

// Timing fixes the payment position within each period.
type Timing int

const (
	// Ordinary series pay at the end of each period.
	Ordinary Timing = 0

	// Due series pay at the start of each period.
	Due Timing = 1
)

func (t Timing) String() string {
	switch t {
	case Ordinary:
		return "ordinary"
	case Due:
		return "due"
	default:
		return fmt.Sprintf("timing(%d)", int(t))
	}
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInvalidTiming is returned when the timing is neither Ordinary (0)
	// nor Due (1).
	ErrInvalidTiming = errors.New("timing must be ordinary (0) or due (1)")

	// ErrInvalidPeriods is returned when the series has fewer than one period.
	ErrInvalidPeriods = errors.New("periods must be at least 1")

	// ErrDegenerateRate is returned when the rate makes the closed forms
	// collapse: 0 zeroes every factor denominator, -100% or below leaves no
	// reduction factor.
	ErrDegenerateRate = errors.New("rate must be non-zero and greater than -1")

	// ErrNotSolved is returned when the payment schedule is requested before
	// any solve populated the cache.
	ErrNotSolved = errors.New("no series solved yet")
)

// DefaultTolerance is the approximate-equality bound for cache hits when no
// WithTolerance option is given.
const DefaultTolerance = 0.01

// =============================================================================
// SOLVER
// =============================================================================

// Solver converts between a level payment and its present or future value
// for one fixed (rate, periods, timing) configuration. Not safe for
// concurrent use: the memo cache is unsynchronized.
type Solver struct {
	rate      float64
	periods   int
	timing    Timing
	tolerance float64

	model interest.Model
	ratio float64 // one-period reduction factor 1/(1+i)

	// Cache of the last solved state. The three quantities are mutually
	// consistent: futureValue = presentValue · (1+i)^n.
	solved       bool
	payment      float64
	presentValue float64
	futureValue  float64
	payments     *progression.Geometric
}

// Option configures a Solver at construction.
type Option func(*Solver)

// WithTolerance sets the approximate-equality bound for cache hits.
func WithTolerance(tolerance float64) Option {
	return func(s *Solver) { s.tolerance = tolerance }
}

// NewSolver validates the configuration and returns a solver over the
// compound model. Failing fast on a degenerate rate keeps every later
// operation total.
func NewSolver(rate float64, periods int, timing Timing, opts ...Option) (*Solver, error) {
	if timing != Ordinary && timing != Due {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTiming, int(timing))
	}
	if periods < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	if rate == 0 || rate <= -1 {
		return nil, fmt.Errorf("%w: got %v", ErrDegenerateRate, rate)
	}

	model := interest.Compound
	ratio, err := model.ReductionFactor(rate, 1)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		rate:      rate,
		periods:   periods,
		timing:    timing,
		tolerance: DefaultTolerance,
		model:     model,
		ratio:     ratio,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Rate returns the per-period rate.
func (s *Solver) Rate() float64 { return s.rate }

// Periods returns the number of payments.
func (s *Solver) Periods() int { return s.periods }

// Timing returns the payment timing.
func (s *Solver) Timing() Timing { return s.timing }

// Tolerance returns the cache-hit bound.
func (s *Solver) Tolerance() float64 { return s.tolerance }

// =============================================================================
// SOLVE OPERATIONS
// =============================================================================

// PresentValueOfPayment returns the lump sum worth the same today as the
// level payment stream. The payment progression's partial sum yields the
// due value (its first term is undiscounted); ordinary timing discounts one
// extra period.
func (s *Solver) PresentValueOfPayment(payment float64) (float64, error) {
	if s.hit(s.payment, payment) {
		return s.presentValue, nil
	}

	payments := progression.NewGeometric(payment, s.ratio)
	presentValue, err := payments.SumFirstTerms(s.periods)
	if err != nil {
		return 0, err
	}
	if s.timing == Ordinary {
		presentValue *= s.ratio
	}

	futureValue, err := s.model.FutureValue(presentValue, s.growth())
	if err != nil {
		return 0, err
	}
	s.store(payment, presentValue, futureValue, payments)
	return presentValue, nil
}

// FutureValueOfPayment returns the lump sum the payment stream accumulates
// to at the end of the series.
func (s *Solver) FutureValueOfPayment(payment float64) (float64, error) {
	if s.hit(s.payment, payment) {
		return s.futureValue, nil
	}

	futureValue := payment * s.AccumulationFactor()
	presentValue, err := s.model.PresentValue(futureValue, s.growth())
	if err != nil {
		return 0, err
	}
	s.store(payment, presentValue, futureValue, progression.NewGeometric(payment, s.ratio))
	return futureValue, nil
}

// PaymentFromPresentValue returns the level payment that amortizes the
// given lump sum over the series.
func (s *Solver) PaymentFromPresentValue(presentValue float64) (float64, error) {
	if s.hit(s.presentValue, presentValue) {
		return s.payment, nil
	}

	payment := presentValue * s.CapitalRecoveryFactor()
	futureValue, err := s.model.FutureValue(presentValue, s.growth())
	if err != nil {
		return 0, err
	}
	s.store(payment, presentValue, futureValue, progression.NewGeometric(payment, s.ratio))
	return payment, nil
}

// PaymentFromFutureValue returns the level payment that accumulates to the
// given lump sum by the end of the series.
func (s *Solver) PaymentFromFutureValue(futureValue float64) (float64, error) {
	if s.hit(s.futureValue, futureValue) {
		return s.payment, nil
	}

	payment := futureValue * s.SinkingFundFactor()
	presentValue, err := s.model.PresentValue(futureValue, s.growth())
	if err != nil {
		return 0, err
	}
	s.store(payment, presentValue, futureValue, progression.NewGeometric(payment, s.ratio))
	return payment, nil
}

// PaymentSchedule returns the present value of each payment in the last
// solved series, in payment order: the underlying geometric progression
// evaluated over all periods.
func (s *Solver) PaymentSchedule() ([]float64, error) {
	if !s.solved {
		return nil, ErrNotSolved
	}
	return s.payments.FirstTerms(s.periods)
}

// =============================================================================
// CACHE
// =============================================================================

func (s *Solver) hit(cached, requested float64) bool {
	if !s.solved {
		return false
	}
	diff := requested - cached
	if diff < 0 {
		diff = -diff
	}
	return diff <= s.tolerance
}

func (s *Solver) store(payment, presentValue, futureValue float64, payments *progression.Geometric) {
	s.solved = true
	s.payment = payment
	s.presentValue = presentValue
	s.futureValue = futureValue
	s.payments = payments
}

func (s *Solver) growth() interest.Growth {
	return interest.FromRate(s.rate, float64(s.periods))
}
