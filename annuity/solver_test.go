package annuity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finmath-engine/annuity"
)

// =============================================================================
// CONSTRUCTION VALIDATION
// =============================================================================

func TestNewSolver_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		periods int
		timing  annuity.Timing
		wantErr error
	}{
		{"timing out of range", 0.05, 6, annuity.Timing(2), annuity.ErrInvalidTiming},
		{"negative timing", 0.05, 6, annuity.Timing(-1), annuity.ErrInvalidTiming},
		{"zero periods", 0.05, 0, annuity.Ordinary, annuity.ErrInvalidPeriods},
		{"zero rate", 0, 6, annuity.Ordinary, annuity.ErrDegenerateRate},
		{"rate at -100%", -1, 6, annuity.Due, annuity.ErrDegenerateRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := annuity.NewSolver(tt.rate, tt.periods, tt.timing)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// =============================================================================
// NAMED FACTORS - verified against standard annuity tables
// =============================================================================

func TestFactors_OrdinaryTableValues(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		periods int
		factor  func(*annuity.Solver) float64
		want    float64
		delta   float64
	}{
		{"present worth 5% x6", 0.05, 6, (*annuity.Solver).PresentWorthFactor, 5.075692, 1e-5},
		{"capital recovery 4% x6", 0.04, 6, (*annuity.Solver).CapitalRecoveryFactor, 0.190762, 1e-5},
		{"sinking fund 7% x5", 0.07, 5, (*annuity.Solver).SinkingFundFactor, 0.173891, 1e-5},
		{"accumulation 7% x5", 0.07, 5, (*annuity.Solver).AccumulationFactor, 5.750739, 1e-5},
		{"accumulation 1% x180", 0.01, 180, (*annuity.Solver).AccumulationFactor, 499.5802, 1e-2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := annuity.NewSolver(tt.rate, tt.periods, annuity.Ordinary)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, tt.factor(s), tt.delta)
		})
	}
}

func TestFactors_DueShiftsOnePeriod(t *testing.T) {
	ordinary, err := annuity.NewSolver(0.07, 5, annuity.Ordinary)
	require.NoError(t, err)
	due, err := annuity.NewSolver(0.07, 5, annuity.Due)
	require.NoError(t, err)

	// Value factors gain one accumulation factor, payment factors one
	// reduction factor.
	assert.InDelta(t, ordinary.AccumulationFactor()*1.07, due.AccumulationFactor(), 1e-9)
	assert.InDelta(t, ordinary.PresentWorthFactor()*1.07, due.PresentWorthFactor(), 1e-9)
	assert.InDelta(t, ordinary.SinkingFundFactor()/1.07, due.SinkingFundFactor(), 1e-9)
	assert.InDelta(t, ordinary.CapitalRecoveryFactor()/1.07, due.CapitalRecoveryFactor(), 1e-9)
}

func TestFactors_ReciprocalPairs(t *testing.T) {
	for _, timing := range []annuity.Timing{annuity.Ordinary, annuity.Due} {
		s, err := annuity.NewSolver(0.045, 12, timing)
		require.NoError(t, err)

		assert.InDelta(t, 1, s.AccumulationFactor()*s.SinkingFundFactor(), 1e-9)
		assert.InDelta(t, 1, s.PresentWorthFactor()*s.CapitalRecoveryFactor(), 1e-9)
	}
}

// =============================================================================
// SOLVING - payment <-> present value <-> future value
// =============================================================================

func TestPresentValueOfPayment(t *testing.T) {
	due, err := annuity.NewSolver(0.05, 6, annuity.Due)
	require.NoError(t, err)

	pv, err := due.PresentValueOfPayment(3000)
	require.NoError(t, err)
	assert.InDelta(t, 15988.43, pv, 0.01)

	ordinary, err := annuity.NewSolver(0.05, 6, annuity.Ordinary)
	require.NoError(t, err)

	pv, err = ordinary.PresentValueOfPayment(3000)
	require.NoError(t, err)
	assert.InDelta(t, 15227.08, pv, 0.01)
}

func TestFutureValueOfPayment(t *testing.T) {
	// 750 per month for a year at 0.5% per month.
	s, err := annuity.NewSolver(0.005, 12, annuity.Ordinary)
	require.NoError(t, err)

	fv, err := s.FutureValueOfPayment(750)
	require.NoError(t, err)
	assert.InDelta(t, 9251.67, fv, 0.01)
}

func TestPaymentFromFutureValue(t *testing.T) {
	// Saving toward 1000 in 5 years at 7%.
	s, err := annuity.NewSolver(0.07, 5, annuity.Ordinary)
	require.NoError(t, err)

	payment, err := s.PaymentFromFutureValue(1000)
	require.NoError(t, err)
	assert.InDelta(t, 173.89, payment, 0.01)
}

func TestSolve_RoundTripsWithinTolerance(t *testing.T) {
	for _, timing := range []annuity.Timing{annuity.Ordinary, annuity.Due} {
		t.Run(timing.String(), func(t *testing.T) {
			forward, err := annuity.NewSolver(0.045, 12, timing)
			require.NoError(t, err)
			pv, err := forward.PresentValueOfPayment(1250)
			require.NoError(t, err)

			// Fresh solver so the cache cannot short-circuit the inversion.
			backward, err := annuity.NewSolver(0.045, 12, timing)
			require.NoError(t, err)
			payment, err := backward.PaymentFromPresentValue(pv)
			require.NoError(t, err)
			assert.InDelta(t, 1250, payment, 1e-6)

			fv, err := forward.FutureValueOfPayment(1250)
			require.NoError(t, err)
			payment, err = backward.PaymentFromFutureValue(fv)
			require.NoError(t, err)
			assert.InDelta(t, 1250, payment, 1e-6)
		})
	}
}

func TestSolve_QuantitiesMutuallyConsistent(t *testing.T) {
	s, err := annuity.NewSolver(0.05, 6, annuity.Ordinary)
	require.NoError(t, err)

	pv, err := s.PresentValueOfPayment(3000)
	require.NoError(t, err)

	// The cached future value must relate to the present value through six
	// periods of compound growth: querying it at the cached payment hits
	// the cache and returns it directly.
	fv, err := s.FutureValueOfPayment(3000)
	require.NoError(t, err)
	assert.InDelta(t, pv*1.340095640625, fv, 1e-6)
}

func TestPaymentSchedule(t *testing.T) {
	s, err := annuity.NewSolver(0.05, 6, annuity.Due)
	require.NoError(t, err)

	_, err = s.PaymentSchedule()
	assert.ErrorIs(t, err, annuity.ErrNotSolved)

	_, err = s.PresentValueOfPayment(3000)
	require.NoError(t, err)

	schedule, err := s.PaymentSchedule()
	require.NoError(t, err)
	require.Len(t, schedule, 6)

	// First payment of a due series is undiscounted, each later one carries
	// one more period of discounting.
	assert.InDelta(t, 3000, schedule[0], 1e-9)
	assert.InDelta(t, 3000/1.05, schedule[1], 1e-9)

	var sum float64
	for _, v := range schedule {
		sum += v
	}
	assert.InDelta(t, 15988.43, sum, 0.01)
}

// =============================================================================
// CACHE BEHAVIOR
// =============================================================================

func TestCache_HitWithinTolerance(t *testing.T) {
	s, err := annuity.NewSolver(0.05, 6, annuity.Ordinary)
	require.NoError(t, err)

	first, err := s.PresentValueOfPayment(3000)
	require.NoError(t, err)

	// Within the default tolerance: the exact cached value comes back.
	second, err := s.PresentValueOfPayment(3000.005)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Solving for the payment at the cached present value returns the
	// cached payment.
	payment, err := s.PaymentFromPresentValue(first)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, payment)
}

func TestCache_MissOutsideTolerance(t *testing.T) {
	s, err := annuity.NewSolver(0.05, 6, annuity.Ordinary)
	require.NoError(t, err)

	first, err := s.PresentValueOfPayment(3000)
	require.NoError(t, err)

	second, err := s.PresentValueOfPayment(3100)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.InDelta(t, first/3000*3100, second, 1e-6)
}

func TestCache_ConfigurableTolerance(t *testing.T) {
	s, err := annuity.NewSolver(0.05, 6, annuity.Ordinary, annuity.WithTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Tolerance())

	first, err := s.PresentValueOfPayment(3000)
	require.NoError(t, err)

	// Zero tolerance: the near-miss recomputes instead of hitting.
	second, err := s.PresentValueOfPayment(3000.005)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
