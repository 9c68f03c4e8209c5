package interest_test

import (
	"errors"
	"testing"

	"github.com/warp/finmath-engine/interest"
)

// =============================================================================
// MONEY CONVERSIONS
// =============================================================================

func TestFutureValue_FromRate(t *testing.T) {
	tests := []struct {
		name    string
		model   interest.Model
		pv      float64
		rate    float64
		periods float64
		want    float64
	}{
		{"simple five years", interest.Simple, 20000, 0.10, 5, 30000},
		{"simple one year", interest.Simple, 20000, 0.10, 1, 22000},
		{"compound two periods", interest.Compound, 1000, 0.05, 2, 1102.5},
	}

	for _, tt := range tests {
		got, err := tt.model.FutureValue(tt.pv, interest.FromRate(tt.rate, tt.periods))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("%s: future value = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConversions_FromInterest(t *testing.T) {
	fv, err := interest.Compound.FutureValue(1000, interest.FromInterest(250))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(fv, 1250) {
		t.Errorf("future value = %v, want 1250", fv)
	}

	pv, err := interest.Compound.PresentValue(1250, interest.FromInterest(250))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(pv, 1000) {
		t.Errorf("present value = %v, want 1000", pv)
	}
}

func TestPresentValue_RoundTripsFutureValue(t *testing.T) {
	// present_value(future_value(pv)) == pv for both regimes.
	for _, model := range []interest.Model{interest.Simple, interest.Compound} {
		growth := interest.FromRate(0.07, 9)

		fv, err := model.FutureValue(12345.67, growth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pv, err := model.PresentValue(fv, growth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(pv, 12345.67) {
			t.Errorf("%s: round trip gives %v, want 12345.67", model.Regime().Name(), pv)
		}
	}
}

func TestInterest_ConsistentAcrossCallForms(t *testing.T) {
	// interest(pv, fv) must equal future_value(pv, interest) - pv.
	got, err := interest.Simple.Interest(1000, interest.FromFutureValue(1180))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 180) {
		t.Errorf("interest = %v, want 180", got)
	}

	fv, err := interest.Simple.FutureValue(1000, interest.FromInterest(got))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(fv-1000, got) {
		t.Errorf("fv - pv = %v, want %v", fv-1000, got)
	}
}

func TestInterest_FromRate(t *testing.T) {
	got, err := interest.Compound.Interest(1000, interest.FromRate(0.05, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 102.5) {
		t.Errorf("interest = %v, want 102.5", got)
	}
}

// =============================================================================
// UNDERDETERMINED INPUTS - caller errors, never silent defaults
// =============================================================================

func TestUnderdeterminedGrowth_Fails(t *testing.T) {
	cases := map[string]error{
		"future value from future value": func() error {
			_, err := interest.Simple.FutureValue(100, interest.FromFutureValue(200))
			return err
		}(),
		"future value from nothing": func() error {
			_, err := interest.Simple.FutureValue(100, interest.Growth{})
			return err
		}(),
		"interest from interest": func() error {
			_, err := interest.Compound.Interest(100, interest.FromInterest(5))
			return err
		}(),
		"rate per period from rate": func() error {
			_, err := interest.Compound.RatePerPeriod(100, interest.FromRate(0.05, 2))
			return err
		}(),
	}

	for name, err := range cases {
		if !errors.Is(err, interest.ErrUnderdetermined) {
			t.Errorf("%s: error = %v, want ErrUnderdetermined", name, err)
		}

		var detail *interest.UnderdeterminedError
		if !errors.As(err, &detail) {
			t.Errorf("%s: error should carry UnderdeterminedError detail", name)
		}
	}
}

// =============================================================================
// RATE INVERSIONS
// =============================================================================

func TestRatePerPeriod(t *testing.T) {
	got, err := interest.Simple.RatePerPeriod(2000, interest.FromFutureValue(2200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 0.10) {
		t.Errorf("rate = %v, want 0.10", got)
	}

	got, err = interest.Simple.RatePerPeriod(2000, interest.FromInterest(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 0.05) {
		t.Errorf("rate = %v, want 0.05", got)
	}

	if _, err := interest.Simple.RatePerPeriod(0, interest.FromInterest(100)); !errors.Is(err, interest.ErrZeroPresentValue) {
		t.Errorf("error = %v, want ErrZeroPresentValue", err)
	}
}

func TestInternalRateOfReturn_MatchesRegimeInversion(t *testing.T) {
	irr, err := interest.Compound.InternalRateOfReturn(1000, 1102.5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(irr, 0.05) {
		t.Errorf("irr = %v, want 0.05", irr)
	}
}

func TestPeriodCount_ThenFutureValue_ReproducesTarget(t *testing.T) {
	periods, err := interest.Compound.PeriodCount(5000, 8000, 0.06)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fv, err := interest.Compound.FutureValue(5000, interest.FromRate(0.06, periods))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(fv, 8000) {
		t.Errorf("fv = %v, want 8000", fv)
	}
}

// =============================================================================
// NET PRESENT VALUE - fill-forward zip
// =============================================================================

func TestNetPresentValue_FillForward(t *testing.T) {
	// Two cash flows, one rate: the rate repeats for the second flow.
	// 1050/(1.05) + 1102.5/(1.05)^2 = 1000 + 1000.
	npv, err := interest.Compound.NetPresentValue(
		[]float64{1050, 1102.5},
		[]float64{0.05},
		[]float64{1, 2},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(npv, 2000) {
		t.Errorf("npv = %v, want 2000", npv)
	}
}

func TestNetPresentValue_ConstantTail(t *testing.T) {
	// One flow amount repeated against three periods.
	// 1000 each at periods 1, 2, 3 under 10% compound.
	npv, err := interest.Compound.NetPresentValue(
		[]float64{1000},
		[]float64{0.10},
		[]float64{1, 2, 3},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 1000/1.1 + 1000/(1.1*1.1) + 1000/(1.1*1.1*1.1)
	if !almostEqual(npv, want) {
		t.Errorf("npv = %v, want %v", npv, want)
	}
}

func TestNetPresentValue_EmptySchedule_Fails(t *testing.T) {
	if _, err := interest.Compound.NetPresentValue(nil, nil, nil); !errors.Is(err, interest.ErrEmptyCashFlows) {
		t.Errorf("error = %v, want ErrEmptyCashFlows", err)
	}
	if _, err := interest.Compound.NetPresentValue([]float64{100}, nil, []float64{1}); !errors.Is(err, interest.ErrEmptyCashFlows) {
		t.Errorf("error = %v, want ErrEmptyCashFlows", err)
	}
}

// =============================================================================
// INFLATION ADJUSTMENT
// =============================================================================

func TestRealRatePerPeriod_FisherRelation(t *testing.T) {
	// (0.10 - 0.04) / 1.04
	want := 0.06 / 1.04

	// Explicit rate wins.
	got, err := interest.Compound.RealRatePerPeriod(1000, 0.04, interest.FromRate(0.10, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, want) {
		t.Errorf("real rate = %v, want %v", got, want)
	}

	// Nominal resolved from a realized future value.
	got, err = interest.Compound.RealRatePerPeriod(1000, 0.04, interest.FromFutureValue(1100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, want) {
		t.Errorf("real rate from fv = %v, want %v", got, want)
	}

	// Nominal resolved from a realized interest amount.
	got, err = interest.Compound.RealRatePerPeriod(1000, 0.04, interest.FromInterest(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, want) {
		t.Errorf("real rate from interest = %v, want %v", got, want)
	}
}

func TestRealInterestPerPeriod(t *testing.T) {
	got, err := interest.Compound.RealInterestPerPeriod(1000, 0.04, interest.FromRate(0.10, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 60) {
		t.Errorf("real interest = %v, want 60", got)
	}
}

func TestRealRatePerPeriod_InvalidInflation_Fails(t *testing.T) {
	_, err := interest.Compound.RealRatePerPeriod(1000, -1, interest.FromRate(0.10, 1))
	if !errors.Is(err, interest.ErrInvalidInflation) {
		t.Errorf("error = %v, want ErrInvalidInflation", err)
	}
}

func TestRealOrEffectiveRate(t *testing.T) {
	// relation = 1.10/1.05 - 1 ≈ 0.047619
	real, effective := 0.05, 0.10

	if got := interest.RealOrEffectiveRate(real, effective, 0.06); !almostEqual(got, real) {
		t.Errorf("high expected inflation should pick the real rate, got %v", got)
	}
	if got := interest.RealOrEffectiveRate(real, effective, 0.03); !almostEqual(got, effective) {
		t.Errorf("low expected inflation should pick the effective rate, got %v", got)
	}
}
