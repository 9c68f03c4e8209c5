package interest

// =============================================================================
// GROWTH - Tagged union of the quantity the caller already knows
// =============================================================================

// Growth identifies which quantity a caller supplies to pin down a money
// conversion: the realized interest amount, the realized future value, or a
// rate with a period count. Exactly one kind is carried per value; an
// operation that cannot resolve its result from the carried kind returns
// ErrUnderdetermined rather than guessing.
type Growth struct {
	kind        growthKind
	interest    float64
	futureValue float64
	rate        float64
	periods     float64
}

type growthKind int

const (
	growthNone growthKind = iota
	growthInterest
	growthFutureValue
	growthRate
)

// FromInterest declares the realized interest amount as known.
func FromInterest(interest float64) Growth {
	return Growth{kind: growthInterest, interest: interest}
}

// FromFutureValue declares the realized future value as known.
func FromFutureValue(futureValue float64) Growth {
	return Growth{kind: growthFutureValue, futureValue: futureValue}
}

// FromRate declares a per-period rate and a period count as known.
func FromRate(rate, periods float64) Growth {
	return Growth{kind: growthRate, rate: rate, periods: periods}
}

// String names the carried kind; used in error messages.
func (g Growth) String() string {
	switch g.kind {
	case growthInterest:
		return "interest"
	case growthFutureValue:
		return "future value"
	case growthRate:
		return "rate and periods"
	default:
		return "nothing"
	}
}
