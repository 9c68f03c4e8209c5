/*
errors.go - Centralized error types for the interest engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers should branch with errors.Is(); the engine never retries or
  recovers — every failure here is an input error, not a transient fault.

SEE ALSO:
  - model.go: derived operations surfacing these errors
  - regime.go: regime-specific inversions surfacing these errors
*/
package interest

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnderdetermined is returned when the supplied Growth does not carry
	// enough information to resolve the requested quantity.
	ErrUnderdetermined = errors.New("not enough known quantities to resolve")

	// ErrZeroPresentValue is returned when a rate or period inversion would
	// divide by a zero present value.
	ErrZeroPresentValue = errors.New("present value must be non-zero")

	// ErrZeroAccumulation is returned when the accumulation factor evaluates
	// to zero, so no reduction factor exists (e.g. rate = -1 over one
	// compound period).
	ErrZeroAccumulation = errors.New("accumulation factor is zero")

	// ErrNonPositivePeriods is returned when an inversion requires a strictly
	// positive period count.
	ErrNonPositivePeriods = errors.New("periods must be positive")

	// ErrZeroRate is returned when a period inversion would divide by a zero
	// rate.
	ErrZeroRate = errors.New("rate must be non-zero")

	// ErrInvalidRate is returned when a compound inversion receives a rate at
	// or below -100%.
	ErrInvalidRate = errors.New("rate must be greater than -1")

	// ErrNegativeGrowth is returned when present and future value have
	// opposite signs, which has no compound-growth solution.
	ErrNegativeGrowth = errors.New("present and future value must share sign")

	// ErrInvalidInflation is returned when the inflation rate is at or below
	// -100%, which makes the Fisher relation undefined.
	ErrInvalidInflation = errors.New("inflation rate must be greater than -1")

	// ErrEmptyCashFlows is returned by NetPresentValue when a cash-flow
	// schedule has no elements to fill forward from.
	ErrEmptyCashFlows = errors.New("cash-flow schedule is empty")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnderdeterminedError reports which operation could not be resolved and
// which quantity the caller actually supplied.
type UnderdeterminedError struct {
	Operation string
	Supplied  string
}

func (e *UnderdeterminedError) Error() string {
	return fmt.Sprintf("%s: cannot be derived from %s", e.Operation, e.Supplied)
}

func (e *UnderdeterminedError) Unwrap() error {
	return ErrUnderdetermined
}

func underdetermined(operation string, g Growth) error {
	return &UnderdeterminedError{Operation: operation, Supplied: g.String()}
}
