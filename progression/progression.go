/*
Package progression provides arithmetic and geometric progressions.

PURPOSE:
  A progression is an infinite ordered sequence defined by its first term
  and a ratio. The package evaluates terms lazily (memoized per instance),
  produces finite prefixes, and computes partial sums in closed form. The
  annuity package represents a stream of discounted payments as a geometric
  progression and relies on its partial sum.

KEY CONCEPTS:
  - Sequence: the common contract for all progressions
  - Arithmetic: terms grow by a constant difference (a, a+d, a+2d, ...)
  - Geometric: terms grow by a constant quotient (a, ar, ar², ...)

INDEXING:
  Terms are 1-based. Index 1 is the initial term; any index below 1 is
  rejected with ErrIndexOutOfRange.

SEE ALSO:
  - arithmetic.go: constant-difference progression
  - geometric.go: constant-quotient progression
  - annuity: consumer of Geometric partial sums
*/
package progression

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrIndexOutOfRange is returned when a term or partial sum is requested
	// for an index below 1.
	ErrIndexOutOfRange = errors.New("term index must be greater than or equal to 1")

	// ErrSequenceTooShort is returned by the classification helpers when the
	// sample has fewer than three elements.
	ErrSequenceTooShort = errors.New("sequence must contain at least 3 terms")

	// ErrZeroTerm is returned when a quotient-based estimate would divide by
	// a zero term.
	ErrZeroTerm = errors.New("cannot derive quotient from a zero term")
)

// =============================================================================
// SEQUENCE - Common contract
// =============================================================================

// Sequence is the contract shared by all progressions. Implementations cache
// computed terms; the cache is private to one instance and not safe for
// concurrent use.
type Sequence interface {
	// NthTerm returns the 1-based nth term.
	NthTerm(n int) (float64, error)

	// FirstTerms returns terms 1..n in order.
	FirstTerms(n int) ([]float64, error)

	// SumFirstTerms returns the closed-form sum of terms 1..n.
	SumFirstTerms(n int) (float64, error)

	// Ratio returns the constant relating consecutive terms: the common
	// difference for arithmetic progressions, the common quotient for
	// geometric ones.
	Ratio() float64
}

func checkIndex(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrIndexOutOfRange, n)
	}
	return nil
}

func firstTerms(s Sequence, n int) ([]float64, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	terms := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		term, err := s.NthTerm(i)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// =============================================================================
// TWO-POINT RATIO ESTIMATORS
// =============================================================================

// ArithmeticRatio returns the common difference implied by two consecutive
// terms.
func ArithmeticRatio(term1, term2 float64) float64 {
	return term2 - term1
}

// GeometricRatio returns the common quotient implied by two consecutive
// terms.
func GeometricRatio(term1, term2 float64) (float64, error) {
	if term1 == 0 {
		return 0, ErrZeroTerm
	}
	return term2 / term1, nil
}

// =============================================================================
// CLASSIFICATION - Does a sample look like a progression?
// =============================================================================

// IsArithmetic reports whether every consecutive pair of the sample shares
// the same difference within tolerance. The sample needs at least 3 terms.
func IsArithmetic(sequence []float64, tolerance float64) (bool, error) {
	if len(sequence) < 3 {
		return false, fmt.Errorf("%w: got %d", ErrSequenceTooShort, len(sequence))
	}

	diff := sequence[1] - sequence[0]
	for i := 2; i < len(sequence); i++ {
		if !within(sequence[i]-sequence[i-1], diff, tolerance) {
			return false, nil
		}
	}
	return true, nil
}

// IsGeometric reports whether every consecutive pair of the sample shares
// the same quotient within tolerance. The sample needs at least 3 terms and
// no zero term may appear in a denominator position.
func IsGeometric(sequence []float64, tolerance float64) (bool, error) {
	if len(sequence) < 3 {
		return false, fmt.Errorf("%w: got %d", ErrSequenceTooShort, len(sequence))
	}

	ratio, err := GeometricRatio(sequence[0], sequence[1])
	if err != nil {
		return false, err
	}
	for i := 2; i < len(sequence); i++ {
		current, err := GeometricRatio(sequence[i-1], sequence[i])
		if err != nil {
			return false, err
		}
		if !within(current, ratio, tolerance) {
			return false, nil
		}
	}
	return true, nil
}

func within(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
